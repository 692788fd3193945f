package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const ReviewCollection = "review"

type Database struct {
	DBName       string
	QueryTimeout time.Duration
	Client       *mongo.Client
}

func Connect(cfg Config) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectionTimeout)*time.Millisecond)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(time.Duration(cfg.ConnectionTimeout) * time.Millisecond).
		SetBSONOptions(&options.BSONOptions{
			UseJSONStructTags: true,
			NilSliceAsEmpty:   true,
		})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	qCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.QueryTimeout)*time.Millisecond)
	defer cancel()

	if err := client.Ping(qCtx, nil); err != nil {
		return nil, err
	}

	db := &Database{
		Client:       client,
		DBName:       cfg.DBName,
		QueryTimeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}

	if err := initReviewCollection(db); err != nil {
		return nil, err
	}

	return db, nil
}

func initReviewCollection(db *Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	collections, err := db.Client.Database(db.DBName).ListCollectionNames(ctx, bson.M{"name": ReviewCollection})
	if err != nil {
		return err
	}
	if len(collections) > 0 {
		return nil // already exists
	}

	collOpts := options.CreateCollection().SetValidator(bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"_id", "content_id", "author_id", "rating", "created_at", "replies"},
			"properties": bson.M{
				"_id":          bson.M{"bsonType": "string"},
				"content_id":   bson.M{"bsonType": "string", "minLength": 1},
				"author_id":    bson.M{"bsonType": "string", "minLength": 1},
				"author_email": bson.M{"bsonType": "string"},
				"rating": bson.M{
					"bsonType":    "int",
					"minimum":     1,
					"maximum":     5,
					"description": "must be an integer star rating between 1 and 5",
				},
				"comment":    bson.M{"bsonType": "string"},
				"created_at": bson.M{"bsonType": "date"},
				"updated_at": bson.M{"bsonType": "date"},
				"replies": bson.M{
					"bsonType": "array",
					"items": bson.M{
						"bsonType": "object",
						"required": []string{"id", "author_id", "content", "created_at"},
						"properties": bson.M{
							"id":           bson.M{"bsonType": "string"},
							"author_id":    bson.M{"bsonType": "string"},
							"author_email": bson.M{"bsonType": "string"},
							"content":      bson.M{"bsonType": "string"},
							"created_at":   bson.M{"bsonType": "date"},
						},
					},
				},
			},
		},
	})

	err = db.Client.Database(db.DBName).CreateCollection(ctx, ReviewCollection, collOpts)
	if err != nil {
		return err
	}

	// Secondary index backing the "all reviews for a content item" query.
	coll := db.Client.Database(db.DBName).Collection(ReviewCollection)
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "content_id", Value: 1}},
	})

	return err
}

func (db *Database) Stop() error {
	if err := db.Client.Disconnect(context.Background()); err != nil {
		return err
	}

	return nil
}
