package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"clipshelf/internal/infrastructure/broker"
	"clipshelf/internal/infrastructure/database"
	"clipshelf/internal/infrastructure/minio"
	"clipshelf/pkg/logger"
)

// ServerConfig holds the HTTP listener settings. The identity secret comes
// from the environment, never from the file.
type ServerConfig struct {
	Address        string `yaml:"address"`
	IdentitySecret string
}

// Config represents the configs used by services on system.
type Config struct {
	Environment     string                 `yaml:"environment"`
	MinIOClient     minio.ClientConfig     `yaml:"minio_client"`
	MinIOStore      minio.StoreConfig      `yaml:"minio_store"`
	DBConfig        database.Config        `yaml:"db_config"`
	BrokerConfig    broker.Config          `yaml:"redis_broker_config"`
	PublisherConfig broker.PublisherConfig `yaml:"publisher_config"`
	Server          ServerConfig           `yaml:"server"`
	Logger          logger.Config          `yaml:"logger"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.MinIOClient.AccessKey = os.Getenv("MINIO_ROOT_USER")
	config.MinIOClient.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")
	config.DBConfig.URI = os.Getenv("DATABASE_URI")
	config.BrokerConfig.URI = os.Getenv("BROKER_URI")
	config.Server.IdentitySecret = os.Getenv("IDENTITY_JWT_SECRET")

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	if c.MinIOStore.Bucket == "" {
		return errors.New("minio_store.bucket must be set")
	}

	if c.DBConfig.DBName == "" {
		return errors.New("db_config.db_name must be set")
	}

	if c.BrokerConfig.StreamName == "" {
		return errors.New("redis_broker_config.stream_name must be set")
	}

	if c.Server.Address == "" {
		return errors.New("server.address must be set")
	}

	return nil
}
