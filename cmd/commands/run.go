package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"clipshelf"
	"clipshelf/config"
	"clipshelf/internal/application/usecase"
	"clipshelf/internal/domain/event"
	"clipshelf/internal/infrastructure/broker"
	"clipshelf/internal/infrastructure/database"
	"clipshelf/internal/infrastructure/minio"
	"clipshelf/internal/presentation"
	"clipshelf/internal/presentation/handler"
	"clipshelf/internal/presentation/middleware"
	"clipshelf/pkg/hub"
	"clipshelf/pkg/logger"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running clipshelf", "version", clipshelf.StringVersion())

	minIOClient, err := minio.New(cfg.MinIOClient)
	if err != nil {
		ExitOnError(err)
	}

	store := minio.NewStore(minIOClient.MinioClient, cfg.MinIOStore)
	if err := store.EnsureBucket(context.Background()); err != nil {
		ExitOnError(err)
	}

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}

	brokerClient, err := broker.NewClient(cfg.BrokerConfig)
	if err != nil {
		ExitOnError(err)
	}

	brokerPublisher := broker.NewPublisher(brokerClient, cfg.PublisherConfig)

	notifications := hub.New[event.Notification]()

	uploader := usecase.NewContentUploader(store, notifications)
	attacher := usecase.NewThumbnailAttacher(store)
	lister := usecase.NewContentLister(store)
	deleter := usecase.NewContentDeleter(store, notifications)

	reviews := usecase.NewReviews(
		database.NewReviewWriter(db),
		database.NewReviewRetriever(db),
		database.NewReviewLister(db),
		database.NewReviewUpdater(db),
		database.NewReviewRemover(db),
	)
	rater := usecase.NewRater(database.NewReviewLister(db))

	uploadHandler := handler.NewUploadHandler(uploader)
	thumbnailHandler := handler.NewThumbnailHandler(attacher)
	listHandler := handler.NewListHandler(lister)
	deleteHandler := handler.NewDeleteHandler(deleter)
	reviewHandler := handler.NewReviewHandler(reviews, rater)

	e := echo.New()
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost,
			http.MethodDelete, http.MethodHead, http.MethodOptions},
		MaxAge: 86400,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit("500M"))
	e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(20)))

	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	identity := middleware.IdentityMiddleware(cfg.Server.IdentitySecret)

	e.POST("/contents", uploadHandler.Handle, identity)
	e.GET("/contents", listHandler.Handle, identity)
	e.PUT(fmt.Sprintf("/contents/:%s/thumbnail", presentation.ContentIDParam), thumbnailHandler.Handle, identity)
	e.DELETE(fmt.Sprintf("/contents/:%s", presentation.ContentIDParam), deleteHandler.Handle, identity)

	e.POST(fmt.Sprintf("/contents/:%s/reviews", presentation.ContentIDParam), reviewHandler.HandleCreate, identity)
	e.GET(fmt.Sprintf("/contents/:%s/reviews", presentation.ContentIDParam), reviewHandler.HandleList, identity)
	e.PATCH(fmt.Sprintf("/reviews/:%s", presentation.ReviewIDParam), reviewHandler.HandleUpdate, identity)
	e.DELETE(fmt.Sprintf("/reviews/:%s", presentation.ReviewIDParam), reviewHandler.HandleDelete, identity)
	e.POST(fmt.Sprintf("/reviews/:%s/replies", presentation.ReviewIDParam), reviewHandler.HandleReply, identity)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go forwardNotifications(ctx, notifications, brokerPublisher)

	go func() {
		if err := e.Start(cfg.Server.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		ExitOnError(err)
	}

	if err := brokerClient.Close(); err != nil {
		logger.Warn("closing broker client", "err", err)
	}
}

// forwardNotifications bridges in-process events onto the Redis stream so
// external consumers see the same feed as local subscribers.
func forwardNotifications(ctx context.Context, notifications *hub.Hub[event.Notification],
	publisher *broker.Publisher,
) {
	events, cancel := notifications.Subscribe()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return
		case notification, ok := <-events:
			if !ok {
				return
			}
			if err := publisher.Publish(ctx, notification); err != nil {
				logger.Error("event publish failed", "err", err)
			}
		}
	}
}
