package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"vidvault"
	"vidvault/config"
	"vidvault/internal/application/usecase"
	"vidvault/internal/domain/repository/metadata"
	sessionRepo "vidvault/internal/domain/repository/session"
	"vidvault/internal/infrastructure/blobfs"
	metadataInfra "vidvault/internal/infrastructure/metadata"
	sessionInfra "vidvault/internal/infrastructure/session"
	"vidvault/internal/infrastructure/userstore"
	"vidvault/internal/presentation"
	"vidvault/internal/presentation/handler"
	"vidvault/internal/presentation/middleware"
	"vidvault/pkg/logger"
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

	logger.Info("running vidvault", "version", vidvault.StringVersion())

	metaStore, metaClose, err := buildMetadataStore(cfg)
	if err != nil {
		ExitOnError(err)
	}
	defer metaClose()

	blobStore, err := blobfs.NewStore(cfg.Storage.BlobDir)
	if err != nil {
		ExitOnError(err)
	}

	users, err := userstore.NewFileStore(cfg.Storage.UsersPath)
	if err != nil {
		ExitOnError(err)
	}

	sessions, sessionClose, err := buildSessionStore(cfg)
	if err != nil {
		ExitOnError(err)
	}
	defer sessionClose()

	auth := usecase.NewAuthenticator(users, sessions)
	ingestor := usecase.NewIngestor(blobStore, blobStore, metaStore, usecase.MaxUploadBytes)
	streamer := usecase.NewStreamer(metaStore, blobStore)
	cataloger := usecase.NewCataloger(metaStore, users)
	deleter := usecase.NewDeleter(metaStore, metaStore, blobStore)

	authHandler := handler.NewAuthHandler(auth)
	uploadHandler := handler.NewUploadHandler(ingestor)
	streamHandler := handler.NewStreamHandler(streamer)
	listHandler := handler.NewListHandler(cataloger)
	deleteHandler := handler.NewDeleteHandler(deleter)

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
	e.Use(echoMiddleware.BodyLimit("512M"))
	e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(20)))

	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	e.POST("/api/register", authHandler.HandleRegister)
	e.POST("/api/login", authHandler.HandleLogin)
	e.POST("/api/logout", authHandler.HandleLogout)

	e.POST("/upload", uploadHandler.Handle, middleware.Auth(auth))
	e.GET("/videos/all", listHandler.Handle, middleware.OptionalAuth(auth))
	e.GET("/stream/:"+presentation.VideoIDParam, streamHandler.Handle, middleware.Auth(auth))
	e.DELETE("/delete/:"+presentation.VideoIDParam, deleteHandler.Handle, middleware.Auth(auth))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.HTTP.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(err)
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		ExitOnError(err)
	}
}

func buildMetadataStore(cfg *config.Config) (metadata.Store, func(), error) {
	switch cfg.Metadata.Backend {
	case metadataInfra.BackendMongo:
		store, err := metadataInfra.ConnectMongo(cfg.Metadata)
		if err != nil {
			return nil, nil, err
		}

		return store, func() {
			if err := store.Stop(); err != nil {
				logger.Error("couldn't stop metadata store", "err", err)
			}
		}, nil

	default:
		store, err := metadataInfra.NewFileStore(cfg.Metadata.Path)
		if err != nil {
			return nil, nil, err
		}

		return store, func() {}, nil
	}
}

func buildSessionStore(cfg *config.Config) (sessionRepo.Store, func(), error) {
	switch cfg.Session.Backend {
	case sessionInfra.BackendRedis:
		store, err := sessionInfra.NewRedisStore(cfg.Session)
		if err != nil {
			return nil, nil, err
		}

		return store, func() {
			if err := store.Close(); err != nil {
				logger.Error("couldn't close session store", "err", err)
			}
		}, nil

	default:
		return sessionInfra.NewMemoryStore(cfg.Session), func() {}, nil
	}
}
