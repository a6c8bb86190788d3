package main

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/spf13/cobra"

	restctx "github.com/dtroode/quill-server/internal/api/rest/context"
	"github.com/dtroode/quill-server/internal/api/rest/middleware"
	"github.com/dtroode/quill-server/internal/api/rest/router"
	httpServer "github.com/dtroode/quill-server/internal/api/rest/server"
	"github.com/dtroode/quill-server/internal/config"
	"github.com/dtroode/quill-server/internal/logger"
	"github.com/dtroode/quill-server/internal/model"
	"github.com/dtroode/quill-server/internal/password"
	"github.com/dtroode/quill-server/internal/repository/postgres"
	"github.com/dtroode/quill-server/internal/sanitize"
	"github.com/dtroode/quill-server/internal/server"
	"github.com/dtroode/quill-server/internal/service"
	"github.com/dtroode/quill-server/internal/slug"
	storage "github.com/dtroode/quill-server/internal/storage/minio"
	"github.com/dtroode/quill-server/internal/token"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Apply migrations and start the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer db.Close()

	storageClient, err := storage.NewClient(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to initialize storage client: %w", err)
	}

	userRepo := postgres.NewUserRepository(db)
	postRepo := postgres.NewPostRepository(db)
	commentRepo := postgres.NewCommentRepository(db)
	likeRepo := postgres.NewLikeRepository(db)

	tokenManager := token.NewJWT(cfg.JWT)
	sanitizer := sanitize.New()

	authService := service.NewAuth(userRepo, password.NewBcrypt(cfg.BcryptCost), tokenManager, logger)
	postService := service.NewPost(postRepo, likeRepo, storageClient, sanitizer, slug.NewGenerator(), cfg.Storage.MaxCoverBytes, logger)
	commentService := service.NewComment(commentRepo, postRepo, sanitizer, logger)
	likeService := service.NewLike(likeRepo, postRepo, logger)

	rateLimiter := middleware.NewRateLimiter(logger)
	defer rateLimiter.Stop()

	r := router.New(
		router.Services{
			Auth:    authService,
			Post:    postService,
			Comment: commentService,
			Like:    likeService,
			DB:      db,
		},
		tokenManager,
		restctx.NewManager(),
		rateLimiter,
		router.Config{
			CORSOrigin:    cfg.HTTP.CORSOrigin,
			MaxCoverBytes: cfg.Storage.MaxCoverBytes,
			RateLimit:     cfg.RateLimit,
		},
		logger,
	)

	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port), cfg.HTTP.ReadTimeout, cfg.HTTP.WriteTimeout)

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	serveErr := make(chan error, 1)
	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			serveErr <- err
		}
	}(srv)

	logger.Info("build info",
		"version", buildVersion,
		"date", buildDate,
		"commit", buildCommit)

	select {
	case <-ctx.Done():
		logger.Info("received interruption signal, shutting down")
	case err := <-serveErr:
		wg.Wait()
		return fmt.Errorf("server stopped: %w", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")

	return nil
}

func logAppVersion(w io.Writer) {
	tmpl := `Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Fprintf(w, tmpl, buildVersion, buildDate, buildCommit)
}
