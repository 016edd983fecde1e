package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/forumapi/forum-api/internal/config"
	"github.com/forumapi/forum-api/internal/database"
	"github.com/forumapi/forum-api/internal/repository"
	"github.com/forumapi/forum-api/internal/repository/relational"
	"github.com/forumapi/forum-api/internal/rest"
	"github.com/forumapi/forum-api/internal/rest/middleware"
	"github.com/forumapi/forum-api/internal/usecase/comment"
	"github.com/forumapi/forum-api/internal/usecase/like"
	"github.com/forumapi/forum-api/internal/usecase/reply"
	"github.com/forumapi/forum-api/internal/usecase/thread"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	log := logrus.StandardLogger()
	if err := cfg.Log.Configure(log); err != nil {
		logrus.Fatalf("failed to configure logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// prepare database
	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Errorf("got error when closing the DB connection: %v", err)
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}
		log.Info("database migration completed")
	}

	// prepare gin
	if log.GetLevel() < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	route := gin.New()
	route.Use(gin.Recovery())
	route.Use(middleware.Logger(log))
	route.Use(middleware.NewMetrics(prometheus.DefaultRegisterer).Handler())
	route.Use(middleware.CORS())
	route.Use(middleware.SetRequestContextWithTimeout(cfg.Server.ContextTimeout))

	route.GET("/metrics", gin.WrapH(promhttp.Handler()))
	rest.RegisterRoutes(route, middleware.AuthMiddleware(cfg.Auth.AccessTokenKey), buildHandlers(db, cfg))

	// Start Server
	srv := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: route,
	}
	go func() {
		log.Infof("server is running on %s", cfg.Server.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %s", err)
		}
	}()

	// shutdown
	<-ctx.Done()
	log.Info("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("server forced to shutdown: %v", err)
	}

	log.Info("server exiting")
}

func buildHandlers(db *gorm.DB, cfg *config.Config) rest.Handlers {
	now := func() time.Time { return time.Now().UTC() }

	// Prepare Repository
	threadRepo := relational.NewThreadRepository(db, repository.NewUUID, now)
	commentRepo := relational.NewCommentRepository(db, repository.NewUUID, now)
	replyRepo := relational.NewReplyRepository(db, repository.NewUUID, now)
	likeRepo := relational.NewLikeRepository(db, repository.NewUUID)

	// Build service Layer
	threadSvc := thread.NewService(threadRepo, commentRepo, replyRepo, likeRepo, cfg.Thread.FanoutLimit)
	commentSvc := comment.NewService(threadRepo, commentRepo)
	replySvc := reply.NewService(threadRepo, commentRepo, replyRepo)
	likeSvc := like.NewService(threadRepo, commentRepo, likeRepo)

	return rest.Handlers{
		Thread:  rest.NewThreadHandler(threadSvc),
		Comment: rest.NewCommentHandler(commentSvc),
		Reply:   rest.NewReplyHandler(replySvc),
		Like:    rest.NewLikeHandler(likeSvc),
		Health: rest.NewHealthHandler(func(ctx context.Context) error {
			return database.Ping(ctx, db)
		}),
	}
}
