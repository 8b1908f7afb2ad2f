package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/labstack/echo/v4"
	nats "github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"github.com/kanyangaboRichard/Job-Board-System/config"
	httpadapter "github.com/kanyangaboRichard/Job-Board-System/internal/adapters/http"
	apiv1 "github.com/kanyangaboRichard/Job-Board-System/internal/adapters/http/api/v1"
	handlers "github.com/kanyangaboRichard/Job-Board-System/internal/adapters/http/api/v1/handlers"
	authmw "github.com/kanyangaboRichard/Job-Board-System/internal/adapters/http/middleware"
	"github.com/kanyangaboRichard/Job-Board-System/internal/adapters/mailer"
	natsadapter "github.com/kanyangaboRichard/Job-Board-System/internal/adapters/nats"
	"github.com/kanyangaboRichard/Job-Board-System/internal/adapters/oauth"
	repo "github.com/kanyangaboRichard/Job-Board-System/internal/adapters/postgres"
	"github.com/kanyangaboRichard/Job-Board-System/internal/domain"
	"github.com/kanyangaboRichard/Job-Board-System/internal/usecase"
	pkglog "github.com/kanyangaboRichard/Job-Board-System/pkg/log"
)

type App struct {
	cfg      *config.Config
	logger   pkglog.Logger
	db       *gorm.DB
	natsConn *nats.Conn
	redis    *redis.Client
	echo     *echo.Echo
}

func New(ctx context.Context) (*App, error) {
	cfg := config.MustLoad()
	appLogger := pkglog.New(cfg.AppEnv)

	db, err := openDB(cfg)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&domain.User{}, &domain.Job{}, &domain.Application{}); err != nil {
		return nil, err
	}

	nc, err := nats.Connect(cfg.NATSURL)
	if err != nil {
		appLogger.Warn().Err(err).Str("url", cfg.NATSURL).Msg("nats connect failed, messaging disabled")
		nc = nil
	}

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
	}

	userRepo := repo.NewUserRepository(db)
	jobRepo := repo.NewJobRepository(db)
	applicationRepo := repo.NewApplicationRepository(db)
	reportRepo := repo.NewReportRepository(db)

	signer, err := usecase.NewJWTSigner(cfg)
	if err != nil {
		return nil, err
	}

	var provider usecase.OAuthProvider
	if cfg.GoogleClientID != "" {
		google, err := oauth.NewGoogleProvider(ctx, cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleCallbackURL)
		if err != nil {
			appLogger.Warn().Err(err).Msg("google oauth init failed, federated login disabled")
		} else {
			provider = google
		}
	}

	var events usecase.EventPublisher
	if nc != nil {
		events = natsadapter.NewEventPublisher(nc, cfg.NATSStatusChangedSubject)
	}

	authService := usecase.NewAuthService(cfg, appLogger, userRepo, provider, signer)
	userService := usecase.NewUserService(appLogger, userRepo)
	jobService := usecase.NewJobService(appLogger, jobRepo)
	applicationService := usecase.NewApplicationService(appLogger, applicationRepo, jobRepo, userRepo, mailer.New(cfg), events)
	reportService := usecase.NewReportService(reportRepo)

	authMW := authmw.NewAuthMiddleware(signer)
	var loginRateMW echo.MiddlewareFunc
	if limiter := authmw.NewRedisLimiter(redisClient); limiter != nil {
		loginRateMW = limiter.Handler(cfg.LoginRateLimit, cfg.LoginRateWindow)
	}

	router := httpadapter.NewRouter(cfg, apiv1.NewRouter(
		handlers.NewAuthHandler(authService),
		handlers.NewUserHandler(userService),
		handlers.NewJobHandler(jobService),
		handlers.NewApplicationHandler(applicationService),
		handlers.NewReportHandler(reportService),
		authMW.Handler,
		loginRateMW,
	))

	if nc != nil {
		verifyHandler := natsadapter.NewVerifyHandler(signer)
		if err := verifyHandler.Subscribe(nc, cfg.NATSVerifySubject, cfg.AppName); err != nil {
			appLogger.Warn().Err(err).Str("subject", cfg.NATSVerifySubject).Msg("verify subscription failed")
		}
	}

	e := echo.New()
	router.Setup(e)

	return &App{cfg: cfg, logger: appLogger, db: db, natsConn: nc, redis: redisClient, echo: e}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = a.echo.Shutdown(shutdownCtx)
	}()
	go func() {
		errCh <- a.echo.Start(fmt.Sprintf("%s:%s", a.cfg.HTTPHost, a.cfg.HTTPPort))
	}()
	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (a *App) Close() {
	if a.natsConn != nil {
		_ = a.natsConn.Drain()
	}
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}

func openDB(cfg *config.Config) (*gorm.DB, error) {
	var db *gorm.DB
	open := func() error {
		var err error
		db, err = gorm.Open(postgres.Open(buildDSN(cfg)), &gorm.Config{
			Logger:         loggerForGorm(cfg),
			NamingStrategy: schema.NamingStrategy{SingularTable: false},
			TranslateError: true,
		})
		return err
	}
	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5)
	if err := backoff.Retry(open, policy); err != nil {
		return nil, err
	}
	return db, nil
}

func buildDSN(cfg *config.Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s", cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode)
}

func loggerForGorm(cfg *config.Config) logger.Interface {
	level := logger.Silent
	switch cfg.AppEnv {
	case "local":
		level = logger.Info
	default:
		level = logger.Warn
	}
	return logger.Default.LogMode(level)
}
