package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"atlas/pkg/cache"
	"atlas/pkg/config"
	"atlas/pkg/database"
	"atlas/pkg/i18n"
	"atlas/pkg/jwt"
	"atlas/pkg/latch"
	"atlas/pkg/logger"
	"atlas/pkg/middleware"
	"atlas/pkg/queue"
	"atlas/pkg/s3"
	"atlas/pkg/store"
	"atlas/pkg/validation"
	atlasHTTP "atlas/services/atlas/internal/controller/http"
	"atlas/services/atlas/internal/repo/persistent"
	"atlas/services/atlas/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "atlas/services/atlas/docs"
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client
	queueClient *queue.Client
	store       *store.Store
	bundle      *i18n.Bundle
	jwtService  *jwt.Service
	httpServer  *http.Server
}

// NewApp opens the record store and the optional infrastructure. Redis, S3 and
// RabbitMQ are used when reachable; the service runs without them.
func NewApp(cfg *config.Config) (*App, error) {
	log := logger.NewWithEnv(cfg.AppName, cfg.AppEnv)
	a := &App{cfg: cfg, log: log}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		if cfg.StoreBackend == store.BackendRedis {
			return nil, err
		}
		log.Warn("Redis unavailable, login rate limiting disabled: %v", err)
	} else {
		a.redisClient = redisClient
	}

	if cfg.StoreBackend == store.BackendPostgres {
		db, err := database.NewPostgresDB(cfg)
		if err != nil {
			log.Error("Failed to connect to database: %v", err)
			a.closeConnections()
			return nil, err
		}
		a.db = db
	}

	backend, err := store.OpenBackend(cfg, a.redisClient, a.db)
	if err != nil {
		log.Error("Failed to open record store: %v", err)
		a.closeConnections()
		return nil, err
	}
	a.store = store.New(backend, log)
	log.Info("Record store backend: %s", cfg.StoreBackend)

	if cfg.S3Enabled() {
		s3Client, err := s3.NewClient(cfg)
		if err != nil {
			log.Warn("S3 unavailable, uploads keep file names only: %v", err)
		} else {
			a.s3Client = s3Client
		}
	}

	if cfg.RabbitMQEnabled() {
		queueClient, err := queue.NewRabbitMQClient(cfg, log)
		if err != nil {
			log.Warn("Failed to connect to RabbitMQ: %v (continuing without events)", err)
		} else {
			a.queueClient = queueClient
		}
	}

	bundle, err := i18n.Load()
	if err != nil {
		a.closeConnections()
		return nil, fmt.Errorf("failed to load translations: %w", err)
	}
	a.bundle = bundle
	a.jwtService = jwt.NewServiceWithTTL(cfg.JWTSecret, cfg.JWTTTL)

	return a, nil
}

func (a *App) publisher() queue.Publisher {
	if a.queueClient == nil {
		return queue.NopPublisher{}
	}
	return a.queueClient
}

func (a *App) objectStorage() usecase.ObjectStorage {
	if a.s3Client == nil {
		return nil
	}
	return a.s3Client
}

func (a *App) Run() error {
	ctx := context.Background()

	if _, err := a.store.Cleanup(ctx); err != nil {
		return fmt.Errorf("startup cleanup failed: %w", err)
	}

	validation.Init()

	// Repositories
	userRepo := persistent.NewUserRepository(a.store, a.log)
	instructorRepo := persistent.NewInstructorRepository(a.store, a.log)
	courseRepo := persistent.NewCourseRepository(a.store, a.log)
	classRepo := persistent.NewClassRepository(a.store, a.log)
	postRepo := persistent.NewPostRepository(a.store, a.log)
	profileRepo := persistent.NewProfileRepository(a.store, a.log)
	prefRepo := persistent.NewPreferenceRepository(a.store)
	subscriptionRepo := persistent.NewSubscriptionRepository(a.store, a.log)
	donationRepo := persistent.NewDonationRepository(a.store, a.log)

	// One latch set: each form and user pair has its own latch
	latches := latch.NewSet()
	saves := usecase.NewSubmitter(latches, a.cfg.SaveDelay, a.log)
	payments := usecase.NewSubmitter(latches, a.cfg.PaymentDelay, a.log)
	events := a.publisher()

	// Use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, instructorRepo, a.jwtService, events, a.log)
	mediaUseCase := usecase.NewMediaUseCase(a.objectStorage(), a.log)
	profileUseCase := usecase.NewProfileUseCase(profileRepo, userRepo, mediaUseCase, saves, a.log)
	postUseCase := usecase.NewPostUseCase(postRepo, profileUseCase, events, a.log)
	courseUseCase := usecase.NewCourseUseCase(courseRepo, instructorRepo, saves, events, a.log)
	classUseCase := usecase.NewClassUseCase(classRepo, instructorRepo, saves, events, a.log)
	premiumUseCase := usecase.NewPremiumUseCase(subscriptionRepo, prefRepo, a.bundle, payments, events, a.log)
	donationUseCase := usecase.NewDonationUseCase(donationRepo, userRepo, prefRepo, a.bundle, payments, events, a.log)
	instructorUseCase := usecase.NewInstructorUseCase(instructorRepo, saves, a.log)
	eligibilityUseCase := usecase.NewEligibilityUseCase()
	preferenceUseCase := usecase.NewPreferenceUseCase(prefRepo, a.bundle)

	if a.cfg.SeedTestUser {
		if _, err := authUseCase.EnsureTestUser(ctx); err != nil {
			a.log.Error("Failed to seed test user: %v", err)
		}
	}

	// HTTP handlers
	authHandler := atlasHTTP.NewAuthHandler(authUseCase, a.log)
	profileHandler := atlasHTTP.NewProfileHandler(profileUseCase, a.log)
	postHandler := atlasHTTP.NewPostHandler(postUseCase, a.log)
	courseHandler := atlasHTTP.NewCourseHandler(courseUseCase, a.log)
	classHandler := atlasHTTP.NewClassHandler(classUseCase, a.log)
	mediaHandler := atlasHTTP.NewMediaHandler(mediaUseCase, a.log)
	premiumHandler := atlasHTTP.NewPremiumHandler(premiumUseCase, a.log)
	donationHandler := atlasHTTP.NewDonationHandler(donationUseCase, a.log)
	instructorHandler := atlasHTTP.NewInstructorHandler(instructorUseCase, a.log)
	eligibilityHandler := atlasHTTP.NewEligibilityHandler(eligibilityUseCase)
	preferenceHandler := atlasHTTP.NewPreferenceHandler(preferenceUseCase, a.log)

	if !a.cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID())
	if a.cfg.IsDevelopment() {
		r.Use(gin.Logger())
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "store": a.cfg.StoreBackend})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", middleware.RateLimitMiddleware(a.redisClient, a.cfg.RateLimit, a.cfg.RateWindow), authHandler.Login)
		api.POST("/auth/validate/:field", authHandler.ValidateField)
		api.GET("/translations/:locale", preferenceHandler.Translations)
		api.GET("/premium/plans", premiumHandler.Plans)
		api.GET("/eligibility/school/:code", eligibilityHandler.CheckSchool)
		api.POST("/eligibility/institutional-email", eligibilityHandler.CheckInstitutionalEmail)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(a.jwtService))
		{
			protected.GET("/me", authHandler.Me)

			protected.GET("/profile", profileHandler.GetProfile)
			protected.PUT("/profile", profileHandler.SaveProfile)
			protected.POST("/profile/photo", profileHandler.UploadPhoto)

			protected.GET("/posts", postHandler.Feed)
			protected.POST("/posts", postHandler.CreatePost)
			protected.POST("/posts/:id/like", postHandler.LikePost)
			protected.POST("/posts/:id/comments", postHandler.CommentPost)

			protected.GET("/courses", courseHandler.ListCourses)
			protected.GET("/courses/mine", courseHandler.MyCourses)
			protected.GET("/courses/:id", courseHandler.GetCourse)
			protected.POST("/courses", courseHandler.CreateCourse)
			protected.PUT("/courses/:id", courseHandler.UpdateCourse)
			protected.DELETE("/courses/:id", courseHandler.DeleteCourse)

			protected.GET("/classes", classHandler.ListClasses)
			protected.GET("/classes/mine", classHandler.MyClasses)
			protected.GET("/classes/:id", classHandler.GetClass)
			protected.POST("/classes", classHandler.CreateClass)
			protected.PUT("/classes/:id", classHandler.UpdateClass)
			protected.DELETE("/classes/:id", classHandler.DeleteClass)

			protected.POST("/media", mediaHandler.Upload)

			protected.GET("/premium/status", premiumHandler.Status)
			protected.POST("/premium/trial", premiumHandler.StartTrial)
			protected.POST("/premium/subscribe", premiumHandler.Subscribe)

			protected.GET("/donations/featured", donationHandler.Featured)
			protected.GET("/donations/users", donationHandler.SearchUsers)
			protected.GET("/donations/quote", donationHandler.Quote)
			protected.GET("/donations/history", donationHandler.History)
			protected.POST("/donations/user", donationHandler.DonateToUser)
			protected.POST("/donations/bulk", donationHandler.DonateBulk)

			protected.GET("/instructor/verification", instructorHandler.Status)
			protected.POST("/instructor/verification", instructorHandler.Submit)
			protected.DELETE("/instructor/verification", instructorHandler.Reset)

			protected.GET("/preferences", preferenceHandler.GetPreferences)
			protected.PUT("/preferences", preferenceHandler.UpdatePreferences)
		}
	}

	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	go func() {
		a.log.Info("Atlas service starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down atlas service...")
}

// Shutdown drains HTTP first so in-flight delayed saves reach the store.
func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var shutdownErr error
	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			a.log.Error("Server forced to shutdown: %v", err)
			shutdownErr = err
		}
	}

	if err := a.store.Close(); err != nil {
		a.log.Error("Error closing record store: %v", err)
	}
	a.closeConnections()

	a.log.Info("Atlas service exited")
	return shutdownErr
}

func (a *App) closeConnections() {
	if a.queueClient != nil {
		if err := a.queueClient.Close(); err != nil {
			a.log.Error("Error closing RabbitMQ: %v", err)
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				a.log.Error("Error closing database: %v", err)
			}
		}
	}
}
