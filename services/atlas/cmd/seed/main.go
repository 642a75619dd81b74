package main

import (
	"context"
	"flag"
	"fmt"

	"atlas/pkg/cache"
	"atlas/pkg/config"
	"atlas/pkg/database"
	"atlas/pkg/jwt"
	"atlas/pkg/latch"
	"atlas/pkg/logger"
	"atlas/pkg/queue"
	"atlas/pkg/store"
	"atlas/services/atlas/internal/repo/persistent"
	"atlas/services/atlas/internal/usecase"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Cleans the configured record store and seeds the test account with a
// welcome post.
func main() {
	var skipPost bool
	flag.BoolVar(&skipPost, "no-post", false, "Seed only the test user")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.NewWithEnv("atlas-seed", cfg.AppEnv)

	var redisClient *redis.Client
	if cfg.StoreBackend == store.BackendRedis {
		redisClient, err = cache.NewRedisClient(cfg)
		if err != nil {
			log.Error("Failed to connect to redis: %v", err)
			panic(err)
		}
		defer redisClient.Close()
	}

	var db *gorm.DB
	if cfg.StoreBackend == store.BackendPostgres {
		db, err = database.NewPostgresDB(cfg)
		if err != nil {
			log.Error("Failed to connect to database: %v", err)
			panic(err)
		}
	}

	backend, err := store.OpenBackend(cfg, redisClient, db)
	if err != nil {
		log.Error("Failed to open record store: %v", err)
		panic(err)
	}
	s := store.New(backend, log)
	defer s.Close()

	if err := seed(context.Background(), s, jwt.NewService(cfg.JWTSecret), log, !skipPost); err != nil {
		log.Error("Failed to seed store: %v", err)
		panic(err)
	}

	log.Info("Store seeded successfully!")
}

func seed(ctx context.Context, s *store.Store, jwtService *jwt.Service, log *logger.Logger, withPost bool) error {
	if _, err := s.Cleanup(ctx); err != nil {
		return fmt.Errorf("cleanup: %w", err)
	}

	userRepo := persistent.NewUserRepository(s, log)
	instructorRepo := persistent.NewInstructorRepository(s, log)
	postRepo := persistent.NewPostRepository(s, log)
	profileRepo := persistent.NewProfileRepository(s, log)

	saves := usecase.NewSubmitter(latch.NewSet(), 0, log)
	events := queue.NopPublisher{}

	auth := usecase.NewAuthUseCase(userRepo, instructorRepo, jwtService, events, log)
	created, err := auth.EnsureTestUser(ctx)
	if err != nil {
		return fmt.Errorf("test user: %w", err)
	}
	if !created || !withPost {
		return nil
	}

	user, err := userRepo.GetByLogin(ctx, usecase.TestUser.Username)
	if err != nil {
		return fmt.Errorf("test user lookup: %w", err)
	}

	profiles := usecase.NewProfileUseCase(profileRepo, userRepo, usecase.NewMediaUseCase(nil, log), saves, log)
	posts := usecase.NewPostUseCase(postRepo, profiles, events, log)
	if _, err := posts.Create(ctx, user.ID, "¡Bienvenidos a Atlas! Comparte lo que estás aprendiendo.", nil); err != nil {
		return fmt.Errorf("welcome post: %w", err)
	}
	log.Info("Seeded welcome post for %s", user.Username)
	return nil
}
