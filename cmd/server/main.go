package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/ThilinaShalom/fitgen.AI/config"
	httpDelivery "github.com/ThilinaShalom/fitgen.AI/internal/delivery/http"
	"github.com/ThilinaShalom/fitgen.AI/internal/domain"
	"github.com/ThilinaShalom/fitgen.AI/internal/infrastructure/catalog"
	"github.com/ThilinaShalom/fitgen.AI/internal/infrastructure/kmeans"
	"github.com/ThilinaShalom/fitgen.AI/internal/infrastructure/mail"
	"github.com/ThilinaShalom/fitgen.AI/internal/infrastructure/session"
	"github.com/ThilinaShalom/fitgen.AI/internal/infrastructure/store"
	"github.com/ThilinaShalom/fitgen.AI/internal/logging"
	"github.com/ThilinaShalom/fitgen.AI/internal/usecase"
)

func main() {
	// A .env file is optional; real deployments set env vars directly.
	if err := godotenv.Load(); err == nil {
		log.Info("loaded environment from .env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logging.Setup(logging.SetupParams{
		LogFileName:   cfg.Log.FileName,
		LogToStdout:   cfg.Log.ToStdout,
		LogLevel:      cfg.Log.Level,
		LogFormatJSON: cfg.Log.FormatJSON,
	})

	log.WithFields(log.Fields{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"sessions":    cfg.Sessions.Type,
	}).Info("starting fitgen backend")

	ctx := context.Background()

	// Document store
	firestoreClient, err := store.NewClient(ctx, cfg.Firestore.ProjectID, cfg.Firestore.CredentialsFile)
	if err != nil {
		log.Fatalf("failed to connect to firestore: %v", err)
	}
	defer firestoreClient.Close()

	users := store.NewUserRepository(firestoreClient)
	plans := store.NewPlanRepository(firestoreClient)

	// Session store
	var sessions domain.CacheRepository
	if cfg.Sessions.Type == "redis" {
		redisStore, err := session.NewRedisStoreFromURL(ctx, cfg.Sessions.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisStore.Close()
		sessions = redisStore
	} else {
		memoryStore := session.NewMemoryStore()
		defer memoryStore.Close()
		sessions = memoryStore
	}

	// Data artifacts
	exercises, err := catalog.Load(cfg.Data.ExerciseCatalog)
	if err != nil {
		log.Fatalf("failed to load exercise catalog: %v", err)
	}

	predictor, err := kmeans.LoadPredictor(cfg.Data.ClusterModel)
	if err != nil {
		log.Fatalf("failed to load cluster model: %v", err)
	}

	clusters, err := kmeans.LoadClusterTable(cfg.Data.ClusterTable)
	if err != nil {
		log.Fatalf("failed to load cluster table: %v", err)
	}

	// Mail
	var sender domain.MailSender
	if cfg.Mail.Host != "" {
		sender = mail.NewSMTPSender(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.Username, cfg.Mail.Password, cfg.Mail.From)
	} else {
		log.Warn("no SMTP host configured, mail will be logged instead of sent")
		sender = mail.LogSender{}
	}

	// Usecase layer
	auth := usecase.NewAuthService(users, sessions, sender, usecase.AuthServiceConfig{
		SessionTTL:    cfg.Auth.SessionTTL,
		ResetTokenTTL: cfg.Auth.ResetTokenTTL,
		ResetBaseURL:  cfg.Auth.ResetBaseURL,
	})
	workouts := usecase.NewWorkoutService(exercises, usecase.WorkoutServiceConfig{})
	nutrition := usecase.NewNutritionService()
	planService := usecase.NewPlanService(workouts, nutrition, predictor, clusters, plans, users)
	admin := usecase.NewAdminService(users)

	handler := httpDelivery.NewHandler(auth, planService, admin)
	router := httpDelivery.SetupRouter(cfg, handler, auth)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.WithField("addr", addr).Info("server listening")

	if err := router.Run(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
