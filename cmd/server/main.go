package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"alcyxob/peakplan/internal/ai"
	"alcyxob/peakplan/internal/api"
	"alcyxob/peakplan/internal/config"
	"alcyxob/peakplan/internal/repository/mongo"
	"alcyxob/peakplan/internal/service"
	"alcyxob/peakplan/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting PeakPlan Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	log.Println("Ensuring database indexes...")
	go func() { // Run index creation concurrently/in background
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureUserIndexes(ctx, appDB.Collection("users"))
		mongo.EnsureGoalIndexes(ctx, appDB.Collection("goals"))
		mongo.EnsureTrainingPlanIndexes(ctx, appDB.Collection("training_plans"))
		mongo.EnsureWorkoutIndexes(ctx, appDB.Collection("workouts"))
		mongo.EnsureWorkoutLogIndexes(ctx, appDB.Collection("workout_logs"))
		log.Println("Index creation process completed.")
	}()

	// --- Initialize Storage ---
	log.Println("Initializing file storage service...")
	var fileStorage storage.FileStorage
	if cfg.S3.BucketName != "" {
		fileStorage, err = storage.NewS3Storage(cfg.S3)
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
		}
	} else {
		log.Println("No S3 bucket configured; plan export disabled.")
	}

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	userRepo := mongo.NewMongoUserRepository(appDB)
	goalRepo := mongo.NewMongoGoalRepository(appDB)
	trainingPlanRepo := mongo.NewMongoTrainingPlanRepository(appDB)
	workoutRepo := mongo.NewMongoWorkoutRepository(appDB)
	workoutLogRepo := mongo.NewMongoWorkoutLogRepository(appDB)

	// --- Plan Supplier Chain ---
	// The deterministic synthesizer always terminates the chain so week
	// generation succeeds even when the AI supplier is down.
	var suppliers []ai.PlanSupplier
	if cfg.AI.Enabled && cfg.AI.APIKey != "" {
		log.Printf("AI plan supplier enabled (model %s)", cfg.AI.Model)
		suppliers = append(suppliers, ai.NewOpenAI(cfg.AI.APIKey, cfg.AI.Model, cfg.AI.Timeout))
	}
	suppliers = append(suppliers, ai.SynthesizerSupplier{})
	supplierChain := ai.NewChain(suppliers...)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	goalService := service.NewGoalService(goalRepo)
	trainingService := service.NewTrainingService(
		goalRepo, userRepo, trainingPlanRepo, workoutRepo, workoutLogRepo,
		supplierChain, fileStorage, cfg.Planner,
	)

	// --- Initialize Gin Engine ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg.JWT.Secret, authService, goalService, trainingService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
