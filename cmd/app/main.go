package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"orders/cmd"
	httpin "orders/internal/adapters/in/http"
	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/adapters/out/postgres/userrepo"
	"orders/internal/core/application/usecases/commands"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := connectDB(configs)
	migrateDB(db)

	app, err := cmd.NewCompositionRoot(configs, db)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	seedUsers(app)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// Missing .env is fine in containerized deployments where the
	// environment is injected directly.
	_ = godotenv.Load(".env")

	config := cmd.Config{
		HTTPPort:           envOrDefault("HTTP_PORT", "8080"),
		DBHost:             envOrDefault("DB_HOST", "localhost"),
		DBPort:             envOrDefault("DB_PORT", "5432"),
		DBUser:             envOrDefault("DB_USER", "postgres"),
		DBPassword:         envOrDefault("DB_PASSWORD", "postgres"),
		DBName:             envOrDefault("DB_NAME", "orders"),
		DBSslMode:          envOrDefault("DB_SSLMODE", "disable"),
		TokenSecret:        os.Getenv("TOKEN_SECRET"),
		TokenTTL:           durationEnv("TOKEN_TTL", 30*time.Minute),
		ProcessingDelay:    durationEnv("PROCESSING_DELAY", 5*time.Second),
		ProcessorWorkers:   intEnv("PROCESSOR_WORKERS", 4),
		ProcessorQueueSize: intEnv("PROCESSOR_QUEUE_SIZE", 64),
		StuckSweepCron:     envOrDefault("STUCK_SWEEP_CRON", "*/30 * * * * *"),
	}

	if config.TokenSecret == "" {
		log.Fatalf("TOKEN_SECRET must be set")
	}

	return config
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("Invalid duration in %s: %v", key, err)
	}
	return parsed
}

func intEnv(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf("Invalid integer in %s: %v", key, err)
	}
	return parsed
}

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func migrateDB(db *gorm.DB) {
	if err := db.AutoMigrate(&userrepo.UserDTO{}, &orderrepo.OrderDTO{}); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}
}

func seedUsers(app *cmd.CompositionRoot) {
	seedCmd, err := commands.NewSeedUsersCommand(commands.DefaultUserSeeds())
	if err != nil {
		log.Fatalf("Invalid user seeds: %v", err)
	}

	handler := app.CreateSeedUsersCommandHandler()
	if err := handler.Handle(context.Background(), seedCmd); err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(
		app.CreateSubmitOrderCommandHandler(),
		app.CreateLoginQueryHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateListOrdersQueryHandler(),
	)

	auth := httpin.BearerAuth(app.TokenSigner(), app.UnitOfWorkFactory())
	server.RegisterRoutes(e, auth)

	// Shut down cleanly on SIGINT/SIGTERM so in-flight requests finish.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(ctx); err != nil {
			e.Logger.Error(err)
		}
	}()

	if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil {
		e.Logger.Info(err)
	}
}
