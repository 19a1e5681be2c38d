package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jsasing/portfolio-backend/api"
	"github.com/jsasing/portfolio-backend/config"
	"github.com/jsasing/portfolio-backend/database"
	"github.com/jsasing/portfolio-backend/filestore"
	"github.com/jsasing/portfolio-backend/media"
	"github.com/jsasing/portfolio-backend/services"
	"github.com/jsasing/portfolio-backend/storage"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	store, err := newStore()
	if err != nil {
		fmt.Printf("Error initializing storage: %v\n", err)
		os.Exit(1)
	}

	objects, err := newObjectStore()
	if err != nil {
		fmt.Printf("Error initializing media storage: %v\n", err)
		os.Exit(1)
	}

	mailer := services.NewResendMailer(config.New())

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(store, objects, mailer)
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// newStore picks the storage backend. STORE_BACKEND=file keeps everything
// in flat JSON files; anything else connects to postgres.
func newStore() (storage.Store, error) {
	if os.Getenv("STORE_BACKEND") == "file" {
		dataDir := getEnv("DATA_DIR", "data")
		fmt.Printf("Using flat-file store in %s\n", dataDir)
		return filestore.New(dataDir)
	}

	connStr := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_NAME", "portfolio"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_SSLMODE", "require"),
	)
	fmt.Println("Connecting to postgres database...")

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      newLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		return nil, fmt.Errorf("testing database connection: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	return database.New(db), nil
}

// newObjectStore picks the media backend. With S3_BUCKET set images go to
// S3; otherwise they land on local disk under MEDIA_DIR.
func newObjectStore() (media.ObjectStore, error) {
	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		mediaDir := getEnv("MEDIA_DIR", "public")
		fmt.Printf("Using local media storage in %s\n", mediaDir)
		return media.NewDiskStore(mediaDir), nil
	}

	fmt.Printf("Using S3 media storage in bucket %s\n", bucket)
	return media.NewS3Store(
		context.Background(),
		bucket,
		getEnv("S3_REGION", "us-east-1"),
		getEnv("S3_PUBLIC_BASE_URL", ""),
	)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}

// getEnv returns the value of the environment variable key or a fallback value.
func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
