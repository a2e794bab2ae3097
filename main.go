package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wolf-scoring-system/services"
	"wolf-scoring-system/utils"
	"wolf-scoring-system/workers"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment variables directly")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}

	// TranslateError keeps duplicate-key and foreign-key violations
	// recognizable at the resource boundary.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := autoMigrate(db); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	app, _, err := newApp(db)
	if err != nil {
		log.Fatal("failed to build app:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Optional background pieces, both off unless configured
	gameService := services.NewGameService(db)
	gameService.StartRetentionScheduler()

	if os.Getenv("BACKUP_BUCKET_NAME") != "" {
		if err := utils.InitBackupStore(); err != nil {
			log.Fatal("failed to initialize backup store:", err)
		}
		interval := 1 * time.Hour
		if v := os.Getenv("BACKUP_INTERVAL"); v != "" {
			parsed, err := time.ParseDuration(v)
			if err != nil {
				log.Fatalf("invalid BACKUP_INTERVAL %q: %v", v, err)
			}
			interval = parsed
		}
		backupClient := workers.NewBackupClient(db)
		go workers.PollBackups(ctx, backupClient, interval)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5300"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server running on http://localhost:%s", port)

	<-ctx.Done()
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
