package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/ormlab/orgstore/internal/config"
	"github.com/ormlab/orgstore/internal/db"
	"github.com/ormlab/orgstore/internal/organization"
)

func main() {
	log.Println("Organization Cleanup Job - Starting")
	log.Printf("Retention Policy: %s", organization.RetentionPeriod)

	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	gdb, err := db.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	cleanupService := organization.NewCleanupService(gdb)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	count, err := cleanupService.CountExpired(ctx)
	if err != nil {
		log.Fatalf("Failed to count expired organizations: %v", err)
	}

	log.Printf("Found %d organizations eligible for permanent deletion", count)

	if count == 0 {
		log.Println("No cleanup needed. Exiting.")
		return
	}

	purged, err := cleanupService.PurgeExpired(ctx)
	if err != nil {
		log.Fatalf("Cleanup failed: %v", err)
	}

	log.Printf("✓ Cleanup completed successfully: %d organizations permanently deleted", purged)
	log.Println("Cleanup Job - Finished")
}
