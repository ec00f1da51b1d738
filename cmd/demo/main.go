package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/ormlab/orgstore/internal/config"
	"github.com/ormlab/orgstore/internal/db"
	"github.com/ormlab/orgstore/internal/demo"
	"github.com/ormlab/orgstore/internal/messaging"
)

func main() {
	log.Println("orgstore demo - starting")

	// .env is optional; ignore a missing file
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	gdb, err := db.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// The demo runs fine without a broker; events are then skipped.
	var publisher *messaging.Publisher
	if cfg.RabbitMQURL != "" {
		publisher, err = messaging.NewPublisher(cfg.RabbitMQURL)
		if err != nil {
			log.Printf("Warning: RabbitMQ unavailable, continuing without events: %v", err)
			publisher = nil
		} else {
			defer publisher.Close()
		}
	}

	if err := demo.Run(context.Background(), gdb, publisher); err != nil {
		log.Fatalf("Demo failed: %v", err)
	}

	log.Println("orgstore demo - finished")
}
