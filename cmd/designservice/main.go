package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"design-service/internal/app"
	"design-service/internal/http"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	log.SetOutput(os.Stderr)

	application, err := app.Initialize(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize service: %v", err)
	}
	defer application.Shutdown()

	server := http.NewServer(application.Config, application.Service)

	go func() {
		if err := server.Start(":" + application.Config.Server.Port); err != nil {
			log.Printf("Server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), application.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}
}
