package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/config"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/log"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/redis"
	"github.com/joho/godotenv"
)

func main() {
	envErr := godotenv.Load()
	logger := log.NewLogger()
	if envErr != nil {
		logger.Warnf("No .env file loaded, using process environment: %v", envErr)
	}

	fiberApp := config.NewFiber(logger)
	validator := config.NewValidator()
	chatHistory := redis.New()

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithDatabase(),
		config.WithRedisServer(chatHistory),
		config.WithMiddleware(),
		config.WithNLPKeywords(),
		config.WithBcryptUtils(),
		config.WithUtils(),
	)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")

	if err := server.Shutdown(); err != nil {
		logger.Errorf("Error during shutdown: %v", err)
	}
}
