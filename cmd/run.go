package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"predictor/bot"
	"predictor/config"
	"predictor/database"
	"predictor/domain/services"
	"predictor/repository"
	"predictor/telegram"
	"predictor/webhook"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Println("Starting prediction bot...")

	// Load configuration
	cfg := config.Get()

	// Initialize database connection
	log.Println("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.GetDatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Println("Database connection established successfully")

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	predictionRepo := repository.NewPredictionRepository(db)
	leaderboardRepo := repository.NewLeaderboardRepository(db)

	// Initialize Telegram client
	log.Println("Connecting to Telegram...")
	client, err := telegram.NewClient(cfg.TelegramToken)
	if err != nil {
		return fmt.Errorf("failed to connect to Telegram: %w", err)
	}
	log.Printf("Authenticated as @%s", client.Username())

	// Initialize domain services
	gate := services.NewMembershipService(client, cfg.RequiredChannels)
	predictionService := services.NewPredictionService(userRepo, predictionRepo, leaderboardRepo)
	broadcastService := services.NewBroadcastService(userRepo, client)
	statsService := services.NewStatsService(userRepo, predictionRepo)

	// Initialize the bot and its dispatcher
	predictionBot := bot.New(
		bot.Config{
			AdminID:          cfg.AdminID,
			RequiredChannels: cfg.RequiredChannels,
			ChannelLinks:     cfg.ChannelLinks,
		},
		client,
		bot.Services{
			Gate:        gate,
			Predictions: predictionService,
			Broadcasts:  broadcastService,
			Stats:       statsService,
		},
		bot.Repositories{
			Users:             userRepo,
			PredictionRecords: predictionRepo,
			Leaderboard:       leaderboardRepo,
		},
	)
	dispatcher := bot.NewDispatcher(predictionBot, cfg.Workers, cfg.QueueSize)

	// Start the webhook ingestion server; the dispatcher is fully wired
	// before the first request can arrive
	addr := fmt.Sprintf(":%d", cfg.ListenPort)
	server := webhook.NewServer(addr, cfg.WebhookPath, cfg.WebhookSecret, dispatcher)
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()
	log.Printf("Webhook server listening on %s", addr)

	// Point Telegram at the webhook
	if cfg.WebhookURL != "" {
		if err := client.RegisterWebhook(cfg.WebhookURL+cfg.WebhookPath, cfg.WebhookSecret); err != nil {
			return fmt.Errorf("failed to register webhook: %w", err)
		}
		log.Printf("Webhook registered at %s%s", cfg.WebhookURL, cfg.WebhookPath)
	}

	log.Printf("Bot is running in %s mode...", cfg.Environment)
	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			return err
		}
	}

	// Cleanup resources
	log.Println("Shutting down bot...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down webhook server: %v", err)
	}

	// Drain queued updates before closing the database
	dispatcher.Stop()

	log.Println("Closing database connection...")
	db.Close()

	log.Println("Shutdown completed")
	return nil
}
