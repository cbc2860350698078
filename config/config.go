package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"predictor/database"
)

// Config holds all application configuration
type Config struct {
	// Telegram configuration
	TelegramToken string
	AdminID       int64

	// Membership gate configuration
	RequiredChannels []string // public channel names, without the @ prefix
	ChannelLinks     []string // join links, index-aligned with RequiredChannels

	// Database configuration
	DatabaseURL  string
	DatabaseName string

	// Webhook configuration
	WebhookURL    string // public base URL; empty disables webhook registration
	WebhookPath   string
	WebhookSecret string
	ListenPort    int

	// Event processing
	Workers   int
	QueueSize int

	// Environment
	Environment string // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
	mu       sync.Mutex // Protects instance for test setup
)

// Get returns the global configuration instance
func Get() *Config {
	mu.Lock()
	defer mu.Unlock()

	// If instance is already set (e.g., by tests), return it
	if instance != nil {
		return instance
	}

	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			if os.Getenv("GO_TEST") == "1" || os.Getenv("ENVIRONMENT") == "test" {
				instance = NewTestConfig()
			} else {
				panic(fmt.Sprintf("failed to load config: %v", err))
			}
		}
	})
	return instance
}

// GetDatabaseURL constructs the full database URL by combining base URL and database name
func (c *Config) GetDatabaseURL() string {
	return database.ConstructDatabaseURL(c.DatabaseURL, c.DatabaseName)
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		TelegramToken: os.Getenv("TELEGRAM_BOT_TOKEN"),

		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),

		WebhookURL:    os.Getenv("WEBHOOK_URL"),
		WebhookPath:   getEnvWithDefault("WEBHOOK_PATH", "/webhook"),
		WebhookSecret: os.Getenv("WEBHOOK_SECRET"),
		ListenPort:    10000,

		Workers:   8,
		QueueSize: 256,

		Environment: os.Getenv("ENVIRONMENT"),
	}

	if adminID := os.Getenv("ADMIN_ID"); adminID != "" {
		parsed, err := strconv.ParseInt(adminID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ADMIN_ID: %w", err)
		}
		config.AdminID = parsed
	}

	config.RequiredChannels = splitList(os.Getenv("REQUIRED_CHANNELS"))
	config.ChannelLinks = splitList(os.Getenv("CHANNEL_LINKS"))

	if port := os.Getenv("PORT"); port != "" {
		if parsed, err := strconv.Atoi(port); err == nil {
			config.ListenPort = parsed
		}
	}
	if workers := os.Getenv("WORKERS"); workers != "" {
		if parsed, err := strconv.Atoi(workers); err == nil && parsed > 0 {
			config.Workers = parsed
		}
	}
	if queueSize := os.Getenv("QUEUE_SIZE"); queueSize != "" {
		if parsed, err := strconv.Atoi(queueSize); err == nil && parsed > 0 {
			config.QueueSize = parsed
		}
	}

	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.TelegramToken == "" {
			return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
		}
		if config.AdminID == 0 {
			return nil, fmt.Errorf("ADMIN_ID is required")
		}
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
		if config.WebhookSecret == "" {
			return nil, fmt.Errorf("WEBHOOK_SECRET is required")
		}
		if len(config.ChannelLinks) != len(config.RequiredChannels) {
			return nil, fmt.Errorf("CHANNEL_LINKS must have one link per required channel")
		}
	}

	return config, nil
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// getEnvWithDefault returns the environment variable value or a default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Test helpers - only use in tests

// SetTestConfig overrides the global config instance for testing
func SetTestConfig(testConfig *Config) {
	mu.Lock()
	defer mu.Unlock()
	instance = testConfig
}

// ResetConfig resets the global config instance and sync.Once for testing
func ResetConfig() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
	once = sync.Once{}
}

// NewTestConfig creates a minimal config suitable for unit tests
func NewTestConfig() *Config {
	return &Config{
		Environment:      "test",
		AdminID:          999999,
		RequiredChannels: []string{"testchannel"},
		ChannelLinks:     []string{"https://t.me/testchannel"},
		WebhookPath:      "/webhook",
		WebhookSecret:    "test-secret",
		Workers:          2,
		QueueSize:        16,
	}
}
