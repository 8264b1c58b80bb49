package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort     string `mapstructure:"APP_PORT"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	Env         string `mapstructure:"ENV"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisDedupDB   int    `mapstructure:"REDIS_DEDUP_DB"`
	RedisQueueDB   int    `mapstructure:"REDIS_QUEUE_DB"`

	// Gemini API key for the text-understanding service.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`

	// Chat transport (Slack-compatible Web API).
	ChatAPIBaseURL string `mapstructure:"CHAT_API_BASE_URL"`
	ChatBotToken   string `mapstructure:"CHAT_BOT_TOKEN"`

	// Slot grid: operating window in minutes from midnight and granularity.
	// Defaults give the 08:00-24:00 window; set SLOT_OPEN_MINUTE=720 for an
	// afternoon-only 12:00-24:00 grid.
	SlotOpenMinute     int `mapstructure:"SLOT_OPEN_MINUTE"`
	SlotCloseMinute    int `mapstructure:"SLOT_CLOSE_MINUTE"`
	SlotGranularityMin int `mapstructure:"SLOT_GRANULARITY_MIN"`

	// Timeout in seconds for calls to external collaborators.
	ExternalTimeoutSec int `mapstructure:"EXTERNAL_TIMEOUT_SEC"`

	MaxRequestsPerMin int `mapstructure:"MAX_REQUESTS_PER_MIN"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_DEDUP_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 2)
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("CHAT_API_BASE_URL", "https://slack.com/api")
	viper.SetDefault("CHAT_BOT_TOKEN", "")
	viper.SetDefault("SLOT_OPEN_MINUTE", 480)
	viper.SetDefault("SLOT_CLOSE_MINUTE", 1440)
	viper.SetDefault("SLOT_GRANULARITY_MIN", 30)
	viper.SetDefault("EXTERNAL_TIMEOUT_SEC", 10)
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
