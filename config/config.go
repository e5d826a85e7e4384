package config

import (
	"log"

	"github.com/spf13/viper"
)

// DayHoursConfig describes the default opening hours for one weekday.
type DayHoursConfig struct {
	Open  bool `mapstructure:"open"`
	Start int  `mapstructure:"start"`
	End   int  `mapstructure:"end"`
}

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisChatDB   int    `mapstructure:"REDIS_CHAT_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Scheduling configuration.
	DefaultServiceMinutes int      `mapstructure:"DEFAULT_SERVICE_MINUTES"`
	Holidays              []string `mapstructure:"HOLIDAYS"`

	// BusinessHours maps lowercase weekday names ("monday", ...) to their
	// default opening hours. Weekdays absent from the map are closed.
	BusinessHours map[string]DayHoursConfig `mapstructure:"BUSINESS_HOURS"`
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
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_CHAT_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "slotdesk")
	viper.SetDefault("DEFAULT_SERVICE_MINUTES", 60)
	viper.SetDefault("HOLIDAYS", []string{})

	// Default weekday hours. The two legacy front-ends disagreed on Wednesday,
	// Thursday and the closed days; this table is the single source now and any
	// change goes through configuration, not code.
	viper.SetDefault("BUSINESS_HOURS", map[string]DayHoursConfig{
		"tuesday":   {Open: true, Start: 9, End: 19},
		"wednesday": {Open: true, Start: 13, End: 19},
		"thursday":  {Open: true, Start: 13, End: 19},
		"friday":    {Open: true, Start: 9, End: 19},
		"saturday":  {Open: true, Start: 9, End: 14},
	})

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
