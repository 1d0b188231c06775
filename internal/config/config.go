package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	S3       S3Config       `mapstructure:"s3"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	AI       AIConfig       `mapstructure:"ai"`
	Planner  PlannerConfig  `mapstructure:"planner"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// JWTConfig defines JWT specific configuration
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	// Viper parses duration strings ("60m", "1h") directly into this field.
	Expiration time.Duration `mapstructure:"expiration"`
}

// AIConfig controls the optional AI plan supplier. When disabled or the
// key is empty, plan generation falls through to the built-in synthesizer.
type AIConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	APIKey  string        `mapstructure:"api_key"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// PlannerConfig tunes the rolling-window scheduler.
type PlannerConfig struct {
	// RollingWeeks is how many weeks of workouts stay generated ahead of
	// the athlete's current week.
	RollingWeeks int `mapstructure:"rolling_weeks"`
	// DefaultHorizonWeeks is the plan length used when a goal has no
	// event date to anchor to.
	DefaultHorizonWeeks int `mapstructure:"default_horizon_weeks"`
	// MaxPlanWeeks caps total plan length regardless of event distance.
	MaxPlanWeeks int `mapstructure:"max_plan_weeks"`
	// FeedbackLookback bounds how far back completion logs count toward
	// feedback aggregation.
	FeedbackLookback time.Duration `mapstructure:"feedback_lookback"`
	// FeedbackSampleLimit caps how many recent logs feed aggregation.
	FeedbackSampleLimit int `mapstructure:"feedback_sample_limit"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	// Set the path to look for the config file in
	viper.AddConfigPath(path)
	// Set the name of the config file (without extension)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// --- Environment Variable Handling ---
	viper.AutomaticEnv()
	// Use replacer for nested keys e.g., server.address -> SERVER_ADDRESS
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	// --- Set default values ---
	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("database.uri", "mongodb://localhost:27017")
	viper.SetDefault("database.name", "peakplan")
	viper.SetDefault("s3.use_ssl", true)
	viper.SetDefault("jwt.expiration", "1h")
	viper.SetDefault("ai.enabled", false)
	viper.SetDefault("ai.model", "gpt-4o-mini")
	viper.SetDefault("ai.timeout", "30s")
	viper.SetDefault("planner.rolling_weeks", 2)
	viper.SetDefault("planner.default_horizon_weeks", 12)
	viper.SetDefault("planner.max_plan_weeks", 32)
	viper.SetDefault("planner.feedback_lookback", "336h") // two weeks
	viper.SetDefault("planner.feedback_sample_limit", 10)

	// --- Read Config File ---
	err = viper.ReadInConfig()
	// If config file not found, continue (might rely solely on env vars).
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	// --- Unmarshal Config ---
	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	return config, nil
}
