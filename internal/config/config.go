package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Extractor ExtractorConfig
	Scratch   ScratchConfig
	S3        S3Config
	Queue     QueueConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ExtractorConfig holds vision-model extraction settings. APIKey is
// required; the extractor constructor fails without it.
type ExtractorConfig struct {
	APIKey       string `mapstructure:"api_key"`
	BaseURL      string `mapstructure:"base_url"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// ScratchConfig selects and configures the scratch storage backend.
type ScratchConfig struct {
	Backend string `mapstructure:"backend"` // "local" or "s3"
	Dir     string `mapstructure:"dir"`     // local backend; empty means os.TempDir()
}

// S3Config holds settings for the S3 scratch backend.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Prefix    string `mapstructure:"prefix"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// QueueConfig holds processing queue settings.
type QueueConfig struct {
	Concurrency     int `mapstructure:"concurrency"`
	BufferSize      int `mapstructure:"buffer_size"`
	TaskTimeoutSecs int `mapstructure:"task_timeout_secs"`
}

// Load reads configuration from environment variables with the KYC_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("KYC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8000")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://localhost:5173")

	// Extractor defaults
	v.SetDefault("extractor.api_key", "")
	v.SetDefault("extractor.base_url", "https://api.fireworks.ai/inference/v1")
	v.SetDefault("extractor.default_model", "accounts/fireworks/models/qwen2p5-vl-32b-instruct")
	v.SetDefault("extractor.timeout_secs", 120)

	// Scratch storage defaults
	v.SetDefault("scratch.backend", "local")
	v.SetDefault("scratch.dir", "")

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "kyc-scratch")
	v.SetDefault("s3.prefix", "scratch")
	v.SetDefault("s3.endpoint", "")

	// Queue defaults
	v.SetDefault("queue.concurrency", 4)
	v.SetDefault("queue.buffer_size", 64)
	v.SetDefault("queue.task_timeout_secs", 300)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "KYC_SERVER_PORT",
		"server.read_timeout":     "KYC_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "KYC_SERVER_WRITE_TIMEOUT",
		"server.environment":      "KYC_SERVER_ENVIRONMENT",
		"cors.allowed_origins":    "KYC_CORS_ALLOWED_ORIGINS",
		"extractor.api_key":       "KYC_EXTRACTOR_API_KEY",
		"extractor.base_url":      "KYC_EXTRACTOR_BASE_URL",
		"extractor.default_model": "KYC_EXTRACTOR_DEFAULT_MODEL",
		"extractor.timeout_secs":  "KYC_EXTRACTOR_TIMEOUT_SECS",
		"scratch.backend":         "KYC_SCRATCH_BACKEND",
		"scratch.dir":             "KYC_SCRATCH_DIR",
		"s3.region":               "KYC_S3_REGION",
		"s3.bucket":               "KYC_S3_BUCKET",
		"s3.prefix":               "KYC_S3_PREFIX",
		"s3.endpoint":             "KYC_S3_ENDPOINT",
		"s3.access_key":           "KYC_S3_ACCESS_KEY",
		"s3.secret_key":           "KYC_S3_SECRET_KEY",
		"queue.concurrency":       "KYC_QUEUE_CONCURRENCY",
		"queue.buffer_size":       "KYC_QUEUE_BUFFER_SIZE",
		"queue.task_timeout_secs": "KYC_QUEUE_TASK_TIMEOUT_SECS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if KYC_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("KYC_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Extractor = ExtractorConfig{
		APIKey:       v.GetString("extractor.api_key"),
		BaseURL:      v.GetString("extractor.base_url"),
		DefaultModel: v.GetString("extractor.default_model"),
		TimeoutSecs:  v.GetInt("extractor.timeout_secs"),
	}

	cfg.Scratch = ScratchConfig{
		Backend: v.GetString("scratch.backend"),
		Dir:     v.GetString("scratch.dir"),
	}

	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Prefix:    v.GetString("s3.prefix"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
	}

	cfg.Queue = QueueConfig{
		Concurrency:     v.GetInt("queue.concurrency"),
		BufferSize:      v.GetInt("queue.buffer_size"),
		TaskTimeoutSecs: v.GetInt("queue.task_timeout_secs"),
	}

	return cfg, nil
}
