package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/ordem-api/internal/errors"
)

// Config holds the server settings read from the environment
type Config struct {
	GRPCPort    int    `env:"ORDEM_GRPC_PORT" envDefault:"50051"`
	MetricsPort int    `env:"ORDEM_METRICS_PORT" envDefault:"9090"`
	RedisAddr   string `env:"ORDEM_REDIS_ADDR" envDefault:"localhost:6379"`
	RitualsFile string `env:"ORDEM_RITUALS_FILE"`
	LogLevel    string `env:"ORDEM_LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"ORDEM_LOG_FORMAT" envDefault:"text"`
}

// Validate checks the settings that cannot be defaulted
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.GRPCPort <= 0 || c.GRPCPort > 65535 {
		vb.Field("grpc_port", "must be between 1 and 65535")
	}
	if c.MetricsPort < 0 || c.MetricsPort > 65535 {
		vb.Field("metrics_port", "must be between 0 and 65535")
	}
	if strings.TrimSpace(c.RedisAddr) == "" {
		vb.RequiredField("redis_addr")
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		vb.Field("log_level", "must be one of debug, info, warn, error")
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		vb.Field("log_format", "must be text or json")
	}
	return vb.Build()
}

// loadConfig parses the environment, then applies any flag the user set
func loadConfig(cmd *cobra.Command) (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}

	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.GRPCPort = grpcPort
	}
	if flags.Changed("metrics-port") {
		cfg.MetricsPort = metricsPort
	}
	if flags.Changed("redis") {
		cfg.RedisAddr = redisAddr
	}
	if flags.Changed("rituals") {
		cfg.RitualsFile = ritualsFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(s))
	return level, err
}

// newLogger builds the process logger and installs it as the slog default
func newLogger(cfg *Config) *slog.Logger {
	level, _ := parseLevel(cfg.LogLevel)
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
