package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// LogConfig holds the logging settings shared by the server and the client.
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json or text
	File   string // Empty disables file logging
}

// ServerConfig holds server configuration values loaded from environment variables.
type ServerConfig struct {
	HTTPPort       string
	AllowedOrigins []string
	RequestTimeout time.Duration
	MaxBodyBytes   int64
	Log            LogConfig
}

// ClientConfig holds terminal client configuration values loaded from environment variables.
type ClientConfig struct {
	ServerURL     string
	Timeout       time.Duration
	MarkdownStyle string
	Log           LogConfig
}

// LoadServerConfig loads server configuration from environment variables.
// It looks for a .env file first, then checks actual environment variables.
func LoadServerConfig() (*ServerConfig, error) {
	loadDotEnv()

	timeout, err := getEnvInt("REQUEST_TIMEOUT_SECONDS", 60)
	if err != nil {
		return nil, err
	}
	maxBody, err := getEnvInt("MAX_BODY_BYTES", 1<<20)
	if err != nil {
		return nil, err
	}

	cfg := &ServerConfig{
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		RequestTimeout: time.Duration(timeout) * time.Second,
		MaxBodyBytes:   int64(maxBody),
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
			File:   getEnv("LOG_FILE", ""),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks if the server configuration is usable.
func (c *ServerConfig) Validate() error {
	port, err := strconv.Atoi(c.HTTPPort)
	if err != nil || port < 0 || port > 65535 {
		return fmt.Errorf("HTTP_PORT must be a port number, got: %q", c.HTTPPort)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT_SECONDS must be positive, got: %s", c.RequestTimeout)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("MAX_BODY_BYTES must be positive, got: %d", c.MaxBodyBytes)
	}
	return nil
}

// LoadClientConfig loads terminal client configuration from environment variables.
func LoadClientConfig() (*ClientConfig, error) {
	loadDotEnv()

	timeout, err := getEnvInt("CLIENT_TIMEOUT_SECONDS", 30)
	if err != nil {
		return nil, err
	}

	cfg := &ClientConfig{
		ServerURL:     strings.TrimRight(getEnv("ASSISTANT_URL", "http://localhost:8080"), "/"),
		Timeout:       time.Duration(timeout) * time.Second,
		MarkdownStyle: getEnv("MARKDOWN_STYLE", "dark"),
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
			File:   getEnv("LOG_FILE", DefaultClientLogPath()),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks if the client configuration is usable.
func (c *ClientConfig) Validate() error {
	if !strings.HasPrefix(c.ServerURL, "http://") && !strings.HasPrefix(c.ServerURL, "https://") {
		return fmt.Errorf("ASSISTANT_URL must be an http(s) URL, got: %q", c.ServerURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("CLIENT_TIMEOUT_SECONDS must be positive, got: %s", c.Timeout)
	}
	return nil
}

// DefaultClientLogPath returns where the terminal client logs when LOG_FILE is unset.
// The client never logs to the terminal it draws on.
func DefaultClientLogPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(homeDir) == "" {
		return filepath.Join(".proposal-assistant", "logs", "client.log")
	}
	return filepath.Join(homeDir, ".proposal-assistant", "logs", "client.log")
}

// loadDotEnv loads .env from the working directory when present.
// Variables already set in the environment win.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded, using environment variables only", slog.Any("error", err))
	}
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	slog.Debug("env variable not set, using default", slog.String("key", key), slog.String("default", fallback))
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	raw := getEnv(key, strconv.Itoa(fallback))
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return n, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
