package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

// chdirTemp moves into an empty directory so no stray .env file is loaded.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		if v, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { os.Setenv(k, v) })
			os.Unsetenv(k)
		}
	}
}

var serverKeys = []string{"HTTP_PORT", "ALLOWED_ORIGINS", "REQUEST_TIMEOUT_SECONDS", "MAX_BODY_BYTES", "LOG_LEVEL", "LOG_FORMAT", "LOG_FILE"}
var clientKeys = []string{"ASSISTANT_URL", "CLIENT_TIMEOUT_SECONDS", "MARKDOWN_STYLE", "LOG_LEVEL", "LOG_FORMAT", "LOG_FILE"}

func TestLoadServerConfigDefaults(t *testing.T) {
	chdirTemp(t)
	clearEnv(t, serverKeys...)

	cfg, err := LoadServerConfig()
	if err != nil {
		t.Fatalf("LoadServerConfig() error: %v", err)
	}
	if cfg.HTTPPort != "8080" {
		t.Errorf("HTTPPort = %q", cfg.HTTPPort)
	}
	if want := []string{"http://localhost:3000", "http://localhost:5173"}; !reflect.DeepEqual(cfg.AllowedOrigins, want) {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if cfg.RequestTimeout != 60*time.Second {
		t.Errorf("RequestTimeout = %s", cfg.RequestTimeout)
	}
	if cfg.MaxBodyBytes != 1<<20 {
		t.Errorf("MaxBodyBytes = %d", cfg.MaxBodyBytes)
	}
	if cfg.Log.File != "" {
		t.Errorf("server should not log to a file by default, got %q", cfg.Log.File)
	}
}

func TestLoadServerConfigFromEnv(t *testing.T) {
	chdirTemp(t)
	clearEnv(t, serverKeys...)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("ALLOWED_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "5")

	cfg, err := LoadServerConfig()
	if err != nil {
		t.Fatalf("LoadServerConfig() error: %v", err)
	}
	if cfg.HTTPPort != "9090" {
		t.Errorf("HTTPPort = %q", cfg.HTTPPort)
	}
	if want := []string{"https://a.example", "https://b.example"}; !reflect.DeepEqual(cfg.AllowedOrigins, want) {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("RequestTimeout = %s", cfg.RequestTimeout)
	}
}

func TestLoadServerConfigFromDotEnv(t *testing.T) {
	dir := chdirTemp(t)
	clearEnv(t, serverKeys...)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("HTTP_PORT=7070\nLOG_FORMAT=text\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		os.Unsetenv("HTTP_PORT")
		os.Unsetenv("LOG_FORMAT")
	})

	cfg, err := LoadServerConfig()
	if err != nil {
		t.Fatalf("LoadServerConfig() error: %v", err)
	}
	if cfg.HTTPPort != "7070" || cfg.Log.Format != "text" {
		t.Errorf("expected .env values, got port=%q format=%q", cfg.HTTPPort, cfg.Log.Format)
	}
}

func TestLoadServerConfigInvalid(t *testing.T) {
	tests := map[string]string{
		"HTTP_PORT":               "http",
		"REQUEST_TIMEOUT_SECONDS": "0",
		"MAX_BODY_BYTES":          "lots",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			chdirTemp(t)
			clearEnv(t, serverKeys...)
			t.Setenv(key, value)

			if _, err := LoadServerConfig(); err == nil || !strings.Contains(err.Error(), key) {
				t.Fatalf("expected error mentioning %s, got %v", key, err)
			}
		})
	}
}

func TestLoadClientConfig(t *testing.T) {
	chdirTemp(t)
	clearEnv(t, clientKeys...)
	t.Setenv("ASSISTANT_URL", "https://assistant.example/")
	t.Setenv("CLIENT_TIMEOUT_SECONDS", "12")

	cfg, err := LoadClientConfig()
	if err != nil {
		t.Fatalf("LoadClientConfig() error: %v", err)
	}
	if cfg.ServerURL != "https://assistant.example" {
		t.Errorf("ServerURL = %q", cfg.ServerURL)
	}
	if cfg.Timeout != 12*time.Second {
		t.Errorf("Timeout = %s", cfg.Timeout)
	}
	if cfg.MarkdownStyle != "dark" {
		t.Errorf("MarkdownStyle = %q", cfg.MarkdownStyle)
	}
	if cfg.Log.File != DefaultClientLogPath() {
		t.Errorf("Log.File = %q", cfg.Log.File)
	}
}

func TestLoadClientConfigRejectsBadURL(t *testing.T) {
	chdirTemp(t)
	clearEnv(t, clientKeys...)
	t.Setenv("ASSISTANT_URL", "localhost:8080")

	if _, err := LoadClientConfig(); err == nil {
		t.Fatal("expected error for URL without scheme")
	}
}
