package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	DBPath       string   `json:"db_path"`
	WebEnabled   bool     `json:"web_enabled"`
	WebPort      int      `json:"web_port"`
	APIBaseURL   string   `json:"api_base_url"`
	PerPage      int      `json:"per_page"`
	FetchTimeout Duration `json:"fetch_timeout"`
	LogLevel     string   `json:"log_level"`
}

// Duration reads and writes Go duration strings such as "10s".
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("duration must be a string like \"10s\": %w", err)
	}
	if strings.TrimSpace(raw) == "" {
		*d = 0
		return nil
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

func Default() Config {
	return Config{
		WebPort:      8080,
		APIBaseURL:   "https://jsonplaceholder.typicode.com",
		PerPage:      12,
		FetchTimeout: Duration(10 * time.Second),
		LogLevel:     "info",
	}
}

func DefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "lazyboard", "config.json"), nil
}

func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}

func Load(path string) (Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return Config{}, err
	}

	if err := json.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return config, nil
}

// ApplyEnv overrides file values with LAZYBOARD_* environment variables.
func ApplyEnv(cfg Config) Config {
	cfg.APIBaseURL = getEnvString("LAZYBOARD_API_BASE_URL", cfg.APIBaseURL)
	cfg.WebPort = getEnvInt("LAZYBOARD_WEB_PORT", cfg.WebPort)
	cfg.PerPage = getEnvInt("LAZYBOARD_PER_PAGE", cfg.PerPage)
	cfg.LogLevel = getEnvString("LAZYBOARD_LOG_LEVEL", cfg.LogLevel)
	cfg.FetchTimeout = Duration(getEnvDuration("LAZYBOARD_FETCH_TIMEOUT", time.Duration(cfg.FetchTimeout)))
	return cfg
}

func Validate(cfg Config) error {
	if cfg.PerPage <= 0 {
		return fmt.Errorf("per_page must be positive, got %d", cfg.PerPage)
	}
	if cfg.WebPort < 0 || cfg.WebPort > 65535 {
		return fmt.Errorf("web_port out of range: %d", cfg.WebPort)
	}
	if cfg.FetchTimeout < 0 {
		return fmt.Errorf("fetch_timeout must not be negative")
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return err
	}
	return nil
}

func ParseLevel(value string) (slog.Level, error) {
	var level slog.Level
	if strings.TrimSpace(value) == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

func Save(path string, cfg Config) error {
	if err := EnsureDir(path); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

func getEnvString(key, defaultVal string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}
