package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultJWTSecret     = "supersecretkey"
	defaultAdminPassword = "admin123"
)

type Config struct {
	Addr          string        `yaml:"addr"`
	Env           string        `yaml:"env"`
	APITimeout    time.Duration `yaml:"timeout"`
	ContentDir    string        `yaml:"content_dir"`
	DatabasePath  string        `yaml:"database_path"`
	JWTSecret     string        `yaml:"jwt_secret"`
	TokenDuration time.Duration `yaml:"token_duration"`
	AdminUsername string        `yaml:"admin_username"`
	AdminPassword string        `yaml:"admin_password"`
	Notify        NotifyConfig  `yaml:"notify"`
}

type NotifyConfig struct {
	ResendAPIKey string        `yaml:"resend_api_key"`
	EmailFrom    string        `yaml:"email_from"`
	EmailTo      string        `yaml:"email_to"`
	LineToken    string        `yaml:"line_token"`
	Timeout      time.Duration `yaml:"timeout"`
}

// LoadConfig builds the configuration from env vars with defaults, then
// overlays the YAML file at path when one is given.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Addr:          getEnv("SITE_ADDR", ":8080"),
		Env:           getEnv("SITE_ENV", "development"),
		APITimeout:    15 * time.Second,
		ContentDir:    getEnv("SITE_CONTENT_DIR", "./content"),
		DatabasePath:  getEnv("SITE_DATABASE_PATH", "site.db"),
		JWTSecret:     getEnv("SITE_JWT_SECRET", defaultJWTSecret),
		TokenDuration: 1 * time.Hour,
		AdminUsername: getEnv("SITE_ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("SITE_ADMIN_PASSWORD", defaultAdminPassword),
		Notify: NotifyConfig{
			ResendAPIKey: os.Getenv("RESEND_API_KEY"),
			EmailFrom:    getEnv("EMAIL_FROM", "noreply@logicton.com"),
			EmailTo:      os.Getenv("EMAIL_TO"),
			LineToken:    os.Getenv("LINE_NOTIFY_TOKEN"),
			Timeout:      10 * time.Second,
		},
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Validate rejects configurations that must not reach a deployed environment.
// The fallback secrets are tolerated only when Env is "development".
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if c.ContentDir == "" {
		return fmt.Errorf("content_dir is required")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database_path is required")
	}
	if c.AdminUsername == "" {
		return fmt.Errorf("admin_username is required")
	}
	if c.Env != "development" {
		if c.JWTSecret == defaultJWTSecret || c.JWTSecret == "" {
			return fmt.Errorf("jwt_secret must be set outside development")
		}
		if c.AdminPassword == defaultAdminPassword || c.AdminPassword == "" {
			return fmt.Errorf("admin_password must be set outside development")
		}
	}
	if c.TokenDuration <= 0 {
		c.TokenDuration = 1 * time.Hour
	}
	if c.APITimeout <= 0 {
		c.APITimeout = 15 * time.Second
	}
	if c.Notify.Timeout <= 0 {
		c.Notify.Timeout = 10 * time.Second
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
