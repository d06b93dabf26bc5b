package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	dirName   = "gudangku"
	fileName  = "config.json"
	dirPerms  = 0700
	filePerms = 0600

	DefaultURL = "http://localhost:3000"
)

// Config holds persisted CLI configuration: the server URL and the bearer
// token. These are the only two durable values the console keeps besides
// the activity log.
type Config struct {
	ServerURL string `json:"server_url"`
	Token     string `json:"token"`
}

// env collects process-environment overrides, read with cleanenv.
type env struct {
	ServerURL string `env:"GUDANGKU_SERVER_URL"`
	Token     string `env:"GUDANGKU_TOKEN"`
}

// Path returns the full path to the config file.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, dirName, fileName), nil
}

// Dir returns the directory holding the config file and the activity log.
func Dir() (string, error) {
	p, err := Path()
	if err != nil {
		return "", err
	}
	return filepath.Dir(p), nil
}

// Load reads the config from disk and applies environment overrides.
// Returns a zero-value Config (not an error) if the file doesn't exist.
func Load() (*Config, error) {
	cfg := &Config{ServerURL: DefaultURL}

	p, err := Path()
	if err == nil {
		data, err := os.ReadFile(p)
		switch {
		case err == nil:
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		case errors.Is(err, os.ErrNotExist):
			// first run
		default:
			return nil, err
		}
	}

	var e env
	if err := cleanenv.ReadEnv(&e); err == nil {
		if e.ServerURL != "" {
			cfg.ServerURL = e.ServerURL
		}
		if e.Token != "" {
			cfg.Token = e.Token
		}
	}

	if cfg.ServerURL == "" {
		cfg.ServerURL = DefaultURL
	}
	return cfg, nil
}

// Save writes the config to disk, creating the directory if needed.
func Save(cfg *Config) error {
	p, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), dirPerms); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, data, filePerms)
}

// ClearToken drops the stored token but keeps the server URL, so a
// re-login doesn't lose the configured server.
func ClearToken(cfg *Config) error {
	cfg.Token = ""
	return Save(cfg)
}

// Clear removes the config file.
func Clear() error {
	p, err := Path()
	if err != nil {
		return err
	}
	err = os.Remove(p)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// HasToken reports whether a token is configured.
func (c *Config) HasToken() bool {
	return c.Token != ""
}
