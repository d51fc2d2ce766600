package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port string `yaml:"port"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type AuthConfig struct {
	Enabled   bool   `yaml:"enabled"`
	JWTSecret string `yaml:"jwt_secret"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
}

// Load reads the yaml config at filename and applies environment
// overrides on top. A missing file is not an error; defaults still
// apply.
func Load(filename string) (*Config, error) {
	cfg := &Config{
		Server:   ServerConfig{Port: "8000"},
		Database: DatabaseConfig{Path: "database.db"},
		Auth:     AuthConfig{Enabled: false, JWTSecret: "change-this-secret"},
	}

	file, err := os.Open(filename)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	cfg.Server.Port = getEnv("PORT", cfg.Server.Port)
	cfg.Database.Path = getEnv("DB_PATH", cfg.Database.Path)
	cfg.Auth.JWTSecret = getEnv("JWT_SECRET", cfg.Auth.JWTSecret)
	if v := os.Getenv("AUTH_ENABLED"); v != "" {
		cfg.Auth.Enabled = v == "true"
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
