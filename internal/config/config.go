// CLAUDE:SUMMARY Top-level sunrise config structs and YAML loader with defaults.
// Package config handles sunrise configuration from YAML files, with
// environment overrides applied by the binary.
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sunrisefront/sunrise/agentapi"
	"github.com/sunrisefront/sunrise/pageschema"
)

// Config is the top-level sunrise configuration.
type Config struct {
	Server ServerConfig      `yaml:"server"`
	Site   pageschema.Config `yaml:"site"`
	Agent  agentapi.Config   `yaml:"agent"`
}

// ServerConfig controls the HTTP listener and the catalog database.
type ServerConfig struct {
	Port         string        `yaml:"port"`
	CatalogDB    string        `yaml:"catalog_db"`
	LogLevel     string        `yaml:"log_level"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
}

// LoadFile reads a YAML configuration file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	return &cfg, nil
}

// ApplyDefaults fills unset fields. The per-service configs keep their own
// defaults and apply them at construction.
func (c *Config) ApplyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8086"
	}
	if c.Server.CatalogDB == "" {
		c.Server.CatalogDB = "db/catalog.db"
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}
	if c.Server.WriteTimeout <= 0 {
		c.Server.WriteTimeout = 60 * time.Second
	}
	if c.Server.IdleTimeout <= 0 {
		c.Server.IdleTimeout = 60 * time.Second
	}
	// Keep the two service configs aligned on the store identity unless the
	// file sets them apart on purpose.
	if c.Agent.SiteName == "" {
		c.Agent.SiteName = c.Site.SiteName
	}
	if c.Agent.BaseURL == "" {
		c.Agent.BaseURL = c.Site.BaseURL
	}
}
