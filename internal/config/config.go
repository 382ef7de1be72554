package config

import (
	"fmt"
	"os"

	"github.com/dmitrijs2005/userseed/internal/common"
	"github.com/dmitrijs2005/userseed/internal/passgen"
)

// Config holds runtime settings for the userseed CLI.
type Config struct {
	OrganizationName string
	OrganizationURL  string
	Password         passgen.Options
	OutputDir        string
	HashPasswords    bool
	SendDeletionDays int
	LogLevel         string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.OrganizationName = ""
	c.OrganizationURL = ""
	c.Password = passgen.DefaultOptions()
	c.OutputDir = "exports"
	c.HashPasswords = false
	c.SendDeletionDays = 7
	c.LogLevel = "info"
}

// Validate rejects settings the generator or the exporters cannot work with.
func (c *Config) Validate() error {
	if len(c.Password.Classes()) == 0 {
		return fmt.Errorf("%w: password: %w", common.ErrValidation, passgen.ErrNoCharacterClasses)
	}
	if c.Password.Length < 0 {
		return fmt.Errorf("%w: password length must not be negative", common.ErrValidation)
	}
	if c.SendDeletionDays < 1 {
		return fmt.Errorf("%w: send deletion days must be at least 1", common.ErrValidation)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output dir is required", common.ErrValidation)
	}
	return nil
}

// LoadConfig builds a Config from os.Args and the process environment.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:], os.LookupEnv)
}

// Load applies defaults, environment, JSON and flags in that order.
func Load(args []string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := loadDotenv(args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, lookup); err != nil {
		return nil, err
	}
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
