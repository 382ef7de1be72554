package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/userseed/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell an omitted key apart from an explicit zero value.
type JsonConfig struct {
	OrganizationName *string       `json:"organization_name"`
	OrganizationURL  *string       `json:"organization_url"`
	Password         *JsonPassword `json:"password"`
	OutputDir        *string       `json:"output_dir"`
	HashPasswords    *bool         `json:"hash_passwords"`
	SendDeletionDays *int          `json:"send_deletion_days"`
	LogLevel         *string       `json:"log_level"`
}

type JsonPassword struct {
	Length           *int  `json:"length"`
	Uppercase        *bool `json:"uppercase"`
	Lowercase        *bool `json:"lowercase"`
	Digits           *bool `json:"digits"`
	Symbols          *bool `json:"symbols"`
	ExcludeAmbiguous *bool `json:"exclude_ambiguous"`
}

// parseJson overlays cfg with the JSON file named by -c/-config, if any.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&cfg.OrganizationName, jc.OrganizationName)
	setString(&cfg.OrganizationURL, jc.OrganizationURL)
	setString(&cfg.OutputDir, jc.OutputDir)
	setString(&cfg.LogLevel, jc.LogLevel)
	setBool(&cfg.HashPasswords, jc.HashPasswords)
	setInt(&cfg.SendDeletionDays, jc.SendDeletionDays)

	if p := jc.Password; p != nil {
		setInt(&cfg.Password.Length, p.Length)
		setBool(&cfg.Password.Uppercase, p.Uppercase)
		setBool(&cfg.Password.Lowercase, p.Lowercase)
		setBool(&cfg.Password.Digits, p.Digits)
		setBool(&cfg.Password.Symbols, p.Symbols)
		setBool(&cfg.Password.ExcludeAmbiguous, p.ExcludeAmbiguous)
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
