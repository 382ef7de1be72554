package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/userseed/internal/common"
	"github.com/dmitrijs2005/userseed/internal/flagx"
)

const defaultEnvFile = ".env"

// loadDotenv loads the file named by -e/-env into the process environment.
// Without the flag ./.env is loaded when it exists.
func loadDotenv(args []string) error {
	path := flagx.EnvFileFlag(args)
	if path == "" {
		if err := godotenv.Load(defaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", defaultEnvFile, err)
		}
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// parseEnv overlays cfg with USERSEED_* variables.
func parseEnv(cfg *Config, lookup func(string) (string, bool)) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(common.EnvPrefix + name)
		return v, ok && v != ""
	}
	getBool := func(name string, dst *bool) error {
		v, ok := get(name)
		if !ok {
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", common.EnvPrefix, name, err)
		}
		*dst = b
		return nil
	}
	getInt := func(name string, dst *int) error {
		v, ok := get(name)
		if !ok {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", common.EnvPrefix, name, err)
		}
		*dst = n
		return nil
	}

	if v, ok := get("ORG_NAME"); ok {
		cfg.OrganizationName = v
	}
	if v, ok := get("ORG_URL"); ok {
		cfg.OrganizationURL = v
	}
	if v, ok := get("OUTPUT_DIR"); ok {
		cfg.OutputDir = v
	}
	if v, ok := get("LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}

	return errors.Join(
		getInt("PASSWORD_LENGTH", &cfg.Password.Length),
		getBool("PASSWORD_SYMBOLS", &cfg.Password.Symbols),
		getBool("EXCLUDE_AMBIGUOUS", &cfg.Password.ExcludeAmbiguous),
		getBool("HASH_PASSWORDS", &cfg.HashPasswords),
		getInt("SEND_DAYS", &cfg.SendDeletionDays),
	)
}
