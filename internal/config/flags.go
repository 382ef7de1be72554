package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/userseed/internal/flagx"
)

var (
	valueFlags = []string{"-o", "-u", "-l", "-d", "-days", "-log"}
	boolFlags  = []string{"-s", "-x", "-hash"}
)

// parseFlags populates cfg from the command-line flags it owns. Other
// arguments (such as -c and -e) are filtered out with flagx.FilterArgs.
func parseFlags(cfg *Config, args []string) error {
	filtered := flagx.FilterArgs(args, valueFlags, boolFlags...)

	fs := flag.NewFlagSet("userseed", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.OrganizationName, "o", cfg.OrganizationName, "organization name")
	fs.StringVar(&cfg.OrganizationURL, "u", cfg.OrganizationURL, "organization URL")
	fs.IntVar(&cfg.Password.Length, "l", cfg.Password.Length, "generated password length")
	fs.BoolVar(&cfg.Password.Symbols, "s", cfg.Password.Symbols, "include symbols in generated passwords")
	fs.BoolVar(&cfg.Password.ExcludeAmbiguous, "x", cfg.Password.ExcludeAmbiguous, "exclude ambiguous characters")
	fs.StringVar(&cfg.OutputDir, "d", cfg.OutputDir, "directory for exported files")
	fs.BoolVar(&cfg.HashPasswords, "hash", cfg.HashPasswords, "bcrypt passwords in the identity-provider export")
	fs.IntVar(&cfg.SendDeletionDays, "days", cfg.SendDeletionDays, "deletion delay of Bitwarden Sends, in days")
	fs.StringVar(&cfg.LogLevel, "log", cfg.LogLevel, "log level")

	return fs.Parse(filtered)
}
