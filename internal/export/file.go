package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/userseed/internal/common"
	"github.com/dmitrijs2005/userseed/internal/filex"
	"github.com/dmitrijs2005/userseed/internal/models"
)

// Format names an export format.
type Format string

const (
	FormatBitwarden Format = "bitwarden"
	FormatCommands  Format = "commands"
	FormatIdentity  Format = "idp"
)

// ParseFormat maps a user-supplied name (or one of its aliases) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bitwarden", "bw", "send":
		return FormatBitwarden, nil
	case "commands", "cmd", "bwcli":
		return FormatCommands, nil
	case "idp", "json", "identity":
		return FormatIdentity, nil
	}
	return "", fmt.Errorf("%w: %q", common.ErrUnknownFormat, s)
}

// DefaultFileName is used when the user asks for a file without naming it.
func (f Format) DefaultFileName() string {
	switch f {
	case FormatCommands:
		return "bitwarden-send.ps1"
	case FormatIdentity:
		return "identity-import.json"
	default:
		return "bitwarden-send.txt"
	}
}

// Settings carries the knobs of every export format.
type Settings struct {
	SendDeletionDays int
	Identity         IdentityOptions
}

// Render produces the text of the given format.
func Render(f Format, users []models.User, org models.Organization, s Settings) (string, error) {
	switch f {
	case FormatBitwarden:
		return FormatBitwardenData(users, org), nil
	case FormatCommands:
		return FormatBitwardenCommands(users, org, s.SendDeletionDays), nil
	case FormatIdentity:
		return FormatIdentityImport(users, org, s.Identity)
	}
	return "", fmt.Errorf("%w: %q", common.ErrUnknownFormat, f)
}

// WriteFile stores content as dir/name, creating dir under the working
// directory. The file is readable by the owner only since exports carry
// plaintext passwords.
func WriteFile(dir, name, content string) (string, error) {
	if filepath.Base(name) != name || name == "." || name == ".." {
		return "", fmt.Errorf("%w: file name %q must not contain a path", common.ErrValidation, name)
	}

	d, err := filex.EnsureSubdDir(dir)
	if err != nil {
		return "", err
	}

	path := filepath.Join(d, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
