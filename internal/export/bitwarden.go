// Package export renders a user list into the formats handed over to the
// password manager and to the identity provider.
package export

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/userseed/internal/models"
)

// Separator frames every block of the Bitwarden Send text.
const Separator = "==================================="

// DefaultSendDeletionDays is passed to "bw send -d" when no value is given.
const DefaultSendDeletionDays = 7

const unlockCommand = "bw unlock"

// FormatBitwardenData renders one text block per user, ready to be pasted
// into a Bitwarden Send.
func FormatBitwardenData(users []models.User, org models.Organization) string {
	var sb strings.Builder
	sb.WriteString(Separator + "\n")

	for _, u := range users {
		if u.Email != "" {
			fmt.Fprintf(&sb, "\n%s\n", u.Email)
			fmt.Fprintf(&sb, "%s - %s\n\n", org.Name, u.Username)
		} else {
			fmt.Fprintf(&sb, "\n%s - %s\n\n", org.Name, u.Username)
		}

		fmt.Fprintf(&sb, "Username: %s\n", u.Username)
		fmt.Fprintf(&sb, "Password: %s\n", u.Password)
		fmt.Fprintf(&sb, "URL: %s\n", org.URL)
		sb.WriteString("\n" + Separator + "\n")
	}

	return sb.String()
}

// FormatBitwardenCommands renders a PowerShell script that unlocks the vault
// and creates one hidden Send per user. Values are escaped for PowerShell
// double-quoted strings; "`n" separates the lines of each Send.
func FormatBitwardenCommands(users []models.User, org models.Organization, deletionDays int) string {
	if deletionDays <= 0 {
		deletionDays = DefaultSendDeletionDays
	}

	lines := make([]string, 0, len(users)+1)
	lines = append(lines, unlockCommand)

	for _, u := range users {
		credentials := strings.Join([]string{
			"Username: " + psEscape(u.Username),
			"Password: " + psEscape(u.Password),
			"URL: " + psEscape(org.URL),
		}, "`n")

		name := psEscape(org.Name + " - " + u.Username)
		lines = append(lines, fmt.Sprintf(`bw send -n "%s" -d %d --hidden "%s"`, name, deletionDays, credentials))
	}

	return strings.Join(lines, "\n")
}

var psReplacer = strings.NewReplacer("`", "``", `"`, "`\"", "$", "`$")

func psEscape(s string) string {
	return psReplacer.Replace(s)
}
