// Package models defines the account records composed in a userseed session.
package models

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/dmitrijs2005/userseed/internal/common"
)

// User is a synthetic account. Username is the unique key inside a list.
type User struct {
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// FullName joins first and last name, skipping empty parts.
func (u User) FullName() string {
	parts := make([]string, 0, 2)
	for _, p := range []string{u.FirstName, u.LastName} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// Validate checks the fields required for export.
func (u User) Validate() error {
	if u.Username == "" {
		return fmt.Errorf("%w: username is required", common.ErrValidation)
	}
	if strings.IndexFunc(u.Username, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: username %q contains whitespace", common.ErrValidation, u.Username)
	}
	if !u.Role.Valid() {
		return fmt.Errorf("%w: role %q: %w", common.ErrValidation, u.Role, ErrInvalidRole)
	}
	if u.Email != "" {
		if _, err := mail.ParseAddress(u.Email); err != nil {
			return fmt.Errorf("%w: email %q: %v", common.ErrValidation, u.Email, err)
		}
	}
	return nil
}

func (u User) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-20s %-20s %s", u.Username, u.Role, u.FullName())
	if u.Email != "" {
		fmt.Fprintf(&sb, " <%s>", u.Email)
	}
	return sb.String()
}

// Organization is the tenant the accounts are created for.
type Organization struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

func (o Organization) Validate() error {
	if strings.TrimSpace(o.Name) == "" {
		return fmt.Errorf("%w: organization name is required", common.ErrValidation)
	}
	if o.URL == "" {
		return nil
	}
	u, err := url.Parse(o.URL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: organization url %q must be an absolute http(s) url", common.ErrValidation, o.URL)
	}
	return nil
}
