package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/userseed/internal/models"
)

// IdentityImport is the bulk-import document consumed by the identity
// provider: organization metadata plus one record per user.
type IdentityImport struct {
	Organization models.Organization `json:"organization"`
	ExportedAt   time.Time           `json:"exported_at"`
	Users        []IdentityUser      `json:"users"`
}

type IdentityUser struct {
	UserID             string        `json:"user_id"`
	Username           string        `json:"username"`
	Email              string        `json:"email,omitempty"`
	EmailVerified      bool          `json:"email_verified"`
	GivenName          string        `json:"given_name"`
	FamilyName         string        `json:"family_name"`
	Name               string        `json:"name"`
	// Password is nil when CustomPasswordHash is set.
	Password           *string       `json:"password,omitempty"`
	CustomPasswordHash *PasswordHash `json:"custom_password_hash,omitempty"`
	AppMetadata        AppMetadata   `json:"app_metadata"`
	CreatedAt          *time.Time    `json:"created_at,omitempty"`
}

type PasswordHash struct {
	Algorithm string    `json:"algorithm"`
	Hash      HashValue `json:"hash"`
}

type HashValue struct {
	Value string `json:"value"`
}

type AppMetadata struct {
	Roles        []models.Role `json:"roles"`
	Organization string        `json:"organization"`
}

// IdentityOptions tunes FormatIdentityImport. Zero values select defaults.
type IdentityOptions struct {
	// HashPasswords replaces the plaintext password with a bcrypt hash.
	HashPasswords bool
	// BcryptCost defaults to bcrypt.DefaultCost.
	BcryptCost int
	Now        func() time.Time
	NewID      func() string
}

func (o IdentityOptions) withDefaults() IdentityOptions {
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.NewID == nil {
		o.NewID = uuid.NewString
	}
	if o.BcryptCost == 0 {
		o.BcryptCost = bcrypt.DefaultCost
	}
	return o
}

// BuildIdentityImport converts users into identity-provider import records.
func BuildIdentityImport(users []models.User, org models.Organization, opts IdentityOptions) (*IdentityImport, error) {
	opts = opts.withDefaults()

	doc := &IdentityImport{
		Organization: org,
		ExportedAt:   opts.Now().UTC().Truncate(time.Second),
		Users:        make([]IdentityUser, 0, len(users)),
	}

	for _, u := range users {
		rec := IdentityUser{
			UserID:     opts.NewID(),
			Username:   u.Username,
			Email:      u.Email,
			GivenName:  u.FirstName,
			FamilyName: u.LastName,
			Name:       u.FullName(),
			AppMetadata: AppMetadata{
				Roles:        []models.Role{u.Role},
				Organization: org.Name,
			},
		}

		if opts.HashPasswords {
			h, err := bcrypt.GenerateFromPassword([]byte(u.Password), opts.BcryptCost)
			if err != nil {
				return nil, fmt.Errorf("hash password for %q: %w", u.Username, err)
			}
			rec.CustomPasswordHash = &PasswordHash{Algorithm: "bcrypt", Hash: HashValue{Value: string(h)}}
		} else {
			pw := u.Password
			rec.Password = &pw
		}

		if !u.CreatedAt.IsZero() {
			ts := u.CreatedAt.UTC().Truncate(time.Second)
			rec.CreatedAt = &ts
		}

		doc.Users = append(doc.Users, rec)
	}

	return doc, nil
}

// FormatIdentityImport renders the import document as indented JSON.
func FormatIdentityImport(users []models.User, org models.Organization, opts IdentityOptions) (string, error) {
	doc, err := BuildIdentityImport(users, org, opts)
	if err != nil {
		return "", err
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal identity import: %w", err)
	}
	return string(b), nil
}
