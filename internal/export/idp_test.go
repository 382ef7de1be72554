package export

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/userseed/internal/models"
)

var exportTime = time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func TestFormatIdentityImport_Layout(t *testing.T) {
	created := time.Date(2024, 5, 1, 9, 0, 0, 123456789, time.UTC)
	users := []models.User{
		{
			Username: "jdoe", Password: "pw1", Email: "jdoe@acme.example",
			FirstName: "Jane", LastName: "Doe", Role: models.RoleDataEditor, CreatedAt: created,
		},
		{Username: "svc", Role: models.RoleDataViewer},
	}

	got, err := FormatIdentityImport(users, testOrg, IdentityOptions{
		Now:   func() time.Time { return exportTime },
		NewID: sequentialIDs(),
	})
	require.NoError(t, err)

	want := `{
  "organization": {
    "name": "Acme",
    "url": "https://acme.example"
  },
  "exported_at": "2024-06-01T12:30:00Z",
  "users": [
    {
      "user_id": "id-1",
      "username": "jdoe",
      "email": "jdoe@acme.example",
      "email_verified": false,
      "given_name": "Jane",
      "family_name": "Doe",
      "name": "Jane Doe",
      "password": "pw1",
      "app_metadata": {
        "roles": [
          "Data Editor"
        ],
        "organization": "Acme"
      },
      "created_at": "2024-05-01T09:00:00Z"
    },
    {
      "user_id": "id-2",
      "username": "svc",
      "email_verified": false,
      "given_name": "",
      "family_name": "",
      "name": "",
      "password": "",
      "app_metadata": {
        "roles": [
          "Data Viewer"
        ],
        "organization": "Acme"
      }
    }
  ]
}`
	assert.Equal(t, want, got)
}

func TestFormatIdentityImport_EmptyList(t *testing.T) {
	got, err := FormatIdentityImport(nil, testOrg, IdentityOptions{Now: func() time.Time { return exportTime }})
	require.NoError(t, err)

	var doc IdentityImport
	require.NoError(t, json.Unmarshal([]byte(got), &doc))
	assert.NotNil(t, doc.Users)
	assert.Empty(t, doc.Users)
	assert.Contains(t, got, `"users": []`)
}

func TestBuildIdentityImport_DefaultIDsAreUUIDs(t *testing.T) {
	doc, err := BuildIdentityImport([]models.User{
		{Username: "a", Role: models.RoleAdministrator},
		{Username: "b", Role: models.RoleAdministrator},
	}, testOrg, IdentityOptions{})
	require.NoError(t, err)

	require.Len(t, doc.Users, 2)
	for _, u := range doc.Users {
		_, err := uuid.Parse(u.UserID)
		require.NoError(t, err)
	}
	assert.NotEqual(t, doc.Users[0].UserID, doc.Users[1].UserID)
}

func TestBuildIdentityImport_HashPasswords(t *testing.T) {
	doc, err := BuildIdentityImport([]models.User{
		{Username: "jdoe", Password: "correct horse", Role: models.RoleAdministrator},
	}, testOrg, IdentityOptions{HashPasswords: true, BcryptCost: bcrypt.MinCost})
	require.NoError(t, err)

	rec := doc.Users[0]
	assert.Nil(t, rec.Password)
	require.NotNil(t, rec.CustomPasswordHash)
	assert.Equal(t, "bcrypt", rec.CustomPasswordHash.Algorithm)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(rec.CustomPasswordHash.Hash.Value), []byte("correct horse")))
}

func TestBuildIdentityImport_HashFailure(t *testing.T) {
	long := make([]byte, 100)
	for i := range long {
		long[i] = 'x'
	}
	_, err := BuildIdentityImport([]models.User{
		{Username: "jdoe", Password: string(long), Role: models.RoleAdministrator},
	}, testOrg, IdentityOptions{HashPasswords: true, BcryptCost: bcrypt.MinCost})
	require.Error(t, err)
}

func TestFormatIdentityImport_HashedRecordHasNoPasswordKey(t *testing.T) {
	got, err := FormatIdentityImport([]models.User{
		{Username: "jdoe", Password: "pw", Role: models.RoleAdministrator},
	}, testOrg, IdentityOptions{HashPasswords: true, BcryptCost: bcrypt.MinCost, NewID: sequentialIDs()})
	require.NoError(t, err)

	assert.NotContains(t, got, `"password"`)
	assert.Contains(t, got, `"custom_password_hash"`)
}
