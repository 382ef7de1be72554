package export

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/dmitrijs2005/userseed/internal/common"
	"github.com/dmitrijs2005/userseed/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"bitwarden": FormatBitwarden,
		"BW":        FormatBitwarden,
		"commands":  FormatCommands,
		"cmd":       FormatCommands,
		"idp":       FormatIdentity,
		" json ":    FormatIdentity,
	}
	for in, want := range tests {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("csv")
	require.ErrorIs(t, err, common.ErrUnknownFormat)
}

func TestRender(t *testing.T) {
	users := []models.User{{Username: "jdoe", Password: "pw", Role: models.RoleDataViewer}}
	s := Settings{SendDeletionDays: 2, Identity: IdentityOptions{Now: func() time.Time { return exportTime }}}

	out, err := Render(FormatBitwarden, users, testOrg, s)
	require.NoError(t, err)
	assert.Equal(t, FormatBitwardenData(users, testOrg), out)

	out, err = Render(FormatCommands, users, testOrg, s)
	require.NoError(t, err)
	assert.Equal(t, FormatBitwardenCommands(users, testOrg, 2), out)

	out, err = Render(FormatIdentity, users, testOrg, s)
	require.NoError(t, err)
	assert.Contains(t, out, `"username": "jdoe"`)

	_, err = Render("xml", users, testOrg, s)
	require.ErrorIs(t, err, common.ErrUnknownFormat)
}

func TestWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	path, err := WriteFile(dir, "send.txt", "hello")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "send.txt"), path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(b))

	if runtime.GOOS != "windows" {
		fi, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), fi.Mode().Perm())
	}
}

func TestWriteFile_RejectsPaths(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"../escape.txt", "sub/file.txt", "..", "."} {
		_, err := WriteFile(dir, name, "x")
		require.ErrorIs(t, err, common.ErrValidation, name)
	}
}

func TestFormat_DefaultFileName(t *testing.T) {
	assert.Equal(t, "bitwarden-send.txt", FormatBitwarden.DefaultFileName())
	assert.Equal(t, "bitwarden-send.ps1", FormatCommands.DefaultFileName())
	assert.Equal(t, "identity-import.json", FormatIdentity.DefaultFileName())
}
