package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/userseed/internal/common"
	"github.com/dmitrijs2005/userseed/internal/export"
)

// GenPass prints a password built from the configured generator options.
func (a *App) GenPass(ctx context.Context) error {
	pw, err := a.gen.Generate(a.config.Password)
	if err != nil {
		return err
	}
	a.printf("%s\n", pw)
	return nil
}

func (a *App) render(ctx context.Context, name string) (export.Format, string, error) {
	f, err := export.ParseFormat(name)
	if err != nil {
		return "", "", err
	}
	if a.org.Name == "" {
		return "", "", fmt.Errorf("%w: run 'org' first", common.ErrNoOrganization)
	}

	users := a.store.Users()
	if len(users) == 0 {
		a.log.Warn(ctx, "exporting an empty user list", "format", f)
	}

	out, err := export.Render(f, users, a.org, export.Settings{
		SendDeletionDays: a.config.SendDeletionDays,
		Identity: export.IdentityOptions{
			HashPasswords: a.config.HashPasswords,
			Now:           a.now,
		},
	})
	if err != nil {
		return "", "", err
	}
	return f, out, nil
}

// Export prints the list in the given format.
func (a *App) Export(ctx context.Context, format string) error {
	_, out, err := a.render(ctx, format)
	if err != nil {
		return err
	}
	a.printf("%s\n", out)
	return nil
}

// Save writes the list in the given format to the configured output
// directory. An empty name selects the format's default file name.
func (a *App) Save(ctx context.Context, format, name string) error {
	f, out, err := a.render(ctx, format)
	if err != nil {
		return err
	}
	if name == "" {
		name = f.DefaultFileName()
	}

	path, err := export.WriteFile(a.config.OutputDir, name, out)
	if err != nil {
		return err
	}

	a.printf("Saved %d users to %s\n", a.store.Len(), path)
	a.log.Info(ctx, "export saved", "format", f, "path", path, "users", a.store.Len())
	return nil
}
