package cli

import (
	"context"

	"github.com/dmitrijs2005/userseed/internal/models"
)

// SetOrganization prompts for the organization name and URL.
func (a *App) SetOrganization(ctx context.Context) error {
	name, err := GetTextWithDefault(a.reader, "Enter organization name", a.org.Name, a.out)
	if err != nil {
		return err
	}
	url, err := GetTextWithDefault(a.reader, "Enter organization URL", a.org.URL, a.out)
	if err != nil {
		return err
	}

	org := models.Organization{Name: name, URL: url}
	if err := org.Validate(); err != nil {
		return err
	}

	a.org = org
	a.log.Info(ctx, "organization set", "name", org.Name, "url", org.URL)
	return nil
}
