package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/userseed/internal/common"
	"github.com/dmitrijs2005/userseed/internal/config"
	"github.com/dmitrijs2005/userseed/internal/logging"
	"github.com/dmitrijs2005/userseed/internal/models"
	"github.com/dmitrijs2005/userseed/internal/passgen"
	"github.com/dmitrijs2005/userseed/internal/userlist"
)

type App struct {
	config    *config.Config
	store     *userlist.Store
	org       models.Organization
	gen       *passgen.Generator
	log       logging.Logger
	reader    *bufio.Reader
	out       io.Writer
	now       func() time.Time
	userCount int
}

// NewApp builds an App reading commands from stdin and printing to stdout.
func NewApp(c *config.Config, log logging.Logger) *App {
	return newApp(c, log, os.Stdin, os.Stdout)
}

func newApp(c *config.Config, log logging.Logger, in io.Reader, out io.Writer) *App {
	a := &App{
		config: c,
		store:  userlist.NewStore(),
		org:    models.Organization{Name: c.OrganizationName, URL: c.OrganizationURL},
		gen:    passgen.New(),
		log:    log,
		reader: bufio.NewReader(in),
		out:    out,
		now:    time.Now,
	}

	a.store.Subscribe(func(users []models.User) {
		a.userCount = len(users)
		a.log.Debug(context.Background(), "user list changed", "count", len(users))
	})

	return a
}

// Run prompts for the organization when it is not configured and then
// serves commands until the user exits.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintf(a.out, "Welcome to %s (type 'help' for commands)\n", common.AppName)

	if a.org.Name == "" {
		if err := a.SetOrganization(ctx); err != nil {
			a.log.Warn(ctx, "organization not set", "error", err)
		}
	}

	runREPL(ctx, a, a.log, a.getStatus, a.reader)
}

func (a *App) getStatus() string {
	org := a.org.Name
	if org == "" {
		org = "no organization"
	}
	noun := "users"
	if a.userCount == 1 {
		noun = "user"
	}
	return fmt.Sprintf("(%s, %d %s)", org, a.userCount, noun)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
