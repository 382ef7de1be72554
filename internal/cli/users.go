package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/userseed/internal/common"
	"github.com/dmitrijs2005/userseed/internal/models"
	"github.com/dmitrijs2005/userseed/internal/names"
	"github.com/dmitrijs2005/userseed/internal/shared"
)

const defaultRole = models.RoleDataViewer

// Add collects a new user and appends it to the list. The username defaults
// to first.last and the password is generated unless the user types one.
func (a *App) Add(ctx context.Context) error {
	first, err := GetSimpleText(a.reader, "Enter first name", a.out)
	if err != nil {
		return err
	}
	last, err := GetSimpleText(a.reader, "Enter last name", a.out)
	if err != nil {
		return err
	}
	first, last = names.Capitalize(first), names.Capitalize(last)

	username, err := GetTextWithDefault(a.reader, "Enter username", names.SuggestUsername(first, last), a.out)
	if err != nil {
		return err
	}
	if username == "" {
		return fmt.Errorf("username: %w", common.ErrEmptyInput)
	}
	if a.store.CheckDuplicate(username) {
		return fmt.Errorf("user %q: %w", username, common.ErrAlreadyExists)
	}

	email, err := GetSimpleText(a.reader, "Enter email (optional)", a.out)
	if err != nil {
		return err
	}

	role, err := a.inputRole(defaultRole)
	if err != nil {
		return err
	}

	password, err := a.inputPassword("")
	if err != nil {
		return err
	}

	u := models.User{
		Username:  username,
		Password:  password,
		Email:     email,
		FirstName: first,
		LastName:  last,
		Role:      role,
	}
	if err := a.store.Add(u); err != nil {
		return err
	}

	a.log.Info(ctx, "user added", "username", username, "role", role)
	return nil
}

// Edit re-prompts every field of an existing user, offering the current
// values as defaults.
func (a *App) Edit(ctx context.Context, username string) error {
	cur, ok := a.store.Get(username)
	if !ok {
		return fmt.Errorf("user %q: %w", username, common.ErrNotFound)
	}

	next := cur
	var err error

	if next.FirstName, err = GetTextWithDefault(a.reader, "First name", cur.FirstName, a.out); err != nil {
		return err
	}
	if next.LastName, err = GetTextWithDefault(a.reader, "Last name", cur.LastName, a.out); err != nil {
		return err
	}
	next.FirstName, next.LastName = names.Capitalize(next.FirstName), names.Capitalize(next.LastName)

	if next.Username, err = GetTextWithDefault(a.reader, "Username", cur.Username, a.out); err != nil {
		return err
	}
	if next.Email, err = GetTextWithDefault(a.reader, "Email ('-' to clear)", cur.Email, a.out); err != nil {
		return err
	}
	if next.Email == "-" {
		next.Email = ""
	}
	if next.Role, err = a.inputRole(cur.Role); err != nil {
		return err
	}
	if next.Password, err = a.inputPassword(cur.Password); err != nil {
		return err
	}

	if err := a.store.Update(username, next); err != nil {
		return err
	}

	a.log.Info(ctx, "user updated", "username", next.Username, "previous", username)
	return nil
}

func (a *App) Delete(ctx context.Context, username string) error {
	if err := a.store.Delete(username); err != nil {
		return err
	}
	a.log.Info(ctx, "user deleted", "username", username)
	return nil
}

// Show prints every field of one user, password included.
func (a *App) Show(ctx context.Context, username string) error {
	u, ok := a.store.Get(username)
	if !ok {
		return fmt.Errorf("user %q: %w", username, common.ErrNotFound)
	}

	a.printf("Username:   %s\n", u.Username)
	a.printf("Password:   %s\n", u.Password)
	a.printf("Email:      %s\n", u.Email)
	a.printf("First name: %s\n", u.FirstName)
	a.printf("Last name:  %s\n", u.LastName)
	a.printf("Role:       %s\n", u.Role)
	if !u.CreatedAt.IsZero() {
		a.printf("Created:    %s\n", u.CreatedAt.Format(time.RFC3339))
	}
	return nil
}

// List prints the users as a table, passwords omitted.
func (a *App) List(ctx context.Context) error {
	users := a.store.Users()
	if len(users) == 0 {
		a.printf("No users yet. Use 'add' to create one.\n")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tUSERNAME\tNAME\tEMAIL\tROLE")
	for i, u := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", i+1, u.Username, u.FullName(), u.Email, u.Role)
	}
	return tw.Flush()
}

// Clear empties the list after confirmation.
func (a *App) Clear(ctx context.Context) error {
	n := a.store.Len()
	if n == 0 {
		return nil
	}
	ok, err := Confirm(a.reader, fmt.Sprintf("Remove all %d users?", n), a.out)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	a.store.Clear()
	a.log.Info(ctx, "user list cleared", "removed", n)
	return nil
}

// inputRole shows the numbered role list and accepts a number or a name.
func (a *App) inputRole(def models.Role) (models.Role, error) {
	var sb strings.Builder
	sb.WriteString("Select role:")
	for i, r := range models.Roles() {
		fmt.Fprintf(&sb, "\n  %d) %s", i+1, r)
	}

	s, err := GetTextWithDefault(a.reader, sb.String(), string(def), a.out)
	if err != nil {
		return "", err
	}
	return models.ParseRole(s)
}

// inputPassword returns a typed, hidden or generated password. An empty
// answer keeps cur, or generates one when cur is empty.
func (a *App) inputPassword(cur string) (string, error) {
	prompt := "Enter password (empty to generate, '-' for hidden input)"
	if cur != "" {
		prompt = "Password (empty to keep, 'gen' to generate, '-' for hidden input)"
	}

	s, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}

	switch {
	case s == "-":
		pw, err := GetPassword(a.out)
		if err != nil {
			return "", err
		}
		defer shared.WipeByteArray(pw)
		if len(pw) == 0 {
			return "", fmt.Errorf("password: %w", common.ErrEmptyInput)
		}
		return string(pw), nil
	case s == "gen", s == "" && cur == "":
		return a.gen.Generate(a.config.Password)
	case s == "":
		return cur, nil
	}
	return s, nil
}
