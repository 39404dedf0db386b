package cli

import (
	"context"
	"fmt"

	"github.com/ivycraft/navigator/internal/common"
)

// getSimpleText, getPassword and getMultiline are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline

type credentialsFunc func(ctx context.Context, email string, password []byte) error

func (a *App) withCredentials(ctx context.Context, fn credentialsFunc) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	return fn(ctx, email, password)
}

// Signup prompts for an email and password and creates a new account.
// The outcome is reported through the notification printer.
func (a *App) Signup(ctx context.Context) error {
	return a.withCredentials(ctx, a.session.Signup)
}

// Login prompts for credentials and signs in.
func (a *App) Login(ctx context.Context) error {
	return a.withCredentials(ctx, a.session.Login)
}

func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	return nil
}

// WhoAmI prints the signed-in identity.
func (a *App) WhoAmI(_ context.Context) error {
	id, ok := a.session.Identity()
	if !ok {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "id:    %s\nemail: %s\ntier:  %s\n", id.ID, id.Email, id.Tier)
	return nil
}
