package cli

import (
	"context"

	"github.com/dmitrijs2005/bankclient/internal/client/models"
	"github.com/dmitrijs2005/bankclient/internal/client/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register shows the signup page, reads the form and submits it. Local
// validation failures and server rejections are printed and returned.
func (a *App) Register(ctx context.Context) error {
	a.Navigate(ctx, services.RouteSignup)

	var r models.Registration
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Enter id", &r.ID},
		{"Enter name", &r.Name},
		{"Enter nickname (optional)", &r.Nickname},
		{"Enter phone number", &r.PhoneNumber},
		{"Enter email", &r.Email},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	// wipe clears only the terminal read buffer; the string copy below
	// lives until it is garbage collected.
	defer wipe(password)
	r.Password = string(password)

	if err := a.gateway.Register(ctx, r); err != nil {
		a.println("Registration failed:", a.gateway.LastAttempt().Reason)
		return err
	}
	return nil
}

// Login reads credentials and signs in. On success the gateway updates the
// session and the home page is shown.
func (a *App) Login(ctx context.Context) error {
	identity, err := getSimpleText(a.reader, "Enter id", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	// Same as in Register: the string passed on is not wiped.
	defer wipe(password)

	if err := a.gateway.Login(ctx, identity, string(password)); err != nil {
		a.println("Login failed:", a.gateway.LastAttempt().Reason)
		return err
	}
	return nil
}

// Logout forgets the local session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.gateway.Logout(ctx); err != nil {
		a.println("Logout failed:", a.gateway.LastAttempt().Reason)
		return err
	}
	return nil
}
