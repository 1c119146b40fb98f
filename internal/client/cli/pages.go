package cli

import (
	"context"

	"github.com/dmitrijs2005/bankclient/internal/client/services"
	"github.com/dmitrijs2005/bankclient/internal/client/view"
)

// Navigate implements services.Navigator by printing the page for r.
func (a *App) Navigate(ctx context.Context, r services.Route) {
	a.mu.Lock()
	a.page = r
	a.mu.Unlock()

	switch r {
	case services.RouteLanding:
		a.renderHome()
	case services.RouteLogin:
		a.println("Account created. Type 'login' to sign in.")
	case services.RouteSignup:
		a.println("Create your account. Nickname is optional; the password must be longer than 8 characters and contain a digit.")
	default:
		a.log.Warn(ctx, "unknown route", "route", string(r))
	}
}

// Page returns the route shown last.
func (a *App) Page() services.Route {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.page
}

// renderHome prints the home page. While the account lookup runs it prints
// the loading view first, then the settled one.
func (a *App) renderHome() {
	v := a.home.View()
	if v.State == view.Loading {
		a.renderView(v)
		a.home.Wait()
		v = a.home.View()
		if v.State == view.Loading {
			return
		}
	}
	a.renderView(v)
}

func (a *App) renderView(v view.View) {
	switch v.State {
	case view.Unauthenticated:
		a.println("Welcome to the bank!")
		a.println("  * Current account: deposits, withdrawals, transfers. 1% interest every hour.")
		a.println("  * Savings account: daily instalments. Up to 1.5% daily interest.")
		a.println("  * Security: account passwords for safe transactions.")
		a.println("Type 'register' to sign up or 'login' to sign in.")

	case view.Loading:
		a.println("Loading...")

	case view.AuthenticatedNoAccount:
		a.println("Please open an account.")
		a.println("You have no accounts yet.")
		a.println("  * Current account: deposits, withdrawals, transfers. 1% interest every hour.")
		a.println("  * Savings account: daily instalments. Up to 1.5% daily interest.")
		a.println("Type 'open' to open an account.")

	case view.AuthenticatedWithAccount:
		a.printf("Welcome, %s!\n", v.Identity)
		a.println("Your accounts:")
		for _, acc := range v.Accounts {
			a.printf("  %s  balance %s\n", acc.AccNumber, acc.Balance)
		}
	}
}

// Home prints the home page again.
func (a *App) Home(ctx context.Context) error {
	a.Navigate(ctx, services.RouteLanding)
	return nil
}

// Open is the open-account call to action. Opening accounts is not
// supported by the client yet.
func (a *App) Open(ctx context.Context) error {
	a.home.Wait()
	switch a.home.View().State {
	case view.AuthenticatedNoAccount:
		a.println("Opening an account is not available yet.")
	case view.AuthenticatedWithAccount:
		a.println("You already have an account.")
	default:
		a.println("Please log in first.")
	}
	return nil
}
