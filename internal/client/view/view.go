// Package view decides which home screen to show from the session state and
// the account lookup, and keeps that decision current as the session changes.
package view

import (
	"github.com/dmitrijs2005/bankclient/internal/client/models"
	"github.com/dmitrijs2005/bankclient/internal/client/services"
	"github.com/dmitrijs2005/bankclient/internal/client/session"
)

// State is one of the mutually exclusive home screens.
type State int

const (
	// Loading is shown while the account lookup runs. It is never final.
	Loading State = iota
	Unauthenticated
	AuthenticatedNoAccount
	AuthenticatedWithAccount
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Unauthenticated:
		return "unauthenticated"
	case AuthenticatedNoAccount:
		return "authenticated_no_account"
	case AuthenticatedWithAccount:
		return "authenticated_with_account"
	default:
		return "unknown"
	}
}

// View is what a renderer needs. Identity is empty when logged out and
// Accounts is set only for AuthenticatedWithAccount.
type View struct {
	State    State
	Identity string
	Accounts []models.Account
}

// Derive maps a session state and a verdict to a view. The verdict is
// ignored when logged out.
func Derive(st session.State, v services.Verdict) View {
	identity, ok := st.Identity()
	if !ok {
		return View{State: Unauthenticated}
	}

	switch v.Kind {
	case services.VerdictHasAccounts:
		if len(v.Accounts) > 0 {
			return View{State: AuthenticatedWithAccount, Identity: identity, Accounts: v.Accounts}
		}
		return View{State: AuthenticatedNoAccount, Identity: identity}
	case services.VerdictNoAccount:
		return View{State: AuthenticatedNoAccount, Identity: identity}
	default:
		return View{State: Loading, Identity: identity}
	}
}
