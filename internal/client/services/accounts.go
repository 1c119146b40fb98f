// Package services contains the client's application services: the
// authentication gateway that mutates the session and the account resolver
// that decides which home screen a logged-in user gets.
package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/bankclient/internal/client/client"
	"github.com/dmitrijs2005/bankclient/internal/client/models"
	"github.com/dmitrijs2005/bankclient/internal/logging"
)

// Degradation causes logged when a lookup collapses to NoAccount.
const (
	CauseUserNotFound          = "user_not_found"
	CauseUserLookupUnavailable = "user_lookup_unavailable"
	CauseUserLookupFailed      = "user_lookup_failed"
	CauseUserWithoutUID        = "user_without_uid"
	CauseAccountsUnavailable   = "accounts_unavailable"
	CauseAccountsFailed        = "accounts_failed"
)

// AccountLookup is the part of client.Client the resolver needs.
type AccountLookup interface {
	GetUser(ctx context.Context, identity string) (*models.User, error)
	ListAccounts(ctx context.Context, uid models.UID) ([]models.Account, error)
}

// AccountResolver reduces identity → user → accounts to a Verdict.
//
// Any failure along the chain yields NoAccount; the view layer only needs
// to choose between onboarding and account management. The reason is kept
// in the logs under "cause". There are no retries: the next session change
// starts a new lookup.
type AccountResolver struct {
	api AccountLookup
	log logging.Logger
}

func NewAccountResolver(api AccountLookup, log logging.Logger) *AccountResolver {
	return &AccountResolver{api: api, log: log.With("component", "account_resolver")}
}

func (r *AccountResolver) Resolve(ctx context.Context, identity string) Verdict {
	log := r.log.With("identity", identity)

	user, err := r.api.GetUser(ctx, identity)
	if errors.Is(err, context.Canceled) {
		log.Debug(ctx, "user lookup cancelled", "error", err)
		return NoAccount()
	}
	if err != nil {
		log.Warn(ctx, "user lookup degraded to no account", "cause", userCause(err), "error", err)
		return NoAccount()
	}
	if user.UID == "" {
		log.Warn(ctx, "user lookup degraded to no account", "cause", CauseUserWithoutUID)
		return NoAccount()
	}

	accounts, err := r.api.ListAccounts(ctx, user.UID)
	if errors.Is(err, context.Canceled) {
		log.Debug(ctx, "account lookup cancelled", "uid", user.UID, "error", err)
		return NoAccount()
	}
	if err != nil {
		log.Warn(ctx, "account lookup degraded to no account", "cause", accountsCause(err), "uid", user.UID, "error", err)
		return NoAccount()
	}

	v := HasAccounts(accounts)
	log.Debug(ctx, "accounts resolved", "verdict", v.Kind, "count", len(accounts))
	return v
}

func userCause(err error) string {
	switch {
	case errors.Is(err, client.ErrNotFound):
		return CauseUserNotFound
	case errors.Is(err, client.ErrUnavailable):
		return CauseUserLookupUnavailable
	default:
		return CauseUserLookupFailed
	}
}

func accountsCause(err error) string {
	if errors.Is(err, client.ErrUnavailable) {
		return CauseAccountsUnavailable
	}
	return CauseAccountsFailed
}
