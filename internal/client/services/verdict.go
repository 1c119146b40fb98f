package services

import "github.com/dmitrijs2005/bankclient/internal/client/models"

// VerdictKind is the tri-state outcome of an account lookup.
type VerdictKind int

const (
	// VerdictPending means the lookup has not completed. It never decides a view.
	VerdictPending VerdictKind = iota
	VerdictNoAccount
	VerdictHasAccounts
)

func (k VerdictKind) String() string {
	switch k {
	case VerdictPending:
		return "pending"
	case VerdictNoAccount:
		return "no_account"
	case VerdictHasAccounts:
		return "has_accounts"
	default:
		return "unknown"
	}
}

// Verdict is the result of AccountResolver.Resolve.
type Verdict struct {
	Kind     VerdictKind
	Accounts []models.Account
}

func Pending() Verdict   { return Verdict{Kind: VerdictPending} }
func NoAccount() Verdict { return Verdict{Kind: VerdictNoAccount} }

// HasAccounts returns NoAccount for an empty list.
func HasAccounts(accounts []models.Account) Verdict {
	if len(accounts) == 0 {
		return NoAccount()
	}
	return Verdict{Kind: VerdictHasAccounts, Accounts: accounts}
}
