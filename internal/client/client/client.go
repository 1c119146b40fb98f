package client

import (
	"context"

	"github.com/dmitrijs2005/bankclient/internal/client/models"
)

// Client is the bank API surface used by the session layer.
type Client interface {
	Login(ctx context.Context, identity, password string) error
	Register(ctx context.Context, r models.Registration) error
	GetUser(ctx context.Context, identity string) (*models.User, error)
	ListAccounts(ctx context.Context, uid models.UID) ([]models.Account, error)
}
