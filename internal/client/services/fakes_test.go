package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/bankclient/internal/client/models"
)

// fakeClient implements client.Client and records what it was asked.
type fakeClient struct {
	mu sync.Mutex

	LoginErr    error
	RegisterErr error

	GetUserRet *models.User
	GetUserErr error

	ListAccountsRet []models.Account
	ListAccountsErr error

	LoginCalls        int
	RegisterCalls     int
	GetUserCalls      int
	ListAccountsCalls int

	LastLoginID       string
	LastLoginPassword string
	LastRegistration  models.Registration
	LastGetUserID     string
	LastUID           models.UID
}

func (f *fakeClient) Login(ctx context.Context, identity, password string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LoginCalls++
	f.LastLoginID = identity
	f.LastLoginPassword = password
	return f.LoginErr
}

func (f *fakeClient) Register(ctx context.Context, r models.Registration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.RegisterCalls++
	f.LastRegistration = r
	return f.RegisterErr
}

func (f *fakeClient) GetUser(ctx context.Context, identity string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.GetUserCalls++
	f.LastGetUserID = identity
	if f.GetUserErr != nil {
		return nil, f.GetUserErr
	}
	return f.GetUserRet, nil
}

func (f *fakeClient) ListAccounts(ctx context.Context, uid models.UID) ([]models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ListAccountsCalls++
	f.LastUID = uid
	return f.ListAccountsRet, f.ListAccountsErr
}

// countingPublisher counts Publish calls.
type countingPublisher struct {
	n int
}

func (p *countingPublisher) Publish(context.Context) { p.n++ }

type recordingNavigator struct {
	routes []Route
}

func (n *recordingNavigator) Navigate(_ context.Context, r Route) {
	n.routes = append(n.routes, r)
}
