package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/bankclient/internal/client/repositories/metadata"
)

// IdentityKey is the metadata key holding the logged-in identity.
const IdentityKey = "userId"

// Reader is the read side of a Store.
type Reader interface {
	Read(ctx context.Context) (State, error)
}

// Store is the single source of truth for the session. It trusts its caller
// and never talks to the network or announces changes itself.
type Store interface {
	Reader
	Write(ctx context.Context, identity string) error
	Clear(ctx context.Context) error
}

// PersistentStore keeps the identity in the metadata table so it survives
// restarts.
type PersistentStore struct {
	repo metadata.Repository
}

func NewPersistentStore(repo metadata.Repository) *PersistentStore {
	return &PersistentStore{repo: repo}
}

func (s *PersistentStore) Read(ctx context.Context) (State, error) {
	identity, err := s.repo.Get(ctx, IdentityKey)
	if errors.Is(err, metadata.ErrNotFound) {
		return LoggedOut(), nil
	}
	if err != nil {
		return LoggedOut(), fmt.Errorf("read session: %w", err)
	}
	return LoggedIn(identity), nil
}

func (s *PersistentStore) Write(ctx context.Context, identity string) error {
	if identity == "" {
		return errors.New("write session: empty identity")
	}
	if err := s.repo.Set(ctx, IdentityKey, identity); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

func (s *PersistentStore) Clear(ctx context.Context) error {
	if err := s.repo.Delete(ctx, IdentityKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// MemoryStore is a Store that lives only as long as the process.
type MemoryStore struct {
	mu    sync.RWMutex
	state State
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Read(context.Context) (State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state, nil
}

func (s *MemoryStore) Write(_ context.Context, identity string) error {
	if identity == "" {
		return errors.New("write session: empty identity")
	}
	s.mu.Lock()
	s.state = LoggedIn(identity)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear(context.Context) error {
	s.mu.Lock()
	s.state = LoggedOut()
	s.mu.Unlock()
	return nil
}
