package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/bankclient/internal/client/bus"
	"github.com/dmitrijs2005/bankclient/internal/client/models"
	"github.com/dmitrijs2005/bankclient/internal/client/session"
	"github.com/dmitrijs2005/bankclient/internal/logging"
)

// AttemptState tracks one gateway invocation.
type AttemptState int

const (
	Idle AttemptState = iota
	InFlight
	Succeeded
	Failed
)

func (s AttemptState) String() string {
	switch s {
	case Idle:
		return "idle"
	case InFlight:
		return "in_flight"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Attempt is the observable state of the latest gateway operation.
type Attempt struct {
	Op     string
	State  AttemptState
	Reason string
}

// AuthAPI is the part of client.Client the gateway needs.
type AuthAPI interface {
	Login(ctx context.Context, identity, password string) error
	Register(ctx context.Context, r models.Registration) error
}

// AuthGateway performs the operations that change who is logged in.
//
// Contract:
//   - Login: remote credential check, then store write, bus publish and
//     navigation to the landing route. On failure the store is untouched.
//   - Logout: local only. Store clear, bus publish, navigation to landing.
//   - Register: local validation gate, remote call, navigation to login.
//     Does not touch the session.
type AuthGateway struct {
	api   AuthAPI
	store session.Store
	bus   bus.Publisher
	nav   Navigator
	log   logging.Logger

	mu     sync.Mutex
	last   Attempt
	onStep func(Attempt)
}

type GatewayOption func(*AuthGateway)

// WithNavigator sets where the gateway sends the user after an operation.
func WithNavigator(n Navigator) GatewayOption {
	return func(g *AuthGateway) { g.nav = n }
}

// WithStateHook is called on every attempt state change, e.g. to show a
// spinner while InFlight.
func WithStateHook(fn func(Attempt)) GatewayOption {
	return func(g *AuthGateway) { g.onStep = fn }
}

func NewAuthGateway(api AuthAPI, store session.Store, pub bus.Publisher, log logging.Logger, opts ...GatewayOption) *AuthGateway {
	g := &AuthGateway{
		api:   api,
		store: store,
		bus:   pub,
		log:   log.With("component", "auth_gateway"),
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// LastAttempt returns the state of the most recent operation.
func (g *AuthGateway) LastAttempt() Attempt {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.last
}

func (g *AuthGateway) step(op string, st AttemptState, reason string) {
	a := Attempt{Op: op, State: st, Reason: reason}
	g.mu.Lock()
	g.last = a
	hook := g.onStep
	g.mu.Unlock()
	if hook != nil {
		hook(a)
	}
}

func (g *AuthGateway) fail(ctx context.Context, op string, err error) error {
	reason := FailureReason(err)
	g.step(op, Failed, reason)
	g.log.Info(ctx, op+" failed", "reason", reason, "error", err)
	return err
}

func (g *AuthGateway) navigate(ctx context.Context, r Route) {
	if g.nav != nil {
		g.nav.Navigate(ctx, r)
	}
}

func (g *AuthGateway) Login(ctx context.Context, identity, secret string) error {
	const op = "login"

	identity = strings.TrimSpace(identity)
	if err := ValidateCredentials(identity, secret); err != nil {
		return g.fail(ctx, op, err)
	}

	g.step(op, InFlight, "")
	if err := g.api.Login(ctx, identity, secret); err != nil {
		return g.fail(ctx, op, err)
	}

	if err := g.store.Write(ctx, identity); err != nil {
		return g.fail(ctx, op, fmt.Errorf("%w: %w", errSessionSave, err))
	}
	g.step(op, Succeeded, "")
	g.log.Info(ctx, "login succeeded", "identity", identity)

	g.bus.Publish(ctx)
	g.navigate(ctx, RouteLanding)
	return nil
}

func (g *AuthGateway) Logout(ctx context.Context) error {
	const op = "logout"

	g.step(op, InFlight, "")
	if err := g.store.Clear(ctx); err != nil {
		return g.fail(ctx, op, fmt.Errorf("%w: %w", errSessionSave, err))
	}
	g.step(op, Succeeded, "")
	g.log.Info(ctx, "logged out")

	g.bus.Publish(ctx)
	g.navigate(ctx, RouteLanding)
	return nil
}

func (g *AuthGateway) Register(ctx context.Context, r models.Registration) error {
	const op = "register"

	r = normalizeRegistration(r)
	if err := ValidateRegistration(r); err != nil {
		return g.fail(ctx, op, err)
	}

	g.step(op, InFlight, "")
	if err := g.api.Register(ctx, r); err != nil {
		return g.fail(ctx, op, err)
	}
	g.step(op, Succeeded, "")
	g.log.Info(ctx, "registration succeeded", "identity", r.ID)

	g.navigate(ctx, RouteLogin)
	return nil
}

// normalizeRegistration trims the text fields the way the user most likely
// meant them. The password is sent as typed.
func normalizeRegistration(r models.Registration) models.Registration {
	r.ID = strings.TrimSpace(r.ID)
	r.Name = strings.TrimSpace(r.Name)
	r.Nickname = strings.TrimSpace(r.Nickname)
	r.PhoneNumber = strings.TrimSpace(r.PhoneNumber)
	r.Email = strings.TrimSpace(r.Email)
	return r
}
