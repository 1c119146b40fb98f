package view

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/bankclient/internal/client/bus"
	"github.com/dmitrijs2005/bankclient/internal/client/services"
	"github.com/dmitrijs2005/bankclient/internal/client/session"
	"github.com/dmitrijs2005/bankclient/internal/logging"
)

var ErrAlreadyActive = errors.New("controller already active")

// Resolver is implemented by services.AccountResolver.
type Resolver interface {
	Resolve(ctx context.Context, identity string) services.Verdict
}

// Controller keeps one screen's View in sync with the session.
//
// Every cycle (activation, bus publish, Refresh) takes a new sequence number.
// A lookup result is applied only if its cycle is still the newest and the
// controller is still active, so a slow answer for an old identity can never
// overwrite a newer view. Superseded lookups are not cancelled; their results
// are dropped.
type Controller struct {
	store    session.Reader
	sub      bus.Subscriber
	resolver Resolver
	log      logging.Logger
	onChange func(View)

	mu     sync.Mutex
	seq    uint64
	view   View
	active bool
	subs   *bus.Subscription
	ctx    context.Context
	cancel context.CancelFunc

	// deliverMu serializes onChange calls so an older view is never
	// delivered after a newer one.
	deliverMu sync.Mutex

	wg sync.WaitGroup
}

type Option func(*Controller)

// WithOnChange registers fn to receive every applied view. fn is called
// without the controller lock held, possibly from a lookup goroutine, and
// only while its view is still the current one. Calls never overlap, so fn
// must not block on another cycle of the same controller.
func WithOnChange(fn func(View)) Option {
	return func(c *Controller) { c.onChange = fn }
}

func NewController(store session.Reader, sub bus.Subscriber, resolver Resolver, log logging.Logger, opts ...Option) *Controller {
	c := &Controller{
		store:    store,
		sub:      sub,
		resolver: resolver,
		log:      log.With("component", "view_controller"),
		view:     View{State: Loading},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Activate subscribes to session changes and runs the first cycle. Lookups
// started while active use a context derived from ctx that Deactivate
// cancels.
func (c *Controller) Activate(ctx context.Context) error {
	c.mu.Lock()
	if c.active {
		c.mu.Unlock()
		return ErrAlreadyActive
	}
	c.active = true
	c.ctx, c.cancel = context.WithCancel(ctx)
	c.subs = c.sub.Subscribe(func(ctx context.Context) { c.cycle(ctx) })
	c.mu.Unlock()

	c.cycle(ctx)
	return nil
}

// Deactivate unsubscribes and drops the results of lookups still running.
// It is safe to call on an inactive controller.
func (c *Controller) Deactivate() {
	c.mu.Lock()
	if !c.active {
		c.mu.Unlock()
		return
	}
	c.active = false
	c.seq++
	sub := c.subs
	c.subs = nil
	cancel := c.cancel
	c.mu.Unlock()

	c.sub.Unsubscribe(sub)
	cancel()
}

// Refresh runs a cycle without a bus publish.
func (c *Controller) Refresh(ctx context.Context) {
	c.cycle(ctx)
}

// View returns the current view.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// Active reports whether the controller is subscribed.
func (c *Controller) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Wait blocks until every lookup started so far has returned.
func (c *Controller) Wait() {
	c.wg.Wait()
}

func (c *Controller) cycle(ctx context.Context) {
	c.mu.Lock()
	if !c.active {
		c.mu.Unlock()
		return
	}
	c.seq++
	seq := c.seq
	lookupCtx := c.ctx
	c.mu.Unlock()

	st, err := c.store.Read(ctx)
	if err != nil {
		c.log.Error(ctx, "read session", "error", err)
		st = session.LoggedOut()
	}

	identity, ok := st.Identity()
	if !ok {
		c.apply(seq, View{State: Unauthenticated})
		return
	}

	if !c.apply(seq, Derive(st, services.Pending())) {
		return
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		v := c.resolver.Resolve(lookupCtx, identity)
		if !c.apply(seq, Derive(st, v)) {
			c.log.Debug(lookupCtx, "stale lookup dropped", "identity", identity, "seq", seq)
		}
	}()
}

// apply stores v if seq is still current and reports whether it did.
func (c *Controller) apply(seq uint64, v View) bool {
	c.mu.Lock()
	if !c.active || seq != c.seq {
		c.mu.Unlock()
		return false
	}
	c.view = v
	fn := c.onChange
	c.mu.Unlock()

	if fn != nil {
		c.deliver(seq, v, fn)
	}
	return true
}

// deliver hands v to fn unless a newer cycle has started in the meantime.
func (c *Controller) deliver(seq uint64, v View, fn func(View)) {
	c.deliverMu.Lock()
	defer c.deliverMu.Unlock()

	c.mu.Lock()
	current := c.active && seq == c.seq
	c.mu.Unlock()
	if !current {
		return
	}
	fn(v)
}
