package cli

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/bankclient/internal/client/bus"
	"github.com/dmitrijs2005/bankclient/internal/client/session"
	"github.com/dmitrijs2005/bankclient/internal/logging"
)

// Header keeps the prompt status in step with the session. It is a bus
// subscriber of its own and knows nothing about the home page.
type Header struct {
	store session.Reader
	sub   bus.Subscriber
	log   logging.Logger

	mu       sync.Mutex
	identity string
	subs     *bus.Subscription
}

func NewHeader(store session.Reader, sub bus.Subscriber, log logging.Logger) *Header {
	return &Header{store: store, sub: sub, log: log.With("component", "header")}
}

func (h *Header) Activate(ctx context.Context) {
	h.mu.Lock()
	if h.subs == nil {
		h.subs = h.sub.Subscribe(h.refresh)
	}
	h.mu.Unlock()
	h.refresh(ctx)
}

func (h *Header) Deactivate() {
	h.mu.Lock()
	sub := h.subs
	h.subs = nil
	h.mu.Unlock()
	h.sub.Unsubscribe(sub)
}

func (h *Header) refresh(ctx context.Context) {
	st, err := h.store.Read(ctx)
	if err != nil {
		h.log.Error(ctx, "read session", "error", err)
	}
	identity, _ := st.Identity()

	h.mu.Lock()
	h.identity = identity
	h.mu.Unlock()
}

// LoggedIn reports whether the header currently shows a user.
func (h *Header) LoggedIn() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.identity != ""
}

// Status is the text shown in the prompt.
func (h *Header) Status() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.identity == "" {
		return "(guest)"
	}
	return fmt.Sprintf("(%s)", h.identity)
}
