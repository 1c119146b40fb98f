package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/bankclient/internal/client/client"
	"github.com/dmitrijs2005/bankclient/internal/client/config"
	"github.com/dmitrijs2005/bankclient/internal/client/models"
	"github.com/dmitrijs2005/bankclient/internal/client/services"
	"github.com/dmitrijs2005/bankclient/internal/client/session"
	"github.com/dmitrijs2005/bankclient/internal/client/view"
	"github.com/dmitrijs2005/bankclient/internal/logging"
)

// fakeAPI implements client.Client.
type fakeAPI struct {
	mu sync.Mutex

	loginErr    error
	registerErr error
	accounts    map[string][]models.Account
	userGate    chan struct{}

	loginCalls    int
	registerCalls int
	lastReg       models.Registration
	lastPassword  string
}

func (f *fakeAPI) Login(_ context.Context, identity, password string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loginCalls++
	f.lastPassword = password
	return f.loginErr
}

func (f *fakeAPI) Register(_ context.Context, r models.Registration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registerCalls++
	f.lastReg = r
	return f.registerErr
}

func (f *fakeAPI) GetUser(_ context.Context, identity string) (*models.User, error) {
	if f.userGate != nil {
		<-f.userGate
	}
	return &models.User{UID: models.UID(identity + "-uid"), ID: identity}, nil
}

func (f *fakeAPI) ListAccounts(_ context.Context, uid models.UID) ([]models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.accounts[string(uid)], nil
}

func stubInputs(t *testing.T, answers []string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", io.EOF
		}
		v := answers[i]
		i++
		return v, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func newTestApp(t *testing.T, api *fakeAPI, store session.Store) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	a := newApp(&config.Config{}, logging.Nop(), api, store, strings.NewReader(""), &out)
	a.header.Activate(context.Background())
	require.NoError(t, a.home.Activate(context.Background()))
	t.Cleanup(a.Close)
	return a, &out
}

func TestApp_LoginShowsAccounts(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{accounts: map[string][]models.Account{
		"alice-uid": {{AID: "1", AccNumber: "LV01", Balance: json.Number("12.50")}},
	}}
	store := session.NewMemoryStore()
	a, out := newTestApp(t, api, store)

	require.False(t, a.isLoggedIn())

	stubInputs(t, []string{"alice"}, []byte("password123"))
	require.NoError(t, a.Login(ctx))

	require.Equal(t, "password123", api.lastPassword)
	require.True(t, a.isLoggedIn())
	require.Equal(t, "(alice)", a.header.Status())
	require.Equal(t, services.RouteLanding, a.Page())
	require.Equal(t, view.AuthenticatedWithAccount, a.home.View().State)
	require.Contains(t, out.String(), "Welcome, alice!")
	require.Contains(t, out.String(), "LV01  balance 12.50")
}

func TestApp_LoginNoAccountThenOpen(t *testing.T) {
	ctx := context.Background()
	a, out := newTestApp(t, &fakeAPI{}, session.NewMemoryStore())

	stubInputs(t, []string{"bob"}, []byte("password123"))
	require.NoError(t, a.Login(ctx))
	require.Equal(t, view.AuthenticatedNoAccount, a.home.View().State)
	require.Contains(t, out.String(), "Type 'open' to open an account.")

	out.Reset()
	require.NoError(t, a.Open(ctx))
	require.Equal(t, "Opening an account is not available yet.\n", out.String())
}

func TestApp_LoginFailure(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{loginErr: &client.RemoteError{StatusCode: http.StatusUnauthorized, Body: "invalid credentials"}}
	store := session.NewMemoryStore()
	a, out := newTestApp(t, api, store)

	stubInputs(t, []string{"alice"}, []byte("wrong"))
	require.Error(t, a.Login(ctx))

	require.Contains(t, out.String(), "Login failed: invalid credentials")
	require.False(t, a.isLoggedIn())
	st, _ := store.Read(ctx)
	require.False(t, st.IsLoggedIn())
}

func TestApp_Logout(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	require.NoError(t, store.Write(ctx, "alice"))
	a, out := newTestApp(t, &fakeAPI{}, store)
	require.True(t, a.isLoggedIn())

	out.Reset()
	require.NoError(t, a.Logout(ctx))

	require.False(t, a.isLoggedIn())
	require.Equal(t, "(guest)", a.header.Status())
	require.Equal(t, view.Unauthenticated, a.home.View().State)
	require.Contains(t, out.String(), "Welcome to the bank!")

	out.Reset()
	require.NoError(t, a.Open(ctx))
	require.Equal(t, "Please log in first.\n", out.String())
}

func TestApp_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		api := &fakeAPI{}
		a, out := newTestApp(t, api, session.NewMemoryStore())

		stubInputs(t, []string{"carol", "Carol", "", "+37120000000", "carol@example.com"}, []byte("password123"))
		require.NoError(t, a.Register(ctx))

		require.Equal(t, 1, api.registerCalls)
		require.Equal(t, models.Registration{
			ID:          "carol",
			Password:    "password123",
			Name:        "Carol",
			PhoneNumber: "+37120000000",
			Email:       "carol@example.com",
		}, api.lastReg)
		require.Equal(t, services.RouteLogin, a.Page())
		require.Contains(t, out.String(), "Type 'login' to sign in.")
		require.False(t, a.isLoggedIn())
	})

	t.Run("weak password", func(t *testing.T) {
		api := &fakeAPI{}
		a, out := newTestApp(t, api, session.NewMemoryStore())

		stubInputs(t, []string{"carol", "Carol", "", "+37120000000", "carol@example.com"}, []byte("short1"))
		require.ErrorIs(t, a.Register(ctx), services.ErrPasswordPolicy)

		require.Zero(t, api.registerCalls)
		require.Equal(t, services.RouteSignup, a.Page())
		require.Contains(t, out.String(), "Registration failed: password: "+services.ErrPasswordPolicy.Error())
	})
}

func TestApp_RunExits(t *testing.T) {
	capturePrintln(t)

	var out bytes.Buffer
	a := newApp(&config.Config{}, logging.Nop(), &fakeAPI{}, session.NewMemoryStore(), strings.NewReader("home\nexit\n"), &out)
	require.NoError(t, a.Run(context.Background()))

	require.Contains(t, out.String(), "Bank client (type 'help' for commands)")
	require.Contains(t, out.String(), "Welcome to the bank!")
}

// syncBuffer is a bytes.Buffer safe to read while the app writes to it.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestApp_HomeShowsLoadingWhileResolving(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	require.NoError(t, store.Write(ctx, "alice"))

	gate := make(chan struct{})
	api := &fakeAPI{
		userGate: gate,
		accounts: map[string][]models.Account{
			"alice-uid": {{AID: "1", AccNumber: "LV01", Balance: json.Number("1")}},
		},
	}

	out := &syncBuffer{}
	a := newApp(&config.Config{}, logging.Nop(), api, store, strings.NewReader(""), out)
	require.NoError(t, a.home.Activate(ctx))
	t.Cleanup(a.Close)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = a.Home(ctx)
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Loading...")
	}, time.Second, time.Millisecond)
	require.NotContains(t, out.String(), "Welcome, alice!")

	close(gate)
	<-done

	got := out.String()
	require.Contains(t, got, "Welcome, alice!")
	require.Less(t, strings.Index(got, "Loading..."), strings.Index(got, "Welcome, alice!"))
}
