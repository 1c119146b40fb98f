// Package session owns the client's notion of who is logged in.
//
// State is a value: LoggedOut or LoggedIn(identity). Store implementations
// persist it with single-value replacements so readers never observe a
// partially written state, and every Read returns a fresh snapshot.
package session

// State is the current authentication state. The zero value is logged out.
type State struct {
	identity string
}

func LoggedOut() State { return State{} }

// LoggedIn returns the state for identity. An empty identity is logged out.
func LoggedIn(identity string) State { return State{identity: identity} }

func (s State) IsLoggedIn() bool { return s.identity != "" }

// Identity returns the logged-in handle and whether there is one.
func (s State) Identity() (string, bool) { return s.identity, s.identity != "" }

func (s State) String() string {
	if !s.IsLoggedIn() {
		return "logged out"
	}
	return "logged in as " + s.identity
}
