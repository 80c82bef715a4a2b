// Package session is the single source of truth for "who is logged in" and
// "what credential to attach to requests". The session is persisted in a
// small SQLite database so it survives restarts, and every state change is
// announced synchronously to subscribers.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Nagendra14319/book1432/api"
)

// ErrIncompleteCredentials is returned when the server answers an auth
// request with a body missing the user or the token.
var ErrIncompleteCredentials = errors.New("server returned incomplete credentials")

// Authenticator is the slice of the API the store needs. *api.Client
// satisfies it.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*api.Credentials, error)
	Signup(ctx context.Context, username, email, password string) (*api.Credentials, error)
}

// Session is the client's belief about the current user. User and Token
// are both set or both empty; there is no partially authenticated state.
type Session struct {
	User  *api.User
	Token string
}

// Authenticated reports whether a credential is present.
func (s Session) Authenticated() bool { return s.Token != "" }

// Store owns the session. It is the only writer; views and the route
// guard read through Current/Authenticated/Token.
type Store struct {
	auth Authenticator
	log  zerolog.Logger

	mu   sync.Mutex
	cur  Session
	db   *db
	subs []func(Session)
}

// NewStore opens (or creates) the session database at dbPath.
func NewStore(auth Authenticator, dbPath string, log zerolog.Logger) (*Store, error) {
	d, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}
	return &Store{auth: auth, db: d, log: log}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error { return s.db.close() }

// Restore adopts the persisted session, if any, without re-validating it
// against the server. A row that violates the both-or-neither invariant is
// discarded.
func (s *Store) Restore() error {
	user, token, err := s.db.load()
	if err != nil {
		return err
	}
	if user == nil || token == "" || user.ID == "" {
		if user != nil || token != "" {
			s.log.Warn().Msg("discarding partial saved session")
			_ = s.db.clear()
		}
		return nil
	}
	s.set(Session{User: user, Token: token})
	return nil
}

// Login authenticates against the server. On failure the existing session,
// in memory and on disk, is left untouched.
func (s *Store) Login(ctx context.Context, email, password string) error {
	creds, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return s.adopt(creds)
}

// Signup registers a new account; the success/failure contract matches
// Login.
func (s *Store) Signup(ctx context.Context, username, email, password string) error {
	creds, err := s.auth.Signup(ctx, username, email, password)
	if err != nil {
		return err
	}
	return s.adopt(creds)
}

// Logout clears the session from memory and durable storage. No network
// call is made; the server-side token is simply abandoned.
func (s *Store) Logout() error {
	err := s.db.clear()
	s.set(Session{})
	return err
}

// Current returns the session as of now.
func (s *Store) Current() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur
}

// Authenticated reports whether a credential is present.
func (s *Store) Authenticated() bool { return s.Current().Authenticated() }

// Token returns the bearer token, or "" when logged out.
func (s *Store) Token() string { return s.Current().Token }

// Subscribe registers fn to run synchronously after every session change.
func (s *Store) Subscribe(fn func(Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// adopt installs freshly issued credentials. A body missing either half
// of the session is rejected; the existing session stays as it was.
func (s *Store) adopt(creds *api.Credentials) error {
	if creds == nil || creds.User == nil || creds.User.ID == "" || creds.Token == "" {
		return ErrIncompleteCredentials
	}
	if err := s.db.save(creds.User, creds.Token); err != nil {
		// The in-memory session is still good for this process.
		s.log.Warn().Err(err).Msg("persist session failed")
	}
	s.set(Session{User: creds.User, Token: creds.Token})
	return nil
}

func (s *Store) set(next Session) {
	s.mu.Lock()
	s.cur = next
	subs := make([]func(Session), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
}
