// Package services contains the application services of the marketplace:
// the session/auth manager and the product catalog service. Both compose the
// storage façade and inherit its best-effort persistence semantics.
package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"societymarket/internal/logging"
	"societymarket/internal/models"
	"societymarket/internal/storage"
)

// SessionState describes the auth manager's lifecycle. It starts in
// StateLoading and, after Init, is either StateAuthenticated or
// StateAnonymous for the rest of the process; it never returns to loading.
type SessionState int

const (
	StateLoading SessionState = iota
	StateAuthenticated
	StateAnonymous
)

func (s SessionState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// AuthService owns the current-user lifecycle: restoring a persisted session
// on startup, login, signup, and logout.
//
// KNOWN STAND-IN, DO NOT SILENTLY HARDEN OR SILENTLY COPY: Login accepts a
// password but never verifies it against anything, and no credential is
// stored at signup. The auth backend of this demo is mocked out on purpose.
// Any real deployment needs an actual auth backend first.
type AuthService interface {
	// Init loads any persisted session and settles the state machine.
	Init(ctx context.Context)

	// Login looks email up in the user directory and, when found, makes that
	// user the current session. The password is accepted but NOT checked
	// (see the type comment). Returns whether a matching user was found; the
	// error is non-nil only when ctx is cancelled while suspended.
	Login(ctx context.Context, email, password string) (bool, error)

	// Signup creates a new user and makes it the current session. Returns
	// false, with no change to the directory, when email is already taken.
	Signup(ctx context.Context, email, password, name string) (bool, error)

	// Logout clears the current session only; the user directory keeps the
	// user forever (there is no delete-account operation).
	Logout(ctx context.Context)

	// CurrentUser returns a copy of the session user, or nil when anonymous.
	CurrentUser() *models.User

	// State reports where the session lifecycle currently stands.
	State() SessionState
}

// authService is the concrete AuthService over the local store. It is not
// safe for concurrent use: the system has a single human operator per
// profile and runs without locks, so two overlapping writes race
// last-writer-wins.
type authService struct {
	store   *storage.Store
	log     logging.Logger
	latency time.Duration

	state   SessionState
	current *models.User
}

// NewAuthService constructs an AuthService in StateLoading. latency is the
// artificial delay applied to login and signup.
func NewAuthService(store *storage.Store, log logging.Logger, latency time.Duration) AuthService {
	return &authService{
		store:   store,
		log:     log.With("component", "auth"),
		latency: latency,
		state:   StateLoading,
	}
}

func (a *authService) Init(ctx context.Context) {
	if a.state != StateLoading {
		return
	}
	if u := a.store.GetCurrentUser(ctx); u != nil {
		a.current = u
		a.state = StateAuthenticated
		a.log.Info(ctx, "session restored", "user", u.Email)
		return
	}
	a.state = StateAnonymous
}

func (a *authService) Login(ctx context.Context, email, password string) (bool, error) {
	_ = password // accepted but never verified, see AuthService

	if err := simulateLatency(ctx, a.latency); err != nil {
		return false, err
	}

	// Exact, case-sensitive match; first hit wins. Duplicates cannot occur
	// because Signup enforces email uniqueness.
	for _, u := range a.store.GetUsers(ctx) {
		if u.Email == email {
			a.current = &u
			a.state = StateAuthenticated
			a.store.SaveCurrentUser(ctx, u)
			a.log.Info(ctx, "login", "user", u.Email)
			return true, nil
		}
	}
	a.log.Info(ctx, "login failed, unknown email", "email", email)
	return false, nil
}

func (a *authService) Signup(ctx context.Context, email, password, name string) (bool, error) {
	_ = password // accepted but never stored, see AuthService

	if err := simulateLatency(ctx, a.latency); err != nil {
		return false, err
	}

	users := a.store.GetUsers(ctx)
	for _, u := range users {
		if u.Email == email {
			return false, nil
		}
	}

	user := models.User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	users = append(users, user)
	a.store.SaveUsers(ctx, users)

	a.current = &user
	a.state = StateAuthenticated
	a.store.SaveCurrentUser(ctx, user)
	a.log.Info(ctx, "signup", "user", user.Email)
	return true, nil
}

func (a *authService) Logout(ctx context.Context) {
	a.store.ClearCurrentUser(ctx)
	a.current = nil
	a.state = StateAnonymous
	a.log.Info(ctx, "logout")
}

func (a *authService) CurrentUser() *models.User {
	if a.current == nil {
		return nil
	}
	u := *a.current
	return &u
}

func (a *authService) State() SessionState {
	return a.state
}
