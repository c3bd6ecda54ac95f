// Package identity wraps the identity provider behind a small gateway.
// Account creation is the only operation with a real remote contract; the
// gateway validates locally, calls the provider, and maps every outcome
// into the ValidationError / RemoteFailure taxonomy.
package identity

import (
	"context"
)

// AccountCreationRequest is the local shape of a signup. The confirmation
// password is supplied separately and never leaves the process.
type AccountCreationRequest struct {
	Email    string
	Password string
	FullName string
}

// Identity is the provider's view of a created or authenticated user.
type Identity struct {
	UserID string
	Email  string
}

// ValidationError is detected locally; no remote call was made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// RemoteFailure carries the provider's human-readable reason verbatim when
// one is available, or a generic message for transport failures.
type RemoteFailure struct {
	Message string
}

func (e *RemoteFailure) Error() string { return e.Message }

// ErrPasswordMismatch is returned before any remote call when the password
// and its confirmation differ.
var ErrPasswordMismatch = &ValidationError{Message: "Passwords do not match"}

// Provider is the outbound contract to an identity backend.
type Provider interface {
	SignUp(ctx context.Context, email, password, fullName string) (Identity, error)
	SignIn(ctx context.Context, email, password string) (Identity, error)
}

// Gateway fronts a Provider with the local preconditions.
type Gateway struct {
	provider Provider
}

func NewGateway(p Provider) *Gateway {
	return &Gateway{provider: p}
}

// CreateAccount validates the confirmation locally and then asks the
// provider for a new account. Each call is an independent attempt; no retry
// state is kept.
func (g *Gateway) CreateAccount(ctx context.Context, req AccountCreationRequest, confirmation string) (Identity, error) {
	if req.Password != confirmation {
		return Identity{}, ErrPasswordMismatch
	}
	id, err := g.provider.SignUp(ctx, req.Email, req.Password, req.FullName)
	if err != nil {
		return Identity{}, err
	}
	return id, nil
}

// Authenticate verifies credentials against the provider.
func (g *Gateway) Authenticate(ctx context.Context, email, password string) (Identity, error) {
	if email == "" || password == "" {
		return Identity{}, &ValidationError{Message: "Email and password are required"}
	}
	id, err := g.provider.SignIn(ctx, email, password)
	if err != nil {
		return Identity{}, err
	}
	return id, nil
}

// genericRemoteFailure is surfaced when the transport fails before the
// provider could supply a reason; the cause goes to the logs only.
func genericRemoteFailure() *RemoteFailure {
	return &RemoteFailure{Message: "identity service unavailable"}
}
