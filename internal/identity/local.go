package identity

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// LocalProvider is an in-memory identity backend for development and tests.
// It honours the same contract as the remote provider, including its error
// messages, so the rest of the application cannot tell them apart.
type LocalProvider struct {
	mu    sync.RWMutex
	users map[string]localUser
}

type localUser struct {
	id       string
	hash     []byte
	fullName string
}

func NewLocalProvider() *LocalProvider {
	return &LocalProvider{users: make(map[string]localUser)}
}

func (p *LocalProvider) SignUp(ctx context.Context, email, password, fullName string) (Identity, error) {
	if err := ctx.Err(); err != nil {
		return Identity{}, genericRemoteFailure()
	}
	if len(password) < 6 {
		return Identity{}, &RemoteFailure{Message: "Password should be at least 6 characters"}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Identity{}, genericRemoteFailure()
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if _, exists := p.users[email]; exists {
		return Identity{}, &RemoteFailure{Message: "Email already registered"}
	}
	u := localUser{id: uuid.NewString(), hash: hash, fullName: fullName}
	p.users[email] = u
	return Identity{UserID: u.id, Email: email}, nil
}

func (p *LocalProvider) SignIn(ctx context.Context, email, password string) (Identity, error) {
	if err := ctx.Err(); err != nil {
		return Identity{}, genericRemoteFailure()
	}
	p.mu.RLock()
	u, ok := p.users[email]
	p.mu.RUnlock()
	if !ok {
		return Identity{}, &RemoteFailure{Message: "Invalid login credentials"}
	}
	if bcrypt.CompareHashAndPassword(u.hash, []byte(password)) != nil {
		return Identity{}, &RemoteFailure{Message: "Invalid login credentials"}
	}
	return Identity{UserID: u.id, Email: email}, nil
}
