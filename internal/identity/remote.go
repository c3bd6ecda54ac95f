package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// RemoteProvider talks to a hosted identity service over its REST API
// (Supabase-style: POST /auth/v1/signup, POST /auth/v1/token).
type RemoteProvider struct {
	baseURL string
	anonKey string
	client  *http.Client
	logger  *log.Logger
}

func NewRemoteProvider(baseURL, anonKey string, timeout time.Duration) *RemoteProvider {
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &RemoteProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		anonKey: anonKey,
		client:  &http.Client{Timeout: timeout},
		logger:  log.New(log.Writer(), "[IDENTITY] ", log.LstdFlags),
	}
}

type signupPayload struct {
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Data     map[string]any `json:"data,omitempty"`
}

type signinPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userPayload covers the shapes the service answers with: the user object
// at the top level on signup, or nested under "user" on token grants.
type userPayload struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	User  *struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

func (p userPayload) identity() Identity {
	if p.User != nil && p.User.ID != "" {
		return Identity{UserID: p.User.ID, Email: p.User.Email}
	}
	return Identity{UserID: p.ID, Email: p.Email}
}

// errorPayload covers the error shapes the service emits across versions.
type errorPayload struct {
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	ErrorDescription string `json:"error_description"`
}

func (p errorPayload) message() string {
	for _, m := range []string{p.Msg, p.Message, p.ErrorDescription} {
		if m != "" {
			return m
		}
	}
	return ""
}

func (r *RemoteProvider) SignUp(ctx context.Context, email, password, fullName string) (Identity, error) {
	body := signupPayload{Email: email, Password: password}
	if fullName != "" {
		body.Data = map[string]any{"full_name": fullName}
	}
	return r.post(ctx, "/auth/v1/signup", body)
}

func (r *RemoteProvider) SignIn(ctx context.Context, email, password string) (Identity, error) {
	return r.post(ctx, "/auth/v1/token?grant_type=password", signinPayload{Email: email, Password: password})
}

func (r *RemoteProvider) post(ctx context.Context, path string, payload any) (Identity, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Identity{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return Identity{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", r.anonKey)
	req.Header.Set("Authorization", "Bearer "+r.anonKey)

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Printf("POST %s: %v", path, err)
		return Identity{}, genericRemoteFailure()
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		r.logger.Printf("POST %s: read body: %v", path, err)
		return Identity{}, genericRemoteFailure()
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var ep errorPayload
		_ = json.Unmarshal(data, &ep)
		if msg := ep.message(); msg != "" {
			return Identity{}, &RemoteFailure{Message: msg}
		}
		r.logger.Printf("POST %s: status %d with unrecognised body", path, resp.StatusCode)
		return Identity{}, genericRemoteFailure()
	}

	var up userPayload
	if err := json.Unmarshal(data, &up); err != nil {
		r.logger.Printf("POST %s: decode: %v", path, err)
		return Identity{}, genericRemoteFailure()
	}
	id := up.identity()
	if id.UserID == "" {
		return Identity{}, genericRemoteFailure()
	}
	return id, nil
}
