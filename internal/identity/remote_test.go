package identity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRemoteProviderSignUpSuccess(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/signup" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.Header.Get("apikey") != "anon-key" {
			t.Errorf("apikey header = %q", r.Header.Get("apikey"))
		}
		var body struct {
			Email    string         `json:"email"`
			Password string         `json:"password"`
			Data     map[string]any `json:"data"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if body.Data["full_name"] != "Ada Lovelace" {
			t.Errorf("full_name = %v", body.Data["full_name"])
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "user-42", "email": body.Email})
	}))
	defer srv.Close()

	p := NewRemoteProvider(srv.URL, "anon-key", time.Second)
	id, err := p.SignUp(context.Background(), "ada@example.com", "secret123", "Ada Lovelace")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if id.UserID != "user-42" {
		t.Fatalf("UserID = %q, want user-42", id.UserID)
	}
}

func TestRemoteProviderErrorMessageVerbatim(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]any{"msg": "Email already registered"})
	}))
	defer srv.Close()

	p := NewRemoteProvider(srv.URL, "anon-key", time.Second)
	_, err := p.SignUp(context.Background(), "ada@example.com", "secret123", "")
	var rf *RemoteFailure
	if !errors.As(err, &rf) {
		t.Fatalf("err = %v, want RemoteFailure", err)
	}
	if rf.Message != "Email already registered" {
		t.Fatalf("message = %q, want provider message verbatim", rf.Message)
	}
}

func TestRemoteProviderTransportFailureIsGeneric(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	p := NewRemoteProvider(srv.URL, "anon-key", time.Second)
	_, err := p.SignUp(context.Background(), "ada@example.com", "secret123", "")
	var rf *RemoteFailure
	if !errors.As(err, &rf) {
		t.Fatalf("err = %v, want RemoteFailure", err)
	}
	if rf.Message != "identity service unavailable" {
		t.Fatalf("message = %q, want generic transport message", rf.Message)
	}
}

func TestRemoteProviderSignInNestedUser(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/token" || r.URL.Query().Get("grant_type") != "password" {
			t.Errorf("unexpected request %s %s", r.URL.Path, r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok",
			"user":         map[string]any{"id": "user-7", "email": "ada@example.com"},
		})
	}))
	defer srv.Close()

	p := NewRemoteProvider(srv.URL, "anon-key", time.Second)
	id, err := p.SignIn(context.Background(), "ada@example.com", "secret123")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if id.UserID != "user-7" {
		t.Fatalf("UserID = %q, want user-7", id.UserID)
	}
}
