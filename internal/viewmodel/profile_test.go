package viewmodel

import (
	"errors"
	"testing"

	"github.com/yashdubey2004/AI-law/internal/appctx"
	"github.com/yashdubey2004/AI-law/internal/identity"
)

func TestChangePasswordMismatch(t *testing.T) {
	t.Parallel()
	app := appctx.New()
	vm := NewProfileViewModel(app)
	vm.SetPasswordFields("old", "new-one", "new-two")

	err := vm.ChangePassword()
	var ve *identity.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want ValidationError", err)
	}

	cur, newPass, confirm := vm.PasswordFields()
	if cur != "old" || newPass != "new-one" || confirm != "new-two" {
		t.Fatal("mismatch should preserve the form for correction")
	}

	got := app.Drain()
	if len(got) != 1 || got[0].Severity != appctx.SeverityError {
		t.Fatalf("notifications = %+v, want one error", got)
	}
}

func TestChangePasswordSuccessClearsFields(t *testing.T) {
	t.Parallel()
	app := appctx.New()
	vm := NewProfileViewModel(app)
	vm.SetPasswordFields("old", "matching", "matching")

	if err := vm.ChangePassword(); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}
	cur, newPass, confirm := vm.PasswordFields()
	if cur != "" || newPass != "" || confirm != "" {
		t.Fatal("success should clear the password fields")
	}
	got := app.Drain()
	if len(got) != 1 || got[0].Title != "Password changed" {
		t.Fatalf("notifications = %+v", got)
	}
}

func TestSaveProfile(t *testing.T) {
	t.Parallel()
	app := appctx.New()
	vm := NewProfileViewModel(app)

	vm.SaveProfile("Ada Lovelace", "ada@example.com")
	fullName, email := vm.Details()
	if fullName != "Ada Lovelace" || email != "ada@example.com" {
		t.Fatalf("Details() = %q, %q", fullName, email)
	}
	if len(app.Drain()) != 1 {
		t.Fatal("save should queue one notification")
	}
}

func TestPreferences(t *testing.T) {
	t.Parallel()
	vm := NewProfileViewModel(appctx.New())
	email, push := vm.Preferences()
	if !email || push {
		t.Fatalf("default preferences = %v, %v, want true, false", email, push)
	}
	vm.SetPreferences(false, true)
	email, push = vm.Preferences()
	if email || !push {
		t.Fatalf("updated preferences = %v, %v, want false, true", email, push)
	}
}
