package viewmodel

import (
	"sync"

	"github.com/yashdubey2004/AI-law/internal/appctx"
	"github.com/yashdubey2004/AI-law/internal/identity"
)

// ProfileViewModel backs the settings page: profile details, password
// change, and notification preferences. All validation is local; nothing
// here reaches the network.
type ProfileViewModel struct {
	mu sync.Mutex

	fullName string
	email    string

	currentPassword string
	newPassword     string
	confirmPassword string

	emailNotifications bool
	pushNotifications  bool

	app *appctx.Context
}

func NewProfileViewModel(app *appctx.Context) *ProfileViewModel {
	return &ProfileViewModel{
		fullName:           "John Doe",
		email:              "john.doe@example.com",
		emailNotifications: true,
		app:                app,
	}
}

func (vm *ProfileViewModel) Details() (fullName, email string) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.fullName, vm.email
}

// SaveProfile stores the edited details and confirms to the user.
func (vm *ProfileViewModel) SaveProfile(fullName, email string) {
	vm.mu.Lock()
	vm.fullName = fullName
	vm.email = email
	vm.mu.Unlock()
	vm.app.Notify("Profile updated", "Your profile information has been saved successfully.", appctx.SeverityInfo)
}

// SetPasswordFields records the in-progress password form.
func (vm *ProfileViewModel) SetPasswordFields(current, newPass, confirm string) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.currentPassword = current
	vm.newPassword = newPass
	vm.confirmPassword = confirm
}

// ChangePassword validates the confirmation locally. On mismatch the fields
// are preserved for correction; on success they are cleared.
func (vm *ProfileViewModel) ChangePassword() error {
	vm.mu.Lock()
	if vm.newPassword != vm.confirmPassword {
		vm.mu.Unlock()
		vm.app.Notify("Error", "New passwords do not match.", appctx.SeverityError)
		return &identity.ValidationError{Message: "New passwords do not match."}
	}
	vm.currentPassword = ""
	vm.newPassword = ""
	vm.confirmPassword = ""
	vm.mu.Unlock()
	vm.app.Notify("Password changed", "Your password has been updated successfully.", appctx.SeverityInfo)
	return nil
}

// PasswordFields exposes the form state for re-rendering after an error.
func (vm *ProfileViewModel) PasswordFields() (current, newPass, confirm string) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.currentPassword, vm.newPassword, vm.confirmPassword
}

func (vm *ProfileViewModel) Preferences() (email, push bool) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.emailNotifications, vm.pushNotifications
}

func (vm *ProfileViewModel) SetPreferences(email, push bool) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.emailNotifications = email
	vm.pushNotifications = push
}
