// Package appctx carries cross-cutting UI state that the original design
// kept in ambient globals: the theme preference and the notification queue.
// A single Context is created at process start and injected into whatever
// needs it; nothing reaches for it ambiently.
package appctx

import (
	"sync"

	"github.com/google/uuid"
)

// Theme is the user's colour-scheme preference.
type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
)

// Severity classifies a notification for rendering.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityError
)

// Notification is one toast-style message queued for the user.
type Notification struct {
	ID          string
	Title       string
	Description string
	Severity    Severity
}

// Context owns the theme preference and the pending notification queue.
// Created once at startup, torn down at exit.
type Context struct {
	mu            sync.Mutex
	theme         Theme
	notifications []Notification
}

func New() *Context {
	return &Context{theme: ThemeLight}
}

func (c *Context) Theme() Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.theme
}

// ToggleTheme flips between light and dark and returns the new value.
func (c *Context) ToggleTheme() Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.theme == ThemeLight {
		c.theme = ThemeDark
	} else {
		c.theme = ThemeLight
	}
	return c.theme
}

// Notify queues a notification and returns its id.
func (c *Context) Notify(title, description string, severity Severity) string {
	n := Notification{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Severity:    severity,
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notifications = append(c.notifications, n)
	return n.ID
}

// Drain returns all pending notifications in the order they were queued and
// empties the queue.
func (c *Context) Drain() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.notifications
	c.notifications = nil
	return out
}
