package appctx

import "testing"

func TestNotifyDrainOrder(t *testing.T) {
	t.Parallel()
	c := New()
	c.Notify("first", "a", SeverityInfo)
	c.Notify("second", "b", SeverityError)

	got := c.Drain()
	if len(got) != 2 {
		t.Fatalf("Drain() returned %d notifications, want 2", len(got))
	}
	if got[0].Title != "first" || got[1].Title != "second" {
		t.Fatalf("Drain() out of order: %q, %q", got[0].Title, got[1].Title)
	}
	if got[0].ID == got[1].ID || got[0].ID == "" {
		t.Fatal("notification ids must be unique and non-empty")
	}
	if rest := c.Drain(); len(rest) != 0 {
		t.Fatalf("second Drain() returned %d notifications, want 0", len(rest))
	}
}

func TestToggleTheme(t *testing.T) {
	t.Parallel()
	c := New()
	if c.Theme() != ThemeLight {
		t.Fatal("default theme should be light")
	}
	if c.ToggleTheme() != ThemeDark {
		t.Fatal("first toggle should yield dark")
	}
	if c.ToggleTheme() != ThemeLight {
		t.Fatal("second toggle should yield light")
	}
}
