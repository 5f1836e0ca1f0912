package traymenu

import "testing"

func TestNewCustomMenuItemDefaults(t *testing.T) {
	t.Parallel()

	item := NewCustomMenuItem("open", "Open")

	if item.ID != "open" || item.Title != "Open" {
		t.Fatalf("id and title should be kept as given, got %q, %q", item.ID, item.Title)
	}

	if !item.Enabled {
		t.Fatal("a new item must be enabled")
	}

	if item.Selected {
		t.Fatal("a new item must not be selected")
	}

	if item.KeyboardAccelerator != "" {
		t.Fatalf("a new item must have no accelerator, got %q", item.KeyboardAccelerator)
	}

	if item.NativeImage != NativeImageNone {
		t.Fatalf("a new item must have no native image, got %v", item.NativeImage)
	}
}

func TestCustomMenuItemDisabled(t *testing.T) {
	t.Parallel()

	item := NewCustomMenuItem("open", "Open").Disabled()

	if item.Enabled {
		t.Fatal("Disabled should flip the enabled flag")
	}

	if item.ID != "open" || item.Title != "Open" || item.Selected || item.KeyboardAccelerator != "" {
		t.Fatalf("Disabled should change nothing else, got %#v", item)
	}
}

func TestCustomMenuItemWithSelected(t *testing.T) {
	t.Parallel()

	item := NewCustomMenuItem("open", "Open").WithSelected()

	if !item.Selected {
		t.Fatal("WithSelected should flip the selected flag")
	}

	if item.ID != "open" || item.Title != "Open" || !item.Enabled || item.KeyboardAccelerator != "" {
		t.Fatalf("WithSelected should change nothing else, got %#v", item)
	}
}

func TestCustomMenuItemAccelerator(t *testing.T) {
	t.Parallel()

	item := NewCustomMenuItem("quit", "Quit").Accelerator("CmdOrCtrl+Q")

	if item.KeyboardAccelerator != "CmdOrCtrl+Q" {
		t.Fatalf("expected accelerator %q, got %q", "CmdOrCtrl+Q", item.KeyboardAccelerator)
	}
}

func TestCustomMenuItemWithNativeImage(t *testing.T) {
	t.Parallel()

	item := NewCustomMenuItem("status", "Status").WithNativeImage(NativeImageStatusAvailable)

	if item.NativeImage != NativeImageStatusAvailable {
		t.Fatalf("expected %v, got %v", NativeImageStatusAvailable, item.NativeImage)
	}
}

func TestCustomMenuItemFluentCopies(t *testing.T) {
	t.Parallel()

	base := NewCustomMenuItem("open", "Open")
	_ = base.Disabled()
	_ = base.WithSelected()

	if !base.Enabled || base.Selected {
		t.Fatal("fluent methods must not mutate the original item")
	}
}

func TestCustomMenuItemIDValue(t *testing.T) {
	t.Parallel()

	item := NewCustomMenuItem("open", "Open")

	if item.IDValue() != ResolveID("open") {
		t.Fatal("IDValue should equal the resolved identifier")
	}
}
