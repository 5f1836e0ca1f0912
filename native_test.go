package traymenu

import "testing"

func TestMenuItemSupportMatrix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		item     MenuItem
		platform Platform
		want     bool
	}{
		{Quit, PlatformMacOS, true},
		{Quit, PlatformLinux, true},
		{Quit, PlatformWindows, false},
		{Services, PlatformMacOS, true},
		{Services, PlatformLinux, false},
		{Undo, PlatformLinux, false},
		{Undo, PlatformMacOS, true},
		{Separator, PlatformLinux, true},
		{Separator, PlatformAndroid, false},
		{EnterFullScreen, PlatformIOS, false},
	}

	for _, tt := range tests {
		if got := tt.item.SupportedOn(tt.platform); got != tt.want {
			t.Errorf("%v.SupportedOn(%d) = %v, want %v", tt.item, tt.platform, got, tt.want)
		}
	}
}

func TestMenuItemCatalogIsAnnotated(t *testing.T) {
	t.Parallel()

	for item := About; item <= Separator; item++ {
		if menuItemPlatforms[item] == 0 {
			t.Errorf("%v has no platform annotation", item)
		}

		if item.String() == "Unknown" {
			t.Errorf("catalog item %d has no name", item)
		}
	}
}

func TestMenuItemString(t *testing.T) {
	t.Parallel()

	if got := CloseWindow.String(); got != "CloseWindow" {
		t.Fatalf("expected %q, got %q", "CloseWindow", got)
	}

	if got := MenuItem(999).String(); got != "Unknown" {
		t.Fatalf("expected %q, got %q", "Unknown", got)
	}
}

func TestNativeImageSupport(t *testing.T) {
	t.Parallel()

	if !NativeImageCaution.SupportedOn(PlatformMacOS) {
		t.Fatal("named system images are native on macOS")
	}

	if NativeImageCaution.SupportedOn(PlatformLinux) {
		t.Fatal("named system images have no counterpart outside macOS")
	}

	if NativeImageNone.SupportedOn(PlatformMacOS) {
		t.Fatal("the absent image is not a catalog entry")
	}
}

func TestNativeImageString(t *testing.T) {
	t.Parallel()

	if got := NativeImageStatusAvailable.String(); got != "StatusAvailable" {
		t.Fatalf("expected %q, got %q", "StatusAvailable", got)
	}

	if got := NativeImageNone.String(); got != "" {
		t.Fatalf("the absent image has no name, got %q", got)
	}
}

func TestNativeImageCatalogIsNamed(t *testing.T) {
	t.Parallel()

	for image := NativeImageAdd; image <= NativeImageUserGuest; image++ {
		if image.String() == "" {
			t.Errorf("catalog image %d has no name", image)
		}
	}
}
