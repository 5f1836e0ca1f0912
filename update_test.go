package traymenu

import "testing"

// The command set is closed: these assertions pin down its members.
var (
	_ MenuUpdate = SetEnabled{}
	_ MenuUpdate = SetTitle{}
	_ MenuUpdate = SetSelected{}
	_ MenuUpdate = SetNativeImage{}
)

func TestMenuUpdateCommandsCarrySingleField(t *testing.T) {
	t.Parallel()

	var update MenuUpdate = SetTitle{Title: "Pause"}

	cmd, ok := update.(SetTitle)
	if !ok {
		t.Fatalf("expected SetTitle, got %#v", update)
	}

	if cmd.Title != "Pause" {
		t.Fatalf("expected title %q, got %q", "Pause", cmd.Title)
	}
}
