package traymenu

import (
	"errors"
	"testing"
)

func TestResolveIDDeterminism(t *testing.T) {
	t.Parallel()

	idA := ResolveID("open")
	idB := ResolveID("save")

	for range 3 {
		if ResolveID("open") != idA {
			t.Fatal("resolving the same identifier twice must yield the same numeric identifier")
		}

		if ResolveID("save") != idB {
			t.Fatal("resolving the same identifier twice must yield the same numeric identifier")
		}
	}
}

func TestResolveIDEqualValues(t *testing.T) {
	t.Parallel()

	type key struct {
		Section string
		Index   int
	}

	a := key{Section: "file", Index: 2}
	b := key{Section: "file", Index: 2}

	if ResolveID(a) != ResolveID(b) {
		t.Fatal("equal identifier values must resolve to equal numeric identifiers")
	}
}

func TestNewIDTable(t *testing.T) {
	t.Parallel()

	menu := NewMenu[string]().
		AddItem(NewCustomMenuItem("open", "Open")).
		AddNativeItem(Separator).
		AddSubmenu(NewSubmenu("File", NewMenu[string]().
			AddItem(NewCustomMenuItem("save", "Save"))))

	table, err := NewIDTable(menu)
	if err != nil {
		t.Fatalf("building the table should not fail: %v", err)
	}

	if table.Len() != 2 {
		t.Fatalf("expected 2 identifiers, got %d", table.Len())
	}

	key, ok := table.Lookup(ResolveID("save"))
	if !ok || key != "save" {
		t.Fatalf("lookup of the submenu item should yield %q, got %q (%v)", "save", key, ok)
	}

	if !table.Contains(ResolveID("open")) {
		t.Fatal("table should contain the top-level item")
	}
}

func TestNewSystemTrayIDTable(t *testing.T) {
	t.Parallel()

	menu := NewSystemTrayMenu[int]().
		AddItem(NewCustomMenuItem(7, "Show")).
		AddSubmenu(NewSystemTraySubmenu("More", NewSystemTrayMenu[int]().
			AddItem(NewCustomMenuItem(9, "About"))))

	table, err := NewSystemTrayIDTable(menu)
	if err != nil {
		t.Fatalf("building the table should not fail: %v", err)
	}

	if table.Len() != 2 {
		t.Fatalf("expected 2 identifiers, got %d", table.Len())
	}

	key, ok := table.Lookup(ResolveID(9))
	if !ok || key != 9 {
		t.Fatalf("lookup should yield 9, got %d (%v)", key, ok)
	}
}

func TestIDTableDuplicateKey(t *testing.T) {
	t.Parallel()

	menu := NewMenu[string]().
		AddItem(NewCustomMenuItem("open", "Open")).
		AddItem(NewCustomMenuItem("open", "Open Recent"))

	table, err := NewIDTable(menu)
	if err != nil {
		t.Fatalf("reusing one identifier is legal: %v", err)
	}

	if table.Len() != 1 {
		t.Fatalf("duplicate uses share one entry, got %d", table.Len())
	}
}

func TestIDTableCollision(t *testing.T) {
	t.Parallel()

	table := &IDTable[string]{keys: make(map[uint32]string)}

	if err := table.insert(42, "open"); err != nil {
		t.Fatalf("first insert should succeed: %v", err)
	}

	if err := table.insert(42, "open"); err != nil {
		t.Fatalf("reinserting the same key should succeed: %v", err)
	}

	err := table.insert(42, "save")
	if !errors.Is(err, ErrIDCollision) {
		t.Fatalf("distinct keys under one numeric identifier should be rejected, got %v", err)
	}
}

func TestIDTableUnknownID(t *testing.T) {
	t.Parallel()

	table, err := NewIDTable(NewMenu[string]())
	if err != nil {
		t.Fatalf("building an empty table should not fail: %v", err)
	}

	if _, ok := table.Lookup(1); ok {
		t.Fatal("an empty table should not resolve any numeric identifier")
	}
}
