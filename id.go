package traymenu

import (
	"errors"
	"fmt"
	"hash/maphash"
)

// MenuID is the constraint for user-supplied menu item identifiers.
//
// Any comparable value type can serve as an identifier: comparability gives
// equality, [hash/maphash] gives a deterministic process-stable hash, and
// value semantics give independent copies. There is no ordering requirement.
type MenuID interface {
	comparable
}

// idSeed is fixed for the lifetime of the process so that resolution is
// deterministic within a single run. Like the native APIs this feeds, the
// numeric identifier is not stable across runs.
var idSeed = maphash.MakeSeed()

// ResolveID maps a user-supplied identifier to the 32-bit numeric identifier
// used by native menu APIs and by [MenuUpdate] addressing.
//
// Resolution is total and deterministic: the same identifier value always
// resolves to the same numeric identifier within one process execution.
// Distinct identifiers may collide (birthday bound on 32 bits); ResolveID
// does not detect collisions. Adapters that need authoritative addressing
// should build an [IDTable] at realization time.
func ResolveID[I MenuID](id I) uint32 {
	return uint32(maphash.Comparable(idSeed, id))
}

// ErrIDCollision is returned by [IDTable] construction when two distinct
// identifiers resolve to the same numeric identifier.
var ErrIDCollision = errors.New("distinct menu identifiers resolve to the same numeric identifier")

// IDTable is the bidirectional mapping from numeric identifiers back to the
// user-supplied keys of a single menu tree. Adapters build it at realization
// time so that updates and click events can be routed authoritatively, and so
// that hash collisions are rejected instead of silently misrouting updates.
//
// Using the same identifier on several items is legal; they share one numeric
// identifier and one table entry.
type IDTable[I MenuID] struct {
	keys map[uint32]I
}

// NewIDTable returns a table covering every custom item of the window menu.
func NewIDTable[I MenuID](menu Menu[I]) (*IDTable[I], error) {
	t := &IDTable[I]{keys: make(map[uint32]I)}

	if err := t.addMenu(menu); err != nil {
		return nil, err
	}

	return t, nil
}

// NewSystemTrayIDTable returns a table covering every custom item of the tray
// menu.
func NewSystemTrayIDTable[I MenuID](menu SystemTrayMenu[I]) (*IDTable[I], error) {
	t := &IDTable[I]{keys: make(map[uint32]I)}

	if err := t.addSystemTrayMenu(menu); err != nil {
		return nil, err
	}

	return t, nil
}

// Lookup returns the user key that resolves to the numeric identifier.
func (t *IDTable[I]) Lookup(numericID uint32) (I, bool) {
	key, ok := t.keys[numericID]
	return key, ok
}

// Contains reports whether the numeric identifier addresses a known key.
func (t *IDTable[I]) Contains(numericID uint32) bool {
	_, ok := t.keys[numericID]
	return ok
}

// Len returns the number of distinct identifiers in the table.
func (t *IDTable[I]) Len() int {
	return len(t.keys)
}

func (t *IDTable[I]) add(id I) error {
	return t.insert(ResolveID(id), id)
}

func (t *IDTable[I]) insert(numericID uint32, id I) error {
	existing, ok := t.keys[numericID]
	if ok {
		if existing != id {
			return fmt.Errorf("%w: %v and %v both resolve to %d", ErrIDCollision, existing, id, numericID)
		}

		return nil
	}

	t.keys[numericID] = id

	return nil
}

func (t *IDTable[I]) addMenu(menu Menu[I]) error {
	for _, entry := range menu.Entries {
		switch entry := entry.(type) {
		case CustomMenuItem[I]:
			if err := t.add(entry.ID); err != nil {
				return err
			}
		case Submenu[I]:
			if err := t.addMenu(entry.Inner); err != nil {
				return err
			}
		}
	}

	return nil
}

func (t *IDTable[I]) addSystemTrayMenu(menu SystemTrayMenu[I]) error {
	for _, entry := range menu.Entries {
		switch entry := entry.(type) {
		case CustomMenuItem[I]:
			if err := t.add(entry.ID); err != nil {
				return err
			}
		case SystemTraySubmenu[I]:
			if err := t.addSystemTrayMenu(entry.Inner); err != nil {
				return err
			}
		}
	}

	return nil
}
