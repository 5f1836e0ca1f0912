package traymenu

import "slices"

// MenuEntry is an entry of a window [Menu]. It is a closed set: the only
// implementations are [CustomMenuItem], [MenuItem], and [Submenu].
type MenuEntry[I MenuID] interface {
	isMenuEntry()
}

// Menu is an ordered description of a window menu.
//
// Entries appear in the exact order they were added; the order is display
// order and is never rearranged. Menu has value semantics: the Add methods
// return an extended menu and leave the receiver untouched, so a menu value
// can be built with chained calls and handed whole to a platform adapter.
type Menu[I MenuID] struct {
	Entries []MenuEntry[I]
}

// NewMenu returns an empty window menu.
func NewMenu[I MenuID]() Menu[I] {
	return Menu[I]{}
}

// AddItem appends a custom menu item.
func (m Menu[I]) AddItem(item CustomMenuItem[I]) Menu[I] {
	return Menu[I]{Entries: appendEntry(m.Entries, MenuEntry[I](item))}
}

// AddNativeItem appends a platform-reserved menu item.
func (m Menu[I]) AddNativeItem(item MenuItem) Menu[I] {
	return Menu[I]{Entries: appendEntry(m.Entries, MenuEntry[I](item))}
}

// AddSubmenu appends a nested submenu.
func (m Menu[I]) AddSubmenu(submenu Submenu[I]) Menu[I] {
	return Menu[I]{Entries: appendEntry(m.Entries, MenuEntry[I](submenu))}
}

// Submenu is a window menu entry that opens a nested menu. A submenu owns its
// inner menu exclusively.
type Submenu[I MenuID] struct {
	Title   string
	Enabled bool
	Inner   Menu[I]
}

// NewSubmenu returns an enabled submenu with the given title and inner menu.
func NewSubmenu[I MenuID](title string, inner Menu[I]) Submenu[I] {
	return Submenu[I]{
		Title:   title,
		Enabled: true,
		Inner:   inner,
	}
}

func (Submenu[I]) isMenuEntry() {}

// SystemTrayMenuEntry is an entry of a [SystemTrayMenu]. It is a closed set:
// the only implementations are [CustomMenuItem], [SystemTrayMenuItem], and
// [SystemTraySubmenu]. Window-menu native items do not satisfy it, so placing
// one in a tray menu is a compile error rather than a runtime check.
type SystemTrayMenuEntry[I MenuID] interface {
	isSystemTrayMenuEntry()
}

// SystemTrayMenu is an ordered description of a system tray menu. It behaves
// like [Menu] but accepts the narrower tray entry set.
type SystemTrayMenu[I MenuID] struct {
	Entries []SystemTrayMenuEntry[I]
}

// NewSystemTrayMenu returns an empty system tray menu.
func NewSystemTrayMenu[I MenuID]() SystemTrayMenu[I] {
	return SystemTrayMenu[I]{}
}

// AddItem appends a custom menu item.
func (m SystemTrayMenu[I]) AddItem(item CustomMenuItem[I]) SystemTrayMenu[I] {
	return SystemTrayMenu[I]{Entries: appendEntry(m.Entries, SystemTrayMenuEntry[I](item))}
}

// AddNativeItem appends a native tray item.
func (m SystemTrayMenu[I]) AddNativeItem(item SystemTrayMenuItem) SystemTrayMenu[I] {
	return SystemTrayMenu[I]{Entries: appendEntry(m.Entries, SystemTrayMenuEntry[I](item))}
}

// AddSubmenu appends a nested submenu.
func (m SystemTrayMenu[I]) AddSubmenu(submenu SystemTraySubmenu[I]) SystemTrayMenu[I] {
	return SystemTrayMenu[I]{Entries: appendEntry(m.Entries, SystemTrayMenuEntry[I](submenu))}
}

// SystemTraySubmenu is a tray menu entry that opens a nested tray menu.
type SystemTraySubmenu[I MenuID] struct {
	Title   string
	Enabled bool
	Inner   SystemTrayMenu[I]
}

// NewSystemTraySubmenu returns an enabled tray submenu with the given title
// and inner menu.
func NewSystemTraySubmenu[I MenuID](title string, inner SystemTrayMenu[I]) SystemTraySubmenu[I] {
	return SystemTraySubmenu[I]{
		Title:   title,
		Enabled: true,
		Inner:   inner,
	}
}

func (SystemTraySubmenu[I]) isSystemTrayMenuEntry() {}

// SystemTrayMenuItem is the native item catalog of tray menus. Unlike
// [MenuItem], it contains a single action: tray menus do not support the
// window-menu action catalog.
type SystemTrayMenuItem int

// SystemTrayMenuSeparator is a separator between tray menu entries.
const SystemTrayMenuSeparator SystemTrayMenuItem = 0

func (SystemTrayMenuItem) isSystemTrayMenuEntry() {}

// appendEntry extends entries without aliasing the original backing array, so
// that two menus derived from the same value never observe each other.
func appendEntry[E any](entries []E, entry E) []E {
	return append(slices.Clone(entries), entry)
}
