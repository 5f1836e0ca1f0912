// Package traymenu is a platform-independent description of an application's
// window menu and system tray menu. It provides services for platform
// adapters. This package does not render menus itself, it is intended to be
// used for describing menus that an adapter realizes with native APIs.
//
// # Usage
//
// A menu is built declaratively before any native window exists:
//   - [Menu] describes a window menu and [SystemTrayMenu] describes a tray
//     menu. Both are ordered trees built with chained Add calls.
//   - [CustomMenuItem] is a leaf carrying a user-supplied identifier. Any
//     comparable value can serve as the identifier; [ResolveID] maps it to the
//     stable 32-bit numeric identifier native menu APIs require.
//   - [MenuItem] is the closed catalog of platform-reserved actions. Tray
//     menus accept only [SystemTrayMenuItem], which restricts the catalog to a
//     separator.
//
// Once a menu is realized, it is never mutated in place. Runtime changes
// travel through [MenuUpdate] commands addressed by numeric identifier, via
// the [TrayHandle] capability exposed by the adapter.
//
// Package dbusmenu realizes a [SystemTrayMenu] on Linux by implementing the
// [StatusNotifierItem] and com.canonical.dbusmenu specifications.
//
// [StatusNotifierItem]: https://www.freedesktop.org/wiki/Specifications/StatusNotifierItem/
package traymenu
