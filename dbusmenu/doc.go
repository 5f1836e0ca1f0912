// Package dbusmenu is the Linux platform adapter for traymenu. It realizes a
// [traymenu.SystemTrayMenu] on the D-Bus session bus by implementing the
// application side of the [StatusNotifierItem] specification together with
// the com.canonical.dbusmenu interface for the attached menu.
//
// # Usage
//
// Build a tray menu, realize it with [New], and keep the returned [Tray] as
// the [traymenu.TrayHandle] for runtime updates:
//   - [New] exports the menu layout and the tray icon on the session bus and
//     registers the item with org.kde.StatusNotifierWatcher. Every custom
//     item is retained under its resolved numeric identifier.
//   - [Tray.UpdateItem] and [Tray.SetIcon] mutate the realized tray in place.
//     Both are safe to call from any goroutine.
//   - [Tray.OnClick] dispatches host click events back to the user-supplied
//     identifiers of the menu.
//
// A status notifier watcher service must be present on the session bus;
// desktop environments with a system tray provide one.
//
// [StatusNotifierItem]: https://www.freedesktop.org/wiki/Specifications/StatusNotifierItem/
package dbusmenu
