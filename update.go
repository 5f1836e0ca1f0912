package traymenu

// MenuUpdate is a mutation command against a single realized menu item,
// addressed by its numeric identifier. It is a closed set: the only commands
// are [SetEnabled], [SetTitle], [SetSelected], and [SetNativeImage].
//
// Each command replaces exactly one visual property and carries no positional
// or tree information. Commands are idempotent: applying the same command
// twice has the same observable effect as applying it once.
type MenuUpdate interface {
	isMenuUpdate()
}

// SetEnabled replaces the enabled state of the item.
type SetEnabled struct {
	Enabled bool
}

// SetTitle replaces the title of the item.
type SetTitle struct {
	Title string
}

// SetSelected replaces the selected state of the item.
type SetSelected struct {
	Selected bool
}

// SetNativeImage replaces the macOS system image of the item. Adapters for
// other platform families reject or ignore it.
type SetNativeImage struct {
	Image NativeImage
}

func (SetEnabled) isMenuUpdate()     {}
func (SetTitle) isMenuUpdate()       {}
func (SetSelected) isMenuUpdate()    {}
func (SetNativeImage) isMenuUpdate() {}

// TrayHandle is the capability a realized system tray exposes to the rest of
// the application.
//
// Implementations must be safe to call from a different goroutine than the
// one that realized the tray, marshalling onto the platform's UI thread if
// required. The two operations have no ordering dependency on each other, and
// two concurrent UpdateItem calls resolve to "last write observed by the
// native layer wins". A failed operation is reported once and never retried.
type TrayHandle interface {
	// SetIcon replaces the tray's own icon.
	SetIcon(icon Icon) error

	// UpdateItem applies the update to the realized item addressed by the
	// numeric identifier.
	UpdateItem(id uint32, update MenuUpdate) error
}

// MenuHandle is the capability a realized window menu exposes to the rest of
// the application. It carries the same addressing and concurrency contract as
// [TrayHandle].
type MenuHandle interface {
	// UpdateItem applies the update to the realized item addressed by the
	// numeric identifier.
	UpdateItem(id uint32, update MenuUpdate) error
}
