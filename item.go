package traymenu

// CustomMenuItem is a menu leaf defined by the application. It carries a
// user-supplied identifier of any comparable type; for update addressing the
// identity of the item is the resolved numeric identifier (see [ResolveID]),
// not the struct value.
//
// CustomMenuItem has value semantics: the fluent methods return a modified
// copy and change exactly one field each.
type CustomMenuItem[I MenuID] struct {
	ID    I
	Title string

	// KeyboardAccelerator is the raw accelerator text shown next to the item,
	// e.g. "CmdOrCtrl+Q". It is not parsed or validated by this package.
	KeyboardAccelerator string

	Enabled  bool
	Selected bool

	// NativeImage is a system-supplied icon shown with the item, or
	// [NativeImageNone]. It is only meaningful on macOS; adapters for other
	// platforms ignore it.
	NativeImage NativeImage
}

// NewCustomMenuItem returns an enabled, unselected item with no accelerator
// and no native image.
func NewCustomMenuItem[I MenuID](id I, title string) CustomMenuItem[I] {
	return CustomMenuItem[I]{
		ID:      id,
		Title:   title,
		Enabled: true,
	}
}

// Disabled marks the item as disabled.
func (item CustomMenuItem[I]) Disabled() CustomMenuItem[I] {
	item.Enabled = false
	return item
}

// WithSelected marks the item as selected.
func (item CustomMenuItem[I]) WithSelected() CustomMenuItem[I] {
	item.Selected = true
	return item
}

// Accelerator sets the accelerator text of the item.
func (item CustomMenuItem[I]) Accelerator(accelerator string) CustomMenuItem[I] {
	item.KeyboardAccelerator = accelerator
	return item
}

// WithNativeImage sets the macOS system icon of the item.
func (item CustomMenuItem[I]) WithNativeImage(image NativeImage) CustomMenuItem[I] {
	item.NativeImage = image
	return item
}

// IDValue returns the numeric identifier of the item, the key under which a
// realized item is addressed by [MenuUpdate] commands.
func (item CustomMenuItem[I]) IDValue() uint32 {
	return ResolveID(item.ID)
}

func (CustomMenuItem[I]) isMenuEntry()           {}
func (CustomMenuItem[I]) isSystemTrayMenuEntry() {}
