package traymenu

// Icon is a bitmap icon for the system tray item.
//
// Bytes is the image content in ARGB32 format, network byte order, row-major.
type Icon struct {
	Width  int32
	Height int32
	Bytes  []byte
}
