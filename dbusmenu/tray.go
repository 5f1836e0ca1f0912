package dbusmenu

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/prop"

	"github.com/shelepuginivan/traymenu"
)

const (
	StatusNotifierItemInterface = "org.kde.StatusNotifierItem"
	StatusNotifierItemPath      = "/StatusNotifierItem"

	StatusNotifierWatcherInterface = "org.kde.StatusNotifierWatcher"
	StatusNotifierWatcherPath      = "/StatusNotifierWatcher"

	propertiesInterface = "org.freedesktop.DBus.Properties"
)

type ItemCategory string

// StatusNotifierItem categories.
const (
	// The item describes the status of a generic application, for instance the
	// current state of a media player.
	ItemCategoryApplicationStatus ItemCategory = "ApplicationStatus"

	// The item describes the status of communication oriented applications, like
	// an instant messenger or an email client.
	ItemCategoryCommunications ItemCategory = "Communications"

	// The item describes services of the system not seen as a stand alone
	// application by the user, such as an indicator for the activity of a disk
	// indexing service.
	ItemCategorySystemServices ItemCategory = "SystemServices"

	// The item describes the state and control of a particular hardware, such as
	// an indicator of the battery charge or sound card volume control.
	ItemCategoryHardware ItemCategory = "Hardware"
)

type ItemStatus string

// StatusNotifierItem statuses.
const (
	// The item doesn't convey important information to the user, it can be
	// considered an "idle" status and is likely that visualizations will choose
	// to hide it.
	ItemStatusPassive ItemStatus = "Passive"

	// The item is active, is more important that the item will be shown in some
	// way to the user.
	ItemStatusActive ItemStatus = "Active"

	// The item carries really important information for the user, such as battery
	// charge running out and is wants to incentive the direct user intervention.
	// Visualizations should emphasize in some way the items with NeedsAttention
	// status.
	ItemStatusNeedsAttention ItemStatus = "NeedsAttention"
)

// ErrUnknownID is returned by [Tray.UpdateItem] when the numeric identifier
// does not address any realized item of the tray menu.
var ErrUnknownID = errors.New("no realized item with this numeric identifier")

// pixmap is an icon bitmap marshalled as the (iiay) structure used by
// StatusNotifierItem icon properties. Bytes are ARGB32 in network byte order.
type pixmap struct {
	Width  int32
	Height int32
	Bytes  []byte
}

// tooltip is marshalled as the (sa(iiay)ss) structure of the ToolTip property.
type tooltip struct {
	IconName    string
	IconPixmap  []pixmap
	Title       string
	Description string
}

// itemServer handles method calls of org.kde.StatusNotifierItem. Hosts call
// these as a consequence of user input over the graphical representation of
// the item.
type itemServer struct {
	mu         sync.Mutex
	onActivate func(x, y int32)
}

// ContextMenu is called when the host wants the item to show a context menu.
// The menu is already published via the Menu property, so there is nothing to
// do here.
func (s *itemServer) ContextMenu(x, y int32) *dbus.Error { return nil }

// Activate is called on primary activation, typically a mouse left click over
// the graphical representation of the item.
func (s *itemServer) Activate(x, y int32) *dbus.Error {
	s.mu.Lock()
	onActivate := s.onActivate
	s.mu.Unlock()

	if onActivate != nil {
		onActivate(x, y)
	}

	return nil
}

// SecondaryActivate is a secondary and less important form of activation,
// typically a mouse middle click.
func (s *itemServer) SecondaryActivate(x, y int32) *dbus.Error { return nil }

// Scroll is called on scroll input over the item.
func (s *itemServer) Scroll(delta int32, orientation string) *dbus.Error { return nil }

func (s *itemServer) setOnActivate(callback func(x, y int32)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.onActivate = callback
}

// Config describes the tray icon itself. The menu attached to it is passed to
// [New] separately.
type Config struct {
	// ID is the unique identifier for the application, such as the
	// application name. Required.
	ID string

	// Title describes the application, can be more descriptive than ID.
	Title string

	// Tooltip is extra information that can be visualized by a tooltip.
	Tooltip string

	// Category of the item. Defaults to [ItemCategoryApplicationStatus].
	Category ItemCategory

	// Status of the item. Defaults to [ItemStatusActive].
	Status ItemStatus

	// IconName is a Freedesktop-compliant icon name. Visualizations prefer it
	// over IconPixmap if both are set.
	IconName string

	// IconPixmap is a binary representation of the icon.
	IconPixmap *traymenu.Icon

	// Logger used by the tray. Nil disables logging.
	Logger *slog.Logger
}

// trayCount distinguishes the bus names of multiple trays within one process.
var trayCount atomic.Uint32

var _ traymenu.TrayHandle = (*Tray[string])(nil)

// Tray is a system tray menu realized on the session bus. It exports the menu
// over com.canonical.dbusmenu and the icon over org.kde.StatusNotifierItem,
// and implements [traymenu.TrayHandle] for runtime updates.
//
// All methods are safe to call from any goroutine: the session bus connection
// serializes the actual native mutation, so two concurrent updates resolve to
// whichever write the bus observes last.
type Tray[I traymenu.MenuID] struct {
	conn          *dbus.Conn
	logger        *slog.Logger
	name          string
	server        *menuServer
	item          *itemServer
	props         *prop.Properties
	table         *traymenu.IDTable[I]
	byNumeric     map[uint32]*node
	numericByNode map[int32]uint32

	mu     sync.Mutex
	closed bool
}

// New realizes the tray menu on the session bus.
//
// Every custom item of the menu is retained under its resolved numeric
// identifier for later addressing by [Tray.UpdateItem]. Two distinct
// identifiers that resolve to the same numeric identifier cannot be
// addressed unambiguously, so such a menu is rejected with
// [traymenu.ErrIDCollision].
func New[I traymenu.MenuID](conn *dbus.Conn, cfg Config, menu traymenu.SystemTrayMenu[I]) (*Tray[I], error) {
	table, err := traymenu.NewSystemTrayIDTable(menu)
	if err != nil {
		return nil, fmt.Errorf("realize tray: %w", err)
	}

	if cfg.Category == "" {
		cfg.Category = ItemCategoryApplicationStatus
	}

	if cfg.Status == "" {
		cfg.Status = ItemStatusActive
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	root, byNumeric, numericByNode := buildLayout(menu)

	tray := &Tray[I]{
		conn:          conn,
		logger:        logger,
		name:          fmt.Sprintf("org.kde.StatusNotifierItem-%d-%d", os.Getpid(), trayCount.Add(1)),
		server:        newMenuServer(conn, root),
		item:          &itemServer{},
		table:         table,
		byNumeric:     byNumeric,
		numericByNode: numericByNode,
	}

	if err := tray.server.export(); err != nil {
		return nil, fmt.Errorf("realize tray: failed to export menu: %w", err)
	}

	if _, err := prop.Export(conn, MenuPath, prop.Map{
		MenuInterface: map[string]*prop.Prop{
			"Version":       {Value: menuVersion, Emit: prop.EmitTrue},
			"Status":        {Value: "normal", Emit: prop.EmitTrue},
			"TextDirection": {Value: "ltr", Emit: prop.EmitTrue},
		},
	}); err != nil {
		return nil, fmt.Errorf("realize tray: failed to export menu properties: %w", err)
	}

	if err := conn.Export(tray.item, StatusNotifierItemPath, StatusNotifierItemInterface); err != nil {
		return nil, fmt.Errorf("realize tray: failed to export item: %w", err)
	}

	props, err := prop.Export(conn, StatusNotifierItemPath, prop.Map{
		StatusNotifierItemInterface: map[string]*prop.Prop{
			"Id":         {Value: cfg.ID, Emit: prop.EmitTrue},
			"Title":      {Value: cfg.Title, Emit: prop.EmitTrue},
			"Category":   {Value: string(cfg.Category), Emit: prop.EmitTrue},
			"Status":     {Value: string(cfg.Status), Emit: prop.EmitTrue},
			"WindowId":   {Value: uint32(0), Emit: prop.EmitTrue},
			"IconName":   {Value: cfg.IconName, Emit: prop.EmitTrue},
			"IconPixmap": {Value: iconPixmaps(cfg.IconPixmap), Emit: prop.EmitTrue},
			"ToolTip": {
				Value: tooltip{IconName: cfg.IconName, IconPixmap: []pixmap{}, Title: cfg.Tooltip},
				Emit:  prop.EmitTrue,
			},
			"ItemIsMenu": {Value: true, Emit: prop.EmitTrue},
			"Menu":       {Value: dbus.ObjectPath(MenuPath), Emit: prop.EmitTrue},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("realize tray: failed to export item properties: %w", err)
	}

	tray.props = props

	if err := tray.register(); err != nil {
		return nil, err
	}

	logger.Debug("realized tray menu",
		"name", tray.name,
		"items", table.Len(),
	)

	return tray, nil
}

// register requests a well-known name for the item and announces it to the
// status notifier watcher.
func (t *Tray[I]) register() error {
	reply, err := t.conn.RequestName(t.name, dbus.NameFlagDoNotQueue)
	if err != nil {
		return fmt.Errorf("realize tray: failed to request name %s: %w", t.name, err)
	}

	if reply != dbus.RequestNameReplyPrimaryOwner {
		return fmt.Errorf("realize tray: name %s already taken", t.name)
	}

	call := t.conn.Object(
		StatusNotifierWatcherInterface,
		StatusNotifierWatcherPath,
	).Call(StatusNotifierWatcherInterface+".RegisterStatusNotifierItem", 0, t.name)
	if call.Err != nil {
		return fmt.Errorf("realize tray: failed to register item: %w", call.Err)
	}

	return nil
}

// SetIcon replaces the tray's own icon and notifies hosts via the NewIcon
// signal.
func (t *Tray[I]) SetIcon(icon traymenu.Icon) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return fmt.Errorf("set icon: tray is closed")
	}

	if err := t.props.Set(StatusNotifierItemInterface, "IconPixmap", dbus.MakeVariant(iconPixmaps(&icon))); err != nil {
		return fmt.Errorf("set icon: %w", err)
	}

	if err := t.conn.Emit(StatusNotifierItemPath, StatusNotifierItemInterface+".NewIcon"); err != nil {
		return fmt.Errorf("set icon: %w", err)
	}

	t.logger.Debug("replaced tray icon", "width", icon.Width, "height", icon.Height)

	return nil
}

// UpdateItem applies the update to the realized item addressed by the numeric
// identifier. Unknown identifiers are rejected with [ErrUnknownID]: the
// identifier table built at realization time is authoritative for this tray.
func (t *Tray[I]) UpdateItem(id uint32, update traymenu.MenuUpdate) error {
	t.mu.Lock()

	if t.closed {
		t.mu.Unlock()
		return fmt.Errorf("update item: tray is closed")
	}

	n, ok := t.byNumeric[id]
	t.mu.Unlock()

	if !ok {
		return fmt.Errorf("update item: %w: %d", ErrUnknownID, id)
	}

	if err := t.server.applyNodeUpdate(n, update); err != nil {
		return fmt.Errorf("update item: %w", err)
	}

	t.logger.Debug("updated tray menu item", "id", id)

	return nil
}

// OnActivate registers a callback that runs when the host reports primary
// activation of the tray icon, such as a mouse left click. The x and y
// parameters are screen coordinates hinting where to show eventual windows.
func (t *Tray[I]) OnActivate(callback func(x, y int32)) {
	t.item.setOnActivate(callback)
}

// OnClick registers a callback that runs with the user-supplied identifier of
// a custom item whenever the host reports it clicked.
func (t *Tray[I]) OnClick(callback func(id I)) {
	t.server.setOnClick(func(nodeID int32) {
		t.mu.Lock()
		numericID, ok := t.numericByNode[nodeID]
		t.mu.Unlock()

		if !ok {
			return
		}

		key, ok := t.table.Lookup(numericID)
		if !ok {
			return
		}

		callback(key)
	})
}

// Close withdraws the tray from the session bus. The tray cannot be reused
// after Close was called.
func (t *Tray[I]) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}

	if _, err := t.conn.ReleaseName(t.name); err != nil {
		return err
	}

	if err := t.server.unexport(); err != nil {
		return err
	}

	if err := t.conn.Export(nil, StatusNotifierItemPath, StatusNotifierItemInterface); err != nil {
		return err
	}

	if err := t.conn.Export(nil, StatusNotifierItemPath, propertiesInterface); err != nil {
		return err
	}

	if err := t.conn.Export(nil, MenuPath, propertiesInterface); err != nil {
		return err
	}

	t.closed = true

	return nil
}

// iconPixmaps converts an icon into the a(iiay) property value. A nil icon
// yields an empty array rather than nil so the property keeps its signature.
func iconPixmaps(icon *traymenu.Icon) []pixmap {
	if icon == nil {
		return []pixmap{}
	}

	return []pixmap{{
		Width:  icon.Width,
		Height: icon.Height,
		Bytes:  icon.Bytes,
	}}
}
