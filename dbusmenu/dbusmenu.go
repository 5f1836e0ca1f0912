package dbusmenu

import (
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"

	"github.com/shelepuginivan/traymenu"
)

const (
	// MenuInterface is the D-Bus interface of the tray menu object.
	MenuInterface = "com.canonical.dbusmenu"

	// MenuPath is the object path the menu is exported at. The
	// StatusNotifierItem Menu property points here.
	MenuPath = "/MenuBar"

	menuVersion = uint32(3)
)

// UpdatedProperties is one element of the ItemsPropertiesUpdated signal,
// marshalled as (ia{sv}).
type UpdatedProperties struct {
	// NodeID of the layout node.
	NodeID int32

	// Updated properties.
	Properties map[string]dbus.Variant
}

// RemovedProperties is one element of the ItemsPropertiesUpdated signal,
// marshalled as (ias).
type RemovedProperties struct {
	// NodeID of the layout node.
	NodeID int32

	// Removed properties.
	Properties []string
}

// menuServer exports the realized menu over com.canonical.dbusmenu. Method
// calls arrive on D-Bus worker goroutines and updates may come from any
// application goroutine, so all layout access is serialized by mu.
type menuServer struct {
	mu       sync.Mutex
	conn     *dbus.Conn
	revision uint32
	root     *node
	onClick  func(nodeID int32)
}

func newMenuServer(conn *dbus.Conn, root *node) *menuServer {
	return &menuServer{
		conn:    conn,
		root:    root,
		onClick: func(int32) {},
	}
}

// export publishes the menu object and its properties on the session bus.
func (s *menuServer) export() error {
	return s.conn.Export(s, MenuPath, MenuInterface)
}

// unexport withdraws the menu object from the session bus.
func (s *menuServer) unexport() error {
	return s.conn.Export(nil, MenuPath, MenuInterface)
}

// GetLayout provides the layout and the properties that are attached to the
// entries that are in the layout.
//
// parentID is the ID of the parent node for the returned layout; 0 is the
// root. recursionDepth of -1 delivers all items and 0 disables recursion.
// propertyNames limits the returned properties; empty means all.
func (s *menuServer) GetLayout(parentID int32, recursionDepth int32, propertyNames []string) (uint32, layoutNode, *dbus.Error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	parent := s.root.find(parentID)
	if parent == nil {
		return s.revision, layoutNode{}, dbus.MakeFailedError(errUnknownNode(parentID))
	}

	return s.revision, parent.layout(recursionDepth, propertyNames), nil
}

// GetGroupProperties returns the requested properties of multiple layout
// nodes in one call. Unknown node IDs are skipped, as the interface allows
// hosts to ask for nodes that have already disappeared.
func (s *menuServer) GetGroupProperties(ids []int32, propertyNames []string) ([]UpdatedProperties, *dbus.Error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	group := make([]UpdatedProperties, 0, len(ids))

	for _, id := range ids {
		n := s.root.find(id)
		if n == nil {
			continue
		}

		group = append(group, UpdatedProperties{
			NodeID:     n.id,
			Properties: filterProperties(n.props, propertyNames),
		})
	}

	return group, nil
}

// GetProperty returns a single property of a single layout node.
func (s *menuServer) GetProperty(id int32, name string) (dbus.Variant, *dbus.Error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.root.find(id)
	if n == nil {
		return dbus.Variant{}, dbus.MakeFailedError(errUnknownNode(id))
	}

	value, ok := n.props[name]
	if !ok {
		return dbus.Variant{}, dbus.MakeFailedError(errUnknownProperty(id, name))
	}

	return value, nil
}

// Event is called by the host when an event happened to a layout node.
// Clicked events are dispatched to the click callback; every other event is
// accepted and dropped.
func (s *menuServer) Event(id int32, eventID string, data dbus.Variant, timestamp uint32) *dbus.Error {
	s.mu.Lock()
	exists := s.root.find(id) != nil
	onClick := s.onClick
	s.mu.Unlock()

	if !exists {
		return dbus.MakeFailedError(errUnknownNode(id))
	}

	if eventID == "clicked" {
		onClick(id)
	}

	return nil
}

// AboutToShow is called by the host before showing the node's submenu. The
// layout never changes behind the host's back, so no refresh is requested.
func (s *menuServer) AboutToShow(id int32) (bool, *dbus.Error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.root.find(id) == nil {
		return false, dbus.MakeFailedError(errUnknownNode(id))
	}

	return false, nil
}

// applyNodeUpdate applies a single update command to the node, bumps the
// layout revision, and notifies hosts via ItemsPropertiesUpdated. A command
// that changes nothing on this platform emits nothing.
func (s *menuServer) applyNodeUpdate(n *node, update traymenu.MenuUpdate) error {
	s.mu.Lock()
	changed := applyUpdate(n, update)

	if len(changed) > 0 {
		s.revision++
	}
	s.mu.Unlock()

	if len(changed) == 0 {
		return nil
	}

	return s.conn.Emit(
		MenuPath,
		MenuInterface+".ItemsPropertiesUpdated",
		[]UpdatedProperties{{NodeID: n.id, Properties: changed}},
		[]RemovedProperties{},
	)
}

// setOnClick replaces the click callback.
func (s *menuServer) setOnClick(callback func(nodeID int32)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.onClick = callback
}

func errUnknownNode(id int32) error {
	return fmt.Errorf("no layout node with id %d", id)
}

func errUnknownProperty(id int32, name string) error {
	return fmt.Errorf("layout node %d has no property %q", id, name)
}
