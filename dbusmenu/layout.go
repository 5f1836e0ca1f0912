package dbusmenu

import (
	"github.com/godbus/dbus/v5"

	"github.com/shelepuginivan/traymenu"
)

// Vendor property carrying the raw accelerator text of a custom item. The
// structured "shortcut" property would require parsing the text, so it is
// never populated.
const acceleratorProperty = "x-traymenu-accelerator"

// node is a mutable layout node of the realized menu. Property names and
// values follow the com.canonical.dbusmenu vocabulary.
type node struct {
	id       int32
	props    map[string]dbus.Variant
	children []*node
}

// layoutNode is the wire representation of a layout subtree, marshalled as
// the (ia{sv}av) structure returned by GetLayout.
type layoutNode struct {
	ID         int32
	Properties map[string]dbus.Variant
	Children   []dbus.Variant
}

// layout builds the wire representation of the subtree rooted at n.
//
// recursionDepth is the number of recursion levels to include. Special cases
// are -1 (no limit) and 0 (children are omitted). propertyNames filters the
// returned properties; an empty slice returns all of them.
func (n *node) layout(recursionDepth int32, propertyNames []string) layoutNode {
	ln := layoutNode{
		ID:         n.id,
		Properties: filterProperties(n.props, propertyNames),
		Children:   []dbus.Variant{},
	}

	if recursionDepth == 0 {
		return ln
	}

	next := recursionDepth - 1
	if recursionDepth < 0 {
		next = -1
	}

	for _, child := range n.children {
		ln.Children = append(ln.Children, dbus.MakeVariant(child.layout(next, propertyNames)))
	}

	return ln
}

// find returns the node with the given ID in the subtree rooted at n.
func (n *node) find(id int32) *node {
	if n.id == id {
		return n
	}

	for _, child := range n.children {
		if found := child.find(id); found != nil {
			return found
		}
	}

	return nil
}

func filterProperties(props map[string]dbus.Variant, propertyNames []string) map[string]dbus.Variant {
	if len(propertyNames) == 0 {
		filtered := make(map[string]dbus.Variant, len(props))
		for key, value := range props {
			filtered[key] = value
		}

		return filtered
	}

	filtered := make(map[string]dbus.Variant, len(propertyNames))

	for _, name := range propertyNames {
		if value, ok := props[name]; ok {
			filtered[name] = value
		}
	}

	return filtered
}

// layoutBuilder walks a tray menu tree and numbers its nodes. The root is
// node 0, as required by com.canonical.dbusmenu; entries are numbered
// depth-first in display order.
type layoutBuilder struct {
	nextID        int32
	byNumeric     map[uint32]*node
	numericByNode map[int32]uint32
}

// buildLayout converts a tray menu into a layout node tree, together with the
// mapping between numeric identifiers and layout nodes used for update
// addressing and click dispatch. Duplicate uses of one identifier map the
// numeric identifier to its first node in display order.
func buildLayout[I traymenu.MenuID](menu traymenu.SystemTrayMenu[I]) (root *node, byNumeric map[uint32]*node, numericByNode map[int32]uint32) {
	b := &layoutBuilder{
		byNumeric:     make(map[uint32]*node),
		numericByNode: make(map[int32]uint32),
	}

	root = &node{
		id: 0,
		props: map[string]dbus.Variant{
			"children-display": dbus.MakeVariant("submenu"),
		},
	}

	addEntries(b, root, menu)

	return root, b.byNumeric, b.numericByNode
}

func addEntries[I traymenu.MenuID](b *layoutBuilder, parent *node, menu traymenu.SystemTrayMenu[I]) {
	for _, entry := range menu.Entries {
		switch entry := entry.(type) {
		case traymenu.CustomMenuItem[I]:
			n := b.newNode(customItemProperties(entry))
			numericID := entry.IDValue()

			b.byNumeric[numericID] = n
			b.numericByNode[n.id] = numericID
			parent.children = append(parent.children, n)
		case traymenu.SystemTrayMenuItem:
			parent.children = append(parent.children, b.newNode(map[string]dbus.Variant{
				"type": dbus.MakeVariant("separator"),
			}))
		case traymenu.SystemTraySubmenu[I]:
			n := b.newNode(map[string]dbus.Variant{
				"label":            dbus.MakeVariant(entry.Title),
				"enabled":          dbus.MakeVariant(entry.Enabled),
				"children-display": dbus.MakeVariant("submenu"),
			})

			parent.children = append(parent.children, n)
			addEntries(b, n, entry.Inner)
		}
	}
}

func (b *layoutBuilder) newNode(props map[string]dbus.Variant) *node {
	b.nextID++

	return &node{
		id:    b.nextID,
		props: props,
	}
}

func customItemProperties[I traymenu.MenuID](item traymenu.CustomMenuItem[I]) map[string]dbus.Variant {
	props := map[string]dbus.Variant{
		"label":   dbus.MakeVariant(item.Title),
		"enabled": dbus.MakeVariant(item.Enabled),
	}

	if item.Selected {
		props["toggle-type"] = dbus.MakeVariant("checkmark")
		props["toggle-state"] = dbus.MakeVariant(int32(1))
	}

	if item.KeyboardAccelerator != "" {
		props[acceleratorProperty] = dbus.MakeVariant(item.KeyboardAccelerator)
	}

	return props
}

// applyUpdate applies a single update command to the node and returns the
// properties it changed. Applying the same command twice yields the same node
// state, and the second application reports the same changed set.
//
// SetNativeImage has no native counterpart in com.canonical.dbusmenu and is
// applied as a no-op, following the support-matrix policy for unsupported
// catalog entries.
func applyUpdate(n *node, update traymenu.MenuUpdate) map[string]dbus.Variant {
	changed := make(map[string]dbus.Variant)

	switch update := update.(type) {
	case traymenu.SetEnabled:
		changed["enabled"] = dbus.MakeVariant(update.Enabled)
	case traymenu.SetTitle:
		changed["label"] = dbus.MakeVariant(update.Title)
	case traymenu.SetSelected:
		state := int32(0)
		if update.Selected {
			state = 1
		}

		changed["toggle-type"] = dbus.MakeVariant("checkmark")
		changed["toggle-state"] = dbus.MakeVariant(state)
	case traymenu.SetNativeImage:
		return nil
	}

	for key, value := range changed {
		n.props[key] = value
	}

	return changed
}
