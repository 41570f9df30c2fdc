package vdom

import (
	"fmt"
	"sync"
)

// HIDGenerator generates unique hydration IDs for interactive elements.
type HIDGenerator struct {
	counter uint32
	mu      sync.Mutex
}

// NewHIDGenerator creates a new HIDGenerator.
func NewHIDGenerator() *HIDGenerator {
	return &HIDGenerator{}
}

// Next returns the next hydration ID (e.g., "h1", "h2", ...).
func (g *HIDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter++
	return fmt.Sprintf("h%d", g.counter)
}

// Reset resets the counter to 0.
func (g *HIDGenerator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter = 0
}

// Current returns the current counter value without incrementing.
func (g *HIDGenerator) Current() uint32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.counter
}

// AssignHIDs walks the tree and assigns HIDs to interactive elements.
// An element is interactive if it has event handlers (props starting with "on").
// The order is depth-first, so identical trees always get identical HIDs.
func AssignHIDs(node *VNode, gen *HIDGenerator) {
	if node == nil {
		return
	}

	if node.Kind == KindElement && node.IsInteractive() {
		node.HID = gen.Next()
	}

	for _, child := range node.Children {
		AssignHIDs(child, gen)
	}
}

// CollectHIDs returns a map of HID to VNode for all nodes with HIDs.
func CollectHIDs(node *VNode) map[string]*VNode {
	result := make(map[string]*VNode)
	Walk(node, func(n *VNode) bool {
		if n.HID != "" {
			result[n.HID] = n
		}
		return true
	})
	return result
}

// FindByHID finds a node by its HID in the tree.
func FindByHID(node *VNode, hid string) *VNode {
	if hid == "" {
		return nil
	}
	var found *VNode
	Walk(node, func(n *VNode) bool {
		if n.HID == hid {
			found = n
			return false
		}
		return true
	})
	return found
}

// CountInteractive returns the number of interactive elements in the tree.
func CountInteractive(node *VNode) int {
	count := 0
	Walk(node, func(n *VNode) bool {
		if n.IsInteractive() {
			count++
		}
		return true
	})
	return count
}

// ClearHIDs removes all HIDs from the tree.
func ClearHIDs(node *VNode) {
	Walk(node, func(n *VNode) bool {
		n.HID = ""
		return true
	})
}
