package vdom

import (
	"sort"
	"strings"
)

// VKind says how the renderer treats a node.
type VKind uint8

const (
	KindElement  VKind = iota // tag with props and children
	KindText                  // escaped text
	KindFragment              // children without a wrapper
	KindRaw                   // pre-escaped markup, such as the close glyph
)

var kindNames = [...]string{
	KindElement:  "Element",
	KindText:     "Text",
	KindFragment: "Fragment",
	KindRaw:      "Raw",
}

func (k VKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// VNode is one node of a toast tree. Toast parts build element nodes whose
// Props carry the merged class, forwarded attributes and handlers. HID is
// filled in by AssignHIDs for nodes that have handlers.
type VNode struct {
	Kind     VKind
	Tag      string
	Props    Props
	Children []*VNode
	Key      string
	Text     string
	HID      string
}

// Props maps attribute names to values. Keys starting with "on" hold
// event handlers.
type Props map[string]any

// String returns the prop under key when it holds a string.
func (p Props) String(key string) string {
	s, _ := p[key].(string)
	return s
}

// Handlers returns the sorted event prop names, e.g. "onswipeend".
func (p Props) Handlers() []string {
	var names []string
	for key := range p {
		if strings.HasPrefix(key, "on") {
			names = append(names, key)
		}
	}
	sort.Strings(names)
	return names
}

// IsInteractive reports whether v is an element with at least one handler.
func (v *VNode) IsInteractive() bool {
	if v == nil || v.Kind != KindElement {
		return false
	}
	for key := range v.Props {
		if strings.HasPrefix(key, "on") {
			return true
		}
	}
	return false
}

// Attr is a single attribute passed to an element factory. An empty Key
// is dropped.
type Attr struct {
	Key   string
	Value any
}

// EventHandler binds Handler to the prop named Event ("onclick",
// "onswipeend").
type EventHandler struct {
	Event   string
	Handler any
}
