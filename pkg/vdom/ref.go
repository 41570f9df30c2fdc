package vdom

// Ref is a handle to a rendered element.
//
// Passing a *Ref to an element factory binds it to the node being created.
// The element never reads the ref back; only the caller that owns it does.
// Rebuilding the same tree rebinds the ref to the new node, which carries
// the same hydration ID and markup as the previous one.
type Ref struct {
	node *VNode
}

// NewRef returns an unbound reference.
func NewRef() *Ref {
	return &Ref{}
}

// Current returns the bound node, or nil if the ref was never bound.
func (r *Ref) Current() *VNode {
	if r == nil {
		return nil
	}
	return r.node
}

// Bound reports whether the ref points at a node.
func (r *Ref) Bound() bool {
	return r != nil && r.node != nil
}

func (r *Ref) bind(node *VNode) {
	if r != nil {
		r.node = node
	}
}
