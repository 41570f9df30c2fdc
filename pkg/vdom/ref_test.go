package vdom

import "testing"

func TestRefBindsToCreatedElement(t *testing.T) {
	ref := NewRef()
	if ref.Bound() {
		t.Fatal("new ref should be unbound")
	}

	var inner *VNode
	tree := Div(Class("outer"),
		func() *VNode {
			inner = Button(ref, Class("inner"))
			return inner
		}(),
	)

	if ref.Current() != inner {
		t.Fatalf("ref bound to %v, want inner button", ref.Current())
	}
	if ref.Current() == tree {
		t.Error("ref bound to the parent instead of the element it was passed to")
	}
}

func TestRefDoesNotBecomeProp(t *testing.T) {
	ref := NewRef()
	node := Div(ref)
	if len(node.Props) != 0 {
		t.Errorf("Props = %v, want none", node.Props)
	}
}

func TestNilRef(t *testing.T) {
	var ref *Ref
	node := Div(ref)
	if ref.Current() != nil || ref.Bound() {
		t.Error("nil ref should stay unbound")
	}
	if node == nil {
		t.Fatal("node should still be created")
	}
}

func TestRefStableAcrossRebuilds(t *testing.T) {
	ref := NewRef()
	build := func() *VNode {
		return Div(Button(ref, OnClick(func() {})), Button(OnClick(func() {})))
	}

	first := build()
	AssignHIDs(first, NewHIDGenerator())
	firstHID := ref.Current().HID

	second := build()
	AssignHIDs(second, NewHIDGenerator())

	if ref.Current() != second.Children[0] {
		t.Fatal("ref should follow the latest build")
	}
	if ref.Current().HID != firstHID || firstHID == "" {
		t.Errorf("HID = %q, want %q", ref.Current().HID, firstHID)
	}
}
