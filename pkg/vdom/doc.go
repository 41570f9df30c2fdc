// Package vdom provides the virtual DOM that toast components render into.
//
// A VNode tree is an in-memory description of markup. Components build trees
// with variadic element factories, and the render package turns them into
// HTML on the server.
//
// # Element API
//
// Element factories accept attributes, event handlers, references and
// children in any order:
//
//	Div(Class("card"), ID("main"),
//	    H2(Text("Title")),
//	    P(Text("Content")),
//	    OnClick(handler),
//	)
//
// Arguments of an unrecognized type are ignored, and nil is always allowed so
// attributes can be added conditionally.
//
// # References
//
// A *Ref passed to a factory is bound to the node that factory creates.
// Callers read it back with Ref.Current after the tree is built.
//
// # Hydration
//
// AssignHIDs walks the tree and assigns hydration IDs to interactive elements
// (those with event handlers). The IDs link server nodes to client DOM so
// client events can be routed back to their handlers.
package vdom
