// Package hooks attaches client-side interaction hooks to elements.
//
// A hook is a named piece of client code (a swipe detector, a focus trap)
// bound to an element through data attributes. The server only declares
// which hook an element wants and with which configuration; the client runs
// the physics and reports back through ordinary event handlers.
//
// Usage:
//
//	Div(
//	    hooks.Hook("Swipe", map[string]any{"direction": "right"}),
//	    OnSwipeEnd(func() { ... }),
//	)
//
// renders as
//
//	<div data-hook="Swipe" data-hook-config="{&quot;direction&quot;:&quot;right&quot;}" ...>
package hooks
