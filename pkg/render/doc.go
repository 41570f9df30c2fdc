// Package render provides server-side rendering (SSR) of VNode trees.
//
// The renderer converts VNode trees into HTML strings or streams:
//
//   - HTML5 compliant element rendering
//   - Text and attribute escaping
//   - Void element and boolean attribute handling
//   - Hydration IDs for elements that carry event handlers
//   - Full page rendering with DOCTYPE, head, body
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// # Hydration IDs
//
// Elements with event handlers receive a data-hid attribute. Handlers are
// collected during rendering and exposed through Handlers(), keyed by
// "<hid>_<event>" (for example "h1_onswipeend"), so a client event naming a
// hydration ID can be routed back to the Go function that handles it.
//
// # Errors
//
// Unknown node kinds fail with code E100 and writer failures with E101.
// Both are *errors.ToastError values wrapping the underlying cause.
package render
