package vdom

// event creates an EventHandler with the given name and handler.
// The name is prefixed with "on" (e.g., "click" becomes "onclick").
func event(name string, handler any) EventHandler {
	return EventHandler{Event: "on" + name, Handler: handler}
}

// On handles an arbitrary event by name, e.g. On("swipestart", fn).
func On(name string, handler any) EventHandler { return event(name, handler) }

// OnClick handles click events.
func OnClick(handler any) EventHandler { return event("click", handler) }

// OnKeyDown handles keydown events.
func OnKeyDown(handler any) EventHandler { return event("keydown", handler) }

// OnFocus handles focus events.
func OnFocus(handler any) EventHandler { return event("focus", handler) }

// OnBlur handles blur events.
func OnBlur(handler any) EventHandler { return event("blur", handler) }

// OnMouseEnter handles mouseenter events.
func OnMouseEnter(handler any) EventHandler { return event("mouseenter", handler) }

// OnMouseLeave handles mouseleave events.
func OnMouseLeave(handler any) EventHandler { return event("mouseleave", handler) }

// OnPointerDown handles pointerdown events.
func OnPointerDown(handler any) EventHandler { return event("pointerdown", handler) }

// OnPointerUp handles pointerup events.
func OnPointerUp(handler any) EventHandler { return event("pointerup", handler) }

// Swipe gesture events. They are dispatched by a client gesture hook, not
// by the browser.

// OnSwipeStart handles the start of a swipe gesture.
func OnSwipeStart(handler any) EventHandler { return event("swipestart", handler) }

// OnSwipeMove handles swipe progress.
func OnSwipeMove(handler any) EventHandler { return event("swipemove", handler) }

// OnSwipeCancel handles a swipe released before its threshold.
func OnSwipeCancel(handler any) EventHandler { return event("swipecancel", handler) }

// OnSwipeEnd handles a completed swipe gesture.
func OnSwipeEnd(handler any) EventHandler { return event("swipeend", handler) }
