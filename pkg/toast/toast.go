package toast

import (
	"github.com/vango-dev/toastui/pkg/features/hooks/standard"
	"github.com/vango-dev/toastui/pkg/style"
	"github.com/vango-dev/toastui/pkg/vdom"
)

// CloseMarker is the attribute dismiss wiring uses to find close buttons.
const CloseMarker = "toast-close"

// SwipeEndFunc is called once per completed dismiss swipe.
type SwipeEndFunc func()

// OnSwipeEnd registers fn as the root's swipe-end handler. The root only
// exposes the hook point; the client gesture hook decides when it fires.
func OnSwipeEnd(fn func()) SwipeEndFunc {
	return SwipeEndFunc(fn)
}

// SwipeOptions configures the gesture hook attached alongside OnSwipeEnd.
// Passing it to Root without OnSwipeEnd has no effect.
type SwipeOptions = standard.SwipeConfig

const (
	actionClasses = "inline-flex h-8 shrink-0 items-center justify-center rounded-md border bg-transparent px-3 text-sm font-medium ring-offset-background transition-colors hover:bg-secondary focus:outline-none focus:ring-2 focus:ring-ring focus:ring-offset-2 disabled:pointer-events-none disabled:opacity-50 " +
		"group-[.destructive]:border-muted/40 group-[.destructive]:hover:border-destructive/30 group-[.destructive]:hover:bg-destructive group-[.destructive]:hover:text-destructive-foreground group-[.destructive]:focus:ring-destructive"

	closeClasses = "absolute right-2 top-2 rounded-md p-1 text-foreground/50 opacity-0 transition-opacity hover:text-foreground focus:opacity-100 focus:outline-none focus:ring-2 group-hover:opacity-100"

	titleClasses       = "text-sm font-semibold"
	descriptionClasses = "text-sm opacity-90"
)

// Root renders the toast container.
//
// Recognized arguments: a Variant, class attributes, a SwipeEndFunc and
// SwipeOptions. Everything else is forwarded to the <div>.
func Root(args ...any) *vdom.VNode {
	var swipe *SwipeOptions
	filtered := make([]any, 0, len(args))
	for _, arg := range args {
		if opts, ok := arg.(SwipeOptions); ok {
			swipe = &opts
			continue
		}
		filtered = append(filtered, arg)
	}

	p := splitProps(filtered, true)
	class := Classes(p.variant, p.classes...)

	// The hook binding goes before forwarded args so callers can replace it.
	var hook []any
	if p.swipeEnd != nil {
		cfg := SwipeOptions{}
		if swipe != nil {
			cfg = *swipe
		}
		hook = append(hook, standard.Swipe(cfg), vdom.OnSwipeEnd((func())(p.swipeEnd)))
	}

	return element(vdom.Div, class, append(hook, p.rest...))
}

// Action renders a toast action button. Under a destructive root it picks
// up destructive hover and focus styling from the group-[.destructive]:
// classes.
func Action(args ...any) *vdom.VNode {
	p := splitProps(args, false)
	return element(vdom.Button, style.CN(append([]string{actionClasses}, p.classes...)...), p.rest)
}

// Close renders the dismiss button. The toast-close marker is applied after
// caller attributes and cannot be overridden.
func Close(args ...any) *vdom.VNode {
	p := splitProps(args, false)
	return element(vdom.Button, style.CN(append([]string{closeClasses}, p.classes...)...),
		append([]any{vdom.Span(vdom.Class("sr-only"), "Close"), closeGlyph()}, p.rest...),
		vdom.Attribute(CloseMarker, ""),
	)
}

// Title renders the toast heading.
func Title(args ...any) *vdom.VNode {
	p := splitProps(args, false)
	return element(vdom.H2, style.CN(append([]string{titleClasses}, p.classes...)...), p.rest)
}

// Description renders the toast body text.
func Description(args ...any) *vdom.VNode {
	p := splitProps(args, false)
	return element(vdom.P, style.CN(append([]string{descriptionClasses}, p.classes...)...), p.rest)
}

// closeGlyph is an "X" drawn with two crossing lines.
func closeGlyph() *vdom.VNode {
	return vdom.Svg(
		vdom.Xmlns("http://www.w3.org/2000/svg"),
		vdom.Class("h-4 w-4"),
		vdom.ViewBox("0 0 24 24"),
		vdom.Fill("none"),
		vdom.Stroke("currentColor"),
		vdom.StrokeWidth("2"),
		vdom.StrokeLinecap("round"),
		vdom.StrokeLinejoin("round"),
		vdom.Line(vdom.X1("18"), vdom.Y1("6"), vdom.X2("6"), vdom.Y2("18")),
		vdom.Line(vdom.X1("6"), vdom.Y1("6"), vdom.X2("18"), vdom.Y2("18")),
	)
}
