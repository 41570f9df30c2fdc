// Package toast renders toast notification markup.
//
// The package provides five leaf components that compose into a toast:
//
//	toast.Root(toast.VariantDestructive, vdom.Class("mt-4"), toast.OnSwipeEnd(dismiss),
//	    vdom.Div(vdom.Class("grid gap-1"),
//	        toast.Title("Uh oh! Something went wrong."),
//	        toast.Description("There was a problem with your request."),
//	    ),
//	    toast.Action(vdom.OnClick(retry), "Try again"),
//	    toast.Close(),
//	)
//
// Components are stateless. Each one accepts the same arguments an element
// factory in package vdom does (attributes, event handlers, children and
// *vdom.Ref) and forwards all of them to the element it renders. Class
// attributes are the one exception: they are merged with the component's
// preset classes, and conflicting Tailwind utilities resolve in favour of
// the caller.
//
// # Variants
//
// Root recognizes a Variant argument. Unknown variants render like
// VariantDefault. The destructive variant adds the "group" and
// "destructive" classes, and Action and Close react to them through
// group-[.destructive]: and group-hover: selectors, so they never need to
// be told which variant their container uses.
//
// # Collaborators
//
// Opening, closing, timers and stacking are left to the caller. The
// generated classes react to data-state="open|closed" and
// data-swipe="move|cancel|end" set on the root by whoever manages the
// toast. Dismiss wiring finds close buttons by the toast-close attribute,
// and a client gesture hook fires the swipeend event registered by
// OnSwipeEnd.
package toast
