package gallery

import (
	"github.com/vango-dev/toastui/pkg/render"
	"github.com/vango-dev/toastui/pkg/toast"
	"github.com/vango-dev/toastui/pkg/vdom"
)

const viewportClasses = "flex w-full flex-col gap-3 p-4 md:max-w-[420px]"

// Handlers supplies per-toast event handlers. Nil fields leave the
// corresponding element without a handler.
type Handlers struct {
	SwipeEnd func(Toast) func()
	Action   func(Toast) func()
	Close    func(Toast) func()
}

// Node builds the toast tree for t.
func (t Toast) Node(h Handlers) *vdom.VNode {
	variant, _ := toast.ParseVariant(t.Variant)
	state := t.State
	if state == "" {
		state = StateOpen
	}

	live := "polite"
	if variant == toast.VariantDestructive {
		live = "assertive"
	}

	args := []any{
		variant,
		vdom.ID(t.ID),
		vdom.Key(t.ID),
		vdom.Role("status"),
		vdom.AriaLive(live),
		vdom.AriaAtomic(true),
		vdom.Data("state", state),
	}
	if t.Class != "" {
		args = append(args, vdom.Class(t.Class))
	}
	if h.SwipeEnd != nil {
		args = append(args, toast.OnSwipeEnd(h.SwipeEnd(t)))
	}

	text := []any{vdom.Class("grid gap-1")}
	if t.Title != "" {
		args = append(args, vdom.AriaLabelledBy(t.titleID()))
		text = append(text, toast.Title(vdom.ID(t.titleID()), t.Title))
	}
	if t.Description != "" {
		args = append(args, vdom.AriaDescribedBy(t.descriptionID()))
		text = append(text, toast.Description(vdom.ID(t.descriptionID()), t.Description))
	}
	args = append(args, vdom.Div(text...))

	if t.Action != "" {
		action := []any{vdom.Type("button"), vdom.AriaLabel(t.Action), t.Action}
		if h.Action != nil {
			action = append(action, vdom.OnClick(h.Action(t)))
		}
		args = append(args, toast.Action(action...))
	}

	closeArgs := []any{vdom.Type("button")}
	if h.Close != nil {
		closeArgs = append(closeArgs, vdom.OnClick(h.Close(t)))
	}
	args = append(args, toast.Close(closeArgs...))

	return toast.Root(args...)
}

func (t Toast) titleID() string       { return t.ID + "-title" }
func (t Toast) descriptionID() string { return t.ID + "-description" }

// Node builds the viewport holding every toast in the fixture.
func (f *Fixture) Node(h Handlers) *vdom.VNode {
	return vdom.Section(
		vdom.ID("toast-viewport"),
		vdom.Class(viewportClasses),
		vdom.AriaLabel("Notifications"),
		vdom.TabIndex(-1),
		vdom.Range(f.Toasts, func(t Toast, _ int) *vdom.VNode {
			return t.Node(h)
		}),
	)
}

// Page returns the page data for the whole fixture. Callers add scripts.
func (f *Fixture) Page(h Handlers, stylesheet string) render.PageData {
	title := f.Title
	if title == "" {
		title = "Toasts"
	}

	page := render.PageData{
		Title: title,
		Body: vdom.Main(vdom.Class("mx-auto max-w-2xl p-8"),
			vdom.H1(vdom.Class("mb-6 text-2xl font-semibold"), title),
			f.Node(h),
		),
	}
	if stylesheet != "" {
		page.StyleSheets = []string{stylesheet}
	}
	return page
}
