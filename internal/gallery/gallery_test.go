package gallery

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/toastui/internal/errors"
	"github.com/vango-dev/toastui/pkg/render"
	"github.com/vango-dev/toastui/pkg/style"
	"github.com/vango-dev/toastui/pkg/toast"
	"github.com/vango-dev/toastui/pkg/vdom"
)

func TestDefault(t *testing.T) {
	f, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Toasts", f.Title)
	require.NotEmpty(t, f.Toasts)

	failed, ok := f.Find("failed")
	require.True(t, ok)
	assert.Equal(t, "destructive", failed.Variant)
	assert.Equal(t, StateOpen, failed.State)

	closed, ok := f.Find("dismissed")
	require.True(t, ok)
	assert.Equal(t, StateClosed, closed.State)
	assert.Len(t, f.Open(), len(f.Toasts)-1)
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	f, err := Load("")
	require.NoError(t, err)
	def, err := Default()
	require.NoError(t, err)
	assert.Equal(t, def, f)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toasts.yaml")
	require.NoError(t, os.WriteFile(path, []byte("toasts:\n  - title: Hi\n"), 0644))

	f, err := Load(path)
	require.NoError(t, err)
	require.Len(t, f.Toasts, 1)
	assert.Equal(t, "Hi", f.Toasts[0].Title)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, "E130", errors.Code(err))
}

func TestParseAssignsUUID(t *testing.T) {
	f, err := Parse([]byte("toasts:\n  - title: a\n  - title: b\n"))
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, tt := range f.Toasts {
		_, err := uuid.Parse(tt.ID)
		assert.NoError(t, err, "id %q", tt.ID)
		assert.False(t, seen[tt.ID])
		seen[tt.ID] = true
		assert.Equal(t, "default", tt.Variant)
	}

	again, err := Parse([]byte("toasts:\n  - title: a\n  - title: b\n"))
	require.NoError(t, err)
	assert.Equal(t, f.Toasts[0].ID, again.Toasts[0].ID)
	assert.Equal(t, f.Toasts[1].ID, again.Toasts[1].ID)

	changed, err := Parse([]byte("toasts:\n  - title: c\n  - title: b\n"))
	require.NoError(t, err)
	assert.NotEqual(t, f.Toasts[0].ID, changed.Toasts[0].ID)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name   string
		yaml   string
		detail string
	}{
		{"syntax", "toasts: [", ""},
		{"unknown field", "toasts:\n  - colour: red\n", ""},
		{"variant", "toasts:\n  - variant: loud\n", "unknown variant"},
		{"state", "toasts:\n  - state: maybe\n", "unknown state"},
		{"duplicate", "toasts:\n  - id: a\n  - id: a\n", "duplicate toast id"},
		{"parent path id", "toasts:\n  - id: ../../etc\n", "invalid toast id"},
		{"slash id", "toasts:\n  - id: a/b\n", "invalid toast id"},
		{"space id", "toasts:\n  - id: \"a b\"\n", "invalid toast id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Equal(t, "E130", errors.Code(err))
			if tt.detail != "" {
				assert.Contains(t, err.Error(), tt.detail)
			}
		})
	}
}

func TestToastNodeWiresAria(t *testing.T) {
	node := Toast{ID: "t1", Variant: "destructive", Title: "Oops", Description: "Broke", Action: "Retry"}.Node(Handlers{})

	assert.Equal(t, "div", node.Tag)
	assert.Equal(t, "t1", node.Props["id"])
	assert.Equal(t, "t1-title", node.Props["aria-labelledby"])
	assert.Equal(t, "t1-description", node.Props["aria-describedby"])
	assert.Equal(t, "assertive", node.Props["aria-live"])
	assert.Equal(t, "open", node.Props["data-state"])
	assert.True(t, style.HasToken(node.Props["class"].(string), "destructive"))

	title := vdom.FindByTag(node, "h2")
	require.NotNil(t, title)
	assert.Equal(t, "t1-title", title.Props["id"])
	assert.Equal(t, "Oops", vdom.TextContent(title))

	desc := vdom.FindByTag(node, "p")
	require.NotNil(t, desc)
	assert.Equal(t, "t1-description", desc.Props["id"])

	var buttons []*vdom.VNode
	vdom.Walk(node, func(n *vdom.VNode) bool {
		if n.Tag == "button" {
			buttons = append(buttons, n)
		}
		return true
	})
	require.Len(t, buttons, 2)
	assert.Equal(t, "Retry", buttons[0].Props["aria-label"])
	_, isClose := buttons[1].Props[toast.CloseMarker]
	assert.True(t, isClose)
	assert.False(t, node.IsInteractive())
}

func TestToastNodeOmitsMissingParts(t *testing.T) {
	node := Toast{ID: "t2", Description: "Only body"}.Node(Handlers{})

	assert.NotContains(t, node.Props, "aria-labelledby")
	assert.Equal(t, "t2-description", node.Props["aria-describedby"])
	assert.Equal(t, "polite", node.Props["aria-live"])
	assert.Nil(t, vdom.FindByTag(node, "h2"))
}

func TestToastNodeClassOverride(t *testing.T) {
	node := Toast{ID: "c", Class: "bg-slate-900 mt-4"}.Node(Handlers{})
	class := node.Props["class"].(string)

	assert.True(t, style.HasToken(class, "bg-slate-900"))
	assert.True(t, style.HasToken(class, "mt-4"))
	assert.False(t, style.HasToken(class, "bg-white"))
}

func TestToastNodeHandlers(t *testing.T) {
	var got []string
	h := Handlers{
		SwipeEnd: func(t Toast) func() { return func() { got = append(got, "swipe:"+t.ID) } },
		Action:   func(t Toast) func() { return func() { got = append(got, "action:"+t.ID) } },
		Close:    func(t Toast) func() { return func() { got = append(got, "close:"+t.ID) } },
	}
	node := Toast{ID: "x", Title: "T", Action: "Undo"}.Node(h)

	r := render.NewRenderer(render.RendererConfig{})
	_, err := r.RenderToString(node)
	require.NoError(t, err)

	handlers := r.Handlers()
	require.Len(t, handlers, 3)
	for _, key := range []string{"h1_onswipeend", "h2_onclick", "h3_onclick"} {
		fn, ok := handlers[key].(func())
		require.True(t, ok, key)
		fn()
	}
	assert.Equal(t, []string{"swipe:x", "action:x", "close:x"}, got)
}

func TestPage(t *testing.T) {
	f, err := Default()
	require.NoError(t, err)

	page := f.Page(Handlers{}, "https://example.com/app.css")
	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(render.BuildPage(page))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, `<link href="https://example.com/app.css" rel="stylesheet">`)
	assert.Contains(t, html, `<title>Toasts</title>`)
	assert.Contains(t, html, `id="toast-viewport"`)
	assert.Equal(t, len(f.Toasts), strings.Count(html, `toast-close=""`))
	assert.Contains(t, html, `data-state="closed"`)

	untitled := (&Fixture{}).Page(Handlers{}, "")
	assert.Equal(t, "Toasts", untitled.Title)
	assert.Empty(t, untitled.StyleSheets)
}
