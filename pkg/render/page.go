package render

import (
	"io"

	"github.com/vango-dev/toastui/pkg/vdom"
)

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Body is the root VNode for the page content
	Body *vdom.VNode

	// Title is the page title
	Title string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string

	// StyleSheets contains URLs of external stylesheets.
	StyleSheets []string

	// Styles contains inline CSS.
	Styles []string

	// Scripts contains script tags appended to the end of the body.
	Scripts []ScriptTag
}

// ScriptTag represents a script element.
type ScriptTag struct {
	Src    string // src attribute
	Module bool   // type="module"
	Defer  bool   // defer attribute
	Inline string // inline script content
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	return r.RenderToWriter(w, BuildPage(page))
}

// BuildPage assembles the document tree for page without rendering it.
func BuildPage(page PageData) *vdom.VNode {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	head := []any{
		vdom.Meta(vdom.Charset("utf-8")),
		vdom.Meta(vdom.Name("viewport"), vdom.Content("width=device-width, initial-scale=1")),
	}
	if page.Title != "" {
		head = append(head, vdom.Title(page.Title))
	}
	for _, href := range page.StyleSheets {
		head = append(head, vdom.Link(vdom.Rel("stylesheet"), vdom.Href(href)))
	}
	for _, css := range page.Styles {
		head = append(head, vdom.Style(vdom.Raw(css)))
	}

	body := []any{page.Body}
	for _, s := range page.Scripts {
		body = append(body, scriptNode(s))
	}

	return vdom.Fragment(
		vdom.Raw("<!DOCTYPE html>\n"),
		vdom.Html(vdom.Lang(lang),
			vdom.Head(head...),
			vdom.Body(body...),
		),
	)
}

func scriptNode(s ScriptTag) *vdom.VNode {
	args := []any{}
	if s.Src != "" {
		args = append(args, vdom.Src(s.Src))
	}
	if s.Module {
		args = append(args, vdom.Type("module"))
	}
	if s.Defer {
		args = append(args, vdom.Attribute("defer", true))
	}
	if s.Inline != "" {
		args = append(args, vdom.Raw(s.Inline))
	}
	return vdom.Script(args...)
}
