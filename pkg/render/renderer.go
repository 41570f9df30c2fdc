package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/vango-dev/toastui/internal/errors"
	"github.com/vango-dev/toastui/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed HTML output with indentation.
	// Should only be used in development as it increases output size.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string
}

// Renderer handles server-side rendering of VNode trees to HTML.
// A Renderer is not safe for concurrent use; create one per render.
type Renderer struct {
	config   RendererConfig
	hids     *vdom.HIDGenerator
	handlers map[string]any
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{
		config:   config,
		hids:     vdom.NewHIDGenerator(),
		handlers: make(map[string]any),
	}
}

// RenderToString renders a VNode tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return r.renderNode(&errWriter{w: w}, node, 0)
}

// Handlers returns the handler registry collected during rendering.
// The map keys are in the format "hid_eventname" (e.g., "h1_onclick").
func (r *Renderer) Handlers() map[string]any {
	return r.handlers
}

// Reset resets the renderer state for reuse.
// This clears the HID counter and handler registry.
func (r *Renderer) Reset() {
	r.hids.Reset()
	r.handlers = make(map[string]any)
}

// errWriter remembers the first write error so the render loop can stop.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = errors.New("E101").Wrap(err)
	}
	return n, e.err
}

func (e *errWriter) str(s string) error {
	_, err := io.WriteString(e, s)
	return err
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w *errWriter, node *vdom.VNode, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node, depth)
	case vdom.KindText:
		return w.str(escapeHTML(node.Text))
	case vdom.KindFragment:
		return r.renderChildren(w, node, depth)
	case vdom.KindRaw:
		return w.str(node.Text)
	default:
		return errors.New("E100").WithDetailf("kind %d on <%s>", node.Kind, node.Tag)
	}
}

func (r *Renderer) renderChildren(w *errWriter, node *vdom.VNode, depth int) error {
	for _, child := range node.Children {
		if err := r.renderNode(w, child, depth); err != nil {
			return err
		}
	}
	return nil
}

// renderElement renders an HTML element with its attributes and children.
func (r *Renderer) renderElement(w *errWriter, node *vdom.VNode, depth int) error {
	tag := node.Tag

	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	if err := w.str("<" + tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node); err != nil {
		return err
	}

	if node.IsInteractive() {
		node.HID = r.hids.Next()
		if err := w.str(` data-hid="` + node.HID + `"`); err != nil {
			return err
		}
		r.registerHandlers(node)
	}

	if err := w.str(">"); err != nil {
		return err
	}

	if isVoidElement(tag) {
		if r.config.Pretty {
			return w.str("\n")
		}
		return nil
	}

	hasBlockChildren := hasElementChildren(node) && !isInlineElement(tag)
	if r.config.Pretty && hasBlockChildren {
		if err := w.str("\n"); err != nil {
			return err
		}
	}

	if err := r.renderChildren(w, node, depth+1); err != nil {
		return err
	}

	if r.config.Pretty && hasBlockChildren {
		r.writeIndent(w, depth)
	}

	if err := w.str("</" + tag + ">"); err != nil {
		return err
	}
	if r.config.Pretty {
		return w.str("\n")
	}
	return nil
}

func hasElementChildren(node *vdom.VNode) bool {
	for _, child := range node.Children {
		if child != nil && child.Kind != vdom.KindText {
			return true
		}
	}
	return false
}

// renderAttributes renders all attributes for an element in sorted order.
func (r *Renderer) renderAttributes(w *errWriter, node *vdom.VNode) error {
	keys := make([]string, 0, len(node.Props))
	for key := range node.Props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var events []string
	for _, key := range keys {
		value := node.Props[key]

		// Internal props and reconciliation keys are never rendered.
		if strings.HasPrefix(key, "_") || key == "key" || value == nil {
			continue
		}

		// Event handlers are registered, not rendered as attributes.
		if strings.HasPrefix(key, "on") && isEventHandler(value) {
			events = append(events, strings.ToLower(key[2:]))
			continue
		}

		if !validAttrName(key) {
			return errors.New("E102").WithDetailf("attribute %q on <%s>", key, node.Tag)
		}

		if isBooleanAttr(key) {
			if b, ok := value.(bool); ok {
				if b {
					if err := w.str(" " + key); err != nil {
						return err
					}
				}
				continue
			}
		}

		if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(attrToString(value))); err != nil {
			return err
		}
	}

	// Event marker attributes for client-side binding
	for _, name := range events {
		if err := w.str(` data-on-` + name + `="true"`); err != nil {
			return err
		}
	}

	return nil
}

// registerHandlers stores handler references for the node's HID.
func (r *Renderer) registerHandlers(node *vdom.VNode) {
	for _, key := range node.Props.Handlers() {
		if value := node.Props[key]; isEventHandler(value) {
			r.handlers[node.HID+"_"+key] = value
		}
	}
}

// validAttrName follows the HTML attribute name production.
func validAttrName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r <= 0x20, r == 0x7f, r >= 0x80 && r <= 0x9f:
			return false
		case strings.ContainsRune("\"'<>/=", r):
			return false
		}
	}
	return true
}

// isEventHandler returns true if the value looks like an event handler.
func isEventHandler(value any) bool {
	if value == nil {
		return false
	}
	switch value.(type) {
	case func():
		return true
	case func(any):
		return true
	default:
		return strings.HasPrefix(fmt.Sprintf("%T", value), "func")
	}
}

// attrToString converts an attribute value to a string.
func attrToString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%g", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w *errWriter, depth int) {
	w.str(strings.Repeat(r.config.Indent, depth))
}
