package vdom

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Attribute creates an arbitrary attribute.
// Use it for marker attributes and anything without a dedicated helper.
func Attribute(key string, value any) Attr { return attr(key, value) }

// Key sets the reconciliation key.
func Key(key string) Attr { return attr("key", key) }

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute (named to avoid conflict with Style element).
func StyleAttr(style string) Attr { return attr("style", style) }

// Data creates a data-* attribute.
// Example: Data("state", "open") → data-state="open"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attr { return attr("aria-hidden", hidden) }

// AriaLive sets the aria-live attribute.
func AriaLive(mode string) Attr { return attr("aria-live", mode) }

// AriaAtomic sets the aria-atomic attribute.
func AriaAtomic(atomic bool) Attr { return attr("aria-atomic", atomic) }

// AriaDescribedBy sets the aria-describedby attribute.
func AriaDescribedBy(id string) Attr { return attr("aria-describedby", id) }

// AriaLabelledBy sets the aria-labelledby attribute.
func AriaLabelledBy(id string) Attr { return attr("aria-labelledby", id) }

// TabIndex sets the tabindex attribute.
func TabIndex(index int) Attr { return attr("tabindex", index) }

// TitleAttr sets the title attribute (named to avoid conflict with Title element).
func TitleAttr(title string) Attr { return attr("title", title) }

// Lang sets the lang attribute.
func Lang(lang string) Attr { return attr("lang", lang) }

// Link and resource attributes

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Rel sets the rel attribute.
func Rel(rel string) Attr { return attr("rel", rel) }

// Src sets the src attribute.
func Src(url string) Attr { return attr("src", url) }

// Charset sets the charset attribute.
func Charset(charset string) Attr { return attr("charset", charset) }

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Content sets the content attribute.
func Content(content string) Attr { return attr("content", content) }

// Form attributes

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Value sets the value attribute.
func Value(value string) Attr { return attr("value", value) }

// Disabled sets the disabled attribute.
func Disabled() Attr { return attr("disabled", true) }

// Hidden sets the hidden attribute.
func Hidden() Attr { return attr("hidden", true) }

// SVG presentation attributes

// Xmlns sets the xmlns attribute.
func Xmlns(ns string) Attr { return attr("xmlns", ns) }

// ViewBox sets the viewBox attribute.
func ViewBox(box string) Attr { return attr("viewBox", box) }

// Fill sets the fill attribute.
func Fill(fill string) Attr { return attr("fill", fill) }

// Stroke sets the stroke attribute.
func Stroke(stroke string) Attr { return attr("stroke", stroke) }

// StrokeWidth sets the stroke-width attribute.
func StrokeWidth(width string) Attr { return attr("stroke-width", width) }

// StrokeLinecap sets the stroke-linecap attribute.
func StrokeLinecap(cap string) Attr { return attr("stroke-linecap", cap) }

// StrokeLinejoin sets the stroke-linejoin attribute.
func StrokeLinejoin(join string) Attr { return attr("stroke-linejoin", join) }

// X1 sets the x1 attribute.
func X1(v string) Attr { return attr("x1", v) }

// Y1 sets the y1 attribute.
func Y1(v string) Attr { return attr("y1", v) }

// X2 sets the x2 attribute.
func X2(v string) Attr { return attr("x2", v) }

// Y2 sets the y2 attribute.
func Y2(v string) Attr { return attr("y2", v) }

// D sets the d attribute of a path.
func D(path string) Attr { return attr("d", path) }
