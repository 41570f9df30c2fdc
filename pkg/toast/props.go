package toast

import (
	"github.com/vango-dev/toastui/pkg/vdom"
)

// props is the result of splitting component arguments into the ones a
// component interprets and the ones it forwards untouched.
type props struct {
	variant  Variant
	classes  []string
	swipeEnd SwipeEndFunc
	rest     []any
}

// splitProps pulls class attributes out of args, plus Variant and
// SwipeEndFunc values when root is true. Everything else, including
// attribute slices and refs, ends up in rest in its original order.
func splitProps(args []any, root bool) props {
	p := props{variant: VariantDefault, rest: make([]any, 0, len(args))}

	for _, arg := range args {
		switch v := arg.(type) {
		case vdom.Attr:
			if v.Key == "class" {
				p.addClass(v.Value)
				continue
			}
		case []vdom.Attr:
			kept := make([]vdom.Attr, 0, len(v))
			for _, a := range v {
				if a.Key == "class" {
					p.addClass(a.Value)
					continue
				}
				kept = append(kept, a)
			}
			p.rest = append(p.rest, kept)
			continue
		case Variant:
			if root {
				p.variant = v
				continue
			}
		case SwipeEndFunc:
			if root {
				p.swipeEnd = v
				continue
			}
		}
		p.rest = append(p.rest, arg)
	}

	return p
}

func (p *props) addClass(value any) {
	if s, ok := value.(string); ok && s != "" {
		p.classes = append(p.classes, s)
	}
}

// element builds a node with the merged class first so forwarded
// attributes land after it.
func element(factory func(...any) *vdom.VNode, class string, rest []any, trailing ...any) *vdom.VNode {
	args := make([]any, 0, len(rest)+len(trailing)+1)
	args = append(args, vdom.Class(class))
	args = append(args, rest...)
	args = append(args, trailing...)
	return factory(args...)
}
