package hooks

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/vango-dev/toastui/pkg/vdom"
)

const (
	// AttrName holds the hook name on the element.
	AttrName = "data-hook"

	// AttrConfig holds the JSON encoded hook configuration.
	AttrConfig = "data-hook-config"
)

// Hook returns the attributes that bind the named client hook to an element.
// A nil config, or one that cannot be encoded, omits the config attribute.
func Hook(name string, config any) []vdom.Attr {
	attrs := []vdom.Attr{{Key: AttrName, Value: name}}
	if config == nil {
		return attrs
	}
	b, err := json.Marshal(config)
	if err != nil {
		return attrs
	}
	return append(attrs, vdom.Attr{Key: AttrConfig, Value: string(b)})
}

// Name returns the hook bound to node, if any.
func Name(node *vdom.VNode) string {
	if node == nil {
		return ""
	}
	return node.Props.String(AttrName)
}

// OnEvent creates an event handler attribute for a hook event.
func OnEvent(name string, handler func(HookEvent)) vdom.EventHandler {
	return vdom.On(name, handler)
}

// HookEvent represents an event triggered by a client hook.
type HookEvent struct {
	Name string
	Data map[string]any
}

// String returns the value under key formatted as a string.
func (e HookEvent) String(key string) string {
	if v, ok := e.Data[key]; ok {
		return fmt.Sprintf("%v", v)
	}
	return ""
}

// Int returns the value under key as an int, or 0.
func (e HookEvent) Int(key string) int {
	if v, ok := e.Data[key]; ok {
		switch val := v.(type) {
		case int:
			return val
		case float64:
			return int(val)
		case string:
			i, _ := strconv.Atoi(val)
			return i
		}
	}
	return 0
}

// Float returns the value under key as a float64, or 0.
func (e HookEvent) Float(key string) float64 {
	if v, ok := e.Data[key]; ok {
		switch val := v.(type) {
		case float64:
			return val
		case int:
			return float64(val)
		case string:
			f, _ := strconv.ParseFloat(val, 64)
			return f
		}
	}
	return 0
}

// Bool returns the value under key as a bool, or false.
func (e HookEvent) Bool(key string) bool {
	if v, ok := e.Data[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
		b, _ := strconv.ParseBool(fmt.Sprintf("%v", v))
		return b
	}
	return false
}
