package hooks

import (
	"encoding/json"
	"testing"

	"github.com/vango-dev/toastui/pkg/vdom"
)

func TestHook(t *testing.T) {
	attrs := Hook("MyHook", map[string]any{"foo": "bar", "baz": 123})

	if len(attrs) != 2 {
		t.Fatalf("len(attrs) = %d, want 2", len(attrs))
	}
	if attrs[0].Key != AttrName || attrs[0].Value != "MyHook" {
		t.Errorf("name attr = %+v", attrs[0])
	}
	if attrs[1].Key != AttrConfig {
		t.Fatalf("config key = %q, want %q", attrs[1].Key, AttrConfig)
	}

	var cfg map[string]any
	if err := json.Unmarshal([]byte(attrs[1].Value.(string)), &cfg); err != nil {
		t.Fatalf("config is not JSON: %v", err)
	}
	if cfg["foo"] != "bar" || cfg["baz"] != float64(123) {
		t.Errorf("config = %v", cfg)
	}
}

func TestHookNilConfig(t *testing.T) {
	attrs := Hook("EmptyHook", nil)
	if len(attrs) != 1 {
		t.Fatalf("len(attrs) = %d, want 1", len(attrs))
	}
}

func TestHookUnencodableConfig(t *testing.T) {
	attrs := Hook("Bad", map[string]any{"fn": func() {}})
	if len(attrs) != 1 {
		t.Fatalf("len(attrs) = %d, want 1", len(attrs))
	}
}

func TestName(t *testing.T) {
	node := vdom.Div(Hook("Swipe", nil))
	if Name(node) != "Swipe" {
		t.Errorf("Name = %q, want Swipe", Name(node))
	}
	if Name(vdom.Div()) != "" || Name(nil) != "" {
		t.Error("Name should be empty without a hook")
	}
}

func TestOnEvent(t *testing.T) {
	h := OnEvent("swipeend", func(HookEvent) {})
	if h.Event != "onswipeend" {
		t.Errorf("Event = %q, want onswipeend", h.Event)
	}
}

func TestHookEventAccessors(t *testing.T) {
	e := HookEvent{Name: "swipeend", Data: map[string]any{
		"dx":      float64(120),
		"dy":      "4",
		"ratio":   0.5,
		"done":    true,
		"flag":    "true",
		"label":   "right",
		"count":   3,
		"percent": "12.5",
	}}

	if e.Int("dx") != 120 || e.Int("dy") != 4 || e.Int("count") != 3 || e.Int("missing") != 0 {
		t.Error("Int accessor mismatch")
	}
	if e.Float("ratio") != 0.5 || e.Float("percent") != 12.5 || e.Float("count") != 3 {
		t.Error("Float accessor mismatch")
	}
	if !e.Bool("done") || !e.Bool("flag") || e.Bool("missing") {
		t.Error("Bool accessor mismatch")
	}
	if e.String("label") != "right" || e.String("dx") != "120" || e.String("missing") != "" {
		t.Error("String accessor mismatch")
	}
}
