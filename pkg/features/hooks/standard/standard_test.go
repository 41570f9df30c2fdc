package standard

import (
	"encoding/json"
	"testing"

	"github.com/vango-dev/toastui/pkg/features/hooks"
)

func TestSwipeDefaults(t *testing.T) {
	attrs := Swipe(SwipeConfig{})
	if attrs[0].Key != hooks.AttrName || attrs[0].Value != SwipeHookName {
		t.Fatalf("name attr = %+v", attrs[0])
	}

	var cfg SwipeConfig
	if err := json.Unmarshal([]byte(attrs[1].Value.(string)), &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Direction != SwipeRight || cfg.Threshold != DefaultSwipeThreshold {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestSwipeCustom(t *testing.T) {
	attrs := Swipe(SwipeConfig{Direction: SwipeUp, Threshold: 80})

	var cfg SwipeConfig
	if err := json.Unmarshal([]byte(attrs[1].Value.(string)), &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Direction != SwipeUp || cfg.Threshold != 80 {
		t.Errorf("cfg = %+v", cfg)
	}
}
