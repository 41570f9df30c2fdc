package standard

import (
	"github.com/vango-dev/toastui/pkg/features/hooks"
	"github.com/vango-dev/toastui/pkg/vdom"
)

// SwipeHookName is the client hook that tracks swipe-to-dismiss gestures.
const SwipeHookName = "Swipe"

// Swipe directions.
const (
	SwipeRight = "right"
	SwipeLeft  = "left"
	SwipeUp    = "up"
	SwipeDown  = "down"
)

// DefaultSwipeThreshold is the distance in pixels a pointer must travel
// before a swipe counts as complete.
const DefaultSwipeThreshold = 50

// SwipeConfig configures the Swipe hook.
//
// While a gesture is in progress the client sets data-swipe="move" and the
// --radix-toast-swipe-move-x/y custom properties on the element. On release
// it sets data-swipe to "end" or "cancel" and, for "end", fires the
// element's swipeend event exactly once.
type SwipeConfig struct {
	Direction string `json:"direction,omitempty"`
	Threshold int    `json:"threshold,omitempty"`
}

// Swipe creates the Swipe hook attributes. Zero fields take defaults.
func Swipe(config SwipeConfig) []vdom.Attr {
	if config.Direction == "" {
		config.Direction = SwipeRight
	}
	if config.Threshold <= 0 {
		config.Threshold = DefaultSwipeThreshold
	}
	return hooks.Hook(SwipeHookName, config)
}
