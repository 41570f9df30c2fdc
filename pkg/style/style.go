package style

import (
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go"
)

// CN joins class lists, dropping empty entries, and resolves conflicting
// Tailwind utilities so that later tokens override earlier ones. Surviving
// tokens keep the position of their last occurrence in the input.
func CN(classes ...string) string {
	tokens := make([]string, 0, len(classes)*4)
	for _, c := range classes {
		tokens = append(tokens, strings.Fields(c)...)
	}
	if len(tokens) == 0 {
		return ""
	}

	survivors := make(map[string]bool, len(tokens))
	for _, tok := range strings.Fields(twmerge.Merge(strings.Join(tokens, " "))) {
		survivors[tok] = true
	}

	last := make(map[string]int, len(tokens))
	for i, tok := range tokens {
		last[tok] = i
	}

	out := make([]string, 0, len(survivors))
	for i, tok := range tokens {
		if survivors[tok] && last[tok] == i {
			out = append(out, tok)
		}
	}
	return strings.Join(out, " ")
}

// Variants resolves a variant key to a merged class string.
type Variants[K comparable] struct {
	// Base is applied to every variant.
	Base string

	// Presets holds the classes specific to each key.
	Presets map[K]string

	// Default is used when the requested key has no preset.
	Default K
}

// Preset returns the classes for key, falling back to the default preset.
func (v Variants[K]) Preset(key K) string {
	if cls, ok := v.Presets[key]; ok {
		return cls
	}
	return v.Presets[v.Default]
}

// Has reports whether key names a known preset.
func (v Variants[K]) Has(key K) bool {
	_, ok := v.Presets[key]
	return ok
}

// Resolve returns base, preset and override classes merged in that order.
func (v Variants[K]) Resolve(key K, overrides ...string) string {
	classes := make([]string, 0, len(overrides)+2)
	classes = append(classes, v.Base, v.Preset(key))
	classes = append(classes, overrides...)
	return CN(classes...)
}

// Tokens splits a class string into its individual tokens.
func Tokens(class string) []string {
	return strings.Fields(class)
}

// HasToken reports whether class contains token as a whole word.
func HasToken(class, token string) bool {
	for _, t := range strings.Fields(class) {
		if t == token {
			return true
		}
	}
	return false
}
