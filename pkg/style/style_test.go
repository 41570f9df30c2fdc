package style

import (
	"strings"
	"testing"
)

type kind string

const (
	kindPlain kind = "plain"
	kindLoud  kind = "loud"
)

var testVariants = Variants[kind]{
	Base:    "flex items-center rounded-md border p-4",
	Default: kindPlain,
	Presets: map[kind]string{
		kindPlain: "bg-white text-foreground",
		kindLoud:  "bg-destructive text-destructive-foreground",
	},
}

func TestCN(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  string
	}{
		{"empty", nil, ""},
		{"blank entries", []string{"", "  ", ""}, ""},
		{"single", []string{"flex"}, "flex"},
		{"joins", []string{"flex", "items-center"}, "flex items-center"},
		{"trims", []string{"  flex ", " mt-4"}, "flex mt-4"},
		{"later background wins", []string{"bg-white", "bg-red-500"}, "bg-red-500"},
		{"later padding wins", []string{"p-4", "p-2"}, "p-2"},
		{"keeps input order", []string{"text-sm font-semibold"}, "text-sm font-semibold"},
		{"override keeps position", []string{"mt-2 flex", "mt-4"}, "flex mt-4"},
		{"size override", []string{"text-sm font-semibold", "text-base"}, "font-semibold text-base"},
		{"duplicate collapses to last", []string{"group flex", "group"}, "flex group"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CN(tt.input...); got != tt.want {
				t.Errorf("CN(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestVariantsResolveContainsTokens(t *testing.T) {
	for key, preset := range testVariants.Presets {
		t.Run(string(key), func(t *testing.T) {
			got := testVariants.Resolve(key)
			for _, tok := range Tokens(testVariants.Base) {
				if !HasToken(got, tok) {
					t.Errorf("Resolve(%q) = %q, missing base token %q", key, got, tok)
				}
			}
			for _, tok := range Tokens(preset) {
				if !HasToken(got, tok) {
					t.Errorf("Resolve(%q) = %q, missing preset token %q", key, got, tok)
				}
			}
		})
	}
}

func TestVariantsUnknownFallsBack(t *testing.T) {
	want := testVariants.Resolve(kindPlain)

	for _, key := range []kind{"", "LOUD", "nope"} {
		if got := testVariants.Resolve(key); got != want {
			t.Errorf("Resolve(%q) = %q, want default %q", key, got, want)
		}
	}
	if testVariants.Has("nope") {
		t.Error("Has(nope) = true, want false")
	}
	if !testVariants.Has(kindLoud) {
		t.Error("Has(loud) = false, want true")
	}
}

func TestVariantsOverride(t *testing.T) {
	got := testVariants.Resolve(kindPlain, "bg-red-500 mt-4")

	if !HasToken(got, "bg-red-500") || !HasToken(got, "mt-4") {
		t.Fatalf("Resolve override = %q, missing override tokens", got)
	}
	if HasToken(got, "bg-white") {
		t.Errorf("Resolve override = %q, preset background should be replaced", got)
	}
	if strings.Count(got, "bg-") != 1 {
		t.Errorf("Resolve override = %q, want exactly one background utility", got)
	}
}

func TestVariantsOverrideIdempotent(t *testing.T) {
	once := testVariants.Resolve(kindLoud, "mt-4 bg-red-500")
	twice := testVariants.Resolve(kindLoud, "mt-4 bg-red-500", "mt-4 bg-red-500")

	if once != twice {
		t.Errorf("applying override twice = %q, once = %q", twice, once)
	}
}

func TestVariantsDeterministic(t *testing.T) {
	first := testVariants.Resolve(kindLoud, "shadow-none")
	for i := 0; i < 10; i++ {
		if got := testVariants.Resolve(kindLoud, "shadow-none"); got != first {
			t.Fatalf("Resolve not deterministic: %q vs %q", got, first)
		}
	}
}

func TestVariantsResolveLiteral(t *testing.T) {
	want := "flex items-center rounded-md border p-4 bg-white text-foreground"
	if got := testVariants.Resolve(kindPlain); got != want {
		t.Errorf("Resolve(plain) = %q, want %q", got, want)
	}

	want = "flex items-center rounded-md border p-4 text-foreground mt-4 bg-red-500"
	if got := testVariants.Resolve(kindPlain, "mt-4 bg-red-500"); got != want {
		t.Errorf("Resolve(plain, override) = %q, want %q", got, want)
	}
}

func TestCNRepeatable(t *testing.T) {
	in := []string{"flex items-center rounded-md border p-4 shadow-lg", "bg-white text-foreground", "p-2 shadow-none"}
	first := CN(in...)
	for i := 0; i < 50; i++ {
		if got := CN(in...); got != first {
			t.Fatalf("CN run %d = %q, first run = %q", i, got, first)
		}
	}
	if again := CN(first); again != first {
		t.Errorf("CN(CN(x)) = %q, want %q", again, first)
	}
}

func TestHasToken(t *testing.T) {
	if HasToken("bg-white text-sm", "bg") {
		t.Error("HasToken matched a prefix")
	}
	if !HasToken("bg-white text-sm", "text-sm") {
		t.Error("HasToken missed a token")
	}
}
