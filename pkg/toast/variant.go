package toast

import "github.com/vango-dev/toastui/pkg/style"

// Variant selects the visual preset of a toast.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Variants lists the supported variants.
func Variants() []Variant {
	return []Variant{VariantDefault, VariantDestructive}
}

// ParseVariant converts s to a Variant. Unknown names map to
// VariantDefault; ok reports whether s named a known variant.
func ParseVariant(s string) (v Variant, ok bool) {
	v = Variant(s)
	if !rootVariants.Has(v) {
		return VariantDefault, false
	}
	return v, true
}

const rootBase = "group pointer-events-auto relative flex w-full items-center justify-between space-x-4 overflow-hidden rounded-md border p-4 pr-6 shadow-lg transition-all " +
	"data-[swipe=cancel]:translate-x-0 data-[swipe=end]:translate-x-[var(--radix-toast-swipe-end-x)] data-[swipe=move]:translate-x-[var(--radix-toast-swipe-move-x)] data-[swipe=move]:transition-none " +
	"data-[state=open]:animate-in data-[state=closed]:animate-out data-[swipe=end]:animate-out data-[state=closed]:fade-out-80 data-[state=closed]:slide-out-to-right-full data-[state=open]:slide-in-from-top-full"

var rootVariants = style.Variants[Variant]{
	Base:    rootBase,
	Default: VariantDefault,
	Presets: map[Variant]string{
		VariantDefault:     "border bg-white text-foreground",
		VariantDestructive: "destructive group border-destructive bg-destructive text-destructive-foreground",
	},
}

// Classes resolves the root class string for variant with optional
// overrides appended. It never fails: unknown variants use the default
// preset.
func Classes(variant Variant, overrides ...string) string {
	return rootVariants.Resolve(variant, overrides...)
}

// BaseClasses returns the classes shared by every variant.
func BaseClasses() string {
	return rootVariants.Base
}

// PresetClasses returns the variant specific classes, falling back to the
// default preset.
func PresetClasses(variant Variant) string {
	return rootVariants.Preset(variant)
}
