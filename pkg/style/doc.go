// Package style composes Tailwind class strings for components.
//
// CN merges class lists with Tailwind conflict resolution: when two
// utilities target the same CSS property, the one that appears later wins.
//
//	style.CN("px-2 py-1 bg-white", "bg-red-500") // "px-2 py-1 bg-red-500"
//
// Variants maps a closed set of keys to preset class fragments on top of a
// shared base. Unknown keys resolve to the default key, so a typo in a
// variant name never breaks rendering.
//
//	buttonVariants := style.Variants[Kind]{
//	    Base:    "inline-flex items-center",
//	    Default: KindPrimary,
//	    Presets: map[Kind]string{
//	        KindPrimary: "bg-primary text-primary-foreground",
//	        KindGhost:   "bg-transparent",
//	    },
//	}
//	cls := buttonVariants.Resolve(kind, userClass)
package style
