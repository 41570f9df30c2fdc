// Package gallery builds toast trees from YAML fixtures.
//
// A fixture lists the toasts to show:
//
//	title: Toasts
//	toasts:
//	  - id: failed
//	    variant: destructive
//	    title: Uh oh! Something went wrong.
//	    description: There was a problem with your request.
//	    action: Try again
//
// Toasts without an id get a random UUID. The preview server and the
// publisher both render the same fixture.
package gallery
