package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Render Errors (E100-E119)
	// ============================================

	"E100": {
		Category: CategoryRender,
		Message:  "Unknown node kind",
		Detail:   "The renderer met a VNode whose Kind it does not know how to write.",
		DocURL:   "https://toastui.dev/docs/errors/E100",
	},
	"E101": {
		Category: CategoryRender,
		Message:  "Render write failed",
		Detail:   "Writing rendered HTML to the output failed.",
		DocURL:   "https://toastui.dev/docs/errors/E101",
	},
	"E102": {
		Category: CategoryRender,
		Message:  "Invalid attribute name",
		Detail:   "Attribute names must be non-empty and free of whitespace, quotes, control characters and the characters < > / =.",
		DocURL:   "https://toastui.dev/docs/errors/E102",
	},

	// ============================================
	// Config Errors (E120-E129)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "toastui.json could not be read or parsed.",
		DocURL:   "https://toastui.dev/docs/errors/E120",
	},
	"E121": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "A configuration value failed validation.",
		DocURL:   "https://toastui.dev/docs/errors/E121",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Configuration not found",
		Detail:   "No toastui.json was found in the directory.",
		DocURL:   "https://toastui.dev/docs/errors/E122",
	},

	// ============================================
	// Gallery Errors (E130-E139)
	// ============================================

	"E130": {
		Category: CategoryGallery,
		Message:  "Invalid gallery fixture",
		Detail:   "The toast gallery fixture could not be read or parsed.",
		DocURL:   "https://toastui.dev/docs/errors/E130",
	},

	// ============================================
	// Publish Errors (E140-E149)
	// ============================================

	"E140": {
		Category: CategoryPublish,
		Message:  "Publish failed",
		Detail:   "Uploading rendered markup to object storage failed.",
		DocURL:   "https://toastui.dev/docs/errors/E140",
	},
	"E141": {
		Category: CategoryPublish,
		Message:  "Publish not configured",
		Detail:   "No bucket is configured for publishing.",
		DocURL:   "https://toastui.dev/docs/errors/E141",
	},

	// ============================================
	// Preview Errors (E150-E159)
	// ============================================

	"E150": {
		Category: CategoryCLI,
		Message:  "Preview server failed",
		Detail:   "The preview server could not start or stopped unexpectedly.",
		DocURL:   "https://toastui.dev/docs/errors/E150",
	},
	"E151": {
		Category: CategoryProtocol,
		Message:  "Unknown hydration ID",
		Detail:   "A client event referenced an element that has no registered handler.",
		DocURL:   "https://toastui.dev/docs/errors/E151",
	},
	"E152": {
		Category: CategoryProtocol,
		Message:  "Malformed client event",
		Detail:   "A client event message could not be decoded.",
		DocURL:   "https://toastui.dev/docs/errors/E152",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
