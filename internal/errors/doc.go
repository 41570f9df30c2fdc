// Package errors provides structured, actionable errors for toastui.
//
// Every error carries a code (e.g. "E120") that maps to a category, a short
// message, a longer explanation and a documentation URL. Call sites add
// details and suggestions as they learn them:
//
//	err := errors.New("E121").
//	    WithDetail("server.port failed validation for tag 'max'").
//	    WithSuggestion("Use a port between 1 and 65535")
//
//	fmt.Println(err.Format())
//	// ERROR E121: Invalid configuration
//	//
//	//   server.port failed validation for tag 'max'
//	//
//	//   Hint: Use a port between 1 and 65535
//
// Errors wrap their cause, so errors.Is and errors.As from the standard
// library see through them. Is also matches two ToastErrors by code.
package errors
