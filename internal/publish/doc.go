// Package publish renders the toast gallery and uploads it to S3 or an
// S3 compatible store.
//
// Objects written under the configured prefix:
//
//	index.html          the gallery page
//	toasts/<id>.html    one fragment per toast
//	toasts.json         manifest of the fragments
package publish
