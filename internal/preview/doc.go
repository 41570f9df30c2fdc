// Package preview serves the toast gallery over HTTP.
//
// Routes:
//
//	GET  /          gallery page with the client script
//	GET  /toast     one toast fragment built from query parameters
//	POST /notify    render a toast and push it to every connected client
//	GET  /healthz   liveness
//	GET  /metrics   Prometheus metrics (path configurable)
//	GET  /ws        event channel
//
// Browsers send {"hid","event","data"} messages over /ws. The server looks
// up the handler registered for that hydration id when the page was
// rendered and calls it. Dismissals are broadcast back as
// {"type":"dismiss","hid","id"} so every open page closes the toast.
package preview
