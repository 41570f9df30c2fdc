// Package config loads and validates toastui.json.
//
// The file is JSON with one object per concern:
//
//	{
//	  "server":  {"host": "localhost", "port": 4000, "shutdownTimeout": "10s"},
//	  "render":  {"pretty": false, "indent": 2},
//	  "gallery": {"fixture": "toasts.yaml", "title": "Toasts", "stylesheet": "https://..."},
//	  "metrics": {"enabled": true, "path": "/metrics", "namespace": "toastui"},
//	  "publish": {"bucket": "my-bucket", "prefix": "toasts/", "region": "us-east-1"},
//	  "log":     {"level": "info", "format": "text"}
//	}
//
// Missing fields take the values from New. Validate checks the struct tags
// with go-playground/validator.
package config
