package config

import (
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/vango-dev/toastui/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "toastui.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 4000

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultShutdownTimeout bounds graceful shutdown of the preview server.
	DefaultShutdownTimeout = "10s"

	// DefaultMetricsPath is where the preview server exposes Prometheus metrics.
	DefaultMetricsPath = "/metrics"

	// DefaultMetricsNamespace prefixes every metric name.
	DefaultMetricsNamespace = "toastui"

	// DefaultStyleSheet is the Tailwind build the gallery page links to.
	DefaultStyleSheet = "https://cdn.jsdelivr.net/npm/tailwindcss@3.4.17/dist/tailwind.min.css"
)

// Config represents toastui.json.
type Config struct {
	Server  ServerConfig  `json:"server"`
	Render  RenderConfig  `json:"render"`
	Gallery GalleryConfig `json:"gallery"`
	Metrics MetricsConfig `json:"metrics"`
	Publish PublishConfig `json:"publish"`
	Log     LogConfig     `json:"log"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig configures the preview server.
type ServerConfig struct {
	Host string `json:"host" validate:"required,hostname_rfc1123|ip"`
	Port int    `json:"port" validate:"min=0,max=65535"`

	// ShutdownTimeout is a Go duration string, e.g. "10s".
	ShutdownTimeout string `json:"shutdownTimeout,omitempty" validate:"omitempty,duration"`
}

// RenderConfig controls HTML output.
type RenderConfig struct {
	Pretty bool `json:"pretty,omitempty"`
	Indent int  `json:"indent,omitempty" validate:"min=0,max=8"`
}

// GalleryConfig configures the toast gallery page.
type GalleryConfig struct {
	// Fixture is a YAML file of toasts. Empty uses the built-in set.
	Fixture string `json:"fixture,omitempty"`

	// Title is the page title.
	Title string `json:"title,omitempty"`

	// StyleSheet is linked from the page head.
	StyleSheet string `json:"stylesheet,omitempty" validate:"omitempty,url"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	Enabled   bool   `json:"enabled"`
	Path      string `json:"path,omitempty" validate:"omitempty,startswith=/"`
	Namespace string `json:"namespace,omitempty" validate:"omitempty,metric_name"`
}

// PublishConfig configures uploads to S3 compatible storage.
type PublishConfig struct {
	Bucket string `json:"bucket,omitempty"`
	Prefix string `json:"prefix,omitempty"`
	Region string `json:"region,omitempty" validate:"required_with=Bucket"`

	// Endpoint overrides the S3 endpoint for compatible stores.
	Endpoint string `json:"endpoint,omitempty" validate:"omitempty,url"`
}

// LogConfig configures the slog handler used by the CLI.
type LogConfig struct {
	Level  string `json:"level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	Format string `json:"format,omitempty" validate:"omitempty,oneof=text json"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            DefaultHost,
			Port:            DefaultPort,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Render: RenderConfig{
			Indent: 2,
		},
		Gallery: GalleryConfig{
			Title:      "Toasts",
			StyleSheet: DefaultStyleSheet,
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Path:      DefaultMetricsPath,
			Namespace: DefaultMetricsNamespace,
		},
		Publish: PublishConfig{
			Prefix: "toasts/",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads configuration from toastui.json in the given directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile loads configuration from a specific file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E122").
				WithDetail("No " + ConfigFileName + " found in " + filepath.Dir(path)).
				WithSuggestion("Run 'toastui config init' to create one")
		}
		return nil, errors.New("E120").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E120").
			WithDetail("Failed to parse " + ConfigFileName + ": " + err.Error()).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads toastui.json from dir, or returns defaults if there is
// none. Other load errors are returned.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := Load(dir)
	if errors.Code(err) == "E122" {
		return New(), nil
	}
	return cfg, err
}

// Save writes the configuration back to the path it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("E120").WithDetail("Config has no path; use SaveTo")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to a specific path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E120").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E120").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path the config was loaded from or saved to.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return "."
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills zero values that have a non-zero default.
func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.ShutdownTimeout == "" {
		c.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultMetricsNamespace
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	// A relative fixture path is relative to the config file.
	if c.Gallery.Fixture != "" && !filepath.IsAbs(c.Gallery.Fixture) && c.configPath != "" {
		c.Gallery.Fixture = filepath.Join(filepath.Dir(c.configPath), c.Gallery.Fixture)
	}
}

// Address returns host:port for the preview server.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// URL returns the preview server base URL.
func (c *Config) URL() string {
	return "http://" + c.Address()
}

// ShutdownTimeout returns the parsed shutdown timeout.
func (c *Config) ShutdownTimeout() time.Duration {
	d, err := time.ParseDuration(c.Server.ShutdownTimeout)
	if err != nil || d <= 0 {
		d, _ = time.ParseDuration(DefaultShutdownTimeout)
	}
	return d
}

// CanPublish reports whether a publish bucket is configured.
func (c *Config) CanPublish() bool {
	return c.Publish.Bucket != ""
}

// Exists checks if toastui.json exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// SlogLevel maps the configured level to a slog.Level. Unknown levels are
// treated as info.
func (l LogConfig) SlogLevel() slog.Level {
	switch l.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds a text or JSON slog logger writing to w.
func (l LogConfig) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: l.SlogLevel()}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
