package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/weft-dev/weft/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "weft.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 3000

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"
)

// Config represents the complete weft.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Server contains preview server configuration.
	Server ServerConfig `json:"server,omitempty"`

	// Render contains render pacing configuration.
	Render RenderConfig `json:"render,omitempty"`

	// Snapshot contains snapshot persistence configuration.
	Snapshot SnapshotConfig `json:"snapshot,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains preview server configuration.
type ServerConfig struct {
	// Host is the bind address.
	Host string `json:"host,omitempty"`

	// Port is the listen port.
	Port int `json:"port,omitempty"`
}

// RenderConfig contains render pacing configuration.
type RenderConfig struct {
	// FrameIntervalMs is how often idle slots open, in milliseconds.
	// Zero uses the scheduler default.
	FrameIntervalMs int `json:"frame_interval_ms,omitempty"`

	// SlotBudgetMs is the work budget per idle slot, in milliseconds.
	// Zero uses the scheduler default.
	SlotBudgetMs int `json:"slot_budget_ms,omitempty"`
}

// SnapshotConfig contains snapshot persistence configuration.
type SnapshotConfig struct {
	// Backend selects the store: "memory" (default), "sqlite" or "s3".
	Backend string `json:"backend,omitempty"`

	// Path is the database file for the sqlite backend.
	Path string `json:"path,omitempty"`

	// Bucket is the bucket name for the s3 backend.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is the object key prefix for the s3 backend.
	Prefix string `json:"prefix,omitempty"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Host: DefaultHost,
			Port: DefaultPort,
		},
		Snapshot: SnapshotConfig{
			Backend: "memory",
		},
	}
}

// Load reads configuration from the specified directory. It looks for
// weft.json in the directory; a missing file yields the defaults.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, errors.New("E200").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E201").
			WithDetail("failed to parse %s: %v", path, err).
			Wrap(err)
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E201").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E201").Wrap(err)
	}
	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from, or "" when the
// config is synthetic.
func (c *Config) Path() string {
	return c.configPath
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Snapshot.Backend == "" {
		c.Snapshot.Backend = "memory"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E201").
			WithDetail("port must be between 0 and 65535, got %d", c.Server.Port)
	}
	if c.Render.FrameIntervalMs < 0 || c.Render.SlotBudgetMs < 0 {
		return errors.New("E201").
			WithDetail("render intervals must not be negative")
	}
	switch c.Snapshot.Backend {
	case "memory", "sqlite", "s3":
	default:
		return errors.New("E300").
			WithDetail("backend %q is not one of memory, sqlite, s3", c.Snapshot.Backend)
	}
	if c.Snapshot.Backend == "sqlite" && c.Snapshot.Path == "" {
		return errors.New("E201").
			WithDetail("sqlite backend requires snapshot.path")
	}
	if c.Snapshot.Backend == "s3" && c.Snapshot.Bucket == "" {
		return errors.New("E201").
			WithDetail("s3 backend requires snapshot.bucket")
	}
	return nil
}

// Address returns the host:port string for the preview server.
func (c *Config) Address() string {
	return c.Server.Host + ":" + itoa(c.Server.Port)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [8]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
