package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// DefaultDebounce is the file-watcher debounce window in milliseconds.
const DefaultDebounce = 50

// Config holds the application configuration
type Config struct {
	CanvasDir  string `json:"canvas_dir,omitempty"`  // Directory holding session markdown files
	Theme      string `json:"theme,omitempty"`       // UI theme name (e.g., "dark", "light")
	DebounceMS int    `json:"debounce_ms,omitempty"` // File-watcher debounce window override

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".claude", "canvas"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or creates a new one if it doesn't exist
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	return loadFrom(path)
}

// loadFrom reads the config from an explicit path. Split out for tests.
func loadFrom(path string) (*Config, error) {
	cfg := &Config{
		filePath: path,
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg.ensureInitialized()
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	// Ensure defaults are in place after unmarshaling.
	// This must happen before Validate() since Validate() only reads.
	cfg.ensureInitialized()

	// Validate loaded config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ensureInitialized fills in defaults for unset fields.
//
// Thread-safety: This method is NOT thread-safe and must only be called
// during single-threaded initialization (i.e., from Load() before the Config
// is shared across goroutines).
func (c *Config) ensureInitialized() {
	if c.CanvasDir == "" {
		if dir, err := configDir(); err == nil {
			c.CanvasDir = dir
		}
	}
	if c.Theme == "" {
		c.Theme = "dark"
	}
	if c.DebounceMS <= 0 {
		c.DebounceMS = DefaultDebounce
	}
}

// Validate checks that the config is internally consistent.
// This is a read-only operation - call ensureInitialized() first if needed.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.CanvasDir == "" {
		return fmt.Errorf("canvas directory is empty")
	}
	if c.DebounceMS < 0 {
		return fmt.Errorf("debounce must be non-negative, got %d", c.DebounceMS)
	}
	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(c.filePath, data, 0644)
}

// GetCanvasDir returns the directory holding session markdown files.
func (c *Config) GetCanvasDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.CanvasDir
}

// SetCanvasDir overrides the session directory.
func (c *Config) SetCanvasDir(dir string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.CanvasDir = dir
}

// GetTheme returns the configured UI theme name.
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the UI theme name.
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetDebounceMS returns the file-watcher debounce window in milliseconds.
func (c *Config) GetDebounceMS() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.DebounceMS
}

// EnsureCanvasDir creates the session directory if it does not exist.
func (c *Config) EnsureCanvasDir() error {
	return os.MkdirAll(c.GetCanvasDir(), 0755)
}

// Get returns a settable key's current value, or an error for unknown keys.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "canvas_dir":
		return c.GetCanvasDir(), nil
	case "theme":
		return c.GetTheme(), nil
	case "debounce_ms":
		return fmt.Sprintf("%d", c.GetDebounceMS()), nil
	default:
		return "", fmt.Errorf("unknown config key: %s", key)
	}
}

// Set updates a settable key, or returns an error for unknown keys.
func (c *Config) Set(key, value string) error {
	switch key {
	case "canvas_dir":
		c.SetCanvasDir(value)
	case "theme":
		c.SetTheme(value)
	case "debounce_ms":
		var ms int
		if _, err := fmt.Sscanf(value, "%d", &ms); err != nil || ms < 0 {
			return fmt.Errorf("debounce_ms must be a non-negative integer, got %q", value)
		}
		c.mu.Lock()
		c.DebounceMS = ms
		c.mu.Unlock()
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
