package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

// Supported PDF engines.
const (
	EnginePandoc = "pandoc"
	EngineChrome = "chrome"
)

const defaultTimeout = 60 * time.Second

// ErrNotFound is returned by Load when no config file exists.
var ErrNotFound = errors.New("config file not found")

// Config represents the application configuration.
type Config struct {
	Engine   string        `json:"engine"`
	Pandoc   PandocConfig  `json:"pandoc"`
	Chrome   ChromeConfig  `json:"chrome"`
	Defaults DefaultConfig `json:"defaults"`
}

// PandocConfig holds pandoc-related configuration.
type PandocConfig struct {
	TemplatePath string `json:"template_path,omitempty"`
	PDFEngine    string `json:"pdf_engine,omitempty"`
}

// ChromeConfig holds headless Chrome configuration. With no Path and
// AutoDownload set, a Chromium build is fetched into the user cache.
type ChromeConfig struct {
	Path           string `json:"path,omitempty"`
	AutoDownload   bool   `json:"auto_download,omitempty"`
	NoSandbox      bool   `json:"no_sandbox,omitempty"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"`
}

// DefaultConfig holds default values for commands.
type DefaultConfig struct {
	OutputDir string `json:"output_dir"`
}

// Default returns the configuration used when no file exists.
func Default() (cfg Config) {
	cfg = Config{
		Engine: EnginePandoc,
		Defaults: DefaultConfig{
			OutputDir: ".",
		},
	}
	return cfg
}

// GetEngine returns the PDF engine or the default if not specified.
func (c *Config) GetEngine() (engine string) {
	if c.Engine != "" {
		engine = c.Engine
		return engine
	}
	engine = EnginePandoc
	return engine
}

// GetTimeout returns how long a single PDF export may take.
func (c *Config) GetTimeout() (timeout time.Duration) {
	if c.Chrome.TimeoutSeconds > 0 {
		timeout = time.Duration(c.Chrome.TimeoutSeconds) * time.Second
		return timeout
	}
	timeout = defaultTimeout
	return timeout
}

// DefaultPath returns the config location under the user's home directory.
func DefaultPath() (path string, err error) {
	var homeDir string
	homeDir, err = os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return path, err
	}
	path = filepath.Join(homeDir, ".resume-builder", "config.json")
	return path, err
}

// Load reads configuration from file.
func Load(configPath string) (cfg Config, err error) {
	// Determine config file location
	path := configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return cfg, err
		}
	}

	// Read config file
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			err = errors.Wrapf(ErrNotFound, "%s (run 'resume-builder init' to create)", path)
			return cfg, err
		}
		err = errors.Wrapf(err, "failed to read config file: %s", path)
		return cfg, err
	}

	// Parse JSON
	err = json.Unmarshal(data, &cfg)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse config file: %s", path)
		return cfg, err
	}

	// Validate required fields
	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

// Validate checks the configuration and fills in defaults.
func (c *Config) Validate() (err error) {
	switch c.GetEngine() {
	case EnginePandoc, EngineChrome:
	default:
		err = errors.Errorf("engine must be %q or %q, got %q", EnginePandoc, EngineChrome, c.Engine)
		return err
	}

	// Check template exists if one is configured
	if c.Pandoc.TemplatePath != "" {
		_, err = os.Stat(c.Pandoc.TemplatePath)
		if os.IsNotExist(err) {
			err = errors.Errorf("pandoc template not found: %s", c.Pandoc.TemplatePath)
			return err
		}
		err = nil
	}

	if c.Chrome.TimeoutSeconds < 0 {
		err = errors.New("chrome.timeout_seconds must not be negative")
		return err
	}

	// Set default output_dir if not specified
	if c.Defaults.OutputDir == "" {
		c.Defaults.OutputDir = "."
	}

	return err
}

// InitConfig creates a default configuration file.
func InitConfig(configPath string) (err error) {
	// Determine config file location
	path := configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return err
		}
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create config directory: %s", dir)
		return err
	}

	// Check if file already exists
	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("config file already exists: %s", path)
		return err
	}

	var homeDir string
	homeDir, err = os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return err
	}

	defaultConfig := Config{
		Engine: EnginePandoc,
		Pandoc: PandocConfig{
			PDFEngine: "xelatex",
		},
		Chrome: ChromeConfig{
			TimeoutSeconds: int(defaultTimeout / time.Second),
		},
		Defaults: DefaultConfig{
			OutputDir: filepath.Join(homeDir, "Documents", "Resumes"),
		},
	}

	// Write to file
	var data []byte
	data, err = json.MarshalIndent(defaultConfig, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal default config")
		return err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return err
	}

	return err
}
