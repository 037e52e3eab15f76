package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/SRombauts/HtmlBuilder/internal/errors"
	"github.com/SRombauts/HtmlBuilder/pkg/dom"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "htmlbuilder.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 3000

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultSource is the default directory holding document descriptions.
	DefaultSource = "docs"

	// DefaultOutput is the default build output directory.
	DefaultOutput = "dist"

	// DefaultPollInterval is the default interval of the source watcher.
	DefaultPollInterval = "500ms"

	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "info"
)

// Config represents the complete htmlbuilder.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Render controls how documents are serialized.
	Render RenderConfig `json:"render"`

	// Paths contains the source and output directories.
	Paths PathsConfig `json:"paths"`

	// Serve contains preview server configuration.
	Serve ServeConfig `json:"serve"`

	// Publish contains S3 publishing configuration.
	Publish PublishConfig `json:"publish"`

	// Log contains logging configuration.
	Log LogConfig `json:"log"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// RenderConfig mirrors dom.RenderConfig.
type RenderConfig struct {
	// Indent is written once per nesting depth.
	Indent string `json:"indent,omitempty"`

	// NoIndent writes every line flush left; Indent is ignored.
	NoIndent bool `json:"noIndent,omitempty"`

	// Newline is the line terminator.
	Newline string `json:"newline,omitempty"`

	// Escape enables HTML escaping of content and attribute values.
	Escape bool `json:"escape,omitempty"`
}

// PathsConfig contains path configuration for project directories.
type PathsConfig struct {
	// Source is the directory holding document descriptions.
	Source string `json:"source,omitempty"`

	// Output is the directory rendered pages are written to.
	Output string `json:"output,omitempty"`
}

// ServeConfig contains preview server settings.
type ServeConfig struct {
	Host string `json:"host,omitempty"`
	Port int    `json:"port,omitempty"`

	// Watch enables live reload when descriptions change.
	Watch bool `json:"watch,omitempty"`

	// PollInterval is how often the source directory is scanned (e.g. "500ms").
	PollInterval string `json:"pollInterval,omitempty"`
}

// PublishConfig contains S3 publishing settings.
type PublishConfig struct {
	Bucket string `json:"bucket,omitempty"`

	// Prefix is prepended to every object key.
	Prefix string `json:"prefix,omitempty"`

	// Region overrides the region resolved by the AWS SDK.
	Region string `json:"region,omitempty"`

	// CacheControl is sent as the Cache-Control header of uploaded pages.
	CacheControl string `json:"cacheControl,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Render: RenderConfig{
			Indent:  "  ",
			Newline: "\n",
		},
		Paths: PathsConfig{
			Source: DefaultSource,
			Output: DefaultOutput,
		},
		Serve: ServeConfig{
			Host:         DefaultHost,
			Port:         DefaultPort,
			PollInterval: DefaultPollInterval,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for htmlbuilder.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E121").
				WithDetail("No " + ConfigFileName + " found in " + filepath.Dir(path))
		}
		return nil, errors.New("E120").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E120").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			WithSuggestion("Check that " + filepath.Base(path) + " is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
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

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Render.Indent == "" {
		c.Render.Indent = "  "
	}
	if c.Render.Newline == "" {
		c.Render.Newline = "\n"
	}

	if c.Paths.Source == "" {
		c.Paths.Source = DefaultSource
	}
	if c.Paths.Output == "" {
		c.Paths.Output = DefaultOutput
	}

	if c.Serve.Host == "" {
		c.Serve.Host = DefaultHost
	}
	if c.Serve.Port == 0 {
		c.Serve.Port = DefaultPort
	}
	if c.Serve.PollInterval == "" {
		c.Serve.PollInterval = DefaultPollInterval
	}

	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Serve.Port < 0 || c.Serve.Port > 65535 {
		return errors.New("E122").
			WithPath("serve.port").
			WithDetail("Port must be between 0 and 65535")
	}

	if strings.Trim(c.Render.Indent, " \t") != "" {
		return errors.New("E122").
			WithPath("render.indent").
			WithDetailf("indent %q must only contain spaces and tabs", c.Render.Indent)
	}
	switch c.Render.Newline {
	case "", "\n", "\r\n":
	default:
		return errors.New("E122").
			WithPath("render.newline").
			WithDetailf("newline %q must be \"\\n\" or \"\\r\\n\"", c.Render.Newline)
	}

	if c.Serve.PollInterval != "" {
		d, err := time.ParseDuration(c.Serve.PollInterval)
		if err != nil || d <= 0 {
			return errors.New("E122").
				WithPath("serve.pollInterval").
				WithDetailf("%q is not a positive duration", c.Serve.PollInterval)
		}
	}

	if c.Log.Level != "" {
		if _, err := ParseLevel(c.Log.Level); err != nil {
			return err
		}
	}
	return nil
}

// ParseLevel converts a level name (debug, info, warn, error) to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, errors.New("E122").
			WithPath("log.level").
			WithDetailf("unknown log level %q", name).
			WithSuggestion("Use debug, info, warn or error")
	}
	return level, nil
}

// LogLevel returns the configured log level, falling back to info.
func (c *Config) LogLevel() slog.Level {
	level, err := ParseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// RenderConfig converts the render section for the serializer.
func (c *Config) RenderConfig() dom.RenderConfig {
	return dom.RenderConfig{
		Indent:   c.Render.Indent,
		NoIndent: c.Render.NoIndent,
		Newline:  c.Render.Newline,
		Escape:   c.Render.Escape,
	}
}

// PollDuration returns the watcher interval, falling back to the default.
func (c *Config) PollDuration() time.Duration {
	d, err := time.ParseDuration(c.Serve.PollInterval)
	if err != nil || d <= 0 {
		d, _ = time.ParseDuration(DefaultPollInterval)
	}
	return d
}

// Address returns the address string for the preview server.
func (c *Config) Address() string {
	return c.Serve.Host + ":" + strconv.Itoa(c.Serve.Port)
}

// URL returns the full URL for the preview server.
func (c *Config) URL() string {
	return "http://" + c.Address()
}

// SourcePath returns the absolute path to the description directory.
func (c *Config) SourcePath() string {
	return c.resolve(c.Paths.Source, DefaultSource)
}

// OutputPath returns the absolute path to the build output directory.
func (c *Config) OutputPath() string {
	return c.resolve(c.Paths.Output, DefaultOutput)
}

func (c *Config) resolve(path, fallback string) string {
	if path == "" {
		path = fallback
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir(), path)
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing htmlbuilder.json, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E121").
				WithDetail("No " + ConfigFileName + " found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}

	return Load(root)
}

// LoadOrDefault loads path when set, otherwise searches from the working
// directory. A missing file yields the defaults rooted at the working directory.
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		return LoadFile(path)
	}

	cfg, err := LoadFromWorkingDir()
	if err == nil {
		return cfg, nil
	}
	if !errors.HasCode(err, "E121") {
		return nil, err
	}

	wd, werr := os.Getwd()
	if werr != nil {
		return nil, werr
	}
	cfg = New()
	cfg.configPath = filepath.Join(wd, ConfigFileName)
	return cfg, nil
}
