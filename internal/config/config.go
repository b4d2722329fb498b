package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/alnah/go-pageexport/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidConfig   = errors.New("invalid config")
)

// appDir is the directory under the user config dir searched by name.
const appDir = "go-pageexport"

// Limits enforced by Validate.
const (
	MaxWorkers           = 8 // one headless browser each
	MaxConcurrency       = 64
	MaxBrandingText      = 200
	MaxURLLength         = 2048 // Browser limit
	MaxLangLength        = 35   // BCP 47 practical maximum
	MaxImageDimension    = 16384
	MaxMediaBytes        = 256 << 20
	MaxMargin            = 3.0 // inches
	MaxTimeout           = 10 * time.Minute
	defaultMinDimension  = 64
	defaultMinMediaBytes = 1 << 10
)

// Log levels accepted by log.level.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Config holds the CLI defaults. Every field is optional; zero values leave
// the library defaults in place.
type Config struct {
	Export   ExportConfig   `yaml:"export"`
	Media    MediaConfig    `yaml:"media"`
	Branding BrandingConfig `yaml:"branding"`
	Assets   AssetsConfig   `yaml:"assets"`
	PDF      PDFConfig      `yaml:"pdf"`
	Log      LogConfig      `yaml:"log"`
}

// ExportConfig controls batch behavior and document defaults.
type ExportConfig struct {
	OutputDir   string `yaml:"outputDir"`
	Workers     int    `yaml:"workers"`     // exporters run in parallel, 0 = auto
	Concurrency int    `yaml:"concurrency"` // media fetches per export, 0 = auto
	Lang        string `yaml:"lang"`
	CSS         string `yaml:"css"` // path to a stylesheet appended to the document
}

// MediaConfig controls media resolution.
type MediaConfig struct {
	BaseDir           string `yaml:"baseDir"`    // default: the project file's directory
	SessionDir        string `yaml:"sessionDir"` // directory backing session handles
	FetchTimeout      string `yaml:"fetchTimeout"`
	MaxImageDimension int    `yaml:"maxImageDimension"`
	MaxBytes          int64  `yaml:"maxBytes"`
}

// BrandingConfig controls the footer attribution.
type BrandingConfig struct {
	Remove bool   `yaml:"remove"`
	Text   string `yaml:"text"`
	URL    string `yaml:"url"`
}

// AssetsConfig points at a directory overriding embedded assets.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"`
}

// PDFConfig controls the optional print snapshot.
type PDFConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Size        string  `yaml:"size"`        // "letter", "a4", "legal"
	Orientation string  `yaml:"orientation"` // "portrait", "landscape"
	Margin      float64 `yaml:"margin"`      // inches
	Timeout     string  `yaml:"timeout"`
}

// LogConfig controls CLI log output.
type LogConfig struct {
	Level string `yaml:"level"` // "debug", "info", "warn", "error"
}

// FetchTimeoutDuration returns the parsed fetch timeout, or 0 when unset.
func (m MediaConfig) FetchTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(m.FetchTimeout)
	return d
}

// TimeoutDuration returns the parsed snapshot timeout, or 0 when unset.
func (p PDFConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(p.Timeout)
	return d
}

// Validate checks ranges and lengths of every section. Called automatically
// by LoadConfig, but available for configs built in code.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Export),
		validation.Field(&c.Media),
		validation.Field(&c.Branding),
		validation.Field(&c.PDF),
		validation.Field(&c.Log),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Validate implements validation.Validatable.
func (e ExportConfig) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Workers, validation.Min(0), validation.Max(MaxWorkers)),
		validation.Field(&e.Concurrency, validation.Min(0), validation.Max(MaxConcurrency)),
		validation.Field(&e.Lang, validation.Length(0, MaxLangLength), is.PrintableASCII),
	)
}

// Validate implements validation.Validatable.
func (m MediaConfig) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.FetchTimeout, validation.By(durationRule)),
		validation.Field(&m.MaxImageDimension, validation.Min(defaultMinDimension), validation.Max(MaxImageDimension)),
		validation.Field(&m.MaxBytes, validation.Min(int64(defaultMinMediaBytes)), validation.Max(int64(MaxMediaBytes))),
	)
}

// Validate implements validation.Validatable.
func (b BrandingConfig) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Text, validation.Length(0, MaxBrandingText)),
		validation.Field(&b.URL, validation.Length(0, MaxURLLength), is.URL),
	)
}

// Validate implements validation.Validatable.
func (p PDFConfig) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Size, validation.By(lowerIn("letter", "a4", "legal"))),
		validation.Field(&p.Orientation, validation.By(lowerIn("portrait", "landscape"))),
		validation.Field(&p.Margin, validation.Min(0.0), validation.Max(MaxMargin)),
		validation.Field(&p.Timeout, validation.By(durationRule)),
	)
}

// Validate implements validation.Validatable.
func (l LogConfig) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Level, validation.By(lowerIn(LevelDebug, LevelInfo, LevelWarn, LevelError))),
	)
}

// durationRule accepts an empty string or a positive duration up to MaxTimeout.
func durationRule(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return errors.New("must be a duration such as 10s or 1m")
	}
	if d <= 0 || d > MaxTimeout {
		return fmt.Errorf("must be between 0 and %s", MaxTimeout)
	}
	return nil
}

// lowerIn matches a string case-insensitively against allowed values.
func lowerIn(allowed ...string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if s == "" {
			return nil
		}
		s = strings.ToLower(s)
		for _, a := range allowed {
			if s == a {
				return nil
			}
		}
		return fmt.Errorf("must be one of %s", strings.Join(allowed, ", "))
	}
}

// DefaultConfig returns a configuration that leaves every library default in
// place.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{Level: LevelWarn},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	cfg := DefaultConfig()
	if err := yamlutil.ReadFileStrict(configPath, cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-pageexport/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, appDir, name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
