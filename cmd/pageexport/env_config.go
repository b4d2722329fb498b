package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-pageexport/internal/config"
)

const envPrefix = "PAGEEXPORT_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath   string        // PAGEEXPORT_CONFIG: config file name or path
	OutputDir    string        // PAGEEXPORT_OUTPUT_DIR: default output directory
	Workers      int           // PAGEEXPORT_WORKERS: parallel workers
	Lang         string        // PAGEEXPORT_LANG: default document language
	LogLevel     string        // PAGEEXPORT_LOG_LEVEL: debug, info, warn, error
	BaseDir      string        // PAGEEXPORT_BASE_DIR: media base directory
	SessionDir   string        // PAGEEXPORT_SESSION_DIR: session media directory
	FetchTimeout time.Duration // PAGEEXPORT_FETCH_TIMEOUT: remote media timeout
	AssetPath    string        // PAGEEXPORT_ASSET_PATH: custom asset directory
	BrandingText string        // PAGEEXPORT_BRANDING_TEXT: footer attribution text
	BrandingURL  string        // PAGEEXPORT_BRANDING_URL: footer attribution link
	NoBranding   bool          // PAGEEXPORT_NO_BRANDING: omit the attribution
	PageSize     string        // PAGEEXPORT_PAGE_SIZE: a4, letter, legal
	PDFTimeout   time.Duration // PAGEEXPORT_TIMEOUT: snapshot timeout
}

// knownEnvVars lists valid PAGEEXPORT_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"PAGEEXPORT_CONFIG":        true,
	"PAGEEXPORT_OUTPUT_DIR":    true,
	"PAGEEXPORT_WORKERS":       true,
	"PAGEEXPORT_LANG":          true,
	"PAGEEXPORT_LOG_LEVEL":     true,
	"PAGEEXPORT_BASE_DIR":      true,
	"PAGEEXPORT_SESSION_DIR":   true,
	"PAGEEXPORT_FETCH_TIMEOUT": true,
	"PAGEEXPORT_ASSET_PATH":    true,
	"PAGEEXPORT_BRANDING_TEXT": true,
	"PAGEEXPORT_BRANDING_URL":  true,
	"PAGEEXPORT_NO_BRANDING":   true,
	"PAGEEXPORT_PAGE_SIZE":     true,
	"PAGEEXPORT_TIMEOUT":       true,
}

// loadEnvConfig reads configuration from environment variables.
// Malformed numbers, booleans, and durations are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath:   os.Getenv("PAGEEXPORT_CONFIG"),
		OutputDir:    os.Getenv("PAGEEXPORT_OUTPUT_DIR"),
		Lang:         os.Getenv("PAGEEXPORT_LANG"),
		LogLevel:     os.Getenv("PAGEEXPORT_LOG_LEVEL"),
		BaseDir:      os.Getenv("PAGEEXPORT_BASE_DIR"),
		SessionDir:   os.Getenv("PAGEEXPORT_SESSION_DIR"),
		AssetPath:    os.Getenv("PAGEEXPORT_ASSET_PATH"),
		BrandingText: os.Getenv("PAGEEXPORT_BRANDING_TEXT"),
		BrandingURL:  os.Getenv("PAGEEXPORT_BRANDING_URL"),
		PageSize:     os.Getenv("PAGEEXPORT_PAGE_SIZE"),
	}

	if workers := os.Getenv("PAGEEXPORT_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}
	if v := os.Getenv("PAGEEXPORT_NO_BRANDING"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.NoBranding = b
		}
	}
	cfg.FetchTimeout = envDuration("PAGEEXPORT_FETCH_TIMEOUT")
	cfg.PDFTimeout = envDuration("PAGEEXPORT_TIMEOUT")

	return cfg
}

func envDuration(name string) time.Duration {
	v := os.Getenv(name)
	if v == "" {
		return 0
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0
	}
	return d
}

// warnUnknownEnvVars logs warnings for unrecognized PAGEEXPORT_* variables.
// Helps catch typos like PAGEEXPORT_WORKER instead of PAGEEXPORT_WORKERS.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty/zero.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.OutputDir != "" && cfg.Export.OutputDir == "" {
		cfg.Export.OutputDir = env.OutputDir
	}
	if env.Workers > 0 && cfg.Export.Workers == 0 {
		cfg.Export.Workers = env.Workers
	}
	if env.Lang != "" && cfg.Export.Lang == "" {
		cfg.Export.Lang = env.Lang
	}

	// DefaultConfig always carries a level, so the env var wins over it
	// unless a config file chose something else.
	if env.LogLevel != "" && (cfg.Log.Level == "" || cfg.Log.Level == config.DefaultConfig().Log.Level) {
		cfg.Log.Level = env.LogLevel
	}

	if env.BaseDir != "" && cfg.Media.BaseDir == "" {
		cfg.Media.BaseDir = env.BaseDir
	}
	if env.SessionDir != "" && cfg.Media.SessionDir == "" {
		cfg.Media.SessionDir = env.SessionDir
	}
	if env.FetchTimeout > 0 && cfg.Media.FetchTimeout == "" {
		cfg.Media.FetchTimeout = env.FetchTimeout.String()
	}

	if env.AssetPath != "" && cfg.Assets.BasePath == "" {
		cfg.Assets.BasePath = env.AssetPath
	}

	if env.BrandingText != "" && cfg.Branding.Text == "" {
		cfg.Branding.Text = env.BrandingText
	}
	if env.BrandingURL != "" && cfg.Branding.URL == "" {
		cfg.Branding.URL = env.BrandingURL
	}
	if env.NoBranding {
		cfg.Branding.Remove = true
	}

	if env.PageSize != "" && cfg.PDF.Size == "" {
		cfg.PDF.Size = env.PageSize
	}
	if env.PDFTimeout > 0 && cfg.PDF.Timeout == "" {
		cfg.PDF.Timeout = env.PDFTimeout.String()
	}
}
