package main

// Notes:
// - loadEnvConfig: invalid values for workers, booleans, and durations are
//   tested to verify graceful handling (ignored, not errors).
// - applyEnvConfig: we test priority behavior (env doesn't override config).
// - Tests use t.Setenv() which prevents t.Parallel() at parent level.

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/alnah/go-pageexport/internal/config"
)

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable loading
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Run("all variables", func(t *testing.T) {
		t.Setenv("PAGEEXPORT_CONFIG", "/etc/pe.yaml")
		t.Setenv("PAGEEXPORT_OUTPUT_DIR", "/out")
		t.Setenv("PAGEEXPORT_WORKERS", "3")
		t.Setenv("PAGEEXPORT_LANG", "fr")
		t.Setenv("PAGEEXPORT_LOG_LEVEL", "debug")
		t.Setenv("PAGEEXPORT_BASE_DIR", "/media")
		t.Setenv("PAGEEXPORT_SESSION_DIR", "/sessions")
		t.Setenv("PAGEEXPORT_FETCH_TIMEOUT", "5s")
		t.Setenv("PAGEEXPORT_ASSET_PATH", "/assets")
		t.Setenv("PAGEEXPORT_BRANDING_TEXT", "Made by us")
		t.Setenv("PAGEEXPORT_BRANDING_URL", "https://example.com")
		t.Setenv("PAGEEXPORT_NO_BRANDING", "true")
		t.Setenv("PAGEEXPORT_PAGE_SIZE", "a4")
		t.Setenv("PAGEEXPORT_TIMEOUT", "2m")

		cfg := loadEnvConfig()

		want := envConfig{
			ConfigPath:   "/etc/pe.yaml",
			OutputDir:    "/out",
			Workers:      3,
			Lang:         "fr",
			LogLevel:     "debug",
			BaseDir:      "/media",
			SessionDir:   "/sessions",
			FetchTimeout: 5 * time.Second,
			AssetPath:    "/assets",
			BrandingText: "Made by us",
			BrandingURL:  "https://example.com",
			NoBranding:   true,
			PageSize:     "a4",
			PDFTimeout:   2 * time.Minute,
		}
		if *cfg != want {
			t.Errorf("loadEnvConfig() = %+v, want %+v", *cfg, want)
		}
	})

	t.Run("invalid values are ignored", func(t *testing.T) {
		t.Setenv("PAGEEXPORT_WORKERS", "-2")
		t.Setenv("PAGEEXPORT_NO_BRANDING", "maybe")
		t.Setenv("PAGEEXPORT_FETCH_TIMEOUT", "soon")
		t.Setenv("PAGEEXPORT_TIMEOUT", "-5s")

		cfg := loadEnvConfig()

		if cfg.Workers != 0 {
			t.Errorf("Workers = %d, want 0", cfg.Workers)
		}
		if cfg.NoBranding {
			t.Error("NoBranding = true, want false")
		}
		if cfg.FetchTimeout != 0 || cfg.PDFTimeout != 0 {
			t.Errorf("timeouts = %v, %v, want 0", cfg.FetchTimeout, cfg.PDFTimeout)
		}
	})
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Setenv("PAGEEXPORT_WORKER", "2")
	t.Setenv("PAGEEXPORT_WORKERS", "2")

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf)

	out := buf.String()
	if !strings.Contains(out, "PAGEEXPORT_WORKER ") {
		t.Errorf("expected warning for PAGEEXPORT_WORKER, got %q", out)
	}
	if strings.Contains(out, "PAGEEXPORT_WORKERS") {
		t.Errorf("known variable should not warn, got %q", out)
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Priority behavior
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("fills empty values", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		applyEnvConfig(&envConfig{
			OutputDir:    "/out",
			Workers:      2,
			LogLevel:     "debug",
			FetchTimeout: 5 * time.Second,
			NoBranding:   true,
			PageSize:     "legal",
			PDFTimeout:   time.Minute,
		}, cfg)

		if cfg.Export.OutputDir != "/out" || cfg.Export.Workers != 2 {
			t.Errorf("Export = %+v", cfg.Export)
		}
		if cfg.Log.Level != "debug" {
			t.Errorf("Log.Level = %q, want debug over the default", cfg.Log.Level)
		}
		if cfg.Media.FetchTimeout != "5s" {
			t.Errorf("Media.FetchTimeout = %q, want 5s", cfg.Media.FetchTimeout)
		}
		if !cfg.Branding.Remove {
			t.Error("Branding.Remove = false, want true")
		}
		if cfg.PDF.Size != "legal" || cfg.PDF.Timeout != "1m0s" {
			t.Errorf("PDF = %+v", cfg.PDF)
		}
		if cfg.PDF.Enabled {
			t.Error("page size alone must not enable snapshots")
		}
	})

	t.Run("config file values win", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Export.OutputDir = "dist"
		cfg.Export.Lang = "de"
		cfg.Log.Level = "error"
		cfg.Branding.Text = "Config text"

		applyEnvConfig(&envConfig{OutputDir: "/out", Lang: "fr", LogLevel: "debug", BrandingText: "Env text"}, cfg)

		if cfg.Export.OutputDir != "dist" {
			t.Errorf("OutputDir = %q, want dist", cfg.Export.OutputDir)
		}
		if cfg.Export.Lang != "de" {
			t.Errorf("Lang = %q, want de", cfg.Export.Lang)
		}
		if cfg.Log.Level != "error" {
			t.Errorf("Log.Level = %q, want error", cfg.Log.Level)
		}
		if cfg.Branding.Text != "Config text" {
			t.Errorf("Branding.Text = %q", cfg.Branding.Text)
		}
	})
}
