package pageexport

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/alnah/go-pageexport/internal/media"
	"github.com/alnah/go-pageexport/internal/pipeline"
)

// Session media. A session handle ("blob:..." or "session:...") is valid
// only while the authoring session that issued it is alive; a store
// dereferences it.
type (
	SessionStore  = media.SessionStore
	SessionHandle = media.SessionHandle
	SessionMedia  = media.Payload
)

// NewMemorySessionStore creates an in-memory SessionStore. Register media
// with Put(id, SessionMedia{...}).
func NewMemorySessionStore() *media.MemoryStore {
	return media.NewMemoryStore()
}

// NewDirSessionStore creates a SessionStore that reads handle ids as file
// names inside dir.
func NewDirSessionStore(dir string) SessionStore {
	return media.NewDirStore(dir, 0)
}

// Option configures an Exporter.
type Option func(*Exporter)

// exporterConfig holds internal configuration for Exporter.
type exporterConfig struct {
	logger            *zap.Logger
	httpClient        *http.Client
	fetchTimeout      time.Duration
	maxMediaBytes     int64
	concurrency       int
	sessions          SessionStore
	baseDir           string
	maxImageDimension int
	assetPath         string
	assetLoader       AssetLoader
	branding          pipeline.BrandingData
	pdfTimeout        time.Duration
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(e *Exporter) {
		e.cfg.logger = l
	}
}

// WithHTTPClient sets the client used for remote media.
func WithHTTPClient(c *http.Client) Option {
	return func(e *Exporter) {
		e.cfg.httpClient = c
	}
}

// WithFetchTimeout bounds each remote media fetch.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithFetchTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("pageexport: WithFetchTimeout duration must be positive")
	}
	return func(e *Exporter) {
		e.cfg.fetchTimeout = d
	}
}

// WithMaxMediaBytes rejects media payloads larger than n bytes; rejected
// media falls back like any other failure.
func WithMaxMediaBytes(n int64) Option {
	return func(e *Exporter) {
		e.cfg.maxMediaBytes = n
	}
}

// WithConcurrency bounds how many sections, and how many remote fetches,
// are resolved at once. n <= 0 selects ResolvePoolSize(0).
func WithConcurrency(n int) Option {
	return func(e *Exporter) {
		e.cfg.concurrency = n
	}
}

// WithSessionStore sets the store that dereferences session handles.
// Without one, every session handle renders as a placeholder.
func WithSessionStore(s SessionStore) Option {
	return func(e *Exporter) {
		e.cfg.sessions = s
	}
}

// WithBaseDir sets the directory that relative media paths are read from.
// Paths that escape it are not read.
func WithBaseDir(dir string) Option {
	return func(e *Exporter) {
		e.cfg.baseDir = dir
	}
}

// WithMaxImageDimension downscales inlined images whose longest side
// exceeds px. 0 keeps images as fetched.
func WithMaxImageDimension(px int) Option {
	return func(e *Exporter) {
		e.cfg.maxImageDimension = px
	}
}

// WithAssetPath overrides built-in assets from a directory. Missing files
// fall back to the embedded defaults.
func WithAssetPath(path string) Option {
	return func(e *Exporter) {
		e.cfg.assetPath = path
	}
}

// WithAssetLoader sets a custom asset loader. It takes precedence over
// WithAssetPath.
func WithAssetLoader(l AssetLoader) Option {
	return func(e *Exporter) {
		e.cfg.assetLoader = l
	}
}

// WithBranding replaces the footer text and link. Empty values keep the
// defaults.
func WithBranding(text, url string) Option {
	return func(e *Exporter) {
		e.cfg.branding = pipeline.BrandingData{Text: text, URL: url}
	}
}

// WithPDFTimeout bounds page load for PDF snapshots.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithPDFTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("pageexport: WithPDFTimeout duration must be positive")
	}
	return func(e *Exporter) {
		e.cfg.pdfTimeout = d
	}
}
