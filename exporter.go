package pageexport

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"github.com/alnah/go-pageexport/internal/assets"
	"github.com/alnah/go-pageexport/internal/media"
	"github.com/alnah/go-pageexport/internal/pipeline"
)

// DefaultFilename is used when the title yields no usable slug.
const DefaultFilename = "page.html"

// Compile-time interface implementation checks.
var (
	_ pipeline.SectionResolver = (*media.Resolver)(nil)
	_ assets.Loader            = (AssetLoader)(nil)
)

// Exporter turns sections into self-contained HTML documents.
// Create with NewExporter(), use Export() for each page, and Close() when done.
// Export is safe for concurrent use.
type Exporter struct {
	cfg       exporterConfig
	log       *zap.Logger
	assembler *pipeline.Assembler
	pdf       pdfConverter
}

// NewExporter creates an Exporter with default configuration.
// Use options to customize behavior (e.g., WithLogger, WithBaseDir, WithAssetPath).
// Returns error if asset loading or template parsing fails.
func NewExporter(opts ...Option) (*Exporter, error) {
	e := &Exporter{
		cfg: exporterConfig{pdfTimeout: defaultPDFTimeout},
	}

	for _, opt := range opts {
		opt(e)
	}

	e.log = e.cfg.logger
	if e.log == nil {
		e.log = zap.NewNop()
	}
	concurrency := e.cfg.concurrency
	if concurrency <= 0 {
		concurrency = ResolvePoolSize(0)
	}

	var loader assets.Loader = assets.NewEmbeddedLoader()
	switch {
	case e.cfg.assetLoader != nil:
		loader = e.cfg.assetLoader
	case e.cfg.assetPath != "":
		custom, err := NewAssetLoader(e.cfg.assetPath)
		if err != nil {
			return nil, err
		}
		loader = custom
	}

	resolver := media.NewResolver(media.Config{
		Fetcher:     media.NewHTTPFetcher(e.cfg.httpClient, e.cfg.fetchTimeout, e.cfg.maxMediaBytes),
		Sessions:    e.cfg.sessions,
		Encoder:     &media.Encoder{MaxDimension: e.cfg.maxImageDimension, MaxBytes: e.cfg.maxMediaBytes},
		BaseDir:     e.cfg.baseDir,
		Concurrency: concurrency,
		Logger:      e.log.Named("media"),
	})

	assembler, err := pipeline.New(pipeline.Config{
		Resolver:    resolver,
		Loader:      loader,
		Branding:    e.cfg.branding,
		Concurrency: concurrency,
		Logger:      e.log.Named("assemble"),
	})
	if err != nil {
		return nil, fmt.Errorf("initializing assembler: %w", convertAssetError(err))
	}
	e.assembler = assembler

	// Create PDF converter if not injected (e.g., by tests)
	if e.pdf == nil {
		e.pdf = newRodConverter(e.cfg.pdfTimeout)
	}

	return e, nil
}

// Export runs the full pipeline and returns the document.
// Unreachable media never fails an export; the returned error is non-nil
// when ctx is done, the PDF settings are invalid, or the snapshot fails.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (e *Exporter) Export(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := input.PDF.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	doc, err := e.assembler.Assemble(ctx, input.Sections, input.Title, input.Progress, pipeline.Options{
		RemoveBranding: input.RemoveBranding,
		CSS:            input.CSS,
		Lang:           input.Lang,
	})
	if err != nil {
		return nil, err
	}

	res := &Result{
		HTML:     []byte(doc),
		Filename: Filename(documentTitle(input)),
	}

	if input.PDF != nil {
		pdfBytes, err := e.pdf.ToPDF(ctx, doc, input.PDF)
		if err != nil {
			return nil, fmt.Errorf("converting to PDF: %w", err)
		}
		res.PDF = pdfBytes
	}

	e.log.Info("page exported",
		zap.String("file", res.Filename),
		zap.Int("sections", len(input.Sections)),
		zap.Int("bytes", len(res.HTML)),
		zap.Bool("pdf", res.PDF != nil),
		zap.Duration("elapsed", time.Since(start)))
	return res, nil
}

// ExportTo exports input and writes the HTML document to w.
// Returns the number of bytes written.
func (e *Exporter) ExportTo(ctx context.Context, w io.Writer, input Input) (int64, error) {
	res, err := e.Export(ctx, input)
	if err != nil {
		return 0, err
	}
	n, err := w.Write(res.HTML)
	if err != nil {
		return int64(n), fmt.Errorf("writing document: %w", err)
	}
	return int64(n), nil
}

// Close releases resources (headless Chrome browser, if a snapshot ran).
func (e *Exporter) Close() error {
	if e.pdf != nil {
		return e.pdf.Close()
	}
	return nil
}

// Filename derives a download name from a page title, e.g. "Spring Sale!"
// becomes "spring-sale.html".
func Filename(title string) string {
	s := slug.Make(title)
	if s == "" {
		return DefaultFilename
	}
	return s + ".html"
}

// documentTitle mirrors the title the assembler writes into the document.
func documentTitle(input Input) string {
	if t := strings.TrimSpace(input.Title); t != "" {
		return t
	}
	if len(input.Sections) > 0 {
		return strings.TrimSpace(input.Sections[0].Title)
	}
	return ""
}
