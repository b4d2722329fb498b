package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-pageexport/internal/assets"
	"github.com/alnah/go-pageexport/internal/layout"
	"github.com/alnah/go-pageexport/internal/model"
	"github.com/alnah/go-pageexport/internal/richtext"
	"github.com/alnah/go-pageexport/internal/script"
)

// SectionResolver produces a resolved copy of a section.
type SectionResolver interface {
	ResolveSection(ctx context.Context, s model.Section) model.Section
}

// passScoper is implemented by resolvers whose limits cover one Assemble
// call. BeginPass is called once per call, before any section resolves.
type passScoper interface {
	BeginPass(ctx context.Context) context.Context
}

// ProgressFunc receives a completion percentage. Calls are serialized and
// never decrease; the last call is exactly 100.
type ProgressFunc func(percent int)

// Options are per-call document options.
type Options struct {
	RemoveBranding bool
	CSS            string // appended after the built-in stylesheet
	Lang           string // default: "en"
}

// Config wires an Assembler.
type Config struct {
	Resolver    SectionResolver // required
	Loader      assets.Loader   // default: embedded assets
	Layouts     *layout.Registry
	RichText    *richtext.Renderer
	Branding    BrandingData
	Concurrency int // sections resolved at once (default: GOMAXPROCS)
	Logger      *zap.Logger
}

// Assembler builds complete documents from section lists. Assets are loaded
// once by New; Assemble holds no state between calls.
type Assembler struct {
	resolver    SectionResolver
	layouts     *layout.Registry
	rt          *richtext.Renderer
	branding    *Branding
	runtime     *script.Generator
	css         string
	concurrency int
	log         *zap.Logger
}

// New loads the stylesheet, branding template, and runtime script.
func New(cfg Config) (*Assembler, error) {
	if cfg.Resolver == nil {
		return nil, fmt.Errorf("pipeline: nil resolver")
	}
	loader := cfg.Loader
	if loader == nil {
		loader = assets.NewEmbeddedLoader()
	}
	rt := cfg.RichText
	if rt == nil {
		rt = richtext.New()
	}
	layouts := cfg.Layouts
	if layouts == nil {
		layouts = layout.NewRegistry(rt)
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}

	base, err := loader.LoadStyle(assets.StyleBase)
	if err != nil {
		return nil, fmt.Errorf("loading base stylesheet: %w", err)
	}
	animations, err := loader.LoadStyle(assets.StyleAnimations)
	if err != nil {
		return nil, fmt.Errorf("loading animations stylesheet: %w", err)
	}
	tmpl, err := loader.LoadTemplate(assets.TemplateBranding)
	if err != nil {
		return nil, fmt.Errorf("loading branding template: %w", err)
	}
	branding, err := NewBranding(tmpl, cfg.Branding)
	if err != nil {
		return nil, err
	}
	gen, err := script.New(loader)
	if err != nil {
		return nil, err
	}

	return &Assembler{
		resolver:    cfg.Resolver,
		layouts:     layouts,
		rt:          rt,
		branding:    branding,
		runtime:     gen,
		css:         strings.TrimSpace(base) + "\n" + strings.TrimSpace(animations),
		concurrency: concurrency,
		log:         log,
	}, nil
}

// Assemble renders sections into one self-contained HTML document.
// Resolution runs in parallel; fragments keep input order. progress may be
// nil. The returned error is non-nil only when ctx is done or the shell
// cannot be produced.
func (a *Assembler) Assemble(ctx context.Context, sections []model.Section, title string, progress ProgressFunc, opts Options) (string, error) {
	if progress == nil {
		progress = func(int) {}
	}

	resolved := a.resolveAll(ctx, sections, progress)
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fragments := make([]string, len(sections))
	hasCode := false
	for i, s := range resolved {
		fragments[i] = a.renderSection(i, s)
		if richtext.HasCode(fragments[i]) {
			hasCode = true
		}
	}

	doc := &shell{
		Lang:      sanitizeLang(opts.Lang),
		Meta:      a.metadata(sections, title),
		CSS:       a.stylesheet(hasCode, opts.CSS),
		FontsURL:  fontsURL(webFonts(sections)),
		Fragments: fragments,
		Script:    a.runtime.Tag(),
	}
	if !opts.RemoveBranding {
		footer, err := a.branding.Render()
		if err != nil {
			return "", err
		}
		doc.Branding = footer
	}

	out := doc.String()
	progress(100)
	a.log.Debug("document assembled",
		zap.Int("sections", len(sections)),
		zap.Int("bytes", len(out)),
		zap.Bool("branding", !opts.RemoveBranding))
	return out, nil
}

// resolveAll resolves every section with bounded parallelism and reports
// progress as each one completes. A section whose resolution panics keeps
// its content but loses its media, so it renders with placeholders.
func (a *Assembler) resolveAll(ctx context.Context, sections []model.Section, progress ProgressFunc) []model.Section {
	n := len(sections)
	resolved := make([]model.Section, n)
	if ps, ok := a.resolver.(passScoper); ok {
		ctx = ps.BeginPass(ctx)
	}

	var (
		mu   sync.Mutex
		done int
		g    errgroup.Group
	)
	g.SetLimit(a.concurrency)

	for i := range sections {
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					a.log.Error("section resolution panicked",
						zap.Int("index", i), zap.String("id", sections[i].ID), zap.Any("panic", r))
					resolved[i] = withoutMedia(sections[i])
				}
				mu.Lock()
				done++
				progress(done * 100 / (n + 1))
				mu.Unlock()
			}()

			if ctx.Err() != nil {
				return nil
			}
			resolved[i] = a.resolver.ResolveSection(ctx, sections[i])
			return nil
		})
	}

	// Goroutines only return nil.
	_ = g.Wait()
	return resolved
}

// withoutMedia copies s with every active media reference marked as
// unresolvable. Blank references stay absent.
func withoutMedia(s model.Section) model.Section {
	return s.MapMedia(func(src *model.MediaRef) *model.MediaRef {
		if src == nil || strings.TrimSpace(src.Src) == "" {
			return nil
		}
		ref := *src
		ref.Src = ""
		return &ref
	})
}

// renderSection renders one section, recovering from renderer panics.
func (a *Assembler) renderSection(i int, s model.Section) (fragment string) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error("section render panicked",
				zap.Int("index", i), zap.String("id", s.ID), zap.Any("panic", r))
			fragment = ""
		}
	}()

	if _, ok := a.layouts.Lookup(s.Layout); !ok {
		if s.Layout != "" {
			a.log.Warn("unknown layout, section skipped",
				zap.Int("index", i), zap.String("id", s.ID), zap.String("layout", string(s.Layout)))
		}
		return ""
	}
	return a.layouts.Render(layout.NewInput(s))
}

func (a *Assembler) stylesheet(hasCode bool, custom string) string {
	parts := []string{a.css}
	if hasCode {
		parts = append(parts, richtext.HighlightCSS())
	}
	if c := strings.TrimSpace(custom); c != "" {
		parts = append(parts, c)
	}
	return strings.Join(parts, "\n")
}

func (a *Assembler) metadata(sections []model.Section, title string) metadata {
	m := metadata{Title: strings.TrimSpace(title)}
	if len(sections) > 0 {
		first := sections[0]
		if m.Title == "" {
			m.Title = strings.TrimSpace(first.Title)
		}
		m.Description = a.rt.PlainText(first.Body, MaxDescriptionRune)
		m.Image = previewImage(first)
	}
	if m.Title == "" {
		m.Title = DefaultTitle
	}
	return m
}
