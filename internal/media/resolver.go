package media

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/alnah/go-pageexport/internal/fileutil"
	"github.com/alnah/go-pageexport/internal/model"
)

// Config wires a Resolver's collaborators. Zero values select defaults.
type Config struct {
	Fetcher     Fetcher      // default: NewHTTPFetcher(nil, 0, 0)
	Sessions    SessionStore // nil: every session handle resolves to ""
	Encoder     *Encoder     // default: &Encoder{}
	BaseDir     string       // directory for file references; "" passes them through
	Concurrency int          // concurrent fetches (default: GOMAXPROCS)
	Logger      *zap.Logger  // default: zap.NewNop()
}

// Resolver resolves media references. It holds no per-call state: every
// call starts from the references it is given, and fetch limits live in the
// pass the call runs in.
type Resolver struct {
	fetcher  Fetcher
	sessions SessionStore
	encoder  *Encoder
	baseDir  string
	limit    int64
	log      *zap.Logger
}

type passKey struct{}

// NewResolver creates a Resolver from cfg.
func NewResolver(cfg Config) *Resolver {
	r := &Resolver{
		fetcher:  cfg.Fetcher,
		sessions: cfg.Sessions,
		encoder:  cfg.Encoder,
		baseDir:  cfg.BaseDir,
		log:      cfg.Logger,
	}
	if r.fetcher == nil {
		r.fetcher = NewHTTPFetcher(nil, 0, 0)
	}
	if r.encoder == nil {
		r.encoder = &Encoder{}
	}
	if r.log == nil {
		r.log = zap.NewNop()
	}
	n := cfg.Concurrency
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	r.limit = int64(n)
	return r
}

// BeginPass returns a context carrying a fresh fetch limit. Every Resolve
// and ResolveSection call made with it shares that limit; concurrent passes
// never wait on each other.
func (r *Resolver) BeginPass(ctx context.Context) context.Context {
	return context.WithValue(ctx, passKey{}, semaphore.NewWeighted(r.limit))
}

// pass returns the limit carried by ctx, starting a pass when there is none.
func (r *Resolver) pass(ctx context.Context) (context.Context, *semaphore.Weighted) {
	if sem, ok := ctx.Value(passKey{}).(*semaphore.Weighted); ok {
		return ctx, sem
	}
	ctx = r.BeginPass(ctx)
	return ctx, ctx.Value(passKey{}).(*semaphore.Weighted)
}

// Resolve returns the embeddable form of src. It never fails: unresolvable
// remote and file references come back unchanged, unresolvable session
// handles come back empty.
func (r *Resolver) Resolve(ctx context.Context, src string) string {
	kind := Classify(src)
	switch kind {
	case KindNone:
		return ""
	case KindInline:
		return src
	}

	out, err := r.embed(ctx, kind, src)
	if err == nil {
		r.log.Debug("media inlined", zap.Stringer("kind", kind), zap.String("src", src), zap.Int("bytes", len(out)))
		return out
	}

	fallback := src
	if kind == KindSession {
		fallback = ""
	}
	r.log.Warn("media fallback",
		zap.Stringer("kind", kind),
		zap.String("src", src),
		zap.Bool("dropped", fallback == ""),
		zap.Error(err))
	return fallback
}

func (r *Resolver) embed(ctx context.Context, kind Kind, src string) (string, error) {
	var (
		p   *Payload
		err error
	)
	switch kind {
	case KindRemote:
		p, err = r.fetchRemote(ctx, src)
	case KindSession:
		p, err = r.openSession(ctx, src)
	case KindFile:
		p, err = r.readFile(src)
	}
	if err != nil {
		return "", err
	}
	return r.encoder.Encode(p)
}

func (r *Resolver) fetchRemote(ctx context.Context, url string) (*Payload, error) {
	_, sem := r.pass(ctx)
	if err := sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer sem.Release(1)
	return r.fetcher.Fetch(ctx, url)
}

func (r *Resolver) openSession(ctx context.Context, src string) (*Payload, error) {
	if r.sessions == nil {
		return nil, ErrNoSessionStore
	}
	h, ok := ParseSessionHandle(src)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHandle, src)
	}
	return r.sessions.Open(ctx, h)
}

func (r *Resolver) readFile(rel string) (*Payload, error) {
	if r.baseDir == "" {
		return nil, ErrNoBaseDir
	}
	path, err := fileutil.ResolveContained(r.baseDir, rel)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path) // #nosec G304 -- contained in baseDir
	if err != nil {
		return nil, err
	}
	return &Payload{Data: data}, nil
}

// ResolveSection returns a copy of s with every media reference the active
// layout reads replaced by its resolved source. References that resolve to
// "" keep their MediaRef so the renderer can show a placeholder; blank
// references become nil. Collections of other layouts are dropped from the
// copy. s itself is never modified. Called outside a pass, the section's
// fetches form a pass of their own.
func (r *Resolver) ResolveSection(ctx context.Context, s model.Section) model.Section {
	ctx, _ = r.pass(ctx)
	var g errgroup.Group
	out := s.MapMedia(func(src *model.MediaRef) *model.MediaRef {
		if src == nil || Classify(src.Src) == KindNone {
			return nil
		}
		ref := *src
		g.Go(func() error {
			ref.Src = r.Resolve(ctx, ref.Src)
			return nil
		})
		return &ref
	})

	// Resolve never fails, so Wait only joins.
	_ = g.Wait()
	return out
}
