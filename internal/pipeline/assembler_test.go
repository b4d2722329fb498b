package pipeline

// Notes:
// - the document is parsed with golang.org/x/net/html; structural checks
//   walk the tree instead of matching substrings
// - stubResolver answers in reverse order to prove fragments are reordered
//   by index, not by completion

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"golang.org/x/net/html"

	"github.com/alnah/go-pageexport/internal/layout"
	"github.com/alnah/go-pageexport/internal/media"
	"github.com/alnah/go-pageexport/internal/model"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

type stubResolver struct {
	delay func(model.Section) time.Duration
	panic string // section id that panics
}

func (r stubResolver) ResolveSection(ctx context.Context, s model.Section) model.Section {
	if r.delay != nil {
		time.Sleep(r.delay(s))
	}
	if r.panic != "" && s.ID == r.panic {
		panic("resolver exploded")
	}
	return s
}

func newAssembler(t *testing.T, res SectionResolver) *Assembler {
	t.Helper()

	if res == nil {
		res = stubResolver{}
	}
	a, err := New(Config{Resolver: res})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return a
}

func parseDoc(t *testing.T, doc string) *html.Node {
	t.Helper()

	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("html.Parse() error = %v", err)
	}
	return root
}

func findAll(root *html.Node, pred func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && pred(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}

func getAttr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func tag(name string) func(*html.Node) bool {
	return func(n *html.Node) bool { return n.Data == name }
}

func metaContent(root *html.Node, key, name string) (string, bool) {
	for _, n := range findAll(root, tag("meta")) {
		if getAttr(n, key) == name {
			return getAttr(n, "content"), true
		}
	}
	return "", false
}

// ---------------------------------------------------------------------------
// End-to-end scenarios
// ---------------------------------------------------------------------------

func TestAssemble_HelloFullBleed(t *testing.T) {
	t.Parallel()

	a := newAssembler(t, nil)
	doc, err := a.Assemble(context.Background(),
		[]model.Section{{ID: "1", Layout: model.LayoutFullBleed, Title: "Hello"}}, "", nil, Options{})
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	root := parseDoc(t, doc)

	h1 := findAll(root, tag("h1"))
	if len(h1) != 1 || h1[0].FirstChild == nil || h1[0].FirstChild.Data != "Hello" {
		t.Errorf("want one <h1>Hello</h1>")
	}
	if n := len(findAll(root, tag("img"))) + len(findAll(root, tag("video"))); n != 0 {
		t.Errorf("found %d media elements", n)
	}
	if len(findAll(root, tag("footer"))) != 1 {
		t.Errorf("branding footer missing")
	}
	if got := strings.Count(doc, DefaultBrandingText); got != 1 {
		t.Errorf("branding text count = %d, want 1", got)
	}
	if title := findAll(root, tag("title")); len(title) != 1 || title[0].FirstChild.Data != "Hello" {
		t.Errorf("title not derived from first section")
	}
}

func TestAssemble_RemoveBranding(t *testing.T) {
	t.Parallel()

	a := newAssembler(t, nil)
	doc, err := a.Assemble(context.Background(),
		[]model.Section{{ID: "1", Layout: model.LayoutCenteredText, Title: "x"}}, "t", nil, Options{RemoveBranding: true})
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	if strings.Contains(doc, DefaultBrandingText) {
		t.Errorf("branding text present")
	}
	if len(findAll(parseDoc(t, doc), tag("footer"))) != 0 {
		t.Errorf("footer present")
	}
}

func TestAssemble_MediaFallbacks(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	remote := srv.URL + "/hero.jpg"

	a := newAssembler(t, media.NewResolver(media.Config{}))
	doc, err := a.Assemble(context.Background(), []model.Section{
		{ID: "r", Layout: model.LayoutFullBleed, Media: &model.MediaRef{Src: remote, Alt: "hero"}},
		{ID: "s", Layout: model.LayoutFullBleed, Media: &model.MediaRef{Src: "blob:https://editor/123"}},
	}, "", nil, Options{})
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	root := parseDoc(t, doc)

	imgs := findAll(root, tag("img"))
	if len(imgs) != 1 || getAttr(imgs[0], "src") != remote {
		t.Errorf("remote fallback: want one img with src %q", remote)
	}
	missing := findAll(root, func(n *html.Node) bool { return strings.Contains(getAttr(n, "class"), "pe-media-missing") })
	if len(missing) != 1 {
		t.Errorf("session fallback: want one placeholder, got %d", len(missing))
	}
	if strings.Contains(doc, "blob:") {
		t.Errorf("session handle leaked into output")
	}
}

// ---------------------------------------------------------------------------
// Ordering and progress
// ---------------------------------------------------------------------------

func TestAssemble_OrderUnderReversedLatency(t *testing.T) {
	t.Parallel()

	const n = 6
	var sections []model.Section
	for i := 0; i < n; i++ {
		sections = append(sections, model.Section{ID: strconv.Itoa(i), Layout: model.LayoutCenteredText, Title: "T" + strconv.Itoa(i)})
	}
	res := stubResolver{delay: func(s model.Section) time.Duration {
		i, _ := strconv.Atoi(s.ID)
		return time.Duration(n-i) * 10 * time.Millisecond
	}}

	a, err := New(Config{Resolver: res, Concurrency: n})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	doc, err := a.Assemble(context.Background(), sections, "", nil, Options{})
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	var ids []string
	for _, s := range findAll(parseDoc(t, doc), tag("section")) {
		ids = append(ids, getAttr(s, "id"))
	}
	want := "section-0,section-1,section-2,section-3,section-4,section-5"
	if strings.Join(ids, ",") != want {
		t.Errorf("order = %v, want %s", ids, want)
	}
}

func TestAssemble_Progress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		sections int
	}{
		{name: "none", sections: 0},
		{name: "one", sections: 1},
		{name: "many", sections: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var sections []model.Section
			for i := 0; i < tt.sections; i++ {
				sections = append(sections, model.Section{ID: strconv.Itoa(i), Layout: model.LayoutQuote, Body: "q"})
			}

			var (
				mu    sync.Mutex
				calls []int
			)
			progress := func(p int) {
				mu.Lock()
				defer mu.Unlock()
				calls = append(calls, p)
			}

			if _, err := newAssembler(t, nil).Assemble(context.Background(), sections, "", progress, Options{}); err != nil {
				t.Fatalf("Assemble() error = %v", err)
			}

			if len(calls) != tt.sections+1 {
				t.Errorf("calls = %d, want %d", len(calls), tt.sections+1)
			}
			for i := 1; i < len(calls); i++ {
				if calls[i] < calls[i-1] {
					t.Errorf("progress decreased: %v", calls)
				}
			}
			if calls[len(calls)-1] != 100 {
				t.Errorf("last progress = %d, want 100", calls[len(calls)-1])
			}
			for _, p := range calls[:len(calls)-1] {
				if p >= 100 {
					t.Errorf("reached 100 before wrap-up: %v", calls)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Degradation
// ---------------------------------------------------------------------------

type panicRenderer struct{}

func (panicRenderer) Render(layout.Input) string { panic("renderer exploded") }

func TestAssemble_SectionPanicsDegrade(t *testing.T) {
	t.Parallel()

	reg := layout.NewRegistry(nil)
	reg.Register("boom", panicRenderer{})

	a, err := New(Config{Resolver: stubResolver{panic: "bad"}, Layouts: reg})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	doc, err := a.Assemble(context.Background(), []model.Section{
		{ID: "a", Layout: model.LayoutCenteredText, Title: "before"},
		{ID: "bad", Layout: model.LayoutFullBleed, Title: "resolver",
			Media: &model.MediaRef{Src: "https://cdn.example.com/hero.jpg", Alt: "Hero"}},
		{ID: "c", Layout: "boom"},
		{ID: "d", Layout: "nonsense"},
		{ID: "e", Layout: model.LayoutCenteredText, Title: "after"},
	}, "", nil, Options{})
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	sections := findAll(parseDoc(t, doc), tag("section"))
	if len(sections) != 3 {
		t.Fatalf("sections = %d, want 3", len(sections))
	}
	for i, want := range []string{"section-a", "section-bad", "section-e"} {
		if got := getAttr(sections[i], "id"); got != want {
			t.Errorf("sections[%d] id = %q, want %q", i, got, want)
		}
	}

	// The section whose resolution panicked keeps its text and shows the
	// broken-media placeholder instead of the original image.
	degraded := sections[1]
	placeholders := findAll(degraded, func(n *html.Node) bool {
		return n.Type == html.ElementNode && strings.Contains(getAttr(n, "class"), "pe-media-missing")
	})
	if len(placeholders) != 1 {
		t.Errorf("placeholders = %d, want 1", len(placeholders))
	}
	if imgs := findAll(degraded, tag("img")); len(imgs) != 0 {
		t.Errorf("degraded section kept %d img elements", len(imgs))
	}
	if !strings.Contains(doc, "resolver") {
		t.Error("degraded section lost its title")
	}
}

func TestAssemble_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newAssembler(t, nil).Assemble(ctx, []model.Section{{ID: "a", Layout: model.LayoutQuote}}, "", nil, Options{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Assemble() error = %v, want context.Canceled", err)
	}
}

// ---------------------------------------------------------------------------
// Document shell
// ---------------------------------------------------------------------------

func TestAssemble_Metadata(t *testing.T) {
	t.Parallel()

	sections := []model.Section{{
		ID:     "1",
		Layout: model.LayoutFullBleed,
		Title:  "Launch",
		Body:   "Our **new** product " + strings.Repeat("is great ", 40),
		Media:  &model.MediaRef{Src: "https://cdn.example.com/og.jpg"},
	}}

	// Resolution is stubbed, so the remote locator stays as given.
	doc, err := newAssembler(t, nil).Assemble(context.Background(), sections, "My Page", nil, Options{Lang: "fr"})
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	root := parseDoc(t, doc)

	if got, _ := metaContent(root, "property", "og:title"); got != "My Page" {
		t.Errorf("og:title = %q", got)
	}
	desc, ok := metaContent(root, "name", "description")
	if !ok || !strings.HasPrefix(desc, "Our new product") || len([]rune(desc)) > MaxDescriptionRune {
		t.Errorf("description = %q", desc)
	}
	if got, _ := metaContent(root, "property", "og:image"); got != "https://cdn.example.com/og.jpg" {
		t.Errorf("og:image = %q", got)
	}
	if got, _ := metaContent(root, "name", "twitter:card"); got != "summary_large_image" {
		t.Errorf("twitter:card = %q", got)
	}
	if htmlEl := findAll(root, tag("html")); getAttr(htmlEl[0], "lang") != "fr" {
		t.Errorf("lang not applied")
	}
}

func TestAssemble_StylesheetAndScript(t *testing.T) {
	t.Parallel()

	sections := []model.Section{
		{ID: "1", Layout: model.LayoutCenteredText, Body: "```go\nx := 1\n```", FontFamily: "Playfair Display"},
		{ID: "2", Layout: model.LayoutCenteredText, FontFamily: "Arial"},
		{ID: "3", Layout: model.LayoutCenteredText, FontFamily: "playfair display"},
	}
	doc, err := newAssembler(t, nil).Assemble(context.Background(), sections, "", nil,
		Options{CSS: "body{color:red}</style><script>alert(1)</script>"})
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	root := parseDoc(t, doc)

	styles := findAll(root, tag("style"))
	if len(styles) != 1 {
		t.Fatalf("style elements = %d, want 1", len(styles))
	}
	css := styles[0].FirstChild.Data
	for _, want := range []string{".pe-section", "@keyframes pe-zoom-in", ".chroma", "body{color:red}"} {
		if !strings.Contains(css, want) {
			t.Errorf("stylesheet missing %q", want)
		}
	}

	scripts := findAll(root, tag("script"))
	if len(scripts) != 1 || getAttr(scripts[0], "src") != "" {
		t.Errorf("want exactly one inline script, got %d", len(scripts))
	}

	links := findAll(root, tag("link"))
	if len(links) != 1 {
		t.Fatalf("links = %d, want 1", len(links))
	}
	href := getAttr(links[0], "href")
	if !strings.HasPrefix(href, googleFontsBase) || strings.Count(href, "family=") != 1 || !strings.Contains(href, "Playfair+Display") {
		t.Errorf("fonts href = %q", href)
	}
}

func TestAssemble_NoFontsNoLink(t *testing.T) {
	t.Parallel()

	doc, err := newAssembler(t, nil).Assemble(context.Background(),
		[]model.Section{{ID: "1", Layout: model.LayoutQuote, Body: "q"}}, "", nil, Options{})
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	if strings.Contains(doc, "<link") || strings.Contains(doc, "src=\"http") {
		t.Errorf("unexpected external reference")
	}
	if strings.Contains(doc, ".chroma") {
		t.Errorf("highlight CSS emitted without code")
	}
}

func TestSanitizeLang(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":              DefaultLang,
		"pt-BR":         "pt-BR",
		`en" onload="x`: DefaultLang,
		"zh-Hant-TW":    "zh-Hant-TW",
		"<script>":      DefaultLang,
	}
	for in, want := range tests {
		if got := sanitizeLang(in); got != want {
			t.Errorf("sanitizeLang(%q) = %q, want %q", in, got, want)
		}
	}
}

// ---------------------------------------------------------------------------
// Resolution passes
// ---------------------------------------------------------------------------

var _ passScoper = (*media.Resolver)(nil)

type passKey struct{}

// passResolver tags each Assemble call's context and records which tag every
// section resolved under.
type passResolver struct {
	mu     sync.Mutex
	passes int
	seen   map[string]int
}

func (r *passResolver) BeginPass(ctx context.Context) context.Context {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.passes++
	return context.WithValue(ctx, passKey{}, r.passes)
}

func (r *passResolver) ResolveSection(ctx context.Context, s model.Section) model.Section {
	r.mu.Lock()
	defer r.mu.Unlock()
	pass, _ := ctx.Value(passKey{}).(int)
	r.seen[s.ID] = pass
	return s
}

func TestAssemble_OnePassPerCall(t *testing.T) {
	t.Parallel()

	res := &passResolver{seen: map[string]int{}}
	a := newAssembler(t, res)

	for _, ids := range [][]string{{"a", "b", "c"}, {"d", "e"}} {
		var sections []model.Section
		for _, id := range ids {
			sections = append(sections, model.Section{ID: id, Layout: model.LayoutCenteredText, Title: id})
		}
		if _, err := a.Assemble(context.Background(), sections, "", nil, Options{}); err != nil {
			t.Fatalf("Assemble() error = %v", err)
		}
	}

	if res.passes != 2 {
		t.Errorf("passes = %d, want 2", res.passes)
	}
	want := map[string]int{"a": 1, "b": 1, "c": 1, "d": 2, "e": 2}
	for id, pass := range want {
		if res.seen[id] != pass {
			t.Errorf("section %s resolved in pass %d, want %d", id, res.seen[id], pass)
		}
	}
}
