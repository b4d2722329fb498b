// Package layout renders one resolved section to an HTML fragment.
//
// Each layout variant has its own Renderer; a Registry dispatches by the
// section's layout tag. Renderers never fail: missing optional fields fall
// back to defaults and an unknown layout renders nothing.
package layout

import (
	"github.com/alnah/go-pageexport/internal/model"
	"github.com/alnah/go-pageexport/internal/richtext"
	"github.com/alnah/go-pageexport/internal/style"
)

// Input is everything a renderer reads. Section is the resolved copy
// produced by the media resolver.
type Input struct {
	Section model.Section
	Media   *model.MediaRef
	Poster  *model.MediaRef
	Styles  style.Set
}

// NewInput builds an Input from a resolved section, composing its styles.
func NewInput(s model.Section) Input {
	in := Input{Section: s, Media: s.Media, Styles: style.Compose(s)}
	if s.Video != nil {
		in.Poster = s.Video.Poster
	}
	return in
}

// Renderer renders one layout variant.
type Renderer interface {
	Render(in Input) string
}

// Registry maps layout tags to renderers.
type Registry struct {
	renderers map[model.Layout]Renderer
}

// NewRegistry returns a Registry with every built-in layout registered.
// A nil rich text renderer gets a default one.
func NewRegistry(rt *richtext.Renderer) *Registry {
	if rt == nil {
		rt = richtext.New()
	}
	k := kit{rt: rt}

	return &Registry{renderers: map[model.Layout]Renderer{
		model.LayoutFullBleed:       hero{kit: k, defaultOpacity: 0.3},
		model.LayoutOverlay:         hero{kit: k, defaultOpacity: 0.5},
		model.LayoutVideoBackground: videoBackground{kit: k},
		model.LayoutSplitLeft:       split{kit: k, mediaFirst: true},
		model.LayoutSplitRight:      split{kit: k, mediaFirst: false},
		model.LayoutCenteredText:    centered{kit: k},
		model.LayoutGallery:         gallery{kit: k},
		model.LayoutCards:           cards{kit: k},
		model.LayoutStats:           stats{kit: k},
		model.LayoutMasonry:         masonry{kit: k},
		model.LayoutTimeline:        timeline{kit: k},
		model.LayoutQuote:           quote{kit: k},
		model.LayoutSlideshow:       slideshow{kit: k},
	}}
}

// Register installs or replaces the renderer for l.
func (r *Registry) Register(l model.Layout, renderer Renderer) {
	r.renderers[l] = renderer
}

// Lookup returns the renderer for l.
func (r *Registry) Lookup(l model.Layout) (Renderer, bool) {
	renderer, ok := r.renderers[l]
	return renderer, ok
}

// Render dispatches in to the renderer for its layout. Unknown layouts
// render "".
func (r *Registry) Render(in Input) string {
	renderer, ok := r.Lookup(in.Section.Layout)
	if !ok {
		return ""
	}
	return renderer.Render(in)
}
