// Package script provides the browser runtime attached to every exported
// page and the dataset attribute names it reads.
//
// The runtime is emitted once per document, never per carousel instance. It
// talks to the markup only through the attributes below.
package script

import (
	"fmt"
	"strings"

	"github.com/alnah/go-pageexport/internal/assets"
)

// Dataset attributes written by the slideshow renderer.
const (
	AttrAutoplay     = "data-autoplay"
	AttrInterval     = "data-interval"
	AttrTransition   = "data-transition"
	AttrDuration     = "data-duration"
	AttrPauseOnHover = "data-pause-on-hover"
	AttrLoop         = "data-loop"
	AttrTotal        = "data-total"
	AttrCurrent      = "data-current"
)

// Structural markers used by the runtime to find carousel parts.
const (
	AttrCarousel = "data-carousel"
	AttrSlide    = "data-slide"
	AttrDot      = "data-carousel-dot"
	AttrPrev     = "data-carousel-prev"
	AttrNext     = "data-carousel-next"
)

// Generator holds the runtime script text.
type Generator struct {
	source string
}

// New loads the carousel and reveal scripts from loader.
func New(loader assets.Loader) (*Generator, error) {
	carousel, err := loader.LoadScript(assets.ScriptCarousel)
	if err != nil {
		return nil, fmt.Errorf("loading carousel script: %w", err)
	}
	reveal, err := loader.LoadScript(assets.ScriptReveal)
	if err != nil {
		return nil, fmt.Errorf("loading reveal script: %w", err)
	}

	return &Generator{source: strings.TrimSpace(carousel) + "\n" + strings.TrimSpace(reveal)}, nil
}

// Source returns the raw script text.
func (g *Generator) Source() string {
	return g.source
}

// Tag returns the script wrapped in a <script> element. Closing sequences
// inside the source are escaped so the element cannot end early.
func (g *Generator) Tag() string {
	return "<script>\n" + strings.ReplaceAll(g.source, "</", `<\/`) + "\n</script>"
}
