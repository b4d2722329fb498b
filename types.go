package pageexport

import (
	"fmt"
	"strings"

	"github.com/alnah/go-pageexport/internal/model"
	"github.com/alnah/go-pageexport/internal/pipeline"
)

// Content model. The types live in an internal package so every pipeline
// stage shares them; these aliases are the public names.
type (
	Section           = model.Section
	Layout            = model.Layout
	MediaKind         = model.MediaKind
	MediaRef          = model.MediaRef
	Position          = model.Position
	TextShadow        = model.TextShadow
	Gradient          = model.Gradient
	Filter            = model.Filter
	Animation         = model.Animation
	Button            = model.Button
	GridSettings      = model.GridSettings
	TimelineSettings  = model.TimelineSettings
	VideoSettings     = model.VideoSettings
	SlideshowSettings = model.SlideshowSettings
	GalleryImage      = model.GalleryImage
	TimelineEntry     = model.TimelineEntry
	Card              = model.Card
	Stat              = model.Stat
	Slide             = model.Slide
	MasonryTile       = model.MasonryTile
)

// Layout variants.
const (
	LayoutFullBleed       = model.LayoutFullBleed
	LayoutSplitLeft       = model.LayoutSplitLeft
	LayoutSplitRight      = model.LayoutSplitRight
	LayoutOverlay         = model.LayoutOverlay
	LayoutCenteredText    = model.LayoutCenteredText
	LayoutGallery         = model.LayoutGallery
	LayoutTimeline        = model.LayoutTimeline
	LayoutCards           = model.LayoutCards
	LayoutQuote           = model.LayoutQuote
	LayoutStats           = model.LayoutStats
	LayoutVideoBackground = model.LayoutVideoBackground
	LayoutSlideshow       = model.LayoutSlideshow
	LayoutMasonry         = model.LayoutMasonry
)

// Media kinds.
const (
	MediaImage = model.MediaImage
	MediaVideo = model.MediaVideo
)

// Branding defaults.
const (
	DefaultBrandingText = pipeline.DefaultBrandingText
	DefaultBrandingURL  = pipeline.DefaultBrandingURL
)

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.0
	MaxMargin     = 3.0
	DefaultMargin = 0.0
)

// PDFSettings requests a PDF snapshot of the exported page.
type PDFSettings struct {
	Size        string  // "letter", "a4", "legal" (default: "letter")
	Orientation string  // "portrait", "landscape" (default: "portrait")
	Margin      float64 // inches, applied to all sides
}

// Validate checks that PDF settings are valid.
// Returns nil if p is nil (nil means no snapshot).
// Empty size and orientation select the defaults.
func (p *PDFSettings) Validate() error {
	if p == nil {
		return nil
	}

	if p.Size != "" && !isValidPageSize(p.Size) {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	if p.Orientation != "" && !isValidOrientation(p.Orientation) {
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// isValidPageSize checks if size is a known page size (case-insensitive).
func isValidPageSize(size string) bool {
	switch strings.ToLower(size) {
	case PageSizeLetter, PageSizeA4, PageSizeLegal:
		return true
	}
	return false
}

// isValidOrientation checks if orientation is valid (case-insensitive).
func isValidOrientation(orientation string) bool {
	switch strings.ToLower(orientation) {
	case OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}

// Input contains export parameters.
type Input struct {
	Sections       []Section
	Title          string            // document title (default: first section title)
	CSS            string            // appended after the built-in stylesheet
	Lang           string            // html lang attribute (default: "en")
	RemoveBranding bool              // honored as given
	Progress       func(percent int) // optional; serialized, non-decreasing, ends at 100
	PDF            *PDFSettings      // optional; nil skips the snapshot
}

// Result is the output of an export.
type Result struct {
	HTML     []byte
	PDF      []byte // nil unless Input.PDF was set
	Filename string // slug of the title with .html, or "page.html"
}
