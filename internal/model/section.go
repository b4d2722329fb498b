// Package model defines the content model consumed by the export pipeline.
//
// A page is an ordered list of Sections. Each Section selects one Layout
// from a closed set; the layout decides which sub-item collection, if any,
// is read. Collections that belong to other layouts are ignored even when
// present.
//
// Style descriptors are optional pointers carrying an Enabled flag. A nil or
// disabled descriptor never influences output.
package model

// Layout identifies the structural template a section renders with.
type Layout string

// Layout variants.
const (
	LayoutFullBleed       Layout = "full-bleed"
	LayoutSplitLeft       Layout = "split-left"
	LayoutSplitRight      Layout = "split-right"
	LayoutOverlay         Layout = "overlay"
	LayoutCenteredText    Layout = "centered-text"
	LayoutGallery         Layout = "gallery"
	LayoutTimeline        Layout = "timeline"
	LayoutCards           Layout = "cards"
	LayoutQuote           Layout = "quote"
	LayoutStats           Layout = "stats"
	LayoutVideoBackground Layout = "video-background"
	LayoutSlideshow       Layout = "slideshow"
	LayoutMasonry         Layout = "masonry"
)

// Layouts lists every known layout in declaration order.
var Layouts = []Layout{
	LayoutFullBleed,
	LayoutSplitLeft,
	LayoutSplitRight,
	LayoutOverlay,
	LayoutCenteredText,
	LayoutGallery,
	LayoutTimeline,
	LayoutCards,
	LayoutQuote,
	LayoutStats,
	LayoutVideoBackground,
	LayoutSlideshow,
	LayoutMasonry,
}

// Valid reports whether l is one of the known layouts.
func (l Layout) Valid() bool {
	for _, known := range Layouts {
		if l == known {
			return true
		}
	}
	return false
}

// MediaKind distinguishes images from videos.
type MediaKind string

// Media kinds.
const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// MediaRef points at a piece of media. Src is an inline data URI, a remote
// URL, a session-local handle, or a path relative to the project directory.
type MediaRef struct {
	Kind MediaKind `yaml:"kind,omitempty"`
	Src  string    `yaml:"src"`
	Alt  string    `yaml:"alt,omitempty"`
}

// IsVideo reports whether the reference should render as a video element.
func (m *MediaRef) IsVideo() bool {
	return m != nil && m.Kind == MediaVideo
}

// Quote mark styles.
const (
	QuoteDouble = "double"
	QuoteSingle = "single"
	QuoteNone   = "none"
)

// Section height modes. Any other non-empty value is used as a CSS length.
const (
	HeightFull   = "full"
	HeightLarge  = "large"
	HeightMedium = "medium"
	HeightAuto   = "auto"
)

// Section is one ordered unit of exportable content.
type Section struct {
	ID     string `yaml:"id"`
	Layout Layout `yaml:"layout"`

	Title      string `yaml:"title,omitempty"`
	Body       string `yaml:"body,omitempty"` // Markdown
	Author     string `yaml:"author,omitempty"`
	QuoteStyle string `yaml:"quoteStyle,omitempty"` // "double", "single", "none" (default: "double")

	Media *MediaRef `yaml:"media,omitempty"`

	TextShadow *TextShadow `yaml:"textShadow,omitempty"`
	Gradient   *Gradient   `yaml:"gradient,omitempty"`
	Filter     *Filter     `yaml:"filter,omitempty"`
	Animation  *Animation  `yaml:"animation,omitempty"`
	Button     *Button     `yaml:"button,omitempty"`

	Position        Position `yaml:"position,omitempty"`
	SplitRatio      int      `yaml:"splitRatio,omitempty"` // media share in percent, 20..80 (default: 50)
	Padding         int      `yaml:"padding,omitempty"`    // px (default: 24)
	Height          string   `yaml:"height,omitempty"`     // see Height* constants (default: 100vh)
	OverlayOpacity  *float64 `yaml:"overlayOpacity,omitempty"`
	BackgroundColor string   `yaml:"backgroundColor,omitempty"`
	TextColor       string   `yaml:"textColor,omitempty"`
	FontFamily      string   `yaml:"fontFamily,omitempty"`

	Grid      *GridSettings      `yaml:"grid,omitempty"`
	Timeline  *TimelineSettings  `yaml:"timeline,omitempty"`
	Video     *VideoSettings     `yaml:"video,omitempty"`
	Slideshow *SlideshowSettings `yaml:"slideshow,omitempty"`

	Gallery []GalleryImage  `yaml:"gallery,omitempty"`
	Entries []TimelineEntry `yaml:"entries,omitempty"`
	Cards   []Card          `yaml:"cards,omitempty"`
	Stats   []Stat          `yaml:"stats,omitempty"`
	Slides  []Slide         `yaml:"slides,omitempty"`
	Tiles   []MasonryTile   `yaml:"tiles,omitempty"`
}

// Vertical alignment values.
const (
	AlignTop    = "top"
	AlignCenter = "center"
	AlignBottom = "bottom"
)

// Horizontal alignment values.
const (
	AlignLeft  = "left"
	AlignRight = "right"
)

// Position places the text block inside full-bleed style layouts.
type Position struct {
	Vertical   string `yaml:"vertical,omitempty"`   // "top", "center", "bottom"
	Horizontal string `yaml:"horizontal,omitempty"` // "left", "center", "right"
}

// GridSettings configures grid-style layouts.
type GridSettings struct {
	Columns      int   `yaml:"columns,omitempty"`
	Gap          int   `yaml:"gap,omitempty"` // px
	ShowCaptions *bool `yaml:"showCaptions,omitempty"`
}

// Timeline sides.
const (
	SideAlternate = "alternate"
	SideLeft      = "left"
	SideRight     = "right"
)

// TimelineSettings configures the chronological layout.
type TimelineSettings struct {
	Side string `yaml:"side,omitempty"` // "alternate", "left", "right"
}

// VideoSettings configures the video-background layout.
// Nil flags default to true.
type VideoSettings struct {
	Autoplay *bool     `yaml:"autoplay,omitempty"`
	Muted    *bool     `yaml:"muted,omitempty"`
	Loop     *bool     `yaml:"loop,omitempty"`
	Poster   *MediaRef `yaml:"poster,omitempty"`
}

// Slide transitions.
const (
	TransitionSlide = "slide"
	TransitionFade  = "fade"
)

// SlideshowSettings configures the carousel. Nil flags default to true,
// so autoplay, loop, hover pause, arrows, and indicators are on unless
// turned off explicitly.
type SlideshowSettings struct {
	Autoplay       *bool  `yaml:"autoplay,omitempty"`
	Interval       int    `yaml:"interval,omitempty"` // ms (default: 5000)
	Transition     string `yaml:"transition,omitempty"`
	Duration       int    `yaml:"duration,omitempty"` // ms (default: 500)
	PauseOnHover   *bool  `yaml:"pauseOnHover,omitempty"`
	Loop           *bool  `yaml:"loop,omitempty"`
	ShowArrows     *bool  `yaml:"showArrows,omitempty"`
	ShowIndicators *bool  `yaml:"showIndicators,omitempty"`
}

// GalleryImage is one item of the gallery layout.
type GalleryImage struct {
	ID      string    `yaml:"id"`
	Media   *MediaRef `yaml:"media,omitempty"`
	Caption string    `yaml:"caption,omitempty"`
}

// TimelineEntry is one item of the timeline layout.
type TimelineEntry struct {
	ID    string    `yaml:"id"`
	Date  string    `yaml:"date,omitempty"`
	Title string    `yaml:"title,omitempty"`
	Body  string    `yaml:"body,omitempty"`
	Media *MediaRef `yaml:"media,omitempty"`
}

// Card is one item of the cards layout.
type Card struct {
	ID       string    `yaml:"id"`
	Title    string    `yaml:"title,omitempty"`
	Body     string    `yaml:"body,omitempty"`
	Media    *MediaRef `yaml:"media,omitempty"`
	LinkText string    `yaml:"linkText,omitempty"`
	LinkURL  string    `yaml:"linkUrl,omitempty"`
}

// Stat is one item of the statistics layout.
type Stat struct {
	ID     string `yaml:"id"`
	Value  string `yaml:"value"`
	Label  string `yaml:"label,omitempty"`
	Prefix string `yaml:"prefix,omitempty"`
	Suffix string `yaml:"suffix,omitempty"`
}

// Slide is one item of the slideshow layout.
type Slide struct {
	ID      string    `yaml:"id"`
	Media   *MediaRef `yaml:"media,omitempty"`
	Title   string    `yaml:"title,omitempty"`
	Caption string    `yaml:"caption,omitempty"`
}

// MasonryTile is one item of the masonry layout.
type MasonryTile struct {
	ID      string    `yaml:"id"`
	Media   *MediaRef `yaml:"media,omitempty"`
	Caption string    `yaml:"caption,omitempty"`
}

// MapMedia returns a copy of s in which fn has replaced every media
// reference the active layout reads, including the video poster.
// Collections of other layouts are dropped from the copy. s itself is never
// modified, and fn is called with nil for absent references.
func (s Section) MapMedia(fn func(*MediaRef) *MediaRef) Section {
	out := s
	out.Media, out.Video = nil, nil
	out.Gallery, out.Entries, out.Cards, out.Stats, out.Slides, out.Tiles = nil, nil, nil, nil, nil, nil

	switch s.Layout {
	case LayoutFullBleed, LayoutSplitLeft, LayoutSplitRight, LayoutOverlay:
		out.Media = fn(s.Media)
	case LayoutVideoBackground:
		out.Media = fn(s.Media)
		if s.Video != nil {
			v := *s.Video
			v.Poster = fn(s.Video.Poster)
			out.Video = &v
		}
	case LayoutGallery:
		out.Gallery = make([]GalleryImage, len(s.Gallery))
		for i, item := range s.Gallery {
			item.Media = fn(item.Media)
			out.Gallery[i] = item
		}
	case LayoutTimeline:
		out.Entries = make([]TimelineEntry, len(s.Entries))
		for i, item := range s.Entries {
			item.Media = fn(item.Media)
			out.Entries[i] = item
		}
	case LayoutCards:
		out.Cards = make([]Card, len(s.Cards))
		for i, item := range s.Cards {
			item.Media = fn(item.Media)
			out.Cards[i] = item
		}
	case LayoutStats:
		out.Stats = append([]Stat(nil), s.Stats...)
	case LayoutSlideshow:
		out.Slides = make([]Slide, len(s.Slides))
		for i, item := range s.Slides {
			item.Media = fn(item.Media)
			out.Slides[i] = item
		}
	case LayoutMasonry:
		out.Tiles = make([]MasonryTile, len(s.Tiles))
		for i, item := range s.Tiles {
			item.Media = fn(item.Media)
			out.Tiles[i] = item
		}
	}
	return out
}
