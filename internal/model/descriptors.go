package model

// TextShadow adds a drop shadow to section text.
// Blur of 0 means default (4px).
type TextShadow struct {
	Enabled bool    `yaml:"enabled"`
	X       float64 `yaml:"x,omitempty"`
	Y       float64 `yaml:"y,omitempty"`
	Blur    float64 `yaml:"blur,omitempty"`
	Color   string  `yaml:"color,omitempty"`
}

// Gradient lays a linear gradient over section media.
type Gradient struct {
	Enabled   bool    `yaml:"enabled"`
	Direction string  `yaml:"direction,omitempty"` // CSS direction, e.g. "to bottom" or "45deg"
	From      string  `yaml:"from,omitempty"`
	To        string  `yaml:"to,omitempty"`
	Opacity   float64 `yaml:"opacity,omitempty"` // 0 means 1
}

// Filter applies CSS filters to section media.
// Brightness, Contrast, and Saturate are percentages where 0 means 100.
type Filter struct {
	Enabled    bool    `yaml:"enabled"`
	Blur       float64 `yaml:"blur,omitempty"` // px
	Brightness float64 `yaml:"brightness,omitempty"`
	Contrast   float64 `yaml:"contrast,omitempty"`
	Saturate   float64 `yaml:"saturate,omitempty"`
	Grayscale  float64 `yaml:"grayscale,omitempty"`
	Sepia      float64 `yaml:"sepia,omitempty"`
}

// Animation kinds. Each has a matching @keyframes rule in the stylesheet.
const (
	AnimationFadeIn     = "fade-in"
	AnimationSlideUp    = "slide-up"
	AnimationSlideLeft  = "slide-left"
	AnimationSlideRight = "slide-right"
	AnimationZoomIn     = "zoom-in"
)

// AnimationKinds lists every supported animation kind.
var AnimationKinds = []string{
	AnimationFadeIn,
	AnimationSlideUp,
	AnimationSlideLeft,
	AnimationSlideRight,
	AnimationZoomIn,
}

// Animation plays an entrance animation when the section scrolls into view.
type Animation struct {
	Enabled  bool    `yaml:"enabled"`
	Kind     string  `yaml:"kind,omitempty"`
	Duration float64 `yaml:"duration,omitempty"` // seconds (default: 0.8)
	Delay    float64 `yaml:"delay,omitempty"`    // seconds
	Easing   string  `yaml:"easing,omitempty"`
}

// Button styles.
const (
	ButtonPrimary = "primary"
	ButtonOutline = "outline"
)

// Button is a call-to-action link rendered below section text.
type Button struct {
	Enabled bool   `yaml:"enabled"`
	Label   string `yaml:"label,omitempty"`
	URL     string `yaml:"url,omitempty"`
	Style   string `yaml:"style,omitempty"` // "primary", "outline"
	Color   string `yaml:"color,omitempty"`
}

// Active reports whether the descriptor is present and enabled.
func (t *TextShadow) Active() bool { return t != nil && t.Enabled }

// Active reports whether the descriptor is present and enabled.
func (g *Gradient) Active() bool { return g != nil && g.Enabled }

// Active reports whether the descriptor is present and enabled.
func (f *Filter) Active() bool { return f != nil && f.Enabled }

// Active reports whether the descriptor is present and enabled.
func (a *Animation) Active() bool { return a != nil && a.Enabled }

// Active reports whether the descriptor is present and enabled.
func (b *Button) Active() bool { return b != nil && b.Enabled }
