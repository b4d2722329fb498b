// Package style composes CSS declarations from a section's optional visual
// features. Each builder is pure: a nil or disabled descriptor yields "".
package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alnah/go-pageexport/internal/model"
)

// Defaults applied when a descriptor leaves a parameter at zero.
const (
	DefaultShadowBlur     = 4.0
	DefaultShadowColor    = "rgba(0,0,0,0.5)"
	DefaultGradientDir    = "to bottom"
	DefaultGradientFrom   = "rgba(0,0,0,0.6)"
	DefaultGradientTo     = "rgba(0,0,0,0)"
	DefaultAnimationKind  = model.AnimationFadeIn
	DefaultAnimationSecs  = 0.8
	DefaultAnimationEase  = "ease-out"
	neutralFilterPercent  = 100.0
	animationFillMode     = "both"
	animationPausedMarker = "paused"
)

// Set bundles every composed declaration for one section.
type Set struct {
	Filter     string
	Gradient   string
	TextShadow string
	Animation  string
	Position   string
}

// Compose runs every builder against s.
func Compose(s model.Section) Set {
	return Set{
		Filter:     Filter(s.Filter),
		Gradient:   Gradient(s.Gradient),
		TextShadow: TextShadow(s.TextShadow),
		Animation:  Animation(s.Animation),
		Position:   PositionClasses(s.Position),
	}
}

// Filter builds a filter declaration with only the non-neutral functions.
func Filter(f *model.Filter) string {
	if !f.Active() {
		return ""
	}

	var parts []string
	if f.Blur > 0 {
		parts = append(parts, "blur("+num(f.Blur)+"px)")
	}
	if p := percentOrNeutral(f.Brightness); p != neutralFilterPercent {
		parts = append(parts, "brightness("+num(p)+"%)")
	}
	if p := percentOrNeutral(f.Contrast); p != neutralFilterPercent {
		parts = append(parts, "contrast("+num(p)+"%)")
	}
	if p := percentOrNeutral(f.Saturate); p != neutralFilterPercent {
		parts = append(parts, "saturate("+num(p)+"%)")
	}
	if f.Grayscale > 0 {
		parts = append(parts, "grayscale("+num(clamp(f.Grayscale, 0, 100))+"%)")
	}
	if f.Sepia > 0 {
		parts = append(parts, "sepia("+num(clamp(f.Sepia, 0, 100))+"%)")
	}

	if len(parts) == 0 {
		return ""
	}
	return "filter: " + strings.Join(parts, " ") + ";"
}

// Gradient builds the background of the overlay layer placed above media.
func Gradient(g *model.Gradient) string {
	if !g.Active() {
		return ""
	}

	dir := orDefault(g.Direction, DefaultGradientDir)
	from := orDefault(g.From, DefaultGradientFrom)
	to := orDefault(g.To, DefaultGradientTo)

	decl := fmt.Sprintf("background-image: linear-gradient(%s, %s, %s);", EscapeValue(dir), EscapeValue(from), EscapeValue(to))
	if g.Opacity > 0 && g.Opacity < 1 {
		decl += " opacity: " + num(g.Opacity) + ";"
	}
	return decl
}

// TextShadow builds a text-shadow declaration.
func TextShadow(t *model.TextShadow) string {
	if !t.Active() {
		return ""
	}

	blur := t.Blur
	if blur <= 0 {
		blur = DefaultShadowBlur
	}
	color := orDefault(t.Color, DefaultShadowColor)

	return fmt.Sprintf("text-shadow: %spx %spx %spx %s;", num(t.X), num(t.Y), num(blur), EscapeValue(color))
}

// Animation builds the animation longhands for a scroll-revealed section.
// The play state starts paused; the stylesheet resumes it once the section
// gains the "visible" class.
func Animation(a *model.Animation) string {
	if !a.Active() {
		return ""
	}

	kind := DefaultAnimationKind
	if isKnownAnimation(a.Kind) {
		kind = a.Kind
	}
	duration := a.Duration
	if duration <= 0 {
		duration = DefaultAnimationSecs
	}
	delay := a.Delay
	if delay < 0 {
		delay = 0
	}
	easing := orDefault(a.Easing, DefaultAnimationEase)

	var buf strings.Builder
	buf.WriteString("animation-name: pe-" + kind + ";")
	buf.WriteString(" animation-duration: " + num(duration) + "s;")
	buf.WriteString(" animation-delay: " + num(delay) + "s;")
	buf.WriteString(" animation-timing-function: " + EscapeValue(easing) + ";")
	buf.WriteString(" animation-fill-mode: " + animationFillMode + ";")
	buf.WriteString(" animation-play-state: " + animationPausedMarker + ";")
	return buf.String()
}

// PositionClasses maps a vertical/horizontal pair to alignment classes.
// Unknown or empty values are treated as center.
func PositionClasses(p model.Position) string {
	items := "items-center"
	text := "text-center"
	switch p.Horizontal {
	case model.AlignLeft:
		items, text = "items-start", "text-left"
	case model.AlignRight:
		items, text = "items-end", "text-right"
	}

	justify := "justify-center"
	switch p.Vertical {
	case model.AlignTop:
		justify = "justify-start"
	case model.AlignBottom:
		justify = "justify-end"
	}

	return items + " " + justify + " " + text
}

// SystemFontStack is used when a section names no font family.
const SystemFontStack = `-apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif`

// FontStack puts family in front of the system stack.
func FontStack(family string) string {
	family = strings.Trim(EscapeValue(strings.TrimSpace(family)), "'")
	if family == "" {
		return SystemFontStack
	}
	return "'" + family + "', " + SystemFontStack
}

// HeightValue maps a section height mode to a min-height value. Empty means
// full; "auto" yields "" so no minimum is set; anything else is taken as a
// CSS length.
func HeightValue(mode string) string {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", model.HeightFull:
		return "100vh"
	case model.HeightLarge:
		return "75vh"
	case model.HeightMedium:
		return "50vh"
	case model.HeightAuto:
		return ""
	default:
		return EscapeValue(strings.TrimSpace(mode))
	}
}

func isKnownAnimation(kind string) bool {
	for _, k := range model.AnimationKinds {
		if k == kind {
			return true
		}
	}
	return false
}

func percentOrNeutral(v float64) float64 {
	if v <= 0 {
		return neutralFilterPercent
	}
	return v
}

func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s == "" {
		return def
	}
	return s
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}

// num formats a float without trailing zeros ("4", "0.8").
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// EscapeValue strips characters that could terminate a declaration or the
// surrounding style attribute.
func EscapeValue(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ';', '{', '}', '<', '>', '"', '\\':
			return -1
		}
		return r
	}, s)
}
