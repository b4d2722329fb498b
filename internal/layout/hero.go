package layout

import (
	"strconv"
	"strings"

	"github.com/alnah/go-pageexport/internal/model"
)

// hero renders full-bleed and overlay sections: media fills the section,
// a color layer sits above it, and the text sits above both.
type hero struct {
	kit
	defaultOpacity float64
}

func (r hero) Render(in Input) string {
	var sb strings.Builder
	r.begin(&sb, in, "")
	r.layers(&sb, in, mediaHTML(in.Media, in.Styles.Filter, nil), r.defaultOpacity)
	r.content(&sb, in)
	r.end(&sb)
	return sb.String()
}

// layers writes the media, gradient, and scrim layers.
func (k kit) layers(sb *strings.Builder, in Input, media string, defaultOpacity float64) {
	if media != "" {
		sb.WriteString(`<div class="pe-media-layer">` + media + "</div>\n")
	}
	if in.Styles.Gradient != "" {
		sb.WriteString(`<div class="pe-gradient"`)
		attr(sb, "style", in.Styles.Gradient)
		sb.WriteString("></div>\n")
	}
	if op := overlayOpacity(in.Section.OverlayOpacity, defaultOpacity); op > 0 {
		sb.WriteString(`<div class="pe-scrim"`)
		attr(sb, "style", "opacity: "+strconv.FormatFloat(op, 'f', -1, 64)+";")
		sb.WriteString("></div>\n")
	}
}

// content writes the positioned text block.
func (k kit) content(sb *strings.Builder, in Input) {
	sb.WriteString(`<div`)
	attr(sb, "class", "pe-content "+in.Styles.Position)
	sb.WriteString(">\n")
	k.text(sb, in, true)
	sb.WriteString("</div>\n")
}

// videoBackground is full-bleed with a video element and an optional poster.
type videoBackground struct {
	kit
}

func (r videoBackground) Render(in Input) string {
	flags := videoFlags{autoplay: true, muted: true, loop: true}
	if v := in.Section.Video; v != nil {
		flags.autoplay = boolOr(v.Autoplay, true)
		flags.muted = boolOr(v.Muted, true)
		flags.loop = boolOr(v.Loop, true)
	}
	if in.Poster != nil {
		flags.poster = in.Poster.Src
	}

	var media string
	switch {
	case in.Media == nil:
		// nothing to show
	case in.Media.Src == "" && flags.poster != "":
		// The clip is gone but the still survived.
		media = mediaHTML(&model.MediaRef{Kind: model.MediaImage, Src: flags.poster, Alt: in.Media.Alt}, in.Styles.Filter, nil)
	default:
		ref := *in.Media
		ref.Kind = model.MediaVideo
		media = mediaHTML(&ref, in.Styles.Filter, &flags)
	}

	var sb strings.Builder
	r.begin(&sb, in, "")
	r.layers(&sb, in, media, 0.3)
	r.content(&sb, in)
	r.end(&sb)
	return sb.String()
}

func overlayOpacity(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return min(max(*v, 0), 1)
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
