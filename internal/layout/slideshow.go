package layout

import (
	"html"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/alnah/go-pageexport/internal/model"
	"github.com/alnah/go-pageexport/internal/script"
)

// Slideshow defaults.
const (
	DefaultSlideInterval = 5000 // ms
	DefaultSlideDuration = 500  // ms
)

// carousel is a SlideshowSettings with every default applied.
type carousel struct {
	autoplay       bool
	interval       int
	transition     string
	duration       int
	pauseOnHover   bool
	loop           bool
	showArrows     bool
	showIndicators bool
}

// slideshow renders a carousel driven by the runtime script through the
// dataset attribute protocol. An empty collection renders a placeholder.
type slideshow struct {
	kit
}

func (r slideshow) Render(in Input) string {
	s := in.Section
	cfg := slideshowSettings(s.Slideshow)
	total := len(s.Slides)

	var sb strings.Builder
	r.begin(&sb, in, "")
	r.heading(&sb, s.Title, false)

	if total == 0 {
		sb.WriteString(`<div class="pe-slideshow-empty">No slides yet</div>` + "\n")
		r.end(&sb)
		return sb.String()
	}

	id := s.ID
	if id == "" {
		id = uuid.NewString()
	}

	sb.WriteString(`<div class="pe-carousel"`)
	attr(&sb, "id", "carousel-"+id)
	sb.WriteString(" " + script.AttrCarousel)
	attr(&sb, script.AttrAutoplay, strconv.FormatBool(cfg.autoplay))
	attr(&sb, script.AttrInterval, strconv.Itoa(cfg.interval))
	attr(&sb, script.AttrTransition, cfg.transition)
	attr(&sb, script.AttrDuration, strconv.Itoa(cfg.duration))
	attr(&sb, script.AttrPauseOnHover, strconv.FormatBool(cfg.pauseOnHover))
	attr(&sb, script.AttrLoop, strconv.FormatBool(cfg.loop))
	attr(&sb, script.AttrTotal, strconv.Itoa(total))
	attr(&sb, script.AttrCurrent, "0")
	sb.WriteString(` aria-roledescription="carousel">` + "\n")

	sb.WriteString(`<div class="pe-carousel-track">` + "\n")
	for i, slide := range s.Slides {
		r.slide(&sb, in, cfg, i, slide)
	}
	sb.WriteString("</div>\n")

	if cfg.showArrows {
		sb.WriteString(`<button type="button" class="pe-carousel-prev" ` + script.AttrPrev + ` aria-label="Previous slide">&#8249;</button>` + "\n")
		sb.WriteString(`<button type="button" class="pe-carousel-next" ` + script.AttrNext + ` aria-label="Next slide">&#8250;</button>` + "\n")
	}
	if cfg.showIndicators {
		sb.WriteString(`<div class="pe-carousel-dots">`)
		for i := range total {
			class := "pe-carousel-dot"
			if i == 0 {
				class += " active"
			}
			sb.WriteString(`<button type="button"`)
			attr(&sb, "class", class)
			attr(&sb, script.AttrDot, strconv.Itoa(i))
			attr(&sb, "aria-label", "Go to slide "+strconv.Itoa(i+1))
			sb.WriteString("></button>")
		}
		sb.WriteString("</div>\n")
	}

	sb.WriteString("</div>\n")
	r.end(&sb)
	return sb.String()
}

func (r slideshow) slide(sb *strings.Builder, in Input, cfg carousel, i int, slide model.Slide) {
	var pos string
	if cfg.transition == model.TransitionFade {
		op := "0"
		if i == 0 {
			op = "1"
		}
		pos = "opacity: " + op + ";"
	} else {
		pos = "transform: translateX(" + strconv.Itoa(i*100) + "%);"
	}

	sb.WriteString(`<div class="pe-slide"`)
	attr(sb, script.AttrSlide, strconv.Itoa(i))
	itemID(sb, slide.ID)
	attr(sb, "aria-hidden", strconv.FormatBool(i != 0))
	attr(sb, "style", pos+" transition-duration: "+strconv.Itoa(cfg.duration)+"ms;")
	sb.WriteString(">")
	sb.WriteString(mediaHTML(slide.Media, in.Styles.Filter, nil))
	if slide.Title != "" || slide.Caption != "" {
		sb.WriteString(`<div class="pe-slide-caption"`)
		if in.Styles.TextShadow != "" {
			attr(sb, "style", in.Styles.TextShadow)
		}
		sb.WriteString(">")
		if slide.Title != "" {
			sb.WriteString("<h3>" + html.EscapeString(slide.Title) + "</h3>")
		}
		if slide.Caption != "" {
			sb.WriteString("<p>" + html.EscapeString(slide.Caption) + "</p>")
		}
		sb.WriteString("</div>")
	}
	sb.WriteString("</div>\n")
}

func slideshowSettings(p *model.SlideshowSettings) carousel {
	if p == nil {
		p = &model.SlideshowSettings{}
	}
	cfg := carousel{
		autoplay:       boolOr(p.Autoplay, true),
		interval:       p.Interval,
		transition:     p.Transition,
		duration:       p.Duration,
		pauseOnHover:   boolOr(p.PauseOnHover, true),
		loop:           boolOr(p.Loop, true),
		showArrows:     boolOr(p.ShowArrows, true),
		showIndicators: boolOr(p.ShowIndicators, true),
	}
	if cfg.interval <= 0 {
		cfg.interval = DefaultSlideInterval
	}
	if cfg.duration <= 0 {
		cfg.duration = DefaultSlideDuration
	}
	if cfg.transition != model.TransitionFade {
		cfg.transition = model.TransitionSlide
	}
	return cfg
}
