package layout

import (
	"html"
	"strconv"
	"strings"
)

// Column ranges per grid layout: min, max, default.
const (
	galleryMinCols, galleryMaxCols, galleryDefaultCols = 2, 5, 3
	cardsMinCols, cardsMaxCols, cardsDefaultCols       = 2, 4, 3
	statsMinCols, statsMaxCols, statsDefaultCols       = 2, 4, 4
	masonryMinCols, masonryMaxCols, masonryDefaultCols = 2, 5, 3
)

type gallery struct {
	kit
}

func (r gallery) Render(in Input) string {
	cols, gap, captions := gridSettings(in.Section.Grid, galleryMinCols, galleryMaxCols, galleryDefaultCols)

	var sb strings.Builder
	r.begin(&sb, in, "")
	r.header(&sb, in)
	sb.WriteString(`<div class="pe-grid"`)
	attr(&sb, "style", gridStyle(cols, gap))
	sb.WriteString(">\n")
	for _, item := range in.Section.Gallery {
		sb.WriteString(`<figure class="pe-grid-item"`)
		itemID(&sb, item.ID)
		sb.WriteString(">")
		sb.WriteString(mediaHTML(item.Media, in.Styles.Filter, nil))
		if captions && item.Caption != "" {
			sb.WriteString("<figcaption>" + html.EscapeString(item.Caption) + "</figcaption>")
		}
		sb.WriteString("</figure>\n")
	}
	sb.WriteString("</div>\n")
	r.end(&sb)
	return sb.String()
}

type cards struct {
	kit
}

func (r cards) Render(in Input) string {
	cols, gap, _ := gridSettings(in.Section.Grid, cardsMinCols, cardsMaxCols, cardsDefaultCols)

	var sb strings.Builder
	r.begin(&sb, in, "")
	r.header(&sb, in)
	sb.WriteString(`<div class="pe-cards-grid"`)
	attr(&sb, "style", gridStyle(cols, gap))
	sb.WriteString(">\n")
	for _, card := range in.Section.Cards {
		sb.WriteString(`<article class="pe-card"`)
		itemID(&sb, card.ID)
		sb.WriteString(">")
		sb.WriteString(mediaHTML(card.Media, in.Styles.Filter, nil))
		sb.WriteString(`<div class="pe-card-body">`)
		if card.Title != "" {
			sb.WriteString("<h3>" + html.EscapeString(card.Title) + "</h3>")
		}
		if body, _ := r.rt.Render(card.Body); body != "" {
			sb.WriteString(`<div class="pe-body">` + body + `</div>`)
		}
		if card.LinkURL != "" {
			text := card.LinkText
			if text == "" {
				text = DefaultButtonText
			}
			sb.WriteString(`<a class="pe-card-link"`)
			attr(&sb, "href", safeURL(card.LinkURL))
			sb.WriteString(">" + html.EscapeString(text) + "</a>")
		}
		sb.WriteString("</div></article>\n")
	}
	sb.WriteString("</div>\n")
	r.end(&sb)
	return sb.String()
}

type stats struct {
	kit
}

func (r stats) Render(in Input) string {
	cols, gap, labels := gridSettings(in.Section.Grid, statsMinCols, statsMaxCols, statsDefaultCols)

	var sb strings.Builder
	r.begin(&sb, in, "")
	r.header(&sb, in)
	sb.WriteString(`<div class="pe-stats-grid"`)
	attr(&sb, "style", gridStyle(cols, gap))
	sb.WriteString(">\n")
	for _, stat := range in.Section.Stats {
		sb.WriteString(`<div class="pe-stat"`)
		itemID(&sb, stat.ID)
		sb.WriteString(">")
		sb.WriteString(`<div class="pe-stat-value">` +
			html.EscapeString(stat.Prefix+stat.Value+stat.Suffix) + `</div>`)
		if labels && stat.Label != "" {
			sb.WriteString(`<div class="pe-stat-label">` + html.EscapeString(stat.Label) + `</div>`)
		}
		sb.WriteString("</div>\n")
	}
	sb.WriteString("</div>\n")
	r.end(&sb)
	return sb.String()
}

type masonry struct {
	kit
}

func (r masonry) Render(in Input) string {
	cols, gap, captions := gridSettings(in.Section.Grid, masonryMinCols, masonryMaxCols, masonryDefaultCols)
	g := strconv.Itoa(gap) + "px"

	var sb strings.Builder
	r.begin(&sb, in, "")
	r.header(&sb, in)
	sb.WriteString(`<div class="pe-masonry"`)
	attr(&sb, "style", "column-count: "+strconv.Itoa(cols)+"; column-gap: "+g+"; --pe-gap: "+g+";")
	sb.WriteString(">\n")
	for _, tile := range in.Section.Tiles {
		sb.WriteString(`<figure class="pe-masonry-tile"`)
		itemID(&sb, tile.ID)
		sb.WriteString(">")
		sb.WriteString(mediaHTML(tile.Media, in.Styles.Filter, nil))
		if captions && tile.Caption != "" {
			sb.WriteString("<figcaption>" + html.EscapeString(tile.Caption) + "</figcaption>")
		}
		sb.WriteString("</figure>\n")
	}
	sb.WriteString("</div>\n")
	r.end(&sb)
	return sb.String()
}
