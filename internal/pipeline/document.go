package pipeline

import (
	"html"
	"strings"

	"github.com/alnah/go-pageexport/internal/media"
	"github.com/alnah/go-pageexport/internal/model"
)

// Document defaults.
const (
	DefaultTitle       = "Untitled page"
	DefaultLang        = "en"
	MaxDescriptionRune = 160
	generatorName      = "go-pageexport"
)

// metadata is the head content derived from the title and first section.
type metadata struct {
	Title       string
	Description string
	Image       string
}

// shell holds every part of the final document.
type shell struct {
	Lang      string
	Meta      metadata
	CSS       string
	FontsURL  string
	Fragments []string
	Branding  string
	Script    string
}

func (d *shell) String() string {
	var sb strings.Builder

	sb.WriteString("<!DOCTYPE html>\n")
	sb.WriteString(`<html lang="` + html.EscapeString(d.Lang) + `">` + "\n")
	sb.WriteString("<head>\n")
	sb.WriteString(`<meta charset="utf-8">` + "\n")
	sb.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">` + "\n")
	sb.WriteString("<title>" + html.EscapeString(d.Meta.Title) + "</title>\n")
	meta(&sb, "name", "generator", generatorName)
	if d.Meta.Description != "" {
		meta(&sb, "name", "description", d.Meta.Description)
	}

	meta(&sb, "property", "og:type", "website")
	meta(&sb, "property", "og:title", d.Meta.Title)
	if d.Meta.Description != "" {
		meta(&sb, "property", "og:description", d.Meta.Description)
	}
	card := "summary"
	if d.Meta.Image != "" {
		meta(&sb, "property", "og:image", d.Meta.Image)
		card = "summary_large_image"
	}
	meta(&sb, "name", "twitter:card", card)
	meta(&sb, "name", "twitter:title", d.Meta.Title)
	if d.Meta.Description != "" {
		meta(&sb, "name", "twitter:description", d.Meta.Description)
	}
	if d.Meta.Image != "" {
		meta(&sb, "name", "twitter:image", d.Meta.Image)
	}

	if d.FontsURL != "" {
		sb.WriteString(`<link rel="stylesheet" href="` + html.EscapeString(d.FontsURL) + `">` + "\n")
	}
	sb.WriteString("<style>\n" + sanitizeCSS(d.CSS) + "\n</style>\n")
	sb.WriteString("</head>\n")

	sb.WriteString("<body>\n")
	sb.WriteString(`<main class="pe-page">` + "\n")
	for _, f := range d.Fragments {
		sb.WriteString(f)
	}
	sb.WriteString("</main>\n")
	if d.Branding != "" {
		sb.WriteString(d.Branding + "\n")
	}
	if d.Script != "" {
		sb.WriteString(d.Script + "\n")
	}
	sb.WriteString("</body>\n</html>\n")

	return sb.String()
}

func meta(sb *strings.Builder, key, name, content string) {
	sb.WriteString(`<meta ` + key + `="` + name + `" content="` + html.EscapeString(content) + `">` + "\n")
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// previewImage returns the remote locator of the first image s shows, the
// only form a link preview crawler can fetch. It reads s as given, before
// resolution inlines anything. Inline and session media give no preview.
func previewImage(s model.Section) string {
	var found string
	s.MapMedia(func(r *model.MediaRef) *model.MediaRef {
		if found == "" && r != nil && !r.IsVideo() && media.Classify(r.Src) == media.KindRemote {
			found = strings.TrimSpace(r.Src)
		}
		return r
	})
	return found
}

// sanitizeLang keeps a BCP 47-looking tag or returns the default.
func sanitizeLang(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" || len(lang) > 35 {
		return DefaultLang
	}
	for _, r := range lang {
		if !(r == '-' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return DefaultLang
		}
	}
	return lang
}
