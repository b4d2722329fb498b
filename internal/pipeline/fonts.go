package pipeline

import (
	"net/url"
	"strings"

	"github.com/alnah/go-pageexport/internal/model"
)

// googleFontsBase is the only external origin an exported page references.
const googleFontsBase = "https://fonts.googleapis.com/css2"

// systemFamilies are available without a web font request.
var systemFamilies = map[string]bool{
	"system-ui": true, "sans-serif": true, "serif": true, "monospace": true, "cursive": true,
	"arial": true, "helvetica": true, "helvetica neue": true, "georgia": true, "times": true,
	"times new roman": true, "courier": true, "courier new": true, "verdana": true,
	"tahoma": true, "trebuchet ms": true, "-apple-system": true, "segoe ui": true,
}

// webFonts returns the distinct non-system font families used by sections,
// in first-use order.
func webFonts(sections []model.Section) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range sections {
		family := strings.TrimSpace(s.FontFamily)
		key := strings.ToLower(family)
		if family == "" || systemFamilies[key] || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, family)
	}
	return out
}

// fontsURL builds one Google Fonts stylesheet URL for families. Returns ""
// when there is nothing to load.
func fontsURL(families []string) string {
	if len(families) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(googleFontsBase + "?")
	for _, f := range families {
		sb.WriteString("family=" + url.QueryEscape(f) + ":wght@400;700&")
	}
	sb.WriteString("display=swap")
	return sb.String()
}
