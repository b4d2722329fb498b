package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
)

// ErrBrandingRender indicates the branding template failed to execute.
var ErrBrandingRender = errors.New("branding template rendering failed")

// Default branding values.
const (
	DefaultBrandingText = "Built with go-pageexport"
	DefaultBrandingURL  = "https://github.com/alnah/go-pageexport"
)

// BrandingData fills the branding footer template. Text must appear in the
// rendered footer exactly once.
type BrandingData struct {
	Text string
	URL  string
}

// Branding renders the footer shown unless a caller removes it.
type Branding struct {
	tmpl *template.Template
	data BrandingData
}

// NewBranding parses the footer template. Empty fields in data take the
// defaults.
func NewBranding(tmplContent string, data BrandingData) (*Branding, error) {
	tmpl, err := template.New("branding").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing branding template: %w", err)
	}
	if data.Text == "" {
		data.Text = DefaultBrandingText
	}
	if data.URL == "" {
		data.URL = DefaultBrandingURL
	}
	return &Branding{tmpl: tmpl, data: data}, nil
}

// Text returns the branding string written into the footer.
func (b *Branding) Text() string {
	return b.data.Text
}

// Render executes the footer template.
func (b *Branding) Render() (string, error) {
	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, b.data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrBrandingRender, err)
	}
	return buf.String(), nil
}
