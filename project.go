package pageexport

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/alnah/go-pageexport/internal/yamlutil"
)

// Project is a page saved as YAML:
//
//	title: Spring launch
//	lang: en
//	removeBranding: false
//	sections:
//	  - id: hero
//	    layout: full-bleed
//	    title: Hello
//	    media: {src: images/hero.jpg, alt: Storefront}
//
// Unknown fields are rejected so typos surface instead of silently
// rendering defaults.
type Project struct {
	Title          string    `yaml:"title,omitempty"`
	Lang           string    `yaml:"lang,omitempty"`
	CSS            string    `yaml:"css,omitempty"`
	RemoveBranding bool      `yaml:"removeBranding,omitempty"`
	Sections       []Section `yaml:"sections"`
}

// LoadProject reads and decodes a project file. This is the only step of an
// export that fails on bad content: once decoded, every section renders.
// Filesystem failures wrap ErrProjectRead (and the underlying fs error);
// anything else wraps ErrProjectDecode.
func LoadProject(path string) (*Project, error) {
	var p Project
	if err := yamlutil.ReadFileStrict(path, &p); err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return nil, fmt.Errorf("%w: %w", ErrProjectRead, err)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrProjectDecode, path, err)
	}
	return &p, nil
}

// ParseProject decodes a project from YAML bytes.
func ParseProject(data []byte) (*Project, error) {
	var p Project
	if err := yamlutil.UnmarshalStrict(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProjectDecode, err)
	}
	return &p, nil
}

// Input converts the project to export input.
func (p *Project) Input() Input {
	return Input{
		Sections:       p.Sections,
		Title:          p.Title,
		CSS:            p.CSS,
		Lang:           p.Lang,
		RemoveBranding: p.RemoveBranding,
	}
}
