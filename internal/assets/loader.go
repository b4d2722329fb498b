package assets

// Built-in asset names.
const (
	StyleBase        = "base"
	StyleAnimations  = "animations"
	TemplateBranding = "branding"
	ScriptCarousel   = "carousel"
	ScriptReveal     = "reveal"
)

// Loader defines the contract for loading styles, templates, and scripts.
// Implementations may load from embedded assets, filesystem, S3, database, etc.
type Loader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)

	// LoadTemplate loads an HTML template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	LoadTemplate(name string) (string, error)

	// LoadScript loads a browser script by name (without .js extension).
	// Returns ErrScriptNotFound if the script doesn't exist.
	LoadScript(name string) (string, error)
}

// kind describes one asset family: its directory, extension and not-found error.
type kind struct {
	dir      string
	ext      string
	notFound error
}

var (
	styleKind    = kind{dir: "styles", ext: ".css", notFound: ErrStyleNotFound}
	templateKind = kind{dir: "templates", ext: ".html", notFound: ErrTemplateNotFound}
	scriptKind   = kind{dir: "scripts", ext: ".js", notFound: ErrScriptNotFound}
)
