// Package assets provides the static stylesheet, HTML templates, and browser
// scripts embedded in every exported page.
//
// # Loader Architecture
//
//	Loader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in assets)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── Resolver          - combines both with custom-first fallback
//
// Assets are read once when an exporter is built; the pipeline never
// re-reads or mutates them per call.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css
//	├── templates/
//	│   └── {name}.html
//	└── scripts/
//	    └── {name}.js
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
