package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// marginUnset detects if --margin was explicitly set, since 0 is valid.
const marginUnset = -1.0

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// mediaFlags holds media resolution flags.
type mediaFlags struct {
	baseDir      string
	sessionDir   string
	fetchTimeout string
	maxDimension int
	concurrency  int
}

// brandingFlags holds footer attribution flags.
type brandingFlags struct {
	text     string
	url      string
	disabled bool
}

// pdfFlags holds print snapshot flags.
type pdfFlags struct {
	enabled     bool
	size        string
	orientation string
	margin      float64
	timeout     string
}

// documentFlags holds document-wide defaults.
type documentFlags struct {
	lang      string
	css       string
	assetPath string
}

// exportFlags holds all flags for the export command.
type exportFlags struct {
	common   commonFlags
	output   string
	workers  int
	media    mediaFlags
	branding brandingFlags
	pdf      pdfFlags
	document documentFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
}

// addMediaFlags adds media flags to a FlagSet.
func addMediaFlags(fs *flag.FlagSet, f *mediaFlags) {
	fs.StringVar(&f.baseDir, "base-dir", "", "directory relative media paths are read from")
	fs.StringVar(&f.sessionDir, "session-dir", "", "directory backing session media handles")
	fs.StringVar(&f.fetchTimeout, "fetch-timeout", "", "remote media fetch timeout (e.g., 10s)")
	fs.IntVar(&f.maxDimension, "max-image-size", 0, "downscale images wider or taller than this (px)")
	fs.IntVar(&f.concurrency, "concurrency", 0, "media fetches in flight per export (0 = auto)")
}

// addBrandingFlags adds branding flags to a FlagSet.
func addBrandingFlags(fs *flag.FlagSet, f *brandingFlags) {
	fs.StringVar(&f.text, "branding-text", "", "footer attribution text")
	fs.StringVar(&f.url, "branding-url", "", "footer attribution link")
	fs.BoolVar(&f.disabled, "no-branding", false, "omit the footer attribution")
}

// addPDFFlags adds snapshot flags to a FlagSet.
func addPDFFlags(fs *flag.FlagSet, f *pdfFlags) {
	fs.BoolVar(&f.enabled, "pdf", false, "also write a PDF snapshot")
	fs.StringVarP(&f.size, "page-size", "p", "", "snapshot page size: letter, a4, legal")
	fs.StringVar(&f.orientation, "orientation", "", "snapshot orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", marginUnset, "snapshot margin in inches (0-3)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "snapshot timeout (e.g., 30s, 2m)")
}

// addDocumentFlags adds document flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.lang, "lang", "", "default document language")
	fs.StringVar(&f.css, "css", "", "stylesheet file appended to every document")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// parseExportFlags parses export command flags and returns positional args.
func parseExportFlags(args []string, usage io.Writer) (*exportFlags, []string, error) {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &exportFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	addCommonFlags(fs, &f.common)
	addMediaFlags(fs, &f.media)
	addBrandingFlags(fs, &f.branding)
	addPDFFlags(fs, &f.pdf)
	addDocumentFlags(fs, &f.document)

	fs.Usage = func() { printExportUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
