package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	pageexport "github.com/alnah/go-pageexport"
	"github.com/alnah/go-pageexport/internal/config"
	"github.com/alnah/go-pageexport/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput     = errors.New("no input specified")
	ErrReadCSS     = errors.New("failed to read CSS file")
	ErrWriteOutput = errors.New("failed to write output file")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// exportParams groups per-document values shared across a batch.
type exportParams struct {
	css            string
	lang           string
	removeBranding bool
	pdf            *pageexport.PDFSettings
	log            *zap.Logger
}

// runExportCmd parses flags, runs the export, and maps the outcome to an
// exit code.
func runExportCmd(args []string, env *Environment) int {
	flags, positional, err := parseExportFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runExport(ctx, positional, flags, env); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runExport orchestrates the export process.
func runExport(ctx context.Context, positionalArgs []string, flags *exportFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	warnUnknownEnvVars(env.Stderr)
	envCfg := loadEnvConfig()

	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath, env)
	if err != nil {
		return err
	}

	// Precedence: CLI flags > env vars > config file > defaults
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := newLogger(env.Stderr, resolveLevel(flags.common, cfg))
	defer func() { _ = log.Sync() }()

	if len(positionalArgs) == 0 {
		return ErrNoInput
	}
	inputPath := positionalArgs[0]

	files, err := discoverFiles(inputPath, cfg.Export.OutputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no project files found in %s", ErrNoInput, inputPath)
	}

	css, err := resolveCSSContent(cfg.Export.CSS)
	if err != nil {
		return err
	}

	pdf, err := buildPDFSettings(cfg)
	if err != nil {
		return err
	}

	poolSize := pageexport.ResolvePoolSize(cfg.Export.Workers)
	log.Debug("starting export",
		zap.Int("files", len(files)),
		zap.Int("workers", poolSize),
		zap.Int("gomaxprocs", runtime.GOMAXPROCS(0)))

	pool := pageexport.NewExporterPool(poolSize, buildExporterOptions(cfg, inputPath, log)...)
	defer func() { _ = pool.Close() }()

	params := &exportParams{
		css:            css,
		lang:           cfg.Export.Lang,
		removeBranding: cfg.Branding.Remove,
		pdf:            pdf,
		log:            log,
	}

	results := exportBatch(ctx, exporterPool{pool}, files, params)

	failed, firstErr := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)
	if failed > 0 {
		return fmt.Errorf("%d export(s) failed: %w", failed, firstErr)
	}
	return nil
}

// loadConfig loads the named config. The flag wins over the env var; with
// neither, the environment's default config is copied.
func loadConfig(flagName, envName string, env *Environment) (*config.Config, error) {
	name := flagName
	if name == "" {
		name = envName
	}
	if name == "" {
		cfg := *env.Config
		return &cfg, nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *exportFlags, cfg *config.Config) {
	if flags.output != "" {
		cfg.Export.OutputDir = flags.output
	}
	if flags.workers > 0 {
		cfg.Export.Workers = flags.workers
	}
	if flags.document.lang != "" {
		cfg.Export.Lang = flags.document.lang
	}
	if flags.document.css != "" {
		cfg.Export.CSS = flags.document.css
	}
	if flags.document.assetPath != "" {
		cfg.Assets.BasePath = flags.document.assetPath
	}

	if flags.media.baseDir != "" {
		cfg.Media.BaseDir = flags.media.baseDir
	}
	if flags.media.sessionDir != "" {
		cfg.Media.SessionDir = flags.media.sessionDir
	}
	if flags.media.fetchTimeout != "" {
		cfg.Media.FetchTimeout = flags.media.fetchTimeout
	}
	if flags.media.maxDimension > 0 {
		cfg.Media.MaxImageDimension = flags.media.maxDimension
	}
	if flags.media.concurrency > 0 {
		cfg.Export.Concurrency = flags.media.concurrency
	}

	if flags.branding.text != "" {
		cfg.Branding.Text = flags.branding.text
	}
	if flags.branding.url != "" {
		cfg.Branding.URL = flags.branding.url
	}
	if flags.branding.disabled {
		cfg.Branding.Remove = true
	}

	if flags.pdf.enabled {
		cfg.PDF.Enabled = true
	}
	if flags.pdf.size != "" {
		cfg.PDF.Size = flags.pdf.size
	}
	if flags.pdf.orientation != "" {
		cfg.PDF.Orientation = flags.pdf.orientation
	}
	if flags.pdf.margin != marginUnset {
		cfg.PDF.Margin = flags.pdf.margin
	}
	if flags.pdf.timeout != "" {
		cfg.PDF.Timeout = flags.pdf.timeout
	}
}

// buildExporterOptions translates config into exporter options. Relative
// media paths resolve from media.baseDir, or from the input directory.
func buildExporterOptions(cfg *config.Config, inputPath string, log *zap.Logger) []pageexport.Option {
	opts := []pageexport.Option{
		pageexport.WithLogger(log),
		pageexport.WithBaseDir(resolveBaseDir(cfg.Media.BaseDir, inputPath)),
		pageexport.WithBranding(cfg.Branding.Text, cfg.Branding.URL),
	}

	if d := cfg.Media.FetchTimeoutDuration(); d > 0 {
		opts = append(opts, pageexport.WithFetchTimeout(d))
	}
	if d := cfg.PDF.TimeoutDuration(); d > 0 {
		opts = append(opts, pageexport.WithPDFTimeout(d))
	}
	if cfg.Media.MaxImageDimension > 0 {
		opts = append(opts, pageexport.WithMaxImageDimension(cfg.Media.MaxImageDimension))
	}
	if cfg.Media.MaxBytes > 0 {
		opts = append(opts, pageexport.WithMaxMediaBytes(cfg.Media.MaxBytes))
	}
	if cfg.Export.Concurrency > 0 {
		opts = append(opts, pageexport.WithConcurrency(cfg.Export.Concurrency))
	}
	if cfg.Media.SessionDir != "" {
		opts = append(opts, pageexport.WithSessionStore(pageexport.NewDirSessionStore(cfg.Media.SessionDir)))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, pageexport.WithAssetPath(cfg.Assets.BasePath))
	}

	return opts
}

// resolveBaseDir returns baseDir, or the input itself when it is a
// directory, or the input's parent directory.
func resolveBaseDir(baseDir, inputPath string) string {
	if baseDir != "" {
		return baseDir
	}
	if info, err := os.Stat(inputPath); err == nil && info.IsDir() {
		return inputPath
	}
	return filepath.Dir(inputPath)
}

// resolveCSSContent reads the stylesheet at path, if any.
func resolveCSSContent(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadCSS, err)
	}
	return string(data), nil
}

// buildPDFSettings returns nil unless snapshots are enabled.
func buildPDFSettings(cfg *config.Config) (*pageexport.PDFSettings, error) {
	if !cfg.PDF.Enabled {
		return nil, nil
	}
	settings := &pageexport.PDFSettings{
		Size:        strings.ToLower(cfg.PDF.Size),
		Orientation: strings.ToLower(cfg.PDF.Orientation),
		Margin:      cfg.PDF.Margin,
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, pageexport.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(triedPaths(err))
	case errors.Is(err, pageexport.ErrProjectDecode):
		return hints.ForProjectDecode()
	case errors.Is(err, pageexport.ErrInvalidAssetPath):
		return hints.ForAssetPath()
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}

// triedPaths extracts the searched locations from a config lookup error.
func triedPaths(err error) []string {
	_, list, ok := strings.Cut(err.Error(), "tried ")
	if !ok {
		return nil
	}
	return strings.Split(list, ", ")
}
