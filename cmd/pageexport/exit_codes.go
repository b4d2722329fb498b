package main

import (
	"errors"
	"os"

	pageexport "github.com/alnah/go-pageexport"
	"github.com/alnah/go-pageexport/internal/config"
	flag "github.com/spf13/pflag"
)

// Exit codes for the pageexport CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful export
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or project file
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, pageexport.ErrBrowserConnect) ||
		errors.Is(err, pageexport.ErrPageCreate) ||
		errors.Is(err, pageexport.ErrPageLoad) ||
		errors.Is(err, pageexport.ErrPDFGeneration) {
		return ExitBrowser
	}

	// Usage/config/validation errors (exit 2). Checked before I/O because a
	// missing config file is a usage problem.
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, pageexport.ErrProjectDecode) ||
		errors.Is(err, pageexport.ErrInvalidPageSize) ||
		errors.Is(err, pageexport.ErrInvalidOrientation) ||
		errors.Is(err, pageexport.ErrInvalidMargin) ||
		errors.Is(err, pageexport.ErrInvalidAssetPath) ||
		errors.Is(err, pageexport.ErrStyleNotFound) ||
		errors.Is(err, pageexport.ErrTemplateNotFound) ||
		errors.Is(err, pageexport.ErrScriptNotFound) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, flag.ErrHelp) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, pageexport.ErrProjectRead) ||
		errors.Is(err, ErrReadCSS) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	return ExitGeneral
}
