package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pageexport <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  export     Export project files to standalone HTML pages")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'pageexport help <command>' for details on a specific command.")
}

// printExportUsage prints usage for the export command.
func printExportUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pageexport export <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Export YAML project files to self-contained HTML documents.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Project file (.yaml, .yml) or directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>         Output .html file or directory")
	fmt.Fprintln(w, "  -c, --config <name>         Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>           Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --lang <s>              Default document language")
	fmt.Fprintln(w, "      --css <path>            Stylesheet appended to every document")
	fmt.Fprintln(w, "      --asset-path <dir>      Override built-in styles, templates, and scripts")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Media:")
	fmt.Fprintln(w, "      --base-dir <dir>        Directory relative media paths are read from")
	fmt.Fprintln(w, "      --session-dir <dir>     Directory backing session media handles")
	fmt.Fprintln(w, "      --fetch-timeout <d>     Remote media fetch timeout (e.g., 10s)")
	fmt.Fprintln(w, "      --max-image-size <px>   Downscale larger images")
	fmt.Fprintln(w, "      --concurrency <n>       Media fetches in flight per export")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Branding:")
	fmt.Fprintln(w, "      --branding-text <s>     Footer attribution text")
	fmt.Fprintln(w, "      --branding-url <url>    Footer attribution link")
	fmt.Fprintln(w, "      --no-branding           Omit the footer attribution")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "PDF Snapshot:")
	fmt.Fprintln(w, "      --pdf                   Also write a PDF next to each page")
	fmt.Fprintln(w, "  -p, --page-size <s>         Page size: letter, a4, legal")
	fmt.Fprintln(w, "      --orientation <s>       Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>            Margin in inches (0-3)")
	fmt.Fprintln(w, "  -t, --timeout <d>           Snapshot timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                 Only show errors")
	fmt.Fprintln(w, "  -v, --verbose               Show detailed progress")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  PAGEEXPORT_CONFIG, PAGEEXPORT_OUTPUT_DIR, PAGEEXPORT_WORKERS, PAGEEXPORT_LANG,")
	fmt.Fprintln(w, "  PAGEEXPORT_LOG_LEVEL, PAGEEXPORT_BASE_DIR, PAGEEXPORT_SESSION_DIR,")
	fmt.Fprintln(w, "  PAGEEXPORT_FETCH_TIMEOUT, PAGEEXPORT_ASSET_PATH, PAGEEXPORT_BRANDING_TEXT,")
	fmt.Fprintln(w, "  PAGEEXPORT_BRANDING_URL, PAGEEXPORT_NO_BRANDING, PAGEEXPORT_PAGE_SIZE,")
	fmt.Fprintln(w, "  PAGEEXPORT_TIMEOUT")
	fmt.Fprintln(w, "  Flags override environment variables, which override the config file.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "export":
		printExportUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: pageexport version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: pageexport help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
