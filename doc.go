// Package pageexport turns an ordered list of page builder sections into one
// self-contained HTML document.
//
// # Quick Start
//
// Create an exporter, export sections, and close when done:
//
//	exp, err := pageexport.NewExporter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer exp.Close()
//
//	result, err := exp.Export(ctx, pageexport.Input{
//	    Sections: []pageexport.Section{
//	        {ID: "1", Layout: pageexport.LayoutFullBleed, Title: "Hello"},
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile(result.Filename, result.HTML, 0644)
//
// The document carries its stylesheet, media, and interactive runtime
// inline. The only external reference is an optional web font stylesheet.
//
// # Export Pipeline
//
//  1. Media resolution: remote images and videos are fetched and inlined as
//     data URIs, session handles are dereferenced, local files are read
//  2. Style composition: enabled visual descriptors become CSS declarations
//  3. Layout rendering: each section renders through one of 13 layouts
//  4. Assembly: metadata, stylesheet, fragments, branding, and the runtime
//     script are wrapped into the document shell
//
// Missing or unreachable media never fails an export. A remote reference
// that cannot be fetched stays as given, and a session handle that cannot be
// opened renders as a placeholder.
//
// # Configuration
//
// Use functional options to customize the exporter:
//
//	exp, err := pageexport.NewExporter(
//	    pageexport.WithLogger(logger),
//	    pageexport.WithFetchTimeout(5 * time.Second),
//	    pageexport.WithBaseDir("site"),
//	    pageexport.WithAssetPath("/path/to/custom/assets"),
//	)
//
// # Parallel Processing
//
// An Exporter is safe for concurrent Export calls, except for PDF snapshots,
// which share one browser. For batch work with snapshots use ExporterPool:
//
//	pool := pageexport.NewExporterPool(pageexport.ResolvePoolSize(0))
//	defer pool.Close()
//
//	exp := pool.Acquire()
//	defer pool.Release(exp)
//
// # Custom Assets
//
// The stylesheet, branding template, and runtime scripts can be overridden
// from a directory laid out as styles/, templates/, and scripts/. Missing
// files fall back to the embedded defaults.
package pageexport
