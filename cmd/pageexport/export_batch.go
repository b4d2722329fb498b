package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	pageexport "github.com/alnah/go-pageexport"
)

// PageExporter is the slice of pageexport.Exporter the batch needs.
type PageExporter interface {
	Export(ctx context.Context, input pageexport.Input) (*pageexport.Result, error)
}

// Compile-time interface implementation check.
var _ PageExporter = (*pageexport.Exporter)(nil)

// Pool abstracts exporter pool operations for testability.
type Pool interface {
	Acquire() (PageExporter, error)
	Release(PageExporter)
	Size() int
}

// exporterPool adapts *pageexport.ExporterPool to Pool.
type exporterPool struct {
	*pageexport.ExporterPool
}

// Compile-time check that exporterPool implements Pool.
var _ Pool = exporterPool{}

func (p exporterPool) Acquire() (PageExporter, error) {
	exp, err := p.ExporterPool.Acquire()
	if err != nil {
		return nil, err
	}
	return exp, nil
}

func (p exporterPool) Release(exp PageExporter) {
	if e, ok := exp.(*pageexport.Exporter); ok {
		p.ExporterPool.Release(e)
	}
}

// ExportResult holds the outcome of a single export.
type ExportResult struct {
	InputPath  string
	OutputPath string
	PDFPath    string // empty unless a snapshot was written
	Err        error
	Duration   time.Duration
}

// exportBatch processes files concurrently using the exporter pool.
// Results keep the order of files.
func exportBatch(ctx context.Context, pool Pool, files []FileToExport, params *exportParams) []ExportResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := pool.Size()
	if concurrency > len(files) {
		concurrency = len(files)
	}

	results := make([]ExportResult, len(files))
	jobs := make(chan int, len(files))

	var wg sync.WaitGroup
	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = exportWithPool(ctx, pool, files[i], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// exportWithPool borrows an exporter for one file.
func exportWithPool(ctx context.Context, pool Pool, f FileToExport, params *exportParams) ExportResult {
	if err := ctx.Err(); err != nil {
		return ExportResult{InputPath: f.InputPath, OutputPath: f.OutputPath, Err: err}
	}

	exp, err := pool.Acquire()
	if err != nil {
		return ExportResult{InputPath: f.InputPath, OutputPath: f.OutputPath, Err: err}
	}
	defer pool.Release(exp)

	return exportFile(ctx, exp, f, params)
}

// exportFile processes a single file and returns the result.
func exportFile(ctx context.Context, exp PageExporter, f FileToExport, params *exportParams) ExportResult {
	start := time.Now()
	result := ExportResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	fail := func(err error) ExportResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	project, err := pageexport.LoadProject(f.InputPath)
	if err != nil {
		return fail(err)
	}

	input := buildInput(project, params, f.InputPath)

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		return fail(fmt.Errorf("%w: creating output directory: %w", ErrWriteOutput, err))
	}

	res, err := exp.Export(ctx, input)
	if err != nil {
		return fail(err)
	}

	// #nosec G306 -- exported pages are meant to be readable
	if err := os.WriteFile(f.OutputPath, res.HTML, filePermissions); err != nil {
		return fail(fmt.Errorf("%w: %w", ErrWriteOutput, err))
	}

	if res.PDF != nil {
		result.PDFPath = f.PDFPath()
		// #nosec G306 -- PDFs are meant to be readable
		if err := os.WriteFile(result.PDFPath, res.PDF, filePermissions); err != nil {
			return fail(fmt.Errorf("%w: %w", ErrWriteOutput, err))
		}
	}

	result.Duration = time.Since(start)
	return result
}

// buildInput applies batch defaults to a project. The project's own CSS
// follows the batch stylesheet so it can override it; its language wins over
// the batch default; either side can remove branding.
func buildInput(p *pageexport.Project, params *exportParams, path string) pageexport.Input {
	input := p.Input()

	if params.css != "" {
		if input.CSS != "" {
			input.CSS = params.css + "\n" + input.CSS
		} else {
			input.CSS = params.css
		}
	}
	if input.Lang == "" {
		input.Lang = params.lang
	}
	input.RemoveBranding = input.RemoveBranding || params.removeBranding
	input.PDF = params.pdf

	if params.log != nil && params.log.Core().Enabled(zap.DebugLevel) {
		log := params.log.With(zap.String("file", path))
		input.Progress = func(percent int) {
			log.Debug("progress", zap.Int("percent", percent))
		}
	}

	return input
}

// ResultSummary holds the count of succeeded and failed exports.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed exports.
func countResults(results []ExportResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResultsWithWriter outputs export results using the provided writers.
// Returns the number of failures and the first failure.
func printResultsWithWriter(results []ExportResult, quiet, verbose bool, env *Environment) (int, error) {
	summary := countResults(results)
	var firstErr error

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			if firstErr == nil {
				firstErr = r.Err
			}
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
		if r.PDFPath != "" {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.PDFPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed, firstErr
}
