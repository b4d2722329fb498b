package main

// Notes:
// - This file contains test helpers and mocks used across CLI tests.
// No coverage gaps: this is test infrastructure, not production code.

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	pageexport "github.com/alnah/go-pageexport"
	"github.com/alnah/go-pageexport/internal/config"
)

// ---------------------------------------------------------------------------
// Environment
// ---------------------------------------------------------------------------

// testEnv returns an environment writing into buffers.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Environment{
		Now:    func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) },
		Stdout: &stdout,
		Stderr: &stderr,
		Config: config.DefaultConfig(),
	}, &stdout, &stderr
}

// writeFile creates path (and its parents) with content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
}

const minimalProject = `title: Spring launch
sections:
  - id: intro
    layout: centered-text
    title: Hello
    body: "Welcome **everyone**"
`

// ---------------------------------------------------------------------------
// Mock Implementations
// ---------------------------------------------------------------------------

// mockExporter returns a fixed result and records inputs.
type mockExporter struct {
	mu     sync.Mutex
	html   []byte
	pdf    []byte
	err    error
	delay  time.Duration
	inputs []pageexport.Input
}

func (m *mockExporter) Export(ctx context.Context, in pageexport.Input) (*pageexport.Result, error) {
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	m.mu.Lock()
	m.inputs = append(m.inputs, in)
	m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	res := &pageexport.Result{HTML: m.html, Filename: "page.html"}
	if in.PDF != nil {
		res.PDF = m.pdf
	}
	return res, nil
}

// mockPool hands out a single shared exporter.
type mockPool struct {
	exp        PageExporter
	size       int
	acquireErr error

	mu       sync.Mutex
	acquired int
	released int
}

func (p *mockPool) Acquire() (PageExporter, error) {
	if p.acquireErr != nil {
		return nil, p.acquireErr
	}
	p.mu.Lock()
	p.acquired++
	p.mu.Unlock()
	return p.exp, nil
}

func (p *mockPool) Release(PageExporter) {
	p.mu.Lock()
	p.released++
	p.mu.Unlock()
}

func (p *mockPool) Size() int { return p.size }
