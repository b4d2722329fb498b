// Package pipeline assembles exported pages.
//
// The Assembler runs the stages in order for one call:
//   - media resolution for every section, fanned out with bounded parallelism
//   - layout rendering, in input order, one fragment per section
//   - document shell: metadata, stylesheet, font link, fragments, branding
//     footer, runtime script
//
// A failure inside one section degrades that section only. The only errors
// Assemble returns are context cancellation and nothing-rendered failures of
// the shell itself.
package pipeline
