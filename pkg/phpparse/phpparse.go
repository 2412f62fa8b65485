// Package phpparse is the external entry point: it wraps internal/parser
// behind a stable API for callers outside this module, per spec.md §6
// ("downstream JSON emitters, diagnostic reporters, etc. are external").
package phpparse

import (
	"github.com/jorgsowa/phpfront/internal/ast"
	"github.com/jorgsowa/phpfront/internal/diag"
	"github.com/jorgsowa/phpfront/internal/parser"
)

// Option configures a Parse call. It mirrors internal/parser.Option so
// callers never need to import internal/ packages directly.
type Option = parser.Option

// WithFilename records name on the parser; diagnostics do not carry it.
func WithFilename(name string) Option { return parser.WithFilename(name) }

// WithMaxErrors caps the number of diagnostics the parser records.
func WithMaxErrors(n int) Option { return parser.WithMaxErrors(n) }

// WithTrivia enables doc-comment capture on declarations.
func WithTrivia(enabled bool) Option { return parser.WithTrivia(enabled) }

// Result is the outcome of a Parse call: the tree is always populated,
// even when diagnostics are non-empty — the front end never aborts on
// malformed input (spec.md §1).
type Result struct {
	Program     *ast.Program
	Diagnostics []diag.Diagnostic
}

// HasErrors reports whether any diagnostic at error severity was recorded.
func (r *Result) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == diag.SeverityError {
			return true
		}
	}
	return false
}

// Err folds every diagnostic into a single error via go-multierror, for
// callers that want a plain `error` instead of walking Diagnostics.
// Returns nil when there were none.
func (r *Result) Err() error {
	bag := &diag.Bag{}
	for _, d := range r.Diagnostics {
		bag.Add(d)
	}
	return bag.Err()
}

// Parse tokenizes and parses source, always returning a tree plus whatever
// diagnostics panic-mode recovery accumulated along the way.
func Parse(source []byte, opts ...Option) *Result {
	p := parser.New(source, opts...)
	prog := p.Parse()
	return &Result{Program: prog, Diagnostics: p.Diagnostics()}
}
