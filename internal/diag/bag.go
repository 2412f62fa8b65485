package diag

import multierror "github.com/hashicorp/go-multierror"

// Bag is an append-only diagnostic accumulator. The lexer and the parser
// share one; nothing ever removes an entry once appended, matching the
// "propagation policy" of spec.md §7.
type Bag struct {
	items []Diagnostic
}

// Add appends a diagnostic, deduplicating only when the new entry is an
// exact match (same span, code, and message) of the most recently appended
// one. Spec.md §7: "duplicates on the same span are deduplicated at append
// time only if kind and message match exactly."
func (b *Bag) Add(d Diagnostic) {
	if n := len(b.items); n > 0 && b.items[n-1].SameAs(d) {
		return
	}
	b.items = append(b.items, d)
}

// All returns every diagnostic appended so far, in order.
func (b *Bag) All() []Diagnostic {
	return b.items
}

// Len reports how many diagnostics have been recorded.
func (b *Bag) Len() int {
	return len(b.items)
}

// HasErrors reports whether any diagnostic at SeverityError has been
// recorded.
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Err folds every recorded diagnostic into a single error via
// go-multierror, for callers that prefer a plain `error` over walking the
// diagnostic slice. Returns nil when the bag is empty.
func (b *Bag) Err() error {
	if len(b.items) == 0 {
		return nil
	}
	var merr *multierror.Error
	for _, d := range b.items {
		merr = multierror.Append(merr, d)
	}
	return merr.ErrorOrNil()
}
