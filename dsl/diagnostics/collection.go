package diagnostics

import (
	"bytes"
	"errors"
	"fmt"
)

// SourceResolver maps a FileID back to the file name and text that a span points into.
type SourceResolver interface {
	Source(id FileID) (name, text string, ok bool)
}

// Diagnostics accumulates errors so that loading can keep going and report
// every problem at once instead of stopping at the first.
type Diagnostics struct {
	errors []Error
}

// NewDiagnostics creates a new empty Diagnostics collection.
func NewDiagnostics() Diagnostics {
	return Diagnostics{
		errors: make([]Error, 0),
	}
}

// FromError creates a Diagnostics holding a single error.
func FromError(err Error) Diagnostics {
	d := NewDiagnostics()
	d.PushError(err)
	return d
}

// Errors returns a copy of the errors in the collection.
func (d *Diagnostics) Errors() []Error {
	if len(d.errors) == 0 {
		return nil
	}
	out := make([]Error, len(d.errors))
	copy(out, d.errors)
	return out
}

// PushError adds an error to the collection.
func (d *Diagnostics) PushError(err Error) {
	d.errors = append(d.errors, err)
}

// Extend appends every error of other, keeping order.
func (d *Diagnostics) Extend(other Diagnostics) {
	d.errors = append(d.errors, other.errors...)
}

// Clone returns a copy that does not share storage with d.
func (d *Diagnostics) Clone() Diagnostics {
	out := make([]Error, len(d.errors))
	copy(out, d.errors)
	return Diagnostics{errors: out}
}

// HasErrors returns true if there is at least one error in this collection.
func (d *Diagnostics) HasErrors() bool {
	return len(d.errors) > 0
}

// Len returns the number of errors.
func (d *Diagnostics) Len() int {
	return len(d.errors)
}

// ToResult returns nil when there are no errors, otherwise an error joining
// all of them.
func (d *Diagnostics) ToResult() error {
	if !d.HasErrors() {
		return nil
	}
	errs := make([]error, 0, len(d.errors)+1)
	errs = append(errs, fmt.Errorf("schema has %d errors", len(d.errors)))
	for _, e := range d.errors {
		errs = append(errs, e)
	}
	return errors.Join(errs...)
}

// ToPrettyString renders every error with the offending source lines.
// Errors whose file cannot be resolved are rendered without a snippet.
func (d *Diagnostics) ToPrettyString(sources SourceResolver) string {
	var buf bytes.Buffer
	for _, err := range d.errors {
		_ = PrettyPrint(&buf, sources, err)
	}
	return buf.String()
}
