package ir

import (
	"errors"
	"fmt"

	"github.com/satishbabariya/dbuf-go/dsl/diagnostics"
)

var (
	// ErrDuplicateDefinition is matched by every *DuplicateDefinitionError.
	ErrDuplicateDefinition = errors.New("duplicate definition")
	// ErrEmptyName is returned when a definition without a name is added.
	ErrEmptyName = errors.New("definition name must not be empty")
	// ErrFrozen is returned when adding to a registry after Freeze.
	ErrFrozen = errors.New("registry is frozen")
)

// DuplicateDefinitionError reports a definition whose name is already taken.
// The registry keeps the existing definition.
type DuplicateDefinitionError struct {
	Name         string
	Kind         DefinitionKind
	ExistingKind DefinitionKind
	Span         diagnostics.Span
	ExistingSpan diagnostics.Span
}

func (e *DuplicateDefinitionError) Error() string {
	return fmt.Sprintf("%s %q already defined as %s", e.Kind, e.Name, e.ExistingKind)
}

func (e *DuplicateDefinitionError) Unwrap() error {
	return ErrDuplicateDefinition
}

// Diagnostic converts the conflict into a diagnostics.Error pointing at both definitions.
func (e *DuplicateDefinitionError) Diagnostic() diagnostics.Error {
	return diagnostics.NewDuplicateDefinitionError(
		e.Name,
		e.Kind.String(),
		e.ExistingKind.String(),
		e.Span,
		e.ExistingSpan,
	)
}
