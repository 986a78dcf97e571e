package diagnostics

import (
	"fmt"
)

// Error is a single problem found while loading or registering schema definitions.
// Related holds secondary locations, such as the first definition of a
// name that was declared twice.
type Error struct {
	span    Span
	message string
	related []Related
}

// Related is a secondary location attached to an Error.
type Related struct {
	Span    Span
	Message string
}

// NewError creates a new Error with the given message and span.
func NewError(message string, span Span) Error {
	return Error{
		message: message,
		span:    span,
	}
}

// NewSyntaxError creates an error for source text the grammar rejected.
func NewSyntaxError(message string, span Span) Error {
	return NewError(fmt.Sprintf("Syntax error: %s", message), span)
}

// NewEmptyNameError creates an error for a definition declared without a name.
func NewEmptyNameError(kind string, span Span) Error {
	return NewError(fmt.Sprintf("The name of a %s must not be empty.", kind), span)
}

// NewDuplicateDefinitionError creates an error for a definition whose name is
// already taken. The existing definition's location is attached as related
// information so both sides of the conflict are reported.
func NewDuplicateDefinitionError(name, kind, existingKind string, span, existing Span) Error {
	return Error{
		message: fmt.Sprintf("The %s %q cannot be defined because a %s with that name already exists.", kind, name, existingKind),
		span:    span,
		related: []Related{{
			Span:    existing,
			Message: fmt.Sprintf("%s %q first defined here", existingKind, name),
		}},
	}
}

// WithRelated returns a copy of e with an extra related location.
func (e Error) WithRelated(span Span, message string) Error {
	related := make([]Related, len(e.related), len(e.related)+1)
	copy(related, e.related)
	e.related = append(related, Related{Span: span, Message: message})
	return e
}

// Span returns the primary location of the error.
func (e Error) Span() Span {
	return e.span
}

// Message returns the error message.
func (e Error) Message() string {
	return e.message
}

// Related returns the secondary locations of the error.
func (e Error) Related() []Related {
	if len(e.related) == 0 {
		return nil
	}
	out := make([]Related, len(e.related))
	copy(out, e.related)
	return out
}

// Error implements the error interface.
func (e Error) Error() string {
	return e.message
}
