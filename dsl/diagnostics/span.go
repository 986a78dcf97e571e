// Package diagnostics provides error reporting for dbuf schema loading and registration.
package diagnostics

import "fmt"

// FileID identifies a source file within one compilation.
type FileID uint32

const (
	// FileIDZero is the file ID used when a span is not tied to a loaded file.
	FileIDZero FileID = 0
	// FileIDMax is the largest representable file ID.
	FileIDMax FileID = ^FileID(0)
)

// Span is a half-open byte range [Start, End) inside one source file.
type Span struct {
	Start  int    `json:"start"`
	End    int    `json:"end"`
	FileID FileID `json:"file_id"`
}

// NewSpan creates a span over [start, end) in the given file.
func NewSpan(start, end int, fileID FileID) Span {
	return Span{
		Start:  start,
		End:    end,
		FileID: fileID,
	}
}

// EmptySpan returns the zero span.
func EmptySpan() Span {
	return Span{}
}

// IsEmpty reports whether the span covers no bytes.
func (s Span) IsEmpty() bool {
	return s.End <= s.Start
}

// Contains checks if the given position is inside the span (boundaries included).
func (s Span) Contains(position int) bool {
	return position >= s.Start && position <= s.End
}

// Overlaps checks if the given span overlaps with the current span.
func (s Span) Overlaps(other Span) bool {
	return s.FileID == other.FileID && (s.Contains(other.Start) || s.Contains(other.End))
}

func (s Span) String() string {
	return fmt.Sprintf("file %d [%d..%d)", s.FileID, s.Start, s.End)
}
