package form

import (
	"fmt"
	"strings"

	"github.com/nikogura/resume-builder/pkg/resume"
	"github.com/pkg/errors"
)

// Kind classifies a violation.
type Kind string

const (
	KindRequiredFieldMissing     Kind = "RequiredFieldMissing"
	KindPatternMismatch          Kind = "PatternMismatch"
	KindStructuralOrderViolation Kind = "StructuralOrderViolation"
	KindIndexOutOfRange          Kind = "IndexOutOfRange"
)

var (
	// ErrIndexOutOfRange matches every *IndexOutOfRangeError.
	ErrIndexOutOfRange = errors.New(string(KindIndexOutOfRange))

	// ErrUnknownField is returned for a field path the document does not have.
	ErrUnknownField = errors.New("unknown field")

	// ErrInvalidValue is returned when a value cannot be stored in a field,
	// such as a non-numeric year.
	ErrInvalidValue = errors.New("invalid value")
)

// IndexOutOfRangeError reports an entry index outside [0, Length).
type IndexOutOfRangeError struct {
	Collection resume.Collection
	Index      int
	Length     int
}

func (e *IndexOutOfRangeError) Error() (msg string) {
	msg = fmt.Sprintf("%s: index %d out of range for %s with %d entries", KindIndexOutOfRange, e.Index, e.Collection, e.Length)
	return msg
}

// Is lets errors.Is match ErrIndexOutOfRange.
func (e *IndexOutOfRangeError) Is(target error) (ok bool) {
	ok = target == ErrIndexOutOfRange
	return ok
}

// ValidationError carries every violation found in a document.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() (msg string) {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}
	msg = fmt.Sprintf("resume has %d validation error(s): %s", len(e.Violations), strings.Join(parts, "; "))
	return msg
}
