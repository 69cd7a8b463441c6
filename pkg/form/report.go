package form

import (
	"fmt"
	"strings"
)

// Violation is one failed rule at one path.
type Violation struct {
	Path    string
	Rule    Rule
	Kind    Kind
	Message string
}

func (v Violation) String() (s string) {
	s = fmt.Sprintf("%s %s (%s)", v.Path, v.Message, v.Kind)
	return s
}

// FieldStatus is the validation state of a field, entry or collection.
// Valid covers the path and everything beneath it; Kinds lists only the
// violations reported at the path itself.
type FieldStatus struct {
	Path  string
	Valid bool
	Kinds []Kind
}

// Report is the result of validating a whole document.
type Report struct {
	Violations []Violation
	Fields     []FieldStatus
}

// Valid reports whether the document has no violations.
func (r Report) Valid() (ok bool) {
	ok = len(r.Violations) == 0
	return ok
}

// For returns the status recorded for a path.
func (r Report) For(path string) (status FieldStatus, ok bool) {
	for _, s := range r.Fields {
		if s.Path == path {
			status = s
			ok = true
			return status, ok
		}
	}
	return status, ok
}

// At returns the violations reported at exactly path.
func (r Report) At(path string) (violations []Violation) {
	for _, v := range r.Violations {
		if v.Path == path {
			violations = append(violations, v)
		}
	}
	return violations
}

// Err returns nil for a valid document, otherwise a *ValidationError holding
// every violation.
func (r Report) Err() (err error) {
	if r.Valid() {
		return err
	}
	err = &ValidationError{Violations: r.Violations}
	return err
}

// buildStatuses derives one FieldStatus per path, in the order given.
func buildStatuses(paths []string, violations []Violation) (statuses []FieldStatus) {
	statuses = make([]FieldStatus, 0, len(paths))
	for _, path := range paths {
		status := FieldStatus{Path: path, Valid: true}
		for _, v := range violations {
			if v.Path == path {
				status.Kinds = append(status.Kinds, v.Kind)
				status.Valid = false
				continue
			}
			if isBeneath(v.Path, path) {
				status.Valid = false
			}
		}
		statuses = append(statuses, status)
	}
	return statuses
}

func isBeneath(path, parent string) (ok bool) {
	ok = strings.HasPrefix(path, parent+"[") || strings.HasPrefix(path, parent+".")
	return ok
}
