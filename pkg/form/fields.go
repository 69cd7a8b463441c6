package form

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/nikogura/resume-builder/pkg/resume"
	"github.com/pkg/errors"
)

type scalarField struct {
	name  string
	rules []Rule
	ref   func(d *resume.Document) (p *string)
}

type entryField struct {
	name  string
	rules []Rule
	get   func(d *resume.Document, i int) (value any)
	set   func(d *resume.Document, i int, raw string) (err error)
}

//nolint:gochecknoglobals // field tables
var scalarFields = []scalarField{
	{"firstName", []Rule{RuleRequired, RuleNamePattern}, func(d *resume.Document) *string { return &d.FirstName }},
	{"lastName", []Rule{RuleRequired, RuleNamePattern}, func(d *resume.Document) *string { return &d.LastName }},
	{"email", []Rule{RuleRequired}, func(d *resume.Document) *string { return &d.Email }},
	{"phone", []Rule{RuleRequired, RulePhoneNumber}, func(d *resume.Document) *string { return &d.Phone }},
	{"country", []Rule{RuleRequired, RuleNamePattern}, func(d *resume.Document) *string { return &d.Country }},
	{"githubLink", []Rule{RuleURLPattern}, func(d *resume.Document) *string { return &d.GithubLink }},
	{"linkedinLink", []Rule{RuleURLPattern}, func(d *resume.Document) *string { return &d.LinkedinLink }},
	{"optionalLink", []Rule{RuleURLPattern}, func(d *resume.Document) *string { return &d.OptionalLink }},
}

var required = []Rule{RuleRequired} //nolint:gochecknoglobals // shared rule set

//nolint:gochecknoglobals // field tables
var entryFields = map[resume.Collection][]entryField{
	resume.CollectionEducation: {
		{"school", required,
			func(d *resume.Document, i int) any { return d.Education[i].School },
			func(d *resume.Document, i int, raw string) error { d.Education[i].School = raw; return nil }},
		{"degree", required,
			func(d *resume.Document, i int) any { return d.Education[i].Degree },
			func(d *resume.Document, i int, raw string) error { d.Education[i].Degree = raw; return nil }},
		{"fieldOfStudy", required,
			func(d *resume.Document, i int) any { return d.Education[i].FieldOfStudy },
			func(d *resume.Document, i int, raw string) error { d.Education[i].FieldOfStudy = raw; return nil }},
		{"startYear", required,
			func(d *resume.Document, i int) any { return d.Education[i].StartYear },
			func(d *resume.Document, i int, raw string) error { return parseYear(raw, &d.Education[i].StartYear) }},
		{"endYear", required,
			func(d *resume.Document, i int) any { return d.Education[i].EndYear },
			func(d *resume.Document, i int, raw string) error { return parseYear(raw, &d.Education[i].EndYear) }},
	},
	resume.CollectionExperience: {
		{"company", required,
			func(d *resume.Document, i int) any { return d.Experience[i].Company },
			func(d *resume.Document, i int, raw string) error { d.Experience[i].Company = raw; return nil }},
		{"position", required,
			func(d *resume.Document, i int) any { return d.Experience[i].Position },
			func(d *resume.Document, i int, raw string) error { d.Experience[i].Position = raw; return nil }},
		{"startYear", required,
			func(d *resume.Document, i int) any { return d.Experience[i].StartYear },
			func(d *resume.Document, i int, raw string) error { return parseYear(raw, &d.Experience[i].StartYear) }},
		{"endYear", required,
			func(d *resume.Document, i int) any { return d.Experience[i].EndYear },
			func(d *resume.Document, i int, raw string) error { return parseYear(raw, &d.Experience[i].EndYear) }},
		{"description", required,
			func(d *resume.Document, i int) any { return d.Experience[i].Description },
			func(d *resume.Document, i int, raw string) error { d.Experience[i].Description = raw; return nil }},
	},
	resume.CollectionProjects: {
		{"projectName", required,
			func(d *resume.Document, i int) any { return d.Projects[i].ProjectName },
			func(d *resume.Document, i int, raw string) error { d.Projects[i].ProjectName = raw; return nil }},
		{"projectDescription", required,
			func(d *resume.Document, i int) any { return d.Projects[i].ProjectDescription },
			func(d *resume.Document, i int, raw string) error { d.Projects[i].ProjectDescription = raw; return nil }},
	},
	resume.CollectionSkills: {
		{"name", required,
			func(d *resume.Document, i int) any { return d.Skills[i].Name },
			func(d *resume.Document, i int, raw string) error { d.Skills[i].Name = raw; return nil }},
		{"level", required,
			func(d *resume.Document, i int) any { return d.Skills[i].Level },
			func(d *resume.Document, i int, raw string) (err error) {
				var level resume.SkillLevel
				level, err = resume.ParseSkillLevel(raw)
				if err != nil {
					err = errors.Wrap(ErrInvalidValue, err.Error())
					return err
				}
				d.Skills[i].Level = level
				return err
			}},
	},
}

// entryPathPattern matches paths like "education[2].startYear".
var entryPathPattern = regexp.MustCompile(`^(\w+)\[(\d+)\]\.(\w+)$`) //nolint:gochecknoglobals // compiled pattern

// ScalarFields returns the paths of the top-level fields in display order.
func ScalarFields() (names []string) {
	names = make([]string, 0, len(scalarFields))
	for _, f := range scalarFields {
		names = append(names, f.name)
	}
	return names
}

// EntryFields returns the field names of one entry of a collection.
func EntryFields(c resume.Collection) (names []string) {
	for _, f := range entryFields[c] {
		names = append(names, f.name)
	}
	return names
}

// EntryPath builds the path of an entry, or of a field within it when field
// is non-empty.
func EntryPath(c resume.Collection, index int, field string) (path string) {
	path = fmt.Sprintf("%s[%d]", c, index)
	if field != "" {
		path += "." + field
	}
	return path
}

// fieldRef is a resolved path: accessors bound to one field of one document.
type fieldRef struct {
	get func() (value any)
	set func(raw string) (err error)
}

func resolve(d *resume.Document, path string) (ref fieldRef, err error) {
	for _, f := range scalarFields {
		if f.name == path {
			p := f.ref(d)
			ref = fieldRef{
				get: func() any { return *p },
				set: func(raw string) error { *p = raw; return nil },
			}
			return ref, err
		}
	}

	match := entryPathPattern.FindStringSubmatch(path)
	if match == nil {
		err = errors.Wrapf(ErrUnknownField, "%q", path)
		return ref, err
	}

	var c resume.Collection
	c, err = resume.ParseCollection(match[1])
	if err != nil {
		err = errors.Wrapf(ErrUnknownField, "%q", path)
		return ref, err
	}

	var index int
	index, err = strconv.Atoi(match[2])
	if err != nil {
		err = errors.Wrapf(ErrUnknownField, "%q", path)
		return ref, err
	}

	err = checkIndex(d, c, index)
	if err != nil {
		return ref, err
	}

	for _, f := range entryFields[c] {
		if f.name == match[3] {
			field := f
			ref = fieldRef{
				get: func() any { return field.get(d, index) },
				set: func(raw string) error { return field.set(d, index, raw) },
			}
			return ref, err
		}
	}

	err = errors.Wrapf(ErrUnknownField, "%q", path)
	return ref, err
}

func checkIndex(d *resume.Document, c resume.Collection, index int) (err error) {
	length := d.Len(c)
	if index < 0 || index >= length {
		err = &IndexOutOfRangeError{Collection: c, Index: index, Length: length}
		return err
	}
	return err
}

func parseYear(raw string, dst *int) (err error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		*dst = 0
		return err
	}

	var year int
	year, err = strconv.Atoi(trimmed)
	if err != nil || year < 0 {
		err = errors.Wrapf(ErrInvalidValue, "year %q", raw)
		return err
	}

	*dst = year
	return err
}

// display formats a field value for editing. Unset years show as empty.
func display(value any) (s string) {
	switch v := value.(type) {
	case int:
		if v != 0 {
			s = strconv.Itoa(v)
		}
	case string:
		s = v
	default:
		s = fmt.Sprint(v)
	}
	return s
}
