package form

import (
	"github.com/go-playground/validator/v10"
	"github.com/nikogura/resume-builder/pkg/resume"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// check is one path to evaluate with its ordered rule set.
type check struct {
	path  string
	value any
	rules []Rule
}

// Validate evaluates every field, entry and collection rule of doc. Every
// rule of every path is evaluated, so the report lists all violations rather
// than the first one found.
func Validate(doc resume.Document) (report Report) {
	checks := documentChecks(&doc)
	paths := make([]string, 0, len(checks))

	for _, c := range checks {
		paths = append(paths, c.path)
		for _, rule := range c.rules {
			if passes(rule, c.value) {
				continue
			}
			report.Violations = append(report.Violations, Violation{
				Path:    c.path,
				Rule:    rule,
				Kind:    rule.Kind(),
				Message: rule.Message(),
			})
		}
	}

	report.Fields = buildStatuses(paths, report.Violations)
	return report
}

func documentChecks(d *resume.Document) (checks []check) {
	for _, f := range scalarFields {
		checks = append(checks, check{path: f.name, value: *f.ref(d), rules: f.rules})
	}

	for _, c := range resume.Collections() {
		checks = append(checks, check{path: string(c), value: d.Len(c), rules: required})
		for i := 0; i < d.Len(c); i++ {
			for _, f := range entryFields[c] {
				checks = append(checks, check{path: EntryPath(c, i, f.name), value: f.get(d, i), rules: f.rules})
			}
			checks = append(checks, entryCheck(d, c, i))
		}
	}

	return checks
}

// entryCheck covers rules that span several fields of one entry.
func entryCheck(d *resume.Document, c resume.Collection, i int) (ch check) {
	ch = check{path: EntryPath(c, i, "")}
	if c == resume.CollectionEducation {
		ch.value = d.Education[i]
		ch.rules = []Rule{RuleDateOrder}
	}
	return ch
}

func passes(rule Rule, value any) (ok bool) {
	v := sharedValidator()

	var err error
	if rule == RuleDateOrder {
		err = v.Struct(value)
	} else {
		err = v.Var(value, rule.tag())
	}
	if err == nil {
		ok = true
		return ok
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		log.Error().Err(err).Str("rule", string(rule)).Msg("rule could not be evaluated")
		return ok
	}

	for _, fe := range fieldErrs {
		if fe.Tag() == rule.tag() {
			return ok
		}
	}

	ok = true
	return ok
}
