package form

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/nikogura/resume-builder/pkg/resume"
)

// Rule names a validation predicate attached to a field or entry.
type Rule string

const (
	RuleRequired    Rule = "required"
	RuleNamePattern Rule = "namePattern"
	RuleURLPattern  Rule = "urlPattern"
	RulePhoneNumber Rule = "phoneNumber"
	RuleDateOrder   Rule = "dateOrder"
)

// Kind returns the violation kind reported when the rule fails.
func (r Rule) Kind() (kind Kind) {
	switch r {
	case RuleRequired:
		kind = KindRequiredFieldMissing
	case RuleDateOrder:
		kind = KindStructuralOrderViolation
	default:
		kind = KindPatternMismatch
	}
	return kind
}

// Message describes the rule for display next to a field.
func (r Rule) Message() (msg string) {
	switch r {
	case RuleRequired:
		msg = "is required"
	case RuleNamePattern:
		msg = "must contain letters only"
	case RuleURLPattern:
		msg = "must be a valid URL"
	case RulePhoneNumber:
		msg = "must be exactly 10 digits"
	case RuleDateOrder:
		msg = "start year must not be after end year"
	default:
		msg = "is invalid"
	}
	return msg
}

// tag is the validator tag the rule is registered under. "required" itself
// is reserved by the validator package.
func (r Rule) tag() (tag string) {
	tag = "resume_" + string(r)
	return tag
}

//nolint:gochecknoglobals // compiled patterns
var (
	namePattern = regexp.MustCompile(`^[A-Za-z]*$`)
	urlPattern  = regexp.MustCompile(`^(https?://)?([\da-z.-]+)\.([a-z.]{2,6})[/\w .-]*/?$`)
)

// IsPresent reports whether a string is non-empty after trimming.
func IsPresent(value string) (ok bool) {
	ok = strings.TrimSpace(value) != ""
	return ok
}

// MatchesName reports whether value holds ASCII letters only. Empty passes.
func MatchesName(value string) (ok bool) {
	ok = namePattern.MatchString(value)
	return ok
}

// MatchesURL reports whether value looks like a web address with an
// optional http(s) scheme. Empty passes.
func MatchesURL(value string) (ok bool) {
	if value == "" {
		ok = true
		return ok
	}
	ok = urlPattern.MatchString(value)
	return ok
}

// IsPhoneNumber reports whether value is exactly ten decimal digits.
func IsPhoneNumber(value string) (ok bool) {
	if len(value) != 10 {
		return ok
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return ok
		}
	}
	ok = true
	return ok
}

// YearsOrdered reports whether start does not come after end. Absent (zero)
// years are not checked.
func YearsOrdered(start, end int) (ok bool) {
	ok = start == 0 || end == 0 || start <= end
	return ok
}

//nolint:gochecknoglobals // validator caches struct metadata and is safe to share
var (
	ruleValidatorOnce sync.Once
	ruleValidator     *validator.Validate
)

// sharedValidator returns the validator with every Rule registered.
func sharedValidator() (v *validator.Validate) {
	ruleValidatorOnce.Do(func() {
		ruleValidator = newRuleValidator()
	})
	v = ruleValidator
	return v
}

func newRuleValidator() (v *validator.Validate) {
	v = validator.New()

	mustRegister(v, RuleRequired, func(fl validator.FieldLevel) bool {
		field := fl.Field()
		switch field.Kind() {
		case reflect.String:
			return IsPresent(field.String())
		case reflect.Slice, reflect.Array, reflect.Map:
			return field.Len() > 0
		default:
			return !field.IsZero()
		}
	})
	mustRegister(v, RuleNamePattern, func(fl validator.FieldLevel) bool {
		return MatchesName(fl.Field().String())
	})
	mustRegister(v, RuleURLPattern, func(fl validator.FieldLevel) bool {
		return MatchesURL(fl.Field().String())
	})
	mustRegister(v, RulePhoneNumber, func(fl validator.FieldLevel) bool {
		return IsPhoneNumber(fl.Field().String())
	})

	v.RegisterStructValidation(educationDateOrder, resume.EducationEntry{})

	return v
}

func mustRegister(v *validator.Validate, rule Rule, fn validator.Func) {
	err := v.RegisterValidation(rule.tag(), fn)
	if err != nil {
		panic(err)
	}
}

func educationDateOrder(sl validator.StructLevel) {
	entry, ok := sl.Current().Interface().(resume.EducationEntry)
	if !ok {
		return
	}
	if !YearsOrdered(entry.StartYear, entry.EndYear) {
		sl.ReportError(entry.StartYear, "startYear", "StartYear", RuleDateOrder.tag(), "")
	}
}
