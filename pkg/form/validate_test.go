package form

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nikogura/resume-builder/pkg/resume"
)

func TestValidateFilledDocument(t *testing.T) {
	m := NewManager()
	fillValid(t, m)

	report := m.Validate()
	if !report.Valid() {
		t.Fatalf("Expected valid document, got violations: %v", report.Violations)
	}
	if err := report.Err(); err != nil {
		t.Errorf("Expected nil error, got %v", err)
	}

	for _, status := range report.Fields {
		if !status.Valid {
			t.Errorf("Expected %s to be valid", status.Path)
		}
	}
}

func TestValidateAdaExample(t *testing.T) {
	doc := resume.Document{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     "1234567890",
		Country:   "England",
		Education: []resume.EducationEntry{
			{School: "MIT", Degree: "BS", FieldOfStudy: "CS", StartYear: 2010, EndYear: 2014},
		},
		Experience: []resume.ExperienceEntry{
			{Company: "Acme", Position: "Engineer", Description: "Built things", StartYear: 2014, EndYear: 2016},
		},
		Projects: []resume.ProjectEntry{{ProjectName: "Engine", ProjectDescription: "Difference engine"}},
		Skills:   []resume.SkillEntry{{Name: "Math", Level: resume.LevelExpert}},
	}

	report := Validate(doc)
	if !report.Valid() {
		t.Errorf("Expected valid document, got %v", report.Violations)
	}
}

func TestValidateEmptyDocumentReportsEverything(t *testing.T) {
	m := NewManager()

	report := m.Validate()
	if report.Valid() {
		t.Fatal("Expected empty document to be invalid")
	}

	// Every required field of the initial document is missing; no rule stops
	// evaluation of the others.
	wantPaths := []string{
		"firstName", "lastName", "email", "phone", "phone", "country",
		"education[0].school", "education[0].degree", "education[0].fieldOfStudy",
		"education[0].startYear", "education[0].endYear",
		"experience[0].company", "experience[0].position", "experience[0].startYear",
		"experience[0].endYear", "experience[0].description",
		"projects[0].projectName", "projects[0].projectDescription",
		"skills[0].name", "skills[0].level",
	}

	var gotPaths []string
	for _, v := range report.Violations {
		gotPaths = append(gotPaths, v.Path)
	}
	if diff := cmp.Diff(wantPaths, gotPaths); diff != "" {
		t.Errorf("Unexpected violation paths (-want +got):\n%s", diff)
	}

	phone := report.At("phone")
	wantPhone := []Violation{
		{Path: "phone", Rule: RuleRequired, Kind: KindRequiredFieldMissing, Message: RuleRequired.Message()},
		{Path: "phone", Rule: RulePhoneNumber, Kind: KindPatternMismatch, Message: RulePhoneNumber.Message()},
	}
	if diff := cmp.Diff(wantPhone, phone); diff != "" {
		t.Errorf("Unexpected phone violations (-want +got):\n%s", diff)
	}

	var verr *ValidationError
	if !errors.As(report.Err(), &verr) {
		t.Fatalf("Expected *ValidationError, got %T", report.Err())
	}
	if len(verr.Violations) != len(report.Violations) {
		t.Errorf("Expected error to carry %d violations, got %d", len(report.Violations), len(verr.Violations))
	}
}

func TestValidateOptionalLinks(t *testing.T) {
	m := NewManager()
	fillValid(t, m)

	tests := []struct {
		field string
		value string
		valid bool
	}{
		{"githubLink", "", true},
		{"linkedinLink", "", true},
		{"optionalLink", "", true},
		{"optionalLink", "ada.dev/blog", true},
		{"optionalLink", "not a link", false},
		{"githubLink", "git hub", false},
	}

	for _, tt := range tests {
		t.Run(tt.field+"="+tt.value, func(t *testing.T) {
			err := m.SetField(tt.field, tt.value)
			if err != nil {
				t.Fatalf("SetField failed: %v", err)
			}
			defer func() { _ = m.SetField(tt.field, "") }()

			status, ok := m.Validate().For(tt.field)
			if !ok {
				t.Fatalf("No status for %s", tt.field)
			}
			if status.Valid != tt.valid {
				t.Errorf("Expected valid=%v, got %+v", tt.valid, status)
			}
			if !tt.valid {
				if diff := cmp.Diff([]Kind{KindPatternMismatch}, status.Kinds); diff != "" {
					t.Errorf("Unexpected kinds (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestValidateNameFields(t *testing.T) {
	m := NewManager()
	fillValid(t, m)

	for _, field := range []string{"firstName", "lastName", "country"} {
		t.Run(field, func(t *testing.T) {
			original, err := m.Field(field)
			if err != nil {
				t.Fatalf("Field failed: %v", err)
			}
			defer func() { _ = m.SetField(field, original) }()

			err = m.SetField(field, "John123")
			if err != nil {
				t.Fatalf("SetField failed: %v", err)
			}
			status, _ := m.Validate().For(field)
			if diff := cmp.Diff([]Kind{KindPatternMismatch}, status.Kinds); diff != "" {
				t.Errorf("Unexpected kinds for digits (-want +got):\n%s", diff)
			}

			// Blank input fails both rules and both are reported.
			err = m.SetField(field, "  ")
			if err != nil {
				t.Fatalf("SetField failed: %v", err)
			}
			status, _ = m.Validate().For(field)
			if diff := cmp.Diff([]Kind{KindRequiredFieldMissing, KindPatternMismatch}, status.Kinds); diff != "" {
				t.Errorf("Unexpected kinds for blank (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEducationDateOrderFlips(t *testing.T) {
	m := NewManager()
	fillValid(t, m)

	setYears := func(start, end string) {
		t.Helper()
		if err := m.SetField("education[0].startYear", start); err != nil {
			t.Fatalf("SetField failed: %v", err)
		}
		if err := m.SetField("education[0].endYear", end); err != nil {
			t.Fatalf("SetField failed: %v", err)
		}
	}

	setYears("2020", "2015")
	report := m.Validate()
	if report.Valid() {
		t.Fatal("Expected document with start > end to be invalid")
	}
	wantEntry := []Violation{{
		Path:    "education[0]",
		Rule:    RuleDateOrder,
		Kind:    KindStructuralOrderViolation,
		Message: RuleDateOrder.Message(),
	}}
	if diff := cmp.Diff(wantEntry, report.Violations); diff != "" {
		t.Errorf("Expected only the entry-level violation (-want +got):\n%s", diff)
	}
	for _, path := range []string{"education[0].startYear", "education[0].endYear"} {
		if status, _ := report.For(path); !status.Valid {
			t.Errorf("Expected field %s to stay valid", path)
		}
	}
	if status, _ := report.For("education"); status.Valid {
		t.Error("Expected education collection to be invalid")
	}

	setYears("2015", "2020")
	if report = m.Validate(); !report.Valid() {
		t.Errorf("Expected swapped years to restore validity, got %v", report.Violations)
	}

	// Re-evaluating without changes gives the same answer.
	if again := m.Validate(); !again.Valid() {
		t.Error("Expected repeated validation to be stable")
	}

	setYears("2020", "")
	report = m.Validate()
	if len(report.At("education[0]")) != 0 {
		t.Error("Missing end year should not trigger the ordering rule")
	}
	if len(report.At("education[0].endYear")) != 1 {
		t.Error("Expected missing end year to be reported as required")
	}
}

func TestExperienceHasNoDateOrder(t *testing.T) {
	m := NewManager()
	fillValid(t, m)

	if err := m.SetField("experience[0].startYear", "2030"); err != nil {
		t.Fatalf("SetField failed: %v", err)
	}
	if err := m.SetField("experience[0].endYear", "2001"); err != nil {
		t.Fatalf("SetField failed: %v", err)
	}

	if report := m.Validate(); !report.Valid() {
		t.Errorf("Expected experience years to be unordered, got %v", report.Violations)
	}
}

func TestValidateLaterEntries(t *testing.T) {
	m := NewManager()
	fillValid(t, m)

	if err := m.AddEntry(resume.CollectionProjects); err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}

	report := m.Validate()
	if report.Valid() {
		t.Fatal("Expected new empty project to invalidate the document")
	}

	if status, _ := report.For("projects[0]"); status.Valid {
		t.Error("Expected new entry to be invalid")
	}
	if status, _ := report.For("projects[1]"); !status.Valid {
		t.Error("Expected previous entry to remain valid")
	}
	if status, _ := report.For("skills"); !status.Valid {
		t.Error("Expected unrelated collection to remain valid")
	}
}
