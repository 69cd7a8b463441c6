package resume

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSnapshotIsIndependent(t *testing.T) {
	doc := Document{
		FirstName: "Ada",
		Education: []EducationEntry{{School: "MIT", StartYear: 2010, EndYear: 2014}},
		Skills:    []SkillEntry{{Name: "Go", Level: LevelExpert}},
	}

	snap := doc.Snapshot()
	want := doc.Snapshot()

	doc.FirstName = "Grace"
	doc.Education[0].School = "Yale"
	doc.Skills = append(doc.Skills, SkillEntry{Name: "C"})

	if diff := cmp.Diff(want, snap); diff != "" {
		t.Errorf("snapshot changed after mutation (-want +got):\n%s", diff)
	}
}

func TestLen(t *testing.T) {
	doc := Document{
		Education:  make([]EducationEntry, 2),
		Experience: make([]ExperienceEntry, 1),
		Skills:     make([]SkillEntry, 3),
	}

	tests := []struct {
		collection Collection
		want       int
	}{
		{CollectionEducation, 2},
		{CollectionExperience, 1},
		{CollectionProjects, 0},
		{CollectionSkills, 3},
		{Collection("hobbies"), 0},
	}

	for _, tt := range tests {
		if got := doc.Len(tt.collection); got != tt.want {
			t.Errorf("Len(%s) = %d, want %d", tt.collection, got, tt.want)
		}
	}
}

func TestParseCollection(t *testing.T) {
	tests := []struct {
		input   string
		want    Collection
		wantErr bool
	}{
		{input: "education", want: CollectionEducation},
		{input: " Experience ", want: CollectionExperience},
		{input: "project", want: CollectionProjects},
		{input: "SKILLS", want: CollectionSkills},
		{input: "hobbies", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCollection(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownCollection) {
					t.Errorf("Expected ErrUnknownCollection, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestParseSkillLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    SkillLevel
		wantErr bool
	}{
		{input: "expert", want: LevelExpert},
		{input: "INTERMEDIATE", want: LevelIntermediate},
		{input: "  advanced ", want: LevelAdvanced},
		{input: "", want: ""},
		{input: "guru", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSkillLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSkillLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestNewEntriesHaveDistinctIDs(t *testing.T) {
	a := NewEducation()
	b := NewEducation()
	if a.ID == "" || b.ID == "" {
		t.Fatal("Expected entries to carry IDs")
	}
	if a.ID == b.ID {
		t.Errorf("Expected distinct IDs, both were %s", a.ID)
	}
}

func TestFilename(t *testing.T) {
	got := Filename(Document{FirstName: "Ada", LastName: "Lovelace"})
	if got != "Ada_Lovelace_resume.pdf" {
		t.Errorf("Expected Ada_Lovelace_resume.pdf, got %s", got)
	}
}

func TestMarshalText(t *testing.T) {
	doc := Document{
		FirstName: "Ada",
		Education: []EducationEntry{NewEducation()},
	}
	doc.Education[0].School = "MIT"
	doc.Education[0].StartYear = 2010

	data, err := MarshalText(doc)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	text := string(data)
	for _, want := range []string{"first_name: Ada", "school: MIT", "start_year: 2010"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected output to contain %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, doc.Education[0].ID) {
		t.Error("Entry IDs should not be serialized")
	}
}
