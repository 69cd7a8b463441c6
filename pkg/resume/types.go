package resume

import "slices"

// Document represents the complete editable resume.
type Document struct {
	FirstName    string `yaml:"first_name"`
	LastName     string `yaml:"last_name"`
	Email        string `yaml:"email"`
	Phone        string `yaml:"phone"`
	Country      string `yaml:"country"`
	GithubLink   string `yaml:"github_link"`
	LinkedinLink string `yaml:"linkedin_link"`
	OptionalLink string `yaml:"optional_link"`

	Education  []EducationEntry  `yaml:"education"`
	Experience []ExperienceEntry `yaml:"experience"`
	Projects   []ProjectEntry    `yaml:"projects"`
	Skills     []SkillEntry      `yaml:"skills"`
}

// EducationEntry represents one school attended.
type EducationEntry struct {
	ID           string `yaml:"-"`
	School       string `yaml:"school"`
	Degree       string `yaml:"degree"`
	FieldOfStudy string `yaml:"field_of_study"`
	StartYear    int    `yaml:"start_year,omitempty"`
	EndYear      int    `yaml:"end_year,omitempty"`
}

// ExperienceEntry represents one position held.
type ExperienceEntry struct {
	ID          string `yaml:"-"`
	Company     string `yaml:"company"`
	Position    string `yaml:"position"`
	Description string `yaml:"description"`
	StartYear   int    `yaml:"start_year,omitempty"`
	EndYear     int    `yaml:"end_year,omitempty"`
}

// ProjectEntry represents a single project.
type ProjectEntry struct {
	ID                 string `yaml:"-"`
	ProjectName        string `yaml:"project_name"`
	ProjectDescription string `yaml:"project_description"`
}

// SkillEntry represents a named skill and proficiency.
type SkillEntry struct {
	ID    string     `yaml:"-"`
	Name  string     `yaml:"name"`
	Level SkillLevel `yaml:"level"`
}

// Snapshot returns a deep copy of the document. Later changes to d are not
// visible through the copy.
func (d *Document) Snapshot() (snap Document) {
	snap = *d
	snap.Education = slices.Clone(d.Education)
	snap.Experience = slices.Clone(d.Experience)
	snap.Projects = slices.Clone(d.Projects)
	snap.Skills = slices.Clone(d.Skills)
	return snap
}

// Len returns the number of entries in a collection.
func (d *Document) Len(c Collection) (n int) {
	switch c {
	case CollectionEducation:
		n = len(d.Education)
	case CollectionExperience:
		n = len(d.Experience)
	case CollectionProjects:
		n = len(d.Projects)
	case CollectionSkills:
		n = len(d.Skills)
	}
	return n
}
