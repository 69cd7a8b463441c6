package resume

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Collection names one of the repeatable sections of a Document.
type Collection string

const (
	CollectionEducation  Collection = "education"
	CollectionExperience Collection = "experience"
	CollectionProjects   Collection = "projects"
	CollectionSkills     Collection = "skills"
)

// ErrUnknownCollection is returned for a collection name that is not one of
// the four repeatable sections.
var ErrUnknownCollection = errors.New("unknown collection")

// Collections returns every collection in display order.
func Collections() (all []Collection) {
	all = []Collection{
		CollectionEducation,
		CollectionExperience,
		CollectionProjects,
		CollectionSkills,
	}
	return all
}

// ParseCollection maps user input to a Collection.
func ParseCollection(name string) (c Collection, err error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "education":
		c = CollectionEducation
	case "experience":
		c = CollectionExperience
	case "projects", "project":
		c = CollectionProjects
	case "skills", "skill":
		c = CollectionSkills
	default:
		err = errors.Wrapf(ErrUnknownCollection, "%q", name)
	}
	return c, err
}

// Label returns the section heading used for the collection.
func (c Collection) Label() (label string) {
	switch c {
	case CollectionEducation:
		label = "Education"
	case CollectionExperience:
		label = "Experience"
	case CollectionProjects:
		label = "Projects"
	case CollectionSkills:
		label = "Skills"
	default:
		label = string(c)
	}
	return label
}

// NewEducation returns an empty education entry with a fresh ID.
func NewEducation() (e EducationEntry) {
	e = EducationEntry{ID: uuid.NewString()}
	return e
}

// NewExperience returns an empty experience entry with a fresh ID.
func NewExperience() (e ExperienceEntry) {
	e = ExperienceEntry{ID: uuid.NewString()}
	return e
}

// NewProject returns an empty project entry with a fresh ID.
func NewProject() (e ProjectEntry) {
	e = ProjectEntry{ID: uuid.NewString()}
	return e
}

// NewSkill returns an empty skill entry with a fresh ID.
func NewSkill() (e SkillEntry) {
	e = SkillEntry{ID: uuid.NewString()}
	return e
}
