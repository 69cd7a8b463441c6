package form

import (
	"slices"

	"github.com/nikogura/resume-builder/pkg/resume"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Manager owns one editable resume and its validation rules. It is owned by
// a single session and is not safe for concurrent use.
type Manager struct {
	doc resume.Document
}

// NewManager creates a manager holding a freshly initialized document.
func NewManager() (m *Manager) {
	m = &Manager{}
	m.Initialize()
	return m
}

// Initialize replaces the document with an empty one holding a single empty
// entry in every collection.
func (m *Manager) Initialize() {
	m.doc = resume.Document{
		Education:  []resume.EducationEntry{resume.NewEducation()},
		Experience: []resume.ExperienceEntry{resume.NewExperience()},
		Projects:   []resume.ProjectEntry{resume.NewProject()},
		Skills:     []resume.SkillEntry{resume.NewSkill()},
	}
	log.Debug().Msg("resume form initialized")
}

// Snapshot returns a copy of the current document.
func (m *Manager) Snapshot() (doc resume.Document) {
	doc = m.doc.Snapshot()
	return doc
}

// Len returns the number of entries in a collection.
func (m *Manager) Len(c resume.Collection) (n int) {
	n = m.doc.Len(c)
	return n
}

// AddEntry inserts an empty entry at the front of a collection.
func (m *Manager) AddEntry(c resume.Collection) (err error) {
	switch c {
	case resume.CollectionEducation:
		m.doc.Education = slices.Insert(m.doc.Education, 0, resume.NewEducation())
	case resume.CollectionExperience:
		m.doc.Experience = slices.Insert(m.doc.Experience, 0, resume.NewExperience())
	case resume.CollectionProjects:
		m.doc.Projects = slices.Insert(m.doc.Projects, 0, resume.NewProject())
	case resume.CollectionSkills:
		m.doc.Skills = slices.Insert(m.doc.Skills, 0, resume.NewSkill())
	default:
		err = errors.Wrapf(resume.ErrUnknownCollection, "%q", c)
		return err
	}

	log.Debug().Str("collection", string(c)).Int("length", m.doc.Len(c)).Msg("entry added")
	return err
}

// RemoveEntry deletes the entry at index. An index outside the collection
// yields an *IndexOutOfRangeError and leaves the document unchanged.
func (m *Manager) RemoveEntry(c resume.Collection, index int) (err error) {
	if _, ok := entryFields[c]; !ok {
		err = errors.Wrapf(resume.ErrUnknownCollection, "%q", c)
		return err
	}

	err = checkIndex(&m.doc, c, index)
	if err != nil {
		log.Debug().Err(err).Msg("entry not removed")
		return err
	}

	switch c {
	case resume.CollectionEducation:
		m.doc.Education = slices.Delete(m.doc.Education, index, index+1)
	case resume.CollectionExperience:
		m.doc.Experience = slices.Delete(m.doc.Experience, index, index+1)
	case resume.CollectionProjects:
		m.doc.Projects = slices.Delete(m.doc.Projects, index, index+1)
	case resume.CollectionSkills:
		m.doc.Skills = slices.Delete(m.doc.Skills, index, index+1)
	}

	log.Debug().Str("collection", string(c)).Int("index", index).Int("length", m.doc.Len(c)).Msg("entry removed")
	return err
}

// SetField stores raw at a field path such as "firstName" or
// "education[0].startYear".
func (m *Manager) SetField(path, raw string) (err error) {
	var ref fieldRef
	ref, err = resolve(&m.doc, path)
	if err != nil {
		return err
	}

	err = ref.set(raw)
	if err != nil {
		err = errors.Wrapf(err, "failed to set %s", path)
		return err
	}

	return err
}

// Field returns the current value at a field path formatted for editing.
func (m *Manager) Field(path string) (value string, err error) {
	var ref fieldRef
	ref, err = resolve(&m.doc, path)
	if err != nil {
		return value, err
	}

	value = display(ref.get())
	return value, err
}

// Validate evaluates every rule against the current document.
func (m *Manager) Validate() (report Report) {
	report = Validate(m.doc)
	return report
}
