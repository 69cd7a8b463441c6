package resume

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SkillLevel is the proficiency attached to a SkillEntry.
type SkillLevel string

const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
	LevelExpert       SkillLevel = "Expert"
)

// ErrUnknownSkillLevel is returned when input does not name a SkillLevel.
var ErrUnknownSkillLevel = errors.New("unknown skill level")

// SkillLevels returns the selectable levels, lowest first.
func SkillLevels() (levels []SkillLevel) {
	levels = []SkillLevel{LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert}
	return levels
}

// ParseSkillLevel normalizes input of any casing to a SkillLevel. Empty
// input yields the empty level, which clears the field.
func ParseSkillLevel(input string) (level SkillLevel, err error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return level, err
	}

	titled := SkillLevel(cases.Title(language.English).String(trimmed))
	for _, candidate := range SkillLevels() {
		if candidate == titled {
			level = candidate
			return level, err
		}
	}

	err = errors.Wrapf(ErrUnknownSkillLevel, "%q", input)
	return level, err
}

func (l SkillLevel) String() (s string) {
	s = string(l)
	return s
}
