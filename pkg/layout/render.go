package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nikogura/resume-builder/pkg/resume"
)

// Style names referenced by rendered blocks.
const (
	StyleName   = "name"
	StyleHeader = "header"
	StyleLink   = "link"
)

// Section labels in document order.
const (
	LabelContact    = "Contact Information"
	LabelEducation  = "Education"
	LabelExperience = "Experience"
	LabelProjects   = "Projects"
	LabelSkills     = "Skills"
)

// DefaultStyles returns the styles of the built-in layout.
func DefaultStyles() (styles map[string]Style) {
	styles = map[string]Style{
		StyleName:   {FontSize: 24, Bold: true},
		StyleHeader: {FontSize: 16, Bold: true, Margin: [4]float64{0, 15, 0, 5}},
		StyleLink:   {FontSize: 10},
	}
	return styles
}

// Render projects a resume snapshot into the block layout. It never fails:
// missing values render as empty text. The header comes first, followed by
// the contact, education, experience, projects and skills sections.
func Render(doc resume.Document) (out Document) {
	out = Document{
		Title: fullName(doc),
		Blocks: []Block{
			header(doc),
			contact(doc),
			educationSection(doc.Education),
			experienceSection(doc.Experience),
			projectsSection(doc.Projects),
			skillsSection(doc.Skills),
		},
		Styles: DefaultStyles(),
	}
	return out
}

func header(doc resume.Document) (b Block) {
	links := []Block{
		link("LinkedIn", doc.LinkedinLink),
		link("GitHub", doc.GithubLink),
	}
	if doc.OptionalLink != "" {
		links = append(links, link("Others", doc.OptionalLink))
	}

	b = Block{
		Kind: KindColumns,
		Children: []Block{
			{Kind: KindText, Text: fullName(doc), Style: StyleName, Bold: true, FontSize: 24},
			{Kind: KindStack, Children: links},
		},
	}
	return b
}

func contact(doc resume.Document) (b Block) {
	b = section(LabelContact, []Block{
		{Kind: KindPair, Label: "Email", Text: doc.Email},
		{Kind: KindPair, Label: "Phone", Text: doc.Phone},
		{Kind: KindPair, Label: "Country", Text: doc.Country},
	})
	return b
}

func educationSection(entries []resume.EducationEntry) (b Block) {
	items := make([]Block, 0, len(entries))
	for _, e := range entries {
		items = append(items, Block{
			Kind: KindItem,
			Text: fmt.Sprintf("%s in %s at %s (%s to %s)", e.Degree, e.FieldOfStudy, e.School, year(e.StartYear), year(e.EndYear)),
		})
	}
	b = section(LabelEducation, []Block{list(items)})
	return b
}

func experienceSection(entries []resume.ExperienceEntry) (b Block) {
	items := make([]Block, 0, len(entries))
	for _, e := range entries {
		items = append(items, Block{
			Kind:     KindItem,
			Text:     fmt.Sprintf("%s at %s (%s - %s)", e.Position, e.Company, year(e.StartYear), year(e.EndYear)),
			Children: []Block{continuation(e.Description)},
		})
	}
	b = section(LabelExperience, []Block{list(items)})
	return b
}

func projectsSection(entries []resume.ProjectEntry) (b Block) {
	items := make([]Block, 0, len(entries))
	for _, e := range entries {
		items = append(items, Block{
			Kind:     KindItem,
			Text:     e.ProjectName,
			Children: []Block{continuation(e.ProjectDescription)},
		})
	}
	b = section(LabelProjects, []Block{list(items)})
	return b
}

func skillsSection(entries []resume.SkillEntry) (b Block) {
	items := make([]Block, 0, len(entries))
	for _, e := range entries {
		items = append(items, Block{
			Kind: KindItem,
			Text: fmt.Sprintf("%s - %s", e.Name, e.Level),
		})
	}
	b = section(LabelSkills, []Block{list(items)})
	return b
}

func section(label string, body []Block) (b Block) {
	b = Block{Kind: KindSection, Text: label, Style: StyleHeader, Children: body}
	return b
}

func list(items []Block) (b Block) {
	b = Block{Kind: KindList, Children: items}
	return b
}

func continuation(text string) (b Block) {
	b = Block{Kind: KindText, Text: text}
	return b
}

func link(label, target string) (b Block) {
	b = Block{Kind: KindText, Text: label, Style: StyleLink, Link: Href(target)}
	return b
}

func fullName(doc resume.Document) (name string) {
	name = strings.TrimSpace(doc.FirstName + " " + doc.LastName)
	return name
}

// year formats an ordinal year; zero is "not entered" and renders empty.
func year(y int) (s string) {
	if y != 0 {
		s = strconv.Itoa(y)
	}
	return s
}

// Href turns a user-entered link into a hyperlink target, defaulting the
// scheme to https. Empty input stays empty.
func Href(value string) (target string) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return target
	}
	lower := strings.ToLower(trimmed)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		target = trimmed
		return target
	}
	target = "https://" + trimmed
	return target
}
