package renderer

import (
	"strings"
	"testing"

	"github.com/nikogura/resume-builder/pkg/layout"
	"github.com/nikogura/resume-builder/pkg/resume"
)

func sampleDocument() (doc resume.Document) {
	doc = resume.Document{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@example.com",
		Phone:        "1234567890",
		Country:      "England",
		GithubLink:   "github.com/ada",
		LinkedinLink: "linkedin.com/in/ada",
		OptionalLink: "ada.dev",
		Education: []resume.EducationEntry{
			{School: "MIT", Degree: "BS", FieldOfStudy: "CS", StartYear: 2010, EndYear: 2014},
		},
		Experience: []resume.ExperienceEntry{
			{Company: "Acme", Position: "Engineer", Description: "Built engines.", StartYear: 2014, EndYear: 2016},
		},
		Projects: []resume.ProjectEntry{
			{ProjectName: "Notes", ProjectDescription: "Annotated a memoir."},
		},
		Skills: []resume.SkillEntry{
			{Name: "Mathematics", Level: resume.LevelExpert},
		},
	}
	return doc
}

func TestMarkdown(t *testing.T) {
	md := Markdown(layout.Render(sampleDocument()))

	wants := []string{
		"# Ada Lovelace\n",
		"[LinkedIn](<https://linkedin.com/in/ada>) | [GitHub](<https://github.com/ada>) | [Others](<https://ada.dev>)",
		"## Contact Information\n",
		"**Email:** ada@example.com\\\n**Phone:** 1234567890\\\n**Country:** England\n\n",
		"## Education\n",
		"- BS in CS at MIT (2010 to 2014)\n",
		"## Experience\n",
		"- Engineer at Acme (2014 - 2016)\\\n  Built engines.\n",
		"## Projects\n",
		"- Notes\\\n  Annotated a memoir.\n",
		"## Skills\n",
		"- Mathematics - Expert\n",
	}
	for _, want := range wants {
		if !strings.Contains(md, want) {
			t.Errorf("Expected markdown to contain %q:\n%s", want, md)
		}
	}

	order := []string{"## Contact Information", "## Education", "## Experience", "## Projects", "## Skills"}
	last := -1
	for _, heading := range order {
		idx := strings.Index(md, heading)
		if idx <= last {
			t.Errorf("Expected %q after previous section", heading)
		}
		last = idx
	}
}

func TestMarkdownEscapesUserText(t *testing.T) {
	doc := sampleDocument()
	doc.Projects[0].ProjectName = "*bold* [link](x) #tag"

	md := Markdown(layout.Render(doc))

	want := `- \*bold\* \[link\](x) \#tag`
	if !strings.Contains(md, want) {
		t.Errorf("Expected escaped project name %q in:\n%s", want, md)
	}
}

func TestMarkdownEmptyLinks(t *testing.T) {
	doc := sampleDocument()
	doc.GithubLink = ""
	doc.OptionalLink = ""

	md := Markdown(layout.Render(doc))

	if !strings.Contains(md, "[LinkedIn](<https://linkedin.com/in/ada>) | GitHub\n") {
		t.Errorf("Expected plain GitHub label without target:\n%s", md)
	}
	if strings.Contains(md, "Others") {
		t.Error("Expected no Others link without an optional link")
	}
}

func TestMarkdownContactEndsWithoutBreak(t *testing.T) {
	md := Markdown(layout.Render(sampleDocument()))

	if strings.Contains(md, "England\\") {
		t.Errorf("Expected no hard break after the last contact line:\n%s", md)
	}
}

func TestMarkdownSkipsEmptyContinuation(t *testing.T) {
	doc := sampleDocument()
	doc.Experience[0].Description = ""
	doc.Projects[0].ProjectDescription = ""

	md := Markdown(layout.Render(doc))

	wants := []string{
		"- Engineer at Acme (2014 - 2016)\n",
		"- Notes\n",
	}
	for _, want := range wants {
		if !strings.Contains(md, want) {
			t.Errorf("Expected markdown to contain %q:\n%s", want, md)
		}
	}
	if strings.Contains(md, "\\\n  \n") {
		t.Errorf("Expected no empty continuation line:\n%s", md)
	}
}

func TestMarkdownEscapesListMarkers(t *testing.T) {
	tests := []struct {
		name        string
		project     string
		description string
		want        string
	}{
		{
			name:    "ordered dot",
			project: "1. Intro",
			want:    "- 1\\. Intro\n",
		},
		{
			name:    "dash",
			project: "- dash",
			want:    "- \\- dash\n",
		},
		{
			name:    "plus",
			project: "+ plus",
			want:    "- \\+ plus\n",
		},
		{
			name:        "ordered paren in description",
			project:     "Notes",
			description: "2) second draft",
			want:        "- Notes\\\n  2\\) second draft\n",
		},
		{
			name:    "number mid text untouched",
			project: "Version 1. Intro",
			want:    "- Version 1. Intro\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := sampleDocument()
			doc.Projects[0].ProjectName = tt.project
			doc.Projects[0].ProjectDescription = tt.description

			md := Markdown(layout.Render(doc))
			if !strings.Contains(md, tt.want) {
				t.Errorf("Expected markdown to contain %q:\n%s", tt.want, md)
			}
		})
	}
}

func TestEscapeLineStart(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1. Intro", `1\. Intro`},
		{"10) Ten", `10\) Ten`},
		{"-x", `\-x`},
		{"+x", `\+x`},
		{"plain", "plain"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := escapeLineStart(tt.in); got != tt.want {
			t.Errorf("escapeLineStart(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
