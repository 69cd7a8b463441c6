package renderer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nikogura/resume-builder/pkg/layout"
)

//nolint:gochecknoglobals // escaping table
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"#", `\#`,
	"<", `\<`,
	">", `\>`,
	"|", `\|`,
	"$", `\$`,
)

// orderedMarker matches text pandoc would read as an ordered list item.
var orderedMarker = regexp.MustCompile(`^(\d+)([.)])`) //nolint:gochecknoglobals // compiled pattern

// Markdown converts a document description to pandoc markdown.
func Markdown(doc layout.Document) (md string) {
	var sb strings.Builder
	for _, b := range doc.Blocks {
		writeMarkdownBlock(&sb, b)
	}
	md = sb.String()
	return md
}

func writeMarkdownBlock(sb *strings.Builder, b layout.Block) {
	switch b.Kind {
	case layout.KindColumns:
		// Markdown has no columns; the parts follow one another.
		for _, child := range b.Children {
			writeMarkdownBlock(sb, child)
		}
	case layout.KindStack:
		parts := make([]string, 0, len(b.Children))
		for _, child := range b.Children {
			parts = append(parts, markdownInline(child))
		}
		sb.WriteString(strings.Join(parts, " | "))
		sb.WriteString("\n\n")
	case layout.KindSection:
		fmt.Fprintf(sb, "## %s\n\n", escapeMarkdown(b.Text))
		// Consecutive pairs share one paragraph, separated by hard breaks.
		inPairs := false
		for _, child := range b.Children {
			if child.Kind == layout.KindPair {
				if inPairs {
					sb.WriteString("\\\n")
				}
				writeMarkdownBlock(sb, child)
				inPairs = true
				continue
			}
			if inPairs {
				sb.WriteString("\n\n")
				inPairs = false
			}
			writeMarkdownBlock(sb, child)
		}
		if inPairs {
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	case layout.KindList:
		for _, item := range b.Children {
			writeMarkdownBlock(sb, item)
		}
		sb.WriteString("\n")
	case layout.KindItem:
		fmt.Fprintf(sb, "- %s", escapeLineStart(escapeMarkdown(b.Text)))
		for _, child := range b.Children {
			if child.Text == "" {
				continue
			}
			fmt.Fprintf(sb, "\\\n  %s", escapeLineStart(escapeMarkdown(child.Text)))
		}
		sb.WriteString("\n")
	case layout.KindPair:
		fmt.Fprintf(sb, "**%s:** %s", escapeMarkdown(b.Label), escapeLineStart(escapeMarkdown(b.Text)))
	default:
		if b.Style == layout.StyleName {
			fmt.Fprintf(sb, "# %s\n\n", escapeMarkdown(b.Text))
			return
		}
		sb.WriteString(markdownInline(b))
		sb.WriteString("\n\n")
	}
}

func markdownInline(b layout.Block) (s string) {
	s = escapeMarkdown(b.Text)
	if b.Bold {
		s = "**" + s + "**"
	}
	if b.Italics {
		s = "*" + s + "*"
	}
	if b.Link != "" {
		s = fmt.Sprintf("[%s](<%s>)", s, b.Link)
	}
	return s
}

func escapeMarkdown(text string) (escaped string) {
	escaped = markdownEscaper.Replace(text)
	return escaped
}

// escapeLineStart keeps text that begins like a list marker from opening a
// nested list.
func escapeLineStart(text string) (escaped string) {
	if strings.HasPrefix(text, "-") || strings.HasPrefix(text, "+") {
		escaped = `\` + text
		return escaped
	}
	escaped = orderedMarker.ReplaceAllString(text, `$1\$2`)
	return escaped
}
