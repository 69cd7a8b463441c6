package renderer

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/nikogura/resume-builder/pkg/layout"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Pandoc renders documents by converting them to markdown and running
// pandoc with an optional LaTeX template.
type Pandoc struct {
	templatePath string
	pdfEngine    string
}

// NewPandoc creates a pandoc engine. Both arguments are optional.
func NewPandoc(templatePath, pdfEngine string) (p *Pandoc) {
	p = &Pandoc{templatePath: templatePath, pdfEngine: pdfEngine}
	return p
}

// Name returns the engine name.
func (p *Pandoc) Name() (name string) {
	name = "pandoc"
	return name
}

// RenderPDF converts the document to PDF bytes.
func (p *Pandoc) RenderPDF(ctx context.Context, doc layout.Document) (pdf []byte, err error) {
	// Validate pandoc exists
	err = checkPandocExists(ctx)
	if err != nil {
		return pdf, err
	}

	if p.templatePath != "" {
		err = validateFiles(p.templatePath)
		if err != nil {
			return pdf, err
		}
	}

	var workDir string
	workDir, err = os.MkdirTemp("", "resume-builder-*")
	if err != nil {
		err = errors.Wrap(err, "failed to create work directory")
		return pdf, err
	}
	defer os.RemoveAll(workDir)

	markdownPath := filepath.Join(workDir, "resume.md")
	outputPath := filepath.Join(workDir, "resume.pdf")

	err = WriteMarkdown(Markdown(doc), markdownPath)
	if err != nil {
		return pdf, err
	}

	cmd := exec.CommandContext(ctx, "pandoc", p.args(markdownPath, outputPath, doc.Title)...)

	log.Debug().Strs("args", cmd.Args).Msg("running pandoc")

	// Capture output
	var output []byte
	output, err = cmd.CombinedOutput()
	if err != nil {
		err = errors.Wrapf(err, "pandoc failed: %s", string(output))
		return pdf, err
	}

	pdf, err = os.ReadFile(outputPath)
	if err != nil {
		err = errors.Wrapf(err, "failed to read pandoc output: %s", outputPath)
		return pdf, err
	}

	return pdf, err
}

// args builds the pandoc command line.
func (p *Pandoc) args(markdownPath, outputPath, title string) (args []string) {
	args = []string{
		"-f", "markdown",
		"-t", "pdf",
		"-o", outputPath,
		"--number-sections=false",
		"--metadata", "pagetitle=" + title,
	}
	if p.templatePath != "" {
		args = append(args, "--template", p.templatePath)
	}
	if p.pdfEngine != "" {
		args = append(args, "--pdf-engine", p.pdfEngine)
	}
	args = append(args, markdownPath)
	return args
}

// checkPandocExists verifies pandoc is installed.
func checkPandocExists(ctx context.Context) (err error) {
	cmd := exec.CommandContext(ctx, "pandoc", "--version")
	err = cmd.Run()
	if err != nil {
		err = errors.New("pandoc not found in PATH (install pandoc to generate PDFs)")
		return err
	}
	return err
}

// validateFiles checks that required files exist.
func validateFiles(paths ...string) (err error) {
	for _, path := range paths {
		_, err = os.Stat(path)
		if os.IsNotExist(err) {
			err = errors.Errorf("file not found: %s", path)
			return err
		}
	}
	return err
}

// WriteMarkdown writes markdown content to a file.
func WriteMarkdown(content, outputPath string) (err error) {
	// Ensure output directory exists
	outputDir := filepath.Dir(outputPath)
	err = os.MkdirAll(outputDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outputDir)
		return err
	}

	// Write file
	err = os.WriteFile(outputPath, []byte(content), 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write markdown file: %s", outputPath)
		return err
	}

	return err
}
