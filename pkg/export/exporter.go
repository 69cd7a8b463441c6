// Package export turns a valid form model into a PDF file on disk.
package export

import (
	"context"
	"os"
	"path/filepath"

	"github.com/nikogura/resume-builder/pkg/form"
	"github.com/nikogura/resume-builder/pkg/layout"
	"github.com/nikogura/resume-builder/pkg/renderer"
	"github.com/nikogura/resume-builder/pkg/resume"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Exporter renders the model through an engine and writes the result.
type Exporter struct {
	Engine    renderer.Engine
	OutputDir string
}

// Result describes a written PDF.
type Result struct {
	Path  string
	Bytes int
}

// Export validates the model and, when it is valid, renders and writes the
// PDF. An invalid model yields a *form.ValidationError carrying every
// violation and the engine is not invoked.
func (e *Exporter) Export(ctx context.Context, m *form.Manager) (result Result, err error) {
	if e.Engine == nil {
		err = errors.New("no render engine configured")
		return result, err
	}

	report := m.Validate()
	if !report.Valid() {
		log.Debug().Int("violations", len(report.Violations)).Msg("export blocked by validation")
		err = report.Err()
		return result, err
	}

	doc := m.Snapshot()
	described := layout.Render(doc)

	log.Debug().Str("engine", e.Engine.Name()).Int("blocks", len(described.Blocks)).Msg("rendering resume")

	var pdf []byte
	pdf, err = e.Engine.RenderPDF(ctx, described)
	if err != nil {
		err = errors.Wrapf(err, "failed to render with %s", e.Engine.Name())
		return result, err
	}

	outputDir := e.OutputDir
	if outputDir == "" {
		outputDir = "."
	}

	err = os.MkdirAll(outputDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outputDir)
		return result, err
	}

	result.Path = filepath.Join(outputDir, resume.Filename(doc))
	err = os.WriteFile(result.Path, pdf, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write pdf: %s", result.Path)
		return result, err
	}
	result.Bytes = len(pdf)

	log.Info().Str("path", result.Path).Int("bytes", result.Bytes).Msg("resume exported")

	return result, err
}
