package renderer

import (
	"context"

	"github.com/nikogura/resume-builder/pkg/config"
	"github.com/nikogura/resume-builder/pkg/layout"
	"github.com/pkg/errors"
)

// Engine turns a document description into PDF bytes.
type Engine interface {
	Name() (name string)
	RenderPDF(ctx context.Context, doc layout.Document) (pdf []byte, err error)
}

// New returns the engine selected by the configuration.
func New(cfg config.Config) (engine Engine, err error) {
	switch cfg.GetEngine() {
	case config.EnginePandoc:
		engine = NewPandoc(cfg.Pandoc.TemplatePath, cfg.Pandoc.PDFEngine)
	case config.EngineChrome:
		engine = NewChrome(cfg.Chrome)
	default:
		err = errors.Errorf("unsupported engine: %s", cfg.GetEngine())
	}
	return engine, err
}
