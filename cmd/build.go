package cmd

import (
	"context"
	"os"

	"github.com/nikogura/resume-builder/pkg/config"
	"github.com/nikogura/resume-builder/pkg/export"
	"github.com/nikogura/resume-builder/pkg/renderer"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var buildOutputDir string

//nolint:gochecknoglobals // Cobra boilerplate
var buildEngine string

//nolint:gochecknoglobals // Cobra boilerplate
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Fill in the resume form and export it",
	Long: `Start an interactive session that edits the resume form section by
section. From the menu you can validate the form at any time, save a text copy
and export the finished resume to PDF.

Export is refused while any field is invalid; every problem is listed.

Example:
  resume-builder build
  resume-builder build --engine chrome --output-dir ~/Documents`,
	RunE: runBuild,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVar(&buildOutputDir, "output-dir", "", "Output directory (default from config)")
	buildCmd.Flags().StringVar(&buildEngine, "engine", "", "PDF engine: pandoc or chrome (default from config)")
}

func runBuild(cmd *cobra.Command, args []string) (err error) {
	ctx := context.Background()

	var cfg config.Config
	cfg, err = loadBuildConfig(getConfigFile())
	if err != nil {
		return err
	}

	if buildEngine != "" {
		cfg.Engine = buildEngine
		err = cfg.Validate()
		if err != nil {
			return err
		}
	}

	var engine renderer.Engine
	engine, err = renderer.New(cfg)
	if err != nil {
		return err
	}

	exporter := &export.Exporter{
		Engine:    engine,
		OutputDir: getOutputDir(buildOutputDir, cfg.Defaults.OutputDir),
	}

	log.Debug().Str("engine", engine.Name()).Str("output_dir", exporter.OutputDir).Msg("starting build session")

	s := newSession(newSurveyPrompter(), exporter, cfg.GetTimeout(), os.Stdout)
	s.progress = !getVerbose()

	err = s.run(ctx)
	return err
}

// loadBuildConfig reads the config file, falling back to defaults when none
// exists.
func loadBuildConfig(path string) (cfg config.Config, err error) {
	cfg, err = config.Load(path)
	if errors.Is(err, config.ErrNotFound) {
		log.Debug().Err(err).Msg("using default configuration")
		cfg = config.Default()
		err = nil
		return cfg, err
	}
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return cfg, err
	}
	return cfg, err
}

// getOutputDir returns the flag value if set, otherwise the config default.
func getOutputDir(flagValue, configValue string) (outDir string) {
	outDir = flagValue
	if outDir == "" {
		outDir = configValue
	}
	return outDir
}
