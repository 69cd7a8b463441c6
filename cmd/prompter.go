package cmd

import (
	"context"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/pkg/errors"
)

// errAborted signals the user aborted input with Ctrl+C.
var errAborted = errors.New("input aborted")

// InputConfig configures a single-line text prompt.
type InputConfig struct {
	Message string
	Default string
	Help    string
}

// SelectConfig configures a single-choice prompt.
type SelectConfig struct {
	Message      string
	Options      []string
	DefaultIndex int
	PageSize     int
}

// ConfirmConfig configures a yes/no prompt.
type ConfirmConfig struct {
	Message string
	Default bool
}

// Prompter asks the user questions. The build session talks only to this
// interface so it can be driven by a script in tests.
type Prompter interface {
	Input(ctx context.Context, cfg InputConfig) (answer string, err error)
	Select(ctx context.Context, cfg SelectConfig) (index int, err error)
	Confirm(ctx context.Context, cfg ConfirmConfig) (ok bool, err error)
}

type surveyPrompter struct{}

func newSurveyPrompter() (p Prompter) {
	p = &surveyPrompter{}
	return p
}

func (p *surveyPrompter) Input(ctx context.Context, cfg InputConfig) (answer string, err error) {
	err = ctx.Err()
	if err != nil {
		return answer, err
	}
	prompt := &survey.Input{
		Message: cfg.Message,
		Default: cfg.Default,
		Help:    cfg.Help,
	}
	err = survey.AskOne(prompt, &answer)
	if err != nil {
		err = translateSurveyErr(err)
		return answer, err
	}
	return answer, err
}

func (p *surveyPrompter) Select(ctx context.Context, cfg SelectConfig) (index int, err error) {
	err = ctx.Err()
	if err != nil {
		return index, err
	}
	prompt := &survey.Select{
		Message: cfg.Message,
		Options: cfg.Options,
	}
	if cfg.PageSize > 0 {
		prompt.PageSize = cfg.PageSize
	}
	if cfg.DefaultIndex >= 0 && cfg.DefaultIndex < len(cfg.Options) {
		prompt.Default = cfg.Options[cfg.DefaultIndex]
	}
	// survey writes the chosen index when the target is an int
	err = survey.AskOne(prompt, &index)
	if err != nil {
		err = translateSurveyErr(err)
		return index, err
	}
	return index, err
}

func (p *surveyPrompter) Confirm(ctx context.Context, cfg ConfirmConfig) (ok bool, err error) {
	err = ctx.Err()
	if err != nil {
		return ok, err
	}
	prompt := &survey.Confirm{
		Message: cfg.Message,
		Default: cfg.Default,
	}
	err = survey.AskOne(prompt, &ok)
	if err != nil {
		err = translateSurveyErr(err)
		return ok, err
	}
	return ok, err
}

func translateSurveyErr(err error) (translated error) {
	if errors.Is(err, terminal.InterruptErr) {
		translated = errAborted
		return translated
	}
	translated = err
	return translated
}
