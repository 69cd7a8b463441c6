package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/nikogura/resume-builder/pkg/export"
	"github.com/nikogura/resume-builder/pkg/form"
	"github.com/nikogura/resume-builder/pkg/resume"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	menuPersonal = "Edit personal information"
	menuValidate = "Validate"
	menuSave     = "Save as text"
	menuExport   = "Export PDF"
	menuQuit     = "Quit"

	entryAdd    = "Add entry"
	entryRemove = "Remove entry"
	entryBack   = "Back"
)

// session is one interactive editing run over a single form.
type session struct {
	prompt   Prompter
	manager  *form.Manager
	exporter *export.Exporter
	timeout  time.Duration
	out      io.Writer
	progress bool
}

func newSession(prompt Prompter, exporter *export.Exporter, timeout time.Duration, out io.Writer) (s *session) {
	s = &session{
		prompt:   prompt,
		manager:  form.NewManager(),
		exporter: exporter,
		timeout:  timeout,
		out:      out,
	}
	return s
}

func editMenuOption(c resume.Collection) (option string) {
	option = "Edit " + c.Label()
	return option
}

func mainMenu() (options []string) {
	options = []string{menuPersonal}
	for _, c := range resume.Collections() {
		options = append(options, editMenuOption(c))
	}
	options = append(options, menuValidate, menuSave, menuExport, menuQuit)
	return options
}

// run shows the main menu until the user quits. Ctrl+C ends the session
// without an error.
func (s *session) run(ctx context.Context) (err error) {
	options := mainMenu()
	for {
		var choice int
		choice, err = s.prompt.Select(ctx, SelectConfig{Message: "What next?", Options: options, PageSize: len(options)})
		if err != nil {
			break
		}

		option := options[choice]
		if option == menuQuit {
			return nil
		}

		err = s.dispatch(ctx, option)
		if err != nil {
			break
		}
	}

	if errors.Is(err, errAborted) {
		fmt.Fprintln(s.out, "Aborted.")
		err = nil
	}
	return err
}

func (s *session) dispatch(ctx context.Context, option string) (err error) {
	switch option {
	case menuPersonal:
		err = s.editPersonal(ctx)
	case menuValidate:
		s.printReport(s.manager.Validate())
	case menuSave:
		err = s.save(ctx)
	case menuExport:
		err = s.export(ctx)
	default:
		for _, c := range resume.Collections() {
			if option == editMenuOption(c) {
				err = s.editCollection(ctx, c)
				return err
			}
		}
		err = errors.Errorf("unknown menu option: %s", option)
	}
	return err
}

func (s *session) editPersonal(ctx context.Context) (err error) {
	for _, path := range form.ScalarFields() {
		err = s.editField(ctx, path, fieldLabel(path))
		if err != nil {
			return err
		}
	}
	return err
}

func (s *session) editCollection(ctx context.Context, c resume.Collection) (err error) {
	for {
		options := s.entryOptions(c)
		options = append(options, entryAdd, entryRemove, entryBack)

		var choice int
		choice, err = s.prompt.Select(ctx, SelectConfig{Message: c.Label(), Options: options})
		if err != nil {
			return err
		}

		switch options[choice] {
		case entryBack:
			return nil
		case entryAdd:
			err = s.manager.AddEntry(c)
			if err != nil {
				return err
			}
			err = s.editEntry(ctx, c, 0)
		case entryRemove:
			err = s.removeEntry(ctx, c)
		default:
			err = s.editEntry(ctx, c, choice)
		}
		if err != nil {
			return err
		}
	}
}

// entryOptions labels each entry of a collection with its first field.
func (s *session) entryOptions(c resume.Collection) (options []string) {
	fields := form.EntryFields(c)
	for i := 0; i < s.manager.Len(c); i++ {
		summary, _ := s.manager.Field(form.EntryPath(c, i, fields[0]))
		if summary == "" {
			summary = "(empty)"
		}
		options = append(options, fmt.Sprintf("#%d %s", i+1, summary))
	}
	return options
}

func (s *session) editEntry(ctx context.Context, c resume.Collection, index int) (err error) {
	for _, field := range form.EntryFields(c) {
		path := form.EntryPath(c, index, field)
		if c == resume.CollectionSkills && field == "level" {
			err = s.selectLevel(ctx, path)
		} else {
			err = s.editField(ctx, path, fieldLabel(field))
		}
		if err != nil {
			return err
		}
	}
	return err
}

// editField prompts until the answer can be stored in the field.
func (s *session) editField(ctx context.Context, path, label string) (err error) {
	for {
		current, _ := s.manager.Field(path)

		var answer string
		answer, err = s.prompt.Input(ctx, InputConfig{Message: label, Default: current})
		if err != nil {
			return err
		}

		err = s.manager.SetField(path, answer)
		if errors.Is(err, form.ErrInvalidValue) {
			fmt.Fprintf(s.out, "  %v\n", err)
			continue
		}
		return err
	}
}

func (s *session) selectLevel(ctx context.Context, path string) (err error) {
	levels := resume.SkillLevels()
	options := make([]string, 0, len(levels))
	current, _ := s.manager.Field(path)
	defaultIndex := 0
	for i, level := range levels {
		options = append(options, level.String())
		if level.String() == current {
			defaultIndex = i
		}
	}

	var choice int
	choice, err = s.prompt.Select(ctx, SelectConfig{Message: "Level", Options: options, DefaultIndex: defaultIndex})
	if err != nil {
		return err
	}

	err = s.manager.SetField(path, options[choice])
	return err
}

func (s *session) removeEntry(ctx context.Context, c resume.Collection) (err error) {
	options := s.entryOptions(c)
	if len(options) == 0 {
		fmt.Fprintf(s.out, "No %s entries to remove.\n", strings.ToLower(c.Label()))
		return err
	}

	var choice int
	choice, err = s.prompt.Select(ctx, SelectConfig{Message: "Remove which entry?", Options: options})
	if err != nil {
		return err
	}

	var ok bool
	ok, err = s.prompt.Confirm(ctx, ConfirmConfig{Message: fmt.Sprintf("Remove %s?", options[choice])})
	if err != nil || !ok {
		return err
	}

	err = s.manager.RemoveEntry(c, choice)
	return err
}

func (s *session) printReport(report form.Report) {
	if report.Valid() {
		fmt.Fprintln(s.out, "All fields are valid.")
		return
	}
	fmt.Fprintf(s.out, "%d problem(s) found:\n", len(report.Violations))
	for _, v := range report.Violations {
		fmt.Fprintf(s.out, "  %s\n", v)
	}
}

// save writes the YAML text form of the resume.
func (s *session) save(ctx context.Context) (err error) {
	doc := s.manager.Snapshot()
	defaultPath := strings.TrimSuffix(resume.Filename(doc), filepath.Ext(resume.Filename(doc))) + ".yaml"

	var path string
	path, err = s.prompt.Input(ctx, InputConfig{Message: "Save to", Default: defaultPath})
	if err != nil {
		return err
	}

	var data []byte
	data, err = resume.MarshalText(doc)
	if err != nil {
		return err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write %s", path)
		return err
	}

	fmt.Fprintf(s.out, "Saved %s\n", path)
	return err
}

// export renders the PDF. Validation failures are shown to the user and do
// not end the session.
func (s *session) export(ctx context.Context) (err error) {
	exportCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var spin *spinner
	if s.progress {
		spin = newSpinner(s.out, "Rendering PDF...")
		spin.start()
	}

	var result export.Result
	result, err = s.exporter.Export(exportCtx, s.manager)

	if spin != nil {
		spin.stopSpinner()
	}

	var verr *form.ValidationError
	if errors.As(err, &verr) {
		s.printReport(s.manager.Validate())
		return nil
	}
	if err != nil {
		log.Error().Err(err).Msg("export failed")
		fmt.Fprintf(s.out, "Export failed: %v\n", err)
		return nil
	}

	fmt.Fprintf(s.out, "Wrote %s (%d bytes)\n", result.Path, result.Bytes)
	return err
}

// fieldLabel turns a camelCase field name into a prompt label.
func fieldLabel(name string) (label string) {
	var sb strings.Builder
	for i, r := range name {
		switch {
		case i == 0:
			r = unicode.ToUpper(r)
		case unicode.IsUpper(r):
			sb.WriteRune(' ')
			r = unicode.ToLower(r)
		}
		sb.WriteRune(r)
	}
	label = sb.String()
	return label
}
