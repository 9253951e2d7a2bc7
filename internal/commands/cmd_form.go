package commands

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/datepicker/internal/core/config"
	"github.com/colonyops/datepicker/internal/core/logging"
	"github.com/colonyops/datepicker/internal/core/selection"
	"github.com/colonyops/datepicker/internal/printer"
	"github.com/colonyops/datepicker/internal/tui/components/form"
)

type FormCmd struct {
	app *App

	// flags
	title    string
	pairs    []string
	required bool

	// run swaps out the terminal program in tests.
	run func(m tea.Model) error
}

// NewFormCmd creates a new form command.
func NewFormCmd(app *App) *FormCmd {
	return &FormCmd{app: app, run: runProgram}
}

// Register adds the form command to the application.
func (cmd *FormCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "form",
		Usage:     "Edit several stored fields in one form",
		UsageText: "datepicker form [--pair DATE=TIME]... [--required] <field[:picker]>...",
		Description: `Shows one text field per argument. Type pattern text (15/06/2567 09:30)
or press ctrl+p to open the field's picker; only one picker is open at a
time. Values are saved when the form is submitted past its last field.

--pair links a date field with a time field so each picker sees the other's
value.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "title",
				Usage:       "form title",
				Destination: &cmd.title,
			},
			&cli.StringSliceFlag{
				Name:        "pair",
				Usage:       "link a date field and a time field (date=time)",
				Destination: &cmd.pairs,
			},
			&cli.BoolFlag{
				Name:        "required",
				Usage:       "refuse to submit empty fields",
				Destination: &cmd.required,
			},
		},
		ShellComplete: FieldNameCompleter(cmd.app),
		Action:        cmd.runForm,
	})

	return app
}

// formSpec is one parsed field argument.
type formSpec struct {
	name   string
	picker string
}

func parseFormArgs(args []string) ([]formSpec, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("at least one field is required")
	}

	specs := make([]formSpec, 0, len(args))
	seen := make(map[string]bool, len(args))
	for _, arg := range args {
		name, pickerName, found := strings.Cut(arg, ":")
		if !found || pickerName == "" {
			pickerName = config.DefaultPicker
		}
		if name == "" {
			return nil, fmt.Errorf("invalid field %q", arg)
		}
		if seen[name] {
			return nil, fmt.Errorf("field %q given twice", name)
		}
		seen[name] = true
		specs = append(specs, formSpec{name: name, picker: pickerName})
	}
	return specs, nil
}

func (cmd *FormCmd) runForm(ctx context.Context, c *cli.Command) error {
	specs, err := parseFormArgs(c.Args().Slice())
	if err != nil {
		return err
	}

	fields, initial, err := cmd.buildFields(ctx, specs)
	if err != nil {
		return err
	}

	names := make([]string, len(specs))
	formFields := make([]form.Field, len(fields))
	for i, f := range fields {
		names[i] = specs[i].name
		formFields[i] = f
	}

	title := cmd.title
	if title == "" {
		title = "datepicker"
	}
	m := &formModel{dialog: form.NewDialog(title, formFields, names)}

	release := cmd.app.holdLogs()
	err = cmd.run(m)
	release()
	if err != nil {
		return fmt.Errorf("run form: %w", err)
	}

	p := printer.Ctx(ctx)
	if !m.dialog.Submitted() {
		p.Infof("Form cancelled, nothing saved")
		return nil
	}

	changed := make(map[string]string)
	for name, value := range m.dialog.FormValues() {
		if value != initial[name] {
			changed[name] = value
		}
	}
	if len(changed) == 0 {
		p.Infof("No changes")
		return nil
	}

	if err := cmd.app.Fields.Import(ctx, changed); err != nil {
		return fmt.Errorf("save form: %w", err)
	}

	for _, spec := range specs {
		value, ok := changed[spec.name]
		if !ok {
			continue
		}
		if value == "" {
			p.Successf("%s cleared", spec.name)
		} else {
			p.Success(fmt.Sprintf("%s set", spec.name), thaiText(value))
		}
	}
	return nil
}

// buildFields creates one field per spec, seeded from the store, and links
// the pairs. It also returns the stored values the form started from.
func (cmd *FormCmd) buildFields(ctx context.Context, specs []formSpec) ([]*form.DateTimeField, map[string]string, error) {
	registry := &selection.Registry{}
	byName := make(map[string]*form.DateTimeField, len(specs))
	initial := make(map[string]string, len(specs))
	fields := make([]*form.DateTimeField, 0, len(specs))

	for _, spec := range specs {
		mode, cfg, err := cmd.app.Config.Picker(spec.picker)
		if err != nil {
			return nil, nil, fmt.Errorf("field %q: %w", spec.name, err)
		}

		value, err := cmd.app.Fields.Value(ctx, spec.name)
		if err != nil {
			return nil, nil, fmt.Errorf("load field %q: %w", spec.name, err)
		}
		initial[spec.name] = value

		fieldCtx := logging.WithField(ctx, spec.name)
		observer := selection.Observers{
			selection.LogObserver{Logger: logging.Field(spec.name)},
			cmd.app.Events.Observer(fieldCtx, spec.name, func(err error) {
				log.Warn().Ctx(fieldCtx).Err(err).Msg("failed to record picker event")
			}),
		}

		f := form.NewDateTimeField(form.DateTimeFieldOptions{
			Label:      fmt.Sprintf("%s (%s)", spec.name, mode),
			Mode:       mode,
			Config:     cfg,
			Value:      value,
			Validation: form.FieldValidation{Required: cmd.required},
			Clock:      cmd.app.clock(),
			Observer:   observer,
			Registry:   registry,
		})
		byName[spec.name] = f
		fields = append(fields, f)
	}

	for _, pair := range cmd.pairs {
		dateName, timeName, ok := strings.Cut(pair, "=")
		dateField, hasDate := byName[dateName]
		timeField, hasTime := byName[timeName]
		if !ok || !hasDate || !hasTime {
			return nil, nil, fmt.Errorf("invalid pair %q: expected DATE=TIME naming two form fields", pair)
		}
		if !dateField.Mode().HasDate() || !timeField.Mode().HasTime() {
			return nil, nil, fmt.Errorf("invalid pair %q: %s is a %s field and %s is a %s field",
				pair, dateName, dateField.Mode(), timeName, timeField.Mode())
		}
		dateField.SetPaired(timeField)
		timeField.SetPaired(dateField)
	}

	return fields, initial, nil
}

// formModel runs a form dialog as a whole program.
type formModel struct {
	dialog *form.Dialog
}

func (m *formModel) Init() tea.Cmd { return nil }

func (m *formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.dialog, cmd = m.dialog.Update(msg)
	if m.dialog.Submitted() || m.dialog.Cancelled() {
		return m, tea.Quit
	}
	return m, cmd
}

func (m *formModel) View() tea.View {
	return tea.NewView(m.dialog.View())
}
