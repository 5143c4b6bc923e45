package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"leadportaal/internal/forms"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/briandowns/spinner"
)

var errAborted = errors.New("afgebroken")

// backAnswer is the sentinel a select prompt offers on steps past the first.
const backAnswer = "← Vorige stap"

// runWizard walks the user through every step of the schema and submits the
// result. Step navigation and the final submission go through forms.Wizard so
// terminal intake behaves exactly like the website forms.
func runWizard(ctx context.Context, schema *forms.Schema, submitter forms.Submitter) error {
	w := forms.NewWizard(schema, submitter)
	defer w.Close()

	for {
		step := w.CurrentStep()
		fmt.Printf("\n%s (stap %d van %d)\n", step.Label, step.Index+1, schema.NumSteps())

		goBack, err := promptStep(w, step)
		if err != nil {
			return err
		}
		if goBack {
			w.Previous()
			continue
		}

		last := step.Index == schema.NumSteps()-1
		var result forms.StepResult
		if last {
			s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
			s.Suffix = " Versturen..."
			s.Start()
			result, err = w.Next(ctx)
			s.Stop()
		} else {
			result, err = w.Next(ctx)
		}

		if errors.Is(err, forms.ErrStepInvalid) {
			printStepErrors(schema, result)
			continue
		}
		if err != nil {
			// Submission failure: the wizard keeps the answers so the user
			// can step back and fix them, but the CLI just reports it.
			fmt.Println(w.ErrorMessage())
			return err
		}

		if last {
			fmt.Printf("Bedankt! Je aanvraag is ontvangen (referentie %s).\n", w.RecordID())
			return nil
		}
	}
}

// promptStep asks every field of the step, prefilled with earlier answers.
// It reports goBack=true when the user picks the back option.
func promptStep(w *forms.Wizard, step forms.Step) (bool, error) {
	answers := w.Answers()

	for _, field := range step.Fields {
		switch field.Type {
		case forms.FieldChoice:
			options := field.Options
			if step.Index > 0 {
				options = append([]string{backAnswer}, options...)
			}
			var out string
			prompt := &survey.Select{
				Message: field.Label,
				Options: options,
			}
			if cur := answers.Text(field.Name); cur != "" {
				prompt.Default = cur
			}
			if err := survey.AskOne(prompt, &out); err != nil {
				return false, translateSurveyErr(err)
			}
			if out == backAnswer {
				return true, nil
			}
			if err := answers.SetText(field.Name, out); err != nil {
				return false, err
			}

		case forms.FieldTags:
			var out []string
			prompt := &survey.MultiSelect{
				Message: field.Label,
				Options: field.Options,
				Default: answers.Tags(field.Name),
			}
			if err := survey.AskOne(prompt, &out); err != nil {
				return false, translateSurveyErr(err)
			}
			if err := answers.SetTags(field.Name, out); err != nil {
				return false, err
			}

		case forms.FieldFlag:
			var out bool
			prompt := &survey.Confirm{
				Message: field.Label,
				Default: answers.Flag(field.Name),
			}
			if err := survey.AskOne(prompt, &out); err != nil {
				return false, translateSurveyErr(err)
			}
			if err := answers.SetFlag(field.Name, out); err != nil {
				return false, err
			}

		default:
			var out string
			prompt := &survey.Input{
				Message: field.Label,
				Default: answers.Text(field.Name),
			}
			if err := survey.AskOne(prompt, &out); err != nil {
				return false, translateSurveyErr(err)
			}
			if err := answers.SetText(field.Name, out); err != nil {
				return false, err
			}
		}
	}

	return false, nil
}

func printStepErrors(schema *forms.Schema, result forms.StepResult) {
	if len(result.MissingFields) > 0 {
		fmt.Printf("Verplichte velden ontbreken: %s\n", strings.Join(labelsFor(schema, result.MissingFields), ", "))
	}
	if len(result.FormatErrors) > 0 {
		fmt.Printf("Ongeldige invoer: %s\n", strings.Join(labelsFor(schema, result.FormatErrors), ", "))
	}
}

func labelsFor(schema *forms.Schema, names []string) []string {
	labels := make([]string, 0, len(names))
	for _, name := range names {
		if f, ok := schema.Field(name); ok {
			labels = append(labels, f.Label)
		} else {
			labels = append(labels, name)
		}
	}
	return labels
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return errAborted
	}
	return err
}
