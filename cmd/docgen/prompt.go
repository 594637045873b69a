package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/sahilbrid/nyaay-saathi/internal/domain/form"
)

var errAborted = errors.New("aborted")

// prompter asks for one field value. check returns a message when the value
// is not acceptable, or "" when it is.
type prompter interface {
	Ask(ctx context.Context, field form.FieldDescriptor, def string, check func(string) string) (string, error)
}

type surveyPrompter struct{}

func (surveyPrompter) Ask(ctx context.Context, field form.FieldDescriptor, def string, check func(string) string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	message := field.Label
	if field.Required {
		message += " *"
	}

	var prompt survey.Prompt = &survey.Input{Message: message, Default: def}
	if field.Input == string(form.KindTextArea) {
		prompt = &survey.Multiline{Message: message, Default: def}
	}

	validator := func(ans any) error {
		s, ok := ans.(string)
		if !ok {
			return fmt.Errorf("unexpected answer type %T", ans)
		}
		if msg := check(s); msg != "" {
			return errors.New(msg)
		}
		return nil
	}

	var out string
	if err := survey.AskOne(prompt, &out, survey.WithValidator(validator)); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", errAborted
		}
		return "", err
	}
	return out, nil
}
