package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/goliatone/go-cvtemplates/components/catalog"
)

// errPickCancelled is returned when the prompt is interrupted.
var errPickCancelled = errors.New("cvtemplates: selection cancelled")

// picker asks the user for a template id.
type picker interface {
	Pick(ctx context.Context, entries []catalog.Entry) (int, error)
}

type surveyPicker struct{}

func (surveyPicker) Pick(ctx context.Context, entries []catalog.Entry) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(entries) == 0 {
		return 0, errors.New("cvtemplates: catalog is empty")
	}
	options := make([]string, len(entries))
	for i, entry := range entries {
		options[i] = fmt.Sprintf("%2d · %s", entry.ID, entry.Name)
	}

	var index int
	prompt := &survey.Select{
		Message:  "Plantilla:",
		Options:  options,
		PageSize: 12,
	}
	if err := survey.AskOne(prompt, &index); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return 0, errPickCancelled
		}
		return 0, fmt.Errorf("cvtemplates: prompt: %w", err)
	}
	return entries[index].ID, nil
}
