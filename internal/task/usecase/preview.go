package usecase

import (
	"context"
	"strings"

	"tasks-timeline/internal/task"
)

func (uc *implUseCase) Preview(ctx context.Context, input task.PreviewInput) (task.PreviewOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return task.PreviewOutput{}, task.ErrEmptyInput
	}

	now, err := uc.resolveNow(input.Now)
	if err != nil {
		return task.PreviewOutput{}, err
	}

	out := uc.rewriter.Transform(input.Text, now)
	if out != input.Text {
		uc.l.Debugf(ctx, "Preview: rewrote %q to %q", input.Text, out)
	}

	return task.PreviewOutput{
		Text:     out,
		Original: input.Text,
		Changed:  out != input.Text,
	}, nil
}
