package workflow

import (
	"context"
	"log/slog"

	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
)

// Workflow runs its steps in order and stops at the first failing one.
// Executed steps are never rolled back.
type Workflow struct {
	steps []Step
}

func (w *Workflow) Execute(ctx context.Context) error {
	for _, step := range w.steps {
		stepCtx := slogx.WithAttrs(ctx, slog.String("step", step.Name()))

		slog.DebugContext(stepCtx, "executing workflow step")

		if err := step.Execute(stepCtx); err != nil {
			return errors.WithStack(NewStepError(step.Name(), err))
		}
	}

	return nil
}

func New(steps ...Step) *Workflow {
	return &Workflow{steps: steps}
}
