package workflow

import "context"

type Step interface {
	Name() string
	Execute(ctx context.Context) error
}

type step struct {
	name    string
	execute func(ctx context.Context) error
}

// Name implements Step.
func (s *step) Name() string {
	return s.name
}

// Execute implements Step.
func (s *step) Execute(ctx context.Context) error {
	if s.execute == nil {
		return nil
	}

	return s.execute(ctx)
}

var _ Step = &step{}

func StepFunc(name string, execute func(ctx context.Context) error) Step {
	return &step{
		name:    name,
		execute: execute,
	}
}
