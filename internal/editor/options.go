package editor

import "context"

// ProgressFunc receives a short status message between workflow steps.
type ProgressFunc func(ctx context.Context, message string)

type Options struct {
	Progress ProgressFunc
}

type OptionFunc func(opts *Options)

func WithProgress(fn ProgressFunc) OptionFunc {
	return func(opts *Options) {
		opts.Progress = fn
	}
}

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Progress: func(ctx context.Context, message string) {},
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}
