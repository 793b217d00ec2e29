package shared

import "context"

// Step is one stage of a use case pipeline operating on its context value.
type Step[C any] func(ctx context.Context, c *C) error

// Flow runs steps in order and stops at the first failure.
func Flow[C any](ctx context.Context, c *C, steps ...Step[C]) error {
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return NewCaseError(KindError, 0, 0, "pipeline interrupted", err)
		}
		if err := step(ctx, c); err != nil {
			return err
		}
	}
	return nil
}
