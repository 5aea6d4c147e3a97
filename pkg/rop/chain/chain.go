package chain

import (
	"context"

	"github.com/CRNHV/Lib.Result/pkg/rop"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[S, F any] struct {
	ctx    context.Context
	result rop.Result[S, F]
}

// Start creates a new chain from a rop.Result
func Start[S, F any](ctx context.Context, result rop.Result[S, F]) *Chain[S, F] {
	return &Chain[S, F]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[F, S any](ctx context.Context, value S) *Chain[S, F] {
	return &Chain[S, F]{
		ctx:    ctx,
		result: rop.Ok[F](value),
	}
}

// Result returns the underlying rop.Result
func (c *Chain[S, F]) Result() rop.Result[S, F] {
	return c.result
}

// Then chains a function that returns rop.Result[R, F]
func Then[S, F, R any](c *Chain[S, F], onSuccess func(context.Context, S) rop.Result[R, F]) *Chain[R, F] {
	return &Chain[R, F]{
		ctx: c.ctx,
		result: rop.FlatMap(c.result, func(s S) rop.Result[R, F] {
			return onSuccess(c.ctx, s)
		}),
	}
}

// ThenTry chains a function that returns (R, error); onError maps the error
// onto the failure track.
func ThenTry[S, F, R any](c *Chain[S, F], tryOnSuccess func(context.Context, S) (R, error),
	onError func(error) F) *Chain[R, F] {

	return Then(c, func(ctx context.Context, s S) rop.Result[R, F] {
		out, err := tryOnSuccess(ctx, s)
		if err != nil {
			return rop.Fail[R](onError(err))
		}
		return rop.Ok[F](out)
	})
}

// Map chains a pure transformation function
func Map[S, F, R any](c *Chain[S, F], onSuccess func(context.Context, S) R) *Chain[R, F] {
	return &Chain[R, F]{
		ctx: c.ctx,
		result: rop.Bind(c.result, func(s S) R {
			return onSuccess(c.ctx, s)
		}),
	}
}

// MapFailure transforms the failure payload
func MapFailure[S, F, F2 any](c *Chain[S, F], onFailure func(context.Context, F) F2) *Chain[S, F2] {
	return &Chain[S, F2]{
		ctx: c.ctx,
		result: rop.MapFailure(c.result, func(f F) F2 {
			return onFailure(c.ctx, f)
		}),
	}
}

// Validate moves the chain to the failure track when validate rejects the
// value.
func (c *Chain[S, F]) Validate(validate func(ctx context.Context, in S) (valid bool, failure F)) *Chain[S, F] {
	return Then(c, func(ctx context.Context, s S) rop.Result[S, F] {
		if valid, failure := validate(ctx, s); !valid {
			return rop.Fail[S](failure)
		}
		return rop.Ok[F](s)
	})
}

// RepeatWhile runs step while the chain succeeds and while holds for the
// current value.
func (c *Chain[S, F]) RepeatWhile(step func(ctx context.Context, s S) rop.Result[S, F],
	while func(ctx context.Context, s S) bool) *Chain[S, F] {

	for c.result.IsSuccess() && while(c.ctx, c.result.Unwrap()) {
		c = Then(c, step)
	}
	return c
}

// Ensure performs a side effect without changing the result
func (c *Chain[S, F]) Ensure(onSuccess func(context.Context, S)) *Chain[S, F] {
	rop.OnSuccess(c.result, func(s S) { onSuccess(c.ctx, s) })
	return c
}

// EnsureFailure performs a side effect on the failure track
func (c *Chain[S, F]) EnsureFailure(onFailure func(context.Context, F)) *Chain[S, F] {
	rop.OnFailure(c.result, func(f F) { onFailure(c.ctx, f) })
	return c
}

// Or returns the first chain, starting with c, that is on the success track.
// When none is, c is returned.
func (c *Chain[S, F]) Or(alternatives ...*Chain[S, F]) *Chain[S, F] {
	if c.result.IsSuccess() {
		return c
	}
	for _, alt := range alternatives {
		if alt.result.IsSuccess() {
			return alt
		}
	}
	return c
}

// Finally collapses the chain into a final value
func Finally[S, F, R any](c *Chain[S, F], onSuccess func(context.Context, S) R, onFailure func(context.Context, F) R) R {
	return rop.Do(c.result,
		func(s S) R { return onSuccess(c.ctx, s) },
		func(f F) R { return onFailure(c.ctx, f) },
	)
}
