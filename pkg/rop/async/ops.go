package async

import (
	"context"
	"runtime"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/CRNHV/Lib.Result/internal/xlog"
	"github.com/CRNHV/Lib.Result/pkg/rop"
	"github.com/CRNHV/Lib.Result/pkg/rop/core"
)

// UnwrapOr awaits a and returns its success payload or defaultValue.
func UnwrapOr[S, F any](a *Result[S, F], defaultValue S) S {
	mustNotBeNil(a, "result")
	return a.Await().Or(defaultValue)
}

// UnwrapOrElse calls defaultFactory only when a resolves to a Failure.
func UnwrapOrElse[S, F any](a *Result[S, F], defaultFactory func() S) S {
	mustNotBeNil(a, "result")
	mustNotBeNil(defaultFactory, "defaultFactory")
	return a.Await().OrElse(defaultFactory)
}

// UnwrapOrFrom calls defaultFromFailure only when a resolves to a Failure.
func UnwrapOrFrom[S, F any](a *Result[S, F], defaultFromFailure func(F) S) S {
	mustNotBeNil(a, "result")
	mustNotBeNil(defaultFromFailure, "defaultFromFailure")
	return a.Await().OrFrom(defaultFromFailure)
}

// Do awaits a and folds it.
func Do[S, F, R any](a *Result[S, F], onSuccess func(S) R, onFailure func(F) R) R {
	mustNotBeNil(a, "result")
	mustNotBeNil(onSuccess, "onSuccess")
	mustNotBeNil(onFailure, "onFailure")
	return rop.Do(a.Await(), onSuccess, onFailure)
}

func then[S, F, R, F2 any](a *Result[S, F], next func(rop.Result[S, F]) rop.Result[R, F2]) *Result[R, F2] {
	return Go(func() rop.Result[R, F2] {
		return next(a.Await())
	})
}

// Bind transforms the success payload once a resolves.
func Bind[S, F, R any](a *Result[S, F], onSuccess func(S) R) *Result[R, F] {
	mustNotBeNil(a, "result")
	mustNotBeNil(onSuccess, "onSuccess")
	return then(a, func(r rop.Result[S, F]) rop.Result[R, F] {
		return rop.Bind(r, onSuccess)
	})
}

// BindBoth transforms whichever payload a resolves to.
func BindBoth[S, F, R, R2 any](a *Result[S, F], onSuccess func(S) R, onFailure func(F) R2) *Result[R, R2] {
	mustNotBeNil(a, "result")
	mustNotBeNil(onSuccess, "onSuccess")
	mustNotBeNil(onFailure, "onFailure")
	return then(a, func(r rop.Result[S, F]) rop.Result[R, R2] {
		return rop.BindBoth(r, onSuccess, onFailure)
	})
}

// FlatMap continues with a synchronous step that may fail.
func FlatMap[S, F, R any](a *Result[S, F], onSuccess func(S) rop.Result[R, F]) *Result[R, F] {
	mustNotBeNil(a, "result")
	mustNotBeNil(onSuccess, "onSuccess")
	return then(a, func(r rop.Result[S, F]) rop.Result[R, F] {
		return rop.FlatMap(r, onSuccess)
	})
}

// BindAsync continues with a step that is itself pending.
func BindAsync[S, F, R any](a *Result[S, F], onSuccess func(S) *Result[R, F]) *Result[R, F] {
	mustNotBeNil(a, "result")
	mustNotBeNil(onSuccess, "onSuccess")
	return then(a, func(r rop.Result[S, F]) rop.Result[R, F] {
		return rop.FlatMap(r, func(s S) rop.Result[R, F] {
			next := onSuccess(s)
			mustNotBeNil(next, "continuation result")
			return next.Await()
		})
	})
}

// MapFailure derives a new failure payload once a resolves.
func MapFailure[S, F, F2 any](a *Result[S, F], onFailure func(F) F2) *Result[S, F2] {
	mustNotBeNil(a, "result")
	mustNotBeNil(onFailure, "onFailure")
	return then(a, func(r rop.Result[S, F]) rop.Result[S, F2] {
		return rop.MapFailure(r, onFailure)
	})
}

// All resolves to every success payload in argument order, or to the first
// Failure in argument order. Items after that Failure are not awaited.
func All[S, F any](items ...*Result[S, F]) *Result[[]S, F] {
	for _, it := range items {
		mustNotBeNil(it, "item")
	}
	return Go(func() rop.Result[[]S, F] {
		return rop.UnwrapAll[S, F](func(yield func(rop.Result[S, F]) bool) {
			for _, it := range items {
				if !yield(it.Await()) {
					return
				}
			}
		})
	})
}

// Traverse runs fn for every item, at most core.GetWorkerMaxCount(ctx,
// runtime.NumCPU()) at a time, and aggregates like All. ctx is handed to fn
// untouched. A panic in fn is re-raised by Await.
func Traverse[T, S, F any](ctx context.Context, items []T,
	fn func(ctx context.Context, item T) rop.Result[S, F]) *Result[[]S, F] {

	mustNotBeNil(fn, "fn")
	limit := core.GetWorkerMaxCount(ctx, runtime.NumCPU())
	if limit < 1 {
		limit = -1
	}

	return Go(func() rop.Result[[]S, F] {
		results := make([]rop.Result[S, F], len(items))

		var (
			g          errgroup.Group
			panicOnce  sync.Once
			firstPanic any
		)
		g.SetLimit(limit)
		for i, item := range items {
			g.Go(func() error {
				defer func() {
					if p := recover(); p != nil {
						panicOnce.Do(func() { firstPanic = p })
					}
				}()
				r := fn(ctx, item)
				mustNotBeNil(r, "fn result")
				results[i] = r
				return nil
			})
		}
		_ = g.Wait()
		if firstPanic != nil {
			panic(firstPanic)
		}

		l := xlog.Component("async")
		l.Debug().Int("items", len(items)).Int("limit", limit).Msg("traverse finished")

		return rop.UnwrapAll(slices.Values(results))
	})
}

// Collect drains ch until it is closed and aggregates like All, in receive
// order. When ctx is done first, only the Results received so far count.
func Collect[S, F any](ctx context.Context, ch <-chan rop.Result[S, F]) *Result[[]S, F] {
	mustNotBeNil(ch, "ch")
	return Go(func() rop.Result[[]S, F] {
		received := core.FromChanMany(ctx, ch)
		return rop.UnwrapAll(slices.Values(received))
	})
}
