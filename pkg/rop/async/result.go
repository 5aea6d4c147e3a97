package async

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/CRNHV/Lib.Result/internal/xlog"
	"github.com/CRNHV/Lib.Result/pkg/rop"
	"github.com/CRNHV/Lib.Result/pkg/rop/core"
)

// Result is a pending rop.Result.
type Result[S, F any] struct {
	id        uuid.UUID
	createdAt time.Time
	done      chan struct{}
	value     rop.Result[S, F]
	panicked  any
}

func newResult[S, F any]() *Result[S, F] {
	return &Result[S, F]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		done:      make(chan struct{}),
	}
}

// From wraps an already resolved Result.
func From[S, F any](r rop.Result[S, F]) *Result[S, F] {
	mustNotBeNil(r, "result")
	a := newResult[S, F]()
	a.value = r
	close(a.done)
	return a
}

// Go runs fn on a new goroutine. fn is called exactly once.
// A panic inside fn is re-raised by every Await.
func Go[S, F any](fn func() rop.Result[S, F]) *Result[S, F] {
	mustNotBeNil(fn, "fn")
	a := newResult[S, F]()
	go a.run(fn)
	return a
}

// FromChan resolves with the first Result received from ch, or with
// Failure(ifClosed) when ch is closed before sending anything.
func FromChan[S, F any](ch <-chan rop.Result[S, F], ifClosed F) *Result[S, F] {
	mustNotBeNil(ch, "ch")
	return Go(func() rop.Result[S, F] {
		return core.FromChanFirstOrDefault(context.Background(), ch, rop.Fail[S](ifClosed))
	})
}

func (a *Result[S, F]) run(fn func() rop.Result[S, F]) {
	defer close(a.done)
	defer func() {
		if p := recover(); p != nil {
			a.panicked = p
			xlog.Error("async", fmt.Errorf("%v", p), "async producer panicked")
		}
	}()

	r := fn()
	mustNotBeNil(r, "producer result")
	a.value = r

	l := xlog.Component("async")
	l.Debug().Str("id", a.id.String()).Msg("async result resolved")
}

// Await blocks until the Result is resolved and returns it.
func (a *Result[S, F]) Await() rop.Result[S, F] {
	<-a.done
	if a.panicked != nil {
		panic(a.panicked)
	}
	return a.value
}

// AwaitContext is Await that gives up waiting when ctx is done. The
// underlying computation keeps running.
func (a *Result[S, F]) AwaitContext(ctx context.Context) (rop.Result[S, F], error) {
	select {
	case <-a.done:
		return a.Await(), nil
	case <-ctx.Done():
		err := ctx.Err()
		if rop.IsCancellationError(err) {
			l := xlog.Component("async")
			l.Debug().Str("id", a.id.String()).Err(err).Msg("stopped waiting")
		}
		return nil, err
	}
}

// IsDone reports whether the Result is resolved. It does not block.
func (a *Result[S, F]) IsDone() bool {
	select {
	case <-a.done:
		return true
	default:
		return false
	}
}

// Done returns a channel closed on resolution.
func (a *Result[S, F]) Done() <-chan struct{} {
	return a.done
}

// Id identifies the pending computation in log events.
func (a *Result[S, F]) Id() uuid.UUID {
	return a.id
}

// CreatedAt is the construction time (UTC).
func (a *Result[S, F]) CreatedAt() time.Time {
	return a.createdAt
}

func mustNotBeNil(i any, name string) {
	if rop.IsNil(i) {
		panic(fmt.Errorf("%w: %s", rop.ErrNilArgument, name))
	}
}
