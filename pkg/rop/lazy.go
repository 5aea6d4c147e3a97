package rop

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/CRNHV/Lib.Result/internal/xlog"
)

// Lazy is a Result whose producer runs on first observation. The produced
// Result is memoized: the producer runs at most once, even when several
// goroutines force the value concurrently, and every caller sees the same
// Result.
type Lazy[S, F any] struct {
	once     sync.Once
	forced   atomic.Bool
	producer func() Result[S, F]
	value    Result[S, F]
}

// Defer returns a Lazy that calls producer when first observed.
func Defer[S, F any](producer func() Result[S, F]) *Lazy[S, F] {
	mustNotBeNil(producer, "producer")
	return &Lazy[S, F]{producer: producer}
}

// MakeLazy wraps r in a Lazy. A Lazy is returned as is.
func MakeLazy[S, F any](r Result[S, F]) *Lazy[S, F] {
	mustNotBeNil(r, "result")
	if l, ok := r.(*Lazy[S, F]); ok {
		return l
	}
	return &Lazy[S, F]{producer: func() Result[S, F] { return r }}
}

// IsForced reports whether the producer already ran. It never forces.
func (l *Lazy[S, F]) IsForced() bool {
	return l.forced.Load()
}

// Force runs the producer if needed and returns the memoized Result.
func (l *Lazy[S, F]) Force() Result[S, F] {
	l.once.Do(func() {
		r := l.producer()
		mustNotBeNil(r, "producer result")
		l.value = r
		l.producer = nil
		l.forced.Store(true)
		xlog.Debug("lazy", "lazy result forced")
	})
	if !l.forced.Load() {
		panic(fmt.Errorf("%w: %T", ErrLazyProducer, l))
	}
	return l.value
}

func (l *Lazy[S, F]) Match(onSuccess func(S), onFailure func(F)) {
	l.Force().Match(onSuccess, onFailure)
}

func (l *Lazy[S, F]) IsSuccess() bool { return l.Force().IsSuccess() }

func (l *Lazy[S, F]) IsFailure() bool { return l.Force().IsFailure() }

func (l *Lazy[S, F]) Unwrap() S { return l.Force().Unwrap() }

func (l *Lazy[S, F]) UnwrapError() F { return l.Force().UnwrapError() }

func (l *Lazy[S, F]) Or(defaultValue S) S { return l.Force().Or(defaultValue) }

func (l *Lazy[S, F]) OrElse(defaultFactory func() S) S {
	mustNotBeNil(defaultFactory, "defaultFactory")
	return l.Force().OrElse(defaultFactory)
}

func (l *Lazy[S, F]) OrFrom(defaultFromFailure func(F) S) S {
	mustNotBeNil(defaultFromFailure, "defaultFromFailure")
	return l.Force().OrFrom(defaultFromFailure)
}

func (*Lazy[S, F]) sealed() {}
