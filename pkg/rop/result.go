package rop

import (
	"github.com/rs/zerolog"

	"github.com/CRNHV/Lib.Result/internal/xlog"
)

// Result is either a Success holding S or a Failure holding F.
//
// The interface is sealed: Success, Failure and *Lazy are its only
// implementations. Match is the fold primitive, every combinator in the
// package is derived from it.
type Result[S, F any] interface {
	// Match calls onSuccess or onFailure, never both.
	Match(onSuccess func(S), onFailure func(F))
	IsSuccess() bool
	IsFailure() bool
	// Unwrap returns the success payload and panics on a Failure.
	Unwrap() S
	// UnwrapError returns the failure payload and panics on a Success.
	UnwrapError() F
	// Or returns the success payload or defaultValue.
	Or(defaultValue S) S
	// OrElse returns the success payload or the value built by defaultFactory.
	OrElse(defaultFactory func() S) S
	// OrFrom returns the success payload or the value derived from the failure.
	OrFrom(defaultFromFailure func(F) S) S

	sealed()
}

// Success is the success variant.
type Success[S, F any] struct {
	Value S
}

// Failure is the failure variant.
type Failure[S, F any] struct {
	Error F
}

// Ok lifts v into a Success. The failure type comes first so that callers
// only name it: rop.Ok[string](42).
func Ok[F, S any](v S) Result[S, F] {
	return Success[S, F]{Value: v}
}

// Fail lifts e into a Failure: rop.Fail[int]("not found").
func Fail[S, F any](e F) Result[S, F] {
	return Failure[S, F]{Error: e}
}

// SetLogger installs the logger used for debug tracing of lazy forcing,
// async resolution and wrong-variant unwraps. The default logger is silent.
func SetLogger(l zerolog.Logger) {
	xlog.Set(l)
}

func (s Success[S, F]) Match(onSuccess func(S), onFailure func(F)) {
	mustNotBeNil(onSuccess, "onSuccess")
	mustNotBeNil(onFailure, "onFailure")
	onSuccess(s.Value)
}

func (s Success[S, F]) IsSuccess() bool { return true }

func (s Success[S, F]) IsFailure() bool { return false }

func (s Success[S, F]) Unwrap() S { return s.Value }

func (s Success[S, F]) UnwrapError() F {
	panic(wrongVariant("UnwrapError", s))
}

func (s Success[S, F]) Or(S) S { return s.Value }

func (s Success[S, F]) OrElse(defaultFactory func() S) S {
	mustNotBeNil(defaultFactory, "defaultFactory")
	return s.Value
}

func (s Success[S, F]) OrFrom(defaultFromFailure func(F) S) S {
	mustNotBeNil(defaultFromFailure, "defaultFromFailure")
	return s.Value
}

func (Success[S, F]) sealed() {}

func (f Failure[S, F]) Match(onSuccess func(S), onFailure func(F)) {
	mustNotBeNil(onSuccess, "onSuccess")
	mustNotBeNil(onFailure, "onFailure")
	onFailure(f.Error)
}

func (f Failure[S, F]) IsSuccess() bool { return false }

func (f Failure[S, F]) IsFailure() bool { return true }

func (f Failure[S, F]) Unwrap() S {
	panic(wrongVariant("Unwrap", f))
}

func (f Failure[S, F]) UnwrapError() F { return f.Error }

func (f Failure[S, F]) Or(defaultValue S) S { return defaultValue }

func (f Failure[S, F]) OrElse(defaultFactory func() S) S {
	mustNotBeNil(defaultFactory, "defaultFactory")
	return defaultFactory()
}

func (f Failure[S, F]) OrFrom(defaultFromFailure func(F) S) S {
	mustNotBeNil(defaultFromFailure, "defaultFromFailure")
	return defaultFromFailure(f.Error)
}

func (Failure[S, F]) sealed() {}
