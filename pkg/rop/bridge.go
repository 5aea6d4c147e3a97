package rop

import "github.com/CRNHV/Lib.Result/internal/xlog"

// Try calls fn and converts its (value, error) pair into a Result.
func Try[S any](fn func() (S, error)) Result[S, error] {
	mustNotBeNil(fn, "fn")
	v, err := fn()
	return FromPair(v, err)
}

// FromPair converts a (value, error) pair into a Result. A non-nil err wins.
func FromPair[S any](v S, err error) Result[S, error] {
	if err != nil {
		return Failure[S, error]{Error: err}
	}
	return Success[S, error]{Value: v}
}

// ToError converts r back into Go's (value, error) convention.
func ToError[S any, F error](r Result[S, F]) (S, error) {
	mustNotBeNil(r, "result")
	var (
		value S
		err   error
	)
	r.Match(
		func(s S) { value = s },
		func(f F) { err = f },
	)
	return value, err
}

// UnwrapOrPanic returns the success payload or panics with the failure.
// It is the only operation that turns a domain failure into a panic.
func UnwrapOrPanic[S any, F error](r Result[S, F]) S {
	mustNotBeNil(r, "result")
	return r.OrFrom(func(f F) S {
		xlog.Error("rop", f, "failure escalated to panic")
		panic(f)
	})
}
