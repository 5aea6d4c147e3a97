package rop

import "iter"

// SelectSuccess lazily yields the success payloads of values, in order.
func SelectSuccess[S, F any](values iter.Seq[Result[S, F]]) iter.Seq[S] {
	mustNotBeNil(values, "values")
	return func(yield func(S) bool) {
		for r := range values {
			if r.IsSuccess() && !yield(r.Unwrap()) {
				return
			}
		}
	}
}

// SelectFailure lazily yields the failure payloads of values, in order.
func SelectFailure[S, F any](values iter.Seq[Result[S, F]]) iter.Seq[F] {
	mustNotBeNil(values, "values")
	return func(yield func(F) bool) {
		for r := range values {
			if r.IsFailure() && !yield(r.UnwrapError()) {
				return
			}
		}
	}
}

// UnwrapAll returns Success of every success payload in order, or the first
// Failure met. Elements after that Failure are not pulled.
func UnwrapAll[S, F any](values iter.Seq[Result[S, F]]) Result[[]S, F] {
	mustNotBeNil(values, "values")

	out := make([]S, 0)
	for r := range values {
		if r.IsFailure() {
			return Failure[[]S, F]{Error: r.UnwrapError()}
		}
		out = append(out, r.Unwrap())
	}
	return Success[[]S, F]{Value: out}
}

// Partition splits values into success and failure payloads, keeping order
// within each side.
func Partition[S, F any](values iter.Seq[Result[S, F]]) ([]S, []F) {
	mustNotBeNil(values, "values")

	successes := make([]S, 0)
	failures := make([]F, 0)
	for r := range values {
		r.Match(
			func(s S) { successes = append(successes, s) },
			func(f F) { failures = append(failures, f) },
		)
	}
	return successes, failures
}

// FromSlice yields the elements of s. A nil slice gives a nil sequence, which
// the adapters report as IsNull.
func FromSlice[T any](s []T) iter.Seq[T] {
	if s == nil {
		return nil
	}
	return func(yield func(T) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}
