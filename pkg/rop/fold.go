package rop

// Do folds r: onSuccess or onFailure runs, never both, and its return value
// is the result.
func Do[S, F, R any](r Result[S, F], onSuccess func(S) R, onFailure func(F) R) R {
	mustNotBeNil(r, "result")
	mustNotBeNil(onSuccess, "onSuccess")
	mustNotBeNil(onFailure, "onFailure")

	var out R
	r.Match(
		func(s S) { out = onSuccess(s) },
		func(f F) { out = onFailure(f) },
	)
	return out
}

// Bind transforms the success payload and passes a failure through.
func Bind[S, F, R any](r Result[S, F], onSuccess func(S) R) Result[R, F] {
	mustNotBeNil(onSuccess, "onSuccess")
	return Do(r,
		func(s S) Result[R, F] { return Success[R, F]{Value: onSuccess(s)} },
		func(f F) Result[R, F] { return Failure[R, F]{Error: f} },
	)
}

// BindBoth transforms whichever payload is present. The tag is kept.
func BindBoth[S, F, R, R2 any](r Result[S, F], onSuccess func(S) R, onFailure func(F) R2) Result[R, R2] {
	mustNotBeNil(onSuccess, "onSuccess")
	mustNotBeNil(onFailure, "onFailure")
	return Do(r,
		func(s S) Result[R, R2] { return Success[R, R2]{Value: onSuccess(s)} },
		func(f F) Result[R, R2] { return Failure[R, R2]{Error: onFailure(f)} },
	)
}

// FlatMap continues the success track with a function that may itself fail.
func FlatMap[S, F, R any](r Result[S, F], onSuccess func(S) Result[R, F]) Result[R, F] {
	mustNotBeNil(onSuccess, "onSuccess")
	return Do(r,
		onSuccess,
		func(f F) Result[R, F] { return Failure[R, F]{Error: f} },
	)
}

// Squash removes one level of nesting. An outer Failure is kept as is.
func Squash[S, F any](r Result[Result[S, F], F]) Result[S, F] {
	return FlatMap(r, func(inner Result[S, F]) Result[S, F] { return inner })
}

// ChangeFailure replaces the failure payload with newValue.
func ChangeFailure[S, F, F2 any](r Result[S, F], newValue F2) Result[S, F2] {
	return BindBoth(r, identity[S], func(F) F2 { return newValue })
}

// ChangeFailureElse replaces the failure payload with the value built by
// newValue. The factory is not called on a Success.
func ChangeFailureElse[S, F, F2 any](r Result[S, F], newValue func() F2) Result[S, F2] {
	mustNotBeNil(newValue, "newValue")
	return BindBoth(r, identity[S], func(F) F2 { return newValue() })
}

// MapFailure derives a new failure payload from the old one.
func MapFailure[S, F, F2 any](r Result[S, F], newValue func(F) F2) Result[S, F2] {
	mustNotBeNil(newValue, "newValue")
	return BindBoth(r, identity[S], newValue)
}

// RetainIf turns a Success whose value fails predicate into
// Failure(replaceWith).
func RetainIf[S, F any](r Result[S, F], predicate func(S) bool, replaceWith F) Result[S, F] {
	mustNotBeNil(predicate, "predicate")
	return FlatMap(r, func(s S) Result[S, F] {
		if predicate(s) {
			return Success[S, F]{Value: s}
		}
		return Failure[S, F]{Error: replaceWith}
	})
}

// RetainNotNil turns a Success holding a nil pointer, map, slice, channel,
// function or interface into Failure(replaceWith).
func RetainNotNil[S, F any](r Result[S, F], replaceWith F) Result[S, F] {
	return RetainIf(r, func(s S) bool { return !IsNil(s) }, replaceWith)
}

// Either returns whichever payload is present.
func Either[T any](r Result[T, T]) T {
	return Do(r, identity[T], identity[T])
}

// EitherAny returns whichever payload is present, boxed.
func EitherAny[S, F any](r Result[S, F]) any {
	return Do(r,
		func(s S) any { return s },
		func(f F) any { return f },
	)
}

// OnSuccess runs action with the success payload, if any.
func OnSuccess[S, F any](r Result[S, F], action func(S)) {
	mustNotBeNil(r, "result")
	mustNotBeNil(action, "action")
	r.Match(action, func(F) {})
}

// OnFailure runs action with the failure payload, if any.
func OnFailure[S, F any](r Result[S, F], action func(F)) {
	mustNotBeNil(r, "result")
	mustNotBeNil(action, "action")
	r.Match(func(S) {}, action)
}

// TryGetSuccess returns the success payload and true, or the zero value and
// false.
func TryGetSuccess[S, F any](r Result[S, F]) (S, bool) {
	mustNotBeNil(r, "result")
	if r.IsSuccess() {
		return r.Unwrap(), true
	}
	var zero S
	return zero, false
}

// TryGetFailure returns the failure payload and true, or the zero value and
// false.
func TryGetFailure[S, F any](r Result[S, F]) (F, bool) {
	mustNotBeNil(r, "result")
	if r.IsFailure() {
		return r.UnwrapError(), true
	}
	var zero F
	return zero, false
}

// UnwrapOr is the free-function form of Or.
func UnwrapOr[S, F any](r Result[S, F], defaultValue S) S {
	mustNotBeNil(r, "result")
	return r.Or(defaultValue)
}

// UnwrapOrElse is the free-function form of OrElse.
func UnwrapOrElse[S, F any](r Result[S, F], defaultFactory func() S) S {
	mustNotBeNil(r, "result")
	return r.OrElse(defaultFactory)
}

// UnwrapOrFrom is the free-function form of OrFrom.
func UnwrapOrFrom[S, F any](r Result[S, F], defaultFromFailure func(F) S) S {
	mustNotBeNil(r, "result")
	return r.OrFrom(defaultFromFailure)
}

func identity[T any](t T) T { return t }
