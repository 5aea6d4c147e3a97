package rop

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func lawParameters() *gopter.TestParameters {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	return parameters
}

func genResult() gopter.Gen {
	return gopter.CombineGens(gen.Bool(), gen.Int(), gen.AlphaString()).
		Map(func(values []interface{}) Result[int, string] {
			if values[0].(bool) {
				return Ok[string](values[1].(int))
			}
			return Fail[int](values[2].(string))
		})
}

func TestResultTagLaws(t *testing.T) {
	properties := gopter.NewProperties(lawParameters())

	properties.Property("Success(v) unwraps to v", prop.ForAll(
		func(n int) bool {
			r := Ok[string](n)
			return r.IsSuccess() && !r.IsFailure() && r.Unwrap() == n
		},
		gen.Int(),
	))

	properties.Property("Failure(e) unwraps to e", prop.ForAll(
		func(e string) bool {
			r := Fail[int](e)
			return r.IsFailure() && !r.IsSuccess() && r.UnwrapError() == e
		},
		gen.AnyString(),
	))

	properties.Property("exactly one fold branch runs", prop.ForAll(
		func(r Result[int, string]) bool {
			var successes, failures int
			r.Match(func(int) { successes++ }, func(string) { failures++ })
			return successes+failures == 1 && (successes == 1) == r.IsSuccess()
		},
		genResult(),
	))

	properties.TestingRun(t)
}

func TestResultBindLaws(t *testing.T) {
	properties := gopter.NewProperties(lawParameters())

	properties.Property("left identity", prop.ForAll(
		func(n int) bool {
			f := func(x int) Result[int, string] { return Ok[string](x * 2) }
			return FlatMap(Ok[string](n), f).Unwrap() == f(n).Unwrap()
		},
		gen.Int(),
	))

	properties.Property("right identity", prop.ForAll(
		func(r Result[int, string]) bool {
			back := FlatMap(r, func(x int) Result[int, string] { return Ok[string](x) })
			return back.IsSuccess() == r.IsSuccess() && EitherAny(back) == EitherAny(r)
		},
		genResult(),
	))

	properties.Property("BindBoth keeps the tag", prop.ForAll(
		func(r Result[int, string]) bool {
			out := BindBoth(r, func(x int) int { return x + 1 }, func(e string) int { return len(e) })
			return out.IsSuccess() == r.IsSuccess()
		},
		genResult(),
	))

	properties.Property("Squash of Success(r) is r", prop.ForAll(
		func(r Result[int, string]) bool {
			s := Squash(Ok[string](r))
			return s.IsSuccess() == r.IsSuccess() && EitherAny(s) == EitherAny(r)
		},
		genResult(),
	))

	properties.Property("Or agrees with the tag", prop.ForAll(
		func(r Result[int, string], fallback int) bool {
			got := r.Or(fallback)
			if r.IsSuccess() {
				return got == r.Unwrap()
			}
			return got == fallback
		},
		genResult(),
		gen.Int(),
	))

	properties.TestingRun(t)
}
