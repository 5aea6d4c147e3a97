package rop

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestDefer_ProducerRunsOnce(t *testing.T) {
	t.Parallel()

	var calls int
	l := Defer(func() Result[int, string] {
		calls++
		return Ok[string](42)
	})

	if l.IsForced() {
		t.Fatalf("lazy should not be forced before first observation")
	}
	if calls != 0 {
		t.Fatalf("producer ran eagerly: calls=%d", calls)
	}

	if !l.IsSuccess() {
		t.Fatalf("expected success")
	}
	if got := l.Unwrap(); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
	_ = Bind[int, string, int](l, func(i int) int { return i + 1 })
	_ = l.Or(0)

	if calls != 1 {
		t.Fatalf("expected producer to run once, ran %d times", calls)
	}
	if !l.IsForced() {
		t.Fatalf("lazy should be forced after observation")
	}
}

func TestDefer_ConcurrentForce(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	l := Defer(func() Result[int, string] {
		calls.Add(1)
		return Fail[int]("once")
	})

	var wg sync.WaitGroup
	errs := make([]string, 64)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = l.UnwrapError()
		}(i)
	}
	wg.Wait()

	if n := calls.Load(); n != 1 {
		t.Fatalf("expected producer to run once, ran %d times", n)
	}
	for i, e := range errs {
		if e != "once" {
			t.Fatalf("reader %d observed %q", i, e)
		}
	}
}

func TestMakeLazy_Idempotent(t *testing.T) {
	t.Parallel()

	l := Defer(func() Result[int, string] { return Ok[string](1) })
	if again := MakeLazy[int, string](l); again != l {
		t.Fatalf("MakeLazy wrapped an existing Lazy")
	}

	wrapped := MakeLazy(Ok[string](3))
	if MakeLazy[int, string](wrapped) != wrapped {
		t.Fatalf("MakeLazy is not idempotent")
	}
	if wrapped.Unwrap() != 3 {
		t.Fatalf("expected 3, got %d", wrapped.Unwrap())
	}
}

func TestLazy_FallbacksNotEvaluatedOnSuccess(t *testing.T) {
	t.Parallel()

	l := MakeLazy(Ok[string](5))
	got := l.OrElse(func() int {
		t.Fatalf("factory invoked on success")
		return 0
	})
	if got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
	got = l.OrFrom(func(string) int {
		t.Fatalf("failure function invoked on success")
		return 0
	})
	if got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
}

func TestLazy_NilProducerResult(t *testing.T) {
	t.Parallel()

	l := Defer(func() Result[int, string] { return nil })
	if err := recoverError(func() { l.IsSuccess() }); err == nil {
		t.Fatalf("expected panic for nil producer result")
	}
	err := recoverError(func() { l.IsSuccess() })
	if err == nil {
		t.Fatalf("expected later observations to panic too")
	}
}

func TestLazy_NestedDefer(t *testing.T) {
	t.Parallel()

	var inner, outer int
	l := Defer(func() Result[int, string] {
		outer++
		return Defer(func() Result[int, string] {
			inner++
			return Ok[string](7)
		})
	})

	for range 3 {
		if l.Unwrap() != 7 {
			t.Fatalf("expected 7")
		}
	}
	if inner != 1 || outer != 1 {
		t.Fatalf("expected each producer once, got inner=%d outer=%d", inner, outer)
	}
}
