package rop

import (
	"fmt"
	"iter"
)

// CollectionError is the failure payload of the single-element adapters.
type CollectionError int

const (
	IsNull CollectionError = iota + 1
	IsEmpty
	NoMatchingItems
	MultipleMatchingItems
)

func (e CollectionError) String() string {
	switch e {
	case IsNull:
		return "collection is nil"
	case IsEmpty:
		return "collection has no elements"
	case NoMatchingItems:
		return "collection has no matching element"
	case MultipleMatchingItems:
		return "collection has more than one matching element"
	default:
		return fmt.Sprintf("CollectionError(%d)", int(e))
	}
}

func (e CollectionError) Error() string {
	return e.String()
}

// Limiter is a source that can be asked for at most n elements, such as a
// query builder that turns Take(2) into a LIMIT 2.
type Limiter[T any] interface {
	Take(n int) iter.Seq[T]
}

// TryGetValueAsResult looks key up in m.
func TryGetValueAsResult[K comparable, V any](m map[K]V, key K) Result[V, string] {
	if m == nil {
		return Failure[V, string]{Error: "Could not get value from null dictionary"}
	}
	if v, ok := m[key]; ok {
		return Success[V, string]{Value: v}
	}
	return Failure[V, string]{Error: fmt.Sprintf("Dictionary does not contain key: %v", key)}
}

// SingleAsResult returns the only element of values. At most two elements
// are pulled from the sequence.
func SingleAsResult[T any](values iter.Seq[T]) Result[T, CollectionError] {
	if values == nil {
		return Failure[T, CollectionError]{Error: IsNull}
	}

	next, stop := iter.Pull(values)
	defer stop()

	first, ok := next()
	if !ok {
		return Failure[T, CollectionError]{Error: IsEmpty}
	}
	if _, more := next(); more {
		return Failure[T, CollectionError]{Error: MultipleMatchingItems}
	}
	return Success[T, CollectionError]{Value: first}
}

// SingleAsResultWhere returns the only element of values matching predicate.
// Iteration stops at the second match.
func SingleAsResultWhere[T any](values iter.Seq[T], predicate func(T) bool) Result[T, CollectionError] {
	mustNotBeNil(predicate, "predicate")
	if values == nil {
		return Failure[T, CollectionError]{Error: IsNull}
	}

	var (
		match   T
		found   bool
		sawItem bool
	)
	for v := range values {
		sawItem = true
		if !predicate(v) {
			continue
		}
		if found {
			return Failure[T, CollectionError]{Error: MultipleMatchingItems}
		}
		match, found = v, true
	}

	switch {
	case !sawItem:
		return Failure[T, CollectionError]{Error: IsEmpty}
	case !found:
		return Failure[T, CollectionError]{Error: NoMatchingItems}
	}
	return Success[T, CollectionError]{Value: match}
}

// SingleAsResultFrom asks source for two elements and applies the
// SingleAsResult policy to them.
func SingleAsResultFrom[T any](source Limiter[T]) Result[T, CollectionError] {
	if IsNil(source) {
		return Failure[T, CollectionError]{Error: IsNull}
	}

	items := make([]T, 0, 2)
	if page := source.Take(2); page != nil {
		for v := range page {
			items = append(items, v)
			if len(items) == 2 {
				break
			}
		}
	}

	switch len(items) {
	case 0:
		return Failure[T, CollectionError]{Error: IsEmpty}
	case 1:
		return Success[T, CollectionError]{Value: items[0]}
	}
	return Failure[T, CollectionError]{Error: MultipleMatchingItems}
}
