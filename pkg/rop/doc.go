// Package rop is a typed Result algebra: a value that is either a Success
// carrying S or a Failure carrying F, with combinators that move values along
// the success or failure track without panics for ordinary control flow.
//
// Building blocks:
// - Ok/Fail, Success/Failure: construct a Result
// - Do/Match: fold a Result, exactly one branch runs
// - Bind/BindBoth/FlatMap/Squash: transform one or both tracks
// - Or/OrElse/OrFrom: extract with a fallback that is only evaluated on Failure
// - ChangeFailure/MapFailure/RetainIf/RetainNotNil: reshape the failure track
// - Defer/MakeLazy: memoized Result whose producer runs at most once
// - SelectSuccess/SelectFailure/UnwrapAll/Partition: sequences of Results
// - SingleAsResult/TryGetValueAsResult: adapt collections and maps
//
// Calling Unwrap on a Failure, UnwrapError on a Success, or passing a nil
// function or sequence is a programmer error and panics with an error that
// wraps ErrWrongVariant or ErrNilArgument.
package rop
