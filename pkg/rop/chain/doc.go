// Package chain provides a fluent wrapper around rop.Result[S, F] for
// building synchronous railway chains that carry a context.
//
// Every step runs only while the chain is on the success track; the first
// Failure is carried to the end untouched.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or a value
// - Then: continue with a step returning rop.Result
// - ThenTry: call a (value, error) function and map the error to F
// - Map/MapFailure: transform the success or the failure payload
// - Validate: turn a success into a failure when a check rejects it
// - RepeatWhile: run a step again while a condition holds
// - Ensure/EnsureFailure: side effects that keep the result
// - Or: fall back to the first alternative chain that succeeded
// - Finally: fold the chain into a single value
package chain
