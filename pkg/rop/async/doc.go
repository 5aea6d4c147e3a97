// Package async wraps a pending computation of a rop.Result.
//
// A *Result resolves exactly once. Awaiting blocks the caller until the
// Result is known; awaiting again returns the stored value without running
// anything twice. Continuations attached with Bind, BindBoth, FlatMap,
// BindAsync and MapFailure return new pending computations that start after
// the source resolves.
//
// Construction:
// - From: an already resolved Result
// - Go: run a producer on its own goroutine
// - FromChan: resolve with the first Result received from a channel
// - Collect: resolve with every Result received from a channel until it closes
//
// Extraction: Await, AwaitContext, Do and the UnwrapOr family.
// Aggregation: All, Collect and Traverse keep the first-failure-in-order law of
// rop.UnwrapAll.
//
// The package never cancels, retries or times out work. AwaitContext only
// stops waiting.
package async
