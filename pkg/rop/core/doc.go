// Package core contains plumbing shared by the async and chain packages:
// worker limits carried in a context and small channel helpers. It holds no
// Result logic of its own.
package core
