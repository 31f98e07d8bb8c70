// Package tokenlist implements the composition model of the input method:
// an alternating Gap/Token sequence, a cursor made of the selected slot and
// a pending edit buffer, matched-pair links and a one-level undo slot for
// destructive resets and commits.
//
// Indices are 0-based positions in the sequence. Index 0 and the last index
// are always gaps. Tokens are identified by ID, never by content.
//
// A List is not safe for concurrent use.
package tokenlist
