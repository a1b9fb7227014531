package seqs

import "errors"

var (
	// ErrExhausted reports that a peek, consume, or next request asked for
	// more elements than the sequence has left. It means "no more data",
	// not that something went wrong.
	ErrExhausted = errors.New("seqs: sequence exhausted")

	// ErrUnfinishedGroup reports that Groups.Next was called while the
	// current group still had undrained elements, under GroupStrict.
	ErrUnfinishedGroup = errors.New("seqs: previous group not fully drained")

	// ErrStaleGroup reports a read through a Group after its parent Groups
	// has advanced past it.
	ErrStaleGroup = errors.New("seqs: group invalidated by parent advance")

	// ErrStop is the sentinel a FoldUntil step returns to end the
	// traversal successfully. It is never surfaced to the caller.
	ErrStop = errors.New("seqs: stop traversal")
)
