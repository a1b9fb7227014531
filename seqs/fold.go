package seqs

import (
	"errors"
	"iter"
)

// FoldOutcome reports how a FoldUntil traversal ended.
type FoldOutcome int

const (
	// FoldExhausted means the source ran out before any stop signal.
	FoldExhausted FoldOutcome = iota
	// FoldStopped means a step returned ErrStop.
	FoldStopped
	// FoldFailed means a step returned an error other than ErrStop.
	FoldFailed
	// FoldSourceFailed means the source itself reported an error
	// (TryFoldUntil only).
	FoldSourceFailed
)

func (o FoldOutcome) String() string {
	switch o {
	case FoldExhausted:
		return "exhausted"
	case FoldStopped:
		return "stopped"
	case FoldFailed:
		return "failed"
	case FoldSourceFailed:
		return "source failed"
	default:
		return "unknown"
	}
}

// FoldUntil folds seq into an accumulator with a step function that can
// end the traversal early. A step returns (acc, nil) to continue,
// (acc, ErrStop) to stop successfully, or (acc, err) to stop with err.
//
// The returned error is the step's error verbatim and is non-nil exactly
// when the outcome is FoldFailed. The short-circuit is exact: no element
// is produced after a stop signal, and each step sees exactly one element.
func FoldUntil[T, A any](seq iter.Seq[T], initial A, step func(A, T) (A, error)) (A, FoldOutcome, error) {
	if step == nil {
		panic("seqs: FoldUntil step function cannot be nil")
	}
	acc := initial
	outcome := FoldExhausted
	var failure error

	for v := range seq {
		var err error
		acc, err = step(acc, v)
		if err == nil {
			continue
		}
		if errors.Is(err, ErrStop) {
			outcome = FoldStopped
		} else {
			outcome = FoldFailed
			failure = err
		}
		break
	}
	return acc, outcome, failure
}

// TryFoldUntil is FoldUntil over a fallible source. A source error ends
// the traversal with FoldSourceFailed and that error verbatim; the step
// function is not invoked for the failed element.
func TryFoldUntil[T, A any](seq iter.Seq2[T, error], initial A, step func(A, T) (A, error)) (A, FoldOutcome, error) {
	if step == nil {
		panic("seqs: TryFoldUntil step function cannot be nil")
	}
	acc := initial
	outcome := FoldExhausted
	var failure error

	for v, srcErr := range seq {
		if srcErr != nil {
			outcome = FoldSourceFailed
			failure = srcErr
			break
		}
		var err error
		acc, err = step(acc, v)
		if err == nil {
			continue
		}
		if errors.Is(err, ErrStop) {
			outcome = FoldStopped
		} else {
			outcome = FoldFailed
			failure = err
		}
		break
	}
	return acc, outcome, failure
}
