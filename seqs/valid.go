package seqs

import (
	"iter"

	"brook/queues"
)

// routed is one entry of the OnValid reorder buffer: either an error that
// was skipped over, or an output value queued behind such errors.
type routed[U any] struct {
	value U
	err   error
}

// OnValid applies an ordinary combinator chain to only the valid half of
// a fallible sequence. f receives the stream of valid values and returns
// any derived stream over them; errors never enter f. On the way out the
// errors are re-interleaved where they originally occurred: every error
// skipped while satisfying one pull of f's chain is emitted ahead of the
// value that pull produced, and errors after the last valid value are
// flushed at the end.
//
// Only runs of consecutive errors are ever buffered; the valid values
// themselves stream through f without materialization. If f neither drops
// nor reorders values, the output is the input with each valid value
// transformed in place.
func OnValid[T, U any](seq iter.Seq2[T, error], f func(iter.Seq[T]) iter.Seq[U]) iter.Seq2[U, error] {
	if f == nil {
		panic("seqs: OnValid transform function cannot be nil")
	}
	return func(yield func(U, error) bool) {
		pending := queues.NewRing[routed[U]](4)

		valid := iter.Seq[T](func(y func(T) bool) {
			for v, err := range seq {
				if err != nil {
					pending.Enqueue(routed[U]{err: err})
					continue
				}
				if !y(v) {
					return
				}
			}
		})

		out, stop := iter.Pull(f(valid))
		defer stop()

		for {
			if it, ok := pending.Dequeue(); ok {
				if !yield(it.value, it.err) {
					return
				}
				continue
			}

			u, ok := out()
			if !ok {
				// Trailing errors buffered while the chain drained the
				// rest of the source.
				for {
					it, ok := pending.Dequeue()
					if !ok {
						return
					}
					if !yield(it.value, it.err) {
						return
					}
				}
			}

			if pending.IsEmpty() {
				if !yield(u, nil) {
					return
				}
				continue
			}
			// Errors skipped while producing u predate it; queue u behind
			// them and emit the oldest entry.
			pending.Enqueue(routed[U]{value: u})
			it, _ := pending.Dequeue()
			if !yield(it.value, it.err) {
				return
			}
		}
	}
}

// Valid adapts a fallible sequence into a plain one that ends at the
// first error. The returned pointer holds that error after iteration,
// or nil if the source ran to exhaustion. Once broken, the sequence
// stays ended; it never resumes past the recorded error.
func Valid[T any](seq iter.Seq2[T, error]) (iter.Seq[T], *error) {
	errp := new(error)
	return func(yield func(T) bool) {
		if *errp != nil {
			return
		}
		for v, err := range seq {
			if err != nil {
				*errp = err
				return
			}
			if !yield(v) {
				return
			}
		}
	}, errp
}
