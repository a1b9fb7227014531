package seqs

import (
	"cmp"
	"iter"

	"brook/queues"
)

// mergeHead is one pending element of a still-live input, tagged with the
// input's position for the deterministic tie-break.
type mergeHead[T any] struct {
	value T
	src   int
}

// Merge combines already-sorted sequences into one sequence sorted in
// natural ascending order. See MergeFunc.
func Merge[T cmp.Ordered](sources ...iter.Seq[T]) iter.Seq[T] {
	return MergeFunc(cmp.Compare, sources...)
}

// MergeFunc combines sources, each individually sorted ascending under
// compare, into one sequence sorted under compare. Elements that compare
// equal across sources are emitted in ascending source order; equal
// elements from the same source keep their original relative order.
//
// Each input is traversed exactly once and at most one element per input
// is buffered at a time. If an input is not actually sorted the merge
// still terminates and emits every element, but the output order around
// the offending region is unspecified.
func MergeFunc[T any](compare func(a, b T) int, sources ...iter.Seq[T]) iter.Seq[T] {
	if compare == nil {
		panic("seqs: MergeFunc comparator cannot be nil")
	}
	return func(yield func(T) bool) {
		heads := queues.NewOrderedQueue(len(sources), func(a, b mergeHead[T]) bool {
			if c := compare(a.value, b.value); c != 0 {
				return c < 0
			}
			return a.src < b.src
		})

		pulls := make([]func() (T, bool), len(sources))
		for i, src := range sources {
			next, stop := iter.Pull(src)
			defer stop()
			pulls[i] = next
			if v, ok := next(); ok {
				heads.Enqueue(mergeHead[T]{value: v, src: i})
			}
		}

		for {
			h, ok := heads.Dequeue()
			if !ok {
				return
			}
			if !yield(h.value) {
				return
			}
			// Refill from the source we just drained a head from; an
			// exhausted source simply never re-enters the queue.
			if v, ok := pulls[h.src](); ok {
				heads.Enqueue(mergeHead[T]{value: v, src: h.src})
			}
		}
	}
}

// TryMergeFunc is MergeFunc over fallible sources. The first error any
// source reports is yielded verbatim, together with the element it
// arrived with, and the whole merge stops; the remaining buffered heads
// are discarded without reordering.
func TryMergeFunc[T any](compare func(a, b T) int, sources ...iter.Seq2[T, error]) iter.Seq2[T, error] {
	if compare == nil {
		panic("seqs: TryMergeFunc comparator cannot be nil")
	}
	return func(yield func(T, error) bool) {
		heads := queues.NewOrderedQueue(len(sources), func(a, b mergeHead[T]) bool {
			if c := compare(a.value, b.value); c != 0 {
				return c < 0
			}
			return a.src < b.src
		})

		pulls := make([]func() (T, error, bool), len(sources))
		for i, src := range sources {
			next, stop := iter.Pull2(src)
			defer stop()
			pulls[i] = next
			v, err, ok := next()
			if !ok {
				continue
			}
			if err != nil {
				yield(v, err)
				return
			}
			heads.Enqueue(mergeHead[T]{value: v, src: i})
		}

		for {
			h, ok := heads.Dequeue()
			if !ok {
				return
			}
			if !yield(h.value, nil) {
				return
			}
			v, err, ok := pulls[h.src]()
			if !ok {
				continue
			}
			if err != nil {
				yield(v, err)
				return
			}
			heads.Enqueue(mergeHead[T]{value: v, src: h.src})
		}
	}
}
