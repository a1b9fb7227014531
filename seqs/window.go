package seqs

import "iter"

// TailPolicy controls what a window sequence does with a trailing run of
// fewer than Size elements.
type TailPolicy int

const (
	// TailDrop discards the incomplete trailing window. This is the default.
	TailDrop TailPolicy = iota
	// TailEmit yields the trailing elements once, as a window shorter
	// than Size, then ends.
	TailEmit
	// TailPad yields the trailing elements once, padded with the
	// configured Pad value up to Size, then ends.
	TailPad
)

// WindowConfig configures WindowsWith.
type WindowConfig[T any] struct {
	Size   int        // window length, >= 1
	Stride int        // elements advanced between windows, >= 1
	Tail   TailPolicy // trailing-window policy, TailDrop by default
	Pad    T          // fill value for TailPad
}

// Windows yields successive windows of size consecutive elements,
// advancing by stride between windows. A trailing window of fewer than
// size elements is dropped; use WindowsWith for the other tail policies.
//
// stride < size produces overlapping windows, stride == size tiles the
// input, and stride > size skips elements between windows.
//
// For example, [1, 2, 3, 4, 5] with size 3 and stride 1 yields
// [1 2 3], [2 3 4], [3 4 5]; with size 2 and stride 2 it yields
// [1 2], [3 4] and drops the trailing [5].
func Windows[T any](seq iter.Seq[T], size, stride int) iter.Seq[[]T] {
	return WindowsWith(seq, WindowConfig[T]{Size: size, Stride: stride})
}

// WindowsWith is Windows with an explicit configuration. Each yielded
// window is a fresh copy, frozen at yield time and safe to retain. It
// panics if Size or Stride is not positive.
func WindowsWith[T any](seq iter.Seq[T], cfg WindowConfig[T]) iter.Seq[[]T] {
	if cfg.Size < 1 {
		panic("seqs: window size must be positive")
	}
	if cfg.Stride < 1 {
		panic("seqs: window stride must be positive")
	}
	return func(yield func([]T) bool) {
		buf := NewLookahead(seq)
		defer buf.Stop()

		for {
			if _, err := buf.Peek(cfg.Size - 1); err != nil {
				// Fewer than Size elements remain; everything still
				// buffered belongs to the trailing window.
				rest := buf.Buffered()
				if rest == 0 {
					return
				}
				switch cfg.Tail {
				case TailEmit:
					yield(frozen(buf, rest, rest, cfg.Pad))
				case TailPad:
					yield(frozen(buf, rest, cfg.Size, cfg.Pad))
				}
				return
			}

			if !yield(frozen(buf, cfg.Size, cfg.Size, cfg.Pad)) {
				return
			}
			if err := buf.Consume(cfg.Stride); err != nil {
				// Source ended inside the advance gap.
				return
			}
		}
	}
}

// frozen copies the first n buffered elements into a new slice of length
// total, filling any remainder with pad.
func frozen[T any](buf *Lookahead[T], n, total int, pad T) []T {
	out := make([]T, total)
	for i := 0; i < n; i++ {
		out[i], _ = buf.Peek(i)
	}
	for i := n; i < total; i++ {
		out[i] = pad
	}
	return out
}
