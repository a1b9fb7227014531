package seqs

import (
	"errors"
	"iter"
)

// GroupPolicy controls what Groups.Next does when the current group has
// not been fully drained yet.
type GroupPolicy int

const (
	// GroupStrict makes Groups.Next return ErrUnfinishedGroup while the
	// current group still has undrained elements. This is the default.
	GroupStrict GroupPolicy = iota
	// GroupAutoDrain makes Groups.Next silently discard whatever is left
	// of the current group before opening the next one.
	GroupAutoDrain
)

// GroupConfig configures GroupByFunc.
type GroupConfig[K any] struct {
	// Equal is the key equivalence. Keys never need to be ordered, only
	// comparable to their neighbours.
	Equal func(a, b K) bool
	// Policy is the unfinished-group policy, GroupStrict by default.
	Policy GroupPolicy
}

// Groups partitions a sequence into maximal runs of consecutive elements
// whose derived keys are equivalent, one lazy Group per run. The input is
// traversed exactly once; a run's elements are never materialized unless
// its Group is read.
type Groups[T, K any] struct {
	buf    *Lookahead[T]
	key    func(T) K
	equal  func(a, b K) bool
	policy GroupPolicy

	gen    int // bumped whenever a new group opens
	open   bool
	curKey K
}

// Group is a lazy cursor over one run of equivalent-key elements. It
// borrows the parent engine's buffer rather than owning a copy, so it is
// only valid until the parent advances to the next group: after that,
// Next returns ErrStaleGroup and All panics.
type Group[T, K any] struct {
	parent *Groups[T, K]
	gen    int
	key    K
}

// GroupBy partitions seq into runs of consecutive elements with equal
// keys, comparing keys with ==.
//
// For example, [1, 1, 2, 2, 2, 3] with the identity key yields the runs
// [1, 1], [2, 2, 2] and [3].
func GroupBy[T any, K comparable](seq iter.Seq[T], key func(T) K) *Groups[T, K] {
	return GroupByFunc(seq, key, GroupConfig[K]{
		Equal: func(a, b K) bool { return a == b },
	})
}

// GroupByFunc is GroupBy with a caller-supplied key equivalence and
// unfinished-group policy. It takes ownership of seq.
func GroupByFunc[T, K any](seq iter.Seq[T], key func(T) K, cfg GroupConfig[K]) *Groups[T, K] {
	if key == nil {
		panic("seqs: GroupByFunc key function cannot be nil")
	}
	if cfg.Equal == nil {
		panic("seqs: GroupByFunc equivalence function cannot be nil")
	}
	return &Groups[T, K]{
		buf:    NewLookahead(seq),
		key:    key,
		equal:  cfg.Equal,
		policy: cfg.Policy,
	}
}

// Next returns the next group, or ErrExhausted when the source has no
// elements left. An empty source yields zero groups.
//
// Under GroupStrict, calling Next while the current group still has
// undrained elements returns ErrUnfinishedGroup; under GroupAutoDrain the
// leftovers are discarded first. Either way a successful Next invalidates
// the previously returned Group.
func (g *Groups[T, K]) Next() (*Group[T, K], error) {
	return g.next(g.policy)
}

func (g *Groups[T, K]) next(policy GroupPolicy) (*Group[T, K], error) {
	if g.open {
		if policy == GroupAutoDrain {
			g.drain()
		} else {
			// The group is unfinished only if an element of its run is
			// still pending; probing may pull the boundary element, which
			// stays buffered for the next group.
			v, err := g.buf.Peek(0)
			if err == nil && g.equal(g.key(v), g.curKey) {
				return nil, ErrUnfinishedGroup
			}
			g.open = false
		}
	}

	v, err := g.buf.Peek(0)
	if err != nil {
		return nil, ErrExhausted
	}
	g.curKey = g.key(v)
	g.open = true
	g.gen++
	return &Group[T, K]{parent: g, gen: g.gen, key: g.curKey}, nil
}

// drain consumes the remainder of the open run, leaving the boundary
// element buffered.
func (g *Groups[T, K]) drain() {
	for g.open {
		v, err := g.buf.Peek(0)
		if err != nil || !g.equal(g.key(v), g.curKey) {
			g.open = false
			return
		}
		_ = g.buf.Consume(1)
	}
}

// All exposes the engine as a sequence of (key, run) pairs. Runs a
// consumer does not finish are drained automatically, so the outer loop
// always progresses; each inner sequence is only valid within its own
// iteration of the outer loop.
func (g *Groups[T, K]) All() iter.Seq2[K, iter.Seq[T]] {
	return func(yield func(K, iter.Seq[T]) bool) {
		defer g.Stop()
		for {
			grp, err := g.next(GroupAutoDrain)
			if err != nil {
				return
			}
			if !yield(grp.key, grp.All()) {
				return
			}
		}
	}
}

// Stop releases the underlying source.
func (g *Groups[T, K]) Stop() {
	g.open = false
	g.buf.Stop()
}

// Key returns the key shared by every element of the group.
func (gr *Group[T, K]) Key() K {
	return gr.key
}

// Next returns the group's next element. It returns ErrExhausted once the
// run's boundary or the end of the source is reached, and ErrStaleGroup
// if the parent engine has already moved on to a later group.
func (gr *Group[T, K]) Next() (T, error) {
	var zero T
	g := gr.parent
	if gr.gen != g.gen {
		return zero, ErrStaleGroup
	}
	if !g.open {
		return zero, ErrExhausted
	}
	v, err := g.buf.Peek(0)
	if err != nil {
		g.open = false
		return zero, ErrExhausted
	}
	if !g.equal(g.key(v), g.curKey) {
		// Boundary element stays buffered to seed the next group.
		g.open = false
		return zero, ErrExhausted
	}
	_ = g.buf.Consume(1)
	return v, nil
}

// All exposes the group as a plain sequence. It panics if the group has
// been invalidated by the parent engine advancing past it; a cursor into
// a recycled buffer region must never yield stale data.
func (gr *Group[T, K]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, err := gr.Next()
			if errors.Is(err, ErrStaleGroup) {
				panic("seqs: Group.All on a group the parent engine has advanced past")
			}
			if err != nil {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
