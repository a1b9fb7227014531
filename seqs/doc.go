/*
Package seqs provides stateful lazy combinators for Go 1.23+ iterators
(iter.Seq), covering the operations that are too stateful for a one-line
adapter:

  - **Lookahead**: [Lookahead] buffers bounded peek-ahead over any
    sequence without consuming it, pulling lazily and never speculating.
  - **Grouping**: [GroupBy] and [GroupByFunc] partition a sequence into
    lazy per-run sub-sequences of consecutive equivalent keys.
  - **Merging**: [Merge], [MergeFunc] and [TryMergeFunc] combine k
    already-sorted sequences into one sorted sequence with a
    deterministic tie-break.
  - **Windowing**: [Windows] and [WindowsWith] yield fixed-size sliding
    or tiling windows with configurable tail handling.
  - **Short-circuit folding**: [FoldUntil] and [TryFoldUntil] drive a
    traversal that a step function can end early, with exact pull
    accounting.
  - **Error routing**: [OnValid] runs ordinary combinators over the valid
    half of a fallible stream while errors flow around the chain in
    order; [Valid] ends a stream at its first error and records it.

# Laziness

Every combinator traverses each input exactly once and computes nothing
until a downstream consumer demands it. Internal buffers (the lookahead
ring, merge heads, error runs) hold only what the demanded position
requires.

# Error Handling

Fallible streams follow the iter.Seq2[T, error] convention. Exhaustion is
not an error: pull-style APIs signal it with [ErrExhausted], push-style
sequences simply end. Source errors are propagated verbatim and stop the
combinator that was mid-pull; nothing is retried or skipped.

# Concurrency

Everything here is single-threaded and synchronous. Combinator instances
share no state with each other; each exclusively owns the source(s) it
wraps from construction on.
*/
package seqs
