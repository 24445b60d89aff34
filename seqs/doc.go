/*
Package seqs provides lazy, single-pass, closable sequences built from pull-based generators.

A [Sequence] pulls its elements one at a time from a [Generator] and carries the release
actions of whatever resources back it. It includes:

  - **Generation**: [Generate], [Of], [FromSlice], [Range], [Repeat], [FromSeq].
  - **Grouping**: [Batch] and [BatchFunc], where the size of every group can be decided
    when the group starts.
  - **Bounded termination**: [TakeWhile] and [TakeWhileInclusive], [Take], [Skip],
    [DropWhile].
  - **Functional Transformations**: [Map], [TryMap], [Filter], [Peek], [FlatMap], [Zip].
  - **Terminals**: [Collect], [ForEach], [Reduce], [Count], [Sum].

# Laziness

Nothing is pulled before the consumer asks for it. Operators pull no more than their
semantics require: a group's worth of elements for [Batch], one extra element for
[TakeWhile] to decide that the prefix ended, never the element after the n-th for [Take].

# Closing

Every operator returns a new sequence whose Close closes the sequence it was built from,
so closing the outermost sequence releases the whole chain. Close is never implied by
exhaustion and only its first call has an effect:

	events := seqs.Generate[Event](reader)
	defer events.Close()

	for batch, err := range seqs.Batch(events, 100).All() {
		if err != nil {
			return err
		}
		insert(batch)
	}

# Error Handling

A generator fails by returning an error. The failure ends the sequence, is kept, and is
reported by Err, by the last pair of All and by the terminals. Native failures of
external resources are wrapped into [ResourceError] by the adapters in sqlseq and pgxseq.

Sequences are strictly single-threaded; share one between goroutines only with external
synchronization.
*/
package seqs
