// Copyright (c) 2025 wren-projects
//
// This source code is licensed under the MIT License found in the
// LICENSE file in the root directory of this source tree.

package seedseeker

// Iterator is a pull-based source of values. Next returns the next value and
// true, or the zero value of T and false once the sequence is exhausted.
// Exhaustion is a terminating condition, not an error: callers distinguish
// "no more values" from a malformed-input error at their own boundary.
type Iterator[T any] interface {
	Next() (T, bool)
}

// SliceIterator adapts a slice to the Iterator interface. It is primarily
// useful for tests and for callers that have already materialized a bounded
// prefix of a generator's output.
type SliceIterator[T any] struct {
	values []T
	pos    int
}

// NewSliceIterator returns an Iterator over values, in order.
func NewSliceIterator[T any](values []T) *SliceIterator[T] {
	return &SliceIterator[T]{values: values}
}

// Next returns the next value in the slice.
func (s *SliceIterator[T]) Next() (T, bool) {
	if s.pos >= len(s.values) {
		var zero T
		return zero, false
	}
	v := s.values[s.pos]
	s.pos++
	return v, true
}

// FuncIterator adapts a generator's Next method (the common shape shared by
// every family's forward Generator) to Iterator[uint64].
type FuncIterator struct {
	next func() uint64
	done bool
	n    int
	max  int
}

// NewGeneratorIterator wraps a forward generator's Next method as an
// Iterator[uint64] that yields at most max values before reporting
// exhaustion. A max of zero means unbounded.
func NewGeneratorIterator(next func() uint64, max int) *FuncIterator {
	return &FuncIterator{next: next, max: max}
}

// Next returns the generator's next output, or false once max values have
// been produced.
func (f *FuncIterator) Next() (uint64, bool) {
	if f.done || (f.max > 0 && f.n >= f.max) {
		f.done = true
		return 0, false
	}
	f.n++
	return f.next(), true
}

// CountingIterator forwards Next unchanged while tracking how many values
// have been produced.
type CountingIterator[T any] struct {
	it    Iterator[T]
	count int
}

// NewCountingIterator wraps it to track how many values it has yielded.
func NewCountingIterator[T any](it Iterator[T]) *CountingIterator[T] {
	return &CountingIterator[T]{it: it}
}

// Next forwards to the wrapped iterator, incrementing Count on success.
func (c *CountingIterator[T]) Next() (T, bool) {
	v, ok := c.it.Next()
	if ok {
		c.count++
	}
	return v, ok
}

// Count returns the number of values yielded so far.
func (c *CountingIterator[T]) Count() int {
	return c.count
}

// BufferingIterator maintains a bounded FIFO of the most recently yielded
// values. A maxSize of zero keeps every value ever seen.
type BufferingIterator[T any] struct {
	it      Iterator[T]
	maxSize int
	buffer  []T
}

// NewBufferingIterator wraps it, retaining at most maxSize of the most
// recent values (unbounded if maxSize <= 0).
func NewBufferingIterator[T any](it Iterator[T], maxSize int) *BufferingIterator[T] {
	return &BufferingIterator[T]{it: it, maxSize: maxSize}
}

// Next pulls the next value from the wrapped iterator, appending it to the
// buffer and evicting the oldest entry once the buffer is full.
func (b *BufferingIterator[T]) Next() (T, bool) {
	v, ok := b.it.Next()
	if !ok {
		var zero T
		return zero, false
	}

	if b.maxSize > 0 && len(b.buffer) >= b.maxSize {
		copy(b.buffer, b.buffer[1:])
		b.buffer[len(b.buffer)-1] = v
	} else {
		b.buffer = append(b.buffer, v)
	}

	return v, true
}

// Buffer returns the currently retained window, oldest first. The returned
// slice is owned by the BufferingIterator and must not be retained past the
// next call to Next.
func (b *BufferingIterator[T]) Buffer() []T {
	return b.buffer
}

// Drop consumes and discards up to n values from it, stopping early if the
// iterator is exhausted first. It returns it for convenience.
func Drop[T any](it Iterator[T], n int) Iterator[T] {
	for i := 0; i < n; i++ {
		if _, ok := it.Next(); !ok {
			break
		}
	}
	return it
}
