// Copyright (c) 2025 Visvasity LLC

package views

import (
	"sort"

	"github.com/visvasity/typedview/buffer"
)

// position resolves a possibly negative element position against length. The
// result is always in [0, length].
func position(pos, length int) int {
	if pos < 0 {
		pos += length
	}
	return min(max(pos, 0), length)
}

// span resolves optional start and end positions, defaulting to the whole
// view.
func (v *View[T]) span(pos []int) (start, end int) {
	start, end = 0, v.length
	if len(pos) > 0 {
		start = position(pos[0], v.length)
	}
	if len(pos) > 1 {
		end = position(pos[1], v.length)
	}
	return start, max(end, start)
}

// Subarray returns a view of elements [start, end) sharing v's buffer. Both
// positions are optional and may be negative to count from the end. Out of
// range positions are clamped.
func (v *View[T]) Subarray(pos ...int) *View[T] {
	start, end := v.span(pos)
	return newView[T](v.buf, v.byteOffset+start*v.size, end-start)
}

// Slice is like Subarray, but copies the elements into a new buffer.
func (v *View[T]) Slice(pos ...int) *View[T] {
	sub := v.Subarray(pos...)
	out := Make[T](sub.Len())
	if err := out.Set(sub, 0); err != nil {
		panic(err)
	}
	return out
}

func (v *View[T]) checkFit(n, offset int) error {
	if offset < 0 || offset > v.length {
		return ErrOffsetOutOfBounds.New(offset, v.length)
	}
	if n > v.length-offset {
		return ErrSourceTooLarge.New(n, offset, v.length)
	}
	return nil
}

// Set writes the elements of source into v starting at element offset.
// Source can be any ByteView, or a slice or array of numbers. Views are
// copied byte for byte whatever their element size, so the source bytes must
// also fit in v. Source may share v's buffer.
func (v *View[T]) Set(source any, offset int) error {
	if src, ok := source.(ByteView); ok {
		return v.setView(src, offset)
	}
	values, ok := sequenceOf(source)
	if !ok {
		return ErrUnsupportedSource.New(source)
	}
	return v.SetValues(values, offset)
}

// SetValues writes values into v starting at element offset.
func (v *View[T]) SetValues(values []int64, offset int) error {
	if err := v.checkFit(len(values), offset); err != nil {
		return err
	}
	for i, x := range values {
		v.SetAt(offset+i, x)
	}
	return nil
}

func (v *View[T]) setView(src ByteView, offset int) error {
	size := src.BytesPerElement()
	if _, ok := accessors[size]; !ok {
		return ErrUnsupportedElement.New(size)
	}
	n := src.ByteLength() / size
	if err := v.checkFit(n, offset); err != nil {
		return err
	}
	if n*size > (v.length-offset)*v.size {
		return ErrSourceTooLarge.New(n, offset, v.length)
	}
	buffer.Copy(v.buf, v.byteOffset+offset*v.size, src.Buffer(), src.ByteOffset(), n*size)
	return nil
}

// Fill stores value in elements [start, end) and returns v. Positions are
// resolved like Subarray.
func (v *View[T]) Fill(value int64, pos ...int) *View[T] {
	start, end := v.span(pos)
	if T(value) == 0 {
		v.buf.Range(v.byteOffset+start*v.size, (end-start)*v.size).SetZero()
		return v
	}
	for i := start; i < end; i++ {
		v.SetAt(i, value)
	}
	return v
}

// CopyWithin copies elements [start, end) to position target inside v and
// returns v. End defaults to the view length. Negative positions count from
// the end and all positions are clamped to the view. Overlapping ranges are
// copied as if through a temporary.
func (v *View[T]) CopyWithin(target, start int, end ...int) *View[T] {
	target = position(target, v.length)
	start = position(start, v.length)
	stop := v.length
	if len(end) > 0 {
		stop = position(end[0], v.length)
	}

	count := min(stop-start, v.length-target)
	if count <= 0 {
		return v
	}
	v.buf.Move(v.byteOffset+target*v.size, v.byteOffset+start*v.size, count*v.size)
	return v
}

// Sort sorts the elements in ascending order and returns v.
func (v *View[T]) Sort() *View[T] {
	sort.Sort(sortHelper[T]{view: v})
	return v
}
