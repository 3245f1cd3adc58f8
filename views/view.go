// Copyright (c) 2025 Visvasity LLC

package views

import (
	"bytes"
	"fmt"
	"iter"
	"math"
	"reflect"

	"github.com/visvasity/typedview/buffer"
)

// View interprets a byte range of a buffer as a sequence of fixed-size
// integers of type T.
//
// Several views may share one buffer. Writes through any of them are visible
// to all others. A View is not safe for concurrent use.
type View[T Element] struct {
	buf        buffer.Bytes
	byteOffset int
	byteLength int
	length     int

	size   int
	signed bool
	acc    accessor
}

func newView[T Element](buf buffer.Bytes, byteOffset, length int) *View[T] {
	size, signed := layoutOf[T]()
	acc, _ := lookupAccessor(size, signed)
	return &View[T]{
		buf:        buf,
		byteOffset: byteOffset,
		byteLength: length * size,
		length:     length,
		size:       size,
		signed:     signed,
		acc:        acc,
	}
}

// New creates a view from source, which can be
//
//   - an integer count: a fresh zeroed buffer of count elements; byteOffset
//     is ignored.
//   - a buffer.Bytes or []byte: the view shares it, starting at byteOffset
//     and holding length elements, or as many whole elements as remain when
//     length is not given.
//   - a ByteView: the view shares its buffer and byte range, reinterpreted as
//     elements of type T. The view starts at the source's own byte offset;
//     the byteOffset and length arguments are dropped.
//   - a slice or array of numbers: a fresh buffer holding the converted
//     values.
//
// Any other source, including nil, yields an empty view.
func New[T Element](source any, byteOffset int, length ...int) (*View[T], error) {
	switch src := source.(type) {
	case nil:
		return Make[T](0), nil
	case buffer.Bytes:
		return Over[T](src, byteOffset, length...)
	case []byte:
		return Over[T](buffer.Bytes(src), byteOffset, length...)
	case ByteView:
		if rv := reflect.ValueOf(src); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return Make[T](0), nil
		}
		return From[T](src), nil
	}

	rv := reflect.ValueOf(source)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return alloc[T](rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if rv.Uint() > math.MaxInt64 {
			return nil, ErrLengthOutOfBounds.New(rv.Uint(), "count overflows")
		}
		return alloc[T](int64(rv.Uint()))
	}

	if values, ok := sequenceOf(source); ok {
		return Of[T](values...), nil
	}
	return Make[T](0), nil
}

func alloc[T Element](count int64) (*View[T], error) {
	size, _ := layoutOf[T]()
	if count < 0 {
		return nil, ErrLengthOutOfBounds.New(count, "negative count")
	}
	if count > int64(math.MaxInt/size) {
		return nil, ErrLengthOutOfBounds.New(count, "count overflows")
	}
	return Make[T](int(count)), nil
}

// Make returns a view of n zero elements over a freshly allocated buffer. It
// panics if n is negative.
func Make[T Element](n int) *View[T] {
	if n < 0 {
		panic(fmt.Sprintf("views.Make: negative length %d", n))
	}
	size, _ := layoutOf[T]()
	return newView[T](buffer.New(n*size), 0, n)
}

// Of returns a view over a freshly allocated buffer holding values, each
// wrapped to the width of T.
func Of[T Element](values ...int64) *View[T] {
	v := Make[T](len(values))
	for i, x := range values {
		v.SetAt(i, x)
	}
	return v
}

// Over returns a view sharing buf from byteOffset. When length is not given
// the view covers the whole elements left in buf after byteOffset.
func Over[T Element](buf buffer.Bytes, byteOffset int, length ...int) (*View[T], error) {
	size, _ := layoutOf[T]()
	total := len(buf)
	if byteOffset < 0 || byteOffset > total {
		return nil, ErrOffsetOutOfBounds.New(byteOffset, total)
	}
	n := (total - byteOffset) / size
	if len(length) > 0 {
		if length[0] < 0 || length[0] > n {
			reason := fmt.Sprintf("%d elements of %d bytes at offset %d exceed buffer of %d bytes", length[0], size, byteOffset, total)
			return nil, ErrLengthOutOfBounds.New(length[0], reason)
		}
		n = length[0]
	}
	return newView[T](buf, byteOffset, n), nil
}

// From returns a view of T over the same bytes as src. The length is the
// number of whole T elements in src's byte range.
func From[T Element](src ByteView) *View[T] {
	size, _ := layoutOf[T]()
	return newView[T](src.Buffer(), src.ByteOffset(), src.ByteLength()/size)
}

// Buffer returns the underlying, possibly shared, buffer.
func (v *View[T]) Buffer() buffer.Bytes {
	return v.buf
}

func (v *View[T]) ByteOffset() int {
	return v.byteOffset
}

func (v *View[T]) ByteLength() int {
	return v.byteLength
}

func (v *View[T]) BytesPerElement() int {
	return v.size
}

func (v *View[T]) Signed() bool {
	return v.signed
}

// Len returns the number of elements in the view.
func (v *View[T]) Len() int {
	return v.length
}

// offsetOf returns the buffer offset of element i and whether the whole
// element lies inside the buffer.
func (v *View[T]) offsetOf(i int) (int, bool) {
	if len(v.buf) == 0 || i < -len(v.buf) || i > len(v.buf) {
		return 0, false
	}
	off := v.byteOffset + i*v.size
	return off, off >= 0 && off+v.size <= len(v.buf)
}

// At returns element i. Reads that fall outside the buffer return zero.
func (v *View[T]) At(i int) T {
	off, ok := v.offsetOf(i)
	if !ok {
		return 0
	}
	return T(v.acc.read(v.buf, off))
}

// Int64At is like At, widened to int64.
func (v *View[T]) Int64At(i int) int64 {
	return int64(v.At(i))
}

// SetAt stores x, wrapped to the width of T, as element i. It panics if the
// element lies outside the buffer.
func (v *View[T]) SetAt(i int, x int64) {
	v.acc.write(v.buf, v.byteOffset+i*v.size, x)
}

// SetValue stores x as element i after converting it to a number. Values
// that are not numbers store zero.
func (v *View[T]) SetValue(i int, x any) {
	v.SetAt(i, toNumber(x))
}

// Values returns a copy of all elements.
func (v *View[T]) Values() []T {
	vs := make([]T, v.length)
	for i := range vs {
		vs[i] = v.At(i)
	}
	return vs
}

// All returns an iterator over index and element pairs.
func (v *View[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(i, v.At(i)) {
				return
			}
		}
	}
}

// bytes returns the viewed byte range.
func (v *View[T]) bytes() buffer.Bytes {
	return v.buf.Range(v.byteOffset, v.byteLength)
}

// IsZero returns true if all elements are zero.
func (v *View[T]) IsZero() bool {
	return v.bytes().IsZero()
}

// Equal returns true if other views the same byte content as v. A nil other
// is never equal.
func (v *View[T]) Equal(other ByteView) bool {
	if other == nil {
		return false
	}
	if rv := reflect.ValueOf(other); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return false
	}
	if other.ByteLength() != v.byteLength {
		return false
	}
	obytes := other.Buffer().Range(other.ByteOffset(), other.ByteLength())
	return bytes.Equal(obytes, v.bytes())
}

func (v *View[T]) String() string {
	return fmt.Sprint(v.Values())
}
