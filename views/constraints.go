// Copyright (c) 2025 Visvasity LLC

package views

import (
	"fmt"
	"reflect"

	"github.com/visvasity/typedview/buffer"
)

// Element lists the integer types a View can hold.
type Element interface {
	~uint8 | ~int8 | ~uint16 | ~int16 | ~uint32 | ~int32
}

// ByteView is implemented by every view. It exposes the byte range and the
// element layout so another view can share or decode the same bytes.
type ByteView interface {
	Buffer() buffer.Bytes
	ByteOffset() int
	ByteLength() int
	BytesPerElement() int
	Signed() bool
}

type accessor struct {
	read  func(b buffer.Bytes, offset int) int64
	write func(b buffer.Bytes, offset int, x int64)
}

// accessors is indexed by element size, then by 0 for unsigned and 1 for
// signed elements.
var accessors = map[int][2]accessor{
	1: {
		{
			read:  func(b buffer.Bytes, off int) int64 { return int64(b.Uint8At(off)) },
			write: func(b buffer.Bytes, off int, x int64) { b.SetUint8At(off, uint8(x)) },
		},
		{
			read:  func(b buffer.Bytes, off int) int64 { return int64(b.Int8At(off)) },
			write: func(b buffer.Bytes, off int, x int64) { b.SetInt8At(off, int8(x)) },
		},
	},
	2: {
		{
			read:  func(b buffer.Bytes, off int) int64 { return int64(b.Uint16At(off)) },
			write: func(b buffer.Bytes, off int, x int64) { b.SetUint16At(off, uint16(x)) },
		},
		{
			read:  func(b buffer.Bytes, off int) int64 { return int64(b.Int16At(off)) },
			write: func(b buffer.Bytes, off int, x int64) { b.SetInt16At(off, int16(x)) },
		},
	},
	4: {
		{
			read:  func(b buffer.Bytes, off int) int64 { return int64(b.Uint32At(off)) },
			write: func(b buffer.Bytes, off int, x int64) { b.SetUint32At(off, uint32(x)) },
		},
		{
			read:  func(b buffer.Bytes, off int) int64 { return int64(b.Int32At(off)) },
			write: func(b buffer.Bytes, off int, x int64) { b.SetInt32At(off, int32(x)) },
		},
	},
}

func lookupAccessor(size int, signed bool) (accessor, bool) {
	pair, ok := accessors[size]
	if !ok {
		return accessor{}, false
	}
	if signed {
		return pair[1], true
	}
	return pair[0], true
}

// layoutOf returns the element size and signedness of T.
func layoutOf[T Element]() (size int, signed bool) {
	etype := reflect.TypeFor[T]()
	switch etype.Kind() {
	case reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return int(etype.Size()), false
	case reflect.Int8, reflect.Int16, reflect.Int32:
		return int(etype.Size()), true
	}
	panic(fmt.Sprintf("layoutOf: unhandled element type %s", etype))
}
