// Copyright (c) 2025 Visvasity LLC

// Package buffer implements the fixed-length byte storage that views are
// layered on. All multi-byte values are little-endian.
//
// Bytes is a plain byte slice, so any number of views may hold the same
// storage. Nothing here is safe for concurrent mutation.
package buffer

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Bytes is a fixed-length byte region supporting typed reads and writes at a
// byte offset. Accessors panic when the value does not fit in the region.
type Bytes []byte

// zeroChunk is the largest range compared or cleared with a single call.
var zeroChunk [4096]byte

// New allocates a zero-initialized region of n bytes.
func New(n int) Bytes {
	if n < 0 {
		panic(fmt.Sprintf("buffer.New: negative size %d", n))
	}
	return make(Bytes, n)
}

// Len returns the number of bytes in the region.
func (v Bytes) Len() int {
	return len(v)
}

// Clone returns an independent copy of v.
func (v Bytes) Clone() Bytes {
	if v == nil {
		return nil
	}
	return append(make(Bytes, 0, len(v)), v...)
}

// IsZero returns true if every byte in the region is zero.
func (v Bytes) IsZero() bool {
	for rest := v; len(rest) > 0; {
		n := min(len(rest), len(zeroChunk))
		if !bytes.Equal(rest[:n], zeroChunk[:n]) {
			return false
		}
		rest = rest[n:]
	}
	return true
}

// SetZero writes zeros into the whole region.
func (v Bytes) SetZero() {
	for rest := v; len(rest) > 0; {
		rest = rest[copy(rest, zeroChunk[:]):]
	}
}

// Range returns the sub-region [offset, offset+n) sharing storage with v.
func (v Bytes) Range(offset, n int) Bytes {
	return v[offset : offset+n : offset+n]
}

// Move copies n bytes from src to dst within v. Overlapping ranges are
// handled like memmove.
func (v Bytes) Move(dst, src, n int) {
	copy(v[dst:dst+n], v[src:src+n])
}

// Copy copies n bytes from src[srcOffset:] into dst[dstOffset:]. The two
// regions may be the same storage with overlapping ranges.
func Copy(dst Bytes, dstOffset int, src Bytes, srcOffset, n int) {
	if n < 0 {
		panic(fmt.Sprintf("buffer.Copy: negative length %d", n))
	}
	copy(dst[dstOffset:dstOffset+n], src[srcOffset:srcOffset+n])
}

func (v Bytes) Int8At(offset int) int8 {
	return int8(v[offset])
}

func (v Bytes) SetInt8At(offset int, x int8) {
	v[offset] = byte(x)
}

func (v Bytes) Uint8At(offset int) uint8 {
	return v[offset]
}

func (v Bytes) SetUint8At(offset int, x uint8) {
	v[offset] = x
}

func (v Bytes) Int16At(offset int) int16 {
	return int16(binary.LittleEndian.Uint16(v[offset : offset+2]))
}

func (v Bytes) SetInt16At(offset int, x int16) {
	binary.LittleEndian.PutUint16(v[offset:offset+2], uint16(x))
}

func (v Bytes) Uint16At(offset int) uint16 {
	return binary.LittleEndian.Uint16(v[offset : offset+2])
}

func (v Bytes) SetUint16At(offset int, x uint16) {
	binary.LittleEndian.PutUint16(v[offset:offset+2], x)
}

func (v Bytes) Int32At(offset int) int32 {
	return int32(binary.LittleEndian.Uint32(v[offset : offset+4]))
}

func (v Bytes) SetInt32At(offset int, x int32) {
	binary.LittleEndian.PutUint32(v[offset:offset+4], uint32(x))
}

func (v Bytes) Uint32At(offset int) uint32 {
	return binary.LittleEndian.Uint32(v[offset : offset+4])
}

func (v Bytes) SetUint32At(offset int, x uint32) {
	binary.LittleEndian.PutUint32(v[offset:offset+4], x)
}
