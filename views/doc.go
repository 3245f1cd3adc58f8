// Copyright (c) 2025 Visvasity LLC

// Package views provides typed integer views over byte buffers.
//
// A view interprets a contiguous byte range of a buffer.Bytes as fixed-size
// integers without copying it. Views created with Subarray or From share the
// bytes of their source, Slice makes an independent copy.
//
//	b := buffer.New(8)
//	words, _ := views.NewUint16Array(b, 0)
//	words.SetAt(0, 0x0201)
//	bytes, _ := views.NewUint8Array(words, 0)
//	bytes.At(0) // 0x01
//
// Construction and Set check bounds strictly and return ErrOffsetOutOfBounds,
// ErrLengthOutOfBounds or ErrSourceTooLarge. Element reads outside the buffer
// return zero. Subarray, Slice, Fill and CopyWithin clamp their positions to
// the view and never fail.
package views

//go:generate go run github.com/visvasity/typedview -inpkg . -outdir . Uint8Array=uint8 Uint16Array=uint16 Int16Array=int16 Int32Array=int32
