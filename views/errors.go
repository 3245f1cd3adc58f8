// Copyright (c) 2025 Visvasity LLC

package views

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrOffsetOutOfBounds is returned when a byte offset falls outside the
	// buffer, or when a Set offset falls outside the view.
	ErrOffsetOutOfBounds = errors.NewKind("offset %d out of bounds [0, %d]")

	// ErrLengthOutOfBounds is returned when the requested length does not
	// fit in the buffer.
	ErrLengthOutOfBounds = errors.NewKind("length %d out of bounds: %s")

	// ErrSourceTooLarge is returned by Set when the source elements do not fit
	// in the view.
	ErrSourceTooLarge = errors.NewKind("source of %d elements does not fit at offset %d of %d elements")

	ErrUnsupportedElement = errors.NewKind("unsupported element of %d bytes")

	ErrUnsupportedSource = errors.NewKind("unsupported source type %T")
)
