// Copyright (c) 2025 Visvasity LLC

package views

import "cmp"

// sortHelper sorts the elements of a view in place through the buffer.
type sortHelper[T Element] struct {
	view *View[T]
}

func (s sortHelper[T]) Len() int {
	return s.view.Len()
}

func (s sortHelper[T]) Swap(i, j int) {
	x, y := s.view.At(i), s.view.At(j)
	s.view.SetAt(i, int64(y))
	s.view.SetAt(j, int64(x))
}

func (s sortHelper[T]) Less(i, j int) bool {
	return cmp.Less(s.view.At(i), s.view.At(j))
}
