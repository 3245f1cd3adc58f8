// Copyright (c) 2025 Visvasity LLC

package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubarray(t *testing.T) {
	v := Of[int16](0, 1, 2, 3, 4, 5)

	tests := []struct {
		name string
		pos  []int
		want []int16
	}{
		{"whole", nil, []int16{0, 1, 2, 3, 4, 5}},
		{"from", []int{2}, []int16{2, 3, 4, 5}},
		{"range", []int{1, 3}, []int16{1, 2}},
		{"negative start", []int{-2}, []int16{4, 5}},
		{"negative end", []int{1, -1}, []int16{1, 2, 3, 4}},
		{"start past end", []int{10}, []int16{}},
		{"end past length", []int{4, 100}, []int16{4, 5}},
		{"very negative", []int{-100, 2}, []int16{0, 1}},
		{"reversed", []int{4, 2}, []int16{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := v.Subarray(tt.pos...)
			assert.Equal(t, tt.want, sub.Values())
			assert.Equal(t, len(tt.want)*2, sub.ByteLength())
		})
	}
}

func TestSubarraySharesBuffer(t *testing.T) {
	v := Of[uint16](10, 20, 30, 40)
	sub := v.Subarray(1, 3)
	require.Equal(t, 2, sub.ByteOffset())
	require.Equal(t, 2, sub.Len())

	sub.SetAt(0, 99)
	assert.Equal(t, uint16(99), v.At(1))

	v.SetAt(2, 77)
	assert.Equal(t, uint16(77), sub.At(1))

	// Reads past the sub-view but inside the buffer see the neighbor.
	assert.Equal(t, uint16(40), sub.At(2))

	subsub := sub.Subarray(1)
	assert.Equal(t, 4, subsub.ByteOffset())
	assert.Equal(t, []uint16{77}, subsub.Values())
}

func TestSliceCopies(t *testing.T) {
	v := Of[int32](1, 2, 3, 4)
	s := v.Slice(1, -1)
	require.Equal(t, []int32{2, 3}, s.Values())
	assert.Equal(t, 0, s.ByteOffset())
	assert.Equal(t, 8, s.Buffer().Len())

	s.SetAt(0, 100)
	assert.Equal(t, int32(2), v.At(1))
	v.SetAt(2, 300)
	assert.Equal(t, int32(3), s.At(1))

	assert.Equal(t, 0, v.Slice(3, 1).Len())
	assert.Equal(t, []int32{1, 2, 300, 4}, v.Slice().Values())
}

func TestSetFromSequence(t *testing.T) {
	v := Make[uint8](5)
	require.NoError(t, v.Set([]int{1, 2, 3}, 1))
	assert.Equal(t, []uint8{0, 1, 2, 3, 0}, v.Values())

	require.NoError(t, v.Set([]int{}, 5))
	require.NoError(t, v.SetValues([]int64{9, 257}, 3))
	assert.Equal(t, []uint8{0, 1, 2, 9, 1}, v.Values())

	err := v.Set([]int{1, 2, 3}, 3)
	assert.True(t, ErrSourceTooLarge.Is(err), "got %v", err)
	assert.Equal(t, []uint8{0, 1, 2, 9, 1}, v.Values(), "failed Set writes nothing")

	err = v.Set([]int{1}, -1)
	assert.True(t, ErrOffsetOutOfBounds.Is(err), "got %v", err)

	err = v.Set([]int{}, 6)
	assert.True(t, ErrOffsetOutOfBounds.Is(err), "got %v", err)

	err = v.Set(42, 0)
	assert.True(t, ErrUnsupportedSource.Is(err), "got %v", err)
}

func TestSetFromView(t *testing.T) {
	dst := Make[int16](4)
	src := Of[int16](-1, 2)
	require.NoError(t, dst.Set(src, 2))
	assert.Equal(t, []int16{0, 0, -1, 2}, dst.Values())

	err := dst.Set(src, 3)
	assert.True(t, ErrSourceTooLarge.Is(err), "got %v", err)

	// Same width, other signedness: bits are copied.
	u := Make[uint16](2)
	require.NoError(t, u.Set(src, 0))
	assert.Equal(t, []uint16{0xffff, 2}, u.Values())

	// Other widths copy raw bytes too.
	pair := Make[uint8](2)
	require.NoError(t, pair.Set(Of[uint16](0x0201), 0))
	assert.Equal(t, []uint8{1, 2}, pair.Values())

	b := Make[uint8](5)
	require.NoError(t, b.Set(src, 1))
	assert.Equal(t, []uint8{0, 0xff, 0xff, 2, 0}, b.Values())

	w := Make[int32](2)
	require.NoError(t, w.Set(Of[int8](-5, 5), 0))
	assert.Equal(t, []int32{0x05fb, 0}, w.Values())

	// Two elements fit, but their four bytes do not.
	short := Make[uint8](3)
	err = short.Set(src, 1)
	assert.True(t, ErrSourceTooLarge.Is(err), "got %v", err)
	assert.Equal(t, []uint8{0, 0, 0}, short.Values())

	parent := Of[uint8](9, 9, 9, 9, 9, 9)
	inner := parent.Subarray(1, 4)
	err = inner.Set(Of[uint16](1, 2), 1)
	assert.True(t, ErrSourceTooLarge.Is(err), "got %v", err)
	assert.Equal(t, []uint8{9, 9, 9, 9, 9, 9}, parent.Values(), "nothing written past the view")
}

func TestSetOverlapping(t *testing.T) {
	v := Of[uint16](1, 2, 3, 4, 5)
	require.NoError(t, v.Set(v.Subarray(0, 3), 2))
	assert.Equal(t, []uint16{1, 2, 1, 2, 3}, v.Values())

	v = Of[uint16](1, 2, 3, 4, 5)
	require.NoError(t, v.Set(v.Subarray(2), 0))
	assert.Equal(t, []uint16{3, 4, 5, 4, 5}, v.Values())

}

func TestSetOverlappingOtherWidth(t *testing.T) {
	// Bytes 1..4 of the same buffer moved down to bytes 0..3.
	w := Of[uint16](0x0102, 0x0304, 0x0506, 0)
	bs := From[uint8](w).Subarray(1, 5)
	require.Equal(t, []uint8{0x01, 0x04, 0x03, 0x06}, bs.Values())

	require.NoError(t, w.Set(bs, 0))
	assert.Equal(t, []byte{0x01, 0x04, 0x03, 0x06, 0x06, 0x05, 0, 0}, []byte(w.Buffer()))
	assert.Equal(t, []uint16{0x0401, 0x0603, 0x0506, 0}, w.Values())

	// Bytes 0..3 moved up to bytes 2..5.
	w = Of[uint16](0x0102, 0x0304, 0x0506, 0, 0, 0)
	bs = From[uint8](w.Subarray(0, 2))
	require.NoError(t, w.Set(bs, 1))
	assert.Equal(t, []byte{0x02, 0x01, 0x02, 0x01, 0x04, 0x03, 0, 0, 0, 0, 0, 0}, []byte(w.Buffer()))
}

func TestFill(t *testing.T) {
	tests := []struct {
		name  string
		value int64
		pos   []int
		want  []int32
	}{
		{"all", 7, nil, []int32{7, 7, 7, 7, 7}},
		{"from", 7, []int{3}, []int32{1, 2, 3, 7, 7}},
		{"range", -7, []int{1, 3}, []int32{1, -7, -7, 4, 5}},
		{"negative", 0, []int{-3, -1}, []int32{1, 2, 0, 0, 5}},
		{"clamped", 9, []int{-100, 100}, []int32{9, 9, 9, 9, 9}},
		{"empty", 9, []int{4, 2}, []int32{1, 2, 3, 4, 5}},
		{"wrapping zero", 1 << 32, []int{0, 2}, []int32{0, 0, 3, 4, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Of[int32](1, 2, 3, 4, 5)
			assert.Same(t, v, v.Fill(tt.value, tt.pos...))
			assert.Equal(t, tt.want, v.Values())
		})
	}
}

func TestFillSubarray(t *testing.T) {
	v := Of[uint8](1, 2, 3, 4, 5)
	v.Subarray(1, 4).Fill(0).Subarray(1).Fill(8, 0, 1)
	assert.Equal(t, []uint8{1, 0, 8, 0, 5}, v.Values())
}

func TestCopyWithin(t *testing.T) {
	tests := []struct {
		name   string
		target int
		start  int
		end    []int
		want   []int16
	}{
		{"forward overlap", 0, 2, nil, []int16{3, 4, 5, 4, 5}},
		{"backward overlap", 2, 0, nil, []int16{1, 2, 1, 2, 3}},
		{"with end", 0, 3, []int{4}, []int16{4, 2, 3, 4, 5}},
		{"negative", -2, -4, []int{-3}, []int16{1, 2, 3, 2, 5}},
		{"start after end", 0, 3, []int{2}, []int16{1, 2, 3, 4, 5}},
		{"target at end", 5, 0, nil, []int16{1, 2, 3, 4, 5}},
		{"clamped", -100, 100, nil, []int16{1, 2, 3, 4, 5}},
		{"same", 1, 1, nil, []int16{1, 2, 3, 4, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Of[int16](1, 2, 3, 4, 5)
			assert.Same(t, v, v.CopyWithin(tt.target, tt.start, tt.end...))
			assert.Equal(t, tt.want, v.Values())
		})
	}
}

func TestCopyWithinSubarray(t *testing.T) {
	v := Of[uint32](1, 2, 3, 4, 5, 6)
	v.Subarray(1, 5).CopyWithin(0, 1)
	assert.Equal(t, []uint32{1, 3, 4, 5, 5, 6}, v.Values())
}

func TestSort(t *testing.T) {
	v := Of[int16](5, -3, 0, 32767, -32768, 2)
	v.Subarray(1).Sort()
	assert.Equal(t, []int16{5, -32768, -3, 0, 2, 32767}, v.Values())

	u := Of[uint8](200, 1, 255, 0)
	assert.Same(t, u, u.Sort())
	assert.Equal(t, []uint8{0, 1, 200, 255}, u.Values())
}
