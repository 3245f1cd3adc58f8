// Copyright (c) 2025 Visvasity LLC

package views

import (
	"math"
	"reflect"
	"strconv"
	"strings"
)

// toNumber converts x to an integer for storage. Floats are truncated and
// wrapped modulo 2^32, numeric strings are parsed and everything else is 0.
func toNumber(x any) int64 {
	if x == nil {
		return 0
	}
	return valueNumber(reflect.ValueOf(x))
}

func valueNumber(rv reflect.Value) int64 {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return int64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return wrapFloat(rv.Float())
	case reflect.String:
		return parseNumber(rv.String())
	case reflect.Interface, reflect.Pointer:
		if rv.IsNil() {
			return 0
		}
		return valueNumber(rv.Elem())
	}
	return 0
}

func wrapFloat(f float64) int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int64(math.Mod(math.Trunc(f), 1<<32))
}

func parseNumber(s string) int64 {
	s = strings.TrimSpace(s)
	if x, err := strconv.ParseInt(s, 0, 64); err == nil {
		return x
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return wrapFloat(f)
	}
	return 0
}

// sequenceOf returns the elements of a slice or array source converted with
// toNumber. It returns false when source is not a sequence.
func sequenceOf(source any) ([]int64, bool) {
	if xs, ok := source.([]int64); ok {
		return xs, true
	}
	if source == nil {
		return nil, false
	}
	rv := reflect.ValueOf(source)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Kind() == reflect.Array {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	xs := make([]int64, rv.Len())
	for i := range xs {
		xs[i] = valueNumber(rv.Index(i))
	}
	return xs, true
}
