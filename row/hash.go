package row

import (
	"hash/fnv"
	"math"
	"reflect"
)

const hashMultiplier = 31

// maxHashDepth bounds how many pointer, interface, map and slice
// indirections hashValue follows. Cyclic values stop here.
const maxHashDepth = 8

// nanBits stands in for every NaN payload, matching floatEqual.
const nanBits = 0x7ff8000000000001

// hashSeeds gives every arity its own starting value so rows of different
// arities holding the same cells rarely collide.
var hashSeeds = [...]uint64{17, 3, 1, 5, 7, 11, 13, 19, 23, 29, 37, 41, 43, 47, 53, 59, 61}

func hashRow(r Row) uint64 {
	n := r.Arity()
	h := uint64(n)
	if n < len(hashSeeds) {
		h = hashSeeds[n]
	}
	for i := 1; i <= n; i++ {
		v, name := r.cellAt(i)
		h = h*hashMultiplier + hashValue(v)
		h = h*hashMultiplier + hashName(name)
	}
	return h
}

// hashValue walks v the same way valuesEqual does, so values that compare
// equal hash the same.
func hashValue(v any) uint64 {
	if isNil(v) {
		return 0
	}
	return hashReflect(reflect.ValueOf(v), 0)
}

func hashReflect(v reflect.Value, depth int) uint64 {
	if !v.IsValid() {
		return 0
	}

	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			return 1
		}
		return 2
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return mix(uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return mix(v.Uint())
	case reflect.Float32, reflect.Float64:
		return mix(floatBits(v.Float()))
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		return mix(floatBits(real(c)))*hashMultiplier + mix(floatBits(imag(c)))
	case reflect.String:
		return hashString(v.String())
	case reflect.Array:
		h := uint64(v.Len())
		for i := 0; i < v.Len(); i++ {
			h = h*hashMultiplier + hashReflect(v.Index(i), depth)
		}
		return h
	case reflect.Struct:
		h := uint64(v.NumField())
		for i := 0; i < v.NumField(); i++ {
			h = h*hashMultiplier + hashReflect(v.Field(i), depth)
		}
		return h
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return 0
		}
		if depth >= maxHashDepth {
			return uint64(v.Kind())
		}
		return hashReflect(v.Elem(), depth+1)
	case reflect.Slice:
		if v.IsNil() {
			return 0
		}
		h := mix(uint64(v.Len()))
		if depth >= maxHashDepth {
			return h
		}
		for i := 0; i < v.Len(); i++ {
			h = h*hashMultiplier + hashReflect(v.Index(i), depth+1)
		}
		return h
	case reflect.Map:
		if v.IsNil() {
			return 0
		}
		h := mix(uint64(v.Len()))
		if depth >= maxHashDepth {
			return h
		}
		// entries are summed so iteration order does not matter
		var sum uint64
		iter := v.MapRange()
		for iter.Next() {
			k := hashReflect(iter.Key(), depth+1)
			sum += mix(k*hashMultiplier + hashReflect(iter.Value(), depth+1))
		}
		return h*hashMultiplier + sum
	}

	// Funcs are only equal when nil; chans and unsafe pointers by identity.
	return uint64(v.Kind())
}

// floatBits folds -0 into +0 and every NaN into one pattern.
func floatBits(f float64) uint64 {
	switch {
	case f == 0:
		return 0
	case math.IsNaN(f):
		return nanBits
	}
	return math.Float64bits(f)
}

// mix is the murmur3 64-bit finalizer.
func mix(x uint64) uint64 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return x
}

func hashName(n Name) uint64 {
	s, ok := n.Value()
	if !ok {
		return 0
	}
	return hashString(s) | 1
}

func hashString(s string) uint64 {
	f := fnv.New64a()
	f.Write([]byte(s))
	return f.Sum64()
}
