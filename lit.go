// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sized

// Literal constructors. A native Go array type [k]T is the one place
// the compiler checks element counts in source, so each supported
// arity gets its own constructor: From4([4]T{...}) will not accept
// three or five elements. Go generics cannot abstract over the k in
// [k]T, hence one function per arity rather than a single generic one.
//
// The argument is passed by value, so the constructed Array owns a
// fresh copy and never aliases the caller's array.

// From1 constructs a length-1 array from a native Go array.
func From1[T any](xs [1]T) Array[N1, T] { return Array[N1, T]{data: xs[:]} }

// From2 constructs a length-2 array from a native Go array.
func From2[T any](xs [2]T) Array[N2, T] { return Array[N2, T]{data: xs[:]} }

// From3 constructs a length-3 array from a native Go array.
func From3[T any](xs [3]T) Array[N3, T] { return Array[N3, T]{data: xs[:]} }

// From4 constructs a length-4 array from a native Go array.
func From4[T any](xs [4]T) Array[N4, T] { return Array[N4, T]{data: xs[:]} }

// From5 constructs a length-5 array from a native Go array.
func From5[T any](xs [5]T) Array[N5, T] { return Array[N5, T]{data: xs[:]} }

// From6 constructs a length-6 array from a native Go array.
func From6[T any](xs [6]T) Array[N6, T] { return Array[N6, T]{data: xs[:]} }

// From7 constructs a length-7 array from a native Go array.
func From7[T any](xs [7]T) Array[N7, T] { return Array[N7, T]{data: xs[:]} }

// From8 constructs a length-8 array from a native Go array.
func From8[T any](xs [8]T) Array[N8, T] { return Array[N8, T]{data: xs[:]} }

// From16 constructs a length-16 array from a native Go array.
func From16[T any](xs [16]T) Array[N16, T] { return Array[N16, T]{data: xs[:]} }

// From32 constructs a length-32 array from a native Go array.
func From32[T any](xs [32]T) Array[N32, T] { return Array[N32, T]{data: xs[:]} }

// To4 copies a length-4 array into a native Go array. Constant
// indexing into the result is range-checked by the compiler.
func To4[T any](a Array[N4, T]) [4]T {
	var out [4]T
	copy(out[:], a.data)
	return out
}

// To8 copies a length-8 array into a native Go array.
func To8[T any](a Array[N8, T]) [8]T {
	var out [8]T
	copy(out[:], a.data)
	return out
}

// To16 copies a length-16 array into a native Go array.
func To16[T any](a Array[N16, T]) [16]T {
	var out [16]T
	copy(out[:], a.data)
	return out
}
