// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sized_test

import (
	"testing"

	"code.hybscloud.com/sized"
)

// BenchmarkLength measures numeral reification cost (per binary digit).
func BenchmarkLength(b *testing.B) {
	for b.Loop() {
		_ = sized.Length[sized.N256]()
	}
}

// BenchmarkFilled measures construction of a 64-slot array.
func BenchmarkFilled(b *testing.B) {
	for b.Loop() {
		_ = sized.Filled[sized.N64](1)
	}
}

// BenchmarkGenerate measures indexed construction of a 64-slot array.
func BenchmarkGenerate(b *testing.B) {
	f := func(i int) int { return i }
	for b.Loop() {
		_ = sized.Generate[sized.N64](f)
	}
}

// BenchmarkGet measures checked element access.
func BenchmarkGet(b *testing.B) {
	a := sized.Filled[sized.N64](1)
	for b.Loop() {
		_ = a.Get(33)
	}
}

// BenchmarkMap measures a length-preserving transformation.
func BenchmarkMap(b *testing.B) {
	a := sized.Generate[sized.N64](func(i int) int { return i })
	double := func(x int) int { return x * 2 }
	for b.Loop() {
		_ = sized.Map(a, double)
	}
}

// BenchmarkFold measures reduction over 64 slots.
func BenchmarkFold(b *testing.B) {
	a := sized.Generate[sized.N64](func(i int) int { return i })
	add := func(acc, x int) int { return acc + x }
	for b.Loop() {
		_ = sized.Fold(a, 0, add)
	}
}

// BenchmarkConcat measures witnessed concatenation of 32+32 slots.
func BenchmarkConcat(b *testing.B) {
	w := sized.SumOf[sized.N32, sized.N32, sized.N64]()
	x := sized.Filled[sized.N32](1)
	y := sized.Filled[sized.N32](2)
	for b.Loop() {
		_ = sized.Concat(w, x, y)
	}
}

// BenchmarkSplitAt measures witnessed splitting of 64 slots.
func BenchmarkSplitAt(b *testing.B) {
	w := sized.SplitOf[sized.N32, sized.N32, sized.N64]()
	a := sized.Filled[sized.N64](1)
	for b.Loop() {
		_, _ = sized.SplitAt(w, a)
	}
}

// BenchmarkTotal measures the fused numeric reduction.
func BenchmarkTotal(b *testing.B) {
	a := sized.Generate[sized.N64](func(i int) int { return i })
	for b.Loop() {
		_ = sized.Total(a)
	}
}
