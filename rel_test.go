// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sized_test

import (
	"strings"
	"testing"

	"code.hybscloud.com/sized"
)

func TestSumOf(t *testing.T) {
	// Constructing a true relation succeeds; the result is usable.
	w := sized.SumOf[sized.N4, sized.N4, sized.N8]()
	a := sized.Filled[sized.N4](1)
	b := sized.Filled[sized.N4](2)
	c := sized.Concat(w, a, b)
	if c.Len() != 8 {
		t.Fatalf("got len %d, want 8", c.Len())
	}
}

func TestSumOfZeroIdentity(t *testing.T) {
	// 0 + N = N holds for every numeral.
	_ = sized.SumOf[sized.N0, sized.N8, sized.N8]()
	_ = sized.SumOf[sized.N8, sized.N0, sized.N8]()
	_ = sized.SumOf[sized.N0, sized.N0, sized.N0]()
}

func TestSumOfRejectsFalseArithmetic(t *testing.T) {
	defer func() {
		r := recover()
		msg, ok := r.(string)
		if !ok {
			t.Fatalf("panic value = %v, want string", r)
		}
		if !strings.HasPrefix(msg, "sized: no sum relation") {
			t.Fatalf("got %q, want sum relation panic", msg)
		}
	}()
	_ = sized.SumOf[sized.N4, sized.N4, sized.N16]()
}

func TestSplitOfRejectsFalseArithmetic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("SplitOf accepted 3+3=8")
		}
	}()
	_ = sized.SplitOf[sized.N3, sized.N3, sized.N8]()
}

func TestZeroValueSumRejected(t *testing.T) {
	// A forged zero-value witness carries no proof and must not be usable.
	var w sized.Sum[sized.N4, sized.N4, sized.N8]
	defer func() {
		if recover() == nil {
			t.Fatal("Concat accepted a zero-value Sum")
		}
	}()
	_ = sized.Concat(w, sized.Filled[sized.N4](0), sized.Filled[sized.N4](0))
}

func TestZeroValueSplitRejected(t *testing.T) {
	var w sized.Split[sized.N4, sized.N4, sized.N8]
	defer func() {
		if recover() == nil {
			t.Fatal("SplitAt accepted a zero-value Split")
		}
	}()
	_, _ = sized.SplitAt(w, sized.Filled[sized.N8](0))
}

func TestSumSwap(t *testing.T) {
	w := sized.SumOf[sized.N3, sized.N5, sized.N8]()
	swapped := w.Swap()
	a := sized.Generate[sized.N5](func(i int) int { return i })
	b := sized.Generate[sized.N3](func(i int) int { return 10 + i })
	c := sized.Concat(swapped, a, b)
	want := []int{0, 1, 2, 3, 4, 10, 11, 12}
	for i, v := range want {
		if got := c.Get(i); got != v {
			t.Fatalf("slot %d = %d, want %d", i, got, v)
		}
	}
}

func TestSumSplitRoundTrip(t *testing.T) {
	w := sized.SumOf[sized.N2, sized.N6, sized.N8]()
	s := w.Split()
	back := s.Sum()
	a := sized.Filled[sized.N2](1)
	b := sized.Filled[sized.N6](2)
	if got := sized.Concat(back, a, b).Len(); got != 8 {
		t.Fatalf("got len %d, want 8", got)
	}
}

func TestSplitOfUsableBySplitAt(t *testing.T) {
	w := sized.SplitOf[sized.N5, sized.N3, sized.N8]()
	a := sized.Generate[sized.N8](func(i int) int { return i })
	prefix, suffix := sized.SplitAt(w, a)
	if prefix.Len() != 5 || suffix.Len() != 3 {
		t.Fatalf("got lens %d/%d, want 5/3", prefix.Len(), suffix.Len())
	}
	if prefix.Get(4) != 4 || suffix.Get(0) != 5 {
		t.Fatalf("split boundary misplaced: %v / %v", prefix, suffix)
	}
}
