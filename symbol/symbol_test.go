package symbol

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFlipInvolution(t *testing.T) {
	for s := Symbol(0); s <= 3; s++ {
		if got := Flip(Flip(s)); got != s {
			t.Errorf("Flip(Flip(%d)) = %d, want %d", s, got, s)
		}
	}
}

func TestFlipTable(t *testing.T) {
	cases := map[Symbol]Symbol{0: 2, 2: 0, 1: 3, 3: 1}
	for in, want := range cases {
		if got := Flip(in); got != want {
			t.Errorf("Flip(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestFlipPanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Flip(4) did not panic")
		}
	}()
	Flip(4)
}

func TestSequenceGCContent(t *testing.T) {
	seq := Sequence{0, 1, 2, 3}
	if got := seq.GCContent(); got != 0.5 {
		t.Errorf("GCContent() = %v, want 0.5", got)
	}
	if Sequence{}.GCContent() != 0 {
		t.Errorf("GCContent() of empty sequence should be 0")
	}
}

func TestSequenceMaxRun(t *testing.T) {
	cases := []struct {
		seq  Sequence
		want int
	}{
		{Sequence{}, 0},
		{Sequence{0}, 1},
		{Sequence{0, 0, 0, 1}, 3},
		{Sequence{0, 1, 0, 1}, 1},
		{Sequence{2, 2, 2, 2, 2}, 5},
	}
	for _, c := range cases {
		if got := c.seq.MaxRun(); got != c.want {
			t.Errorf("MaxRun(%v) = %d, want %d", c.seq, got, c.want)
		}
	}
}

func TestFlipPrefix(t *testing.T) {
	seq := Sequence{0, 0, 1, 1}
	flipped := seq.FlipPrefix(2)
	want := Sequence{2, 2, 1, 1}
	if diff := cmp.Diff(want, flipped); diff != "" {
		t.Errorf("FlipPrefix(2) mismatch (-want +got):\n%s", diff)
	}
	// flipping twice restores the original
	restored := flipped.FlipPrefix(2)
	if diff := cmp.Diff(seq, restored); diff != "" {
		t.Errorf("double FlipPrefix mismatch (-want +got):\n%s", diff)
	}
}

func TestBase4DigitsRoundtrip(t *testing.T) {
	for _, v := range []int{0, 1, 3, 4, 15, 16, 255} {
		digits := Base4Digits(v, 0)
		if got := FromBase4Digits(digits); got != v {
			t.Errorf("FromBase4Digits(Base4Digits(%d)) = %d", v, got)
		}
	}
}

func TestBase4DigitsPadding(t *testing.T) {
	digits := Base4Digits(2, 4)
	want := []Symbol{0, 0, 0, 2}
	if diff := cmp.Diff(want, digits); diff != "" {
		t.Errorf("Base4Digits(2, 4) mismatch (-want +got):\n%s", diff)
	}
}

func TestSequenceEqualAndClone(t *testing.T) {
	a := Sequence{1, 2, 3}
	b := a.Clone()
	if !a.Equal(b) {
		t.Errorf("clone should be equal to original")
	}
	b[0] = 0
	if a.Equal(b) {
		t.Errorf("mutating the clone must not affect the original")
	}
}
