package gcbalance

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/helixdna/helix/symbol"
)

func TestGCContent(t *testing.T) {
	cases := []struct {
		seq  symbol.Sequence
		want float64
	}{
		{symbol.Sequence{}, 0.0},
		{symbol.Sequence{0, 0, 0, 0}, 0.0},
		{symbol.Sequence{2, 2, 3, 3}, 1.0},
		{symbol.Sequence{0, 1, 2, 3}, 0.5},
	}
	for _, c := range cases {
		if got := GCContent(c.seq); got != c.want {
			t.Errorf("GCContent(%v) = %v, want %v", c.seq, got, c.want)
		}
	}
}

func TestIsBalanced(t *testing.T) {
	b := New(0.05)
	if !b.IsBalanced(symbol.Sequence{0, 1, 2, 3}) {
		t.Error("expected a perfectly balanced sequence to be balanced")
	}
	if b.IsBalanced(symbol.Sequence{0, 0, 0, 0, 1, 1, 1, 1}) {
		t.Error("expected an all-non-GC sequence to be unbalanced")
	}
}

func TestBalanceProducesBalancedOrClosestSequence(t *testing.T) {
	b := New(0.05)
	cases := []symbol.Sequence{
		{0, 0, 0, 0, 1, 1, 1, 1},
		{2, 2, 2, 2, 3, 3, 3, 3},
		{0, 1, 2, 3, 0, 1, 2, 3},
		{0, 0, 0, 1, 1, 1, 2, 3},
	}
	for _, original := range cases {
		balanced, t2 := b.Balance(original)
		if len(balanced) != len(original) {
			t.Fatalf("Balance(%v) changed length: got %d, want %d", original, len(balanced), len(original))
		}
		recovered := b.Unbalance(balanced, t2)
		if diff := cmp.Diff(original, recovered); diff != "" {
			t.Errorf("Unbalance(Balance(%v)) mismatch (-want +got):\n%s", original, diff)
		}
	}
}

func TestIndexSuffixRoundTrip(t *testing.T) {
	for _, tVal := range []int{0, 1, 2, 3, 4, 15, 16, 255, 1000} {
		suffix := CreateIndexSuffix(tVal)
		if len(suffix)%2 != 0 {
			t.Fatalf("CreateIndexSuffix(%d) produced odd-length suffix %v", tVal, suffix)
		}
		decoded, err := DecodeIndexSuffix(suffix)
		if err != nil {
			t.Fatalf("DecodeIndexSuffix(%v) returned error: %v", suffix, err)
		}
		if decoded != tVal {
			t.Errorf("DecodeIndexSuffix(CreateIndexSuffix(%d)) = %d", tVal, decoded)
		}
	}
}

func TestDecodeIndexSuffixOddLength(t *testing.T) {
	_, err := DecodeIndexSuffix(symbol.Sequence{0, 2, 1})
	if err != ErrOddSuffixLength {
		t.Errorf("expected ErrOddSuffixLength, got %v", err)
	}
}

func TestDecodeIndexSuffixNotInterleaved(t *testing.T) {
	_, err := DecodeIndexSuffix(symbol.Sequence{0, 1})
	if err == nil {
		t.Fatal("expected an error for a non-interleaved suffix")
	}
	var malformed *MalformedSuffixError
	if !asMalformedSuffix(err, &malformed) {
		t.Fatalf("expected *MalformedSuffixError, got %T: %v", err, err)
	}
}

func asMalformedSuffix(err error, target **MalformedSuffixError) bool {
	e, ok := err.(*MalformedSuffixError)
	if ok {
		*target = e
	}
	return ok
}

func TestGenerateSearchSetContainsEndpoints(t *testing.T) {
	b := New(0.05)
	set := b.GenerateSearchSet(8)
	found0, foundN := false, false
	for _, v := range set {
		if v == 0 {
			found0 = true
		}
		if v == 8 {
			foundN = true
		}
	}
	if !found0 || !foundN {
		t.Errorf("GenerateSearchSet(8) = %v, expected to contain both 0 and 8", set)
	}
}
