package differential

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/helixdna/helix/symbol"
)

func TestEncode(t *testing.T) {
	cases := []struct {
		in   symbol.Sequence
		want symbol.Sequence
	}{
		{symbol.Sequence{2, 2, 2, 3}, symbol.Sequence{2, 0, 0, 1}},
		{symbol.Sequence{0, 1, 2, 3}, symbol.Sequence{0, 1, 1, 1}},
		{symbol.Sequence{3, 3, 3, 3}, symbol.Sequence{3, 0, 0, 0}},
		{symbol.Sequence{}, symbol.Sequence{}},
	}
	for _, c := range cases {
		got := Encode(c.in)
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("Encode(%v) mismatch (-want +got):\n%s", c.in, diff)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	cases := []symbol.Sequence{
		{2, 2, 2, 3},
		{0, 1, 2, 3},
		{3, 3, 3, 3},
		{1, 0, 3, 2, 1},
		{},
	}
	for _, original := range cases {
		encoded := Encode(original)
		decoded := Decode(encoded)
		if diff := cmp.Diff(original, decoded); diff != "" {
			t.Errorf("Decode(Encode(%v)) mismatch (-want +got):\n%s", original, diff)
		}
	}
}
