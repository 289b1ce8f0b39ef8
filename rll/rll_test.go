package rll

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/helixdna/helix/symbol"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	codec := New(3)
	cases := []symbol.Sequence{
		{0, 0, 0, 1, 2},
		{1, 0, 0, 0, 0, 2},
		{0, 1, 0, 1, 0},
		{0, 0, 0, 0, 0, 0},
		{3, 2, 1, 0},     // contains a literal pointer pattern to escape
		{3, 2, 3, 2, 0, 0, 0},
		{},
	}
	for _, original := range cases {
		encoded, err := codec.Encode(original)
		if err != nil {
			t.Fatalf("Encode(%v) returned error: %v", original, err)
		}
		if codec.HasForbiddenSubstring(encoded) {
			t.Errorf("Encode(%v) = %v still has a forbidden run of %d zeros", original, encoded, codec.Ell)
		}
		decoded, err := codec.Decode(encoded)
		if err != nil {
			t.Fatalf("Decode(Encode(%v)) returned error: %v; encoded=%v", original, err, encoded)
		}
		if diff := cmp.Diff(original, decoded); diff != "" {
			t.Errorf("Decode(Encode(%v)) mismatch (-want +got):\n%s\nencoded=%v", original, diff, encoded)
		}
	}
}

func TestEncodeDecodeRoundTripVariousEll(t *testing.T) {
	for _, ell := range []int{2, 3, 4} {
		codec := New(ell)
		original := symbol.Sequence{0, 0, 0, 0, 0, 1, 2, 3, 0, 0, 0, 0, 0, 0, 0, 0}
		encoded, err := codec.Encode(original)
		if err != nil {
			t.Fatalf("ell=%d: Encode returned error: %v", ell, err)
		}
		if codec.HasForbiddenSubstring(encoded) {
			t.Errorf("ell=%d: Encode(%v) = %v still has a forbidden run", ell, original, encoded)
		}
		decoded, err := codec.Decode(encoded)
		if err != nil {
			t.Fatalf("ell=%d: Decode returned error: %v", ell, err)
		}
		if diff := cmp.Diff(original, decoded); diff != "" {
			t.Errorf("ell=%d: round trip mismatch (-want +got):\n%s", ell, diff)
		}
	}
}

func TestMaxRunlength(t *testing.T) {
	cases := []struct {
		seq  symbol.Sequence
		want int
	}{
		{symbol.Sequence{}, 0},
		{symbol.Sequence{0, 0, 0, 1, 2}, 3},
		{symbol.Sequence{0, 0, 0, 0, 0, 0}, 6},
	}
	for _, c := range cases {
		if got := c.seq.MaxRun(); got != c.want {
			t.Errorf("MaxRun(%v) = %d, want %d", c.seq, got, c.want)
		}
	}
}

func TestDecodeMalformedFooterTooShort(t *testing.T) {
	codec := New(3)
	_, err := codec.Decode(symbol.Sequence{0, 1, 2})
	if err == nil {
		t.Fatal("expected an error for an undersized sequence")
	}
	var footerErr *MalformedFooterError
	if !errors.As(err, &footerErr) {
		t.Errorf("expected *MalformedFooterError, got %T: %v", err, err)
	}
}

func TestDecodeMalformedFooterMissingMarker(t *testing.T) {
	codec := New(3)
	// No [2,2] marker anywhere near the tail.
	_, err := codec.Decode(symbol.Sequence{1, 3, 1, 0, 0, 0, 0})
	if err == nil {
		t.Fatal("expected an error for a missing marker")
	}
}

func TestEncodeTooManyPointersIsRejected(t *testing.T) {
	codec := New(3)
	// 256 * 3 zeros guarantees strictly more than 255 pointer substitutions.
	huge := make(symbol.Sequence, 0, 256*3+10)
	for i := 0; i < 256; i++ {
		huge = append(huge, 0, 0, 0, 1)
	}
	_, err := codec.Encode(huge)
	if !errors.Is(err, ErrTooManyPointers) {
		t.Fatalf("expected ErrTooManyPointers, got %v", err)
	}
}

func TestEscapeOfLiteralPointerPattern(t *testing.T) {
	codec := New(3)
	original := symbol.Sequence{1, 3, 2, 1, 3, 2}
	encoded, err := codec.Encode(original)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	decoded, err := codec.Decode(encoded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(original, decoded); diff != "" {
		t.Errorf("round trip of literal pointer pattern mismatch (-want +got):\n%s", diff)
	}
}
