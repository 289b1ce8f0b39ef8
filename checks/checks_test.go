package checks

import "testing"

func TestIsBinary(t *testing.T) {
	if !IsBinary("1101001") {
		t.Error("IsBinary failed to call a valid bit string binary")
	}
	if IsBinary("1102001") {
		t.Error("IsBinary failed to reject a string containing a non-binary digit")
	}
}

func TestIsDNA(t *testing.T) {
	if !IsDNA("ATCGatcg") {
		t.Error("IsDNA failed to call a valid mixed-case DNA string DNA")
	}
	if IsDNA("ATCGX") {
		t.Error("IsDNA failed to reject a string containing a non-DNA character")
	}
}

func TestGcContent(t *testing.T) {
	cases := []struct {
		seq  string
		want float64
	}{
		{"", 0.0},
		{"ATAT", 0.0},
		{"GCGC", 1.0},
		{"ATCG", 0.5},
	}
	for _, c := range cases {
		if got := GcContent(c.seq); got != c.want {
			t.Errorf("GcContent(%q) = %v, want %v", c.seq, got, c.want)
		}
	}
}

func TestMaxHomopolymerRun(t *testing.T) {
	cases := []struct {
		seq  string
		want int
	}{
		{"", 0},
		{"ATCG", 1},
		{"AATTTCCCCG", 4},
	}
	for _, c := range cases {
		if got := MaxHomopolymerRun(c.seq); got != c.want {
			t.Errorf("MaxHomopolymerRun(%q) = %d, want %d", c.seq, got, c.want)
		}
	}
}
