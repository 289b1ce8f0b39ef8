package analyzer

import (
	"strings"
	"testing"
)

func TestAnalyzeDNABalancedNoLongRuns(t *testing.T) {
	a := New(3, 0.05)
	r := a.AnalyzeDNA("ATCGATCG")
	if r.Length != 8 {
		t.Errorf("Length = %d, want 8", r.Length)
	}
	if r.GCContent != 0.5 {
		t.Errorf("GCContent = %v, want 0.5", r.GCContent)
	}
	if !r.GCBalanced {
		t.Error("expected GCBalanced = true")
	}
	if r.MaxRunlength != 1 {
		t.Errorf("MaxRunlength = %d, want 1", r.MaxRunlength)
	}
	if !r.RunlengthOK {
		t.Error("expected RunlengthOK = true")
	}
	if len(r.HomopolymerRuns) != 0 {
		t.Errorf("expected no homopolymer runs, got %v", r.HomopolymerRuns)
	}
}

func TestAnalyzeDNALongRuns(t *testing.T) {
	a := New(3, 0.05)
	r := a.AnalyzeDNA("AAAATTTCCCGGG")
	if r.MaxRunlength != 4 {
		t.Errorf("MaxRunlength = %d, want 4", r.MaxRunlength)
	}
	if r.RunlengthOK {
		t.Error("expected RunlengthOK = false with Ell=3 and a run of 4")
	}
	if len(r.HomopolymerRuns) == 0 {
		t.Error("expected homopolymer runs to be reported")
	}
	found := false
	for _, run := range r.HomopolymerRuns {
		if run.Nucleotide == 'A' && run.Length == 4 && run.Start == 0 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a run of A x4 at position 0, got %v", r.HomopolymerRuns)
	}
}

func TestValidateConstraints(t *testing.T) {
	a := New(3, 0.05)
	constraints := a.ValidateConstraints("ATCGATCG")
	if !constraints["gc_balanced"] || !constraints["runlength_ok"] || !constraints["valid_nucleotides"] {
		t.Errorf("expected all constraints to pass, got %v", constraints)
	}
}

func TestCompareSequences(t *testing.T) {
	a := New(3, 0.05)
	c := a.CompareSequences("ATCGATCG", "ATCGGGGATCG")
	if c.LengthDiff != 3 {
		t.Errorf("LengthDiff = %d, want 3", c.LengthDiff)
	}
	if c.RunlengthDiff <= 0 {
		t.Errorf("RunlengthDiff = %d, want > 0 (second sequence has a longer run)", c.RunlengthDiff)
	}
}

func TestUnifiedDiffReportsChange(t *testing.T) {
	diff, err := UnifiedDiff("ATCGATCG", "ATCGGGGATCG")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff == "" {
		t.Error("expected a non-empty diff between two different sequences")
	}
}

func TestUnifiedDiffEmptyForIdenticalSequences(t *testing.T) {
	diff, err := UnifiedDiff("ATCGATCG", "ATCGATCG")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff != "" {
		t.Errorf("expected empty diff for identical sequences, got %q", diff)
	}
}

func TestHighlightMismatch(t *testing.T) {
	out := HighlightMismatch("ATCGATCG", "ATCGTTCG")
	if out == "" {
		t.Error("expected a non-empty highlighted diff")
	}
}

func TestPrintAnalysisContainsKeyFields(t *testing.T) {
	a := New(3, 0.05)
	r := a.AnalyzeDNA("AAAATTTCCCGGG")
	out := PrintAnalysis(r)
	for _, want := range []string{"Sequence Analysis", "GC-Content", "Max Runlength", "Homopolymer Runs"} {
		if !strings.Contains(out, want) {
			t.Errorf("PrintAnalysis output missing %q:\n%s", want, out)
		}
	}
}
