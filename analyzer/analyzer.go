// Package analyzer inspects DNA sequences for constraint satisfaction and
// produces human-readable reports. It is a collaborator of package helix,
// not part of the codec: nothing here participates in Encode/Decode.
package analyzer

import (
	"fmt"
	"strings"

	"github.com/helixdna/helix/checks"
	"github.com/mitchellh/go-wordwrap"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// HomopolymerRun describes one maximal run of a repeated nucleotide.
type HomopolymerRun struct {
	Nucleotide byte
	Start      int
	Length     int
}

// Report is the complete analysis of a single DNA sequence.
type Report struct {
	Sequence         string
	Length           int
	GCContent        float64
	GCBalanced       bool
	GCTargetLow      float64
	GCTargetHigh     float64
	MaxRunlength     int
	RunlengthOK      bool
	RunlengthLimit   int
	NucleotideCounts map[byte]int
	HomopolymerRuns  []HomopolymerRun
}

// Analyzer holds the constraint parameters a report is judged against.
type Analyzer struct {
	Ell     int
	Epsilon float64
}

// New returns an Analyzer configured with the given constraints.
func New(ell int, epsilon float64) Analyzer {
	return Analyzer{Ell: ell, Epsilon: epsilon}
}

// AnalyzeDNA computes the complete report for a DNA string.
func (a Analyzer) AnalyzeDNA(dna string) Report {
	gcContent := checks.GcContent(dna)
	return Report{
		Sequence:         dna,
		Length:           len(dna),
		GCContent:        gcContent,
		GCBalanced:       absFloat(gcContent-0.5) <= a.Epsilon,
		GCTargetLow:      0.5 - a.Epsilon,
		GCTargetHigh:     0.5 + a.Epsilon,
		MaxRunlength:     checks.MaxHomopolymerRun(dna),
		RunlengthOK:      checks.MaxHomopolymerRun(dna) <= a.Ell,
		RunlengthLimit:   a.Ell,
		NucleotideCounts: countNucleotides(dna),
		HomopolymerRuns:  findHomopolymerRuns(dna),
	}
}

// ValidateConstraints reports pass/fail for each named constraint.
func (a Analyzer) ValidateConstraints(dna string) map[string]bool {
	return map[string]bool{
		"gc_balanced":       a.AnalyzeDNA(dna).GCBalanced,
		"runlength_ok":      a.AnalyzeDNA(dna).RunlengthOK,
		"valid_nucleotides": checks.IsDNA(dna),
	}
}

// Comparison reports the difference between two analyzed sequences.
type Comparison struct {
	LengthDiff       int
	GCContentDiff    float64
	RunlengthDiff    int
	BothGCBalanced   bool
	BothRunlengthOK  bool
}

// CompareSequences analyzes dna1 and dna2 and reports their differences.
func (a Analyzer) CompareSequences(dna1, dna2 string) Comparison {
	r1, r2 := a.AnalyzeDNA(dna1), a.AnalyzeDNA(dna2)
	return Comparison{
		LengthDiff:      r2.Length - r1.Length,
		GCContentDiff:   r2.GCContent - r1.GCContent,
		RunlengthDiff:   r2.MaxRunlength - r1.MaxRunlength,
		BothGCBalanced:  r1.GCBalanced && r2.GCBalanced,
		BothRunlengthOK: r1.RunlengthOK && r2.RunlengthOK,
	}
}

// UnifiedDiff returns a unified diff between the two DNA strings, one
// nucleotide per line, for use in a comparison report.
func UnifiedDiff(dna1, dna2 string) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(spacedOut(dna1)),
		B:        difflib.SplitLines(spacedOut(dna2)),
		FromFile: "sequence 1",
		ToFile:   "sequence 2",
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(diff)
}

// HighlightMismatch returns a human-readable character-level diff between
// an original DNA string and a (possibly corrupted) decoded counterpart,
// for reporting when the VT footer flags a likely single-edit error.
func HighlightMismatch(original, corrupted string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(original, corrupted, false)
	return dmp.DiffPrettyText(diffs)
}

func spacedOut(dna string) string {
	var b strings.Builder
	for i, c := range dna {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteRune(c)
	}
	return b.String()
}

func countNucleotides(dna string) map[byte]int {
	counts := map[byte]int{'A': 0, 'T': 0, 'C': 0, 'G': 0}
	for i := 0; i < len(dna); i++ {
		c := upperByte(dna[i])
		if _, ok := counts[c]; ok {
			counts[c]++
		}
	}
	return counts
}

func findHomopolymerRuns(dna string) []HomopolymerRun {
	if len(dna) == 0 {
		return nil
	}
	var runs []HomopolymerRun
	currentNucleotide := upperByte(dna[0])
	currentStart := 0
	currentLength := 1
	for i := 1; i < len(dna); i++ {
		c := upperByte(dna[i])
		if c == currentNucleotide {
			currentLength++
			continue
		}
		if currentLength > 1 {
			runs = append(runs, HomopolymerRun{Nucleotide: currentNucleotide, Start: currentStart, Length: currentLength})
		}
		currentNucleotide, currentStart, currentLength = c, i, 1
	}
	if currentLength > 1 {
		runs = append(runs, HomopolymerRun{Nucleotide: currentNucleotide, Start: currentStart, Length: currentLength})
	}
	return runs
}

func upperByte(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// PrintAnalysis renders a report as a text block. The sequence line goes
// through wordwrap at 68 columns, which breaks only at whitespace, so a DNA
// string is printed on a single line whatever its length.
func PrintAnalysis(r Report) string {
	var b strings.Builder
	fmt.Fprintln(&b, "Sequence Analysis")
	fmt.Fprintln(&b, strings.Repeat("=", 70))
	fmt.Fprintf(&b, "DNA Sequence:     %s\n", wordwrap.WrapString(r.Sequence, 68))
	fmt.Fprintf(&b, "Length:           %d bp\n", r.Length)
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "GC-Content:       %.2f%%\n", r.GCContent*100)
	fmt.Fprintf(&b, "GC-Balanced:      %v\n", r.GCBalanced)
	fmt.Fprintf(&b, "Target Range:     %.2f%% - %.2f%%\n", r.GCTargetLow*100, r.GCTargetHigh*100)
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "Max Runlength:    %d\n", r.MaxRunlength)
	fmt.Fprintf(&b, "Runlength OK:     %v\n", r.RunlengthOK)
	fmt.Fprintf(&b, "Runlength Limit:  %d\n", r.RunlengthLimit)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Nucleotide Counts:")
	for _, n := range []byte{'A', 'T', 'C', 'G'} {
		count := r.NucleotideCounts[n]
		pct := 0.0
		if r.Length > 0 {
			pct = float64(count) / float64(r.Length) * 100
		}
		fmt.Fprintf(&b, "  %c: %3d (%5.1f%%)\n", n, count, pct)
	}
	if len(r.HomopolymerRuns) > 0 {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, "Homopolymer Runs:")
		for _, run := range r.HomopolymerRuns {
			fmt.Fprintf(&b, "  %c x %d at position %d\n", run.Nucleotide, run.Length, run.Start)
		}
	}
	fmt.Fprintln(&b, strings.Repeat("=", 70))
	return b.String()
}
