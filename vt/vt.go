/*
Package vt implements the optional Varshamov-Tenengolts footer: a syndrome
and checksum suffix appended after GC-balancing that lets the decoder detect
(not correct) a single substitution, insertion, or deletion in the DNA
string. The footer is interleaved with its own flip the same way the
gcbalance index suffix is, so it self-authenticates at the bit level; its
length is not fixed, so decoders must try the known candidate lengths.
*/
package vt

import (
	"fmt"

	"github.com/helixdna/helix/symbol"
)

// CandidateFooterLengths are the VT footer lengths the decoder tries, in
// order: shortest first, so a shorter syndrome digit string is preferred
// whenever it is already consistent with the body. CreateFooter emits a
// longer footer (10 or more symbols) when the syndrome needs more than three
// base-4 digits, which can happen once seq has 33 or more symbols; such a
// footer matches none of these lengths.
var CandidateFooterLengths = []int{6, 8}

// Kind classifies the type of single-edit error DetectError infers from a
// syndrome/checksum mismatch. The classification is a heuristic: a checksum
// match with a syndrome mismatch could in principle be other things, but a
// same-length substitution is by far the most common cause, and a syndrome
// mismatch generally flags a length-changing edit.
type Kind int

const (
	// NoError means the sequence matches its expected syndrome and checksum.
	NoError Kind = iota
	// Substitution means the checksum difference is zero but the syndrome
	// does not match: consistent with a same-length value change.
	Substitution
	// InsertionOrDeletion means the syndrome differs in a way consistent
	// with the sequence having gained or lost a symbol.
	InsertionOrDeletion
	// Unknown means a mismatch was detected but neither heuristic applies.
	Unknown
)

func (k Kind) String() string {
	switch k {
	case NoError:
		return "none"
	case Substitution:
		return "substitution"
	case InsertionOrDeletion:
		return "insertion_or_deletion"
	default:
		return "unknown"
	}
}

// MalformedFooterError reports that a VT footer failed a structural check
// (odd length, or an interleaving violation).
type MalformedFooterError struct {
	Reason string
}

func (e *MalformedFooterError) Error() string {
	return fmt.Sprintf("vt: malformed footer: %s", e.Reason)
}

// Syndrome computes the Varshamov-Tenengolts syndrome: sum((i+1)*x[i]) mod 2n
// over 1-indexed positions.
func Syndrome(seq symbol.Sequence) int {
	n := len(seq)
	if n == 0 {
		return 0
	}
	sum := 0
	for i, s := range seq {
		sum += (i + 1) * int(s)
	}
	return sum % (2 * n)
}

// Checksum computes the sum of all symbols mod 4.
func Checksum(seq symbol.Sequence) int {
	sum := 0
	for _, s := range seq {
		sum += int(s)
	}
	return sum % 4
}

// CreateFooter builds the VT footer for seq: the syndrome (base-4, at least
// 2 digits, MSB first) followed by the checksum digit, each symbol
// interleaved with its flip.
func CreateFooter(seq symbol.Sequence) symbol.Sequence {
	syndrome := Syndrome(seq)
	checksum := Checksum(seq)

	digits := symbol.Base4Digits(syndrome, 2)
	digits = append(digits, symbol.Symbol(checksum))

	out := make(symbol.Sequence, 0, len(digits)*2)
	for _, d := range digits {
		out = append(out, d, symbol.Flip(d))
	}
	return out
}

// ExtractFooter recovers (syndrome, checksum) from an interleaved VT
// footer, validating the interleaving as it goes.
func ExtractFooter(footer symbol.Sequence) (syndrome int, checksum int, err error) {
	if len(footer)%2 != 0 {
		return 0, 0, &MalformedFooterError{Reason: "VT footer must have even length"}
	}
	if len(footer) == 0 {
		return 0, 0, nil
	}
	original := make(symbol.Sequence, 0, len(footer)/2)
	for i := 0; i < len(footer); i += 2 {
		if footer[i+1] != symbol.Flip(footer[i]) {
			return 0, 0, &MalformedFooterError{Reason: fmt.Sprintf("footer not properly interleaved at position %d", i)}
		}
		original = append(original, footer[i])
	}

	checksum = int(original[len(original)-1])
	syndromeDigits := original[:len(original)-1]
	syndrome = symbol.FromBase4Digits(syndromeDigits)
	return syndrome, checksum, nil
}

// Verify reports whether seq matches the expected syndrome and checksum.
func Verify(seq symbol.Sequence, expectedSyndrome, expectedChecksum int) bool {
	return Syndrome(seq) == expectedSyndrome && Checksum(seq) == expectedChecksum
}

// DetectError reports whether seq matches its expected syndrome/checksum,
// and if not, a heuristic classification of the discrepancy.
func DetectError(seq symbol.Sequence, expectedSyndrome, expectedChecksum int) Kind {
	if Verify(seq, expectedSyndrome, expectedChecksum) {
		return NoError
	}

	actualChecksum := Checksum(seq)
	checksumDiff := ((actualChecksum-expectedChecksum)%4 + 4) % 4

	n := len(seq)
	var syndromeDiff int
	if n > 0 {
		modulus := 2 * n
		syndromeDiff = ((Syndrome(seq)-expectedSyndrome)%modulus + modulus) % modulus
	}

	if checksumDiff == 0 {
		return Substitution
	}
	if syndromeDiff != 0 && n > 0 {
		return InsertionOrDeletion
	}
	return Unknown
}

// DualSyndromes computes VT syndromes for both strands of a dual-strand
// encoding scheme. Not used by the default single-strand pipeline, but kept
// for callers implementing redundant dual-strand storage on top of it.
func DualSyndromes(upper, lower symbol.Sequence) (int, int) {
	return Syndrome(upper), Syndrome(lower)
}

// CombinedFooter concatenates the independent VT footers of two strands,
// for dual-strand storage schemes built on top of the single-strand codec.
func CombinedFooter(upper, lower symbol.Sequence) symbol.Sequence {
	out := make(symbol.Sequence, 0)
	out = append(out, CreateFooter(upper)...)
	out = append(out, CreateFooter(lower)...)
	return out
}
