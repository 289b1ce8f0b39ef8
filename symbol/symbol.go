/*
Package symbol provides the narrow quaternary alphabet shared by every stage
of the HELIX codec.

A Symbol is one of {0,1,2,3}, the base-4 digit that a pair of bits maps to.
Keeping this as its own type (instead of passing bare ints or bytes between
packages) means the "is this actually a valid quaternary digit" question only
has one constrained type to answer it, matching the narrow-integer
re-architecture called for wherever the reference implementation relied on
dynamically typed lists.
*/
package symbol

import "fmt"

// Symbol is a single quaternary digit in {0,1,2,3}.
type Symbol uint8

// The four quaternary digits, also used as nucleotide indices 0->A, 1->T, 2->C, 3->G.
const (
	Zero  Symbol = 0
	One   Symbol = 1
	Two   Symbol = 2
	Three Symbol = 3
)

// flipTable implements the involution f(0)=2, f(2)=0, f(1)=3, f(3)=1. It swaps
// non-GC symbols (A,T) with GC symbols (C,G).
var flipTable = [4]Symbol{2, 3, 0, 1}

// Flip applies the GC/footer-interleaving involution to a symbol. Panics if s
// is not in {0,1,2,3}; callers at package boundaries are expected to have
// validated their input already.
func Flip(s Symbol) Symbol {
	if s > 3 {
		panic(fmt.Sprintf("symbol: %d out of range [0,3]", s))
	}
	return flipTable[s]
}

// IsGC reports whether s is a GC symbol (2=C or 3=G).
func IsGC(s Symbol) bool {
	return s == Two || s == Three
}

// Valid reports whether s is a legal quaternary digit.
func Valid(s Symbol) bool {
	return s <= 3
}

// Sequence is an ordered, immutable-by-convention run of quaternary digits.
// Every stage of the pipeline takes a Sequence in and produces a new
// Sequence out; none mutate their argument in place.
type Sequence []Symbol

// Clone returns an independent copy of seq.
func (seq Sequence) Clone() Sequence {
	out := make(Sequence, len(seq))
	copy(out, seq)
	return out
}

// Equal reports whether seq and other contain the same symbols in the same order.
func (seq Sequence) Equal(other Sequence) bool {
	if len(seq) != len(other) {
		return false
	}
	for i, s := range seq {
		if s != other[i] {
			return false
		}
	}
	return true
}

// GCCount returns the number of GC symbols (2 or 3) in seq.
func (seq Sequence) GCCount() int {
	count := 0
	for _, s := range seq {
		if IsGC(s) {
			count++
		}
	}
	return count
}

// GCContent returns the GC fraction of seq, or 0 for an empty sequence.
func (seq Sequence) GCContent() float64 {
	if len(seq) == 0 {
		return 0
	}
	return float64(seq.GCCount()) / float64(len(seq))
}

// MaxRun returns the length of the longest run of identical symbols in seq.
func (seq Sequence) MaxRun() int {
	if len(seq) == 0 {
		return 0
	}
	maxRun, run := 1, 1
	for i := 1; i < len(seq); i++ {
		if seq[i] == seq[i-1] {
			run++
			if run > maxRun {
				maxRun = run
			}
		} else {
			run = 1
		}
	}
	return maxRun
}

// FlipPrefix returns a copy of seq with the first t symbols replaced by their
// Flip. Flipping the same prefix twice restores the original sequence.
func (seq Sequence) FlipPrefix(t int) Sequence {
	out := seq.Clone()
	if t > len(out) {
		t = len(out)
	}
	for i := 0; i < t; i++ {
		out[i] = Flip(out[i])
	}
	return out
}

// Base4Digits returns the base-4 digits of v, most-significant first, padded
// with leading zeros to at least minLength digits. v=0 yields a single 0
// digit if minLength is 0.
func Base4Digits(v int, minLength int) []Symbol {
	var digits []Symbol
	if v == 0 {
		digits = []Symbol{0}
	} else {
		for v > 0 {
			digits = append(digits, Symbol(v%4))
			v /= 4
		}
		// reverse to most-significant-first
		for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
			digits[i], digits[j] = digits[j], digits[i]
		}
	}
	for len(digits) < minLength {
		digits = append([]Symbol{0}, digits...)
	}
	return digits
}

// FromBase4Digits converts a most-significant-first slice of base-4 digits
// back to an integer.
func FromBase4Digits(digits []Symbol) int {
	v := 0
	for _, d := range digits {
		v = v*4 + int(d)
	}
	return v
}
