/*
Package mapping converts between the three representations HELIX's pipeline
passes data through: bit strings, quaternary symbol sequences, and DNA
nucleotide strings.
*/
package mapping

import (
	"fmt"
	"strings"

	"github.com/helixdna/helix/symbol"
)

// nucleotides is the process-wide, immutable symbol->nucleotide lookup table:
// 0->A, 1->T, 2->C, 3->G.
var nucleotides = [4]byte{'A', 'T', 'C', 'G'}

// reverseNucleotides is the immutable nucleotide->symbol lookup table,
// indexed by the upper-case ASCII byte.
var reverseNucleotides = map[byte]symbol.Symbol{
	'A': 0, 'T': 1, 'C': 2, 'G': 3,
}

// InvalidBitError reports a non-{0,1} character found in a bit string.
type InvalidBitError struct {
	Char rune
	Pos  int
}

func (e *InvalidBitError) Error() string {
	return fmt.Sprintf("mapping: invalid bit character %q at position %d", e.Char, e.Pos)
}

// InvalidNucleotideError reports a character outside {A,T,C,G,a,t,c,g} found
// in a DNA string.
type InvalidNucleotideError struct {
	Char rune
	Pos  int
}

func (e *InvalidNucleotideError) Error() string {
	return fmt.Sprintf("mapping: invalid nucleotide character %q at position %d", e.Char, e.Pos)
}

// BitsToQuaternary converts a binary string into a quaternary symbol
// sequence, two bits per symbol, high bit first. If bits has odd length a
// leading '0' is prepended before grouping; callers that need to recover the
// original length must track it separately (see the helix package's length
// footer).
func BitsToQuaternary(bits string) (symbol.Sequence, error) {
	for i, c := range bits {
		if c != '0' && c != '1' {
			return nil, &InvalidBitError{Char: c, Pos: i}
		}
	}

	if len(bits)%2 != 0 {
		bits = "0" + bits
	}

	seq := make(symbol.Sequence, 0, len(bits)/2)
	for i := 0; i < len(bits); i += 2 {
		high := bits[i] - '0'
		low := bits[i+1] - '0'
		seq = append(seq, symbol.Symbol(high<<1|low))
	}
	return seq, nil
}

// QuaternaryToBits converts a quaternary sequence back into its binary
// string, two bits per symbol, high bit first. No leading-zero stripping is
// performed here; that policy lives in the helix package, which knows the
// original bit length from the length footer.
func QuaternaryToBits(seq symbol.Sequence) string {
	var b strings.Builder
	b.Grow(len(seq) * 2)
	for _, s := range seq {
		b.WriteByte('0' + byte(s>>1))
		b.WriteByte('0' + byte(s&1))
	}
	return b.String()
}

// QuaternaryToDNA maps a quaternary sequence to its upper-case nucleotide
// string using the fixed table 0->A, 1->T, 2->C, 3->G.
func QuaternaryToDNA(seq symbol.Sequence) string {
	out := make([]byte, len(seq))
	for i, s := range seq {
		out[i] = nucleotides[s]
	}
	return string(out)
}

// DNAToQuaternary maps a DNA string (case-insensitive) back to its
// quaternary sequence.
func DNAToQuaternary(dna string) (symbol.Sequence, error) {
	seq := make(symbol.Sequence, len(dna))
	for i := 0; i < len(dna); i++ {
		c := dna[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		s, ok := reverseNucleotides[c]
		if !ok {
			return nil, &InvalidNucleotideError{Char: rune(dna[i]), Pos: i}
		}
		seq[i] = s
	}
	return seq, nil
}

// BitsToDNA is the direct composition BitsToQuaternary . QuaternaryToDNA.
func BitsToDNA(bits string) (string, error) {
	seq, err := BitsToQuaternary(bits)
	if err != nil {
		return "", err
	}
	return QuaternaryToDNA(seq), nil
}

// DNAToBits is the direct composition DNAToQuaternary . QuaternaryToBits.
func DNAToBits(dna string) (string, error) {
	seq, err := DNAToQuaternary(dna)
	if err != nil {
		return "", err
	}
	return QuaternaryToBits(seq), nil
}
