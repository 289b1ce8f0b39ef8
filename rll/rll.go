/*
Package rll implements the runlength-limited substitution codec: it rewrites
a quaternary sequence so that no run of ell consecutive zeros survives,
using a self-describing footer so the transform can be undone without any
externally carried length.

This is the hardest component of the HELIX pipeline. The encoder turns every
forbidden run of ell zeros into the two-symbol pointer [3,2], and must first
escape any [3,2] that already occurs in the input (so a decoded pointer is
never confused with data that happens to look like one). The footer records
how many pointers were substituted, framed by a [2,2] marker, with glue
symbols inserted wherever concatenation would otherwise introduce a run one
symbol too long (the junction rule).
*/
package rll

import (
	"errors"
	"fmt"

	"github.com/helixdna/helix/symbol"
)

// pointer is the fixed two-symbol substitution for a forbidden zero run.
var pointer = symbol.Sequence{3, 2}

// escaped is the three-symbol stand-in for a literal pointer pattern found in
// the input before substitution begins.
var escaped = symbol.Sequence{3, 1, 2}

// marker opens the RLL footer.
var marker = symbol.Sequence{2, 2}

// maxPointerCount is the largest pointer count the 4-digit base-4 footer can
// carry (4 base-4 digits => 4^4 - 1 = 255).
const maxPointerCount = 255

// ErrTooManyPointers is returned by Encode when a payload would require more
// than maxPointerCount pointer substitutions, which the fixed 4-digit footer
// cannot represent.
var ErrTooManyPointers = errors.New("rll: pointer count exceeds 255, footer cannot represent it")

// MalformedFooterError reports that the RLL marker could not be located
// where the footer layout requires it.
type MalformedFooterError struct {
	Reason string
}

func (e *MalformedFooterError) Error() string {
	return fmt.Sprintf("rll: malformed footer: %s", e.Reason)
}

// MalformedInputError reports that pointer expansion did not consume exactly
// the number of pointers the footer claims, or that the body is otherwise
// inconsistent.
type MalformedInputError struct {
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("rll: malformed input: %s", e.Reason)
}

// Codec enforces that no run of Ell consecutive zeros survives encoding.
type Codec struct {
	Ell int
}

// New returns a Codec with the given maximum homopolymer run length.
func New(ell int) Codec {
	return Codec{Ell: ell}
}

// Encode rewrites data so it contains no run of c.Ell consecutive zeros,
// appending a self-describing footer that records how many substitutions
// were made.
func (c Codec) Encode(data symbol.Sequence) (symbol.Sequence, error) {
	x := escapePointerPattern(data)
	x = append(x, 0)

	pointerCount := 0
	maxIterations := len(x) * 2
	for iteration := 0; iteration < maxIterations; iteration++ {
		pos := c.findForbiddenSubstring(x)
		if pos < 0 {
			break
		}
		replaced := make(symbol.Sequence, 0, len(x)-c.Ell+2)
		replaced = append(replaced, x[:pos]...)
		replaced = append(replaced, pointer...)
		replaced = append(replaced, x[pos+c.Ell:]...)
		x = replaced
		pointerCount++
	}

	if pointerCount > maxPointerCount {
		return nil, ErrTooManyPointers
	}

	countDigits := pointerCountDigits(pointerCount)

	// Junction rule: glue before the marker if the body would otherwise end
	// in ...2,2,2. The glue is always 1: a body without glue ends in the
	// terminator 0 or in a final pointer [3,2], never in 1, so Decode can
	// tell the glue apart from data.
	if len(x) > 0 && x[len(x)-1] == 2 {
		x = append(x, 1)
	}

	out := make(symbol.Sequence, 0, len(x)+2+1+4)
	out = append(out, x...)
	out = append(out, marker...)

	// Junction rule: glue between marker and the count's first digit if it
	// is also 2, to avoid a run of three 2s spanning the boundary.
	if countDigits[0] == 2 {
		out = append(out, glueSymbol(2, 2))
	}
	out = append(out, countDigits...)

	return out, nil
}

// Decode reverses Encode, recovering the original sequence.
func (c Codec) Decode(encoded symbol.Sequence) (symbol.Sequence, error) {
	const minFooterLen = 6 // marker(2) + count(4)
	if len(encoded) < minFooterLen {
		return nil, &MalformedFooterError{Reason: "sequence too short to contain RLL footer"}
	}

	x := encoded.Clone()

	countDigits := x[len(x)-4:]
	pointerCount := symbol.FromBase4Digits(reverseDigits(countDigits))

	var markerEnd int
	if countDigits[0] == 2 {
		if len(x) < 7 || x[len(x)-7] != 2 || x[len(x)-6] != 2 {
			return nil, &MalformedFooterError{Reason: "marker [2,2] not found before glued count"}
		}
		markerEnd = len(x) - 7
	} else {
		if x[len(x)-6] != 2 || x[len(x)-5] != 2 {
			return nil, &MalformedFooterError{Reason: "marker [2,2] not found"}
		}
		markerEnd = len(x) - 6
	}

	x = x[:markerEnd]

	// Glue-1 detection: undo the encoder's pre-marker glue, if present. The
	// glue is the 1 that follows the final (K-th) pointer at the very end of
	// the body.
	if len(x) >= 3 && x[len(x)-3] == 3 && x[len(x)-2] == 2 && isGlueCandidate(x[len(x)-1]) {
		patterns := findAllPointers(x)
		endPatternPos := len(x) - 3
		if idx := indexOf(patterns, endPatternPos); idx >= 0 && pointerCount > 0 && idx == pointerCount-1 {
			x = x[:len(x)-1]
		}
	}

	replacementsMade := 0
	i := 0
	for i < len(x)-1 && replacementsMade < pointerCount {
		if x[i] == 3 && x[i+1] == 2 {
			expanded := make(symbol.Sequence, 0, len(x)+c.Ell-2)
			expanded = append(expanded, x[:i]...)
			for j := 0; j < c.Ell; j++ {
				expanded = append(expanded, 0)
			}
			expanded = append(expanded, x[i+2:]...)
			x = expanded
			replacementsMade++
			i += c.Ell
		} else {
			i++
		}
	}

	if replacementsMade != pointerCount {
		return nil, &MalformedInputError{Reason: fmt.Sprintf("expected %d pointer replacements, made %d", pointerCount, replacementsMade)}
	}

	if len(x) == 0 || x[len(x)-1] != 0 {
		return nil, &MalformedInputError{Reason: "missing RLL terminator symbol"}
	}
	x = x[:len(x)-1]

	return unescapePointerPattern(x), nil
}

// HasForbiddenSubstring reports whether seq contains a run of c.Ell
// consecutive zeros.
func (c Codec) HasForbiddenSubstring(seq symbol.Sequence) bool {
	return c.findForbiddenSubstring(seq) >= 0
}

func (c Codec) findForbiddenSubstring(seq symbol.Sequence) int {
	if c.Ell <= 0 || len(seq) < c.Ell {
		return -1
	}
	for i := 0; i <= len(seq)-c.Ell; i++ {
		allZero := true
		for j := 0; j < c.Ell; j++ {
			if seq[i+j] != 0 {
				allZero = false
				break
			}
		}
		if allZero {
			return i
		}
	}
	return -1
}

func escapePointerPattern(seq symbol.Sequence) symbol.Sequence {
	out := make(symbol.Sequence, 0, len(seq))
	i := 0
	for i < len(seq) {
		if i < len(seq)-1 && seq[i] == 3 && seq[i+1] == 2 {
			out = append(out, escaped...)
			i += 2
		} else {
			out = append(out, seq[i])
			i++
		}
	}
	return out
}

func unescapePointerPattern(seq symbol.Sequence) symbol.Sequence {
	out := make(symbol.Sequence, 0, len(seq))
	i := 0
	for i < len(seq) {
		if i < len(seq)-2 && seq[i] == 3 && seq[i+1] == 1 && seq[i+2] == 2 {
			out = append(out, pointer...)
			i += 3
		} else {
			out = append(out, seq[i])
			i++
		}
	}
	return out
}

func findAllPointers(seq symbol.Sequence) []int {
	var positions []int
	for i := 0; i < len(seq)-1; i++ {
		if seq[i] == 3 && seq[i+1] == 2 {
			positions = append(positions, i)
		}
	}
	return positions
}

func indexOf(haystack []int, needle int) int {
	for i, v := range haystack {
		if v == needle {
			return i
		}
	}
	return -1
}

// isGlueCandidate reports whether s is the pre-marker glue symbol Encode uses.
func isGlueCandidate(s symbol.Symbol) bool {
	return s == 1
}

// glueSymbol returns a symbol distinct from both a and b, preferring 0.
func glueSymbol(a, b symbol.Symbol) symbol.Symbol {
	for _, candidate := range []symbol.Symbol{0, 1, 3} {
		if candidate != a && candidate != b {
			return candidate
		}
	}
	return 0
}

// pointerCountDigits encodes count as 4 base-4 digits, LSB first.
func pointerCountDigits(count int) symbol.Sequence {
	return symbol.Sequence{
		symbol.Symbol(count % 4),
		symbol.Symbol((count / 4) % 4),
		symbol.Symbol((count / 16) % 4),
		symbol.Symbol((count / 64) % 4),
	}
}

// reverseDigits reverses a slice of symbols without mutating the input.
func reverseDigits(digits symbol.Sequence) symbol.Sequence {
	out := make(symbol.Sequence, len(digits))
	for i, d := range digits {
		out[len(digits)-1-i] = d
	}
	return out
}
