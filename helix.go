package helix

import (
	"fmt"
	"strings"

	"github.com/helixdna/helix/differential"
	"github.com/helixdna/helix/gcbalance"
	"github.com/helixdna/helix/mapping"
	"github.com/helixdna/helix/rll"
	"github.com/helixdna/helix/symbol"
	"github.com/helixdna/helix/vt"
)

// lengthMarker opens the length footer, the outermost footer in the frame.
var lengthMarker = symbol.Sequence{3, 3, 3}

// lengthFooterDigits is the fixed digit width of the length footer: six
// base-4 digits represent bit lengths up to maxEncodableBitLength.
const lengthFooterDigits = 6

// maxEncodableBitLength is the largest original bit length the six-digit
// length footer can represent (4^6 - 1).
const maxEncodableBitLength = 4095

// maxIndexSuffixSearchLength bounds the decoder's search over index-suffix
// lengths, per the framing's documented upper bound of min(20, |body|-1).
const maxIndexSuffixSearchLength = 20

// ErrPayloadTooLong is returned by Encode when the bit string is too long
// for the six-digit length footer to represent.
type ErrPayloadTooLong struct {
	BitLength int
}

func (e *ErrPayloadTooLong) Error() string {
	return fmt.Sprintf("helix: bit length %d exceeds the length footer's capacity of %d bits", e.BitLength, maxEncodableBitLength)
}

// Encode transforms bits (a string over {0,1}) into an uppercase DNA
// nucleotide string satisfying the homopolymer-run and GC-content
// constraints in params. If the GC-balance search cannot strictly satisfy
// params.Epsilon, Encode silently returns the closest attainable result
// unless params.Strict is set, in which case it returns
// *InfeasibleConstraintsError.
func Encode(bits string, params Params) (string, error) {
	dna, _, err := encode(bits, params)
	return dna, err
}

// EncodeDetailed behaves like Encode but also reports a non-nil warning
// when GC-balance fell back to a best-effort result (only possible when
// params.Strict is false; Encode discards this warning).
func EncodeDetailed(bits string, params Params) (dna string, warning *InfeasibleConstraintsError, err error) {
	return encode(bits, params)
}

func encode(bits string, params Params) (string, *InfeasibleConstraintsError, error) {
	if len(bits) == 0 {
		return "", nil, &EmptyInputError{}
	}
	originalLength := len(bits)
	if originalLength > maxEncodableBitLength {
		return "", nil, &ErrPayloadTooLong{BitLength: originalLength}
	}

	q, err := mapping.BitsToQuaternary(bits)
	if err != nil {
		return "", nil, &InvalidCharacterError{Err: err}
	}

	d := differential.Encode(q)

	rllCodec := rll.New(params.Ell)
	r, err := rllCodec.Encode(d)
	if err != nil {
		return "", nil, err
	}

	balancer := gcbalance.New(params.Epsilon)
	b, t := balancer.Balance(r)

	var warning *InfeasibleConstraintsError
	if !balancer.IsBalanced(b) {
		warning = &InfeasibleConstraintsError{
			Achieved: gcbalance.GCContent(b),
			Target:   0.5,
			Epsilon:  params.Epsilon,
		}
		if params.Strict {
			return "", nil, warning
		}
	}

	m := b.Clone()
	m = append(m, gcbalance.CreateIndexSuffix(t)...)

	if params.VTEnabled {
		m = append(m, vt.CreateFooter(m)...)
	}

	framed := appendLengthFooter(m, originalLength)

	return mapping.QuaternaryToDNA(framed), warning, nil
}

// Decode reverses Encode, recovering the original bit string. If a VT
// footer is present and its syndrome or checksum disagrees with the
// decoded body, Decode still returns the decoded bits (best-effort
// detection, not correction) but silently drops the classification; use
// DecodeDetailed to observe it.
func Decode(dna string, params Params) (string, error) {
	bits, _, err := decode(dna, params)
	return bits, err
}

// DecodeDetailed behaves like Decode but also reports a non-nil
// *ErrorDetectedError when the VT footer flagged a likely single-edit
// corruption in the decoded body.
func DecodeDetailed(dna string, params Params) (bits string, detected *ErrorDetectedError, err error) {
	return decode(dna, params)
}

func decode(dna string, params Params) (string, *ErrorDetectedError, error) {
	q, err := mapping.DNAToQuaternary(dna)
	if err != nil {
		return "", nil, &InvalidCharacterError{Err: err}
	}

	originalLength, afterLength, err := extractLengthFooter(q)
	if err != nil {
		return "", nil, err
	}

	// A candidate whose VT footer is consistent wins; otherwise the first
	// candidate that decodes is returned with its VT mismatch reported.
	var fallbackBits string
	var fallbackDetected *ErrorDetectedError
	haveFallback := false
	for _, mCandidate := range lengthFooterBodyCandidates(afterLength) {
		decoded, detected, ok := decodeFramedBody(mCandidate, params)
		if !ok {
			continue
		}
		bits, err := finalizeBits(decoded, originalLength)
		if err != nil {
			continue
		}
		if detected == nil {
			return bits, nil, nil
		}
		if !haveFallback {
			fallbackBits, fallbackDetected, haveFallback = bits, detected, true
		}
	}
	if haveFallback {
		return fallbackBits, fallbackDetected, nil
	}

	return "", nil, &MalformedInputError{Reason: "decoder's outer search exhausted all candidate footer boundaries"}
}

// decodeFramedBody tries to decode m (the framing body with the length
// footer already stripped) as [VT footer] GC-balance output, returning the
// recovered quaternary sequence and whether the VT footer (if enabled)
// flagged a mismatch. VT footer lengths are tried shortest first and the
// first one consistent with its body is accepted; if none is consistent,
// the first length whose body decodes is returned with the mismatch.
func decodeFramedBody(m symbol.Sequence, params Params) (symbol.Sequence, *ErrorDetectedError, bool) {
	if !params.VTEnabled {
		q, ok := decodeGCBalancedBody(m, params)
		return q, nil, ok
	}

	var fallback symbol.Sequence
	var fallbackDetected *ErrorDetectedError
	for _, vtLen := range vt.CandidateFooterLengths {
		if vtLen > len(m) {
			continue
		}
		split := len(m) - vtLen
		mBody, footer := m[:split], m[split:]

		syndrome, checksum, err := vt.ExtractFooter(footer)
		if err != nil {
			continue
		}

		q, ok := decodeGCBalancedBody(mBody, params)
		if !ok {
			continue
		}

		kind := vt.DetectError(mBody, syndrome, checksum)
		if kind == vt.NoError {
			return q, nil, true
		}
		if fallbackDetected == nil {
			fallback, fallbackDetected = q, &ErrorDetectedError{Kind: kind.String()}
		}
	}
	if fallbackDetected != nil {
		return fallback, fallbackDetected, true
	}
	return nil, nil, false
}

// decodeGCBalancedBody searches index-suffix lengths in decreasing even
// order, undoes the prefix-flip once a candidate suffix validates, and
// attempts RLL and differential decode on the result. It returns the first
// candidate whose RLL decode succeeds.
func decodeGCBalancedBody(m symbol.Sequence, params Params) (symbol.Sequence, bool) {
	maxLen := len(m) - 1
	if maxLen > maxIndexSuffixSearchLength {
		maxLen = maxIndexSuffixSearchLength
	}
	if maxLen%2 != 0 {
		maxLen--
	}

	rllCodec := rll.New(params.Ell)
	balancer := gcbalance.New(params.Epsilon)

	for suffixLen := maxLen; suffixLen >= 2; suffixLen -= 2 {
		split := len(m) - suffixLen
		bCandidate, suffixCandidate := m[:split], m[split:]

		t, err := gcbalance.DecodeIndexSuffix(suffixCandidate)
		if err != nil {
			continue
		}

		r := balancer.Unbalance(bCandidate, t)
		d, err := rllCodec.Decode(r)
		if err != nil {
			continue
		}

		return differential.Decode(d), true
	}
	return nil, false
}

// finalizeBits maps a decoded quaternary sequence back to bits and
// restores the original bit length, failing with LengthMismatch if the
// discrepancy is larger than the at-most-one-bit pad the mapping stage
// ever introduces.
func finalizeBits(q symbol.Sequence, originalLength int) (string, error) {
	rawBits := mapping.QuaternaryToBits(q)
	diff := len(rawBits) - originalLength
	if diff < -1 || diff > 1 {
		return "", &LengthMismatchError{Want: originalLength, Got: len(rawBits)}
	}
	return padOrTrimLeft(rawBits, originalLength), nil
}

func padOrTrimLeft(bits string, length int) string {
	if len(bits) < length {
		return strings.Repeat("0", length-len(bits)) + bits
	}
	if len(bits) > length {
		return bits[len(bits)-length:]
	}
	return bits
}

// appendLengthFooter appends the outermost framing footer: an optional
// junction-rule glue, the [3,3,3] marker, an optional glue before the
// count, and six base-4 digits of originalLength (LSB first).
func appendLengthFooter(m symbol.Sequence, originalLength int) symbol.Sequence {
	digits := reverseSymbols(symbol.Base4Digits(originalLength, lengthFooterDigits))

	out := m.Clone()
	if len(out) > 0 && out[len(out)-1] == 3 {
		out = append(out, glueAvoiding(out[len(out)-1], 3))
	}
	out = append(out, lengthMarker...)
	if digits[0] == 3 {
		out = append(out, glueAvoiding(3, 3))
	}
	out = append(out, digits...)
	return out
}

// extractLengthFooter locates and strips the length footer from the tail
// of x, returning the recovered original bit length and the remaining
// sequence (which may still carry one trailing junction-rule glue symbol;
// see lengthFooterBodyCandidates).
func extractLengthFooter(x symbol.Sequence) (int, symbol.Sequence, error) {
	const markerLen = 3
	minLen := markerLen + lengthFooterDigits
	if len(x) < minLen {
		return 0, nil, &MalformedFooterError{Reason: "sequence too short to contain a length footer"}
	}

	digits := x[len(x)-lengthFooterDigits:]

	var markerEnd int
	if digits[0] == 3 {
		needed := markerLen + 1 + lengthFooterDigits
		if len(x) < needed || x[len(x)-needed] != 3 || x[len(x)-needed+1] != 3 || x[len(x)-needed+2] != 3 {
			return 0, nil, &MalformedFooterError{Reason: "length marker [3,3,3] not found before glued digit"}
		}
		markerEnd = len(x) - needed
	} else {
		needed := markerLen + lengthFooterDigits
		if x[len(x)-needed] != 3 || x[len(x)-needed+1] != 3 || x[len(x)-needed+2] != 3 {
			return 0, nil, &MalformedFooterError{Reason: "length marker [3,3,3] not found"}
		}
		markerEnd = len(x) - needed
	}

	originalLength := symbol.FromBase4Digits(reverseSymbols(digits))
	return originalLength, x[:markerEnd], nil
}

// lengthFooterBodyCandidates returns the possible true framing bodies for
// afterLength, accounting for the ambiguity of whether the encoder's
// pre-marker junction glue is present. Both are tried by the decoder's
// outer search; at most one will lead to a consistent decode.
func lengthFooterBodyCandidates(afterLength symbol.Sequence) []symbol.Sequence {
	candidates := []symbol.Sequence{afterLength}
	if len(afterLength) > 0 {
		candidates = append(candidates, afterLength[:len(afterLength)-1])
	}
	return candidates
}

// reverseSymbols reverses a sequence without mutating its argument.
func reverseSymbols(seq symbol.Sequence) symbol.Sequence {
	out := make(symbol.Sequence, len(seq))
	for i, s := range seq {
		out[len(seq)-1-i] = s
	}
	return out
}

// glueAvoiding returns a symbol distinct from both a and b, preferring 0.
func glueAvoiding(a, b symbol.Symbol) symbol.Symbol {
	for _, candidate := range []symbol.Symbol{0, 1, 2, 3} {
		if candidate != a && candidate != b {
			return candidate
		}
	}
	return 0
}
