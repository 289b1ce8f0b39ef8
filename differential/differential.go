/*
Package differential applies a modular difference transform to quaternary
sequences. Homopolymer runs in the input become runs of zeros in the output,
which the rll package then specifically targets.
*/
package differential

import "github.com/helixdna/helix/symbol"

// Encode applies the differential transform:
//
//	y[0] = x[0]
//	y[i] = (x[i] - x[i-1]) mod 4   for i > 0
func Encode(seq symbol.Sequence) symbol.Sequence {
	if len(seq) == 0 {
		return symbol.Sequence{}
	}
	out := make(symbol.Sequence, len(seq))
	out[0] = seq[0]
	for i := 1; i < len(seq); i++ {
		out[i] = symbol.Symbol((int(seq[i]) - int(seq[i-1]) + 4) % 4)
	}
	return out
}

// Decode reverses Encode:
//
//	x[0] = y[0]
//	x[i] = (x[i-1] + y[i]) mod 4   for i > 0
func Decode(encoded symbol.Sequence) symbol.Sequence {
	if len(encoded) == 0 {
		return symbol.Sequence{}
	}
	out := make(symbol.Sequence, len(encoded))
	out[0] = encoded[0]
	for i := 1; i < len(encoded); i++ {
		out[i] = symbol.Symbol((int(out[i-1]) + int(encoded[i])) % 4)
	}
	return out
}
