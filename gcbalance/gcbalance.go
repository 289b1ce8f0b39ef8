/*
Package gcbalance implements Method D of the HELIX pipeline: GC-content
balancing through prefix flipping. A quaternary sequence is brought within
epsilon of 50% GC-content by flipping its first t symbols (0<->2, 1<->3);
the index t is itself encoded as a self-authenticating suffix interleaved
with its own flip, so decoding never needs an externally carried length.
*/
package gcbalance

import (
	"errors"
	"fmt"
	"sort"

	"github.com/helixdna/helix/symbol"
)

// ErrOddSuffixLength is returned by DecodeIndexSuffix when the suffix does
// not have even length, so it cannot be an interleaved tau/f(tau) pair.
var ErrOddSuffixLength = errors.New("gcbalance: index suffix must have even length")

// MalformedSuffixError reports that a suffix failed the interleaving check:
// suffix[i+1] must equal Flip(suffix[i]) for every even i.
type MalformedSuffixError struct {
	Pos int
}

func (e *MalformedSuffixError) Error() string {
	return fmt.Sprintf("gcbalance: index suffix not properly interleaved at position %d", e.Pos)
}

// Balancer balances quaternary sequences to within Epsilon of 50% GC-content.
type Balancer struct {
	Epsilon float64
}

// New returns a Balancer with the given GC-content tolerance.
func New(epsilon float64) Balancer {
	return Balancer{Epsilon: epsilon}
}

// GCContent returns the fraction of seq that is C or G. An empty sequence
// has GC-content 0.
func GCContent(seq symbol.Sequence) float64 {
	if len(seq) == 0 {
		return 0.0
	}
	return float64(seq.GCCount()) / float64(len(seq))
}

// IsBalanced reports whether seq's GC-content is within b.Epsilon of 50%.
// An empty sequence is considered balanced.
func (b Balancer) IsBalanced(seq symbol.Sequence) bool {
	if len(seq) == 0 {
		return true
	}
	diff := GCContent(seq) - 0.5
	if diff < 0 {
		diff = -diff
	}
	return diff <= b.Epsilon
}

// GenerateSearchSet builds the candidate flip-prefix-length set
// S = {0, n} ∪ {step, 2*step, ...} ∪ {n/4, n/2, 3n/4}, where
// step = 2*floor(epsilon*n). Short sequences (n<=20) or a zero step widen
// the set to every position 0..n for exhaustive coverage.
func (b Balancer) GenerateSearchSet(n int) []int {
	set := make(map[int]struct{})
	set[0] = struct{}{}
	set[n] = struct{}{}

	step := 2 * int(b.Epsilon*float64(n))
	if step > 0 {
		for i := step; i < n; i += step {
			set[i] = struct{}{}
		}
	}

	if n <= 20 || step == 0 {
		for i := 0; i <= n; i++ {
			set[i] = struct{}{}
		}
	} else {
		set[n/4] = struct{}{}
		set[n/2] = struct{}{}
		set[3*n/4] = struct{}{}
	}

	out := make([]int, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Ints(out)
	return out
}

// Balance searches for a prefix-flip length t that brings seq within
// epsilon of balanced GC-content, trying GenerateSearchSet in ascending
// order and returning the first balanced candidate. If no candidate is
// exactly balanced, it falls back to whichever candidate minimizes the
// distance to 50% GC-content.
func (b Balancer) Balance(seq symbol.Sequence) (symbol.Sequence, int) {
	n := len(seq)
	if n == 0 {
		return seq.Clone(), 0
	}

	searchSet := b.GenerateSearchSet(n)

	for _, t := range searchSet {
		candidate := seq.FlipPrefix(t)
		if b.IsBalanced(candidate) {
			return candidate, t
		}
	}

	bestT := 0
	bestDiff := 2.0 // any real GC-content distance is < 1.0
	best := seq.Clone()
	for _, t := range searchSet {
		candidate := seq.FlipPrefix(t)
		diff := GCContent(candidate) - 0.5
		if diff < 0 {
			diff = -diff
		}
		if diff < bestDiff {
			bestDiff = diff
			bestT = t
			best = candidate
		}
	}
	return best, bestT
}

// Unbalance reverses Balance by flipping the first t symbols again.
func (b Balancer) Unbalance(seq symbol.Sequence, t int) symbol.Sequence {
	return seq.FlipPrefix(t)
}

// CreateIndexSuffix encodes t as base-4 digits (MSB first, t==0 encodes as
// a single zero digit) interleaved with the flip of each digit, producing a
// self-authenticating suffix that DecodeIndexSuffix can recover t from
// without knowing t in advance.
func CreateIndexSuffix(t int) symbol.Sequence {
	var tau symbol.Sequence
	if t == 0 {
		tau = symbol.Sequence{0}
	} else {
		tau = symbol.Base4Digits(t, 0)
	}

	out := make(symbol.Sequence, 0, len(tau)*2)
	for _, s := range tau {
		out = append(out, s, symbol.Flip(s))
	}
	return out
}

// DecodeIndexSuffix recovers the balancing index t encoded by
// CreateIndexSuffix, validating the interleaving as it goes.
func DecodeIndexSuffix(suffix symbol.Sequence) (int, error) {
	if len(suffix)%2 != 0 {
		return 0, ErrOddSuffixLength
	}
	tau := make(symbol.Sequence, 0, len(suffix)/2)
	for i := 0; i < len(suffix); i += 2 {
		if suffix[i+1] != symbol.Flip(suffix[i]) {
			return 0, &MalformedSuffixError{Pos: i}
		}
		tau = append(tau, suffix[i])
	}
	return symbol.FromBase4Digits(tau), nil
}
