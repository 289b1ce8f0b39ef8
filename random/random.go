/*
Package random provides deterministic, seeded generators for random bit
strings and DNA sequences, used by the demo command for reproducible sample
payloads.
*/
package random

import "math/rand"

// BitString returns a random string of '0'/'1' characters of the given
// length, generated from seed.
func BitString(length int, seed int64) string {
	r := rand.New(rand.NewSource(seed))
	out := make([]byte, length)
	for i := range out {
		if r.Intn(2) == 1 {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return string(out)
}

// DNASequence returns a random DNA sequence string of a given length and
// seed, over the alphabet {A,T,C,G}.
func DNASequence(length int, seed int64) string {
	return randomNucleotideSequence(length, seed, []rune("ACTG"))
}

func randomNucleotideSequence(length int, seed int64, alphabet []rune) string {
	r := rand.New(rand.NewSource(seed))
	alphabetLength := len(alphabet)

	randomSequence := make([]rune, length)
	for basepair := range randomSequence {
		randomIndex := r.Intn(alphabetLength)
		randomSequence[basepair] = alphabet[randomIndex]
	}

	return string(randomSequence)
}
