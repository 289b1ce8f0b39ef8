/*
Package digest computes content hashes of DNA strings, the way a HELIX
caller would fingerprint an encoded payload for storage or deduplication
without touching the encode/decode pipeline itself.
*/
package digest

import (
	"crypto"
	_ "crypto/md5"
	_ "crypto/sha1"
	_ "crypto/sha256"
	_ "crypto/sha512"
	"encoding/hex"
	"errors"
	"io"
	"strings"

	_ "golang.org/x/crypto/blake2b"
	_ "golang.org/x/crypto/blake2s"
	_ "golang.org/x/crypto/ripemd160"
	_ "golang.org/x/crypto/sha3"
	"lukechampine.com/blake3"
)

// Where each hash function comes from.
// MD5          // import crypto/md5
// SHA1         // import crypto/sha1
// SHA256       // import crypto/sha256
// SHA512       // import crypto/sha512
// RIPEMD160    // import golang.org/x/crypto/ripemd160
// SHA3_256     // import golang.org/x/crypto/sha3
// BLAKE2s_256  // import golang.org/x/crypto/blake2s
// BLAKE2b_256  // import golang.org/x/crypto/blake2b

// ErrHashUnavailable is returned when the requested crypto.Hash's package
// was not imported (or does not exist on this platform).
var ErrHashUnavailable = errors.New("digest: hash unavailable")

// DNASequenceHash hashes the upper-cased DNA string using the given
// standard-library hash registry algorithm, returned as lowercase hex.
func DNASequenceHash(dna string, hash crypto.Hash) (string, error) {
	if !hash.Available() {
		return "", ErrHashUnavailable
	}
	h := hash.New()
	io.WriteString(h, strings.ToUpper(dna))
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Blake3DNASequenceHash hashes dna with BLAKE3-256. blake3 predates the
// standard crypto.Hash registry interface, so it is called directly instead
// of through DNASequenceHash.
func Blake3DNASequenceHash(dna string) string {
	sum := blake3.Sum256([]byte(strings.ToUpper(dna)))
	return hex.EncodeToString(sum[:])
}
