/*
Package helix is a lossless codec between arbitrary binary payloads and DNA
nucleotide strings suitable for synthesis and sequencing.

DNA storage imposes two biochemical constraints on top of bare capacity:
a synthesized strand cannot contain a long homopolymer run (too many
identical bases in a row confuses both synthesis and sequencing), and its
GC-content needs to sit close to 50% for the strand to be chemically
stable. Encode takes a bit string and produces a nucleotide string
satisfying both constraints; Decode recovers the original bits exactly,
including any leading zeros.

The pipeline composes five smaller codecs, each its own subpackage:
mapping (bits<->quaternary<->nucleotides), differential (a modular
difference transform that turns homopolymer runs into zero runs), rll
(runlength-limited substitution, eliminating those zero runs), gcbalance
(prefix flipping to reach the GC-content target) and vt (an optional
Varshamov-Tenengolts syndrome footer for single-edit detection). Package
helix wires these together and owns the framing: every stage that needs to
carry metadata through the pipe appends a small self-describing footer to
its output rather than relying on an externally tracked length, so the
final DNA string is entirely self-contained.

Browse the subpackages for the documentation of each stage:
https://pkg.go.dev/github.com/helixdna/helix#section-directories
*/
package helix
