package helix

import "fmt"

// EmptyInputError is returned by Encode when the input bit string has
// length zero.
type EmptyInputError struct{}

func (e *EmptyInputError) Error() string {
	return "helix: input bit string is empty"
}

// InvalidCharacterError is returned by Encode or Decode when the input
// contains a character outside its accepted alphabet. Err holds the
// underlying mapping-package error, if any, for errors.As/errors.Unwrap.
type InvalidCharacterError struct {
	Err error
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("helix: invalid character: %s", e.Err)
}

func (e *InvalidCharacterError) Unwrap() error { return e.Err }

// MalformedFooterError is returned by Decode when a footer marker is
// absent or its interleaving is broken. Err holds the underlying
// stage-specific error, if any.
type MalformedFooterError struct {
	Reason string
	Err    error
}

func (e *MalformedFooterError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("helix: malformed footer: %s: %s", e.Reason, e.Err)
	}
	return fmt.Sprintf("helix: malformed footer: %s", e.Reason)
}

func (e *MalformedFooterError) Unwrap() error { return e.Err }

// LengthMismatchError reports that the number of decoded bits disagrees
// with the length recorded in the length footer. Decode's outer search
// treats it as a failed candidate; when every candidate fails, Decode
// returns *MalformedInputError.
type LengthMismatchError struct {
	Want int
	Got  int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("helix: length mismatch: footer records %d bits, decoded %d", e.Want, e.Got)
}

// InfeasibleConstraintsError reports that no candidate prefix-flip length
// achieved strict epsilon-balance; Achieved is the closest GC-content
// attained. In non-strict mode (the default) this is surfaced only as a
// warning by EncodeDetailed, never as an error from Encode.
type InfeasibleConstraintsError struct {
	Achieved float64
	Target   float64
	Epsilon  float64
}

func (e *InfeasibleConstraintsError) Error() string {
	return fmt.Sprintf("helix: no search-set point balances GC-content within %.4f of %.2f (closest achieved: %.4f)",
		e.Epsilon, e.Target, e.Achieved)
}

// MalformedInputError is returned by Decode when the decoder's outer
// search exhausts every candidate footer boundary without a consistent
// decode.
type MalformedInputError struct {
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("helix: malformed input: %s", e.Reason)
}

// ErrorDetectedError is returned by DecodeDetailed (never by Decode) when
// the VT footer's syndrome or checksum disagrees with the decoded body,
// indicating a likely single-edit corruption. Kind is a best-effort
// classification, not part of any correctness guarantee.
type ErrorDetectedError struct {
	Kind string
}

func (e *ErrorDetectedError) Error() string {
	return fmt.Sprintf("helix: error detected by VT footer: %s", e.Kind)
}
