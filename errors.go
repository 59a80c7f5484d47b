package pkz

// Error is the type of the sentinel errors returned by this package.  Call
// sites wrap them with detail; use errors.Is to test for a kind.
type Error string

func (e Error) Error() string { return "pkz: " + string(e) }

const (
	// ErrEmptyInput is returned when there are no symbols to compress.
	ErrEmptyInput = Error("empty input")

	// ErrDegenerateAlphabet is returned when the input holds exactly one
	// distinct byte value.  A one-leaf tree assigns that byte the empty
	// code, so the payload could not carry the repeat count.
	ErrDegenerateAlphabet = Error("degenerate alphabet: only one distinct symbol")

	// ErrMalformedContainer is returned when a container's header declares
	// more data than is present, or holds out-of-range fields.
	ErrMalformedContainer = Error("malformed container")

	// ErrMalformedTree is returned when the serialized tree cannot be
	// reconstructed, or when the payload walks off the tree.
	ErrMalformedTree = Error("malformed tree")

	// ErrUnmappedSymbol is returned when a byte has no code.  It indicates
	// a bug, not bad input.
	ErrUnmappedSymbol = Error("unmapped symbol")

	// ErrTrailingBits is returned when the payload ends in the middle of a
	// code.
	ErrTrailingBits = Error("trailing bits")
)
