package suggestion

import "errors"

var (
	// ErrInvalidArgument is returned for missing or malformed construction input,
	// including bad command-line tokens.
	ErrInvalidArgument = errors.New("suggestion: invalid argument")

	// ErrMalformedData is returned when a wire buffer is truncated or otherwise
	// structurally invalid.
	ErrMalformedData = errors.New("suggestion: malformed data")

	// ErrTypeMismatch is returned when the encoded kind tag does not match the
	// suggestion type being decoded.
	ErrTypeMismatch = errors.New("suggestion: type mismatch")
)
