package filetime

import "errors"

var (
	// ErrLength indicates a byte input whose length is not exactly 8.
	ErrLength = errors.New("filetime: input is not 8 bytes")
	// ErrOutOfRange indicates a tick count whose instant falls outside the
	// calendar-representable window.
	ErrOutOfRange = errors.New("filetime: instant outside calendar range")
)
