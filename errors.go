package zerowidth

import (
	"errors"
	"fmt"

	"github.com/yyyoichi/zerowidth/internal/quinary"
)

// Sentinel errors reported by the decode path. Use errors.Is to check them.
var (
	// ErrInvalidInvisibleChar indicates a group holds a character that is not a digit character.
	ErrInvalidInvisibleChar = quinary.ErrInvalidInvisibleChar
	// ErrEmptyGroup indicates adjacent, leading or trailing separators.
	ErrEmptyGroup = quinary.ErrEmptyGroup
	// ErrCodepointOverflow indicates a group decodes above U+10FFFF.
	ErrCodepointOverflow = quinary.ErrCodepointOverflow
	// ErrCodepointTooLarge indicates a value outside [0, U+10FFFF] was given for encoding.
	ErrCodepointTooLarge = quinary.ErrCodepointTooLarge
	// ErrInvalidCodepoint indicates a group decodes to a surrogate, which is not text.
	ErrInvalidCodepoint = errors.New("invalid codepoint")
)

// DecodeError reports which group of a stream failed to decode.
type DecodeError struct {
	Err   error // underlying sentinel error
	Group int   // zero-based index of the failing group
	Cause error // detailed error, if any
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("group %d: %v", e.Group, e.Cause)
	}
	return fmt.Sprintf("group %d: %s", e.Group, e.Err.Error())
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func newDecodeError(group int, cause error) error {
	sentinel := cause
	for _, s := range []error{ErrEmptyGroup, ErrInvalidInvisibleChar, ErrCodepointOverflow, ErrInvalidCodepoint} {
		if errors.Is(cause, s) {
			sentinel = s
			break
		}
	}
	return &DecodeError{
		Err:   sentinel,
		Group: group,
		Cause: cause,
	}
}
