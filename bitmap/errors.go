package bitmap

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat is returned when the buffer doesn't start with the
	// BMP signature
	ErrInvalidFormat = errors.New("bitmap: invalid format")
	// ErrTruncatedHeader is returned when the buffer is too short to
	// contain the header fields
	ErrTruncatedHeader = errors.New("bitmap: truncated header")
	// ErrMalformedPixelData is returned when the pixel data doesn't divide
	// into whole rows
	ErrMalformedPixelData = errors.New("bitmap: malformed pixel data")
)

// Kind identifies which constraint a ValidationError refers to.
type Kind int

// Validation error kinds.
const (
	UnsupportedWidth Kind = iota + 1
	UnsupportedHeight
	UnsupportedColorDepth
	UnsupportedCompression
	UnsupportedPixelValue
)

func (k Kind) String() string {
	switch k {
	case UnsupportedWidth:
		return "unsupported width"
	case UnsupportedHeight:
		return "unsupported height"
	case UnsupportedColorDepth:
		return "unsupported color depth"
	case UnsupportedCompression:
		return "unsupported compression"
	case UnsupportedPixelValue:
		return "unsupported pixel value"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// A ValidationError reports a structurally valid header describing an image
// that can't be converted.
type ValidationError struct {
	Kind   Kind
	Value  int64
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return "bitmap: " + e.Kind.String()
	}
	return fmt.Sprintf("bitmap: %s %d, %s", e.Kind, e.Value, e.Reason)
}

// Is matches any ValidationError of the same Kind so the sentinels below work
// with errors.Is.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for use with errors.Is.
var (
	ErrUnsupportedWidth       error = &ValidationError{Kind: UnsupportedWidth}
	ErrUnsupportedHeight      error = &ValidationError{Kind: UnsupportedHeight}
	ErrUnsupportedColorDepth  error = &ValidationError{Kind: UnsupportedColorDepth}
	ErrUnsupportedCompression error = &ValidationError{Kind: UnsupportedCompression}
	ErrUnsupportedPixelValue  error = &ValidationError{Kind: UnsupportedPixelValue}
)
