package feature

import "fmt"

// TruncatedError reports that a read would pass the end of the buffer while
// decoding the feature section. The flatgeograph core wraps this into its
// own Truncated CodecError when walking the offset locator.
type TruncatedError struct {
	What string
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("feature: truncated while reading %s", e.What)
}

func errTruncated(what string) error {
	return &TruncatedError{What: what}
}
