package flatgeograph

import (
	"errors"
	"fmt"
)

// Kind distinguishes the category of a CodecError so callers can branch on
// failure type without string-matching messages.
type Kind int

const (
	// KindBadMagic means the first 8 bytes are neither FGG nor FGB magic.
	KindBadMagic Kind = iota
	// KindUnsupportedMajor means the magic's major byte is newer than this
	// package understands.
	KindUnsupportedMajor
	// KindTruncated means a read would pass the end of the input buffer.
	KindTruncated
	// KindInvalidColumnType means a column-type byte is outside {0..14}.
	KindInvalidColumnType
	// KindInvalidEdgeSize means an edge's declared size is < 8 or overruns
	// the section.
	KindInvalidEdgeSize
	// KindInvalidIndex means a write-side 'from' or 'to' index is out of
	// [0, featureCount).
	KindInvalidIndex
	// KindSelfLoop means a write-side edge has from == to.
	KindSelfLoop
	// KindUnknownPropertyType means a property value is not a type the
	// property codec can encode.
	KindUnknownPropertyType
	// KindMalformedJSON means a Json-typed property payload failed to
	// parse as JSON.
	KindMalformedJSON
)

func (k Kind) String() string {
	switch k {
	case KindBadMagic:
		return "BadMagic"
	case KindUnsupportedMajor:
		return "UnsupportedMajor"
	case KindTruncated:
		return "Truncated"
	case KindInvalidColumnType:
		return "InvalidColumnType"
	case KindInvalidEdgeSize:
		return "InvalidEdgeSize"
	case KindInvalidIndex:
		return "InvalidIndex"
	case KindSelfLoop:
		return "SelfLoop"
	case KindUnknownPropertyType:
		return "UnknownPropertyType"
	case KindMalformedJSON:
		return "MalformedJson"
	default:
		return "Unknown"
	}
}

// Sentinel errors. CodecError.Is matches against these so callers can use
// errors.Is(err, ErrTruncated) regardless of the wrapped message.
var (
	ErrBadMagic            = errors.New("flatgeograph: bad magic")
	ErrUnsupportedMajor    = errors.New("flatgeograph: unsupported major version")
	ErrTruncated           = errors.New("flatgeograph: truncated buffer")
	ErrInvalidColumnType   = errors.New("flatgeograph: invalid column type")
	ErrInvalidEdgeSize     = errors.New("flatgeograph: invalid edge size")
	ErrInvalidIndex        = errors.New("flatgeograph: invalid index")
	ErrSelfLoop            = errors.New("flatgeograph: self-loops are not allowed")
	ErrUnknownPropertyType = errors.New("flatgeograph: unknown property type")
	ErrMalformedJSON       = errors.New("flatgeograph: malformed json")
)

var kindSentinel = map[Kind]error{
	KindBadMagic:            ErrBadMagic,
	KindUnsupportedMajor:    ErrUnsupportedMajor,
	KindTruncated:           ErrTruncated,
	KindInvalidColumnType:   ErrInvalidColumnType,
	KindInvalidEdgeSize:     ErrInvalidEdgeSize,
	KindInvalidIndex:        ErrInvalidIndex,
	KindSelfLoop:            ErrSelfLoop,
	KindUnknownPropertyType: ErrUnknownPropertyType,
	KindMalformedJSON:       ErrMalformedJSON,
}

// CodecError is the concrete error type raised by this package. Kind lets
// callers distinguish failure categories; Is supports errors.Is against the
// package's sentinel errors.
type CodecError struct {
	Kind Kind
	Msg  string
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("flatgeograph: %s: %s", e.Kind, e.Msg)
}

func (e *CodecError) Is(target error) bool {
	sentinel, ok := kindSentinel[e.Kind]
	if !ok {
		return false
	}
	return sentinel == target
}

func newErr(kind Kind, format string, args ...interface{}) *CodecError {
	return &CodecError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
