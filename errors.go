package transcode

import (
	"errors"
	"fmt"
)

// Errors reported by the engine. Use errors.Is to test for them.
var (
	ErrUnsupportedMode = errors.New("unsupported mode")
	ErrMalformedToken  = errors.New("malformed token")
	ErrMalformedBase64 = errors.New("malformed base64 input")
	ErrUnencodable     = errors.New("text contains characters outside the Latin-1 range")
)

// Messages of the string contract, see Message.
const (
	MsgInvalidMode   = "Error: invalid mode."
	MsgInvalidBase64 = "Error: invalid base64 format."
	MsgUnencodable   = "Error: text cannot be encoded as base64."
)

// ModeError reports a mode name matching none of the representations.
type ModeError struct {
	Direction Direction
	Mode      string
}

func (e *ModeError) Error() string {
	return fmt.Sprintf("%s: %s %q", ErrUnsupportedMode, e.Direction, e.Mode)
}

func (e *ModeError) Unwrap() error {
	return ErrUnsupportedMode
}

// MalformedTokenError reports a numeric token which is not a valid code point
// in the expected base. It is returned in strict mode only.
type MalformedTokenError struct {
	Token    string
	Position int // 1-based index of the token in the input
	Base     int
}

func (e *MalformedTokenError) Error() string {
	return fmt.Sprintf("%s %q at position %d (base %d)", ErrMalformedToken, e.Token, e.Position, e.Base)
}

func (e *MalformedTokenError) Unwrap() error {
	return ErrMalformedToken
}

// Message renders an engine error as a fixed human-readable string.
// A nil error renders as the empty string.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var tokenErr *MalformedTokenError
	switch {
	case errors.Is(err, ErrUnsupportedMode):
		return MsgInvalidMode
	case errors.Is(err, ErrMalformedBase64):
		return MsgInvalidBase64
	case errors.Is(err, ErrUnencodable):
		return MsgUnencodable
	case errors.As(err, &tokenErr):
		return fmt.Sprintf("Error: malformed token %q at position %d.", tokenErr.Token, tokenErr.Position)
	}
	return "Error: " + err.Error()
}
