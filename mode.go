package transcode

import "fmt"

// Mode selects one of the supported representations.
type Mode string

// Supported representations. Values are the bare names accepted by
// ParseMode.
const (
	Binary Mode = "binary"
	ASCII  Mode = "ascii"
	Hex    Mode = "hex"
	Base64 Mode = "base64"
	Morse  Mode = "morse"
)

// Modes lists all supported representations.
var Modes = []Mode{Binary, ASCII, Hex, Base64, Morse}

// Direction tells whether text is converted to code or code back to text.
type Direction int8

// Directions of a conversion.
const (
	Encoding Direction = iota
	Decoding
)

func (d Direction) String() string {
	switch d {
	case Encoding:
		return "encode"
	case Decoding:
		return "decode"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Valid reports whether m is a supported representation.
func (m Mode) Valid() bool {
	switch m {
	case Binary, ASCII, Hex, Base64, Morse:
		return true
	}
	return false
}

// ParseMode maps a bare representation name to a Mode. Names are matched
// exactly.
func ParseMode(name string) (Mode, error) {
	m := Mode(name)
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedMode, name)
	}
	return m, nil
}

// radix returns the base of numeric representations, or 0.
func (m Mode) radix() int {
	switch m {
	case Binary:
		return 2
	case ASCII:
		return 10
	case Hex:
		return 16
	}
	return 0
}
