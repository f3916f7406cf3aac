package transcode

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/language"
)

// Encode converts text to the representation mode.
//
// Numeric representations convert every character (code point) into one
// space-separated token. Binary tokens are zero-padded to at least 8
// digits; code points above 255 produce longer tokens. Base64 requires
// every character to be in the Latin-1 range and fails with ErrUnencodable
// otherwise. Morse lower-cases the text and emits MorsePlaceholder for
// characters without a symbol.
func (c *Codec) Encode(text string, mode Mode) (string, error) {
	switch mode {
	case Binary:
		return joinCodePoints(text, func(r rune) string {
			return fmt.Sprintf("%08b", r)
		}), nil
	case ASCII:
		return joinCodePoints(text, func(r rune) string {
			return strconv.FormatInt(int64(r), 10)
		}), nil
	case Hex:
		return joinCodePoints(text, func(r rune) string {
			return strings.ToUpper(strconv.FormatInt(int64(r), 16))
		}), nil
	case Base64:
		return encodeBase64(text)
	case Morse:
		return c.encodeMorse(text), nil
	}
	return "", &ModeError{Direction: Encoding, Mode: string(mode)}
}

func joinCodePoints(text string, format func(rune) string) string {
	var b strings.Builder
	for i, r := range []rune(text) {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(format(r))
	}
	return b.String()
}

// encodeBase64 maps every character to one byte (Latin-1) before encoding.
func encodeBase64(text string) (string, error) {
	raw, err := charmap.ISO8859_1.NewEncoder().String(text)
	if err != nil {
		tracer().Debugf("base64: cannot map text to Latin-1: %v", err)
		return "", fmt.Errorf("%w: %v", ErrUnencodable, err)
	}
	return base64.StdEncoding.EncodeToString([]byte(raw)), nil
}

func (c *Codec) encodeMorse(text string) string {
	lower := cases.Lower(language.Und).String(text)
	symbols := make([]string, 0, len(lower))
	for _, r := range lower {
		if s, ok := c.table.Lookup(r); ok {
			symbols = append(symbols, s)
			continue
		}
		tracer().Debugf("morse: no symbol for %q", r)
		symbols = append(symbols, MorsePlaceholder)
	}
	return strings.Join(symbols, " ")
}
