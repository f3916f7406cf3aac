package transcode

import (
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Decode converts code in representation mode back to text.
//
// The code is trimmed first. Numeric representations are split into
// whitespace-separated tokens, one per character. Malformed tokens decode to
// the placeholder or, for strict codecs, fail with a *MalformedTokenError.
// For binary code, NUL characters in the result are rewritten to spaces, as
// an all-zero byte is taken as a word boundary.
//
// Morse code is split on single spaces only. Symbols not in the table are
// dropped, contrary to encoding, which emits a placeholder.
func (c *Codec) Decode(code string, mode Mode) (string, error) {
	code = strings.TrimSpace(code)
	switch mode {
	case Binary, ASCII, Hex:
		text, err := c.decodeTokens(code, mode.radix())
		if err != nil {
			return "", err
		}
		if mode == Binary {
			text = strings.ReplaceAll(text, "\x00", " ")
		}
		return text, nil
	case Base64:
		return decodeBase64(code)
	case Morse:
		return c.decodeMorse(code), nil
	}
	return "", &ModeError{Direction: Decoding, Mode: string(mode)}
}

func (c *Codec) decodeTokens(code string, base int) (string, error) {
	assert(base > 0, "numeric decoding requires a radix")
	var b strings.Builder
	for i, token := range strings.Fields(code) {
		r, err := c.tokens.convert(token, i+1, base)
		if err != nil {
			return "", err
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}

// decodeBase64 accepts input the way browsers' atob does: ASCII whitespace is
// ignored and padding is optional. Bytes are mapped to characters as Latin-1.
func decodeBase64(code string) (string, error) {
	compact := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\f', '\r':
			return -1
		}
		return r
	}, code)
	if len(compact)%4 == 0 {
		compact = strings.TrimSuffix(compact, "=")
		compact = strings.TrimSuffix(compact, "=")
	}
	raw, err := base64.RawStdEncoding.DecodeString(compact)
	if err != nil {
		tracer().Debugf("base64: %v", err)
		return "", fmt.Errorf("%w: %v", ErrMalformedBase64, err)
	}
	text, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedBase64, err)
	}
	return string(text), nil
}

func (c *Codec) decodeMorse(code string) string {
	if code == "" {
		return ""
	}
	var b strings.Builder
	for _, symbol := range strings.Split(code, " ") {
		r, ok := c.table.Reverse(symbol)
		if !ok {
			tracer().Debugf("morse: dropping unknown symbol %q", symbol)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
