package transcode

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// tokenPolicy converts one numeric token into a rune. It is the single
// place where lenient and strict decoding differ.
type tokenPolicy interface {
	convert(token string, position int, base int) (rune, error)
}

// strictTokens accepts a token only if it consists entirely of digits of the
// base and denotes a valid Unicode scalar value.
type strictTokens struct{}

func (strictTokens) convert(token string, position int, base int) (rune, error) {
	n, err := strconv.ParseUint(token, base, 32)
	if err != nil || !utf8.ValidRune(rune(n)) {
		return 0, &MalformedTokenError{Token: token, Position: position, Base: base}
	}
	return rune(n), nil
}

// lenientTokens decodes the longest leading run of valid digits, in the
// manner of a best-effort integer scanner. Tokens without a usable value
// decode to the placeholder.
type lenientTokens struct {
	placeholder rune
}

func (p lenientTokens) convert(token string, position int, base int) (rune, error) {
	digits := token
	if strings.HasPrefix(digits, "+") {
		digits = digits[1:]
	}
	if base == 16 && len(digits) > 2 && (digits[:2] == "0x" || digits[:2] == "0X") {
		digits = digits[2:]
	}
	end := 0
	for end < len(digits) && digitValue(digits[end]) < base {
		end++
	}
	if end == 0 {
		tracer().Debugf("token #%d %q has no base-%d digits, substituting placeholder", position, token, base)
		return p.placeholder, nil
	}
	n, err := strconv.ParseUint(digits[:end], base, 32)
	if err != nil || !utf8.ValidRune(rune(n)) {
		tracer().Debugf("token #%d %q is not a code point, substituting placeholder", position, token)
		return p.placeholder, nil
	}
	return rune(n), nil
}

// digitValue returns the numeric value of an ASCII digit or letter, or 36
// for any other byte.
func digitValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	}
	return 36
}
