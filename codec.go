package transcode

import (
	"unicode/utf8"

	"github.com/npillmayer/transcode/morse"
)

// Placeholder is the default substitute for malformed numeric tokens in
// lenient decoding.
const Placeholder = utf8.RuneError

// MorsePlaceholder is emitted for characters without a Morse symbol.
const MorsePlaceholder = "<?>"

// Options configure a Codec. The zero value selects lenient decoding with
// the default placeholder and the default Morse table.
type Options struct {
	Strict      bool         // reject malformed numeric tokens
	Placeholder rune         // substitute for malformed tokens if not Strict; 0 means Placeholder
	Table       *morse.Table // nil means morse.Default()
}

// Codec converts between text and its representations. A Codec is
// immutable and safe for concurrent use.
type Codec struct {
	table  *morse.Table
	tokens tokenPolicy
}

// NewCodec creates a codec from options.
func NewCodec(opts Options) *Codec {
	c := &Codec{table: opts.Table}
	if c.table == nil {
		c.table = morse.Default()
	}
	if opts.Strict {
		c.tokens = strictTokens{}
	} else {
		placeholder := opts.Placeholder
		if placeholder == 0 {
			placeholder = Placeholder
		}
		c.tokens = lenientTokens{placeholder: placeholder}
	}
	return c
}

// Table returns the Morse table of this codec.
func (c *Codec) Table() *morse.Table {
	return c.table
}

var std = NewCodec(Options{})

// Encode converts text to the representation named by mode. It never fails:
// errors are returned as messages, see Message.
func Encode(text string, mode string) string {
	return std.EncodeString(text, Mode(mode))
}

// Decode converts code in the representation named by mode back to text.
// It never fails: errors are returned as messages, see Message.
func Decode(code string, mode string) string {
	return std.DecodeString(code, Mode(mode))
}

// EncodeString is like Encode, but renders errors with Message.
func (c *Codec) EncodeString(text string, mode Mode) string {
	s, err := c.Encode(text, mode)
	if err != nil {
		return Message(err)
	}
	return s
}

// DecodeString is like Decode, but renders errors with Message.
func (c *Codec) DecodeString(code string, mode Mode) string {
	s, err := c.Decode(code, mode)
	if err != nil {
		return Message(err)
	}
	return s
}
