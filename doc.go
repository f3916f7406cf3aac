/*
Package transcode converts text into binary, decimal, hexadecimal, base64 or
Morse representations and back.

Every conversion is a pure function of its input, the selected mode and an
immutable Morse symbol table (see package morse). A Codec carries the
decoding policy for malformed numeric tokens: lenient decoding substitutes a
placeholder character, strict decoding fails with a *MalformedTokenError.

Two API levels are offered. Codec.Encode and Codec.Decode return errors the
Go way. The package-level functions Encode and Decode, as well as
Codec.EncodeString and Codec.DecodeString, never fail: errors are rendered
into fixed human-readable messages (see Message), so a caller may display the
result verbatim.

	transcode.Encode("sos", "morse")           // "... --- ..."
	transcode.Decode("01000001", "binary")     // "A"
	transcode.Decode("not-base64!!", "base64") // "Error: invalid base64 format."

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package transcode

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'transcode'
func tracer() tracing.Trace {
	return tracing.Select("transcode")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
