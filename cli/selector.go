package cli

import (
	"strings"

	"github.com/npillmayer/transcode"
)

// ParseSelector splits a combined mode selector as used by the web
// front end. A selector starting with "decode" selects decoding with the
// representation following the first '_', e.g. "decode_binary". Any other
// selector names an encoding mode.
//
// The representation is not validated here; an unknown one is reported by
// the codec.
func ParseSelector(selector string) (transcode.Direction, transcode.Mode) {
	if !strings.HasPrefix(selector, "decode") {
		return transcode.Encoding, transcode.Mode(selector)
	}
	_, mode, _ := strings.Cut(selector, "_")
	if i := strings.IndexByte(mode, '_'); i >= 0 {
		mode = mode[:i]
	}
	return transcode.Decoding, transcode.Mode(mode)
}
