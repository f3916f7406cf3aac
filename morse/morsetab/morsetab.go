package morsetab

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/transcode/morse"
)

// SpaceName denotes the space character in a table definition.
const SpaceName = "<space>"

// Reader streams Morse table entries from a textual definition.
type Reader struct {
	scanner    *bufio.Scanner
	identifier string
	inAlias    bool
	line       int
}

// LoadTable parses a table definition and returns a ready-to-use table.
//
// Entries are given one per line as a character and its symbol, separated
// by whitespace:
//
//	\message{spanish}
//	% letters
//	a .-
//	b -...
//	<space> /
//	\alias{
//	í ..
//	}
//
// Lines in an \alias{...} block are encode-only entries: they are used for
// characters sharing a symbol with a character defined elsewhere.
// If the definition carries a \message{...} line, it names the table,
// otherwise name is used.
func LoadTable(name string, reader io.Reader) (*morse.Table, error) {
	r := NewReader(reader)
	var entries []morse.Entry
	for {
		e, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if len(entries) == 0 {
		return nil, errors.New("morse table definition contains no entries")
	}
	if r.Identifier() != "" {
		name = r.Identifier()
	}
	return morse.NewTable(name, entries)
}

// NewReader creates a reader for a table definition.
func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Identifier is the table name found in a \message{...} line, if any.
func (r *Reader) Identifier() string {
	return r.identifier
}

// Next returns the next entry. It returns io.EOF when exhausted.
func (r *Reader) Next() (morse.Entry, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if strings.HasPrefix(line, "\\message{") && strings.HasSuffix(line, "}") {
			r.identifier = line[9 : len(line)-1]
			continue
		}
		if strings.HasPrefix(line, "\\alias{") {
			r.inAlias = true
			continue
		}
		if strings.HasPrefix(line, "}") {
			r.inAlias = false
			continue
		}
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		return r.decodeEntry(line)
	}
	if err := r.scanner.Err(); err != nil {
		return morse.Entry{}, err
	}
	return morse.Entry{}, io.EOF
}

func (r *Reader) decodeEntry(line string) (morse.Entry, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return morse.Entry{}, fmt.Errorf("line %d: expected <char> <symbol>, got %q", r.line, line)
	}
	char, symbol := fields[0], fields[1]
	var ch rune
	if char == SpaceName {
		ch = ' '
	} else {
		if utf8.RuneCountInString(char) != 1 {
			return morse.Entry{}, fmt.Errorf("line %d: %q is not a single character", r.line, char)
		}
		ch, _ = utf8.DecodeRuneInString(char)
	}
	return morse.Entry{Char: ch, Symbol: symbol, Alias: r.inAlias}, nil
}
