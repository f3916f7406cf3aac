/*
Package morse holds the symbol table used for Morse transcoding.

A Table is built in two passes: a forward map from characters to symbols is
filled from an ordered list of entries, then the reverse index is derived by
inverting every reversible pair. The reverse index is a prefix trie over
symbol strings.

Symbols of reversible entries must be pairwise distinct. A table violating
this is rejected at construction time instead of silently losing a mapping.
Entries flagged as Alias are encode-only and never enter the reverse index.
*/
package morse

import (
	"fmt"
	"sort"
	"strings"

	"github.com/derekparker/trie"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'transcode.morse'
func tracer() tracing.Trace {
	return tracing.Select("transcode.morse")
}

// WordSeparator is the symbol the space character maps to.
const WordSeparator = "/"

// Entry is one (character, symbol) pair of a table definition.
//
// An Alias entry participates in forward lookup only. It is used for
// characters sharing a symbol with another character, e.g. 'í' sharing ".."
// with 'i'.
type Entry struct {
	Char   rune
	Symbol string
	Alias  bool
}

// Table is an immutable bidirectional mapping between characters and
// Morse symbols. It is safe for concurrent use.
type Table struct {
	name    string
	entries []Entry
	forward map[rune]string
	reverse *trie.Trie
	nrev    int
}

// NewTable builds a table from an ordered list of entries.
//
// It returns an error if a symbol is empty or contains characters other
// than '.', '-' and '/', if a character is listed twice, or if two
// reversible entries share a symbol.
func NewTable(name string, entries []Entry) (*Table, error) {
	t := &Table{
		name:    name,
		entries: make([]Entry, len(entries)),
		forward: make(map[rune]string, len(entries)),
		reverse: trie.New(),
	}
	copy(t.entries, entries)
	for _, e := range t.entries { // pass 1: forward map
		if err := checkSymbol(e.Symbol); err != nil {
			return nil, fmt.Errorf("morse table %s: entry %q: %w", name, e.Char, err)
		}
		if _, dup := t.forward[e.Char]; dup {
			return nil, fmt.Errorf("morse table %s: character %q listed twice", name, e.Char)
		}
		t.forward[e.Char] = e.Symbol
	}
	for _, e := range t.entries { // pass 2: reverse index by inversion
		if e.Alias {
			continue
		}
		if node, found := t.reverse.Find(e.Symbol); found {
			return nil, fmt.Errorf("morse table %s: symbol %q used by both %q and %q",
				name, e.Symbol, node.Meta().(rune), e.Char)
		}
		t.reverse.Add(e.Symbol, e.Char)
		t.nrev++
	}
	tracer().Infof("morse table %s: %d entries, %d reversible", name, len(t.forward), t.nrev)
	return t, nil
}

// MustNewTable is like NewTable but panics on an invalid definition.
func MustNewTable(name string, entries []Entry) *Table {
	t, err := NewTable(name, entries)
	if err != nil {
		panic(err)
	}
	return t
}

func checkSymbol(symbol string) error {
	if symbol == "" {
		return fmt.Errorf("empty symbol")
	}
	if i := strings.IndexFunc(symbol, func(r rune) bool {
		return r != '.' && r != '-' && r != '/'
	}); i >= 0 {
		return fmt.Errorf("symbol %q contains invalid character at %d", symbol, i)
	}
	return nil
}

// Name identifies the table.
func (t *Table) Name() string {
	return t.name
}

// Len returns the number of characters with a symbol.
func (t *Table) Len() int {
	return len(t.forward)
}

// Lookup returns the symbol for character r.
func (t *Table) Lookup(r rune) (string, bool) {
	if t == nil {
		return "", false
	}
	s, ok := t.forward[r]
	return s, ok
}

// Reverse returns the character for a symbol.
func (t *Table) Reverse(symbol string) (rune, bool) {
	if t == nil || symbol == "" {
		return 0, false
	}
	node, found := t.reverse.Find(symbol)
	if !found {
		return 0, false
	}
	r, ok := node.Meta().(rune)
	return r, ok
}

// Entries returns a copy of the table definition in its original order.
func (t *Table) Entries() []Entry {
	ee := make([]Entry, len(t.entries))
	copy(ee, t.entries)
	return ee
}

// Complete returns the reversible symbols starting with prefix, sorted.
// An empty prefix returns all reversible symbols.
func (t *Table) Complete(prefix string) []string {
	var symbols []string
	if prefix == "" {
		symbols = t.reverse.Keys()
	} else {
		symbols = t.reverse.PrefixSearch(prefix)
	}
	sort.Strings(symbols)
	return symbols
}
