package morse

// defaultEntries is the built-in table: Latin letters, digits, a small set
// of punctuation, Spanish letters and the word separator.
var defaultEntries = []Entry{
	{Char: 'a', Symbol: ".-"}, {Char: 'b', Symbol: "-..."}, {Char: 'c', Symbol: "-.-."},
	{Char: 'd', Symbol: "-.."}, {Char: 'e', Symbol: "."}, {Char: 'f', Symbol: "..-."},
	{Char: 'g', Symbol: "--."}, {Char: 'h', Symbol: "...."}, {Char: 'i', Symbol: ".."},
	{Char: 'j', Symbol: ".---"}, {Char: 'k', Symbol: "-.-"}, {Char: 'l', Symbol: ".-.."},
	{Char: 'm', Symbol: "--"}, {Char: 'n', Symbol: "-."}, {Char: 'o', Symbol: "---"},
	{Char: 'p', Symbol: ".--."}, {Char: 'q', Symbol: "--.-"}, {Char: 'r', Symbol: ".-."},
	{Char: 's', Symbol: "..."}, {Char: 't', Symbol: "-"}, {Char: 'u', Symbol: "..-"},
	{Char: 'v', Symbol: "...-"}, {Char: 'w', Symbol: ".--"}, {Char: 'x', Symbol: "-..-"},
	{Char: 'y', Symbol: "-.--"}, {Char: 'z', Symbol: "--.."},
	{Char: '1', Symbol: ".----"}, {Char: '2', Symbol: "..---"}, {Char: '3', Symbol: "...--"},
	{Char: '4', Symbol: "....-"}, {Char: '5', Symbol: "....."}, {Char: '6', Symbol: "-...."},
	{Char: '7', Symbol: "--..."}, {Char: '8', Symbol: "---.."}, {Char: '9', Symbol: "----."},
	{Char: '0', Symbol: "-----"},
	{Char: '.', Symbol: ".-.-.-"}, {Char: ',', Symbol: "--..--"}, {Char: '?', Symbol: "..--.."},
	{Char: '!', Symbol: "-.-.--"}, {Char: '=', Symbol: "-...-"}, {Char: '+', Symbol: ".-.-."},
	{Char: '-', Symbol: "-....-"},
	{Char: 'ñ', Symbol: "--.--"},
	{Char: 'á', Symbol: ".--.-"}, {Char: 'é', Symbol: "..-.."},
	{Char: 'í', Symbol: "..", Alias: true}, // same symbol as 'i'
	{Char: 'ó', Symbol: "---."}, {Char: 'ú', Symbol: "..--"},
	{Char: ' ', Symbol: WordSeparator},
}

var defaultTable = MustNewTable("default", defaultEntries)

// Default returns the built-in table. It is constructed once at package
// initialization.
//
// 'i' and 'í' share the symbol "..". 'í' is an encode-only alias, so ".."
// decodes to 'i' and ".... .." reads "hi". This deliberately differs from
// inverting the character map with the last pair winning, which would decode
// ".." to 'í'.
func Default() *Table {
	return defaultTable
}
