package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/transcode"
	"github.com/npillmayer/transcode/effects"
)

func clearEnv(t *testing.T) {
	t.Helper()
	color.NoColor = true
	t.Setenv("TRANSCODE_STRICT", "false")
	t.Setenv("TRANSCODE_PLACEHOLDER", "\uFFFD")
	t.Setenv("TRANSCODE_MORSE_TABLE", "")
	t.Setenv("TRANSCODE_EFFECTS", "true")
}

func executeCommand(t *testing.T, stdin string, args ...string) (stdout, stderr string) {
	t.Helper()
	rootCmd := NewRootCmd()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
	return out.String(), errOut.String()
}

func TestEncodeDecodeCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "transcode.cli")
	defer teardown()
	clearEnv(t)
	//
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"encode", "morse", "sos"}, "... --- ...\n"},
		{[]string{"encode", "hex", "A"}, "41\n"},
		{[]string{"encode", "ascii", "h", "i"}, "104 32 105\n"},
		{[]string{"decode", "morse", "...", "---", "..."}, "sos\n"},
		{[]string{"decode", "binary", "01001000", "01101001"}, "Hi\n"},
		{[]string{"decode", "base64", "aGVsbG8="}, "hello\n"},
		// symbols and text starting with '-' are operands, not flags
		{[]string{"decode", "morse", "-.-"}, "k\n"},
		{[]string{"decode", "morse", "-.-", "---", "-..."}, "kob\n"},
		{[]string{"decode", "--strict", "morse", "-.-", "---"}, "ko\n"},
		{[]string{"encode", "ascii", "-1"}, "45 49\n"},
		{[]string{"convert", "decode_morse", "-.-"}, "k\n"},
		{[]string{"convert", "morse", "-"}, "-....-\n"},
	}
	for _, tt := range tests {
		out, _ := executeCommand(t, "", tt.args...)
		if out != tt.want {
			t.Fatalf("%v: got %q, want %q", tt.args, out, tt.want)
		}
	}
}

func TestEncodeFromStdin(t *testing.T) {
	clearEnv(t)
	out, _ := executeCommand(t, "hi\n", "encode", "ascii")
	if out != "104 105\n" {
		t.Fatalf("stdin input: got %q", out)
	}
}

func TestCommandErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "transcode.cli")
	defer teardown()
	clearEnv(t)
	//
	out, errOut := executeCommand(t, "", "decode", "base64", "not-base64!!")
	if out != "" || !strings.Contains(errOut, "malformed base64") {
		t.Fatalf("expected base64 error on stderr, got out=%q err=%q", out, errOut)
	}
	_, errOut = executeCommand(t, "", "encode", "rot13", "abc")
	if !strings.Contains(errOut, "unsupported mode") {
		t.Fatalf("expected mode error on stderr, got %q", errOut)
	}
	_, errOut = executeCommand(t, "", "--strict", "decode", "binary", "0102")
	if !strings.Contains(errOut, "malformed token") {
		t.Fatalf("expected strict token error, got %q", errOut)
	}
	// error text is printed verbatim, never as a format
	_, errOut = executeCommand(t, "", "--strict", "decode", "binary", "1%d")
	if want := "\nerror: " + `malformed token "1%d" at position 1 (base 2)` + "\n\n"; errOut != want {
		t.Fatalf("error output: got %q, want %q", errOut, want)
	}
}

func TestPlaceholderFlag(t *testing.T) {
	clearEnv(t)
	out, _ := executeCommand(t, "", "--placeholder", "#", "decode", "ascii", "104", "zz", "105")
	if out != "h#i\n" {
		t.Fatalf("placeholder flag not applied, got %q", out)
	}
	rootCmd := NewRootCmd()
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"--placeholder", "##", "decode", "ascii", "104"})
	if err := rootCmd.Execute(); err == nil {
		t.Fatalf("expected error for invalid placeholder")
	}
}

func TestConvertCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "transcode.cli")
	defer teardown()
	clearEnv(t)
	//
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"convert", "morse", "sos"}, "... --- ...\n"},
		{[]string{"convert", "decode_morse", "... --- ..."}, "sos\n"},
		{[]string{"convert", "decode_base64", "not-base64!!"}, transcode.MsgInvalidBase64 + "\n"},
		{[]string{"convert", "decode_octal", "17"}, transcode.MsgInvalidMode + "\n"},
		{[]string{"convert", "morse", "   "}, MsgEmptyInput + "\n"},
		{[]string{"convert", "decode_morse", "......."}, MsgNoResult + "\n"},
	}
	for _, tt := range tests {
		out, _ := executeCommand(t, "", tt.args...)
		if out != tt.want {
			t.Fatalf("%v: got %q, want %q", tt.args, out, tt.want)
		}
	}
	out, _ := executeCommand(t, "", "convert", "hex", "matrix")
	if want := "6D 61 74 72 69 78\n" + string(effects.NoticeMatrix) + "\n"; out != want {
		t.Fatalf("convert should print notices after the result, got %q", out)
	}
	t.Setenv("TRANSCODE_EFFECTS", "false")
	out, _ = executeCommand(t, "", "convert", "hex", "matrix")
	if out != "6D 61 74 72 69 78\n" {
		t.Fatalf("notices should be disabled, got %q", out)
	}
}

func TestTableCommand(t *testing.T) {
	clearEnv(t)
	out, _ := executeCommand(t, "", "table")
	if !strings.Contains(out, "a\t.-\n") || !strings.Contains(out, "<space>\t/\n") ||
		!strings.Contains(out, "í\t..\t(alias)\n") {
		t.Fatalf("unexpected table listing:\n%s", out)
	}
	out, _ = executeCommand(t, "", "table", "...")
	if out != "...\ts\n...-\tv\n...--\t3\n....\th\n....-\t4\n.....\t5\n" {
		t.Fatalf("unexpected prefix listing:\n%s", out)
	}
}

func TestCustomTableFlag(t *testing.T) {
	clearEnv(t)
	path := filepath.Join("..", "morse", "morsetab", "testdata", "default.tab")
	out, _ := executeCommand(t, "", "--table", path, "encode", "morse", "sos")
	if out != "... --- ...\n" {
		t.Fatalf("custom table: got %q", out)
	}
}

func TestParseSelector(t *testing.T) {
	tests := []struct {
		selector string
		dir      transcode.Direction
		mode     transcode.Mode
	}{
		{"binary", transcode.Encoding, transcode.Binary},
		{"decode_binary", transcode.Decoding, transcode.Binary},
		{"decode_morse_extra", transcode.Decoding, transcode.Morse},
		{"decode", transcode.Decoding, ""},
		{"encode_hex", transcode.Encoding, "encode_hex"},
	}
	for _, tt := range tests {
		dir, mode := ParseSelector(tt.selector)
		if dir != tt.dir || mode != tt.mode {
			t.Fatalf("ParseSelector(%q) = %s, %q; want %s, %q", tt.selector, dir, mode, tt.dir, tt.mode)
		}
	}
}
