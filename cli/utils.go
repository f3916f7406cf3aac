package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

// tracer writes to trace with key 'transcode.cli'
func tracer() tracing.Trace {
	return tracing.Select("transcode.cli")
}

// readInput joins the arguments or, if there are none, reads stdin.
// A final line break on stdin is not part of the input.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	input := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(input, "\r"), nil
}

func trimInput(input string) string {
	return strings.TrimSpace(input)
}

func logResultCmd(cmd *cobra.Command, result string) {
	fmt.Fprintln(cmd.OutOrStdout(), result)
}

func logNoticeCmd(cmd *cobra.Command, notice string) {
	fmt.Fprintln(cmd.OutOrStdout(), color.New(color.FgMagenta).Sprint(notice))
}

func logErrorCmd(cmd *cobra.Command, err error) {
	tracer().Errorf("%s: %v", cmd.Name(), err)
	boldRed := color.New(color.FgRed, color.Bold)
	boldRed.Fprintf(cmd.ErrOrStderr(), "\nerror: ")

	fmt.Fprintf(cmd.ErrOrStderr(), "%s\n\n", color.RedString(err.Error()))
}
