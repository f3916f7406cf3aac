// Package cli implements the command line front end of the transcoder.
package cli

import (
	"fmt"

	"github.com/npillmayer/transcode"
	"github.com/npillmayer/transcode/config"
	"github.com/npillmayer/transcode/effects"
	"github.com/npillmayer/transcode/morse/morsetab"
	"github.com/spf13/cobra"
)

// Messages of the convert command.
const (
	MsgEmptyInput = "Please enter text or code."
	MsgNoResult   = "(no result)"
)

// session is the state shared by the commands of one invocation.
type session struct {
	cfg     config.Config
	codec   *transcode.Codec
	effects effects.State

	// flag values, applied over the environment
	strict      bool
	placeholder string
	table       string
}

// NewRootCmd creates the transcode root command with all subcommands.
func NewRootCmd() *cobra.Command {
	s := &session{}
	rootCmd := &cobra.Command{
		Use:   "transcode",
		Short: "Convert text to binary, decimal, hex, base64 or Morse code and back",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.setup(cmd)
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&s.strict, "strict", "s", false,
		"Reject malformed numeric tokens instead of substituting a placeholder")
	rootCmd.PersistentFlags().StringVarP(&s.placeholder, "placeholder", "p", "",
		"Substitute for malformed numeric tokens")
	rootCmd.PersistentFlags().StringVarP(&s.table, "table", "t", "",
		"Morse table definition file")

	rootCmd.AddCommand(s.newEncodeCmd())
	rootCmd.AddCommand(s.newDecodeCmd())
	rootCmd.AddCommand(s.newConvertCmd())
	rootCmd.AddCommand(s.newTableCmd())
	return rootCmd
}

func (s *session) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("strict") {
		cfg.Strict = s.strict
	}
	if flags.Changed("placeholder") {
		cfg.Placeholder = s.placeholder
	}
	if flags.Changed("table") {
		cfg.MorseTable = s.table
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	s.cfg = cfg
	s.codec = transcode.NewCodec(opts)
	tracer().Debugf("codec ready: strict=%v table=%s", cfg.Strict, s.codec.Table().Name())
	return nil
}

func (s *session) newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <mode> [text...]",
		Short: "Encode text",
		Long: "Encode text given as arguments or on stdin.\n" +
			"Modes: binary, ascii, hex, base64, morse.",
		Example: "  transcode encode morse sos",
		Args:    cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			text, err := readInput(cmd, args[1:])
			if err != nil {
				logErrorCmd(cmd, err)
				return
			}
			result, err := s.codec.Encode(text, transcode.Mode(args[0]))
			if err != nil {
				logErrorCmd(cmd, err)
				return
			}
			logResultCmd(cmd, result)
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func (s *session) newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <mode> [code...]",
		Short: "Decode code back to text",
		Long: "Decode code given as arguments or on stdin.\n" +
			"Modes: binary, ascii, hex, base64, morse.",
		Example: "  transcode decode binary 01001000 01101001",
		Args:    cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			code, err := readInput(cmd, args[1:])
			if err != nil {
				logErrorCmd(cmd, err)
				return
			}
			result, err := s.codec.Decode(code, transcode.Mode(args[0]))
			if err != nil {
				logErrorCmd(cmd, err)
				return
			}
			logResultCmd(cmd, result)
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

// newConvertCmd mirrors the single-form front end: one selector for both
// directions, results and failures shown as plain text, and cosmetic
// notices for recognized words.
func (s *session) newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <selector> [input...]",
		Short: "Convert using a combined selector such as morse or decode_morse",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			input, err := readInput(cmd, args[1:])
			if err != nil {
				logErrorCmd(cmd, err)
				return
			}
			logResultCmd(cmd, s.convert(args[0], input))
			if !s.cfg.Effects {
				return
			}
			for _, notice := range s.effects.Observe(input) {
				logNoticeCmd(cmd, string(notice))
			}
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func (s *session) convert(selector, input string) string {
	input = trimInput(input)
	if input == "" {
		return MsgEmptyInput
	}
	var result string
	switch dir, mode := ParseSelector(selector); dir {
	case transcode.Decoding:
		result = s.codec.DecodeString(input, mode)
	default:
		result = s.codec.EncodeString(input, mode)
	}
	if result == "" {
		return MsgNoResult
	}
	return result
}

func (s *session) newTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table [prefix]",
		Short: "List the Morse table or the symbols starting with prefix",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			table := s.codec.Table()
			if len(args) == 0 {
				for _, e := range table.Entries() {
					line := fmt.Sprintf("%s\t%s", charName(e.Char), e.Symbol)
					if e.Alias {
						line += "\t(alias)"
					}
					logResultCmd(cmd, line)
				}
				return
			}
			for _, symbol := range table.Complete(args[0]) {
				r, _ := table.Reverse(symbol)
				logResultCmd(cmd, fmt.Sprintf("%s\t%s", symbol, charName(r)))
			}
		},
	}
}

func charName(r rune) string {
	if r == ' ' {
		return morsetab.SpaceName
	}
	return string(r)
}
