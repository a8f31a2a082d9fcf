package cli

import (
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

// newLogger builds the command logger from the --verbose and --quiet flags.
// Output goes to the command's stderr so stdout carries only palette data.
func newLogger(cmd *cobra.Command) hclog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")

	opts := &hclog.LoggerOptions{
		Name:   "swatch",
		Output: cmd.ErrOrStderr(),
		Level:  hclog.Warn,
	}
	switch {
	case quiet:
		opts.Output = io.Discard
		opts.Level = hclog.Off
	case verbose:
		opts.Level = hclog.Debug
	}

	return hclog.New(opts)
}
