package main

import (
	"fmt"
	"io"

	"github.com/gostonefire/cds/strbuf"
	"github.com/spf13/cobra"
)

var cmdText = &cobra.Command{
	Use:   "text",
	Short: "Collect typed lines in a string buffer",
	Long: `
The "text" command appends every line typed until "quit" to a string buffer
and prints the collected text.
`,
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		runText(textOptions, cmd.InOrStdin(), cmd.OutOrStdout())
		return nil
	},
}

// TextOptions bundles all options for the text command.
type TextOptions struct {
	Overhead int
}

var textOptions TextOptions

func init() {
	cmdRoot.AddCommand(cmdText)

	f := cmdText.Flags()
	f.IntVar(&textOptions.Overhead, "overhead", 256, "extra bytes reserved on every append")
}

func runText(opts TextOptions, in io.Reader, out io.Writer) {
	str := strbuf.New(strbuf.Conf{Overhead: opts.Overhead})
	defer str.Free()

	fmt.Fprintln(out, "Enter \"quit\" to exit.\nType anything in the console!")

	lines := newLineReader(in)
	for {
		line, ok := lines.next()
		if !ok {
			break
		}
		str.Append("%s\n", line)
	}

	fmt.Fprintf(out, "\n\n====| This is what you just typed: |====\n%s\n", str.String())
}
