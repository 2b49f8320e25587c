package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GlobalOptions holds options shared by all commands.
type GlobalOptions struct {
	LogLevel string
}

var globalOptions GlobalOptions

// cmdRoot is the base command when no other command has been specified.
var cmdRoot = &cobra.Command{
	Use:   "cds",
	Short: "Demonstrate the cds container data structures",
	Long: `
cds runs small interactive programs built on the container data structures:
a people database on the hash table, vector and linked list walkthroughs, a
number tree and a text buffer.
`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	DisableAutoGenTag: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(globalOptions.LogLevel)
		if err != nil {
			return errors.Wrap(err, "log-level")
		}
		log.SetLevel(level)
		log.SetOutput(cmd.ErrOrStderr())
		return nil
	},

	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func init() {
	f := cmdRoot.PersistentFlags()
	f.StringVar(&globalOptions.LogLevel, "log-level", "warning", "log level (debug, info, warning, error)")
}

// lineReader reads input one trimmed line at a time. Running out of input reads as quit.
type lineReader struct {
	scanner *bufio.Scanner
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{scanner: bufio.NewScanner(r)}
}

// next returns the next line, and false at end of input or when the line is "quit".
func (l *lineReader) next() (string, bool) {
	if !l.scanner.Scan() {
		return "", false
	}
	line := strings.TrimRight(l.scanner.Text(), "\r")
	if line == "quit" {
		return "", false
	}
	return line, true
}

func main() {
	if err := cmdRoot.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
