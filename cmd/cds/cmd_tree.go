package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gostonefire/cds/tree"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var cmdTree = &cobra.Command{
	Use:   "tree",
	Short: "Draw a sorted number tree and answer membership questions",
	Long: `
The "tree" command draws a sorted binary tree of numbers and then reads numbers,
one per line until "quit", telling whether each one is in the tree.
`,
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTree(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	cmdRoot.AddCommand(cmdTree)
}

func runTree(in io.Reader, out io.Writer) error {
	root := tree.NewNode(50)
	defer root.Free(nil)

	for _, n := range []int{10, 25, 55, 68, -1, 100, 61, -12, 0} {
		root.Add(tree.NewNode(n), tree.Ascending[int])
	}

	root.Print(out, 1, 1, func(w io.Writer, node *tree.Node[int]) int {
		n, _ := fmt.Fprintf(w, "%d", node.Value)
		return n
	})

	lines := newLineReader(in)
	for {
		line, ok := lines.next()
		if !ok {
			return nil
		}
		number, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return errors.Wrapf(err, "not a number: %q", line)
		}
		found := root.Find(number, tree.Compare[int]) != nil
		fmt.Fprintf(out, "Is %d in the tree? %t\n", number, found)
	}
}
