package main

import (
	"fmt"
	"io"

	"github.com/gostonefire/cds/list"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var cmdList = &cobra.Command{
	Use:   "list",
	Short: "Walk through the linked list operations",
	Long: `
The "list" command builds a singly linked list of numbers, traverses it,
removes and inserts nodes and prints the result.
`,
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		runList(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	cmdRoot.AddCommand(cmdList)
}

func runList(out io.Writer) {
	first := list.NewSingly(5)

	for i := 4; i >= -5; i-- {
		fmt.Fprintf(out, "Adding number to list: %d\n", i)
		first.AddEnd(list.NewSingly(i))
	}

	fmt.Fprintln(out, "Traversing right 3 times...")
	node := first.TraverseRight(3)

	fmt.Fprintln(out, "Removing next node...")
	node.RemoveNext(func(n *list.Singly[int]) {
		log.WithField("value", n.Value).Debug("removed list node")
	})

	fmt.Fprintln(out, "Traversing right 2 times...")
	node = node.TraverseRight(2)

	fmt.Fprintln(out, "Adding number to list: 12345")
	node.InsertNext(list.NewSingly(12345))

	fmt.Fprint(out, "Number Linked List: [ ")
	for n := first; n != nil; n = n.Next() {
		fmt.Fprintf(out, "%d ", n.Value)
	}
	fmt.Fprintln(out, "]")

	list.FreeSingly(first.Next(), nil)
}
