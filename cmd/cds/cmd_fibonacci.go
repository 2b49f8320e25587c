package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/gostonefire/cds/vector"
	"github.com/spf13/cobra"
)

var cmdFibonacci = &cobra.Command{
	Use:   "fibonacci",
	Short: "Walk through the vector operations",
	Long: `
The "fibonacci" command fills a vector with Fibonacci numbers, finds and
removes 5, then fills it with random numbers and sorts them.
`,
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		seed := fibonacciOptions.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		runFibonacci(rand.New(rand.NewSource(seed)), cmd.OutOrStdout())
		return nil
	},
}

// FibonacciOptions bundles all options for the fibonacci command.
type FibonacciOptions struct {
	Seed int64
}

var fibonacciOptions FibonacciOptions

func init() {
	cmdRoot.AddCommand(cmdFibonacci)

	f := cmdFibonacci.Flags()
	f.Int64Var(&fibonacciOptions.Seed, "seed", 0, "seed for the random numbers, 0 uses the current time")
}

func printVector(out io.Writer, v *vector.Vector[int]) {
	fmt.Fprint(out, "[")
	v.Each(func(i int64, e int) {
		if i == v.Len()-1 {
			fmt.Fprintf(out, "%d", e)
		} else {
			fmt.Fprintf(out, "%d, ", e)
		}
	})
	fmt.Fprintln(out, "]")
}

func runFibonacci(rnd *rand.Rand, out io.Writer) {
	v := vector.New[int]()
	for _, n := range []int{0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89} {
		v.PushBack(n)
	}

	fmt.Fprintln(out, "Fibonacci:")
	printVector(out, v)

	if i := v.Find(func(e int) bool { return e == 5 }); i != vector.NotFound {
		v.PopAt(i)
	}

	fmt.Fprintln(out, "Fibonacci (without 5):")
	printVector(out, v)

	v.Free()

	for n := rnd.Intn(20) + 1; n > 0; n-- {
		v.PushBack(rnd.Intn(2048))
	}

	fmt.Fprintln(out, "Random numbers:")
	printVector(out, v)

	v.Sort(func(a, b int) bool { return a > b })

	fmt.Fprintln(out, "Random numbers (sorted):")
	printVector(out, v)

	v.Free()
}
