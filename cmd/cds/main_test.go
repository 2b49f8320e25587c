//go:build unit

package main

import (
	"bytes"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPeople(t *testing.T) {
	t.Run("adds, lists sorted by age and looks up people", func(t *testing.T) {
		// Prepare
		in := strings.NewReader("Ada\n36\nBob\n20\nquit\nAda\nZed\nquit\n")
		var out bytes.Buffer

		// Execute
		err := runPeople(PeopleOptions{Buckets: 5, MaxPerBucket: 16}, in, &out)

		// Check
		require.NoError(t, err, "runs")
		s := out.String()
		assert.Contains(t, s, "Added person:\nAda -> 36 years old.\n", "Ada added")
		assert.Contains(t, s, "Added person:\nBob -> 20 years old.\n", "Bob added")
		assert.Contains(t, s, "from youngest to oldest:\n- Bob - 20 years old.\n- Ada - 36 years old.\n", "sorted list")
		assert.Contains(t, s, "Ada is 36 years old.\n", "Ada found")
		assert.Contains(t, s, "Zed was not found!\n", "Zed missing")
	})

	t.Run("finds everybody after the table has grown", func(t *testing.T) {
		// Prepare
		var input strings.Builder
		for i := 0; i < 20; i++ {
			fmt.Fprintf(&input, "person%02d\n%d\n", i, 20+i)
		}
		input.WriteString("quit\n")
		for i := 0; i < 20; i++ {
			fmt.Fprintf(&input, "person%02d\n", i)
		}
		var out bytes.Buffer

		// Execute
		err := runPeople(PeopleOptions{Buckets: 1, MaxPerBucket: 2}, strings.NewReader(input.String()), &out)

		// Check
		require.NoError(t, err, "runs")
		for i := 0; i < 20; i++ {
			assert.Containsf(t, out.String(), fmt.Sprintf("person%02d is %d years old.\n", i, 20+i), "person%02d found", i)
		}
	})

	t.Run("prints statistics tables", func(t *testing.T) {
		// Prepare
		in := strings.NewReader("Ada\n36\nBob\n20\nquit\nquit\n")
		var out bytes.Buffer

		// Execute
		err := runPeople(PeopleOptions{Buckets: 3, MaxPerBucket: 16, Stat: true}, in, &out)

		// Check
		require.NoError(t, err, "runs")
		assert.Contains(t, out.String(), "LONGEST BUCKET", "summary table")
		assert.Contains(t, out.String(), "PEOPLE", "distribution table")
	})

	t.Run("end of input ends both loops", func(t *testing.T) {
		// Prepare
		var out bytes.Buffer

		// Execute
		err := runPeople(PeopleOptions{Buckets: 5, MaxPerBucket: 16}, strings.NewReader("Ada\n"), &out)

		// Check
		assert.NoError(t, err, "runs")
		assert.NotContains(t, out.String(), "Added person", "nobody added")
	})

	t.Run("invalid age is an error", func(t *testing.T) {
		// Prepare
		var out bytes.Buffer

		// Execute
		err := runPeople(PeopleOptions{Buckets: 5, MaxPerBucket: 16}, strings.NewReader("Ada\nold\n"), &out)

		// Check
		assert.Error(t, err, "age must be a number")
	})

	t.Run("invalid bucket count is an error", func(t *testing.T) {
		// Prepare
		var out bytes.Buffer

		// Execute
		err := runPeople(PeopleOptions{Buckets: 0, MaxPerBucket: 16}, strings.NewReader(""), &out)

		// Check
		assert.Error(t, err, "bucket count must be positive")
	})
}

func TestPersonEncoding(t *testing.T) {
	t.Run("long names are truncated", func(t *testing.T) {
		// Prepare
		name := strings.Repeat("x", 40)

		// Execute
		p := decodePerson(encodePerson(person{name: name, age: 7}))

		// Check
		assert.Equal(t, strings.Repeat("x", nameLength), p.name, "truncated name")
		assert.Equal(t, uint32(7), p.age, "age kept")
	})
}

func TestRunFibonacci(t *testing.T) {
	t.Run("removes 5 and sorts random numbers", func(t *testing.T) {
		// Prepare
		var out bytes.Buffer

		// Execute
		runFibonacci(rand.New(rand.NewSource(1)), &out)

		// Check
		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 8, "four headings and four vectors")
		assert.Equal(t, "[0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89]", lines[1], "fibonacci")
		assert.Equal(t, "[0, 1, 1, 2, 3, 8, 13, 21, 34, 55, 89]", lines[3], "without 5")

		var sorted []int
		for _, field := range strings.Split(strings.Trim(lines[7], "[]"), ", ") {
			var n int
			_, err := fmt.Sscanf(field, "%d", &n)
			require.NoError(t, err)
			sorted = append(sorted, n)
		}
		for i := 1; i < len(sorted); i++ {
			assert.LessOrEqual(t, sorted[i-1], sorted[i], "ascending")
		}
	})
}

func TestRunList(t *testing.T) {
	t.Run("prints the resulting list", func(t *testing.T) {
		// Prepare
		var out bytes.Buffer

		// Execute
		runList(&out)

		// Check
		assert.Contains(t, out.String(), "Number Linked List: [ 5 4 3 2 0 -1 12345 -2 -3 -4 -5 ]\n", "resulting list")
	})
}

func TestRunTree(t *testing.T) {
	t.Run("answers membership questions", func(t *testing.T) {
		// Prepare
		var out bytes.Buffer

		// Execute
		err := runTree(strings.NewReader("61\n62\n -12 \nquit\n"), &out)

		// Check
		require.NoError(t, err, "runs")
		assert.Contains(t, out.String(), "Is 61 in the tree? true\n", "61 found")
		assert.Contains(t, out.String(), "Is 62 in the tree? false\n", "62 missing")
		assert.Contains(t, out.String(), "Is -12 in the tree? true\n", "-12 found")
	})

	t.Run("rejects non numbers", func(t *testing.T) {
		// Prepare
		var out bytes.Buffer

		// Execute
		err := runTree(strings.NewReader("abc\n"), &out)

		// Check
		assert.Error(t, err, "not a number")
	})
}

func TestRunText(t *testing.T) {
	t.Run("echoes typed lines", func(t *testing.T) {
		// Prepare
		var out bytes.Buffer

		// Execute
		runText(TextOptions{Overhead: 8}, strings.NewReader("hello\nworld\nquit\nignored\n"), &out)

		// Check
		assert.Contains(t, out.String(), "====| This is what you just typed: |====\nhello\nworld\n", "collected text")
		assert.NotContains(t, out.String(), "ignored", "stops at quit")
	})
}

func TestCmdRoot(t *testing.T) {
	t.Run("runs subcommand with flags", func(t *testing.T) {
		// Prepare
		var out bytes.Buffer
		cmdRoot.SetOut(&out)
		cmdRoot.SetErr(&out)
		cmdRoot.SetArgs([]string{"fibonacci", "--seed", "42"})

		// Execute
		err := cmdRoot.Execute()

		// Check
		assert.NoError(t, err, "executes")
		assert.Contains(t, out.String(), "Fibonacci (without 5):\n[0, 1, 1, 2, 3, 8, 13, 21, 34, 55, 89]\n", "output written")
	})

	t.Run("rejects unknown log level", func(t *testing.T) {
		// Prepare
		var out bytes.Buffer
		cmdRoot.SetOut(&out)
		cmdRoot.SetErr(&out)
		cmdRoot.SetArgs([]string{"list", "--log-level", "chatty"})

		// Execute
		err := cmdRoot.Execute()

		// Check
		assert.Error(t, err, "invalid log level")
		globalOptions.LogLevel = "warning"
	})
}
