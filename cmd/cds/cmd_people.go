package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"strconv"

	"github.com/gostonefire/cds"
	"github.com/gostonefire/cds/hashfunc"
	"github.com/gostonefire/cds/internal/utils"
	"github.com/gostonefire/cds/vector"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Layout of a person element: zero padded name followed by a little endian age.
const (
	nameLength   = 32
	ageLength    = 4
	personLength = nameLength + ageLength
)

var cmdPeople = &cobra.Command{
	Use:   "people",
	Short: "Store people in a hash table and look them up",
	Long: `
The "people" command reads name and age pairs until a name of "quit" is given,
lists everybody from youngest to oldest and then looks names up until "quit".

Names longer than 32 bytes are truncated.
`,
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPeople(peopleOptions, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// PeopleOptions bundles all options for the people command.
type PeopleOptions struct {
	Buckets      int64
	MaxPerBucket int64
	Stat         bool
}

var peopleOptions PeopleOptions

func init() {
	cmdRoot.AddCommand(cmdPeople)

	f := cmdPeople.Flags()
	f.Int64Var(&peopleOptions.Buckets, "buckets", 5, "initial number of buckets")
	f.Int64Var(&peopleOptions.MaxPerBucket, "max-per-bucket", 16, "people per bucket before the table grows")
	f.BoolVar(&peopleOptions.Stat, "stat", false, "print hash table statistics once everybody is added")
}

type person struct {
	name string
	age  uint32
}

func encodePerson(p person) []byte {
	element := utils.FixedLength([]byte(p.name), personLength)
	binary.LittleEndian.PutUint32(element[nameLength:], p.age)
	return element
}

func decodePerson(element []byte) person {
	return person{
		name: string(utils.TrimZeros(element[:nameLength])),
		age:  binary.LittleEndian.Uint32(element[nameLength:]),
	}
}

func runPeople(opts PeopleOptions, in io.Reader, out io.Writer) error {
	ht := cds.NewHashTable(hashfunc.ByteSum(0, nameLength), opts.MaxPerBucket, personLength)
	defer ht.Free()

	if err := ht.ResizeTo(opts.Buckets); err != nil {
		return errors.Wrap(err, "buckets")
	}

	lines := newLineReader(in)

	fmt.Fprintln(out, "Enter quit in the name field to stop entering names!")
	for {
		fmt.Fprintln(out, "Please enter the new person's name:")
		name, ok := lines.next()
		if !ok {
			break
		}
		fmt.Fprintln(out, "Please enter that person's age:")
		ageLine, ok := lines.next()
		if !ok {
			break
		}
		age, err := strconv.ParseUint(ageLine, 10, 32)
		if err != nil {
			return errors.Wrapf(err, "age of %s", name)
		}

		p := person{name: name, age: uint32(age)}
		if err = ht.Insert(encodePerson(p)); err != nil {
			return errors.Wrapf(err, "adding %s", name)
		}
		fmt.Fprintf(out, "Added person:\n%s -> %d years old.\n", decodePerson(encodePerson(p)).name, p.age)
	}

	stat := ht.Stat(false)
	log.WithFields(log.Fields{
		"records":       stat.Records,
		"buckets":       ht.Info().BucketCount,
		"usedBuckets":   stat.UsedBuckets,
		"longestBucket": stat.LongestBucket,
	}).Debug("people table filled")

	people := vector.New[person]()
	ht.ForEach(func(element []byte) {
		people.PushBack(decodePerson(element))
	})
	people.Sort(func(a, b person) bool { return a.age > b.age })

	fmt.Fprintln(out, "List of all registered people, from youngest to oldest:")
	people.Each(func(i int64, p person) {
		fmt.Fprintf(out, "- %s - %d years old.\n", p.name, p.age)
	})
	people.Free()

	if opts.Stat {
		printStat(out, ht)
	}

	fmt.Fprintln(out, "Enter quit to stop the program!")
	equals := cds.KeyEquals(0, nameLength)
	for {
		fmt.Fprintln(out, "Please enter a person's name to find in the database:")
		name, ok := lines.next()
		if !ok {
			break
		}

		element, _, err := ht.Find(encodePerson(person{name: name}), equals)
		if errors.Is(err, cds.NoRecordFound{}) {
			fmt.Fprintf(out, "%s was not found!\n", name)
			continue
		}
		if err != nil {
			return errors.Wrapf(err, "finding %s", name)
		}
		p := decodePerson(element)
		fmt.Fprintf(out, "%s is %d years old.\n", p.name, p.age)
	}

	return nil
}

func printStat(out io.Writer, ht *cds.HashTable) {
	info := ht.Info()
	stat := ht.Stat(true)

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Records", "Buckets", "Used buckets", "Longest bucket", "Max per bucket"})
	table.Append([]string{
		strconv.FormatInt(stat.Records, 10),
		strconv.FormatInt(info.BucketCount, 10),
		strconv.FormatInt(stat.UsedBuckets, 10),
		strconv.FormatInt(stat.LongestBucket, 10),
		strconv.FormatInt(info.MaxPerBucket, 10),
	})
	table.Render()

	distribution := tablewriter.NewWriter(out)
	distribution.SetHeader([]string{"Bucket", "People"})
	for i, n := range stat.BucketDistribution {
		distribution.Append([]string{strconv.Itoa(i), strconv.FormatInt(n, 10)})
	}
	distribution.Render()
}
