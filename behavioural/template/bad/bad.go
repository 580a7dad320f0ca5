// Package bad imports people from CSV and JSON with two copy-pasted pipelines.
//
// Both processors repeat connect, read, transform, load and close; only the
// read and transform steps really differ, and the copies have already drifted.
package bad

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sghaida/patterns/internal/demo"
)

type Person struct {
	Name string `json:"Name"`
	Age  int    `json:"Age"`
}

type CSVProcessor struct {
	Out io.Writer
}

func (p CSVProcessor) Process() {
	fmt.Fprintln(p.Out, "Establishing default connection...")

	fmt.Fprintln(p.Out, "Reading CSV file lines")
	lines := []string{"Alice,25", "Bob,30", "Charlie,35"}

	var people []Person
	for _, line := range lines {
		parts := strings.Split(line, ",")
		age, _ := strconv.Atoi(parts[1])
		people = append(people, Person{Name: parts[0], Age: age})
	}

	fmt.Fprintln(p.Out, "Loading data into the system...")
	for _, person := range people {
		fmt.Fprintf(p.Out, "Loading %s, Age: %d\n", person.Name, person.Age)
	}

	fmt.Fprintln(p.Out, "Closing default connection...")
}

type JSONProcessor struct {
	Out io.Writer
}

func (p JSONProcessor) Process() {
	fmt.Fprintln(p.Out, "Establishing default connection...")

	fmt.Fprintln(p.Out, "Reading JSON file content")
	lines := []string{`{"Name":"Jessica","Age":40}`, `{"Name":"Martin","Age":50}`}

	fmt.Fprintln(p.Out, "Transforming JSON data")
	var people []Person
	for _, line := range lines {
		var person Person
		_ = jsoniter.ConfigCompatibleWithStandardLibrary.UnmarshalFromString(line, &person)
		people = append(people, person)
	}

	fmt.Fprintln(p.Out, "Loading data into the system...")
	for _, person := range people {
		fmt.Fprintf(p.Out, "Loading %s, Age: %d\n", person.Name, person.Age)
	}

	fmt.Fprintln(p.Out, "Closing default connection...")
}

// Run imports both sources.
func Run(_ context.Context, env demo.Env) error {
	fmt.Fprintln(env.Out, "CSV Import:")
	CSVProcessor{Out: env.Out}.Process()

	fmt.Fprintln(env.Out, "\nJSON Import:")
	JSONProcessor{Out: env.Out}.Process()
	return nil
}
