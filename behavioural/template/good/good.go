// Package good fixes the import pipeline in one template and lets sources plug
// in only what differs.
//
// Importer.Run is the template method:
//  1. connect (default, or the source's own Connect if it implements Connector)
//  2. extract raw records
//  3. transform them into people
//  4. load every person
//  5. disconnect, always, even when a step fails
package good

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

// Steps are the parts of an import a source must provide.
type Steps interface {
	Extract(ctx context.Context) ([]string, error)
	Transform(ctx context.Context, raw []string) ([]Person, error)
}

// Connector is an optional hook replacing the default connection handling.
type Connector interface {
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context)
}

// Importer runs the fixed import sequence.
type Importer struct {
	Out io.Writer
}

// Run imports people using steps.
func (im Importer) Run(ctx context.Context, steps Steps) error {
	if err := im.connect(ctx, steps); err != nil {
		return err
	}
	defer im.disconnect(ctx, steps)

	raw, err := steps.Extract(ctx)
	if err != nil {
		return fmt.Errorf("template: extract: %w", err)
	}
	people, err := steps.Transform(ctx, raw)
	if err != nil {
		return fmt.Errorf("template: transform: %w", err)
	}
	im.load(people)
	return nil
}

func (im Importer) connect(ctx context.Context, steps Steps) error {
	if c, ok := steps.(Connector); ok {
		return c.Connect(ctx)
	}
	fmt.Fprintln(im.Out, "Establishing default connection...")
	return nil
}

func (im Importer) disconnect(ctx context.Context, steps Steps) {
	if c, ok := steps.(Connector); ok {
		c.Disconnect(ctx)
		return
	}
	fmt.Fprintln(im.Out, "Closing default connection...")
}

func (im Importer) load(people []Person) {
	for _, p := range people {
		fmt.Fprintf(im.Out, "Loading %s, Age: %d\n", p.Name, p.Age)
	}
}

// CSVSource reads "name,age" lines.
type CSVSource struct {
	Out   io.Writer
	Lines []string
}

func (s CSVSource) Extract(context.Context) ([]string, error) {
	fmt.Fprintln(s.Out, "Reading CSV file lines")
	return s.Lines, nil
}

func (s CSVSource) Transform(_ context.Context, raw []string) ([]Person, error) {
	fmt.Fprintln(s.Out, "Transforming CSV data")
	people := make([]Person, 0, len(raw))
	for _, line := range raw {
		name, ageText, ok := strings.Cut(line, ",")
		if !ok {
			return nil, fmt.Errorf("csv line %q: missing age", line)
		}
		age, err := strconv.Atoi(strings.TrimSpace(ageText))
		if err != nil {
			return nil, fmt.Errorf("csv line %q: %w", line, err)
		}
		people = append(people, Person{Name: name, Age: age})
	}
	return people, nil
}

// JSONSource reads one JSON object per record.
type JSONSource struct {
	Out     io.Writer
	Records []string
}

func (s JSONSource) Extract(context.Context) ([]string, error) {
	fmt.Fprintln(s.Out, "Reading JSON file content")
	return s.Records, nil
}

func (s JSONSource) Transform(_ context.Context, raw []string) ([]Person, error) {
	fmt.Fprintln(s.Out, "Transforming JSON data")
	api := jsoniter.ConfigCompatibleWithStandardLibrary
	people := make([]Person, 0, len(raw))
	for _, rec := range raw {
		var p Person
		if err := api.UnmarshalFromString(rec, &p); err != nil {
			return nil, fmt.Errorf("json record %q: %w", rec, err)
		}
		people = append(people, p)
	}
	return people, nil
}

// Run imports the sample CSV and JSON sources.
func Run(ctx context.Context, env demo.Env) error {
	im := Importer{Out: env.Out}

	fmt.Fprintln(env.Out, "CSV Import:")
	if err := im.Run(ctx, CSVSource{Out: env.Out, Lines: []string{"Alice,25", "Bob,30", "Charlie,35"}}); err != nil {
		return err
	}

	fmt.Fprintln(env.Out, "\nJSON Import:")
	return im.Run(ctx, JSONSource{Out: env.Out, Records: []string{
		`{"Name":"Jessica","Age":40}`,
		`{"Name":"Martin","Age":50}`,
	}})
}
