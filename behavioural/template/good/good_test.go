package good_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/sghaida/patterns/behavioural/template/good"
	"github.com/sghaida/patterns/internal/demotest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{
		"CSV Import:",
		"Establishing default connection...",
		"Reading CSV file lines",
		"Transforming CSV data",
		"Loading Alice, Age: 25",
		"Loading Bob, Age: 30",
		"Loading Charlie, Age: 35",
		"Closing default connection...",
		"",
		"JSON Import:",
		"Establishing default connection...",
		"Reading JSON file content",
		"Transforming JSON data",
		"Loading Jessica, Age: 40",
		"Loading Martin, Age: 50",
		"Closing default connection...",
	}, demotest.Run(t, good.Run))
}

func TestImporter_DisconnectsOnTransformError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		steps func(out io.Writer) good.Steps
	}{
		{name: "csv bad age", steps: func(out io.Writer) good.Steps {
			return good.CSVSource{Out: out, Lines: []string{"Alice,old"}}
		}},
		{name: "csv missing age", steps: func(out io.Writer) good.Steps {
			return good.CSVSource{Out: out, Lines: []string{"Alice"}}
		}},
		{name: "json malformed", steps: func(out io.Writer) good.Steps {
			return good.JSONSource{Out: out, Records: []string{`{"Name":`}}
		}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			err := good.Importer{Out: &buf}.Run(context.Background(), tc.steps(&buf))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "template: transform")

			lines := demotest.Lines(buf.String())
			assert.Equal(t, "Closing default connection...", lines[len(lines)-1])
			assert.NotContains(t, buf.String(), "Loading")
		})
	}
}

// databaseSource overrides the connection hooks.
type databaseSource struct {
	out        io.Writer
	connectErr error
}

func (s databaseSource) Connect(context.Context) error {
	if s.connectErr != nil {
		return s.connectErr
	}
	fmt.Fprintln(s.out, "Opening database connection...")
	return nil
}

func (s databaseSource) Disconnect(context.Context) {
	fmt.Fprintln(s.out, "Closing database connection...")
}

func (s databaseSource) Extract(context.Context) ([]string, error) { return []string{"Zoe"}, nil }

func (s databaseSource) Transform(_ context.Context, raw []string) ([]good.Person, error) {
	return []good.Person{{Name: raw[0], Age: 33}}, nil
}

func TestImporter_ConnectorHook(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, good.Importer{Out: &buf}.Run(context.Background(), databaseSource{out: &buf}))
	assert.Equal(t, []string{
		"Opening database connection...",
		"Loading Zoe, Age: 33",
		"Closing database connection...",
	}, demotest.Lines(buf.String()))
}

func TestImporter_ConnectFailureSkipsEverything(t *testing.T) {
	t.Parallel()

	refused := errors.New("refused")
	var buf bytes.Buffer
	err := good.Importer{Out: &buf}.Run(context.Background(), databaseSource{out: &buf, connectErr: refused})
	require.ErrorIs(t, err, refused)
	assert.Empty(t, buf.String())
}
