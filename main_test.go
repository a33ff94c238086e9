package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-hemisphere-sampler/pkg/core"
	"github.com/df07/go-hemisphere-sampler/pkg/hemisphere"
)

// captureLogger collects log output for assertions
type captureLogger struct {
	messages []string
}

func (l *captureLogger) Printf(format string, args ...interface{}) {
	l.messages = append(l.messages, format)
}

func TestRun(t *testing.T) {
	tests := []struct {
		name        string
		strategy    string
		steps       int
		table       string
		format      string
		expectRows  int
		expectError bool
	}{
		{"uniform csv", "uniform", 7, "", "csv", 50, false},
		{"z perturbed csv", "uniform-z-perturbed", 3, "", "csv", 10, false},
		{"cosine json", "cosine", 7, "", "json", 64, false},
		{"cosine table default", "cosine-table", 7, "", "csv", 64, false},
		{"cosine table golden", "cosine-table", 7, "golden-ratio", "json", 64, false},
		{"fibonacci", "fibonacci", 4, "", "csv", 25, false},

		{"unknown strategy", "random", 7, "", "csv", 0, true},
		{"zero steps", "cosine", 0, "", "csv", 0, true},
		{"unknown format", "cosine", 7, "", "xml", 0, true},
		{"missing table file", "cosine-table", 2, "missing.csv", "csv", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "samples."+tt.format)
			logger := &captureLogger{}

			err := run(logger, tt.strategy, tt.steps, tt.table, tt.format, out, true, 4)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for strategy %q steps %d", tt.strategy, tt.steps)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			data, err := os.ReadFile(out)
			if err != nil {
				t.Fatalf("Failed to read output: %v", err)
			}

			switch tt.format {
			case "csv":
				records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
				if err != nil {
					t.Fatalf("Invalid CSV output: %v", err)
				}
				if len(records) != tt.expectRows+1 {
					t.Errorf("Expected %d rows plus header, got %d", tt.expectRows, len(records))
				}
			case "json":
				var output SampleOutput
				if err := json.Unmarshal(data, &output); err != nil {
					t.Fatalf("Invalid JSON output: %v", err)
				}
				if output.Count != tt.expectRows || len(output.Directions) != tt.expectRows {
					t.Errorf("Expected %d directions, got count %d and %d entries", tt.expectRows, output.Count, len(output.Directions))
				}
				if output.Stats == nil {
					t.Error("Expected stats in JSON output when requested")
				}
			}

			if len(logger.messages) == 0 {
				t.Error("Expected progress messages to be logged")
			}
		})
	}
}

func TestRun_CaveatLogged(t *testing.T) {
	logger := &captureLogger{}
	out := filepath.Join(t.TempDir(), "samples.csv")
	if err := run(logger, "uniform-z-perturbed", 2, "", "csv", out, false, 0); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	found := false
	for _, msg := range logger.messages {
		if strings.HasPrefix(msg, "Note:") {
			found = true
		}
	}
	if !found {
		t.Error("Expected the squared-length caveat to be logged")
	}
}

func TestRun_RejectsNonFiniteTable(t *testing.T) {
	dir := t.TempDir()
	tablePath := filepath.Join(dir, "table.csv")
	if err := os.WriteFile(tablePath, []byte("0.1,0.2\n0.2,0.3\nNaN,NaN\n0.4,Inf\n"), 0644); err != nil {
		t.Fatalf("Failed to write table file: %v", err)
	}
	out := filepath.Join(dir, "samples.json")

	if err := run(&captureLogger{}, "cosine-table", 1, tablePath, "json", out, false, 0); err == nil {
		t.Fatal("Expected error for a table with non-finite rows")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("Expected no output file after a rejected table, stat returned %v", err)
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	directions := []core.Vec3{core.NewVec3(0, 0, 1), core.NewVec3(0.5, -0.25, 0.125)}

	if err := writeCSV(&buf, directions); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := "x,y,z\n0.000000,0.000000,1.000000\n0.500000,-0.250000,0.125000\n"
	if buf.String() != expected {
		t.Errorf("Expected:\n%s\ngot:\n%s", expected, buf.String())
	}
}

// failingCloser records writes and fails on Close
type failingCloser struct {
	bytes.Buffer
	closeErr error
	closed   bool
}

func (f *failingCloser) Close() error {
	f.closed = true
	return f.closeErr
}

func TestWriteAndClose(t *testing.T) {
	errDiskFull := errors.New("disk full")
	errWrite := errors.New("write failed")

	tests := []struct {
		name     string
		closeErr error
		writeErr error
		expected error
	}{
		{"clean", nil, nil, nil},
		{"close fails after good write", errDiskFull, nil, errDiskFull},
		{"write error wins over close error", errDiskFull, errWrite, errWrite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wc := &failingCloser{closeErr: tt.closeErr}
			err := writeAndClose(wc, func(w io.Writer) error {
				if tt.writeErr != nil {
					return tt.writeErr
				}
				return writeCSV(w, []core.Vec3{core.NewVec3(0, 0, 1)})
			})

			if !errors.Is(err, tt.expected) || (tt.expected == nil && err != nil) {
				t.Errorf("Expected error %v, got %v", tt.expected, err)
			}
			if !wc.closed {
				t.Error("Expected writer to be closed")
			}
		})
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	output := SampleOutput{
		Strategy:   hemisphere.CosineWeighted.String(),
		Steps:      1,
		Count:      1,
		Normalized: true,
		Directions: toDirections([]core.Vec3{core.NewVec3(0, 0, 1)}),
	}

	if err := writeJSON(&buf, output); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var decoded SampleOutput
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if decoded.Strategy != "cosine" || decoded.Directions[0].Z != 1 {
		t.Errorf("Unexpected decoded output %+v", decoded)
	}
	if strings.Contains(buf.String(), "caveat") {
		t.Error("Expected empty caveat to be omitted")
	}
}

func TestCreateOutputDir(t *testing.T) {
	tests := []struct {
		strategy     hemisphere.Strategy
		expectedBase string
	}{
		{hemisphere.Uniform, "uniform"},
		{hemisphere.CosineWeightedFromTable, "cosine-table"},
		{hemisphere.FibonacciSpiral, "fibonacci"},
	}

	for _, tt := range tests {
		t.Run(tt.expectedBase, func(t *testing.T) {
			outputDir := createOutputDir(tt.strategy)
			if filepath.Base(outputDir) != tt.expectedBase {
				t.Errorf("Expected directory ending in %q, got %q", tt.expectedBase, outputDir)
			}
			if !strings.HasPrefix(outputDir, "output") {
				t.Errorf("Expected output directory under 'output', got %q", outputDir)
			}
		})
	}
}
