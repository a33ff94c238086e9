package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/df07/go-hemisphere-sampler/pkg/core"
	"github.com/df07/go-hemisphere-sampler/pkg/hemisphere"
	"github.com/df07/go-hemisphere-sampler/pkg/sequence"
)

// SampleOutput is the JSON document written for -format json
type SampleOutput struct {
	Strategy   string            `json:"strategy"`
	Steps      int               `json:"steps"`
	Table      string            `json:"table,omitempty"`
	Count      int               `json:"count"`
	Normalized bool              `json:"normalized"`
	Caveat     string            `json:"caveat,omitempty"`
	Directions []Direction       `json:"directions"`
	Stats      *hemisphere.Stats `json:"stats,omitempty"`
}

// Direction is the JSON form of a sampled direction
type Direction struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func main() {
	// Parse command line flags
	strategyName := flag.String("strategy", "cosine", "Sampling strategy: "+strategyList())
	steps := flag.Int("steps", 7, "Grid resolution per axis")
	table := flag.String("table", "", "Point table for table strategies: "+strings.Join(sequence.TableNames(), ", ")+", or a CSV file path")
	format := flag.String("format", "csv", "Output format: 'csv' or 'json'")
	out := flag.String("out", "", "Output file ('-' for stdout). Defaults to output/<strategy>/samples_<timestamp>.<format>")
	showStats := flag.Bool("stats", false, "Print distribution statistics")
	bins := flag.Int("bins", hemisphere.DefaultHistogramBins, "Elevation histogram bins for -stats")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Hemisphere Sampler")
		fmt.Println("Usage: hemisphere-sampler [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available strategies:")
		fmt.Println("  uniform             - Rings from pole to equator, z stepping linearly")
		fmt.Println("  uniform-z-perturbed - Uniform rings with a sinusoidal z offset (not unit length)")
		fmt.Println("  cosine              - Cosine-weighted directions from a stratified grid")
		fmt.Println("  cosine-table        - Cosine-weighted directions from a low-discrepancy table")
		fmt.Println("  fibonacci           - Directions from a (theta, phi) Fibonacci spiral table")
		return
	}

	logger := core.NewDefaultLogger()
	if *out == "-" {
		logger = &stderrLogger{}
	}

	if err := run(logger, *strategyName, *steps, *table, *format, *out, *showStats, *bins); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run generates one sample set and writes it out
func run(logger core.Logger, strategyName string, steps int, table, format, out string, showStats bool, bins int) error {
	strategy, err := hemisphere.ParseStrategy(strategyName)
	if err != nil {
		return err
	}
	if format != "csv" && format != "json" {
		return fmt.Errorf("unknown output format %q: use 'csv' or 'json'", format)
	}

	params, err := hemisphere.NewParams(strategy, steps, table)
	if err != nil {
		return err
	}
	switch {
	case !strategy.NeedsTable():
		table = ""
	case table == "":
		table = strategy.DefaultTable()
	}

	logger.Printf("Generating %s samples with %d steps...\n", strategy, steps)
	startTime := time.Now()
	directions, err := hemisphere.Generate(strategy, params)
	if err != nil {
		return err
	}
	logger.Printf("Generated %d directions in %v\n", len(directions), time.Since(startTime))

	if caveat := strategy.Caveat(); caveat != "" {
		logger.Printf("Note: %s\n", caveat)
	}

	var stats *hemisphere.Stats
	if showStats {
		s := hemisphere.Analyze(directions, bins)
		stats = &s
		printStats(logger, s)
	}

	if out == "" {
		outputDir := createOutputDir(strategy)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %v", err)
		}
		timestamp := time.Now().Format("20060102_150405")
		out = filepath.Join(outputDir, fmt.Sprintf("samples_%s.%s", timestamp, format))
	}

	write := func(w io.Writer) error {
		if format == "json" {
			return writeJSON(w, SampleOutput{
				Strategy:   strategy.String(),
				Steps:      steps,
				Table:      table,
				Count:      len(directions),
				Normalized: strategy.Normalizes(),
				Caveat:     strategy.Caveat(),
				Directions: toDirections(directions),
				Stats:      stats,
			})
		}
		return writeCSV(w, directions)
	}

	if out == "-" {
		err = write(os.Stdout)
	} else {
		file, createErr := os.Create(out)
		if createErr != nil {
			return fmt.Errorf("failed to create output file: %v", createErr)
		}
		err = writeAndClose(file, write)
	}
	if err != nil {
		return fmt.Errorf("failed to write samples: %v", err)
	}

	if out != "-" {
		logger.Printf("Samples saved as %s\n", out)
	}
	return nil
}

// createOutputDir returns the per-strategy output directory
func createOutputDir(strategy hemisphere.Strategy) string {
	return filepath.Join("output", strategy.String())
}

// writeCSV writes one x,y,z row per direction under a header
func writeCSV(w io.Writer, directions []core.Vec3) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"x", "y", "z"}); err != nil {
		return err
	}
	for _, d := range directions {
		record := []string{formatFloat(d.X), formatFloat(d.Y), formatFloat(d.Z)}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// writeAndClose runs write against wc and closes it. A close failure is
// reported when the write itself succeeded.
func writeAndClose(wc io.WriteCloser, write func(io.Writer) error) error {
	err := write(wc)
	if closeErr := wc.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}

// writeJSON writes the sample document as indented JSON
func writeJSON(w io.Writer, output SampleOutput) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func toDirections(directions []core.Vec3) []Direction {
	out := make([]Direction, len(directions))
	for i, d := range directions {
		out[i] = Direction{X: d.X, Y: d.Y, Z: d.Z}
	}
	return out
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func printStats(logger core.Logger, stats hemisphere.Stats) {
	logger.Printf("Directions: %d (below horizon %d, degenerate %d)\n", stats.Count, stats.BelowHorizon, stats.Degenerate)
	logger.Printf("Mean z: %.4f, mean elevation: %.2f°\n", stats.MeanZ, stats.MeanElevation*180/math.Pi)
	logger.Printf("Max unit-length error: %.3g\n", stats.MaxLengthError)
	logger.Printf("Min angular separation: %.4f rad\n", stats.MinSeparation)
	logger.Printf("Elevation histogram (z over [0,1]):\n")
	width := 1.0 / float64(len(stats.ZHistogram))
	for i, count := range stats.ZHistogram {
		logger.Printf("  [%.2f, %.2f) %4.0f %s\n", float64(i)*width, float64(i+1)*width, count, strings.Repeat("#", int(count)))
	}
}

func strategyList() string {
	names := make([]string, 0, len(hemisphere.Strategies()))
	for _, s := range hemisphere.Strategies() {
		names = append(names, s.String())
	}
	return strings.Join(names, ", ")
}

// stderrLogger keeps progress messages off stdout when samples are written there
type stderrLogger struct{}

func (l *stderrLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
}
