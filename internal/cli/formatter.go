package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/dirsize/internal/dirsize"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// PrintJSON outputs the result in JSON format.
func PrintJSON(result *dirsize.Result, writer io.Writer) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintRaw outputs the total byte count only.
func PrintRaw(result *dirsize.Result, writer io.Writer) error {
	_, err := fmt.Fprintln(writer, result.TotalBytes)

	return err
}

// PrintHuman outputs the total in decimal units followed by the exact byte count.
// Verbose output adds statistics and lists every error on errWriter; otherwise
// a tainted result only prints a warning.
//
//nolint:forbidigo // This function prints output to the console.
func PrintHuman(result *dirsize.Result, writer, errWriter io.Writer, verbose bool) error {
	if _, err := fmt.Fprintf(writer, "%s (%d bytes)\n",
		humanize.Bytes(result.TotalBytes), result.TotalBytes); err != nil {
		return err
	}

	if !verbose {
		if result.Tainted() {
			fmt.Fprintln(writer, "Warning, results may be tainted. Try running with --verbose.")
		}

		return nil
	}

	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintln(w, "\nStats:\t\t")
	fmt.Fprintf(w, "Files:\t%d\n", result.Files)
	fmt.Fprintf(w, "Directories:\t%d\n", result.Directories)
	fmt.Fprintf(w, "Size policy:\t%s\n", result.Policy)
	fmt.Fprintf(w, "Errors:\t%d\n", len(result.Errors))
	fmt.Fprintf(w, "\nElapsed:\t%v\n", result.Elapsed)

	if err := w.Flush(); err != nil {
		return err
	}

	for _, err := range result.Errors {
		fmt.Fprintf(errWriter, "dirsize: %v\n", err)
	}

	return nil
}
