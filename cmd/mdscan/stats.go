package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/owl-domain/markdown/internal/grapheme"
	"github.com/spf13/cobra"
)

var (
	statsBackend  string
	statsFormat   string
	statsTabWidth int
)

// summary holds the totals printed by the stats command.
type summary struct {
	Bytes       int `json:"bytes" yaml:"bytes"`
	Elements    int `json:"elements" yaml:"elements"`
	Lines       int `json:"lines" yaml:"lines"`
	WidestLine  int `json:"widest_line" yaml:"widest_line"`
	Whitespace  int `json:"whitespace" yaml:"whitespace"`
	Punctuation int `json:"punctuation" yaml:"punctuation"`
}

var statsCmd = &cobra.Command{
	Use:   "stats [file]",
	Short: "Summarize the text elements of the input",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsBackend, "backend", backendBytes, "Scanner backend: bytes, string")
	statsCmd.Flags().StringVar(&statsFormat, "format", formatTable, "Output format: table, yaml, json")
	statsCmd.Flags().IntVar(&statsTabWidth, "tab-width", 4, "Columns per tab stop for display widths")
}

func runStats(cmd *cobra.Command, args []string) error {
	if statsTabWidth < 1 {
		return fmt.Errorf("--tab-width must be at least 1, got %d", statsTabWidth)
	}
	buf, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	records, err := scanRecords(buf, statsBackend, statsTabWidth)
	if err != nil {
		return err
	}

	sum := summarize(len(buf), records)
	out := cmd.OutOrStdout()
	if statsFormat != formatTable {
		return writeStructured(out, statsFormat, sum)
	}

	enabled, err := colorEnabled(colorMode, out)
	if err != nil {
		return err
	}
	color.NoColor = !enabled
	writeSummary(out, sum)
	return nil
}

func summarize(size int, records []record) summary {
	sum := summary{Bytes: size, Elements: len(records)}
	if len(records) > 0 {
		sum.Lines = 1
	}

	width := 0
	for i, rec := range records {
		switch {
		case grapheme.IsLineBreak(rec.Text):
			sum.WidestLine = max(sum.WidestLine, width)
			width = 0
			// A trailing break does not open a new line.
			if i+1 < len(records) {
				sum.Lines++
			}
			continue
		case grapheme.IsSpace(rec.Text):
			sum.Whitespace++
		case grapheme.IsPunct(rec.Text):
			sum.Punctuation++
		}
		width += rec.Width
	}
	sum.WidestLine = max(sum.WidestLine, width)
	return sum
}

func writeSummary(out io.Writer, sum summary) {
	label := color.New(color.Bold)
	value := color.New(color.FgHiGreen)

	rows := []struct {
		name string
		n    int
	}{
		{"Bytes", sum.Bytes},
		{"Elements", sum.Elements},
		{"Lines", sum.Lines},
		{"Widest line", sum.WidestLine},
		{"Whitespace", sum.Whitespace},
		{"Punctuation", sum.Punctuation},
	}
	for _, row := range rows {
		fmt.Fprintf(out, "%s %s\n", label.Sprintf("%-12s", row.name+":"), value.Sprint(row.n))
	}
}
