package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var (
	elementsBackend  string
	elementsFormat   string
	elementsTabWidth int
)

var elementsCmd = &cobra.Command{
	Use:   "elements [file]",
	Short: "List every text element with its position",
	Long: `Scan the file (or stdin) and print one row per text element: offset,
line, column, display width, byte length and the quoted text.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runElements,
}

func init() {
	elementsCmd.Flags().StringVar(&elementsBackend, "backend", backendBytes, "Scanner backend: bytes, string")
	elementsCmd.Flags().StringVar(&elementsFormat, "format", formatTable, "Output format: table, yaml, json")
	elementsCmd.Flags().IntVar(&elementsTabWidth, "tab-width", 4, "Columns per tab stop for display widths")
}

func runElements(cmd *cobra.Command, args []string) error {
	if elementsTabWidth < 1 {
		return fmt.Errorf("--tab-width must be at least 1, got %d", elementsTabWidth)
	}
	buf, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	records, err := scanRecords(buf, elementsBackend, elementsTabWidth)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if elementsFormat != formatTable {
		return writeStructured(out, elementsFormat, records)
	}

	enabled, err := colorEnabled(colorMode, out)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, elementsTable(newRenderer(out, enabled), records).Render())
	return nil
}

func elementsTable(r *lipgloss.Renderer, records []record) *table.Table {
	header := r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	cell := r.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.NewStyle().Foreground(lipgloss.Color("8"))).
		Headers("OFFSET", "LINE", "COL", "WIDTH", "BYTES", "TEXT").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	for _, rec := range records {
		t.Row(
			strconv.Itoa(rec.Offset),
			strconv.Itoa(rec.Line),
			strconv.Itoa(rec.Column),
			strconv.Itoa(rec.Width),
			strconv.Itoa(rec.Bytes),
			strconv.Quote(rec.Text),
		)
	}
	return t
}
