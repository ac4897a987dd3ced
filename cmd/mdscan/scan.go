package main

import (
	"fmt"
	"log/slog"

	"github.com/owl-domain/markdown/internal/grapheme"
	"github.com/owl-domain/markdown/parsing"
)

const (
	backendBytes  = "bytes"
	backendString = "string"
)

// record is one scanned element as printed by the elements command.
type record struct {
	Offset int    `json:"offset" yaml:"offset"`
	Line   int    `json:"line" yaml:"line"`
	Column int    `json:"column" yaml:"column"`
	Width  int    `json:"width" yaml:"width"`
	Bytes  int    `json:"bytes" yaml:"bytes"`
	Text   string `json:"text" yaml:"text"`
}

// scanRecords walks buf with the chosen backend and records every element.
func scanRecords(buf []byte, backend string, tabWidth int) ([]record, error) {
	var records []record
	collect := func(s parsing.Scanner) error {
		records = walk(s, tabWidth)
		return nil
	}

	var err error
	switch backend {
	case backendBytes:
		err = parsing.Scan(buf, func(s *parsing.ByteScanner) error { return collect(s) })
	case backendString:
		err = parsing.ScanString(string(buf), func(s *parsing.StringScanner) error { return collect(s) })
	default:
		return nil, fmt.Errorf("unknown backend %q: want %s or %s", backend, backendBytes, backendString)
	}
	if err != nil {
		return nil, err
	}
	slog.Debug("scanned input", "backend", backend, "elements", len(records))
	return records, nil
}

func walk(s parsing.Scanner, tabWidth int) []record {
	records := make([]record, 0, s.Len())
	visualCol := 0
	for s.HasRemaining() {
		e := s.Current()
		pos := s.Position()
		text := e.String()
		width := grapheme.Width(text, visualCol, tabWidth)

		records = append(records, record{
			Offset: pos.Offset(),
			Line:   pos.Line(),
			Column: pos.Column(),
			Width:  width,
			Bytes:  e.Len(),
			Text:   text,
		})

		s.Advance()
		if grapheme.IsLineBreak(text) {
			s.MarkNewLine()
			visualCol = 0
			continue
		}
		visualCol += width
	}
	return records
}
