package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/muesli/termenv"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatYAML  = "yaml"
	formatJSON  = "json"
)

// colorEnabled resolves --color for out. auto means a terminal with
// NO_COLOR unset.
func colorEnabled(mode string, out io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		f, ok := out.(*os.File)
		if !ok || !term.IsTerminal(int(f.Fd())) {
			return false, nil
		}
		return os.Getenv("NO_COLOR") == "", nil
	default:
		return false, fmt.Errorf("unknown color mode %q: want auto, always or never", mode)
	}
}

// newRenderer returns a lipgloss renderer for out and sets the fatih/color
// switch to match.
func newRenderer(out io.Writer, enabled bool) *lipgloss.Renderer {
	color.NoColor = !enabled
	r := lipgloss.NewRenderer(out)
	if enabled {
		profile := termenv.NewOutput(out).EnvColorProfile()
		if profile == termenv.Ascii {
			profile = termenv.ANSI256
		}
		r.SetColorProfile(profile)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// writeStructured encodes v as YAML or JSON.
func writeStructured(out io.Writer, format string, v any) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case formatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q: want %s, %s or %s", format, formatTable, formatYAML, formatJSON)
	}
}
