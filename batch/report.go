package batch

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"
)

// Format selects how a Report is written.
type Format int

const (
	// FormatText renders a bordered table followed by a total line.
	FormatText Format = iota
	// FormatJSON writes indented JSON.
	FormatJSON
	// FormatYAML writes YAML.
	FormatYAML
)

// String returns the name accepted by ParseFormat.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// ParseFormat maps "text", "json" or "yaml" to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Encode writes r to w in format f.
func (r *Report) Encode(w io.Writer, f Format) error {
	switch f {
	case FormatText:
		return r.encodeText(w)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
}

func (r *Report) encodeText(w io.Writer) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("CODE", "VALUE", "PRESSES", "COMPLEXITY")
	for _, res := range r.Results {
		t.Row(
			res.Code,
			strconv.FormatUint(res.Value, 10),
			strconv.FormatUint(res.Presses, 10),
			strconv.FormatUint(res.Complexity, 10),
		)
	}
	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "total: %d (depth %d, %s, run %s)\n", r.Total, r.Depth, r.Strategy, r.RunID)
	return err
}
