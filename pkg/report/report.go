// Package report renders validation reports and computes summary statistics.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"sigs.k8s.io/yaml"

	"github.com/mcpchecker/agentcheck/pkg/agentdoc"
)

// CompletionLine is printed after every text report.
const CompletionLine = "Done checking agents."

// Format selects how a report is rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user supplied output format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (expected text, json or yaml)", s)
	}
}

// Stats holds computed statistics for a validation run.
type Stats struct {
	DocumentsTotal   int     `json:"documentsTotal"`
	DocumentsPassed  int     `json:"documentsPassed"`
	DiagnosticsTotal int     `json:"diagnosticsTotal"`
	PassRate         float64 `json:"passRate"`
}

// CalculateStats computes statistics from a validation report.
func CalculateStats(r *agentdoc.Report) Stats {
	stats := Stats{
		DocumentsTotal: len(r.Documents),
	}

	for _, doc := range r.Documents {
		if doc.Passed() {
			stats.DocumentsPassed++
		}
		stats.DiagnosticsTotal += len(doc.Diagnostics)
	}

	if stats.DocumentsTotal > 0 {
		stats.PassRate = float64(stats.DocumentsPassed) / float64(stats.DocumentsTotal)
	}

	return stats
}

type structuredReport struct {
	Documents []*agentdoc.DocumentResult `json:"documents"`
	Stats     Stats                      `json:"stats"`
}

// Write renders r to w in the given format.
func Write(w io.Writer, r *agentdoc.Report, format Format) error {
	switch format {
	case FormatJSON, FormatYAML:
		return writeStructured(w, r, format)
	default:
		for _, doc := range r.Documents {
			WriteDocument(w, doc)
		}
		return WriteCompletion(w)
	}
}

// WriteDocument prints one line per diagnostic of doc.
func WriteDocument(w io.Writer, doc *agentdoc.DocumentResult) {
	red := color.New(color.FgRed)
	for _, d := range doc.Diagnostics {
		_, _ = red.Fprintln(w, d.String())
	}
}

// WriteCompletion prints the line that marks the end of a text report.
func WriteCompletion(w io.Writer) error {
	_, err := fmt.Fprintln(w, CompletionLine)
	return err
}

func writeStructured(w io.Writer, r *agentdoc.Report, format Format) error {
	out := structuredReport{
		Documents: r.Documents,
		Stats:     CalculateStats(r),
	}

	var (
		data []byte
		err  error
	)
	if format == FormatYAML {
		data, err = yaml.Marshal(out)
	} else {
		data, err = json.MarshalIndent(out, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s report: %w", format, err)
	}

	_, err = w.Write(data)
	return err
}

// Load reads a JSON report written with FormatJSON.
func Load(path string) (*agentdoc.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report file: %w", err)
	}

	var in structuredReport
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("failed to parse report JSON: %w", err)
	}

	return &agentdoc.Report{Documents: in.Documents}, nil
}
