package graphio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/critpath/core"
	"github.com/katalvlaran/critpath/critical"
)

// Format selects the report encoding.
type Format string

const (
	// FormatText prints the three "Parte" lines.
	FormatText Format = "text"
	// FormatJSON prints one indented JSON object.
	FormatJSON Format = "json"
)

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// jsonReport is the JSON shape of a critical.Report. Distance is null when the target
// is unreachable; the path count is a decimal string since it may exceed 2^53.
type jsonReport struct {
	Source         int    `json:"source"`
	Target         int    `json:"target"`
	Distance       *int64 `json:"distance"`
	Reachable      bool   `json:"reachable"`
	PathCount      string `json:"path_count"`
	OnShortestPath []int  `json:"on_shortest_path"`
	Critical       []int  `json:"critical"`
}

// WriteReport encodes r to w in the given format.
//
// Text output:
//
//	Parte 1: <distance, or inf>
//	Parte 2: <edge IDs on some shortest path>
//	Parte 3: <critical edge IDs, or -1>
func WriteReport(w io.Writer, r *critical.Report, format Format) error {
	switch format {
	case FormatText:
		return writeText(w, r)
	case FormatJSON:
		return writeJSON(w, r)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

func writeText(w io.Writer, r *critical.Report) error {
	dist := "inf"
	if r.Reachable {
		dist = strconv.FormatInt(r.Distance, 10)
	}
	_, err := fmt.Fprintf(w, "Parte 1: %s\nParte 2: %s\nParte 3: %s\n",
		dist, joinIDs(r.OnShortestPath), joinIDs(r.CriticalIDs()))
	if err != nil {
		return fmt.Errorf("graphio: write text report: %w", err)
	}

	return nil
}

func writeJSON(w io.Writer, r *critical.Report) error {
	out := jsonReport{
		Source:         r.Source,
		Target:         r.Target,
		Reachable:      r.Reachable,
		PathCount:      "0",
		OnShortestPath: r.OnShortestPath,
		Critical:       r.CriticalIDs(),
	}
	if r.Reachable {
		d := r.Distance
		out.Distance = &d
	}
	if r.PathCount != nil {
		out.PathCount = r.PathCount.String()
	}
	if out.OnShortestPath == nil {
		out.OnShortestPath = []int{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("graphio: write json report: %w", err)
	}

	return nil
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}

	return strings.Join(parts, " ")
}

// WriteGraph writes g in the input format read by ReadGraph with the same vertex base.
// N is the largest vertex ID minus base plus one; edges are written in ascending ID
// order, so ReadGraph numbers them 1..M again.
func WriteGraph(w io.Writer, g *core.Graph, base int) error {
	if base != 0 && base != 1 {
		return fmt.Errorf("%w: %d", ErrInvalidVertexBase, base)
	}
	n := 0
	if maxID, ok := g.MaxVertex(); ok {
		if minID := g.Vertices()[0]; minID < base {
			return fmt.Errorf("graphio: vertex %d below base %d", minID, base)
		}
		n = maxID - base + 1
	}

	bw := bufio.NewWriter(w)
	edges := g.Edges()
	fmt.Fprintf(bw, "%d %d\n", n, len(edges))
	for _, e := range edges {
		fmt.Fprintf(bw, "%d %d %d\n", e.U, e.V, e.Weight)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("graphio: write graph: %w", err)
	}

	return nil
}
