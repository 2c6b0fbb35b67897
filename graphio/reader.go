// Package graphio reads graphs in the "N M / u v w" text format and writes
// critical-edge reports as text or JSON.
//
// Input format:
//
//	N M          vertex count and edge count
//	u v w        M lines, one undirected edge each (weight w >= 0)
//
// Edge IDs are assigned 1..M in input order. Blank lines are skipped; anything after the
// M-th edge line is ignored.
package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/critpath/core"
)

// Sentinel errors returned by graphio.
var (
	// ErrMalformedInput indicates the input does not follow the N M / u v w format.
	ErrMalformedInput = errors.New("graphio: malformed input")

	// ErrInvalidVertexBase indicates a vertex base other than 0 or 1.
	ErrInvalidVertexBase = errors.New("graphio: vertex base must be 0 or 1")

	// ErrUnknownFormat indicates an unsupported report format.
	ErrUnknownFormat = errors.New("graphio: unknown report format")
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// ReadOptions configures ReadGraph.
type ReadOptions struct {
	// VertexBase is the ID of the first vertex: 0 gives 0..N-1, 1 gives 1..N.
	VertexBase int
}

// ReadOption represents a functional option for configuring ReadGraph.
type ReadOption func(*ReadOptions)

// WithVertexBase selects 0-based or 1-based vertex IDs.
func WithVertexBase(base int) ReadOption {
	return func(o *ReadOptions) {
		o.VertexBase = base
	}
}

// DefaultReadOptions returns 0-based vertex IDs.
func DefaultReadOptions() ReadOptions {
	return ReadOptions{VertexBase: 0}
}

// ReadGraph parses r into a new core.Graph.
//
// Every error other than an I/O failure wraps ErrMalformedInput and names the offending line.
func ReadGraph(r io.Reader, opts ...ReadOption) (*core.Graph, error) {
	cfg := DefaultReadOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.VertexBase != 0 && cfg.VertexBase != 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidVertexBase, cfg.VertexBase)
	}

	p := &parser{sc: bufio.NewScanner(r)}
	p.sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	// 1) Header
	header, err := p.next(2, "header \"N M\"")
	if err != nil {
		return nil, err
	}
	n, err := p.count(header[0], "vertex count")
	if err != nil {
		return nil, err
	}
	m, err := p.count(header[1], "edge count")
	if err != nil {
		return nil, err
	}

	// 2) Vertices
	g := core.NewGraph()
	lo, hi := cfg.VertexBase, cfg.VertexBase+n-1
	for v := lo; v <= hi; v++ {
		g.AddVertex(v)
	}

	// 3) Edges, IDs 1..M
	for id := 1; id <= m; id++ {
		fields, err := p.next(3, fmt.Sprintf("edge %d \"u v w\"", id))
		if err != nil {
			return nil, err
		}
		u, err := p.vertex(fields[0], lo, hi)
		if err != nil {
			return nil, err
		}
		v, err := p.vertex(fields[1], lo, hi)
		if err != nil {
			return nil, err
		}
		w, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil || w < 0 {
			return nil, p.errorf("weight %q is not a non-negative integer", fields[2])
		}
		if err := g.AddEdge(u, v, w, id); err != nil {
			return nil, p.errorf("%v", err)
		}
	}

	return g, nil
}

// parser tracks the scanner and the current line number for error messages.
type parser struct {
	sc   *bufio.Scanner
	line int
}

// next returns the fields of the next non-blank line, which must contain exactly want fields.
func (p *parser) next(want int, what string) ([]string, error) {
	for p.sc.Scan() {
		p.line++
		fields := strings.Fields(p.sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != want {
			return nil, p.errorf("expected %s, got %d fields", what, len(fields))
		}

		return fields, nil
	}
	if err := p.sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio: read line %d: %w", p.line+1, err)
	}

	return nil, fmt.Errorf("%w: unexpected end of input, expected %s", ErrMalformedInput, what)
}

// count parses a non-negative integer.
func (p *parser) count(tok, what string) (int, error) {
	x, err := strconv.Atoi(tok)
	if err != nil || x < 0 {
		return 0, p.errorf("%s %q is not a non-negative integer", what, tok)
	}

	return x, nil
}

// vertex parses a vertex ID and checks it lies in [lo, hi].
func (p *parser) vertex(tok string, lo, hi int) (int, error) {
	x, err := strconv.Atoi(tok)
	if err != nil {
		return 0, p.errorf("vertex %q is not an integer", tok)
	}
	if x < lo || x > hi {
		return 0, p.errorf("vertex %d outside [%d, %d]", x, lo, hi)
	}

	return x, nil
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformedInput, p.line, fmt.Sprintf(format, args...))
}
