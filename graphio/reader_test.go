package graphio_test

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/critpath/core"
	"github.com/katalvlaran/critpath/graphio"
)

const sampleZeroBased = `5 5
0 1 1
1 2 1
1 3 1
2 4 1
3 4 1
`

func TestReadGraph_ZeroBased(t *testing.T) {
	g, err := graphio.ReadGraph(strings.NewReader(sampleZeroBased))
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3, 4}, g.Vertices())
	assert.Equal(t, 5, g.EdgeCount())

	e, err := g.FindEdge(4)
	require.NoError(t, err)
	assert.Equal(t, core.Edge{ID: 4, U: 2, V: 4, Weight: 1}, e)

	arcs, err := g.Arcs(1)
	require.NoError(t, err)
	assert.Equal(t, []core.Arc{{EdgeID: 1, To: 0, Weight: 1}, {EdgeID: 2, To: 2, Weight: 1}, {EdgeID: 3, To: 3, Weight: 1}}, arcs)
}

func TestReadGraph_OneBasedWithBlankLines(t *testing.T) {
	in := "\n  4 2 \n\n1 4 7\n\n 4 2 0\n"
	g, err := graphio.ReadGraph(strings.NewReader(in), graphio.WithVertexBase(1))
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4}, g.Vertices())
	maxID, ok := g.MaxVertex()
	require.True(t, ok)
	assert.Equal(t, 4, maxID)

	e, err := g.FindEdge(2)
	require.NoError(t, err)
	assert.Equal(t, core.Edge{ID: 2, U: 4, V: 2, Weight: 0}, e)
}

func TestReadGraph_TrailingContentIgnored(t *testing.T) {
	g, err := graphio.ReadGraph(strings.NewReader("2 1\n0 1 3\nthis is not read\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestReadGraph_EmptyGraph(t *testing.T) {
	g, err := graphio.ReadGraph(strings.NewReader("0 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, g.VertexCount())
}

func TestReadGraph_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantMsg string
	}{
		{"empty input", "", "unexpected end of input"},
		{"short header", "3\n", "line 1: expected header"},
		{"non-integer count", "3 x\n", "line 1: edge count \"x\""},
		{"negative count", "-1 0\n", "line 1: vertex count \"-1\""},
		{"missing edge lines", "3 2\n0 1 1\n", "unexpected end of input, expected edge 2"},
		{"too many fields", "3 1\n0 1 1 9\n", "line 2: expected edge 1"},
		{"non-integer vertex", "3 1\n0 b 1\n", "line 2: vertex \"b\""},
		{"vertex out of range", "3 1\n\n0 3 1\n", "line 3: vertex 3 outside [0, 2]"},
		{"negative weight", "3 1\n0 1 -4\n", "line 2: weight \"-4\""},
		{"weight overflow", "3 1\n0 1 99999999999999999999\n", "line 2: weight"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := graphio.ReadGraph(strings.NewReader(tt.in))
			require.ErrorIs(t, err, graphio.ErrMalformedInput)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestReadGraph_OneBasedRejectsZero(t *testing.T) {
	_, err := graphio.ReadGraph(strings.NewReader("3 1\n0 1 1\n"), graphio.WithVertexBase(1))
	require.ErrorIs(t, err, graphio.ErrMalformedInput)
	assert.Contains(t, err.Error(), "outside [1, 3]")
}

func TestReadGraph_InvalidBase(t *testing.T) {
	_, err := graphio.ReadGraph(strings.NewReader(sampleZeroBased), graphio.WithVertexBase(2))
	require.ErrorIs(t, err, graphio.ErrInvalidVertexBase)
}

func TestReadGraph_ReaderError(t *testing.T) {
	boom := errors.New("boom")
	_, err := graphio.ReadGraph(iotest.ErrReader(boom))
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, graphio.ErrMalformedInput)
}
