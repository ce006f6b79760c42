package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/kruskals/core"
	"github.com/katalvlaran/kruskals/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIndex(t *testing.T, labels ...string) *core.Index {
	t.Helper()
	idx := core.NewIndex()
	for _, l := range labels {
		_, err := idx.Intern(l)
		require.NoError(t, err)
	}

	return idx
}

// TestWrite_Table checks headers, separator, rows and the total line.
func TestWrite_Table(t *testing.T) {
	idx := newIndex(t, "Dallas", "Austin", "Houston")
	edges := []core.Edge{core.NewEdge(1, 2, 162), core.NewEdge(0, 1, 195)}

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, idx, edges, 357))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, []string{"City", "City", "Distance"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"----", "----", "--------"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"Austin", "Houston", "162"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"Dallas", "Austin", "195"}, strings.Fields(lines[3]))
	assert.Empty(t, lines[4])
	assert.Equal(t, "The sum of all distances is: 357", lines[5])

	// Columns are aligned: the second column starts at the same offset on every row.
	col := strings.LastIndex(lines[0], "City")
	assert.Equal(t, col, strings.Index(lines[2], "Houston"))
	assert.Equal(t, col, strings.Index(lines[3], "Austin"))
}

// TestWrite_Empty prints only the headers and a zero total.
func TestWrite_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, core.NewIndex(), nil, 0))
	assert.Contains(t, buf.String(), "Distance")
	assert.True(t, strings.HasSuffix(buf.String(), "The sum of all distances is: 0\n"))
}

// TestWrite_UnknownVertex fails when an edge references an id the index lacks.
func TestWrite_UnknownVertex(t *testing.T) {
	idx := newIndex(t, "A")
	err := report.Write(&bytes.Buffer{}, idx, []core.Edge{core.NewEdge(0, 1, 1)}, 1)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestSummarize checks the counts and the Spanning predicate.
func TestSummarize(t *testing.T) {
	edges := []core.Edge{core.NewEdge(0, 1, 5), core.NewEdge(2, 3, 2)}
	s := report.Summarize(4, edges, edges, 2, 7)
	assert.Equal(t, report.Summary{Vertices: 4, Edges: 2, Accepted: 2, Components: 2, Total: 7}, s)
	assert.False(t, s.Spanning())

	assert.True(t, report.Summarize(1, nil, nil, 1, 0).Spanning())
}
