// Package report renders an MST result the way the kruskals command prints it:
// a City / City / Distance table followed by the sum of all distances.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cheynewallace/tabby"
	"github.com/katalvlaran/kruskals/core"
)

// Column headers of the result table.
const (
	HeaderCity     = "City"
	HeaderDistance = "Distance"
	TotalLabel     = "The sum of all distances is:"
)

// Write prints one row per accepted edge, labelled through idx, then the total.
// An edge whose endpoint idx does not know fails with core.ErrVertexNotFound.
func Write(w io.Writer, idx *core.Index, edges []core.Edge, total int64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	t := tabby.NewCustom(tw)
	t.AddHeader(HeaderCity, HeaderCity, HeaderDistance)
	for _, e := range edges {
		from, err := idx.Label(e.From)
		if err != nil {
			return err
		}
		to, err := idx.Label(e.To)
		if err != nil {
			return err
		}
		t.AddLine(from, to, e.Weight)
	}
	t.Print()

	_, err := fmt.Fprintf(w, "\n%s %d\n", TotalLabel, total)

	return err
}

// Summary describes one run for logging.
type Summary struct {
	Vertices   int
	Edges      int
	Accepted   int
	Components int
	Total      int64
}

// Summarize builds a Summary. components is the number of trees in the result forest.
func Summarize(vertexCount int, edges, accepted []core.Edge, components int, total int64) Summary {
	return Summary{
		Vertices:   vertexCount,
		Edges:      len(edges),
		Accepted:   len(accepted),
		Components: components,
		Total:      total,
	}
}

// Spanning reports whether the result is a single tree covering every vertex.
func (s Summary) Spanning() bool {
	return s.Components <= 1
}
