package edgelist

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/kruskals/core"
	"github.com/pingcap/errors"
)

// Graph is the parsed input: the label table and the edges over its ids.
type Graph struct {
	Index *core.Index
	Edges []core.Edge
}

// VertexCount returns the number of distinct labels seen.
func (g *Graph) VertexCount() int { return g.Index.Len() }

// ReadFile opens path and parses it with Parse.
func ReadFile(path string, opts ...Option) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer f.Close()

	g, err := Parse(f, opts...)
	if err != nil {
		return nil, errors.Annotatef(err, "read %s", path)
	}

	return g, nil
}

// Parse reads every record from r. Edges are returned in file order: record by
// record, pair by pair.
func Parse(r io.Reader, opts ...Option) (*Graph, error) {
	o := newOptions(opts)

	cr := csv.NewReader(r)
	cr.Comma = o.delimiter
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	g := &Graph{Index: core.NewIndex()}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Trace(err)
		}
		line, _ := cr.FieldPos(0)
		if err := g.addRecord(record, o); err != nil {
			return nil, errors.Annotatef(err, "line %d", line)
		}
	}

	return g, nil
}

// addRecord interns the labels of one record and appends its edges.
func (g *Graph) addRecord(record []string, o options) error {
	fields := trimFields(record)
	if len(fields) == 0 {
		return nil
	}
	if len(fields) < 2 {
		return errors.Trace(ErrShortRecord)
	}
	if len(fields)%2 == 0 {
		return errors.Annotatef(ErrMissingWeight, "neighbour %q", fields[len(fields)-1])
	}

	u, err := g.Index.Intern(fields[0])
	if err != nil {
		return errors.Annotatef(err, "field 1")
	}
	for i := 1; i+1 < len(fields); i += 2 {
		v, err := g.Index.Intern(fields[i])
		if err != nil {
			return errors.Annotatef(err, "field %d", i+1)
		}
		w, err := strconv.ParseInt(fields[i+1], 10, 64)
		if err != nil {
			return errors.Annotatef(ErrBadWeight, "field %d: %q", i+2, fields[i+1])
		}
		if w < 0 && !o.allowNegative {
			return errors.Annotatef(ErrNegativeWeight, "field %d: %d", i+2, w)
		}
		g.Edges = append(g.Edges, core.NewEdge(u, v, w))
	}

	return nil
}

// trimFields trims every field and drops trailing empty ones, which a
// trailing delimiter produces.
func trimFields(record []string) []string {
	fields := make([]string, len(record))
	for i, f := range record {
		fields[i] = strings.TrimSpace(f)
	}
	for len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}

	return fields
}
