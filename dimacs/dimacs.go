// Package dimacs reads and writes undirected graphs in the DIMACS edge
// format used by the seedmin tools:
//
//	c optional comment lines
//	p edge
//	5 4
//	e 1 2
//	e 2 3
//	...
//
// The problem line may also carry the sizes itself ("p edge 5 4"). The
// marker and label of the problem line and the marker of each edge line are
// not checked, so "x col" or "a 1 2" parse the same way. Lines whose first
// token is "c" are comments. Node ids in the file are 1-based; the returned
// graph is 0-based.
package dimacs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/seedmin/graph"
)

// Sentinel errors for DIMACS parsing.
var (
	// ErrMalformedHeader is returned when the problem line or the size line
	// cannot be parsed, or the node count exceeds MaxNodes.
	ErrMalformedHeader = errors.New("dimacs: malformed header")

	// ErrMalformedEdge is returned for an edge line that is not a marker
	// followed by two integer endpoints.
	ErrMalformedEdge = errors.New("dimacs: malformed edge line")

	// ErrTruncated is returned when the input ends before the declared
	// number of edges was read.
	ErrTruncated = errors.New("dimacs: unexpected end of input")

	// ErrGraphNil is returned when Write receives a nil graph.
	ErrGraphNil = errors.New("dimacs: graph is nil")
)

const (
	problemTag = "p"
	edgeTag    = "e"
	commentTag = "c"
)

// MaxNodes bounds the node count a header may declare.
const MaxNodes = 1 << 24

// lineReader yields non-blank, non-comment lines with their line numbers.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func (lr *lineReader) next() ([]string, bool) {
	for lr.sc.Scan() {
		lr.line++
		fields := strings.Fields(lr.sc.Text())
		if len(fields) == 0 || fields[0] == commentTag {
			continue
		}
		return fields, true
	}

	return nil, false
}

// Read parses a DIMACS graph from r.
//
// Complexity: O(V + E).
func Read(r io.Reader) (*graph.Graph, error) {
	lr := &lineReader{sc: bufio.NewScanner(r)}

	fields, ok := lr.next()
	if !ok {
		return nil, lr.fail(fmt.Errorf("Read: missing problem line: %w", ErrTruncated))
	}
	if len(fields) < 2 {
		return nil, fmt.Errorf("Read: line %d: %q: %w", lr.line, strings.Join(fields, " "), ErrMalformedHeader)
	}
	sizes := fields[2:]
	if len(sizes) == 0 {
		if sizes, ok = lr.next(); !ok {
			return nil, lr.fail(fmt.Errorf("Read: missing size line: %w", ErrTruncated))
		}
	}
	if len(sizes) != 2 {
		return nil, fmt.Errorf("Read: line %d: want \"nodes edges\": %w", lr.line, ErrMalformedHeader)
	}
	n, errN := strconv.Atoi(sizes[0])
	m, errM := strconv.Atoi(sizes[1])
	if errN != nil || errM != nil || n < 0 || m < 0 || n > MaxNodes {
		return nil, fmt.Errorf("Read: line %d: sizes %q: %w", lr.line, strings.Join(sizes, " "), ErrMalformedHeader)
	}

	g, err := graph.New(n)
	if err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}
	for i := 0; i < m; i++ {
		fields, ok = lr.next()
		if !ok {
			return nil, lr.fail(fmt.Errorf("Read: read %d of %d edges: %w", i, m, ErrTruncated))
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("Read: line %d: %q: %w", lr.line, strings.Join(fields, " "), ErrMalformedEdge)
		}
		u, errU := strconv.Atoi(fields[1])
		v, errV := strconv.Atoi(fields[2])
		if errU != nil || errV != nil {
			return nil, fmt.Errorf("Read: line %d: %q: %w", lr.line, strings.Join(fields, " "), ErrMalformedEdge)
		}
		if err = g.AddEdge(u-1, v-1); err != nil {
			return nil, fmt.Errorf("Read: line %d: %w", lr.line, err)
		}
	}
	if err = lr.sc.Err(); err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}

	return g, nil
}

// fail prefers a scanner I/O error over the parse error it caused.
func (lr *lineReader) fail(err error) error {
	if ioErr := lr.sc.Err(); ioErr != nil {
		return fmt.Errorf("Read: line %d: %w", lr.line, ioErr)
	}

	return err
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %w", err)
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("ReadFile %s: %w", path, err)
	}

	return g, nil
}

// Write emits g in the two-line header form Read accepts. Each undirected
// edge is written once with u < v; parallel edges are repeated.
func Write(w io.Writer, g *graph.Graph) error {
	if g == nil {
		return fmt.Errorf("Write: %w", ErrGraphNil)
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s edge\n%d %d\n", problemTag, g.NumNodes(), g.NumEdges())
	for u := 0; u < g.NumNodes(); u++ {
		for _, v := range g.Neighbors(u) {
			if u < v {
				fmt.Fprintf(bw, "%s %d %d\n", edgeTag, u+1, v+1)
			}
		}
	}

	return bw.Flush()
}
