// Package loader reads undirected weighted graphs from whitespace-separated
// edge-list files.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dd0wney/cluso-fastbc/pkg/graph"
)

// ErrBadFormat is returned when an edge line cannot be parsed.
var ErrBadFormat = errors.New("malformed edge line")

type rawEdge struct {
	u, v int
	w    float64
}

// Read parses an edge list from r. Each non-empty line is "u v" or "u v w"
// with zero-based vertex ids; lines starting with '#' or '%' are comments.
// Vertices are sized to the highest id seen, so isolated trailing vertices
// must appear in at least one comment-free line or be added by the caller.
func Read(r io.Reader) (*graph.Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	edges := make([]rawEdge, 0, 1024)
	maxID := -1
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "%") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 && len(fields) != 3 {
			return nil, fmt.Errorf("line %d: %w: expected 2 or 3 fields, got %d", lineNo, ErrBadFormat, len(fields))
		}

		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: bad source id %q", lineNo, ErrBadFormat, fields[0])
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: bad target id %q", lineNo, ErrBadFormat, fields[1])
		}
		if u < 0 || v < 0 {
			return nil, fmt.Errorf("line %d: %w: negative vertex id", lineNo, ErrBadFormat)
		}

		w := 1.0
		if len(fields) == 3 {
			w, err = strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w: bad weight %q", lineNo, ErrBadFormat, fields[2])
			}
		}

		if u > maxID {
			maxID = u
		}
		if v > maxID {
			maxID = v
		}
		edges = append(edges, rawEdge{u: u, v: v, w: w})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read edge list: %w", err)
	}

	b := graph.NewBuilder(maxID + 1)
	for _, e := range edges {
		if err := b.AddEdge(e.u, e.v, e.w); err != nil {
			return nil, fmt.Errorf("edge %d-%d: %w", e.u, e.v, err)
		}
	}
	return b.Build(), nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open edge list: %w", err)
	}
	defer f.Close()
	return Read(f)
}
