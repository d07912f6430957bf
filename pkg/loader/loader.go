// Package loader reads plain-text edge-list graphs into pkg/graph.Graph. It
// is the "graph input parsing" collaborator that lives outside the
// clustering core so the core never has to know about file formats.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gilchrisn/rgcluster/pkg/graph"
)

// LoadEdgeList reads a graph from path: one edge "u v" per line, whitespace
// separated, blank lines and lines starting with "#" ignored. Tokens are
// remapped to a dense 0-indexed vertex range in first-seen order, so the
// input need not already be 0-indexed or contiguous. Self-loops and
// duplicate edges are dropped before the graph is built.
func LoadEdgeList(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	return parseEdgeList(f)
}

func parseEdgeList(r io.Reader) (*graph.Graph, error) {
	ids := make(map[string]int)
	type rawEdge struct{ u, v int }
	var edges []rawEdge
	seen := make(map[[2]int]bool)

	lookup := func(tok string) int {
		id, ok := ids[tok]
		if !ok {
			id = len(ids)
			ids[tok] = id
		}
		return id
	}

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("loader: line %d: expected at least 2 fields, got %d", lineNum, len(fields))
		}

		u := lookup(fields[0])
		v := lookup(fields[1])

		if u == v {
			continue
		}

		key := [2]int{u, v}
		if u > v {
			key = [2]int{v, u}
		}
		if seen[key] {
			continue
		}
		seen[key] = true

		edges = append(edges, rawEdge{u: u, v: v})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}

	g := graph.New(len(ids))
	for _, e := range edges {
		if err := g.AddEdge(e.u, e.v); err != nil {
			return nil, fmt.Errorf("loader: %w", err)
		}
	}
	return g, nil
}

// ParseWeight is a small helper for formats that carry a third
// (unused-by-us) weight column; it validates the column without requiring
// every caller to repeat the strconv dance.
func ParseWeight(tok string) (float64, error) {
	w, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("loader: invalid weight %q: %w", tok, err)
	}
	return w, nil
}
