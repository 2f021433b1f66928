package embedding

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/patchgraph/layoutembed/mesh"
	"github.com/patchgraph/layoutembed/virtual"
)

// Insertion is one EmbedPath replay step: the layout half-edge and the
// target vertex chain realizing it, in that half-edge's own direction.
type Insertion struct {
	LayoutHalfEdge mesh.HalfEdgeID
	Path           []mesh.VertexID
}

// InsertionSequence is an ordered, replayable embedding history, used to
// hand a solution found mid-search (greedy or branch-and-bound) to a fresh
// State without deep-cloning the search state itself (spec.md §5: embed is
// reversible, so a sequence of EmbedPath calls fully reconstructs a
// result).
type InsertionSequence []Insertion

// Apply replays seq against s via EmbedPath, in order, stopping at the
// first error.
func (s *State) Apply(seq InsertionSequence) error {
	for _, ins := range seq {
		path := make(virtual.Path, len(ins.Path))
		for i, v := range ins.Path {
			path[i] = virtual.NewOnVertex(v)
		}
		if err := s.EmbedPath(ins.LayoutHalfEdge, path); err != nil {
			return fmt.Errorf("embedding: replay half-edge %d: %w", ins.LayoutHalfEdge, err)
		}
	}
	return nil
}

// Sequence captures every currently-embedded path as a replayable
// InsertionSequence, in ascending layout EdgeID order.
func (s *State) Sequence() InsertionSequence {
	out := make(InsertionSequence, 0, len(s.embedded))
	for e := 0; e < s.layout.EdgeCount(); e++ {
		ee, ok := s.embedded[mesh.EdgeID(e)]
		if !ok {
			continue
		}
		hL := s.layout.Edge(mesh.EdgeID(e)).HalfEdge
		verts := make([]mesh.VertexID, len(ee.path))
		for i, v := range ee.path {
			verts[i] = v.V
		}
		out = append(out, Insertion{LayoutHalfEdge: hL, Path: verts})
	}
	return out
}

// WriteEmb serializes the landmark correspondence and every embedded path
// to w in the ".emb" text format (spec.md §6): one "landmark" line per
// layout vertex, then one "edge" line per embedded layout edge giving the
// target vertex chain. The format mirrors objio's OBJ line conventions
// (whitespace-separated fields, a leading keyword per line) for a uniform
// reading/writing style across the I/O surface.
func (s *State) WriteEmb(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for lv := 0; lv < s.layout.VertexCount(); lv++ {
		tv, ok := s.Landmark(mesh.VertexID(lv))
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(bw, "landmark %d %d\n", lv, tv); err != nil {
			return err
		}
	}
	for e := 0; e < s.layout.EdgeCount(); e++ {
		ee, ok := s.embedded[mesh.EdgeID(e)]
		if !ok {
			continue
		}
		var sb strings.Builder
		fmt.Fprintf(&sb, "edge %d", e)
		for _, v := range ee.path {
			fmt.Fprintf(&sb, " %d", v.V)
		}
		sb.WriteByte('\n')
		if _, err := bw.WriteString(sb.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// LoadEmb reads the ".emb" format produced by WriteEmb, constructing a
// fresh State over layout/target and replaying every recorded edge.
func LoadEmb(r io.Reader, layout, target *mesh.Mesh) (*State, error) {
	landmarks := make(map[mesh.VertexID]mesh.VertexID)
	var edgeLines [][]string

	scan := bufio.NewScanner(r)
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "landmark":
			if len(fields) != 3 {
				return nil, fmt.Errorf("embedding: malformed landmark line %q", line)
			}
			lv, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("embedding: landmark line %q: %w", line, err)
			}
			tv, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("embedding: landmark line %q: %w", line, err)
			}
			landmarks[mesh.VertexID(lv)] = mesh.VertexID(tv)
		case "edge":
			edgeLines = append(edgeLines, fields[1:])
		default:
			return nil, fmt.Errorf("embedding: unrecognized .emb line %q", line)
		}
	}
	if err := scan.Err(); err != nil {
		return nil, err
	}

	s, err := NewState(Input{Layout: layout, Target: target, LayoutToTarget: landmarks})
	if err != nil {
		return nil, err
	}

	seq := make(InsertionSequence, 0, len(edgeLines))
	for _, fields := range edgeLines {
		if len(fields) < 3 {
			return nil, fmt.Errorf("embedding: edge line has fewer than 2 path vertices: %v", fields)
		}
		eL, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("embedding: edge line %v: %w", fields, err)
		}
		verts := make([]mesh.VertexID, len(fields)-1)
		for i, f := range fields[1:] {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("embedding: edge line %v: %w", fields, err)
			}
			verts[i] = mesh.VertexID(v)
		}
		seq = append(seq, Insertion{LayoutHalfEdge: layout.Edge(mesh.EdgeID(eL)).HalfEdge, Path: verts})
	}
	if err := s.Apply(seq); err != nil {
		return nil, err
	}
	return s, nil
}
