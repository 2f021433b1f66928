package objio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/patchgraph/layoutembed/mesh"
)

// ReadOBJ parses a Wavefront OBJ stream into a mesh.Mesh, consuming only
// "v x y z" vertex lines and "f ..." face lines (spec.md §6: "the core
// consumes positions and connectivity only. No UVs, normals, or
// materials"). Face vertex references may carry "/vt/vn" suffixes, which
// are parsed and discarded. Negative (relative) OBJ indices are not
// supported. The returned mesh has already had Finalize called.
func ReadOBJ(r io.Reader) (*mesh.Mesh, error) {
	m := mesh.NewMesh()
	scan := bufio.NewScanner(r)
	scan.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNo := 0
	for scan.Scan() {
		lineNo++
		line := strings.TrimSpace(scan.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			p, err := parseVertexLine(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("objio: line %d: %w: %v", lineNo, ErrInvalidInput, err)
			}
			m.AddVertex(p)
		case "f":
			ids, err := parseFaceLine(fields[1:], m.VertexCount())
			if err != nil {
				return nil, fmt.Errorf("objio: line %d: %w: %v", lineNo, ErrInvalidInput, err)
			}
			if _, err := m.AddFace(ids); err != nil {
				return nil, fmt.Errorf("objio: line %d: %w: %v", lineNo, ErrInvalidInput, err)
			}
		default:
			// vt, vn, vp, o, g, s, mtllib, usemtl, ... are all outside
			// spec.md §6's "positions and connectivity only" contract.
			continue
		}
	}
	if err := scan.Err(); err != nil {
		return nil, fmt.Errorf("objio: %w: %v", ErrIO, err)
	}
	if err := m.Finalize(); err != nil {
		return nil, fmt.Errorf("objio: %w: %v", ErrInvalidInput, err)
	}
	return m, nil
}

func parseVertexLine(fields []string) (mesh.Point, error) {
	if len(fields) < 3 {
		return mesh.Point{}, fmt.Errorf("vertex line has fewer than 3 coordinates")
	}
	coords := make([]float64, 3)
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return mesh.Point{}, fmt.Errorf("bad coordinate %q: %w", fields[i], err)
		}
		coords[i] = v
	}
	return mesh.Point{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

func parseFaceLine(fields []string, vertexCount int) ([]mesh.VertexID, error) {
	ids := make([]mesh.VertexID, len(fields))
	for i, f := range fields {
		ref := f
		if slash := strings.IndexByte(f, '/'); slash >= 0 {
			ref = f[:slash]
		}
		idx, err := strconv.Atoi(ref)
		if err != nil {
			return nil, fmt.Errorf("bad face vertex reference %q: %w", f, err)
		}
		if idx <= 0 || idx > vertexCount {
			return nil, fmt.Errorf("face vertex index %d out of range [1,%d]", idx, vertexCount)
		}
		ids[i] = mesh.VertexID(idx - 1)
	}
	return ids, nil
}

// WriteOBJ serializes m's vertex positions and face connectivity to w in
// OBJ text format, one "v" line per vertex (in VertexID order) followed by
// one "f" line per face (1-based indices, in FaceID order).
func WriteOBJ(w io.Writer, m *mesh.Mesh) error {
	bw := bufio.NewWriter(w)
	for v := 0; v < m.VertexCount(); v++ {
		p := m.Position(mesh.VertexID(v))
		if _, err := fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z); err != nil {
			return fmt.Errorf("objio: %w: %v", ErrIO, err)
		}
	}
	for f := 0; f < m.FaceCount(); f++ {
		verts := m.FaceVertices(mesh.FaceID(f))
		var sb strings.Builder
		sb.WriteString("f")
		for _, v := range verts {
			fmt.Fprintf(&sb, " %d", int(v)+1)
		}
		sb.WriteByte('\n')
		if _, err := bw.WriteString(sb.String()); err != nil {
			return fmt.Errorf("objio: %w: %v", ErrIO, err)
		}
	}
	return bw.Flush()
}
