package objio

import (
	"math"

	"github.com/patchgraph/layoutembed/mesh"
)

// NormalizeSurfaceArea rescales m in place so its total triangle surface
// area becomes 1.0 (restored from original_source/pig/EmbeddingInput.hh's
// `normalize_surface_area`; spec.md's distillation dropped this
// preprocessing step, but it is a pure mesh transform with no core-package
// dependency, so it belongs here rather than being reinvented ad hoc by
// every caller).
func NormalizeSurfaceArea(m *mesh.Mesh) {
	area := m.SurfaceArea()
	if area <= 0 {
		return
	}
	scale := 1.0 / math.Sqrt(area)
	for v := 0; v < m.VertexCount(); v++ {
		id := mesh.VertexID(v)
		m.SetPosition(id, m.Position(id).Scale(scale))
	}
}

// CenterTranslation translates m in place so its vertex centroid lies at
// the origin (original_source/pig/EmbeddingInput.hh's
// `center_translation`).
func CenterTranslation(m *mesh.Mesh) {
	n := m.VertexCount()
	if n == 0 {
		return
	}
	var centroid mesh.Point
	for v := 0; v < n; v++ {
		centroid = centroid.Add(m.Position(mesh.VertexID(v)))
	}
	centroid = centroid.Scale(1.0 / float64(n))
	for v := 0; v < n; v++ {
		id := mesh.VertexID(v)
		m.SetPosition(id, m.Position(id).Sub(centroid))
	}
}

// InvertLayout returns a new mesh with every face of layout's winding
// reversed (original_source/pig/EmbeddingInput.hh's `invert_layout`).
// Reversing winding renumbers every edge and half-edge (Finalize is run
// again from scratch), so — per spec.md §9 Open Question (c) — any
// landmark correspondence keyed by the pre-inversion layout's VertexIDs
// remains valid (vertex identity and order are preserved; only face
// winding changes) but must still be re-validated by the caller against
// the returned mesh before use, since InvertLayout does not carry a
// landmark map itself.
func InvertLayout(layout *mesh.Mesh) *mesh.Mesh {
	out := mesh.NewMesh()
	for v := 0; v < layout.VertexCount(); v++ {
		out.AddVertex(layout.Position(mesh.VertexID(v)))
	}
	for f := 0; f < layout.FaceCount(); f++ {
		verts := layout.FaceVertices(mesh.FaceID(f))
		reversed := make([]mesh.VertexID, len(verts))
		for i, v := range verts {
			reversed[len(verts)-1-i] = v
		}
		// AddFace errors here would indicate the source mesh was already
		// non-manifold, which ReadOBJ/Finalize would have already rejected.
		_, _ = out.AddFace(reversed)
	}
	_ = out.Finalize()
	return out
}
