package embedding

import (
	"fmt"

	"github.com/patchgraph/layoutembed/mesh"
)

// NewState validates in and returns a fresh, fully-unembedded State over a
// private clone of in.Target (grounded on mesh.Mesh.Clone — see mesh's
// geometry.go — so the caller's target mesh is never mutated by later
// EmbedPath/UnembedPath calls).
func NewState(in Input) (*State, error) {
	if in.Layout == nil || in.Target == nil {
		return nil, fmt.Errorf("%w: nil mesh", ErrInvalidInput)
	}
	if in.Layout.VertexCount() == 0 {
		return nil, fmt.Errorf("%w: empty layout mesh", ErrInvalidInput)
	}

	layoutToTarget := make(map[mesh.VertexID]mesh.VertexID, len(in.LayoutToTarget))
	targetToLayout := make(map[mesh.VertexID]mesh.VertexID, len(in.LayoutToTarget))
	for lv, tv := range in.LayoutToTarget {
		if int(lv) < 0 || int(lv) >= in.Layout.VertexCount() {
			return nil, fmt.Errorf("%w: layout vertex %d out of range", ErrInvalidInput, lv)
		}
		if int(tv) < 0 || int(tv) >= in.Target.VertexCount() {
			return nil, fmt.Errorf("%w: target vertex %d out of range", ErrInvalidInput, tv)
		}
		if other, dup := targetToLayout[tv]; dup && other != lv {
			return nil, fmt.Errorf("%w: target vertex %d claimed by layout vertices %d and %d", ErrInvalidInput, tv, other, lv)
		}
		layoutToTarget[lv] = tv
		targetToLayout[tv] = lv
	}
	for v := 0; v < in.Layout.VertexCount(); v++ {
		if _, ok := layoutToTarget[mesh.VertexID(v)]; !ok {
			return nil, fmt.Errorf("%w: layout vertex %d has no landmark", ErrInvalidInput, v)
		}
	}

	for e := 0; e < in.Layout.EdgeCount(); e++ {
		a, b := in.Layout.EdgeVertices(mesh.EdgeID(e))
		if layoutToTarget[a] == layoutToTarget[b] {
			return nil, fmt.Errorf("%w: layout edge %d has coincident landmarks (zero-length span)", ErrInvalidInput, e)
		}
	}

	return &State{
		layout:          in.Layout,
		target:          in.Target.Clone(),
		layoutToTarget:  layoutToTarget,
		targetToLayout:  targetToLayout,
		embedded:        make(map[mesh.EdgeID]*embeddedEdge, in.Layout.EdgeCount()),
		blockedEdges:    make(map[mesh.EdgeID]mesh.EdgeID),
		blockedVertices: make(map[mesh.VertexID]mesh.EdgeID),
	}, nil
}
