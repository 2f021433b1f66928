package embedding

import (
	"fmt"
	"sort"

	"github.com/patchgraph/layoutembed/mesh"
)

// GetPatch returns the target faces enclosed by the closed boundary walk
// formed by concatenating the embedded paths of every layout half-edge
// bounding fL, in layout face order (spec.md §3: "the union of embedded
// paths partitions T into patches matching L's faces"). Every bounding
// half-edge must already be embedded, or GetPatch returns ErrIncomplete.
func (s *State) GetPatch(fL mesh.FaceID) ([]mesh.FaceID, error) {
	hLs := s.layout.FaceHalfEdges(fL)

	boundary := make(map[mesh.EdgeID]bool)
	seed := mesh.NoFace
	for _, hL := range hLs {
		path, err := s.GetEmbeddedVirtualPath(hL)
		if err != nil {
			return nil, fmt.Errorf("%w: layout half-edge %d has no embedded path", ErrIncomplete, hL)
		}
		for i := 0; i+1 < len(path); i++ {
			a, b := path[i].V, path[i+1].V
			e, ok := s.target.EdgeBetween(a, b)
			if !ok {
				continue
			}
			boundary[e] = true
			if seed == mesh.NoFace {
				if h, ok2 := s.target.HalfEdgeBetween(a, b); ok2 {
					if f := s.target.FaceOf(h); f != mesh.NoFace {
						seed = f
					}
				}
			}
		}
	}
	if seed == mesh.NoFace {
		return nil, fmt.Errorf("%w: layout face %d's boundary has no interior-side target face", ErrIncomplete, fL)
	}

	visited := map[mesh.FaceID]bool{seed: true}
	queue := []mesh.FaceID{seed}
	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]
		for _, h := range s.target.FaceHalfEdges(f) {
			e := s.target.HalfEdge(h).Edge
			if boundary[e] {
				continue
			}
			nf := s.target.OppositeFaceAcross(h)
			if nf == mesh.NoFace || visited[nf] {
				continue
			}
			visited[nf] = true
			queue = append(queue, nf)
		}
	}

	out := make([]mesh.FaceID, 0, len(visited))
	for f := range visited {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}
