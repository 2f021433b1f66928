package bnb

import (
	"strconv"
	"strings"
)

// stateHash returns a canonical signature of the current partial
// embedding, used to detect when the search revisits an equivalent partial
// embedding (spec.md §4.4's hashing-based pruning): every embedded layout
// edge's half-edge together with the target vertex chain realizing it, in
// ascending layout EdgeID order (State.Sequence). Two DFS nodes with an
// identical signature hold the same embedding and so admit exactly the
// same set of future completions, so the cheaper of the two suffices to
// explore.
func (e *engine) stateHash() string {
	var sb strings.Builder
	for _, ins := range e.state.Sequence() {
		sb.WriteString(strconv.Itoa(int(ins.LayoutHalfEdge)))
		sb.WriteByte(':')
		for _, v := range ins.Path {
			sb.WriteString(strconv.Itoa(int(v)))
			sb.WriteByte(',')
		}
		sb.WriteByte(';')
	}
	return sb.String()
}
