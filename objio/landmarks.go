package objio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/patchgraph/layoutembed/mesh"
)

// LoadLandmarks parses a landmark file (spec.md §6): one target vertex
// index per line (FormatID), or one index plus a redundant x y z position
// per line (FormatIDPos). The i-th line is the target vertex matching the
// i-th layout vertex, so the returned map is keyed by line index (== the
// layout vertex it corresponds to).
//
// Under FormatIDPos, a line whose stored position disagrees with target's
// actual vertex position (beyond a small floating-point tolerance) does
// not fail the parse; it is recorded as a LandmarkWarning and returned
// alongside the correspondence, matching spec.md §6's "mismatch →
// warning, not error".
func LoadLandmarks(r io.Reader, format LandmarkFormat, target *mesh.Mesh) (map[mesh.VertexID]mesh.VertexID, []LandmarkWarning, error) {
	landmarks := make(map[mesh.VertexID]mesh.VertexID)
	var warnings []LandmarkWarning

	scan := bufio.NewScanner(r)
	layoutV := 0
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		idx, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, nil, fmt.Errorf("objio: landmark line %d: %w: %v", layoutV, ErrInvalidInput, err)
		}
		if idx < 0 || idx >= target.VertexCount() {
			return nil, nil, fmt.Errorf("objio: landmark line %d: %w: target vertex %d out of range", layoutV, ErrInvalidInput, idx)
		}
		tv := mesh.VertexID(idx)

		if format == FormatIDPos {
			if len(fields) < 4 {
				return nil, nil, fmt.Errorf("objio: landmark line %d: %w: id_x_y_z line missing coordinates", layoutV, ErrInvalidInput)
			}
			var got [3]float64
			for i := 0; i < 3; i++ {
				v, err := strconv.ParseFloat(fields[1+i], 64)
				if err != nil {
					return nil, nil, fmt.Errorf("objio: landmark line %d: %w: %v", layoutV, ErrInvalidInput, err)
				}
				got[i] = v
			}
			actual := target.Position(tv)
			expected := [3]float64{actual.X, actual.Y, actual.Z}
			if !positionsClose(expected, got, 1e-6) {
				warnings = append(warnings, LandmarkWarning{
					Line:     layoutV,
					LayoutV:  layoutV,
					TargetV:  idx,
					Expected: expected,
					Got:      got,
				})
			}
		}

		landmarks[mesh.VertexID(layoutV)] = tv
		layoutV++
	}
	if err := scan.Err(); err != nil {
		return nil, nil, fmt.Errorf("objio: %w: %v", ErrIO, err)
	}
	return landmarks, warnings, nil
}

func positionsClose(a, b [3]float64, tol float64) bool {
	for i := range a {
		d := a[i] - b[i]
		if d < -tol || d > tol {
			return false
		}
	}
	return true
}

// WriteLandmarks serializes landmarks to w in FormatID, one target vertex
// index per line, ordered by ascending layout VertexID.
func WriteLandmarks(w io.Writer, landmarks map[mesh.VertexID]mesh.VertexID, layoutVertexCount int) error {
	bw := bufio.NewWriter(w)
	for lv := 0; lv < layoutVertexCount; lv++ {
		tv, ok := landmarks[mesh.VertexID(lv)]
		if !ok {
			return fmt.Errorf("objio: %w: layout vertex %d has no landmark", ErrInvalidInput, lv)
		}
		if _, err := fmt.Fprintf(bw, "%d\n", int(tv)); err != nil {
			return fmt.Errorf("objio: %w: %v", ErrIO, err)
		}
	}
	return bw.Flush()
}
