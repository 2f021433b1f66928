package objio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/patchgraph/layoutembed/embedding"
)

// BundleManifest holds the small whitespace key/value lines stored
// alongside an input bundle's three data files (spec.md §6's ".inp"
// manifest). LandmarkFormat and NormalizeSurfaceArea mirror the fields
// EmbeddingInput.hh documents; unrecognized keys are preserved in Extra so
// round-tripping a manifest never silently drops caller-added metadata.
type BundleManifest struct {
	LandmarkFormat       LandmarkFormat
	NormalizeSurfaceArea bool
	Extra                map[string]string
}

func defaultManifest() BundleManifest {
	return BundleManifest{LandmarkFormat: FormatID, Extra: map[string]string{}}
}

// LoadInputBundle reads "<prefix>_layout.obj", "<prefix>_target.obj",
// "<prefix>.lmk", and "<prefix>.inp" (the manifest) and returns a fully
// populated embedding.Input, ready for embedding.NewState.
func LoadInputBundle(prefix string) (embedding.Input, []LandmarkWarning, error) {
	manifest, err := loadManifest(prefix + ".inp")
	if err != nil {
		return embedding.Input{}, nil, err
	}

	layoutFile, err := os.Open(prefix + "_layout.obj")
	if err != nil {
		return embedding.Input{}, nil, fmt.Errorf("objio: %w: %v", ErrIO, err)
	}
	defer layoutFile.Close()
	layout, err := ReadOBJ(layoutFile)
	if err != nil {
		return embedding.Input{}, nil, err
	}

	targetFile, err := os.Open(prefix + "_target.obj")
	if err != nil {
		return embedding.Input{}, nil, fmt.Errorf("objio: %w: %v", ErrIO, err)
	}
	defer targetFile.Close()
	target, err := ReadOBJ(targetFile)
	if err != nil {
		return embedding.Input{}, nil, err
	}

	lmkFile, err := os.Open(prefix + ".lmk")
	if err != nil {
		return embedding.Input{}, nil, fmt.Errorf("objio: %w: %v", ErrIO, err)
	}
	defer lmkFile.Close()
	landmarks, warnings, err := LoadLandmarks(lmkFile, manifest.LandmarkFormat, target)
	if err != nil {
		return embedding.Input{}, nil, err
	}

	if manifest.NormalizeSurfaceArea {
		NormalizeSurfaceArea(target)
	}

	return embedding.Input{
		Layout:         layout,
		Target:         target,
		LayoutToTarget: landmarks,
	}, warnings, nil
}

// SaveInputBundle writes the four files LoadInputBundle reads back, the
// inverse operation spec.md §6 requires ("save/load are inverses modulo
// mesh index renumbering induced by re-reading OBJ").
func SaveInputBundle(prefix string, in embedding.Input, manifest BundleManifest) error {
	layoutFile, err := os.Create(prefix + "_layout.obj")
	if err != nil {
		return fmt.Errorf("objio: %w: %v", ErrIO, err)
	}
	defer layoutFile.Close()
	if err := WriteOBJ(layoutFile, in.Layout); err != nil {
		return err
	}

	targetFile, err := os.Create(prefix + "_target.obj")
	if err != nil {
		return fmt.Errorf("objio: %w: %v", ErrIO, err)
	}
	defer targetFile.Close()
	if err := WriteOBJ(targetFile, in.Target); err != nil {
		return err
	}

	lmkFile, err := os.Create(prefix + ".lmk")
	if err != nil {
		return fmt.Errorf("objio: %w: %v", ErrIO, err)
	}
	defer lmkFile.Close()
	if err := WriteLandmarks(lmkFile, in.LayoutToTarget, in.Layout.VertexCount()); err != nil {
		return err
	}

	return saveManifest(prefix+".inp", manifest)
}

func loadManifest(path string) (BundleManifest, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return defaultManifest(), nil
	}
	if err != nil {
		return BundleManifest{}, fmt.Errorf("objio: %w: %v", ErrIO, err)
	}
	defer f.Close()

	m := defaultManifest()
	scan := bufio.NewScanner(f)
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return BundleManifest{}, fmt.Errorf("objio: manifest line %q: %w: expected \"key value\"", line, ErrInvalidInput)
		}
		key, value := fields[0], strings.Join(fields[1:], " ")
		switch key {
		case "landmark_format":
			switch value {
			case "id":
				m.LandmarkFormat = FormatID
			case "id_x_y_z":
				m.LandmarkFormat = FormatIDPos
			default:
				return BundleManifest{}, fmt.Errorf("objio: manifest: %w: unrecognized landmark_format %q", ErrInvalidInput, value)
			}
		case "normalize_surface_area":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return BundleManifest{}, fmt.Errorf("objio: manifest: %w: %v", ErrInvalidInput, err)
			}
			m.NormalizeSurfaceArea = b
		default:
			m.Extra[key] = value
		}
	}
	if err := scan.Err(); err != nil {
		return BundleManifest{}, fmt.Errorf("objio: %w: %v", ErrIO, err)
	}
	return m, nil
}

func saveManifest(path string, m BundleManifest) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("objio: %w: %v", ErrIO, err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	format := "id"
	if m.LandmarkFormat == FormatIDPos {
		format = "id_x_y_z"
	}
	fmt.Fprintf(bw, "landmark_format %s\n", format)
	fmt.Fprintf(bw, "normalize_surface_area %t\n", m.NormalizeSurfaceArea)
	for k, v := range m.Extra {
		fmt.Fprintf(bw, "%s %s\n", k, v)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("objio: %w: %v", ErrIO, err)
	}
	return nil
}
