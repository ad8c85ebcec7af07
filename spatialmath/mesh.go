package spatialmath

import (
	"math"
	"path/filepath"
	"strings"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// MeshReference names a mesh resource owned by the consuming toolchain. The mesh itself is never loaded;
// only its location, scale and placement relative to the owning link are carried.
type MeshReference struct {
	// Filename is the resource path, usually a package:// URI.
	Filename string `json:"filename"`
	// Family groups the visual and collision variants of the same model.
	Family string `json:"family"`
	// Scale is applied per axis to the mesh vertices.
	Scale r3.Vector `json:"scale"`
	// Translation of the mesh origin in meters.
	Translation r3.Vector `json:"translation"`
	// RPY of the mesh origin in radians.
	RPY EulerAngles `json:"rpy"`
}

// NewMeshReference returns a MeshReference with a uniform scale and the given origin.
func NewMeshReference(filename, family string, scale float64, translation r3.Vector, rpy EulerAngles) *MeshReference {
	return &MeshReference{
		Filename:    filename,
		Family:      family,
		Scale:       r3.Vector{X: scale, Y: scale, Z: scale},
		Translation: translation,
		RPY:         rpy,
	}
}

// MeshFamilyFromFilename derives a family name from the base name of a mesh path, without its extension.
func MeshFamilyFromFilename(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// UniformScale returns the scale factor and true when all three axes share it.
func (m *MeshReference) UniformScale() (float64, bool) {
	return m.Scale.X, m.Scale.X == m.Scale.Y && m.Scale.Y == m.Scale.Z
}

// Pose returns the mesh origin relative to its link, in millimeters.
func (m *MeshReference) Pose() Pose {
	rpy := m.RPY
	return NewPose(m.Translation.Mul(1000), &rpy)
}

// Validate checks that the reference names a file and that every numeric field is usable.
func (m *MeshReference) Validate() error {
	if m.Filename == "" {
		return errors.New("mesh reference has no filename")
	}
	for _, s := range []float64{m.Scale.X, m.Scale.Y, m.Scale.Z} {
		if math.IsNaN(s) || math.IsInf(s, 0) || s <= 0 {
			return errors.Errorf("mesh %q has invalid scale %v", m.Filename, m.Scale)
		}
	}
	t := m.Translation
	for _, v := range []float64{t.X, t.Y, t.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Errorf("mesh %q has non-finite translation %v", m.Filename, t)
		}
	}
	if !m.RPY.Finite() {
		return errors.Errorf("mesh %q has non-finite rotation %v", m.Filename, m.RPY)
	}
	return nil
}
