package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestMeshReference(t *testing.T) {
	m := NewMeshReference("package://desc/meshes/visual/mount.stl", "mount", 0.001, r3.Vector{Z: 0.01},
		EulerAngles{Roll: math.Pi / 2})
	test.That(t, m.Validate(), test.ShouldBeNil)

	s, ok := m.UniformScale()
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, s, test.ShouldEqual, 0.001)

	test.That(t, m.Pose().Point().Z, test.ShouldAlmostEqual, 10)
	test.That(t, m.Pose().Orientation().EulerAngles().Roll, test.ShouldAlmostEqual, math.Pi/2)

	m.Scale.Y = 0.002
	_, ok = m.UniformScale()
	test.That(t, ok, test.ShouldBeFalse)
	test.That(t, m.Validate(), test.ShouldBeNil)

	m.Scale.Z = 0
	test.That(t, m.Validate(), test.ShouldNotBeNil)
}

func TestMeshReferenceValidate(t *testing.T) {
	good := func() *MeshReference {
		return NewMeshReference("a.stl", "a", 1, r3.Vector{}, EulerAngles{})
	}
	m := good()
	m.Filename = ""
	test.That(t, m.Validate(), test.ShouldBeError)

	m = good()
	m.Translation.X = math.Inf(1)
	test.That(t, m.Validate().Error(), test.ShouldContainSubstring, "non-finite translation")

	m = good()
	m.RPY.Yaw = math.NaN()
	test.That(t, m.Validate().Error(), test.ShouldContainSubstring, "non-finite rotation")

	test.That(t, MeshFamilyFromFilename("package://x/meshes/collision/tactile_mount.stl"), test.ShouldEqual, "tactile_mount")
	test.That(t, MeshFamilyFromFilename("plain"), test.ShouldEqual, "plain")
}
