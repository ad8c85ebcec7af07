package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func zAxis(o Orientation) r3.Vector {
	return RotateVector(o.Quaternion(), r3.Vector{Z: 1})
}

func TestGazeAt(t *testing.T) {
	for _, target := range []r3.Vector{
		{X: 1},
		{Y: -3, Z: 2},
		{X: 1, Y: 1, Z: 1},
		{Z: 5},
		{Z: -5},
	} {
		got := zAxis(GazeAt(target, r3.Vector{}))
		want := target.Normalize()
		test.That(t, got.X, test.ShouldAlmostEqual, want.X)
		test.That(t, got.Y, test.ShouldAlmostEqual, want.Y)
		test.That(t, got.Z, test.ShouldAlmostEqual, want.Z)
	}

	same := GazeAt(r3.Vector{X: 2}, r3.Vector{X: 2})
	test.That(t, OrientationAlmostEqual(same, NewZeroOrientation()), test.ShouldBeTrue)
}

func TestCircleWaypoints(t *testing.T) {
	center := r3.Vector{X: 300, Y: 100, Z: 0}
	start := NewPose(r3.Vector{X: 500, Y: 100, Z: 250}, NewZeroOrientation())

	waypoints, err := CircleWaypoints(center, start, 8)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(waypoints), test.ShouldEqual, 7)

	for i, wp := range waypoints {
		p := wp.Point()
		test.That(t, p.Z, test.ShouldAlmostEqual, 250)
		test.That(t, math.Hypot(p.X-center.X, p.Y-center.Y), test.ShouldAlmostEqual, 200)

		angle := math.Atan2(p.Y-center.Y, p.X-center.X)
		want := 2 * math.Pi * float64(i+1) / 8
		test.That(t, math.Cos(angle), test.ShouldAlmostEqual, math.Cos(want))
		test.That(t, math.Sin(angle), test.ShouldAlmostEqual, math.Sin(want))

		look := zAxis(wp.Orientation())
		toCenter := center.Sub(p).Normalize()
		test.That(t, look.Dot(toCenter), test.ShouldAlmostEqual, 1)
	}

	// halfway round the circle the frame sits opposite start
	test.That(t, waypoints[3].Point().X, test.ShouldAlmostEqual, 100)
	test.That(t, waypoints[3].Point().Y, test.ShouldAlmostEqual, 100)
}

func TestCircleWaypointsErrors(t *testing.T) {
	start := NewPoseFromPoint(r3.Vector{X: 100})

	wps, err := CircleWaypoints(r3.Vector{}, start, 1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, wps, test.ShouldBeEmpty)

	_, err = CircleWaypoints(r3.Vector{}, start, 0)
	test.That(t, err, test.ShouldNotBeNil)

	_, err = CircleWaypoints(r3.Vector{X: 100, Z: -50}, start, 4)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "center")
}

func TestRotateToPerpendicular(t *testing.T) {
	for _, ea := range []*EulerAngles{
		{Roll: 0.3, Pitch: 1.0, Yaw: 0.7},
		{Pitch: math.Pi / 2, Yaw: -2},
		{Roll: -1.2, Pitch: 0.4, Yaw: 2.9},
	} {
		before := zAxis(ea)
		after := zAxis(RotateToPerpendicular(ea))
		test.That(t, after.Y, test.ShouldAlmostEqual, 0)
		test.That(t, after.X, test.ShouldBeGreaterThanOrEqualTo, 0)
		test.That(t, after.Z, test.ShouldAlmostEqual, before.Z)
		test.That(t, after.X, test.ShouldAlmostEqual, math.Hypot(before.X, before.Y))
	}

	// already in the XZ plane: unchanged
	level := &EulerAngles{Pitch: math.Pi / 2}
	test.That(t, OrientationAlmostEqual(RotateToPerpendicular(level), level), test.ShouldBeTrue)
}
