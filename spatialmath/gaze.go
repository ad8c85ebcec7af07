package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/num/quat"

	"go.viam.com/sensormount/utils"
)

const gazeEpsilon = 1e-9

// GazeAt returns the smallest rotation that turns the +Z axis of a frame at position toward target.
// If the two points coincide the zero orientation is returned.
func GazeAt(target, position r3.Vector) Orientation {
	dir := target.Sub(position)
	if utils.Float64AlmostEqual(dir.Norm(), 0, gazeEpsilon) {
		return NewZeroOrientation()
	}
	dir = dir.Normalize()
	forward := r3.Vector{Z: 1}
	dot := forward.Dot(dir)
	if utils.Float64AlmostEqual(dot, -1, gazeEpsilon) {
		// looking straight back; any axis perpendicular to Z works
		return &R4AA{Theta: math.Pi, RX: 1}
	}
	axis := forward.Cross(dir)
	q := Normalize(quat.Number{Real: 1 + dot, Imag: axis.X, Jmag: axis.Y, Kmag: axis.Z})
	return (*quaternion)(&q)
}

// CircleWaypoints returns n-1 poses evenly spaced around the horizontal circle about center that passes
// through start, in order and excluding start itself. Every waypoint keeps the height of start and points its
// Z axis at center. The twist about that axis turns with the angle travelled so the frame does not spin a
// full turn over the circle.
func CircleWaypoints(center r3.Vector, start Pose, n int) ([]Pose, error) {
	if n < 1 {
		return nil, errors.Errorf("need at least one waypoint, got %d", n)
	}
	from := start.Point()
	dx, dy := from.X-center.X, from.Y-center.Y
	radius := math.Hypot(dx, dy)
	if utils.Float64AlmostEqual(radius, 0, gazeEpsilon) {
		return nil, errors.New("start is directly above or below the circle center")
	}
	offset := math.Atan2(dy, dx)

	waypoints := make([]Pose, 0, n-1)
	for i := 1; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		pos := r3.Vector{
			X: center.X + radius*math.Cos(offset+angle),
			Y: center.Y + radius*math.Sin(offset+angle),
			Z: from.Z,
		}
		twist := -(math.Pi / 2) * math.Cos(angle)
		if angle > math.Pi {
			twist = (math.Pi/2)*math.Cos(angle) + math.Pi
		}
		q := Normalize(quat.Mul(GazeAt(center, pos).Quaternion(), (&EulerAngles{Yaw: twist}).Quaternion()))
		waypoints = append(waypoints, NewPose(pos, (*quaternion)(&q)))
	}
	return waypoints, nil
}

// RotateToPerpendicular yaws o about the fixed Z axis until its own Z axis lies in the XZ plane, pointing
// along +X unless it is vertical.
func RotateToPerpendicular(o Orientation) Orientation {
	q := o.Quaternion()
	z := RotateVector(q, r3.Vector{Z: 1})
	yaw := math.Atan2(z.Y, z.X)
	out := Normalize(quat.Mul((&EulerAngles{Yaw: -yaw}).Quaternion(), q))
	return (*quaternion)(&out)
}
