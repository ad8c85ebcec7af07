package mount

import (
	"math"

	"github.com/golang/geo/r3"

	"go.viam.com/sensormount/spatialmath"
)

// Unprefixed names of the links that are always present.
const (
	EndEffectorLink = "link_eef"
	CameraLink      = "camera_link"
	cameraJoint     = "camera_joint"
)

// Mesh resources for the tactile sensor mount. The consuming toolchain resolves the package:// URIs.
const (
	MountMeshFamily    = "tactile_mount"
	MountVisualMesh    = "package://xarm_description/meshes/tactile_mount/visual/" + MountMeshFamily + ".stl"
	MountCollisionMesh = "package://xarm_description/meshes/tactile_mount/collision/" + MountMeshFamily + ".stl"
	MountMeshScale     = 0.001
)

// Stream names one of the camera's image pipelines.
type Stream string

// The camera streams, in the order their frames are emitted.
const (
	StreamDepth  Stream = "depth"
	StreamColor  Stream = "color"
	StreamInfra1 Stream = "infra1"
	StreamInfra2 Stream = "infra2"
)

// Streams returns all camera streams.
func Streams() []Stream {
	return []Stream{StreamDepth, StreamColor, StreamInfra1, StreamInfra2}
}

// FrameName is the mechanical frame of the stream, e.g. camera_depth_frame.
func (s Stream) FrameName() string {
	return "camera_" + string(s) + "_frame"
}

// OpticalFrameName is the Z-forward frame of the stream, e.g. camera_depth_optical_frame.
func (s Stream) OpticalFrameName() string {
	return "camera_" + string(s) + "_optical_frame"
}

// IsCameraFrame reports whether the unprefixed name is one of the frames only a camera mount has.
func IsCameraFrame(name string) bool {
	if name == CameraLink {
		return true
	}
	for _, s := range Streams() {
		if name == s.FrameName() || name == s.OpticalFrameName() {
			return true
		}
	}
	return false
}

func (s Stream) jointName() string {
	return "camera_" + string(s) + "_joint"
}

func (s Stream) opticalJointName() string {
	return "camera_" + string(s) + "_optical_joint"
}

func (s Stream) valid() bool {
	switch s {
	case StreamDepth, StreamColor, StreamInfra1, StreamInfra2:
		return true
	}
	return false
}

var (
	// mountRPY turns the mesh, modelled Y-up, into the link frame.
	mountRPY = spatialmath.EulerAngles{Roll: math.Pi / 2}

	// OpticalRPY rotates a camera mechanical frame (X forward) into its optical frame (Z forward, X right, Y down).
	OpticalRPY = spatialmath.EulerAngles{Roll: -math.Pi / 2, Pitch: 0, Yaw: -math.Pi / 2}

	// cameraMountTranslation and cameraMountRPY place camera_link on the mount, in meters and radians.
	cameraMountTranslation = r3.Vector{X: 0, Y: -0.0725, Z: 0.029}
	cameraMountRPY         = spatialmath.EulerAngles{Roll: math.Pi, Pitch: -math.Pi / 2, Yaw: 0}

	// streamOffsets are the mechanical frame origins relative to camera_link, in meters.
	streamOffsets = map[Stream]r3.Vector{
		StreamDepth:  {},
		StreamColor:  {Y: 0.015},
		StreamInfra1: {},
		StreamInfra2: {Y: -0.050},
	}
)

// frameRow is one fixed joint of the camera subtree and the frame-only link it creates.
type frameRow struct {
	joint       string
	parent      string
	child       string
	translation r3.Vector
	rpy         spatialmath.EulerAngles
}

// cameraFrameTable lists the camera subtree, unprefixed, parents before children.
func cameraFrameTable() []frameRow {
	rows := []frameRow{{
		joint:       cameraJoint,
		parent:      EndEffectorLink,
		child:       CameraLink,
		translation: cameraMountTranslation,
		rpy:         cameraMountRPY,
	}}
	for _, s := range Streams() {
		rows = append(rows,
			frameRow{
				joint:       s.jointName(),
				parent:      CameraLink,
				child:       s.FrameName(),
				translation: streamOffsets[s],
			},
			frameRow{
				joint:  s.opticalJointName(),
				parent: s.FrameName(),
				child:  s.OpticalFrameName(),
				rpy:    OpticalRPY,
			},
		)
	}
	return rows
}
