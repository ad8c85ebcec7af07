// Package mount builds the kinematic fragment of a tactile sensor mount on a robot end effector,
// optionally carrying a depth camera with depth, color and two infrared streams.
package mount

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"go.viam.com/sensormount/logging"
	"go.viam.com/sensormount/referenceframe"
	"go.viam.com/sensormount/spatialmath"
)

// Mount is a built fragment together with the configuration that produced it.
type Mount struct {
	cfg      Config
	fragment *referenceframe.Fragment
}

// CameraFrames names the prefixed camera frames of a mount.
type CameraFrames struct {
	Link    string
	Frames  map[Stream]string
	Optical map[Stream]string
}

// Build produces the mount fragment described by cfg. It has no side effects besides logging, and mounts
// built concurrently share no state. A nil logger is allowed.
func Build(cfg Config, logger logging.Logger) (*Mount, error) {
	if err := cfg.Validate(""); err != nil {
		return nil, err
	}

	links := []referenceframe.LinkConfig{{
		ID: cfg.name(EndEffectorLink),
		Visual: spatialmath.NewMeshReference(
			MountVisualMesh, MountMeshFamily, MountMeshScale, r3.Vector{}, mountRPY),
		Collision: spatialmath.NewMeshReference(
			MountCollisionMesh, MountMeshFamily, MountMeshScale, r3.Vector{}, mountRPY),
	}}
	var joints []referenceframe.JointConfig

	if cfg.IncludeCamera {
		for _, row := range cameraFrameTable() {
			links = append(links, referenceframe.LinkConfig{ID: cfg.name(row.child)})
			joints = append(joints, referenceframe.NewFixedJoint(
				cfg.name(row.joint), cfg.name(row.parent), cfg.name(row.child), row.translation, row.rpy,
			))
		}
	}

	fragment, err := referenceframe.NewFragment(cfg.name(EndEffectorLink), links, joints)
	if err != nil {
		// the table is static, so this only happens if a prefix slipped past validation
		return nil, errors.Wrap(ErrInvalidConfiguration, err.Error())
	}

	if logger != nil {
		logger.Debugw("built mount fragment",
			"prefix", cfg.Prefix,
			"camera", cfg.IncludeCamera,
			"links", len(links),
			"joints", len(joints),
		)
	}
	return &Mount{cfg: cfg, fragment: fragment}, nil
}

// Config returns the configuration the mount was built from.
func (m *Mount) Config() Config {
	return m.cfg
}

// Fragment returns the links and joints of the mount.
func (m *Mount) Fragment() *referenceframe.Fragment {
	return m.fragment
}

// EndEffector returns the prefixed name of the mount link, the root of the fragment.
func (m *Mount) EndEffector() string {
	return m.fragment.Root()
}

// CameraOrEndEffector returns the link the camera hangs from, found as the first child of the mount link.
// A mount without one falls back to the mount link and logs a warning. A nil logger is allowed.
func (m *Mount) CameraOrEndEffector(logger logging.Logger) string {
	if children := m.fragment.Children(m.EndEffector()); len(children) > 0 {
		return children[0]
	}
	if logger != nil {
		logger.Warnw("no camera link below the end effector, using the end effector instead", "link", m.EndEffector())
	}
	return m.EndEffector()
}

// HasCamera reports whether the camera subtree was built.
func (m *Mount) HasCamera() bool {
	return m.cfg.IncludeCamera
}

// CameraFrames returns the prefixed camera frame names, or ErrMissingSubtree if the mount was built without them.
func (m *Mount) CameraFrames() (*CameraFrames, error) {
	if !m.cfg.IncludeCamera {
		return nil, errors.Wrapf(ErrMissingSubtree, "mount %q", m.EndEffector())
	}
	cf := &CameraFrames{
		Link:    m.cfg.name(CameraLink),
		Frames:  make(map[Stream]string, len(Streams())),
		Optical: make(map[Stream]string, len(Streams())),
	}
	for _, s := range Streams() {
		cf.Frames[s] = m.cfg.name(s.FrameName())
		cf.Optical[s] = m.cfg.name(s.OpticalFrameName())
	}
	return cf, nil
}

// OpticalFrame returns the prefixed optical frame name of a stream.
func (m *Mount) OpticalFrame(s Stream) (string, error) {
	if !s.valid() {
		return "", errors.Wrapf(ErrUnknownStream, "%q", s)
	}
	cf, err := m.CameraFrames()
	if err != nil {
		return "", err
	}
	return cf.Optical[s], nil
}

// OpticalPose returns the pose of a stream's optical frame in the mount link frame, translation in millimeters.
func (m *Mount) OpticalPose(s Stream) (spatialmath.Pose, error) {
	name, err := m.OpticalFrame(s)
	if err != nil {
		return nil, err
	}
	return m.fragment.PoseInRoot(name)
}
