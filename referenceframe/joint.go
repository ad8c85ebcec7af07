package referenceframe

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"go.viam.com/sensormount/spatialmath"
	"go.viam.com/sensormount/utils"
)

// World is the reserved name of the frame every robot description is ultimately attached to.
const World = "world"

// Joint types as named in URDF. Fragments only accept fixed joints; the others are recognized so that
// importers can report them.
const (
	FixedJoint      = "fixed"
	RevoluteJoint   = "revolute"
	ContinuousJoint = "continuous"
	PrismaticJoint  = "prismatic"
)

// JointConfig is a fixed relation between a parent and a child link. Translation is in meters and RPY in radians.
type JointConfig struct {
	ID          string                  `json:"id"`
	Type        string                  `json:"type"`
	Parent      string                  `json:"parent"`
	Child       string                  `json:"child"`
	Translation r3.Vector               `json:"translation"`
	RPY         spatialmath.EulerAngles `json:"rpy"`
}

// NewFixedJoint returns a fixed JointConfig.
func NewFixedJoint(id, parent, child string, translation r3.Vector, rpy spatialmath.EulerAngles) JointConfig {
	return JointConfig{
		ID:          id,
		Type:        FixedJoint,
		Parent:      parent,
		Child:       child,
		Translation: translation,
		RPY:         rpy,
	}
}

// Pose returns the transform from the parent frame to the child frame, with translation in millimeters.
func (cfg *JointConfig) Pose() spatialmath.Pose {
	rpy := cfg.RPY
	return spatialmath.NewPose(
		r3.Vector{
			X: utils.MetersToMM(cfg.Translation.X),
			Y: utils.MetersToMM(cfg.Translation.Y),
			Z: utils.MetersToMM(cfg.Translation.Z),
		},
		&rpy,
	)
}

func (cfg *JointConfig) validate() error {
	if cfg.ID == "" {
		return errors.New("joint has no name")
	}
	if cfg.ID == World {
		return NewReservedWordError("joint", World)
	}
	if cfg.Type != FixedJoint {
		return NewUnsupportedJointTypeError(cfg.Type)
	}
	if cfg.Parent == cfg.Child {
		return errors.Wrapf(ErrCircularReference, "joint '%s'", cfg.ID)
	}
	return nil
}

func (cfg *JointConfig) finite() bool {
	t := cfg.Translation
	return utils.IsFinite(t.X, t.Y, t.Z) && cfg.RPY.Finite()
}
