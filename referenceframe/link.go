package referenceframe

import (
	"github.com/pkg/errors"

	"go.viam.com/sensormount/spatialmath"
)

// LinkConfig is a rigid body of a fragment. A link without geometry is a pure coordinate frame.
type LinkConfig struct {
	ID        string                     `json:"id"`
	Visual    *spatialmath.MeshReference `json:"visual,omitempty"`
	Collision *spatialmath.MeshReference `json:"collision,omitempty"`
}

// HasGeometry reports whether the link carries a visual or collision mesh.
func (cfg *LinkConfig) HasGeometry() bool {
	return cfg.Visual != nil || cfg.Collision != nil
}

func (cfg *LinkConfig) validate() error {
	if cfg.ID == "" {
		return errors.New("link has no name")
	}
	if cfg.ID == World {
		return NewReservedWordError("link", World)
	}
	for _, m := range []*spatialmath.MeshReference{cfg.Visual, cfg.Collision} {
		if m == nil {
			continue
		}
		if err := m.Validate(); err != nil {
			return errors.Wrapf(err, "link '%s'", cfg.ID)
		}
	}
	return nil
}

func (cfg LinkConfig) clone() LinkConfig {
	if cfg.Visual != nil {
		v := *cfg.Visual
		cfg.Visual = &v
	}
	if cfg.Collision != nil {
		c := *cfg.Collision
		cfg.Collision = &c
	}
	return cfg
}
