package mount

import (
	"github.com/pkg/errors"

	"go.viam.com/sensormount/utils"
)

// Config selects how a mount fragment is built.
type Config struct {
	// Prefix is prepended to every link and joint name so that several mounts can share one robot description.
	Prefix string `json:"prefix"`
	// IncludeCamera adds the depth camera frames below the mount link.
	IncludeCamera bool `json:"include_camera"`
}

// Validate ensures all parts of the config are valid. path names the config being validated and
// prefixes any error.
func (cfg *Config) Validate(path string) error {
	err := utils.ValidatePrefix(cfg.Prefix)
	if err == nil {
		// a valid prefix can still push the longest emitted name over the length limit
		for _, base := range cfg.baseNames() {
			if err = utils.ValidateName(cfg.name(base)); err != nil {
				break
			}
		}
	}
	if err == nil {
		return nil
	}
	err = errors.Wrapf(ErrInvalidConfiguration, "prefix: %v", err)
	if path != "" {
		return errors.Wrap(err, path)
	}
	return err
}

// baseNames lists every unprefixed link and joint name the config emits.
func (cfg *Config) baseNames() []string {
	names := []string{EndEffectorLink}
	if cfg.IncludeCamera {
		for _, row := range cameraFrameTable() {
			names = append(names, row.joint, row.child)
		}
	}
	return names
}

func (cfg *Config) name(base string) string {
	return cfg.Prefix + base
}
