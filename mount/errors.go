package mount

import "github.com/pkg/errors"

var (
	// ErrInvalidConfiguration is returned when a Config cannot produce valid link and joint names.
	ErrInvalidConfiguration = errors.New("invalid mount configuration")
	// ErrMissingSubtree is returned when camera frames are requested from a mount built without the camera.
	ErrMissingSubtree = errors.New("camera frames were not built for this mount")
	// ErrUnknownStream is returned for stream names outside the camera's depth, color and infrared streams.
	ErrUnknownStream = errors.New("unknown camera stream")
)
