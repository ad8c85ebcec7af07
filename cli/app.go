// Package cli contains the mountgen command line application.
package cli

import (
	"io"

	"github.com/urfave/cli/v2"

	"go.viam.com/sensormount/logging"
)

const (
	// Flags.
	flagPrefix    = "prefix"
	flagCamera    = "camera"
	flagConfig    = "config"
	flagName      = "name"
	flagOutput    = "output"
	flagCollapse  = "collapse-fixed-joints"
	flagJSON      = "json"
	flagFrame     = "frame"
	flagReference = "reference"
	flagDebug     = "debug"
	flagCenter    = "center"
	flagWaypoints = "waypoints"

	flagPerpendicular = "perpendicular"

	defaultRobotName = "sensor_mount"
	fileOutputPerm   = 0o644
)

// mountFlags select the mount being built; every command that builds one takes them.
var mountFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  flagPrefix,
		Usage: "prefix applied to every link and joint name",
	},
	&cli.BoolFlag{
		Name:  flagCamera,
		Usage: "include the depth camera frames",
	},
	&cli.StringFlag{
		Name:  flagConfig,
		Usage: "JSON or YAML mount config; --prefix and --camera override its values",
	},
}

// NewApp returns the mountgen application. Documents go to out; logs go to logger.
func NewApp(out io.Writer, logger logging.Logger) *cli.App {
	return &cli.App{
		Name:      "mountgen",
		Usage:     "generate and inspect the tactile sensor mount fragment",
		Writer:    out,
		ErrWriter: out,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  flagDebug,
				Usage: "log at debug level",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool(flagDebug) {
				logger.SetLevel(logging.DEBUG)
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "urdf",
				Usage:     "write the mount as a URDF document",
				UsageText: "mountgen urdf [--prefix P] [--camera] [--output FILE]",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:  flagName,
						Value: defaultRobotName,
						Usage: "robot name written to the URDF",
					},
					&cli.StringFlag{
						Name:    flagOutput,
						Aliases: []string{"o"},
						Usage:   "file to write; stdout when empty",
					},
					&cli.BoolFlag{
						Name:  flagCollapse,
						Usage: "drop fixed joints whose child link is a leaf",
					},
				}, mountFlags...),
				Action: func(c *cli.Context) error {
					return URDFAction(c, logger)
				},
			},
			{
				Name:  "frames",
				Usage: "print the links and joints of the mount",
				Flags: append([]cli.Flag{
					&cli.BoolFlag{
						Name:  flagJSON,
						Usage: "print JSON instead of a table",
					},
				}, mountFlags...),
				Action: func(c *cli.Context) error {
					return FramesAction(c, logger)
				},
			},
			{
				Name:  "transform",
				Usage: "print the pose of one frame in another (millimeters, radians)",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     flagFrame,
						Required: true,
						Usage:    "unprefixed frame to locate, e.g. camera_depth_optical_frame",
					},
					&cli.StringFlag{
						Name:  flagReference,
						Usage: "unprefixed frame to express the pose in; the mount link when empty",
					},
				}, mountFlags...),
				Action: func(c *cli.Context) error {
					return TransformAction(c, logger)
				},
			},
			{
				Name:  "orbit",
				Usage: "print camera link waypoints circling a point while aimed at it (millimeters, radians)",
				Flags: append([]cli.Flag{
					&cli.Float64SliceFlag{
						Name:     flagCenter,
						Required: true,
						Usage:    "x,y,z of the point to circle, in the mount link frame",
					},
					&cli.IntFlag{
						Name:  flagWaypoints,
						Value: 8,
						Usage: "number of evenly spaced stops around the circle, including the start",
					},
					&cli.BoolFlag{
						Name:  flagPerpendicular,
						Usage: "yaw each waypoint so its Z axis lies in the XZ plane",
					},
				}, mountFlags...),
				Action: func(c *cli.Context) error {
					return OrbitAction(c, logger)
				},
			},
			{
				Name:      "validate",
				Usage:     "check that a URDF file is a well formed fixed-joint fragment",
				ArgsUsage: "<file.urdf>",
				Action: func(c *cli.Context) error {
					return ValidateAction(c, logger)
				},
			},
		},
	}
}
