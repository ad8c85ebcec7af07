package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.viam.com/sensormount/config"
	"go.viam.com/sensormount/logging"
	"go.viam.com/sensormount/mount"
	"go.viam.com/sensormount/referenceframe/urdf"
	"go.viam.com/sensormount/spatialmath"
)

// buildMount reads the optional config file, applies flag overrides and builds the mount.
func buildMount(c *cli.Context, logger logging.Logger) (*mount.Mount, error) {
	cfg := mount.Config{}
	if path := c.String(flagConfig); path != "" {
		fromFile, err := config.ReadMountConfig(path, logger)
		if err != nil {
			return nil, err
		}
		cfg = *fromFile
	}
	if c.IsSet(flagPrefix) {
		cfg.Prefix = c.String(flagPrefix)
	}
	if c.IsSet(flagCamera) {
		cfg.IncludeCamera = c.Bool(flagCamera)
	}
	return mount.Build(cfg, logger.Sublogger("mount"))
}

// URDFAction writes the mount as URDF.
func URDFAction(c *cli.Context, logger logging.Logger) error {
	m, err := buildMount(c, logger)
	if err != nil {
		return err
	}
	model := urdf.NewModelFromFragment(m.Fragment(), c.String(flagName))
	if c.Bool(flagCollapse) {
		model = urdf.CollapseFixedLeafJoints(model)
	}
	data, err := model.MarshalModelXML()
	if err != nil {
		return err
	}

	output := c.String(flagOutput)
	if output == "" {
		_, err = c.App.Writer.Write(data)
		return err
	}
	//nolint:gosec // G306: URDF output is shared with other tools
	if err := os.WriteFile(output, data, fileOutputPerm); err != nil {
		return errors.Wrap(err, "failed to write output file")
	}
	logger.Infow("wrote URDF", "path", output, "links", len(model.Links), "joints", len(model.Joints))
	return nil
}

// FramesAction prints the links and joints of the mount.
func FramesAction(c *cli.Context, logger logging.Logger) error {
	m, err := buildMount(c, logger)
	if err != nil {
		return err
	}
	if c.Bool(flagJSON) {
		data, err := json.MarshalIndent(m.Fragment(), "", "  ")
		if err != nil {
			return err
		}
		printf(c.App.Writer, "%s\n", data)
		return nil
	}
	printf(c.App.Writer, "%s\n", m.Fragment().String())
	return nil
}

// TransformAction prints the pose of one frame of the mount expressed in another.
func TransformAction(c *cli.Context, logger logging.Logger) error {
	m, err := buildMount(c, logger)
	if err != nil {
		return err
	}
	prefix := m.Config().Prefix
	frame := prefix + c.String(flagFrame)
	reference := m.EndEffector()
	if c.IsSet(flagReference) {
		reference = prefix + c.String(flagReference)
	}
	for _, name := range []string{c.String(flagFrame), c.String(flagReference)} {
		if !mount.IsCameraFrame(name) {
			continue
		}
		if _, err := m.CameraFrames(); err != nil {
			return err
		}
	}
	pose, err := m.Fragment().PoseInFrame(frame, reference)
	if err != nil {
		return err
	}
	printf(c.App.Writer, "%s in %s: %s\n", frame, reference, spatialmath.PoseToString(pose))
	return nil
}

// OrbitAction prints waypoints for the camera link circling a point given in the mount link frame, each
// aimed at that point.
func OrbitAction(c *cli.Context, logger logging.Logger) error {
	center := c.Float64Slice(flagCenter)
	if len(center) != 3 {
		return errors.Errorf("--%s takes three values (x,y,z in millimeters), got %d", flagCenter, len(center))
	}
	m, err := buildMount(c, logger)
	if err != nil {
		return err
	}
	link := m.CameraOrEndEffector(logger)
	start, err := m.Fragment().PoseInRoot(link)
	if err != nil {
		return err
	}
	waypoints, err := spatialmath.CircleWaypoints(r3.Vector{X: center[0], Y: center[1], Z: center[2]}, start, c.Int(flagWaypoints))
	if err != nil {
		return err
	}
	for i, wp := range waypoints {
		if c.Bool(flagPerpendicular) {
			wp = spatialmath.NewPose(wp.Point(), spatialmath.RotateToPerpendicular(wp.Orientation()))
		}
		printf(c.App.Writer, "%d %s in %s: %s\n", i+1, link, m.EndEffector(), spatialmath.PoseToString(wp))
	}
	return nil
}

// ValidateAction parses a URDF file and reports the fragment it describes.
func ValidateAction(c *cli.Context, logger logging.Logger) error {
	if c.Args().Len() != 1 {
		return errors.New("validate takes exactly one URDF file")
	}
	path := c.Args().First()
	f, name, err := urdf.ParseModelXMLFile(path)
	if err != nil {
		return errors.Wrapf(err, "%s is not a valid fragment", path)
	}
	logger.Debugw("validated URDF", "path", path, "robot", name)
	printf(c.App.Writer, "%s: robot %q, root %s, %d links, %d joints, max depth %d\n",
		path, name, f.Root(), len(f.Links()), len(f.Joints()), f.MaxDepth())
	return nil
}

// printf prints a message with no prefix.
func printf(w io.Writer, format string, a ...interface{}) {
	//nolint:errcheck // no need to check the error of printing to the app's writer
	fmt.Fprintf(w, format, a...)
}
