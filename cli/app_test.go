package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.viam.com/test"

	"go.viam.com/sensormount/logging"
	"go.viam.com/sensormount/mount"
	"go.viam.com/sensormount/referenceframe"
	"go.viam.com/sensormount/referenceframe/urdf"
	"go.viam.com/sensormount/utils"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := NewApp(&out, logging.NewTestLogger(t))
	err := app.Run(append([]string{"mountgen"}, args...))
	return out.String(), err
}

func TestURDFCommand(t *testing.T) {
	out, err := run(t, "urdf", "--prefix", "left_", "--camera")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, `<robot name="sensor_mount">`)
	test.That(t, out, test.ShouldContainSubstring, `<link name="left_camera_depth_optical_frame">`)
	test.That(t, strings.Count(out, "<joint "), test.ShouldEqual, 9)

	mc, err := urdf.UnmarshalModelXML([]byte(out))
	test.That(t, err, test.ShouldBeNil)
	f, err := mc.ToFragment()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, f.Root(), test.ShouldEqual, "left_link_eef")
	test.That(t, len(f.Links()), test.ShouldEqual, 10)
}

func TestURDFCommandToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mount.urdf")
	out, err := run(t, "urdf", "--camera", "--collapse-fixed-joints", "--name", "eef", "-o", path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldBeEmpty)

	f, name, err := urdf.ParseModelXMLFile(path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, name, test.ShouldEqual, "eef")
	// the four optical leaves are collapsed away
	test.That(t, len(f.Links()), test.ShouldEqual, 6)
	test.That(t, len(f.Joints()), test.ShouldEqual, 5)

	_, err = run(t, "urdf", "-o", filepath.Join(t.TempDir(), "missing", "dir", "x.urdf"))
	test.That(t, err, test.ShouldNotBeNil)
}

func TestFramesCommand(t *testing.T) {
	out, err := run(t, "frames", "--camera")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "camera_infra2_optical_frame")
	test.That(t, out, test.ShouldContainSubstring, "tactile_mount")

	out, err = run(t, "frames", "--json", "--prefix", "r_")
	test.That(t, err, test.ShouldBeNil)
	f, err := referenceframe.UnmarshalFragmentJSON([]byte(out))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, f.LinkNames(), test.ShouldResemble, []string{"r_link_eef"})

	_, err = run(t, "frames", "--prefix", "bad prefix")
	test.That(t, errors.Is(err, mount.ErrInvalidConfiguration), test.ShouldBeTrue)
}

func TestFramesCommandWithConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mount.yaml")
	test.That(t, os.WriteFile(path, []byte("prefix: cfg_\ninclude_camera: true\n"), 0o600), test.ShouldBeNil)

	out, err := run(t, "frames", "--json", "--config", path)
	test.That(t, err, test.ShouldBeNil)
	f, err := referenceframe.UnmarshalFragmentJSON([]byte(out))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, f.Root(), test.ShouldEqual, "cfg_link_eef")
	test.That(t, len(f.Links()), test.ShouldEqual, 10)

	// flags override the file
	out, err = run(t, "frames", "--json", "--config", path, "--camera=false", "--prefix", "flag_")
	test.That(t, err, test.ShouldBeNil)
	f, err = referenceframe.UnmarshalFragmentJSON([]byte(out))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, f.LinkNames(), test.ShouldResemble, []string{"flag_link_eef"})
}

func TestTransformCommand(t *testing.T) {
	out, err := run(t, "transform", "--camera", "--frame", "camera_depth_optical_frame", "--reference", "camera_link")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "camera_depth_optical_frame in camera_link")

	out, err = run(t, "transform", "--camera", "--prefix", "left_", "--frame", "camera_color_frame")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "left_camera_color_frame in left_link_eef")

	_, err = run(t, "transform", "--frame", "camera_link")
	test.That(t, errors.Is(err, mount.ErrMissingSubtree), test.ShouldBeTrue)
	_, err = run(t, "transform", "--frame", "link_eef", "--reference", "camera_color_optical_frame")
	test.That(t, errors.Is(err, mount.ErrMissingSubtree), test.ShouldBeTrue)

	// unknown frames are reported as such, camera or not
	_, err = run(t, "transform", "--frame", "typo")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, errors.Is(err, mount.ErrMissingSubtree), test.ShouldBeFalse)
	test.That(t, err.Error(), test.ShouldContainSubstring, "typo")

	_, err = run(t, "transform", "--camera", "--frame", "nope")
	test.That(t, err, test.ShouldNotBeNil)
}

func TestOrbitCommand(t *testing.T) {
	out, err := run(t, "orbit", "--camera", "--prefix", "left_", "--center", "300,0,0", "--waypoints", "4")
	test.That(t, err, test.ShouldBeNil)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	test.That(t, len(lines), test.ShouldEqual, 3)
	test.That(t, lines[0], test.ShouldStartWith, "1 left_camera_link in left_link_eef:")

	out, err = run(t, "orbit", "--center", "300,0,0", "--waypoints", "2", "--perpendicular")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldStartWith, "1 link_eef in link_eef:")

	_, err = run(t, "orbit", "--center", "1,2")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "three values")

	// the mount link sits on the circle axis when the center is straight below it
	_, err = run(t, "orbit", "--center", "0,0,-100")
	test.That(t, err, test.ShouldNotBeNil)
}

func TestValidateCommand(t *testing.T) {
	out, err := run(t, "validate", utils.ResolveFile("referenceframe/urdf/testdata/camera_stub.urdf"))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, `robot "camera_stub", root plate, 3 links, 2 joints, max depth 2`)

	_, err = run(t, "validate", utils.ResolveFile("referenceframe/urdf/testdata/revolute.urdf"))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "is not a valid fragment")

	_, err = run(t, "validate")
	test.That(t, err, test.ShouldNotBeNil)
}
