package urdf

import (
	"errors"
	"math"
	"strings"
	"testing"

	"go.viam.com/test"

	"go.viam.com/sensormount/referenceframe"
	"go.viam.com/sensormount/utils"
)

func TestParseModelXMLFile(t *testing.T) {
	f, name, err := ParseModelXMLFile(utils.ResolveFile("referenceframe/urdf/testdata/camera_stub.urdf"))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, name, test.ShouldEqual, "camera_stub")
	test.That(t, f.Root(), test.ShouldEqual, "plate")
	test.That(t, f.LinkNames(), test.ShouldResemble, []string{"plate", "cam", "cam_optical"})

	plate, ok := f.Link("plate")
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, plate.Visual.Family, test.ShouldEqual, "plate")
	test.That(t, plate.Visual.Scale.Z, test.ShouldEqual, 0.001)
	test.That(t, plate.Visual.Translation.Z, test.ShouldEqual, 0.005)
	test.That(t, plate.Visual.RPY.Roll, test.ShouldEqual, math.Pi/2)
	// a mesh without a scale attribute is unscaled
	test.That(t, plate.Collision.Scale.X, test.ShouldEqual, 1.)
	test.That(t, plate.Collision.Family, test.ShouldEqual, plate.Visual.Family)

	// an origin without rpy means no rotation
	j, ok := f.Joint("plate_cam")
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, j.Translation.X, test.ShouldEqual, 0.02)
	test.That(t, j.RPY.Roll, test.ShouldEqual, 0.)

	d, err := f.Depth("cam_optical")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, d, test.ShouldEqual, 2)

	_, _, err = ParseModelXMLFile(utils.ResolveFile("referenceframe/urdf/testdata/revolute.urdf"))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "movable")

	_, _, err = ParseModelXMLFile("does/not/exist.urdf")
	test.That(t, err.Error(), test.ShouldContainSubstring, "failed to read URDF file")
}

func TestUnmarshalModelXMLErrors(t *testing.T) {
	_, err := UnmarshalModelXML(nil)
	test.That(t, err, test.ShouldBeError, referenceframe.ErrNoModelInformation)

	_, err = UnmarshalModelXML([]byte("<robot"))
	test.That(t, err, test.ShouldNotBeNil)

	for name, doc := range map[string]string{
		"box":       `<robot><link name="a"><visual><geometry><box size="1 1 1"/></geometry></visual></link></robot>`,
		"empty":     `<robot><link name="a"><collision><geometry></geometry></collision></link></robot>`,
		"bad scale": `<robot><link name="a"><visual><geometry><mesh filename="a.stl" scale="1 1"/></geometry></visual></link></robot>`,
		"bad xyz": `<robot><link name="a"/><link name="b"/>` +
			`<joint name="j" type="fixed"><parent link="a"/><child link="b"/><origin xyz="0 x 0"/></joint></robot>`,
		"two roots": `<robot><link name="a"/><link name="b"/></robot>`,
		"no links":  `<robot name="empty"></robot>`,
		"planar": `<robot><link name="a"/><link name="b"/>` +
			`<joint name="j" type="planar"><parent link="a"/><child link="b"/></joint></robot>`,
	} {
		t.Run(name, func(t *testing.T) {
			mc, err := UnmarshalModelXML([]byte(doc))
			test.That(t, err, test.ShouldBeNil)
			_, err = mc.ToFragment()
			test.That(t, err, test.ShouldNotBeNil)
		})
	}

	mc, err := UnmarshalModelXML([]byte(`<robot><link name="a"/><link name="b"/></robot>`))
	test.That(t, err, test.ShouldBeNil)
	_, err = mc.ToFragment()
	test.That(t, errors.Is(err, referenceframe.ErrNeedOneRoot), test.ShouldBeTrue)
}

func TestModelRoundTrip(t *testing.T) {
	f, _, err := ParseModelXMLFile(utils.ResolveFile("referenceframe/urdf/testdata/camera_stub.urdf"))
	test.That(t, err, test.ShouldBeNil)

	data, err := NewModelFromFragment(f, "again").MarshalModelXML()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, strings.HasPrefix(string(data), "<?xml"), test.ShouldBeTrue)
	test.That(t, string(data), test.ShouldContainSubstring, `<robot name="again">`)
	test.That(t, string(data), test.ShouldContainSubstring, `scale="0.001 0.001 0.001"`)
	test.That(t, string(data), test.ShouldContainSubstring, `type="fixed"`)

	mc, err := UnmarshalModelXML(data)
	test.That(t, err, test.ShouldBeNil)
	f2, err := mc.ToFragment()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, f2.Root(), test.ShouldEqual, f.Root())
	test.That(t, f2.Links(), test.ShouldResemble, f.Links())
	test.That(t, f2.Joints(), test.ShouldResemble, f.Joints())
}

func TestCollapseFixedLeafJoints(t *testing.T) {
	f, _, err := ParseModelXMLFile(utils.ResolveFile("referenceframe/urdf/testdata/camera_stub.urdf"))
	test.That(t, err, test.ShouldBeNil)
	mc := NewModelFromFragment(f, "stub")

	collapsed := CollapseFixedLeafJoints(mc)
	test.That(t, len(collapsed.Links), test.ShouldEqual, 2)
	test.That(t, len(collapsed.Joints), test.ShouldEqual, 1)
	test.That(t, collapsed.Joints[0].Name, test.ShouldEqual, "plate_cam")
	// the input is untouched
	test.That(t, len(mc.Links), test.ShouldEqual, 3)

	again := CollapseFixedLeafJoints(collapsed)
	test.That(t, len(again.Links), test.ShouldEqual, 1)
	test.That(t, again.Joints, test.ShouldBeEmpty)

	cf, err := again.ToFragment()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cf.Root(), test.ShouldEqual, "plate")
}
