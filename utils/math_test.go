package utils

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestAngleConversions(t *testing.T) {
	test.That(t, DegToRad(180), test.ShouldAlmostEqual, math.Pi)
	test.That(t, DegToRad(-90), test.ShouldAlmostEqual, -math.Pi/2)
	test.That(t, RadToDeg(math.Pi/2), test.ShouldAlmostEqual, 90)
	test.That(t, RadToDeg(DegToRad(37.5)), test.ShouldAlmostEqual, 37.5)
}

func TestLengthConversions(t *testing.T) {
	test.That(t, MetersToMM(0.015), test.ShouldAlmostEqual, 15)
}

func TestIsFinite(t *testing.T) {
	test.That(t, IsFinite(), test.ShouldBeTrue)
	test.That(t, IsFinite(0, -1, math.Pi), test.ShouldBeTrue)
	test.That(t, IsFinite(0, math.NaN()), test.ShouldBeFalse)
	test.That(t, IsFinite(math.Inf(-1)), test.ShouldBeFalse)
}

func TestSpaceDelimitedFloats(t *testing.T) {
	vals := SpaceDelimitedStringToFloatSlice("  0.1 -2   3e-3 ")
	test.That(t, vals, test.ShouldResemble, []float64{0.1, -2, 0.003})

	vals = SpaceDelimitedStringToFloatSlice("1 nope 2")
	test.That(t, vals, test.ShouldHaveLength, 3)
	test.That(t, math.IsNaN(vals[1]), test.ShouldBeTrue)

	s := FloatSliceToSpaceDelimitedString(math.Pi/2, 0, -0.05)
	test.That(t, s, test.ShouldEqual, "1.5707963267948966 0 -0.05")
	test.That(t, SpaceDelimitedStringToFloatSlice(s), test.ShouldResemble, []float64{math.Pi / 2, 0, -0.05})
}

func TestValidatePrefix(t *testing.T) {
	for _, good := range []string{"", "left_", "_arm2", "robot-a_"} {
		test.That(t, ValidatePrefix(good), test.ShouldBeNil)
	}
	for _, bad := range []string{"1left", "left arm", "a/b", "ns:", "left.", string(make([]byte, 61))} {
		test.That(t, ValidatePrefix(bad), test.ShouldNotBeNil)
	}
	test.That(t, ValidateName(""), test.ShouldNotBeNil)
	test.That(t, ErrInvalidName("x y").Error(), test.ShouldContainSubstring, "must start with a letter or underscore")
}
