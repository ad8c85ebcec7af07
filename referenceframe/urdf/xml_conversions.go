package urdf

import (
	"encoding/xml"
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"go.viam.com/sensormount/spatialmath"
	"go.viam.com/sensormount/utils"
)

var errGeometryTypeUnsupported = errors.New("unsupported geometry type, only meshes can be referenced")

// geometryElement is the XML used in a URDF visual or collision element.
type geometryElement struct {
	Name     string `xml:"name,attr,omitempty"`
	Origin   *pose  `xml:"origin,omitempty"`
	Geometry struct {
		XMLName xml.Name `xml:"geometry"`
		Box     *box     `xml:"box,omitempty"`
		Sphere  *sphere  `xml:"sphere,omitempty"`
		Mesh    *mesh    `xml:"mesh,omitempty"`
	} `xml:"geometry"`
}

type box struct {
	XMLName xml.Name `xml:"box"`
	Size    string   `xml:"size,attr"` // "x y z" format, in meters
}

type sphere struct {
	XMLName xml.Name `xml:"sphere"`
	Radius  float64  `xml:"radius,attr"` // in meters
}

type mesh struct {
	XMLName  xml.Name `xml:"mesh"`
	Filename string   `xml:"filename,attr"`
	Scale    string   `xml:"scale,attr,omitempty"` // "x y z" format
}

func newGeometryElement(m *spatialmath.MeshReference) *geometryElement {
	g := &geometryElement{Origin: newPose(m.Translation, m.RPY)}
	g.Geometry.Mesh = &mesh{
		Filename: m.Filename,
		Scale:    utils.FloatSliceToSpaceDelimitedString(m.Scale.X, m.Scale.Y, m.Scale.Z),
	}
	return g
}

func (g *geometryElement) toMeshReference() (*spatialmath.MeshReference, error) {
	switch {
	case g.Geometry.Mesh != nil:
		scale := r3.Vector{X: 1, Y: 1, Z: 1}
		if g.Geometry.Mesh.Scale != "" {
			s, err := parseTriple(g.Geometry.Mesh.Scale, "scale")
			if err != nil {
				return nil, err
			}
			scale = r3.Vector{X: s[0], Y: s[1], Z: s[2]}
		}
		translation, rpy, err := g.Origin.parse()
		if err != nil {
			return nil, err
		}
		return &spatialmath.MeshReference{
			Filename:    g.Geometry.Mesh.Filename,
			Family:      spatialmath.MeshFamilyFromFilename(g.Geometry.Mesh.Filename),
			Scale:       scale,
			Translation: translation,
			RPY:         rpy,
		}, nil
	case g.Geometry.Box != nil:
		return nil, fmt.Errorf("%w: box", errGeometryTypeUnsupported)
	case g.Geometry.Sphere != nil:
		return nil, fmt.Errorf("%w: sphere", errGeometryTypeUnsupported)
	default:
		return nil, errors.New("couldn't parse xml: no geometry defined")
	}
}

type frame struct {
	Link string `xml:"link,attr"`
}

type pose struct {
	XMLName xml.Name `xml:"origin"`
	XYZ     string   `xml:"xyz,attr"` // "x y z" format, in meters
	RPY     string   `xml:"rpy,attr"` // Fixed frame angle "r p y" format, in radians
}

func newPose(translation r3.Vector, rpy spatialmath.EulerAngles) *pose {
	return &pose{
		XYZ: utils.FloatSliceToSpaceDelimitedString(translation.X, translation.Y, translation.Z),
		RPY: utils.FloatSliceToSpaceDelimitedString(rpy.Roll, rpy.Pitch, rpy.Yaw),
	}
}

// parse reads the origin; a missing origin or attribute means zero, as URDF defines.
func (p *pose) parse() (r3.Vector, spatialmath.EulerAngles, error) {
	if p == nil {
		return r3.Vector{}, spatialmath.EulerAngles{}, nil
	}
	xyz, rpy := []float64{0, 0, 0}, []float64{0, 0, 0}
	var err error
	if p.XYZ != "" {
		if xyz, err = parseTriple(p.XYZ, "xyz"); err != nil {
			return r3.Vector{}, spatialmath.EulerAngles{}, err
		}
	}
	if p.RPY != "" {
		if rpy, err = parseTriple(p.RPY, "rpy"); err != nil {
			return r3.Vector{}, spatialmath.EulerAngles{}, err
		}
	}
	return r3.Vector{X: xyz[0], Y: xyz[1], Z: xyz[2]},
		spatialmath.EulerAngles{Roll: rpy[0], Pitch: rpy[1], Yaw: rpy[2]},
		nil
}

// parseTriple reads exactly three finite numbers from a space-delimited attribute.
func parseTriple(s, attr string) ([]float64, error) {
	vals := utils.SpaceDelimitedStringToFloatSlice(s)
	if len(vals) != 3 {
		return nil, errors.Errorf("attribute %s=%q must hold three numbers", attr, s)
	}
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.Errorf("attribute %s=%q must hold finite numbers", attr, s)
		}
	}
	return vals, nil
}
