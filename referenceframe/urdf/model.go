// Package urdf provides functions which convert kinematic fragments to and from *.urdf files.
package urdf

import (
	"encoding/xml"
	"os"

	"github.com/pkg/errors"

	"go.viam.com/sensormount/referenceframe"
)

// Extension is the file extension associated with URDF files.
const Extension string = "urdf"

// ModelConfig represents all supported fields in a Universal Robot Description Format (URDF) file.
type ModelConfig struct {
	XMLName xml.Name `xml:"robot"`
	Name    string   `xml:"name,attr"`
	Links   []link   `xml:"link"`
	Joints  []joint  `xml:"joint"`
}

// link is a struct which details the XML used in a URDF link element.
type link struct {
	XMLName   xml.Name          `xml:"link"`
	Name      string            `xml:"name,attr"`
	Visual    []geometryElement `xml:"visual"`
	Collision []geometryElement `xml:"collision"`
}

// joint is a struct which details the XML used in a URDF joint element.
type joint struct {
	XMLName xml.Name `xml:"joint"`
	Name    string   `xml:"name,attr"`
	Type    string   `xml:"type,attr"`
	Origin  *pose    `xml:"origin,omitempty"`
	Parent  frame    `xml:"parent"`
	Child   frame    `xml:"child"`
}

// NewModelFromFragment creates a urdf.ModelConfig struct which can be marshalled into xml and will be a
// valid .urdf file representing the given fragment.
func NewModelFromFragment(f *referenceframe.Fragment, name string) *ModelConfig {
	mc := &ModelConfig{Name: name}
	for _, l := range f.Links() {
		elem := link{Name: l.ID}
		if l.Visual != nil {
			elem.Visual = []geometryElement{*newGeometryElement(l.Visual)}
		}
		if l.Collision != nil {
			elem.Collision = []geometryElement{*newGeometryElement(l.Collision)}
		}
		mc.Links = append(mc.Links, elem)
	}
	for _, j := range f.Joints() {
		mc.Joints = append(mc.Joints, joint{
			Name:   j.ID,
			Type:   j.Type,
			Origin: newPose(j.Translation, j.RPY),
			Parent: frame{j.Parent},
			Child:  frame{j.Child},
		})
	}
	return mc
}

// MarshalModelXML renders the model as an indented URDF document with an XML header.
func (mc *ModelConfig) MarshalModelXML() ([]byte, error) {
	out, err := xml.MarshalIndent(mc, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal URDF")
	}
	return append([]byte(xml.Header), append(out, '\n')...), nil
}

// ToFragment validates the model and converts it to a fragment rooted at the only link that is not
// the child of a joint. Only the first visual and collision elements of a link are kept.
func (mc *ModelConfig) ToFragment() (*referenceframe.Fragment, error) {
	isChild := make(map[string]bool, len(mc.Joints))
	for _, j := range mc.Joints {
		isChild[j.Child.Link] = true
	}

	var roots []string
	links := make([]referenceframe.LinkConfig, 0, len(mc.Links))
	for _, linkElem := range mc.Links {
		l := referenceframe.LinkConfig{ID: linkElem.Name}
		if len(linkElem.Visual) > 0 {
			m, err := linkElem.Visual[0].toMeshReference()
			if err != nil {
				return nil, errors.Wrapf(err, "link '%s' visual", linkElem.Name)
			}
			l.Visual = m
		}
		if len(linkElem.Collision) > 0 {
			m, err := linkElem.Collision[0].toMeshReference()
			if err != nil {
				return nil, errors.Wrapf(err, "link '%s' collision", linkElem.Name)
			}
			l.Collision = m
		}
		if !isChild[linkElem.Name] {
			roots = append(roots, linkElem.Name)
		}
		links = append(links, l)
	}
	if len(roots) != 1 {
		return nil, errors.Wrapf(referenceframe.ErrNeedOneRoot, "have %v", roots)
	}

	joints := make([]referenceframe.JointConfig, 0, len(mc.Joints))
	for _, jointElem := range mc.Joints {
		switch jointElem.Type {
		case referenceframe.FixedJoint:
		case referenceframe.ContinuousJoint, referenceframe.RevoluteJoint, referenceframe.PrismaticJoint:
			return nil, errors.Wrapf(referenceframe.NewUnsupportedJointTypeError(jointElem.Type),
				"joint '%s' is movable; fragments hold fixed joints only", jointElem.Name)
		default:
			return nil, referenceframe.NewUnsupportedJointTypeError(jointElem.Type)
		}
		translation, rpy, err := jointElem.Origin.parse()
		if err != nil {
			return nil, errors.Wrapf(err, "joint '%s'", jointElem.Name)
		}
		joints = append(joints, referenceframe.NewFixedJoint(
			jointElem.Name, jointElem.Parent.Link, jointElem.Child.Link, translation, rpy,
		))
	}

	return referenceframe.NewFragment(roots[0], links, joints)
}

// UnmarshalModelXML will transfer the given URDF XML data into an equivalent ModelConfig.
func UnmarshalModelXML(xmlData []byte) (*ModelConfig, error) {
	// empty data probably means that the read URDF has no actionable information
	if len(xmlData) == 0 {
		return nil, referenceframe.ErrNoModelInformation
	}
	mc := &ModelConfig{}
	if err := xml.Unmarshal(xmlData, mc); err != nil {
		return nil, errors.Wrap(err, "failed to convert URDF data to equivalent URDFConfig struct")
	}
	return mc, nil
}

// ParseModelXMLFile will read a given file and parse the contained URDF XML data into a validated fragment.
func ParseModelXMLFile(filename string) (*referenceframe.Fragment, string, error) {
	//nolint:gosec
	xmlData, err := os.ReadFile(filename)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to read URDF file")
	}
	mc, err := UnmarshalModelXML(xmlData)
	if err != nil {
		return nil, "", err
	}
	f, err := mc.ToFragment()
	if err != nil {
		return nil, "", err
	}
	return f, mc.Name, nil
}
