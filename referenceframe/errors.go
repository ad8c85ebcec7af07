package referenceframe

import (
	"github.com/pkg/errors"
)

// ErrCircularReference is returned when the parent/child relations of a fragment contain a loop.
var ErrCircularReference = errors.New("infinite loop finding path from end effector to world")

// ErrNoModelInformation is used when there is no model information.
var ErrNoModelInformation = errors.New("no model information")

// ErrNeedOneRoot is returned when a fragment does not have exactly one link that is not the child of a joint.
var ErrNeedOneRoot = errors.New("need exactly one root link")

// NewReservedWordError returns an error indicating that the name of a link or joint is reserved.
func NewReservedWordError(configType, reservedWord string) error {
	return errors.Errorf("reserved word: cannot create a %s with the name '%s'", configType, reservedWord)
}

// NewDuplicateNameError returns an error indicating that a name is used twice.
func NewDuplicateNameError(configType, name string) error {
	return errors.Errorf("duplicate %s name '%s'", configType, name)
}

// NewFrameNotInListOfTransformsError returns an error indicating that a frame of the given name
// is missing from the provided list of transforms.
func NewFrameNotInListOfTransformsError(frameName string) error {
	return errors.Errorf("frame named '%s' not in the list of transforms", frameName)
}

// NewUnsupportedJointTypeError returns an error indicating that a given joint type is not supported.
func NewUnsupportedJointTypeError(jointType string) error {
	return errors.Errorf("unsupported joint type detected: %q", jointType)
}

// NewMultipleParentsError returns an error indicating that a link is the child of more than one joint.
func NewMultipleParentsError(linkName string) error {
	return errors.Errorf("link '%s' is the child of more than one joint", linkName)
}

// NewRootHasParentError returns an error indicating that the root link is the child of a joint.
func NewRootHasParentError(linkName string) error {
	return errors.Errorf("root link '%s' cannot be the child of a joint", linkName)
}

// NewDisconnectedLinkError returns an error indicating that a link cannot be reached from the root.
func NewDisconnectedLinkError(linkName, root string) error {
	return errors.Errorf("link '%s' is not connected to root link '%s'", linkName, root)
}

// NewNonFiniteValueError returns an error indicating that a transform or geometry holds a NaN or infinite value.
func NewNonFiniteValueError(configType, name string) error {
	return errors.Errorf("%s '%s' has a non-finite transform value", configType, name)
}

// NewNotAncestorError returns an error indicating that no downward path joins two links.
func NewNotAncestorError(ancestor, link string) error {
	return errors.Errorf("link '%s' is not an ancestor of '%s'", ancestor, link)
}
