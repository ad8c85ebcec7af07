// Package referenceframe defines the links and fixed joints of a kinematic fragment and the
// tree they form.
package referenceframe

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/multierr"

	"go.viam.com/sensormount/spatialmath"
	"go.viam.com/sensormount/utils"
)

// Fragment is the part of a robot's kinematic tree contributed by one description: links joined by fixed
// joints, rooted at a single base link. A Fragment is validated on construction and never changes afterwards;
// accessors hand out copies.
type Fragment struct {
	root   string
	links  []LinkConfig
	joints []JointConfig

	linkIdx     map[string]int
	jointIdx    map[string]int
	parentJoint map[string]int   // child link -> joint index
	children    map[string][]int // parent link -> joint indices, in declaration order
}

// NewFragment validates the given links and joints and returns the tree they form under root.
func NewFragment(root string, links []LinkConfig, joints []JointConfig) (*Fragment, error) {
	if root == "" {
		return nil, errors.Wrap(ErrNeedOneRoot, "no root link named")
	}
	f := &Fragment{
		root:        root,
		links:       make([]LinkConfig, 0, len(links)),
		joints:      make([]JointConfig, 0, len(joints)),
		linkIdx:     make(map[string]int, len(links)),
		jointIdx:    make(map[string]int, len(joints)),
		parentJoint: make(map[string]int, len(joints)),
		children:    map[string][]int{},
	}

	for _, link := range links {
		if err := link.validate(); err != nil {
			return nil, err
		}
		if _, ok := f.linkIdx[link.ID]; ok {
			return nil, NewDuplicateNameError("link", link.ID)
		}
		f.linkIdx[link.ID] = len(f.links)
		f.links = append(f.links, link.clone())
	}
	if _, ok := f.linkIdx[root]; !ok {
		return nil, NewFrameNotInListOfTransformsError(root)
	}

	var nonFinite error
	for _, joint := range joints {
		if err := joint.validate(); err != nil {
			return nil, err
		}
		if _, ok := f.jointIdx[joint.ID]; ok {
			return nil, NewDuplicateNameError("joint", joint.ID)
		}
		if !joint.finite() {
			nonFinite = multierr.Append(nonFinite, NewNonFiniteValueError("joint", joint.ID))
		}
		f.jointIdx[joint.ID] = len(f.joints)
		f.joints = append(f.joints, joint)
	}
	if nonFinite != nil {
		return nil, nonFinite
	}

	for i, joint := range f.joints {
		if _, ok := f.linkIdx[joint.Parent]; !ok {
			return nil, NewFrameNotInListOfTransformsError(joint.Parent)
		}
		if _, ok := f.linkIdx[joint.Child]; !ok {
			return nil, NewFrameNotInListOfTransformsError(joint.Child)
		}
		if joint.Child == root {
			return nil, NewRootHasParentError(root)
		}
		if _, ok := f.parentJoint[joint.Child]; ok {
			return nil, NewMultipleParentsError(joint.Child)
		}
		f.parentJoint[joint.Child] = i
		f.children[joint.Parent] = append(f.children[joint.Parent], i)
	}

	if err := f.checkConnected(); err != nil {
		return nil, err
	}
	return f, nil
}

// checkConnected walks down from the root and explains any link the walk never reaches.
func (f *Fragment) checkConnected() error {
	reached := map[string]bool{f.root: true}
	queue := []string{f.root}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, ji := range f.children[curr] {
			child := f.joints[ji].Child
			reached[child] = true
			queue = append(queue, child)
		}
	}
	for _, link := range f.links {
		if reached[link.ID] {
			continue
		}
		// every link has at most one parent, so walking upwards either loops or stops at an orphan
		seen := map[string]bool{}
		curr := link.ID
		for {
			if seen[curr] {
				return ErrCircularReference
			}
			seen[curr] = true
			ji, ok := f.parentJoint[curr]
			if !ok {
				return NewDisconnectedLinkError(link.ID, f.root)
			}
			curr = f.joints[ji].Parent
		}
	}
	return nil
}

// Root returns the name of the base link.
func (f *Fragment) Root() string {
	return f.root
}

// Links returns a copy of the links in declaration order.
func (f *Fragment) Links() []LinkConfig {
	return lo.Map(f.links, func(l LinkConfig, _ int) LinkConfig { return l.clone() })
}

// Joints returns a copy of the joints in declaration order.
func (f *Fragment) Joints() []JointConfig {
	return append([]JointConfig(nil), f.joints...)
}

// LinkNames returns link names in declaration order.
func (f *Fragment) LinkNames() []string {
	return lo.Map(f.links, func(l LinkConfig, _ int) string { return l.ID })
}

// JointNames returns joint names in declaration order.
func (f *Fragment) JointNames() []string {
	return lo.Map(f.joints, func(j JointConfig, _ int) string { return j.ID })
}

// Link returns the named link.
func (f *Fragment) Link(id string) (LinkConfig, bool) {
	i, ok := f.linkIdx[id]
	if !ok {
		return LinkConfig{}, false
	}
	return f.links[i].clone(), true
}

// Joint returns the named joint.
func (f *Fragment) Joint(id string) (JointConfig, bool) {
	i, ok := f.jointIdx[id]
	if !ok {
		return JointConfig{}, false
	}
	return f.joints[i], true
}

// ParentJoint returns the joint whose child is the named link. The root has none.
func (f *Fragment) ParentJoint(linkID string) (JointConfig, bool) {
	i, ok := f.parentJoint[linkID]
	if !ok {
		return JointConfig{}, false
	}
	return f.joints[i], true
}

// Children returns the names of the links directly below the named link.
func (f *Fragment) Children(linkID string) []string {
	return lo.Map(f.children[linkID], func(ji, _ int) string { return f.joints[ji].Child })
}

// PathFromRoot returns the joints leading from the root down to the named link.
func (f *Fragment) PathFromRoot(linkID string) ([]JointConfig, error) {
	if _, ok := f.linkIdx[linkID]; !ok {
		return nil, NewFrameNotInListOfTransformsError(linkID)
	}
	var path []JointConfig
	for curr := linkID; curr != f.root; {
		joint := f.joints[f.parentJoint[curr]]
		path = append(path, joint)
		curr = joint.Parent
	}
	// the walk collected joints leaf first
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// PathBetween returns the joints leading from ancestor down to the named link.
func (f *Fragment) PathBetween(ancestor, linkID string) ([]JointConfig, error) {
	if _, ok := f.linkIdx[ancestor]; !ok {
		return nil, NewFrameNotInListOfTransformsError(ancestor)
	}
	path, err := f.PathFromRoot(linkID)
	if err != nil {
		return nil, err
	}
	if ancestor == linkID {
		return []JointConfig{}, nil
	}
	for i, joint := range path {
		if joint.Parent == ancestor {
			return path[i:], nil
		}
	}
	return nil, NewNotAncestorError(ancestor, linkID)
}

// Depth returns the number of joints between the root and the named link.
func (f *Fragment) Depth(linkID string) (int, error) {
	path, err := f.PathFromRoot(linkID)
	if err != nil {
		return 0, err
	}
	return len(path), nil
}

// MaxDepth returns the depth of the deepest link.
func (f *Fragment) MaxDepth() int {
	maxDepth := 0
	for _, link := range f.links {
		// every link is known, so the lookup cannot fail
		d, _ := f.Depth(link.ID)
		maxDepth = max(maxDepth, d)
	}
	return maxDepth
}

// PoseInRoot returns the pose of the named link in the frame of the root, with translation in millimeters.
func (f *Fragment) PoseInRoot(linkID string) (spatialmath.Pose, error) {
	path, err := f.PathFromRoot(linkID)
	if err != nil {
		return nil, err
	}
	pose := spatialmath.NewZeroPose()
	for _, joint := range path {
		pose = spatialmath.Compose(pose, joint.Pose())
	}
	return pose, nil
}

// PoseInFrame returns the pose of the named link expressed in the frame of the reference link.
func (f *Fragment) PoseInFrame(linkID, referenceID string) (spatialmath.Pose, error) {
	linkPose, err := f.PoseInRoot(linkID)
	if err != nil {
		return nil, err
	}
	refPose, err := f.PoseInRoot(referenceID)
	if err != nil {
		return nil, err
	}
	return spatialmath.PoseBetween(refPose, linkPose), nil
}

// String prints out a table of each link in the fragment, with the joint attaching it to its parent.
func (f *Fragment) String() string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Link", "Parent", "Joint", "Translation (m)", "Orientation (deg)", "Geometry"})
	for i, link := range f.links {
		parent, jointName, tra, ori := "", "", "", ""
		if joint, ok := f.ParentJoint(link.ID); ok {
			parent, jointName = joint.Parent, joint.ID
			tra = fmt.Sprintf("X:%.4f, Y:%.4f, Z:%.4f", joint.Translation.X, joint.Translation.Y, joint.Translation.Z)
			ori = fmt.Sprintf(
				"Roll:%.2f, Pitch:%.2f, Yaw:%.2f",
				utils.RadToDeg(joint.RPY.Roll),
				utils.RadToDeg(joint.RPY.Pitch),
				utils.RadToDeg(joint.RPY.Yaw),
			)
		}
		geom := ""
		if link.Visual != nil {
			geom = link.Visual.Family
		} else if link.Collision != nil {
			geom = link.Collision.Family
		}
		t.AppendRow(table.Row{fmt.Sprintf("%d", i), link.ID, parent, jointName, tra, ori, geom})
	}
	return t.Render()
}
