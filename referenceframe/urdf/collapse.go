package urdf

import "go.viam.com/sensormount/referenceframe"

// CollapseFixedLeafJoints removes fixed joints whose child link is a leaf (has no children) together with
// those child links. Only one level is removed per call. The given model is left untouched.
func CollapseFixedLeafJoints(mc *ModelConfig) *ModelConfig {
	parentLinks := make(map[string]bool, len(mc.Joints))
	for _, j := range mc.Joints {
		parentLinks[j.Parent.Link] = true
	}

	out := &ModelConfig{Name: mc.Name}
	leafLinksToRemove := map[string]bool{}
	for _, j := range mc.Joints {
		if j.Type == referenceframe.FixedJoint && !parentLinks[j.Child.Link] {
			leafLinksToRemove[j.Child.Link] = true
			continue
		}
		out.Joints = append(out.Joints, j)
	}
	for _, l := range mc.Links {
		if leafLinksToRemove[l.Name] {
			continue
		}
		out.Links = append(out.Links, l)
	}
	return out
}
