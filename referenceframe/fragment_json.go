package referenceframe

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// fragmentJSON represents all supported fields in a fragment JSON document.
type fragmentJSON struct {
	Root   string        `json:"root"`
	Links  []LinkConfig  `json:"links"`
	Joints []JointConfig `json:"joints"`
}

// MarshalJSON serializes the fragment in declaration order.
func (f *Fragment) MarshalJSON() ([]byte, error) {
	return json.Marshal(fragmentJSON{Root: f.root, Links: f.links, Joints: f.joints})
}

// UnmarshalFragmentJSON parses and validates a fragment produced by MarshalJSON.
func UnmarshalFragmentJSON(jsonData []byte) (*Fragment, error) {
	// empty data probably means that there is no fragment to parse
	if len(jsonData) == 0 {
		return nil, ErrNoModelInformation
	}
	var fj fragmentJSON
	if err := json.Unmarshal(jsonData, &fj); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal fragment json")
	}
	return NewFragment(fj.Root, fj.Links, fj.Joints)
}
