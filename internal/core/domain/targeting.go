package domain

// Targeting describes who should see an ad group. Empty lists mean
// "unrestricted".
type Targeting struct {
	Gender    string   `json:"gender,omitempty"`
	AgeGroups []string `json:"age_groups,omitempty"`
	Locations []string `json:"locations,omitempty"`
}

// Clone returns a copy that shares no slices with t.
func (t Targeting) Clone() Targeting {
	t.AgeGroups = cloneStrings(t.AgeGroups)
	t.Locations = cloneStrings(t.Locations)
	return t
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}
