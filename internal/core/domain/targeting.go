package domain

// TargetAudience describes who an ad campaign request should reach.
type TargetAudience struct {
	Locations  []string `json:"locations,omitempty"`
	AgeMin     int      `json:"age_min,omitempty"`
	AgeMax     int      `json:"age_max,omitempty"`
	Genders    []string `json:"genders,omitempty"`
	Interests  []string `json:"interests,omitempty"`
	Languages  []string `json:"languages,omitempty"`
	Placements []string `json:"placements,omitempty"`
}
