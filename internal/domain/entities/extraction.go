package entities

// ExtractedCandidate is an unconfirmed product description produced by a
// vision backend. It becomes a LineItem only through triage.
type ExtractedCandidate struct {
	Name          string   `json:"name"`
	Brand         string   `json:"brand"`
	Description   string   `json:"description"`
	SuggestedUnit UnitType `json:"suggestedUnit"`
	SpecDetails   string   `json:"specDetails,omitempty"`
	Category      string   `json:"category,omitempty"`
}

// DisplayName is the name with the technical differentiator appended in parentheses.
func (c ExtractedCandidate) DisplayName() string {
	if c.SpecDetails == "" {
		return c.Name
	}
	return c.Name + " (" + c.SpecDetails + ")"
}

// ExtractionResult is the validated output of one extraction call.
type ExtractionResult struct {
	MultipleModelsFound bool                 `json:"multipleModelsFound"`
	Products            []ExtractedCandidate `json:"products"`
}
