package system

// Category classifies a system by the consequence class of its failures
type Category string

const (
	CategorySafetyCritical      Category = "Safety Critical"
	CategoryPerformanceCritical Category = "Performance Critical"
	CategoryComfort             Category = "Comfort"
	CategoryAuxiliary           Category = "Auxiliary"
)

// Criticality rates how much a component failure matters to the system
type Criticality string

const (
	CriticalityLow    Criticality = "Low"
	CriticalityMedium Criticality = "Medium"
	CriticalityHigh   Criticality = "High"
)

// System describes the engineering system under analysis. A project owns
// at most one system.
type System struct {
	Name                string            `json:"name"`
	Description         string            `json:"description,omitempty"`
	Category            Category          `json:"category,omitempty"`
	OperatingConditions map[string]string `json:"operatingConditions,omitempty"`
	Components          []Component       `json:"components"`
}

// Component is an element of a system. Components have no identity beyond
// their position in the owning system's list.
type Component struct {
	Name           string      `json:"name"`
	Function       string      `json:"function"`
	Criticality    Criticality `json:"criticality"`
	Specifications string      `json:"specifications,omitempty"`
}

// ComponentCount returns the number of components, tolerating a nil receiver
// so callers can summarize projects without a system.
func (s *System) ComponentCount() int {
	if s == nil {
		return 0
	}
	return len(s.Components)
}

// Clone deep-copies the system. A nil receiver clones to nil.
func (s *System) Clone() *System {
	if s == nil {
		return nil
	}
	out := *s
	out.Components = make([]Component, len(s.Components))
	copy(out.Components, s.Components)
	if s.OperatingConditions != nil {
		out.OperatingConditions = make(map[string]string, len(s.OperatingConditions))
		for k, v := range s.OperatingConditions {
			out.OperatingConditions[k] = v
		}
	}
	return &out
}
