package fmea

import "time"

// ExportVersion tags serialized exports so future format changes stay
// detectable.
const ExportVersion = "1.0.0"

// Item is a single FMEA record: one failure mode of one component, scored
// by severity, occurrence and detection.
type Item struct {
	ID                 string    `json:"id"`
	Component          string    `json:"component"`
	Function           string    `json:"function"`
	FailureMode        string    `json:"failureMode"`
	Effects            string    `json:"effects"`
	Causes             string    `json:"causes"`
	CurrentControls    string    `json:"currentControls"`
	Severity           int       `json:"severity"`
	Occurrence         int       `json:"occurrence"`
	Detection          int       `json:"detection"`
	RPN                int       `json:"rpn"`
	RecommendedActions string    `json:"recommendedActions"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// ComputeRPN re-derives the risk priority number from the current ratings.
// Must run before every persist so the stored RPN is never stale.
func (i *Item) ComputeRPN() {
	i.RPN = i.Severity * i.Occurrence * i.Detection
}

// CreateRequest describes a new item. Zero ratings default to 1.
type CreateRequest struct {
	Component          string `json:"component"`
	Function           string `json:"function"`
	FailureMode        string `json:"failureMode"`
	Effects            string `json:"effects"`
	Causes             string `json:"causes"`
	CurrentControls    string `json:"currentControls"`
	Severity           int    `json:"severity"`
	Occurrence         int    `json:"occurrence"`
	Detection          int    `json:"detection"`
	RecommendedActions string `json:"recommendedActions"`
}

// ItemPatch is a field-level update. Nil fields are left untouched; the id
// and creation timestamp are not patchable.
type ItemPatch struct {
	Component          *string `json:"component,omitempty"`
	Function           *string `json:"function,omitempty"`
	FailureMode        *string `json:"failureMode,omitempty"`
	Effects            *string `json:"effects,omitempty"`
	Causes             *string `json:"causes,omitempty"`
	CurrentControls    *string `json:"currentControls,omitempty"`
	Severity           *int    `json:"severity,omitempty"`
	Occurrence         *int    `json:"occurrence,omitempty"`
	Detection          *int    `json:"detection,omitempty"`
	RecommendedActions *string `json:"recommendedActions,omitempty"`
}

func (p ItemPatch) apply(item *Item) {
	if p.Component != nil {
		item.Component = *p.Component
	}
	if p.Function != nil {
		item.Function = *p.Function
	}
	if p.FailureMode != nil {
		item.FailureMode = *p.FailureMode
	}
	if p.Effects != nil {
		item.Effects = *p.Effects
	}
	if p.Causes != nil {
		item.Causes = *p.Causes
	}
	if p.CurrentControls != nil {
		item.CurrentControls = *p.CurrentControls
	}
	if p.Severity != nil {
		item.Severity = *p.Severity
	}
	if p.Occurrence != nil {
		item.Occurrence = *p.Occurrence
	}
	if p.Detection != nil {
		item.Detection = *p.Detection
	}
	if p.RecommendedActions != nil {
		item.RecommendedActions = *p.RecommendedActions
	}
}

// RiskLevel bands an RPN value.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// RiskThresholds is the single canonical source of RPN banding. Statistics
// and classification both read from it.
type RiskThresholds struct {
	Low      int `json:"low"`
	Medium   int `json:"medium"`
	High     int `json:"high"`
	Critical int `json:"critical"`
}

// DefaultThresholds returns the standard automotive banding.
func DefaultThresholds() RiskThresholds {
	return RiskThresholds{Low: 50, Medium: 100, High: 200, Critical: 300}
}

// Classify bands an RPN value against the thresholds.
func (t RiskThresholds) Classify(rpn int) RiskLevel {
	switch {
	case rpn >= t.Critical:
		return RiskCritical
	case rpn >= t.High:
		return RiskHigh
	case rpn >= t.Medium:
		return RiskMedium
	default:
		return RiskLow
	}
}

// ImportResult reports how many incoming records survived import filtering.
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// ExportBundle is the serialized form of the item list.
type ExportBundle struct {
	Items      []Item     `json:"items"`
	ExportedAt time.Time  `json:"exportedAt"`
	Version    string     `json:"version"`
	Statistics Statistics `json:"statistics"`
}
