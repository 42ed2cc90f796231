package fmea

// RatingLevel labels one step of a 1-10 rating scale.
type RatingLevel struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

// SeverityScale rates the impact of a failure reaching its end effect.
var SeverityScale = map[string]RatingLevel{
	"1":  {Label: "Minor", Description: "Minor inconvenience"},
	"2":  {Label: "Low", Description: "Low impact on performance"},
	"3":  {Label: "Moderate", Description: "Moderate impact on performance"},
	"4":  {Label: "High", Description: "High impact on performance"},
	"5":  {Label: "Very High", Description: "Very high impact on performance"},
	"6":  {Label: "Hazardous without warning", Description: "Hazardous without warning"},
	"7":  {Label: "Hazardous with warning", Description: "Hazardous with warning"},
	"8":  {Label: "Very hazardous", Description: "Very hazardous"},
	"9":  {Label: "Extremely hazardous", Description: "Extremely hazardous"},
	"10": {Label: "Catastrophic", Description: "Catastrophic failure"},
}

// OccurrenceScale rates how often the failure happens.
var OccurrenceScale = map[string]RatingLevel{
	"1":  {Label: "Remote", Description: "Failure unlikely"},
	"2":  {Label: "Very Low", Description: "Very few failures"},
	"3":  {Label: "Low", Description: "Few failures"},
	"4":  {Label: "Moderately Low", Description: "Occasional failures"},
	"5":  {Label: "Moderate", Description: "Moderate number of failures"},
	"6":  {Label: "Moderately High", Description: "Moderately high failures"},
	"7":  {Label: "High", Description: "High number of failures"},
	"8":  {Label: "Very High", Description: "Very high failures"},
	"9":  {Label: "Extremely High", Description: "Extremely high failures"},
	"10": {Label: "Almost Certain", Description: "Failure almost inevitable"},
}

// DetectionScale rates the chance of catching the failure before it reaches
// the end effect. Higher is worse.
var DetectionScale = map[string]RatingLevel{
	"1":  {Label: "Almost Certain", Description: "Design control will almost certainly detect"},
	"2":  {Label: "Very High", Description: "Very high chance of detection"},
	"3":  {Label: "High", Description: "High chance of detection"},
	"4":  {Label: "Moderately High", Description: "Moderately high chance of detection"},
	"5":  {Label: "Moderate", Description: "Moderate chance of detection"},
	"6":  {Label: "Low", Description: "Low chance of detection"},
	"7":  {Label: "Very Low", Description: "Very low chance of detection"},
	"8":  {Label: "Remote", Description: "Remote chance of detection"},
	"9":  {Label: "Very Remote", Description: "Very remote chance of detection"},
	"10": {Label: "Absolute Uncertainty", Description: "Design control cannot detect"},
}
