package fmea

import "github.com/google/uuid"

// Suggestion is a candidate failure mode for a component, drawn from the
// static knowledge table. Not inference: a deterministic lookup keyed by
// exact component name.
type Suggestion struct {
	ID                 string   `json:"id"`
	FailureMode        string   `json:"failureMode"`
	Effects            []string `json:"effects"`
	Causes             []string `json:"causes"`
	Severity           int      `json:"severity"`
	Occurrence         int      `json:"occurrence"`
	Detection          int      `json:"detection"`
	RecommendedActions []string `json:"recommendedActions"`
}

var knownFailureModes = map[string][]Suggestion{
	// Air brake system
	"Air Compressor": {
		{
			FailureMode:        "Compressor Failure",
			Effects:            []string{"Loss of air pressure", "Brake system failure", "Vehicle immobilization"},
			Causes:             []string{"Belt failure", "Motor burnout", "Internal wear", "Electrical failure"},
			Severity:           9,
			Occurrence:         3,
			Detection:          4,
			RecommendedActions: []string{"Install pressure monitoring", "Regular belt inspection", "Backup compressor system"},
		},
		{
			FailureMode:        "Air Leakage",
			Effects:            []string{"Reduced brake performance", "Increased compressor cycling", "Energy loss"},
			Causes:             []string{"Seal degradation", "Valve wear", "Pipe corrosion", "Fitting looseness"},
			Severity:           7,
			Occurrence:         5,
			Detection:          3,
			RecommendedActions: []string{"Leak detection system", "Regular seal replacement", "Improved fittings"},
		},
	},
	"Brake Chamber": {
		{
			FailureMode:        "Diaphragm Rupture",
			Effects:            []string{"Loss of braking force", "Safety hazard", "Vehicle accident risk"},
			Causes:             []string{"Material fatigue", "Over-pressurization", "Chemical degradation", "Age-related wear"},
			Severity:           10,
			Occurrence:         2,
			Detection:          6,
			RecommendedActions: []string{"Material upgrade", "Pressure regulation", "Preventive replacement schedule"},
		},
	},
	"Brake Valve": {
		{
			FailureMode:        "Valve Sticking",
			Effects:            []string{"Brake drag", "Uneven braking", "Increased wear"},
			Causes:             []string{"Contamination", "Corrosion", "Lack of lubrication", "Manufacturing defects"},
			Severity:           6,
			Occurrence:         4,
			Detection:          5,
			RecommendedActions: []string{"Regular cleaning", "Improved filtration", "Quality control enhancement"},
		},
	},

	// Engine management system
	"ECU (Engine Control Unit)": {
		{
			FailureMode:        "Software Corruption",
			Effects:            []string{"Engine malfunction", "Performance degradation", "Emissions increase"},
			Causes:             []string{"Power surge", "EMI interference", "Memory failure", "Update errors"},
			Severity:           8,
			Occurrence:         2,
			Detection:          7,
			RecommendedActions: []string{"Backup systems", "EMI shielding", "Robust update procedures"},
		},
		{
			FailureMode:        "Hardware Failure",
			Effects:            []string{"Complete engine shutdown", "Vehicle breakdown", "Safety risk"},
			Causes:             []string{"Component aging", "Thermal stress", "Vibration damage", "Manufacturing defects"},
			Severity:           9,
			Occurrence:         1,
			Detection:          8,
			RecommendedActions: []string{"Redundant systems", "Improved cooling", "Vibration isolation"},
		},
	},
	"Fuel Injectors": {
		{
			FailureMode:        "Injector Clogging",
			Effects:            []string{"Poor fuel atomization", "Reduced power", "Increased emissions"},
			Causes:             []string{"Fuel contamination", "Carbon buildup", "Poor fuel quality", "Lack of maintenance"},
			Severity:           5,
			Occurrence:         6,
			Detection:          4,
			RecommendedActions: []string{"Fuel filtration improvement", "Regular cleaning", "Fuel quality monitoring"},
		},
	},
	"Oxygen Sensors": {
		{
			FailureMode:        "Sensor Drift",
			Effects:            []string{"Incorrect fuel mixture", "Performance loss", "Emissions non-compliance"},
			Causes:             []string{"Contamination", "Thermal cycling", "Age-related degradation", "Poisoning"},
			Severity:           6,
			Occurrence:         4,
			Detection:          3,
			RecommendedActions: []string{"Regular replacement", "Contamination prevention", "Diagnostic enhancement"},
		},
	},

	// Electric power steering
	"Electric Motor": {
		{
			FailureMode:        "Motor Failure",
			Effects:            []string{"Loss of power assist", "Heavy steering", "Driver fatigue"},
			Causes:             []string{"Winding failure", "Bearing wear", "Overheating", "Electrical short"},
			Severity:           7,
			Occurrence:         3,
			Detection:          5,
			RecommendedActions: []string{"Temperature monitoring", "Current limiting", "Improved cooling"},
		},
	},
	"Torque Sensor": {
		{
			FailureMode:        "Sensor Malfunction",
			Effects:            []string{"Incorrect assist level", "Steering instability", "Safety concern"},
			Causes:             []string{"Calibration drift", "Mechanical damage", "Electrical noise", "Temperature effects"},
			Severity:           8,
			Occurrence:         2,
			Detection:          4,
			RecommendedActions: []string{"Regular calibration", "Noise filtering", "Temperature compensation"},
		},
	},
	"Steering ECU": {
		{
			FailureMode:        "Control Algorithm Error",
			Effects:            []string{"Erratic steering behavior", "Oscillations", "Driver discomfort"},
			Causes:             []string{"Software bugs", "Sensor input errors", "Calibration issues", "Hardware faults"},
			Severity:           6,
			Occurrence:         3,
			Detection:          6,
			RecommendedActions: []string{"Software validation", "Sensor redundancy", "Fail-safe modes"},
		},
	},
}

// genericFailureModes is the fallback for components the table doesn't know.
var genericFailureModes = []Suggestion{
	{
		FailureMode:        "Mechanical Wear",
		Effects:            []string{"Reduced performance", "Increased maintenance", "Potential failure"},
		Causes:             []string{"Normal wear", "Inadequate lubrication", "Overloading", "Poor maintenance"},
		Severity:           5,
		Occurrence:         4,
		Detection:          3,
		RecommendedActions: []string{"Regular inspection", "Preventive maintenance", "Load monitoring"},
	},
	{
		FailureMode:        "Electrical Failure",
		Effects:            []string{"Loss of function", "System malfunction", "Safety risk"},
		Causes:             []string{"Wire damage", "Connector corrosion", "Component aging", "Environmental factors"},
		Severity:           7,
		Occurrence:         3,
		Detection:          5,
		RecommendedActions: []string{"Improved wiring", "Environmental protection", "Regular testing"},
	},
	{
		FailureMode:        "Material Degradation",
		Effects:            []string{"Structural weakness", "Performance loss", "Catastrophic failure"},
		Causes:             []string{"Environmental exposure", "Chemical attack", "Thermal cycling", "UV radiation"},
		Severity:           8,
		Occurrence:         2,
		Detection:          6,
		RecommendedActions: []string{"Material upgrade", "Environmental protection", "Regular inspection"},
	},
}

// SuggestFailureModes returns candidate failure modes for a component,
// each stamped with a fresh id. Unknown components get the generic list;
// an empty component name gets nothing.
func SuggestFailureModes(component, function string) []Suggestion {
	if component == "" {
		return nil
	}

	source, ok := knownFailureModes[component]
	if !ok {
		source = genericFailureModes
	}

	out := make([]Suggestion, len(source))
	for i, s := range source {
		s.ID = uuid.NewString()
		out[i] = s
	}
	return out
}
