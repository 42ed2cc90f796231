package system

// Template is a predefined system definition used to seed new systems.
// Instantiation copies the template; there is no live link afterward.
type Template struct {
	ID                  string            `json:"id"`
	Name                string            `json:"name"`
	Description         string            `json:"description"`
	Category            Category          `json:"category"`
	Components          []Component       `json:"components"`
	CommonFailureModes  []string          `json:"commonFailureModes"`
	OperatingConditions map[string]string `json:"operatingConditions"`
}

var templates = []Template{
	{
		ID:          "air_brake",
		Name:        "Air Brake System",
		Description: "Pneumatic braking system for commercial vehicles",
		Category:    CategorySafetyCritical,
		Components: []Component{
			{Name: "Air Compressor", Function: "Generate compressed air", Criticality: CriticalityHigh},
			{Name: "Air Tank/Reservoir", Function: "Store compressed air", Criticality: CriticalityHigh},
			{Name: "Brake Valve", Function: "Control air flow to brakes", Criticality: CriticalityHigh},
			{Name: "Brake Chamber", Function: "Convert air pressure to mechanical force", Criticality: CriticalityHigh},
			{Name: "Brake Shoes/Pads", Function: "Create friction to stop vehicle", Criticality: CriticalityHigh},
			{Name: "Air Lines", Function: "Transport compressed air", Criticality: CriticalityMedium},
			{Name: "Pressure Regulator", Function: "Maintain proper air pressure", Criticality: CriticalityMedium},
			{Name: "Safety Valve", Function: "Prevent over-pressurization", Criticality: CriticalityHigh},
		},
		CommonFailureModes: []string{
			"Air leakage",
			"Compressor failure",
			"Valve malfunction",
			"Brake fade",
			"Contamination",
		},
		OperatingConditions: map[string]string{
			"temperature": "-40°C to 85°C",
			"pressure":    "8.5 to 10 bar",
			"humidity":    "0-100% RH",
			"vibration":   "High",
		},
	},
	{
		ID:          "engine_management",
		Name:        "Engine Management System",
		Description: "Electronic control system for engine operation",
		Category:    CategoryPerformanceCritical,
		Components: []Component{
			{Name: "ECU (Engine Control Unit)", Function: "Control engine parameters", Criticality: CriticalityHigh},
			{Name: "Fuel Injectors", Function: "Deliver precise fuel amounts", Criticality: CriticalityHigh},
			{Name: "Throttle Body", Function: "Control air intake", Criticality: CriticalityHigh},
			{Name: "Mass Air Flow Sensor", Function: "Measure air intake", Criticality: CriticalityMedium},
			{Name: "Oxygen Sensors", Function: "Monitor exhaust gases", Criticality: CriticalityMedium},
			{Name: "Crankshaft Position Sensor", Function: "Monitor engine timing", Criticality: CriticalityHigh},
			{Name: "Camshaft Position Sensor", Function: "Monitor valve timing", Criticality: CriticalityHigh},
			{Name: "Coolant Temperature Sensor", Function: "Monitor engine temperature", Criticality: CriticalityMedium},
		},
		CommonFailureModes: []string{
			"Sensor failure",
			"ECU malfunction",
			"Injector clogging",
			"Wiring issues",
			"Software corruption",
		},
		OperatingConditions: map[string]string{
			"temperature": "-40°C to 125°C",
			"voltage":     "12V/24V DC",
			"humidity":    "0-95% RH",
			"vibration":   "High",
		},
	},
	{
		ID:          "electric_power_steering",
		Name:        "Electric Power Steering",
		Description: "Electrically assisted steering system",
		Category:    CategorySafetyCritical,
		Components: []Component{
			{Name: "Electric Motor", Function: "Provide steering assistance", Criticality: CriticalityHigh},
			{Name: "Steering ECU", Function: "Control steering assistance", Criticality: CriticalityHigh},
			{Name: "Torque Sensor", Function: "Measure steering input", Criticality: CriticalityHigh},
			{Name: "Position Sensor", Function: "Monitor steering angle", Criticality: CriticalityMedium},
			{Name: "Power Supply Unit", Function: "Provide electrical power", Criticality: CriticalityHigh},
			{Name: "Steering Column", Function: "Transfer steering input", Criticality: CriticalityHigh},
			{Name: "Wiring Harness", Function: "Electrical connections", Criticality: CriticalityMedium},
			{Name: "Fail-Safe Mechanism", Function: "Ensure manual steering backup", Criticality: CriticalityHigh},
		},
		CommonFailureModes: []string{
			"Motor failure",
			"Sensor malfunction",
			"ECU failure",
			"Power loss",
			"Mechanical binding",
		},
		OperatingConditions: map[string]string{
			"temperature": "-40°C to 85°C",
			"voltage":     "12V DC",
			"humidity":    "0-95% RH",
			"vibration":   "Medium",
		},
	},
}

// Templates returns the predefined system templates.
func Templates() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

// TemplateByID returns the template with the given id, or nil if unknown.
func TemplateByID(id string) *Template {
	for i := range templates {
		if templates[i].ID == id {
			tpl := templates[i]
			return &tpl
		}
	}
	return nil
}

// FromTemplate instantiates a new System from a template. The component list
// and operating conditions are deep-copied so later edits never touch the
// template.
func FromTemplate(tpl Template) *System {
	components := make([]Component, len(tpl.Components))
	copy(components, tpl.Components)

	conditions := make(map[string]string, len(tpl.OperatingConditions))
	for k, v := range tpl.OperatingConditions {
		conditions[k] = v
	}

	return &System{
		Name:                tpl.Name,
		Description:         tpl.Description,
		Category:            tpl.Category,
		OperatingConditions: conditions,
		Components:          components,
	}
}
