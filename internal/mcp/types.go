package mcp

import (
	"github.com/ricky-aufvaa/dfmea/internal/domain/fmea"
	"github.com/ricky-aufvaa/dfmea/internal/domain/project"
	"github.com/ricky-aufvaa/dfmea/internal/domain/system"
	"github.com/ricky-aufvaa/dfmea/internal/storage"
)

type CreateProjectParams struct {
	Name        string `json:"name,omitempty" jsonschema:"Project display name, defaults to Untitled Project"`
	Description string `json:"description,omitempty" jsonschema:"Project description"`
}

type LoadProjectParams struct {
	ID string `json:"id" jsonschema:"Project ID"`
}

type EmptyParams struct{}

type DeleteProjectParams struct {
	ID string `json:"id" jsonschema:"Project ID"`
}

type DuplicateProjectParams struct {
	ID      string `json:"id" jsonschema:"Source project ID"`
	NewName string `json:"new_name,omitempty" jsonschema:"Name for the copy, defaults to '<name> (Copy)'"`
}

type SearchProjectsParams struct {
	Query string `json:"query" jsonschema:"Case-insensitive match against project name and description"`
}

type UpdateProjectParams struct {
	ID          string  `json:"id" jsonschema:"Project ID"`
	Name        *string `json:"name,omitempty" jsonschema:"New name, must not be empty"`
	Description *string `json:"description,omitempty" jsonschema:"New description"`
}

type ProjectStatisticsParams struct {
	ID string `json:"id,omitempty" jsonschema:"Project ID, omit for the current project"`
}

type ExportProjectParams struct {
	ID string `json:"id,omitempty" jsonschema:"Project ID, omit for the current project"`
}

type ImportProjectParams struct {
	Data    string `json:"data" jsonschema:"Exported project JSON"`
	NewName string `json:"new_name,omitempty" jsonschema:"Name override, defaults to '<name> (Imported)'"`
}

type ProjectResponse struct {
	Project *project.Project `json:"project"`
}

type ProjectListResponse struct {
	Projects []project.Project `json:"projects"`
	Count    int               `json:"count"`
}

type RecentProjectsResponse struct {
	Recent []project.Summary `json:"recent"`
}

type ExportResponse struct {
	Data string `json:"data"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type CreateItemParams struct {
	Component          string `json:"component" jsonschema:"Component under analysis"`
	Function           string `json:"function,omitempty" jsonschema:"Component function"`
	FailureMode        string `json:"failure_mode,omitempty" jsonschema:"How the component fails"`
	Effects            string `json:"effects,omitempty" jsonschema:"Failure effects"`
	Causes             string `json:"causes,omitempty" jsonschema:"Failure causes"`
	CurrentControls    string `json:"current_controls,omitempty" jsonschema:"Existing detection or prevention controls"`
	Severity           int    `json:"severity,omitempty" jsonschema:"Severity rating 1-10, defaults to 1"`
	Occurrence         int    `json:"occurrence,omitempty" jsonschema:"Occurrence rating 1-10, defaults to 1"`
	Detection          int    `json:"detection,omitempty" jsonschema:"Detection rating 1-10, defaults to 1"`
	RecommendedActions string `json:"recommended_actions,omitempty" jsonschema:"Recommended corrective actions"`
}

type UpdateItemParams struct {
	ID                 string  `json:"id" jsonschema:"Item ID"`
	Component          *string `json:"component,omitempty"`
	Function           *string `json:"function,omitempty"`
	FailureMode        *string `json:"failure_mode,omitempty"`
	Effects            *string `json:"effects,omitempty"`
	Causes             *string `json:"causes,omitempty"`
	CurrentControls    *string `json:"current_controls,omitempty"`
	Severity           *int    `json:"severity,omitempty" jsonschema:"Severity rating 1-10"`
	Occurrence         *int    `json:"occurrence,omitempty" jsonschema:"Occurrence rating 1-10"`
	Detection          *int    `json:"detection,omitempty" jsonschema:"Detection rating 1-10"`
	RecommendedActions *string `json:"recommended_actions,omitempty"`
}

type ItemIDParams struct {
	ID string `json:"id" jsonschema:"Item ID"`
}

type SearchItemsParams struct {
	Query string `json:"query" jsonschema:"Case-insensitive match against component, function, failure mode, effects and causes"`
}

type ComponentParams struct {
	Component string `json:"component" jsonschema:"Component name, substring match"`
}

type HighRiskParams struct {
	Threshold int `json:"threshold,omitempty" jsonschema:"RPN cutoff, items strictly above it are returned, defaults to 100"`
}

type SuggestParams struct {
	Component string `json:"component" jsonschema:"Component to suggest failure modes for"`
	Function  string `json:"function,omitempty" jsonschema:"Component function"`
}

type ImportItemsParams struct {
	Data string `json:"data" jsonschema:"Item array or an exported items document"`
}

type ItemResponse struct {
	Item      *fmea.Item     `json:"item"`
	RiskLevel fmea.RiskLevel `json:"riskLevel"`
}

type ItemListResponse struct {
	Items []fmea.Item `json:"items"`
	Count int         `json:"count"`
}

type SuggestionsResponse struct {
	Suggestions []fmea.Suggestion `json:"suggestions"`
}

type ImportItemsResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

type RecalculateResponse struct {
	Updated int `json:"updated"`
}

type StatisticsResponse struct {
	Statistics fmea.Statistics `json:"statistics"`
}

type RatingScalesResponse struct {
	Severity   map[string]fmea.RatingLevel `json:"severity"`
	Occurrence map[string]fmea.RatingLevel `json:"occurrence"`
	Detection  map[string]fmea.RatingLevel `json:"detection"`
}

type SetSystemParams struct {
	System system.System `json:"system" jsonschema:"System definition with components"`
}

type SystemResponse struct {
	System *system.System `json:"system"`
}

type TemplatesResponse struct {
	Templates []system.Template `json:"templates"`
}

type FromTemplateParams struct {
	TemplateID string `json:"template_id" jsonschema:"Template ID, see list_system_templates"`
}

type UpdatePreferencesParams struct {
	Theme            *string              `json:"theme,omitempty" jsonschema:"UI theme"`
	AutoSave         *bool                `json:"auto_save,omitempty" jsonschema:"Enable or disable auto-save"`
	AutoSaveInterval *int64               `json:"auto_save_interval,omitempty" jsonschema:"Auto-save interval in milliseconds"`
	Notifications    *bool                `json:"notifications,omitempty"`
	RPNThresholds    *fmea.RiskThresholds `json:"rpn_thresholds,omitempty" jsonschema:"Risk banding thresholds"`
}

type PreferencesResponse struct {
	Preferences project.Preferences `json:"preferences"`
}

type StorageStatsResponse struct {
	Stats storage.Stats `json:"stats"`
}
