package project

import (
	"time"

	"github.com/ricky-aufvaa/dfmea/internal/domain/fmea"
	"github.com/ricky-aufvaa/dfmea/internal/domain/system"
)

// Settings holds per-project behavior flags.
type Settings struct {
	AutoSave         bool   `json:"autoSave"`
	AutoSaveInterval int64  `json:"autoSaveInterval"` // milliseconds
	Theme            string `json:"theme"`
	Notifications    bool   `json:"notifications"`
}

// DefaultSettings returns the settings applied to new projects.
func DefaultSettings() Settings {
	return Settings{
		AutoSave:         true,
		AutoSaveInterval: 30000,
		Theme:            "light",
		Notifications:    true,
	}
}

// Interval returns the auto-save interval as a duration.
func (s Settings) Interval() time.Duration {
	return time.Duration(s.AutoSaveInterval) * time.Millisecond
}

// Project bundles one system definition and its FMEA items under a name.
// At most one project is "current" at a time.
type Project struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	ImportedAt  *time.Time     `json:"importedAt,omitempty"`
	System      *system.System `json:"system"`
	Items       []fmea.Item    `json:"fmeaItems"`
	Settings    Settings       `json:"settings"`
}

// Summary is the lightweight recency-list entry for a project.
type Summary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Summarize builds the recency entry for a project.
func (p *Project) Summarize() Summary {
	return Summary{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		UpdatedAt:   p.UpdatedAt,
	}
}

// MaxRecentProjects caps the recency list.
const MaxRecentProjects = 10

// Preferences is the process-wide user preference record.
type Preferences struct {
	Theme                string              `json:"theme"`
	AutoSave             bool                `json:"autoSave"`
	AutoSaveInterval     int64               `json:"autoSaveInterval"` // milliseconds
	Notifications        bool                `json:"notifications"`
	DefaultRPNThresholds fmea.RiskThresholds `json:"defaultRPNThresholds"`
	RecentProjects       []Summary           `json:"recentProjects"`
}

// DefaultPreferences returns the preference record seeded on first run.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:                "light",
		AutoSave:             true,
		AutoSaveInterval:     30000,
		Notifications:        true,
		DefaultRPNThresholds: fmea.DefaultThresholds(),
		RecentProjects:       []Summary{},
	}
}

// Interval returns the auto-save interval as a duration.
func (p Preferences) Interval() time.Duration {
	return time.Duration(p.AutoSaveInterval) * time.Millisecond
}

// PreferencesPatch is a merge-patch over the preference record. Nil fields
// stay untouched; the recency list is managed by the store, never patched
// directly.
type PreferencesPatch struct {
	Theme                *string              `json:"theme,omitempty"`
	AutoSave             *bool                `json:"autoSave,omitempty"`
	AutoSaveInterval     *int64               `json:"autoSaveInterval,omitempty"`
	Notifications        *bool                `json:"notifications,omitempty"`
	DefaultRPNThresholds *fmea.RiskThresholds `json:"defaultRPNThresholds,omitempty"`
}

// Apply merges the patch into a preference record.
func (p PreferencesPatch) Apply(prefs *Preferences) {
	if p.Theme != nil {
		prefs.Theme = *p.Theme
	}
	if p.AutoSave != nil {
		prefs.AutoSave = *p.AutoSave
	}
	if p.AutoSaveInterval != nil {
		prefs.AutoSaveInterval = *p.AutoSaveInterval
	}
	if p.Notifications != nil {
		prefs.Notifications = *p.Notifications
	}
	if p.DefaultRPNThresholds != nil {
		prefs.DefaultRPNThresholds = *p.DefaultRPNThresholds
	}
}

// MetadataPatch updates a project's name and description. Identity and
// creation timestamp are immutable.
type MetadataPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Draft describes a project to create. Zero values fall back to the
// default project template.
type Draft struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	System      *system.System `json:"system,omitempty"`
	Items       []fmea.Item    `json:"fmeaItems,omitempty"`
	Settings    *Settings      `json:"settings,omitempty"`
}

// ProjectInfo is the metadata slice of a statistics report.
type ProjectInfo struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SystemInfo summarizes the project's system, if any.
type SystemInfo struct {
	Name           string          `json:"name"`
	Category       system.Category `json:"category"`
	ComponentCount int             `json:"componentCount"`
}

// Statistics combines project metadata, system summary and the RPN
// statistics of the project's item list.
type Statistics struct {
	Project ProjectInfo     `json:"projectInfo"`
	System  *SystemInfo     `json:"systemInfo,omitempty"`
	FMEA    fmea.Statistics `json:"fmeaStats"`
}
