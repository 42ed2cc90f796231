package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ricky-aufvaa/dfmea/internal/domain/fmea"
	"github.com/ricky-aufvaa/dfmea/internal/domain/project"
)

// projectExport is the interchange envelope for a single project.
type projectExport struct {
	project.Project
	ExportedAt time.Time `json:"exportedAt"`
	Version    string    `json:"version"`
}

// backupExport is the interchange envelope for a full data backup.
type backupExport struct {
	Projects    []project.Project   `json:"projects"`
	Preferences project.Preferences `json:"preferences"`
	ExportedAt  time.Time           `json:"exportedAt"`
	Version     string              `json:"version"`
}

// ExportProject serializes a project to an indented JSON document with
// export metadata. An empty id exports the current project.
func (s *Store) ExportProject(ctx context.Context, id string) (string, error) {
	var proj *project.Project
	if id == "" {
		proj = s.CurrentProject()
		if proj == nil {
			return "", project.ErrNoCurrentProject
		}
	} else {
		var err error
		proj, err = s.findProject(ctx, id)
		if err != nil {
			return "", err
		}
	}

	export := projectExport{
		Project:    *proj,
		ExportedAt: time.Now(),
		Version:    fmea.ExportVersion,
	}
	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ImportProject parses an exported project document and stores it as a new
// project under a fresh id. The imported project becomes current.
func (s *Store) ImportProject(ctx context.Context, data string) (*project.Project, error) {
	var export projectExport
	if err := json.Unmarshal([]byte(data), &export); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}

	proj := export.Project
	if strings.TrimSpace(proj.Name) == "" {
		return nil, fmt.Errorf("%w: missing name", ErrInvalidImport)
	}

	now := time.Now()
	proj.ID = uuid.NewString()
	proj.CreatedAt = now
	proj.UpdatedAt = now
	proj.ImportedAt = &now
	if proj.Items == nil {
		proj.Items = []fmea.Item{}
	}
	if (proj.Settings == project.Settings{}) {
		proj.Settings = project.DefaultSettings()
	}

	if err := s.SaveProject(ctx, &proj); err != nil {
		return nil, err
	}
	if err := s.SetCurrentProject(ctx, proj.ID); err != nil {
		return nil, err
	}
	s.addRecent(ctx, &proj)
	return &proj, nil
}

// ExportAllData serializes every project plus preferences as a backup
// document.
func (s *Store) ExportAllData(ctx context.Context) (string, error) {
	projects, err := s.AllProjects(ctx)
	if err != nil {
		return "", err
	}
	backup := backupExport{
		Projects:    projects,
		Preferences: s.Preferences(),
		ExportedAt:  time.Now(),
		Version:     fmea.ExportVersion,
	}
	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ClearAllData removes every persisted key, stops auto-save and re-seeds
// the defaults, leaving the store as on first run.
func (s *Store) ClearAllData(ctx context.Context) error {
	s.StopAutoSave()

	for _, key := range []string{keyProjects, keyCurrent, keyPreferences, keyAppState, keyErrorLogs} {
		if err := s.medium.Delete(ctx, key); err != nil {
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	}

	s.mu.Lock()
	s.current = nil
	s.prefs = project.DefaultPreferences()
	s.mu.Unlock()

	return s.initialize(ctx)
}

// Stats summarizes storage consumption for diagnostics.
type Stats struct {
	ProjectCount       int    `json:"projectCount"`
	CurrentProject     string `json:"currentProject"`
	TotalSize          int    `json:"totalSize"`
	TotalSizeFormatted string `json:"totalSizeFormatted"`
	StorageAvailable   bool   `json:"storageAvailable"`
	AutoSaveEnabled    bool   `json:"autoSaveEnabled"`
}

// StorageStats reports project count, the current project name and the
// byte footprint of all persisted keys.
func (s *Store) StorageStats(ctx context.Context) (Stats, error) {
	projects, err := s.AllProjects(ctx)
	if err != nil {
		return Stats{}, err
	}

	size := 0
	for _, key := range []string{keyProjects, keyCurrent, keyPreferences, keyAppState, keyErrorLogs} {
		if raw, ok, _ := s.medium.Get(ctx, key); ok {
			size += len(key) + len(raw)
		}
	}

	currentName := "None"
	if cur := s.CurrentProject(); cur != nil {
		currentName = cur.Name
	}

	return Stats{
		ProjectCount:       len(projects),
		CurrentProject:     currentName,
		TotalSize:          size,
		TotalSizeFormatted: formatBytes(size),
		StorageAvailable:   s.medium.Available(),
		AutoSaveEnabled:    s.Preferences().AutoSave,
	}, nil
}

var byteUnits = []string{"Bytes", "KB", "MB", "GB"}

func formatBytes(n int) string {
	if n == 0 {
		return "0 Bytes"
	}
	exp := int(math.Floor(math.Log(float64(n)) / math.Log(1024)))
	if exp >= len(byteUnits) {
		exp = len(byteUnits) - 1
	}
	v := float64(n) / math.Pow(1024, float64(exp))
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64) + " " + byteUnits[exp]
}
