package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ricky-aufvaa/dfmea/internal/domain/fmea"
	"github.com/ricky-aufvaa/dfmea/internal/domain/project"
	"github.com/ricky-aufvaa/dfmea/internal/domain/system"
)

// registerTools wires every tool onto the server.
func registerTools(server *sdkmcp.Server, svcs Services) {
	registerProjectTools(server, svcs)
	registerItemTools(server, svcs)
	registerSystemTools(server, svcs)
	registerDataTools(server, svcs)
}

func registerProjectTools(server *sdkmcp.Server, svcs Services) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_project",
		Description: "Create a new project and make it current",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in CreateProjectParams) (*sdkmcp.CallToolResult, ProjectResponse, error) {
		proj, err := svcs.Projects.CreateProject(ctx, project.Draft{Name: in.Name, Description: in.Description})
		if err != nil {
			return nil, ProjectResponse{}, mapErr(err)
		}
		return nil, ProjectResponse{Project: proj}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "load_project",
		Description: "Load a project by ID and make it current",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in LoadProjectParams) (*sdkmcp.CallToolResult, ProjectResponse, error) {
		proj, err := svcs.Projects.LoadProject(ctx, in.ID)
		if err != nil {
			return nil, ProjectResponse{}, mapErr(err)
		}
		return nil, ProjectResponse{Project: proj}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_projects",
		Description: "List all stored projects",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, ProjectListResponse, error) {
		projects, err := svcs.Projects.AllProjects(ctx)
		if err != nil {
			return nil, ProjectListResponse{}, mapErr(err)
		}
		return nil, ProjectListResponse{Projects: projects, Count: len(projects)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_current_project",
		Description: "Get the currently open project",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, ProjectResponse, error) {
		proj := svcs.Projects.CurrentProject()
		if proj == nil {
			return nil, ProjectResponse{}, mapErr(project.ErrNoCurrentProject)
		}
		return nil, ProjectResponse{Project: proj}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "save_project",
		Description: "Save the current project, including unsaved item edits",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, StatusResponse, error) {
		if err := svcs.Projects.SaveCurrentProject(ctx); err != nil {
			return nil, StatusResponse{}, mapErr(err)
		}
		return nil, StatusResponse{Status: "saved"}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_project",
		Description: "Delete a project by ID",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in DeleteProjectParams) (*sdkmcp.CallToolResult, StatusResponse, error) {
		if err := svcs.Projects.DeleteProject(ctx, in.ID); err != nil {
			return nil, StatusResponse{}, mapErr(err)
		}
		return nil, StatusResponse{Status: "deleted"}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "duplicate_project",
		Description: "Duplicate a project under a new name",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in DuplicateProjectParams) (*sdkmcp.CallToolResult, ProjectResponse, error) {
		proj, err := svcs.Projects.DuplicateProject(ctx, in.ID, in.NewName)
		if err != nil {
			return nil, ProjectResponse{}, mapErr(err)
		}
		return nil, ProjectResponse{Project: proj}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "search_projects",
		Description: "Search projects by name and description",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in SearchProjectsParams) (*sdkmcp.CallToolResult, ProjectListResponse, error) {
		matches, err := svcs.Projects.SearchProjects(ctx, in.Query)
		if err != nil {
			return nil, ProjectListResponse{}, mapErr(err)
		}
		return nil, ProjectListResponse{Projects: matches, Count: len(matches)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_project",
		Description: "Update a project's name and description",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in UpdateProjectParams) (*sdkmcp.CallToolResult, ProjectResponse, error) {
		proj, err := svcs.Projects.UpdateProjectMetadata(ctx, in.ID, project.MetadataPatch{
			Name:        in.Name,
			Description: in.Description,
		})
		if err != nil {
			return nil, ProjectResponse{}, mapErr(err)
		}
		return nil, ProjectResponse{Project: proj}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "project_statistics",
		Description: "Get metadata, system summary and RPN statistics for a project",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in ProjectStatisticsParams) (*sdkmcp.CallToolResult, *project.Statistics, error) {
		stats, err := svcs.Projects.ProjectStatistics(ctx, in.ID)
		if err != nil {
			return nil, nil, mapErr(err)
		}
		return nil, stats, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_recent_projects",
		Description: "List recently opened projects, most recent first",
	}, func(_ context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, RecentProjectsResponse, error) {
		return nil, RecentProjectsResponse{Recent: svcs.Projects.RecentProjects()}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "export_project",
		Description: "Export a project as a JSON document",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in ExportProjectParams) (*sdkmcp.CallToolResult, ExportResponse, error) {
		data, err := svcs.Projects.ExportProject(ctx, in.ID)
		if err != nil {
			return nil, ExportResponse{}, mapErr(err)
		}
		return nil, ExportResponse{Data: data}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "import_project",
		Description: "Import an exported project document as a new project",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in ImportProjectParams) (*sdkmcp.CallToolResult, ProjectResponse, error) {
		proj, err := svcs.Projects.ImportProject(ctx, in.Data, in.NewName)
		if err != nil {
			return nil, ProjectResponse{}, mapErr(err)
		}
		return nil, ProjectResponse{Project: proj}, nil
	})
}

func registerItemTools(server *sdkmcp.Server, svcs Services) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_fmea_item",
		Description: "Add an FMEA item to the current project's worksheet",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in CreateItemParams) (*sdkmcp.CallToolResult, ItemResponse, error) {
		item := svcs.Items.Create(ctx, fmea.CreateRequest{
			Component:          in.Component,
			Function:           in.Function,
			FailureMode:        in.FailureMode,
			Effects:            in.Effects,
			Causes:             in.Causes,
			CurrentControls:    in.CurrentControls,
			Severity:           in.Severity,
			Occurrence:         in.Occurrence,
			Detection:          in.Detection,
			RecommendedActions: in.RecommendedActions,
		})
		return nil, ItemResponse{Item: item, RiskLevel: svcs.Items.Thresholds().Classify(item.RPN)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_fmea_item",
		Description: "Update an FMEA item; the RPN is recomputed",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in UpdateItemParams) (*sdkmcp.CallToolResult, ItemResponse, error) {
		item, err := svcs.Items.Update(ctx, in.ID, fmea.ItemPatch{
			Component:          in.Component,
			Function:           in.Function,
			FailureMode:        in.FailureMode,
			Effects:            in.Effects,
			Causes:             in.Causes,
			CurrentControls:    in.CurrentControls,
			Severity:           in.Severity,
			Occurrence:         in.Occurrence,
			Detection:          in.Detection,
			RecommendedActions: in.RecommendedActions,
		})
		if err != nil {
			return nil, ItemResponse{}, mapErr(err)
		}
		return nil, ItemResponse{Item: item, RiskLevel: svcs.Items.Thresholds().Classify(item.RPN)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_fmea_item",
		Description: "Delete an FMEA item by ID",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in ItemIDParams) (*sdkmcp.CallToolResult, StatusResponse, error) {
		if _, err := svcs.Items.Delete(ctx, in.ID); err != nil {
			return nil, StatusResponse{}, mapErr(err)
		}
		return nil, StatusResponse{Status: "deleted"}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_fmea_items",
		Description: "List all FMEA items in the current worksheet",
	}, func(_ context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, ItemListResponse, error) {
		items := svcs.Items.All()
		return nil, ItemListResponse{Items: items, Count: len(items)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_fmea_item",
		Description: "Get an FMEA item by ID",
	}, func(_ context.Context, _ *sdkmcp.CallToolRequest, in ItemIDParams) (*sdkmcp.CallToolResult, ItemResponse, error) {
		item, err := svcs.Items.ByID(in.ID)
		if err != nil {
			return nil, ItemResponse{}, mapErr(err)
		}
		return nil, ItemResponse{Item: item, RiskLevel: svcs.Items.Thresholds().Classify(item.RPN)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "search_fmea_items",
		Description: "Search FMEA items across component, function, failure mode, effects and causes",
	}, func(_ context.Context, _ *sdkmcp.CallToolRequest, in SearchItemsParams) (*sdkmcp.CallToolResult, ItemListResponse, error) {
		items := svcs.Items.Search(in.Query)
		return nil, ItemListResponse{Items: items, Count: len(items)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_items_by_component",
		Description: "List FMEA items for a component",
	}, func(_ context.Context, _ *sdkmcp.CallToolRequest, in ComponentParams) (*sdkmcp.CallToolResult, ItemListResponse, error) {
		items := svcs.Items.ByComponent(in.Component)
		return nil, ItemListResponse{Items: items, Count: len(items)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_high_risk_items",
		Description: "List FMEA items with RPN above a threshold",
	}, func(_ context.Context, _ *sdkmcp.CallToolRequest, in HighRiskParams) (*sdkmcp.CallToolResult, ItemListResponse, error) {
		items := svcs.Items.HighRisk(in.Threshold)
		return nil, ItemListResponse{Items: items, Count: len(items)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "suggest_failure_modes",
		Description: "Suggest likely failure modes for a component, with pre-filled ratings",
	}, func(_ context.Context, _ *sdkmcp.CallToolRequest, in SuggestParams) (*sdkmcp.CallToolResult, SuggestionsResponse, error) {
		return nil, SuggestionsResponse{Suggestions: fmea.SuggestFailureModes(in.Component, in.Function)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "fmea_statistics",
		Description: "Summarize the current worksheet: risk bands, averages, component breakdown",
	}, func(_ context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, StatisticsResponse, error) {
		return nil, StatisticsResponse{Statistics: svcs.Items.Statistics()}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "import_fmea_items",
		Description: "Import FMEA items from a JSON array or an exported items document",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in ImportItemsParams) (*sdkmcp.CallToolResult, ImportItemsResponse, error) {
		items, err := fmea.DecodeItems([]byte(in.Data))
		if err != nil {
			return nil, ImportItemsResponse{}, mapErr(err)
		}
		result := svcs.Items.Import(ctx, items)
		return nil, ImportItemsResponse{Imported: result.Imported, Skipped: result.Skipped}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "export_fmea_items",
		Description: "Export the current worksheet with statistics",
	}, func(_ context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, fmea.ExportBundle, error) {
		return nil, svcs.Items.Export(), nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "recalculate_rpn",
		Description: "Recompute every item's RPN, reporting how many were stale",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, RecalculateResponse, error) {
		return nil, RecalculateResponse{Updated: svcs.Items.RecalculateAll(ctx)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "clear_fmea_items",
		Description: "Remove every item from the current worksheet",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, StatusResponse, error) {
		if err := svcs.Items.ClearAll(ctx); err != nil {
			return nil, StatusResponse{}, mapErr(err)
		}
		return nil, StatusResponse{Status: "cleared"}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_rating_scales",
		Description: "Get the 1-10 severity, occurrence and detection rating scales",
	}, func(_ context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, RatingScalesResponse, error) {
		return nil, RatingScalesResponse{
			Severity:   fmea.SeverityScale,
			Occurrence: fmea.OccurrenceScale,
			Detection:  fmea.DetectionScale,
		}, nil
	})
}

func registerSystemTools(server *sdkmcp.Server, svcs Services) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "set_system",
		Description: "Set the current project's system definition",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in SetSystemParams) (*sdkmcp.CallToolResult, SystemResponse, error) {
		sys := in.System
		if err := svcs.Data.SaveSystem(ctx, &sys); err != nil {
			return nil, SystemResponse{}, mapErr(err)
		}
		return nil, SystemResponse{System: &sys}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_system",
		Description: "Get the current project's system definition",
	}, func(_ context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, SystemResponse, error) {
		return nil, SystemResponse{System: svcs.Data.SystemData()}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_system_templates",
		Description: "List the built-in system templates",
	}, func(_ context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, TemplatesResponse, error) {
		return nil, TemplatesResponse{Templates: system.Templates()}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_system_from_template",
		Description: "Set the current project's system from a built-in template",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in FromTemplateParams) (*sdkmcp.CallToolResult, SystemResponse, error) {
		tpl := system.TemplateByID(in.TemplateID)
		if tpl == nil {
			return nil, SystemResponse{}, &APIError{
				Code:         "TEMPLATE_NOT_FOUND",
				Message:      "unknown template id",
				RecoveryHint: "Call list_system_templates for valid IDs",
			}
		}
		sys := system.FromTemplate(*tpl)
		if err := svcs.Data.SaveSystem(ctx, sys); err != nil {
			return nil, SystemResponse{}, mapErr(err)
		}
		return nil, SystemResponse{System: sys}, nil
	})
}

func registerDataTools(server *sdkmcp.Server, svcs Services) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_preferences",
		Description: "Get user preferences, including risk thresholds and the recency list",
	}, func(_ context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, PreferencesResponse, error) {
		return nil, PreferencesResponse{Preferences: svcs.Data.Preferences()}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_preferences",
		Description: "Update user preferences; risk thresholds apply immediately and auto-save restarts when its settings change",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in UpdatePreferencesParams) (*sdkmcp.CallToolResult, PreferencesResponse, error) {
		err := svcs.Projects.UpdatePreferences(ctx, project.PreferencesPatch{
			Theme:                in.Theme,
			AutoSave:             in.AutoSave,
			AutoSaveInterval:     in.AutoSaveInterval,
			Notifications:        in.Notifications,
			DefaultRPNThresholds: in.RPNThresholds,
		})
		if err != nil {
			return nil, PreferencesResponse{}, mapErr(err)
		}
		return nil, PreferencesResponse{Preferences: svcs.Data.Preferences()}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "export_all_data",
		Description: "Export every project plus preferences as a backup document",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, ExportResponse, error) {
		data, err := svcs.Data.ExportAllData(ctx)
		if err != nil {
			return nil, ExportResponse{}, mapErr(err)
		}
		return nil, ExportResponse{Data: data}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "clear_all_data",
		Description: "Delete every project and reset preferences to defaults",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, StatusResponse, error) {
		if err := svcs.Projects.ClearAllProjects(ctx); err != nil {
			return nil, StatusResponse{}, mapErr(err)
		}
		if err := svcs.Data.ClearAllData(ctx); err != nil {
			return nil, StatusResponse{}, mapErr(err)
		}
		return nil, StatusResponse{Status: "cleared"}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_storage_stats",
		Description: "Report storage usage: project count, current project, byte footprint",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, StorageStatsResponse, error) {
		stats, err := svcs.Data.StorageStats(ctx)
		if err != nil {
			return nil, StorageStatsResponse{}, mapErr(err)
		}
		return nil, StorageStatsResponse{Stats: stats}, nil
	})
}
