package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ricky-aufvaa/dfmea/internal/domain/fmea"
	"github.com/ricky-aufvaa/dfmea/internal/domain/project"
	"github.com/ricky-aufvaa/dfmea/internal/domain/system"
	"github.com/ricky-aufvaa/dfmea/internal/storage"
)

const serverInstructions = `DFMEA authoring server. Projects bundle a system
definition with its FMEA items; exactly one project is current at a time.
Create or load a project first, then manage its items. RPN is always
severity x occurrence x detection and is recomputed on every change.`

// ProjectService defines project operations needed by MCP.
type ProjectService interface {
	CreateProject(ctx context.Context, draft project.Draft) (*project.Project, error)
	LoadProject(ctx context.Context, id string) (*project.Project, error)
	SaveCurrentProject(ctx context.Context) error
	CurrentProject() *project.Project
	AllProjects(ctx context.Context) ([]project.Project, error)
	DeleteProject(ctx context.Context, id string) error
	DuplicateProject(ctx context.Context, id, newName string) (*project.Project, error)
	ExportProject(ctx context.Context, id string) (string, error)
	ImportProject(ctx context.Context, data, newName string) (*project.Project, error)
	ProjectStatistics(ctx context.Context, id string) (*project.Statistics, error)
	RecentProjects() []project.Summary
	SearchProjects(ctx context.Context, query string) ([]project.Project, error)
	UpdateProjectMetadata(ctx context.Context, id string, patch project.MetadataPatch) (*project.Project, error)
	UpdatePreferences(ctx context.Context, patch project.PreferencesPatch) error
	ClearAllProjects(ctx context.Context) error
}

// ItemService defines FMEA item operations needed by MCP.
type ItemService interface {
	Create(ctx context.Context, req fmea.CreateRequest) *fmea.Item
	Update(ctx context.Context, id string, patch fmea.ItemPatch) (*fmea.Item, error)
	Delete(ctx context.Context, id string) (*fmea.Item, error)
	All() []fmea.Item
	ByID(id string) (*fmea.Item, error)
	Search(query string) []fmea.Item
	ByComponent(component string) []fmea.Item
	HighRisk(threshold int) []fmea.Item
	Statistics() fmea.Statistics
	Import(ctx context.Context, incoming []fmea.Item) fmea.ImportResult
	Export() fmea.ExportBundle
	RecalculateAll(ctx context.Context) int
	ClearAll(ctx context.Context) error
	Thresholds() fmea.RiskThresholds
}

// DataService defines system and whole-store operations needed by MCP.
type DataService interface {
	SaveSystem(ctx context.Context, sys *system.System) error
	SystemData() *system.System
	Preferences() project.Preferences
	ExportAllData(ctx context.Context) (string, error)
	ClearAllData(ctx context.Context) error
	StorageStats(ctx context.Context) (storage.Stats, error)
}

// Services contains all domain services needed by MCP.
type Services struct {
	Projects ProjectService
	Items    ItemService
	Data     DataService
}

// Config contains server configuration.
type Config struct {
	Services Services
	Logger   *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "dfmea",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Services)

	return server
}
