package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ricky-aufvaa/dfmea/internal/domain/project"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage FMEA projects",
}

var projectCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a project and make it current",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) > 0 {
			name = args[0]
		}
		description, _ := cmd.Flags().GetString("description")

		proj, err := coord.CreateProject(cmd.Context(), project.Draft{Name: name, Description: description})
		if err != nil {
			return err
		}
		fmt.Printf("created %s (%s)\n", proj.Name, proj.ID)
		return nil
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		projects, err := coord.AllProjects(cmd.Context())
		if err != nil {
			return err
		}

		current := coord.CurrentProject()
		for _, p := range projects {
			marker := " "
			if current != nil && current.ID == p.ID {
				marker = "*"
			}
			fmt.Printf("%s %s  %s  (%d items)\n", marker, p.ID, p.Name, len(p.Items))
		}
		return nil
	},
}

var projectLoadCmd = &cobra.Command{
	Use:   "load <id>",
	Short: "Load a project and make it current",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		proj, err := coord.LoadProject(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("loaded %s (%d items)\n", proj.Name, len(proj.Items))
		return nil
	},
}

var projectSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the current project",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := coord.SaveCurrentProject(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("saved")
		return nil
	},
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := coord.DeleteProject(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("deleted")
		return nil
	},
}

var projectDuplicateCmd = &cobra.Command{
	Use:   "duplicate <id> [new-name]",
	Short: "Duplicate a project",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		newName := ""
		if len(args) > 1 {
			newName = args[1]
		}
		proj, err := coord.DuplicateProject(cmd.Context(), args[0], newName)
		if err != nil {
			return err
		}
		fmt.Printf("created %s (%s)\n", proj.Name, proj.ID)
		return nil
	},
}

var projectSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search projects by name and description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		matches, err := coord.SearchProjects(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		for _, p := range matches {
			fmt.Printf("%s  %s\n", p.ID, p.Name)
		}
		return nil
	},
}

var projectRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently opened projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, r := range coord.RecentProjects() {
			fmt.Printf("%s  %s\n", r.ID, r.Name)
		}
		return nil
	},
}

var projectStatsCmd = &cobra.Command{
	Use:   "stats [id]",
	Short: "Show project statistics",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := ""
		if len(args) > 0 {
			id = args[0]
		}
		stats, err := coord.ProjectStatistics(cmd.Context(), id)
		if err != nil {
			return err
		}

		fmt.Printf("Project: %s\n", stats.Project.Name)
		if stats.System != nil {
			fmt.Printf("System:  %s (%s, %d components)\n", stats.System.Name, stats.System.Category, stats.System.ComponentCount)
		}
		fmt.Printf("Items:   %d total, %d high / %d medium / %d low risk\n",
			stats.FMEA.TotalItems, stats.FMEA.HighRiskItems, stats.FMEA.MediumRiskItems, stats.FMEA.LowRiskItems)
		fmt.Printf("RPN:     avg %d, max %d\n", stats.FMEA.AverageRPN, stats.FMEA.MaxRPN)
		return nil
	},
}

var projectExportCmd = &cobra.Command{
	Use:   "export [id]",
	Short: "Export a project as JSON to stdout or a file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := ""
		if len(args) > 0 {
			id = args[0]
		}
		data, err := coord.ExportProject(cmd.Context(), id)
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("output")
		if out == "" {
			fmt.Println(data)
			return nil
		}
		return os.WriteFile(out, []byte(data), 0o644)
	},
}

var projectImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import an exported project file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		newName, _ := cmd.Flags().GetString("name")

		proj, err := coord.ImportProject(cmd.Context(), string(data), newName)
		if err != nil {
			return err
		}
		fmt.Printf("imported %s (%s)\n", proj.Name, proj.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(projectCmd)
	projectCreateCmd.Flags().String("description", "", "project description")
	projectExportCmd.Flags().StringP("output", "o", "", "write to file instead of stdout")
	projectImportCmd.Flags().String("name", "", "override the imported project's name")

	projectCmd.AddCommand(projectCreateCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectLoadCmd)
	projectCmd.AddCommand(projectSaveCmd)
	projectCmd.AddCommand(projectDeleteCmd)
	projectCmd.AddCommand(projectDuplicateCmd)
	projectCmd.AddCommand(projectSearchCmd)
	projectCmd.AddCommand(projectRecentCmd)
	projectCmd.AddCommand(projectStatsCmd)
	projectCmd.AddCommand(projectExportCmd)
	projectCmd.AddCommand(projectImportCmd)
}
