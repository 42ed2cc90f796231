package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Backup, restore and inspect the data store",
}

var dataExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every project plus preferences as a backup",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := store.ExportAllData(cmd.Context())
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

var dataRestoreCmd = &cobra.Command{
	Use:   "restore <file>",
	Short: "Import a single exported project file verbatim",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		proj, err := store.ImportProject(cmd.Context(), string(data))
		if err != nil {
			return err
		}
		fmt.Printf("restored %s (%s)\n", proj.Name, proj.ID)
		return nil
	},
}

var dataClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every project and reset preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Print("This deletes all projects and preferences. Type 'yes' to continue: ")
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.TrimSpace(answer) != "yes" {
				fmt.Println("aborted")
				return nil
			}
		}

		if err := store.ClearAllData(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("cleared")
		return nil
	},
}

var dataStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show storage usage",
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := store.StorageStats(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Projects:  %d\n", stats.ProjectCount)
		fmt.Printf("Current:   %s\n", stats.CurrentProject)
		fmt.Printf("Size:      %s\n", stats.TotalSizeFormatted)
		fmt.Printf("Available: %t\n", stats.StorageAvailable)
		fmt.Printf("Auto-save: %t\n", stats.AutoSaveEnabled)
		return nil
	},
}

var dataErrorsCmd = &cobra.Command{
	Use:   "errors",
	Short: "Show the persisted error log",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries := store.ErrorLog(cmd.Context())
		if len(entries) == 0 {
			fmt.Println("no errors logged")
			return nil
		}
		for _, e := range entries {
			fmt.Printf("%s  [%s] %s\n", e.Timestamp.Format("2006-01-02 15:04:05"), e.Context, e.Message)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dataCmd)
	dataExportCmd.Flags().StringP("output", "o", "", "write to file instead of stdout")
	dataClearCmd.Flags().Bool("force", false, "skip the confirmation prompt")

	dataCmd.AddCommand(dataExportCmd)
	dataCmd.AddCommand(dataRestoreCmd)
	dataCmd.AddCommand(dataClearCmd)
	dataCmd.AddCommand(dataStatsCmd)
	dataCmd.AddCommand(dataErrorsCmd)
}
