package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ricky-aufvaa/dfmea/internal/domain/fmea"
)

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage FMEA items in the current project",
}

var itemAddCmd = &cobra.Command{
	Use:   "add <component> <failure-mode>",
	Short: "Add an FMEA item",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if coord.CurrentProject() == nil {
			return fmt.Errorf("no project is currently open")
		}

		function, _ := cmd.Flags().GetString("function")
		effects, _ := cmd.Flags().GetString("effects")
		causes, _ := cmd.Flags().GetString("causes")
		severity, _ := cmd.Flags().GetInt("severity")
		occurrence, _ := cmd.Flags().GetInt("occurrence")
		detection, _ := cmd.Flags().GetInt("detection")

		item := items.Create(cmd.Context(), fmea.CreateRequest{
			Component:   args[0],
			FailureMode: args[1],
			Function:    function,
			Effects:     effects,
			Causes:      causes,
			Severity:    severity,
			Occurrence:  occurrence,
			Detection:   detection,
		})
		fmt.Printf("added %s  RPN %d (%s)\n", item.ID, item.RPN, items.Thresholds().Classify(item.RPN))
		return nil
	},
}

var itemListCmd = &cobra.Command{
	Use:   "list",
	Short: "List FMEA items",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, item := range items.All() {
			fmt.Printf("%s  %-20s %-25s S%d O%d D%d  RPN %d\n",
				item.ID, item.Component, item.FailureMode,
				item.Severity, item.Occurrence, item.Detection, item.RPN)
		}
		return nil
	},
}

var itemDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an FMEA item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := items.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("deleted")
		return nil
	},
}

var itemSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search FMEA items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, item := range items.Search(args[0]) {
			fmt.Printf("%s  %s / %s  RPN %d\n", item.ID, item.Component, item.FailureMode, item.RPN)
		}
		return nil
	},
}

var itemHighRiskCmd = &cobra.Command{
	Use:   "high-risk",
	Short: "List items above the RPN threshold",
	RunE: func(cmd *cobra.Command, args []string) error {
		threshold, _ := cmd.Flags().GetInt("threshold")
		for _, item := range items.HighRisk(threshold) {
			fmt.Printf("%s  %s / %s  RPN %d\n", item.ID, item.Component, item.FailureMode, item.RPN)
		}
		return nil
	},
}

var itemSuggestCmd = &cobra.Command{
	Use:   "suggest <component>",
	Short: "Suggest failure modes for a component",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, s := range fmea.SuggestFailureModes(args[0], "") {
			fmt.Printf("%-25s S%d O%d D%d\n", s.FailureMode, s.Severity, s.Occurrence, s.Detection)
		}
		return nil
	},
}

var itemStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show worksheet statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		stats := items.Statistics()
		fmt.Printf("Items: %d total, %d high / %d medium / %d low risk\n",
			stats.TotalItems, stats.HighRiskItems, stats.MediumRiskItems, stats.LowRiskItems)
		fmt.Printf("RPN:   avg %d, max %d\n", stats.AverageRPN, stats.MaxRPN)
		for name, cs := range stats.ComponentBreakdown {
			fmt.Printf("  %-20s %d items, avg RPN %d\n", name, cs.Count, cs.AverageRPN)
		}
		return nil
	},
}

var itemImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import items from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		decoded, err := fmea.DecodeItems(data)
		if err != nil {
			return err
		}
		result := items.Import(cmd.Context(), decoded)
		fmt.Printf("imported %d, skipped %d\n", result.Imported, result.Skipped)
		return nil
	},
}

var itemExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the worksheet with statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := json.MarshalIndent(items.Export(), "", "  ")
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("output")
		if out == "" {
			fmt.Println(string(data))
			return nil
		}
		return os.WriteFile(out, data, 0o644)
	},
}

var itemRecalcCmd = &cobra.Command{
	Use:   "recalc",
	Short: "Recompute every item's RPN",
	RunE: func(cmd *cobra.Command, args []string) error {
		updated := items.RecalculateAll(cmd.Context())
		fmt.Printf("updated %d items\n", updated)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(itemCmd)
	itemAddCmd.Flags().String("function", "", "component function")
	itemAddCmd.Flags().String("effects", "", "failure effects")
	itemAddCmd.Flags().String("causes", "", "failure causes")
	itemAddCmd.Flags().Int("severity", 0, "severity rating 1-10")
	itemAddCmd.Flags().Int("occurrence", 0, "occurrence rating 1-10")
	itemAddCmd.Flags().Int("detection", 0, "detection rating 1-10")
	itemHighRiskCmd.Flags().Int("threshold", 0, "RPN cutoff (default 100)")
	itemExportCmd.Flags().StringP("output", "o", "", "write to file instead of stdout")

	itemCmd.AddCommand(itemAddCmd)
	itemCmd.AddCommand(itemListCmd)
	itemCmd.AddCommand(itemDeleteCmd)
	itemCmd.AddCommand(itemSearchCmd)
	itemCmd.AddCommand(itemHighRiskCmd)
	itemCmd.AddCommand(itemSuggestCmd)
	itemCmd.AddCommand(itemStatsCmd)
	itemCmd.AddCommand(itemImportCmd)
	itemCmd.AddCommand(itemExportCmd)
	itemCmd.AddCommand(itemRecalcCmd)
}
