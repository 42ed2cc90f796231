package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ricky-aufvaa/dfmea/internal/domain/system"
)

var systemCmd = &cobra.Command{
	Use:   "system",
	Short: "Manage the current project's system definition",
}

var systemShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the system definition",
	RunE: func(cmd *cobra.Command, args []string) error {
		sys := store.SystemData()
		if sys == nil {
			fmt.Println("no system defined")
			return nil
		}

		fmt.Printf("%s (%s)\n", sys.Name, sys.Category)
		if sys.Description != "" {
			fmt.Println(sys.Description)
		}
		for _, c := range sys.Components {
			fmt.Printf("  %-25s %-10s %s\n", c.Name, c.Criticality, c.Function)
		}
		return nil
	},
}

var systemTemplatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the built-in system templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, tpl := range system.Templates() {
			fmt.Printf("%-25s %s (%d components)\n", tpl.ID, tpl.Name, len(tpl.Components))
		}
		return nil
	},
}

var systemFromTemplateCmd = &cobra.Command{
	Use:   "from-template <template-id>",
	Short: "Set the system from a built-in template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tpl := system.TemplateByID(args[0])
		if tpl == nil {
			return fmt.Errorf("unknown template %q, see 'dfmea system templates'", args[0])
		}

		sys := system.FromTemplate(*tpl)
		if err := store.SaveSystem(cmd.Context(), sys); err != nil {
			return err
		}
		fmt.Printf("system set to %s (%d components)\n", sys.Name, sys.ComponentCount())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(systemCmd)
	systemCmd.AddCommand(systemShowCmd)
	systemCmd.AddCommand(systemTemplatesCmd)
	systemCmd.AddCommand(systemFromTemplateCmd)
}
