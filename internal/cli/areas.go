package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// AddAreasCommand adds the areas command group to the root command.
func AddAreasCommand(root *cobra.Command, flags *GlobalFlags) {
	areasCmd := &cobra.Command{
		Use:   "areas",
		Short: "List and inspect areas",
	}

	areasCmd.AddCommand(newAreasListCmd(flags))
	areasCmd.AddCommand(newAreasGetCmd(flags))

	root.AddCommand(areasCmd)
}

// newAreasListCmd creates the areas list command.
func newAreasListCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all areas",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newBridgeClient(cmd.Context())
			if err != nil {
				return err
			}
			areas, err := client.GetAllAreas(cmd.Context())
			if err != nil {
				return err
			}
			if flags.Output == OutputJSON {
				return newOutput(os.Stdout, flags).JSON(areas)
			}
			if len(areas) == 0 {
				newOutput(os.Stdout, flags).Info("No areas found")
				return nil
			}
			writeAreaTable(os.Stdout, areas)
			return nil
		},
	}
}

// newAreasGetCmd creates the areas get command.
func newAreasGetCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single area by identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newBridgeClient(cmd.Context())
			if err != nil {
				return err
			}
			area, err := client.GetArea(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if flags.Output == OutputJSON {
				return newOutput(os.Stdout, flags).JSON(area)
			}
			writeAreaDetail(os.Stdout, area)
			return nil
		},
	}
}
