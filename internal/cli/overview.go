package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thingsbridge/thingsbridge/internal/things"
	"github.com/thingsbridge/thingsbridge/internal/tui"
)

// AddOverviewCommand adds the overview command to the root command.
func AddOverviewCommand(root *cobra.Command, flags *GlobalFlags) {
	root.AddCommand(&cobra.Command{
		Use:   "overview",
		Short: "Show todos, projects, and areas in one view",
		Long: `Fetch all todos, projects, and areas concurrently and show them in a
single combined view.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newBridgeClient(cmd.Context())
			if err != nil {
				return err
			}
			overview, err := client.Overview(cmd.Context())
			if err != nil {
				return err
			}
			if flags.Output == OutputJSON {
				return newOutput(os.Stdout, flags).JSON(overview)
			}
			writeOverview(os.Stdout, overview)
			return nil
		},
	})
}

// writeOverview writes the combined view section by section.
func writeOverview(w io.Writer, overview *things.Overview) {
	styles := tui.NewOutputStyles()

	fmt.Fprintln(w, styles.Header.Render(fmt.Sprintf("Areas (%d)", len(overview.Areas))))
	if len(overview.Areas) > 0 {
		writeAreaTable(w, overview.Areas)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.Header.Render(fmt.Sprintf("Projects (%d)", len(overview.Projects))))
	if len(overview.Projects) > 0 {
		writeProjectTable(w, overview.Projects)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.Header.Render(fmt.Sprintf("Todos (%d)", len(overview.Todos))))
	if len(overview.Todos) > 0 {
		writeTodoTable(w, overview.Todos)
	}
}
