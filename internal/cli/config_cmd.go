package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thingsbridge/thingsbridge/internal/config"
	"github.com/thingsbridge/thingsbridge/internal/tui"
)

// AddConfigCommand adds the config command group to the root command.
func AddConfigCommand(root *cobra.Command, flags *GlobalFlags) {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show and initialize configuration",
		Long: `Commands for working with thingsbridge configuration.

Configuration is layered: defaults, then the global config file, then the
project config file, then THINGSBRIDGE_* environment variables.

Examples:
  thingsbridge config show           # Show the effective configuration
  thingsbridge config init           # Write a default global config file
  thingsbridge config init --force   # Overwrite an existing config file`,
	}

	configCmd.AddCommand(newConfigShowCmd(flags))
	configCmd.AddCommand(newConfigInitCmd(flags))

	root.AddCommand(configCmd)
}

// newConfigShowCmd creates the config show command.
func newConfigShowCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			if flags.Output == OutputJSON {
				return newOutput(os.Stdout, flags).JSON(configDocument(cfg))
			}
			return writeConfigShow(os.Stdout, cfg)
		},
	}
}

// configDocument converts the config to a plain document with the timeout
// rendered as a duration string rather than nanoseconds.
func configDocument(cfg *config.Config) map[string]any {
	return map[string]any{
		"app": map[string]any{
			"name": cfg.App.Name,
		},
		"script": map[string]any{
			"binary":  cfg.Script.Binary,
			"timeout": cfg.Script.Timeout.String(),
		},
		"logging": map[string]any{
			"level": cfg.Logging.Level,
			"file":  cfg.Logging.File,
		},
	}
}

// writeConfigShow writes the configuration as YAML with the file paths that
// were consulted.
func writeConfigShow(w io.Writer, cfg *config.Config) error {
	styles := tui.NewOutputStyles()

	globalPath, err := config.GlobalConfigPath()
	if err == nil {
		fmt.Fprintf(w, "%s %s\n", styles.Dim.Render("# global:"), globalPath)
	}
	fmt.Fprintf(w, "%s %s\n", styles.Dim.Render("# project:"), config.ProjectConfigPath())

	data, err := yaml.Marshal(configDocument(cfg))
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// newConfigInitCmd creates the config init command.
func newConfigInitCmd(flags *GlobalFlags) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default global config file",
		RunE: func(_ *cobra.Command, _ []string) error {
			path, err := config.Init(force)
			if err != nil {
				return err
			}
			out := newOutput(os.Stdout, flags)
			if flags.Output == OutputJSON {
				return out.JSON(map[string]string{"path": path})
			}
			out.Success(fmt.Sprintf("Wrote config to %s", path))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")

	return cmd
}
