package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thingsbridge/thingsbridge/internal/domain"
)

// AddTagsCommand adds the tags command group to the root command.
func AddTagsCommand(root *cobra.Command, flags *GlobalFlags) {
	tagsCmd := &cobra.Command{
		Use:   "tags",
		Short: "List, inspect, and create tags",
	}

	tagsCmd.AddCommand(newTagsListCmd(flags))
	tagsCmd.AddCommand(newTagsGetCmd(flags))
	tagsCmd.AddCommand(newTagsAddCmd(flags))

	root.AddCommand(tagsCmd)
}

// newTagsListCmd creates the tags list command.
func newTagsListCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tags",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newBridgeClient(cmd.Context())
			if err != nil {
				return err
			}
			tags, err := client.GetAllTags(cmd.Context())
			if err != nil {
				return err
			}
			if flags.Output == OutputJSON {
				return newOutput(os.Stdout, flags).JSON(tags)
			}
			if len(tags) == 0 {
				newOutput(os.Stdout, flags).Info("No tags found")
				return nil
			}
			writeTagTable(os.Stdout, tags)
			return nil
		},
	}
}

// newTagsGetCmd creates the tags get command.
func newTagsGetCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single tag by identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newBridgeClient(cmd.Context())
			if err != nil {
				return err
			}
			tag, err := client.GetTag(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if flags.Output == OutputJSON {
				return newOutput(os.Stdout, flags).JSON(tag)
			}
			writeTagDetail(os.Stdout, tag)
			return nil
		},
	}
}

// newTagsAddCmd creates the tags add command.
func newTagsAddCmd(flags *GlobalFlags) *cobra.Command {
	var parent string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a new tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newBridgeClient(cmd.Context())
			if err != nil {
				return err
			}
			tag, err := client.CreateTag(cmd.Context(), domain.TagCreate{
				Name:   args[0],
				Parent: parent,
			})
			if err != nil {
				return err
			}
			out := newOutput(os.Stdout, flags)
			if flags.Output == OutputJSON {
				return out.JSON(tag)
			}
			out.Success(fmt.Sprintf("Created tag %s", tag.ID))
			writeTagDetail(os.Stdout, tag)
			return nil
		},
	}

	cmd.Flags().StringVar(&parent, "parent", "", "Parent tag name for nesting")

	return cmd
}
