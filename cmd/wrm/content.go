package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newTemplatesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List NPC and monster templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.build(cmd)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tKIND\tXP")
			for _, t := range a.session.NPCs().Templates() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", t.ID, t.Name, t.Kind, t.XPValue)
			}
			return tw.Flush()
		},
	}
}

// newSheetCmd prints the snapshot of a freshly spawned template as YAML.
func newSheetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sheet <template>",
		Short: "Print the character sheet of an NPC template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.build(cmd)
			if err != nil {
				return err
			}
			inst, err := a.session.Spawn(args[0])
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(inst.Character.Snapshot()); err != nil {
				return fmt.Errorf("encoding sheet: %w", err)
			}
			return enc.Close()
		},
	}
}
