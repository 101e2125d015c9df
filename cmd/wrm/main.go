// Package main is the entry point for the wrm rules engine CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "wrm",
		Short:         "Warrior, Rogue & Mage rules engine",
		Long:          `wrm resolves checks, duels, spells and rituals against the Warrior, Rogue & Mage rules.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to configuration file (defaults apply when empty)")
	root.PersistentFlags().StringVar(&opts.contentDir, "content", "", "content directory overriding content.dir")
	root.PersistentFlags().Int64Var(&opts.seed, "seed", 0, "use a seeded dice source with this seed")

	root.AddCommand(newDuelCmd(opts))
	root.AddCommand(newTemplatesCmd(opts))
	root.AddCommand(newSheetCmd(opts))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
