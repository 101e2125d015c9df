package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cory-johannsen/wrm/internal/game/session"
)

func newDuelCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "duel <challenger> <opponent>",
		Short: "Run an automatic duel between two NPC templates",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.build(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = a.logger.Sync() }()

			challenger, err := a.session.Spawn(args[0])
			if err != nil {
				return err
			}
			opponent, err := a.session.Spawn(args[1])
			if err != nil {
				return err
			}

			res, err := a.session.Duel(challenger.Character, opponent.Character)
			if err != nil {
				return fmt.Errorf("running duel: %w", err)
			}
			printDuel(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func printDuel(w io.Writer, res session.DuelResult) {
	for _, turn := range res.Turns {
		fmt.Fprintf(w, "[round %d] %s\n", turn.Round, turn.Narrative)
		for _, name := range turn.Expired {
			fmt.Fprintf(w, "          %s wears off.\n", name)
		}
	}
	switch {
	case res.Stalemate:
		fmt.Fprintf(w, "Stalemate after %d rounds.\n", res.Rounds)
	case res.Winner == nil:
		fmt.Fprintf(w, "Both combatants fall in round %d.\n", res.Rounds)
	default:
		fmt.Fprintf(w, "%s wins in round %d (%d HP left).\n", res.Winner.Name(), res.Rounds, res.Winner.HP())
		if res.XP > 0 {
			fmt.Fprintf(w, "%s gains %d XP.\n", res.Winner.Name(), res.XP)
		}
		for _, inst := range res.Loot {
			if def, ok := res.Winner.Items().Item(inst.DefID); ok {
				fmt.Fprintf(w, "%s loots %s.\n", res.Winner.Name(), def.Name)
			}
		}
	}
}
