package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/ordem-api/internal/handlers/rules/v1alpha1"
)

var processTurnCmd = &cobra.Command{
	Use:   "process-turn [character-id]",
	Short: "Run a character's automatic turn effects",
	Args:  cobra.ExactArgs(1),
	RunE:  processTurn,
}

func processTurn(_ *cobra.Command, args []string) error {
	client, cleanup, err := createRulesClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ProcessTurn(ctx, &v1alpha1.ProcessTurnRequest{CharacterID: args[0]})
	if err != nil {
		return fmt.Errorf("failed to process turn: %w", err)
	}

	for _, change := range resp.Changes {
		fmt.Printf("  - %s\n", change)
	}
	fmt.Printf("PV %d/%d  SAN %d/%d\n",
		resp.Character.PV, resp.Character.MaxPV, resp.Character.SAN, resp.Character.MaxSAN)
	if resp.IsDead {
		fmt.Println("The character is dead.")
	}

	return nil
}
