package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/ordem-api/internal/handlers/rules/v1alpha1"
)

var getCharacterCmd = &cobra.Command{
	Use:   "get-character [character-id]",
	Short: "Get a character and its derived sheet",
	Args:  cobra.ExactArgs(1),
	RunE:  getCharacter,
}

func getCharacter(_ *cobra.Command, args []string) error {
	client, cleanup, err := createRulesClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetCharacter(ctx, &v1alpha1.GetCharacterRequest{CharacterID: args[0]})
	if err != nil {
		return fmt.Errorf("failed to get character: %w", err)
	}

	return printJSON(resp)
}
