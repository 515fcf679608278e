package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/ordem-api/internal/entities/ordem"
	"github.com/KirkDiggler/ordem-api/internal/handlers/rules/v1alpha1"
)

var applyConditionCmd = &cobra.Command{
	Use:   "apply-condition [character-id] [condition]",
	Short: "Apply a condition to a character",
	Args:  cobra.ExactArgs(2),
	RunE:  applyCondition,
}

func applyCondition(_ *cobra.Command, args []string) error {
	client, cleanup, err := createRulesClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ApplyCondition(ctx, &v1alpha1.ApplyConditionRequest{
		CharacterID: args[0],
		Condition:   ordem.Condition(strings.ToUpper(args[1])),
	})
	if err != nil {
		return fmt.Errorf("failed to apply condition: %w", err)
	}

	fmt.Println(resp.Transition.Message)
	return printJSON(resp.Character.Conditions)
}
