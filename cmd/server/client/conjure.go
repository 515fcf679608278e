package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/ordem-api/internal/entities/ordem"
	"github.com/KirkDiggler/ordem-api/internal/handlers/rules/v1alpha1"
)

var (
	conjureMode   string
	conjureSpent  int
	conjureReveal bool
)

var conjureCmd = &cobra.Command{
	Use:   "conjure [character-id] [ritual-id]",
	Short: "Cast a ritual",
	Long: `Cast a ritual from the catalog. The casting test stays hidden unless --reveal is set. Examples:

  conjure char-123 decadencia
  conjure char-123 decadencia --mode TRUE --spent 2 --reveal`,
	Args: cobra.ExactArgs(2),
	RunE: conjure,
}

func init() {
	conjureCmd.Flags().StringVar(&conjureMode, "mode", string(ordem.CastModeNormal), "Cast mode (NORMAL, DISCIPLE, TRUE)")
	conjureCmd.Flags().IntVar(&conjureSpent, "spent", 0, "PE already spent this turn")
	conjureCmd.Flags().BoolVar(&conjureReveal, "reveal", false, "Show the secret casting test")
}

func conjure(_ *cobra.Command, args []string) error {
	client, cleanup, err := createRulesClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ConjureRitual(ctx, &v1alpha1.ConjureRitualRequest{
		CharacterID:     args[0],
		RitualID:        args[1],
		Mode:            ordem.CastMode(strings.ToUpper(conjureMode)),
		PESpentThisTurn: conjureSpent,
		RevealSecret:    conjureReveal,
	})
	if err != nil {
		return fmt.Errorf("failed to conjure ritual: %w", err)
	}

	fmt.Println(resp.Result.Message)
	return printJSON(resp.Result)
}
