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
	rollDifficulty int
	rollAdjustment int
	rollBonus      int
)

var rollSkillCmd = &cobra.Command{
	Use:   "roll-skill [character-id] [skill]",
	Short: "Roll a skill test",
	Long: `Roll a skill test with the character's current penalties. Examples:

  roll-skill char-123 PERCEPTION --dt 15
  roll-skill char-123 STEALTH --adjust -1`,
	Args: cobra.ExactArgs(2),
	RunE: rollSkill,
}

func init() {
	rollSkillCmd.Flags().IntVar(&rollDifficulty, "dt", 0, "Difficulty, 0 reports the roll only")
	rollSkillCmd.Flags().IntVar(&rollAdjustment, "adjust", 0, "Extra dice added to or removed from the pool")
	rollSkillCmd.Flags().IntVar(&rollBonus, "bonus", 0, "Situational bonus")
}

func rollSkill(_ *cobra.Command, args []string) error {
	client, cleanup, err := createRulesClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.RollSkillTest(ctx, &v1alpha1.RollSkillTestRequest{
		CharacterID:    args[0],
		Skill:          ordem.Skill(strings.ToUpper(args[1])),
		Difficulty:     rollDifficulty,
		DiceAdjustment: rollAdjustment,
		Bonus:          rollBonus,
	})
	if err != nil {
		return fmt.Errorf("failed to roll skill test: %w", err)
	}

	return printJSON(resp)
}
