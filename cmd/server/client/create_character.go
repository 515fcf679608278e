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
	createPlayerID string
	createClass    string
	createNEX      int
	createAttrs    []int
	createTrained  []string
	createAffinity string
)

var createCharacterCmd = &cobra.Command{
	Use:   "create-character [name]",
	Short: "Create a character",
	Long: `Create a character at full resources. Examples:

  create-character "Arnaldo Fritz" --player p1 --class COMBATENTE --attrs 2,2,1,2,2 --trained FIGHTING
  create-character "Dante" --player p1 --class OCULTISTA --nex 30 --attrs 1,1,3,3,1 --trained OCCULTISM --affinity DEATH`,
	Args: cobra.ExactArgs(1),
	RunE: createCharacter,
}

func init() {
	createCharacterCmd.Flags().StringVar(&createPlayerID, "player", "", "Owning player ID")
	createCharacterCmd.Flags().StringVar(&createClass, "class", string(ordem.ClassCombatente), "Class")
	createCharacterCmd.Flags().IntVar(&createNEX, "nex", 5, "Exposure percentage")
	createCharacterCmd.Flags().IntSliceVar(&createAttrs, "attrs", []int{1, 1, 1, 1, 1},
		"Attributes in order AGI,STR,INT,PRE,VIG")
	createCharacterCmd.Flags().StringSliceVar(&createTrained, "trained", nil, "Skills trained at the first grade")
	createCharacterCmd.Flags().StringVar(&createAffinity, "affinity", "", "Element affinity")
	_ = createCharacterCmd.MarkFlagRequired("player") // nolint:errcheck // flag exists
}

func createCharacter(_ *cobra.Command, args []string) error {
	if len(createAttrs) != 5 {
		return fmt.Errorf("--attrs needs 5 values, got %d", len(createAttrs))
	}

	skills := make(map[ordem.Skill]ordem.SkillTraining, len(createTrained))
	for _, s := range createTrained {
		skills[ordem.Skill(strings.ToUpper(strings.TrimSpace(s)))] = ordem.TrainingTrained
	}

	client, cleanup, err := createRulesClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.CreateCharacter(ctx, &v1alpha1.CreateCharacterRequest{
		PlayerID: createPlayerID,
		Name:     args[0],
		Class:    ordem.Class(strings.ToUpper(createClass)),
		NEX:      createNEX,
		Attributes: ordem.Attributes{
			Agility:   createAttrs[0],
			Strength:  createAttrs[1],
			Intellect: createAttrs[2],
			Presence:  createAttrs[3],
			Vigor:     createAttrs[4],
		},
		Skills:   skills,
		Affinity: ordem.Element(strings.ToUpper(createAffinity)),
	})
	if err != nil {
		return fmt.Errorf("failed to create character: %w", err)
	}

	return printJSON(resp)
}
