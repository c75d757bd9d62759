package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bomac1193/ophelian-os-sub001/application/queries"
	"github.com/bomac1193/ophelian-os-sub001/domain/synthesis"
)

func init() {
	cmd := &cobra.Command{
		Use:   "lore",
		Short: "Synthesize relationship lore for a character pair",
		Run:   runLore,
	}

	cmd.Flags().String("source", "", "Source character name (required)")
	cmd.Flags().String("target", "", "Target character name (required)")
	cmd.Flags().StringP("rel", "r", "", "Relationship type: ALLY, ENEMY, MENTOR, FAMILY, RIVAL, FRIEND, LOVER or CUSTOM (required)")
	cmd.Flags().Int64("seed", 0, "Synthesis seed")
	cmd.Flags().Bool("json", false, "Emit JSON with the drawn roles")

	cmd.MarkFlagRequired("source")
	cmd.MarkFlagRequired("target")
	cmd.MarkFlagRequired("rel")

	RootCmd.AddCommand(cmd)
}

func runLore(cmd *cobra.Command, args []string) {
	c, err := container(cmd)
	if err != nil {
		exitErr("init", err)
	}

	source, _ := cmd.Flags().GetString("source")
	target, _ := cmd.Flags().GetString("target")
	rel, _ := cmd.Flags().GetString("rel")
	seed, _ := cmd.Flags().GetInt64("seed")
	asJSON, _ := cmd.Flags().GetBool("json")

	result, err := c.QueryBus.Ask(cmd.Context(), queries.SynthesizeLoreQuery{
		Source:       source,
		Target:       target,
		Relationship: rel,
		Seed:         seed,
	})
	if err != nil {
		exitErr("lore", err)
	}

	if asJSON {
		b, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(b))
		return
	}
	if lore, ok := result.(*synthesis.LoreResult); ok {
		fmt.Println(lore.Lore)
		if lore.SourceRole != "" {
			fmt.Printf("\n%s as %s, %s as %s\n", source, lore.SourceRole, target, lore.TargetRole)
		}
	}
}
