package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bomac1193/ophelian-os-sub001/application/queries"
)

func init() {
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Render a stored genome as a system prompt or post draft",
		Run:   runPrompt,
	}

	cmd.Flags().String("id", "", "Genome ID (required)")
	cmd.Flags().String("style", "", "Prompt style: plain, oracular or ornate")
	cmd.Flags().String("beat", "", "Emit a social post draft instead: proclamation, lament or omen")
	cmd.Flags().Int64("seed", 0, "Synthesis seed")

	cmd.MarkFlagRequired("id")

	RootCmd.AddCommand(cmd)
}

func runPrompt(cmd *cobra.Command, args []string) {
	c, err := container(cmd)
	if err != nil {
		exitErr("init", err)
	}

	id, _ := cmd.Flags().GetString("id")
	style, _ := cmd.Flags().GetString("style")
	beat, _ := cmd.Flags().GetString("beat")
	seed, _ := cmd.Flags().GetInt64("seed")

	result, err := c.QueryBus.Ask(cmd.Context(), queries.SynthesizePromptQuery{
		GenomeID: id,
		Style:    style,
		Beat:     beat,
		Seed:     seed,
	})
	if err != nil {
		exitErr("prompt", err)
	}

	if out, ok := result.(*queries.PromptOutput); ok {
		if out.Post != "" {
			fmt.Println(out.Post)
			return
		}
		fmt.Println(out.Prompt)
	}
}
