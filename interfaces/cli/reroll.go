package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bomac1193/ophelian-os-sub001/application/commands"
	"github.com/bomac1193/ophelian-os-sub001/domain/genome"
)

func init() {
	cmd := &cobra.Command{
		Use:   "reroll",
		Short: "Regenerate a stored genome under a new seed",
		Run:   runReroll,
	}

	cmd.Flags().String("id", "", "Genome ID (required)")
	cmd.Flags().Int64("seed", 0, "New generation seed (required)")
	cmd.Flags().String("orisha", "", "Force the head orisha")
	cmd.Flags().String("sephira", "", "Force the primary sephira")
	cmd.Flags().Float64("bias", 0, "Hot/cool bias in [-1,1]")
	cmd.Flags().String("trajectory", "", "Preferred trajectory")
	cmd.Flags().String("gender", "", "Voice gender")
	cmd.Flags().String("format", "markdown", "Output format: json or markdown")

	cmd.MarkFlagRequired("id")
	cmd.MarkFlagRequired("seed")

	RootCmd.AddCommand(cmd)
}

func runReroll(cmd *cobra.Command, args []string) {
	c, err := container(cmd)
	if err != nil {
		exitErr("init", err)
	}

	id, _ := cmd.Flags().GetString("id")
	seed, _ := cmd.Flags().GetInt64("seed")
	forceOrisha, _ := cmd.Flags().GetString("orisha")
	forceSephira, _ := cmd.Flags().GetString("sephira")
	trajectory, _ := cmd.Flags().GetString("trajectory")
	gender, _ := cmd.Flags().GetString("gender")
	format, _ := cmd.Flags().GetString("format")

	command := commands.RerollGenomeCommand{
		GenomeID:            id,
		OwnerID:             owner(c),
		Seed:                seed,
		ForceOrisha:         forceOrisha,
		ForceSephira:        forceSephira,
		PreferredTrajectory: trajectory,
		Gender:              gender,
		Weights:             policyWeights(c),
	}
	if cmd.Flags().Changed("bias") {
		bias, _ := cmd.Flags().GetFloat64("bias")
		command.HotCoolBias = &bias
	}

	handler := commands.NewRerollGenomeHandler(c.Generator, c.GenomeRepo, c.EventBus, c.Logger)
	g, err := handler.Handle(cmd.Context(), command)
	if err != nil {
		exitErr("reroll", err)
	}

	out, err := genome.Export(g, genome.ExportOptions{Format: genome.ExportFormat(format)})
	if err != nil {
		exitErr("render", err)
	}
	fmt.Println(out)
}
