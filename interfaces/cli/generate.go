package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bomac1193/ophelian-os-sub001/application/commands"
	"github.com/bomac1193/ophelian-os-sub001/domain/genome"
)

func init() {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a character genome",
		Run:   runGenerate,
	}

	cmd.Flags().StringP("name", "n", "", "Character name")
	cmd.Flags().Int64("seed", 0, "Generation seed (omit for a random, recorded seed)")
	cmd.Flags().String("orisha", "", "Force the head orisha")
	cmd.Flags().String("sephira", "", "Force the primary sephira")
	cmd.Flags().Float64("bias", 0, "Hot/cool bias in [-1,1], blended into the orisha's energy")
	cmd.Flags().String("trajectory", "", "Preferred trajectory")
	cmd.Flags().String("gender", "", "Voice gender: masculine, feminine or neutral")
	cmd.Flags().StringSlice("tag", nil, "Tags (repeatable)")
	cmd.Flags().String("bio", "", "Character bio mined for archetypes and keywords")
	cmd.Flags().StringSlice("persona", nil, "Persona tags folded into core values")
	cmd.Flags().String("format", "markdown", "Output format: json or markdown")

	RootCmd.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, args []string) {
	c, err := container(cmd)
	if err != nil {
		exitErr("init", err)
	}

	name, _ := cmd.Flags().GetString("name")
	forceOrisha, _ := cmd.Flags().GetString("orisha")
	forceSephira, _ := cmd.Flags().GetString("sephira")
	trajectory, _ := cmd.Flags().GetString("trajectory")
	gender, _ := cmd.Flags().GetString("gender")
	tags, _ := cmd.Flags().GetStringSlice("tag")
	bio, _ := cmd.Flags().GetString("bio")
	persona, _ := cmd.Flags().GetStringSlice("persona")
	format, _ := cmd.Flags().GetString("format")

	command := commands.GenerateGenomeCommand{
		OwnerID:             owner(c),
		Name:                name,
		ForceOrisha:         forceOrisha,
		ForceSephira:        forceSephira,
		PreferredTrajectory: trajectory,
		Gender:              gender,
		Tags:                tags,
		Bio:                 bio,
		PersonaTags:         persona,
		Weights:             policyWeights(c),
	}
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetInt64("seed")
		command.Seed = &seed
	}
	if cmd.Flags().Changed("bias") {
		bias, _ := cmd.Flags().GetFloat64("bias")
		command.HotCoolBias = &bias
	}

	handler := commands.NewGenerateGenomeHandler(c.Generator, c.GenomeRepo, c.EventBus, c.Logger)
	g, err := handler.Handle(cmd.Context(), command)
	if err != nil {
		exitErr("generate", err)
	}

	out, err := genome.Export(g, genome.ExportOptions{Format: genome.ExportFormat(format)})
	if err != nil {
		exitErr("render", err)
	}
	fmt.Println(out)
	fmt.Fprintf(cmd.ErrOrStderr(), "genome %s saved\n", g.ID().String())
}
