package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bomac1193/ophelian-os-sub001/application/commands"
	"github.com/bomac1193/ophelian-os-sub001/domain/core/entities"
)

func init() {
	cmd := &cobra.Command{
		Use:   "patch",
		Short: "Edit fields of a stored genome",
		Run:   runPatch,
	}

	cmd.Flags().String("id", "", "Genome ID (required)")
	cmd.Flags().String("name", "", "New character name")
	cmd.Flags().StringSlice("tag", nil, "Replacement tag set (repeatable)")

	cmd.MarkFlagRequired("id")

	RootCmd.AddCommand(cmd)
}

func runPatch(cmd *cobra.Command, args []string) {
	c, err := container(cmd)
	if err != nil {
		exitErr("init", err)
	}

	id, _ := cmd.Flags().GetString("id")

	var patch entities.GenomePatch
	if cmd.Flags().Changed("name") {
		name, _ := cmd.Flags().GetString("name")
		patch.Name = &name
	}
	if cmd.Flags().Changed("tag") {
		tags, _ := cmd.Flags().GetStringSlice("tag")
		patch.Tags = &tags
	}

	handler := commands.NewPatchGenomeHandler(c.GenomeRepo, c.EventBus, c.DomainConfig, c.Logger)
	g, err := handler.Handle(cmd.Context(), commands.PatchGenomeCommand{
		GenomeID: id,
		OwnerID:  owner(c),
		Patch:    patch,
	})
	if err != nil {
		exitErr("patch", err)
	}

	fmt.Printf("genome %s now at version %d\n", g.ID().String(), g.Version())
}
