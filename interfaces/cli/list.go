package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bomac1193/ophelian-os-sub001/application/queries"
	"github.com/bomac1193/ophelian-os-sub001/domain/core/entities"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored genomes",
		Run:   runList,
	}

	cmd.Flags().String("orisha", "", "Filter by head orisha")
	cmd.Flags().StringSlice("tag", nil, "Filter by tag (repeatable, all must match)")
	cmd.Flags().Int("limit", 0, "Maximum results")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	c, err := container(cmd)
	if err != nil {
		exitErr("init", err)
	}

	orisha, _ := cmd.Flags().GetString("orisha")
	tags, _ := cmd.Flags().GetStringSlice("tag")
	limit, _ := cmd.Flags().GetInt("limit")

	result, err := c.QueryBus.Ask(cmd.Context(), queries.ListGenomesQuery{
		OwnerID: owner(c),
		Orisha:  orisha,
		Tags:    tags,
		Limit:   limit,
	})
	if err != nil {
		exitErr("list", err)
	}

	genomes, ok := result.([]*entities.Genome)
	if !ok {
		return
	}
	for _, g := range genomes {
		name := g.Name()
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Printf("%s  %-24s %s\n", g.ID().String(), name, g.OrishaConfiguration().HeadOrisha)
	}
}
