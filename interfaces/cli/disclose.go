package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bomac1193/ophelian-os-sub001/application/queries"
	"github.com/bomac1193/ophelian-os-sub001/infrastructure/persistence/memory"
)

func init() {
	cmd := &cobra.Command{
		Use:   "disclose",
		Short: "Project a genome at a disclosure tier",
		Run:   runDisclose,
	}

	cmd.Flags().String("id", "", "Genome ID (required)")
	cmd.Flags().String("viewer", "", "Viewer account (default: the owner)")
	cmd.Flags().String("tier", "", "Tier: surface, gateway or depths (default: highest permitted)")
	cmd.Flags().Bool("admin", false, "Treat the viewer as an admin")
	cmd.Flags().Int("account-age-days", 0, "Viewer account age in days")

	cmd.MarkFlagRequired("id")

	RootCmd.AddCommand(cmd)
}

func runDisclose(cmd *cobra.Command, args []string) {
	c, err := container(cmd)
	if err != nil {
		exitErr("init", err)
	}

	id, _ := cmd.Flags().GetString("id")
	viewer, _ := cmd.Flags().GetString("viewer")
	tier, _ := cmd.Flags().GetString("tier")
	admin, _ := cmd.Flags().GetBool("admin")
	ageDays, _ := cmd.Flags().GetInt("account-age-days")

	if viewer == "" {
		viewer = owner(c)
	}
	if admin || ageDays > 0 {
		if reader, ok := c.Accounts.(*memory.AccountReader); ok {
			reader.Register(viewer, time.Now().AddDate(0, 0, -ageDays), admin)
		}
	}

	result, err := c.QueryBus.Ask(cmd.Context(), queries.GetDisclosureQuery{
		GenomeID: id,
		ViewerID: viewer,
		Tier:     tier,
	})
	if err != nil {
		exitErr("disclose", err)
	}

	b, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(b))
}
