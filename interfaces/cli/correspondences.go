package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bomac1193/ophelian-os-sub001/domain/core/valueobjects"
	"github.com/bomac1193/ophelian-os-sub001/domain/correspondence"
)

func init() {
	cmd := &cobra.Command{
		Use:   "correspondences",
		Short: "Show the orisha and sephirot correspondence tables",
		Run:   runCorrespondences,
	}

	cmd.Flags().Bool("verify", false, "Verify table integrity and exit")

	RootCmd.AddCommand(cmd)
}

func runCorrespondences(cmd *cobra.Command, args []string) {
	verify, _ := cmd.Flags().GetBool("verify")
	if verify {
		if err := correspondence.Verify(); err != nil {
			exitErr("verify", err)
		}
		fmt.Println("correspondence tables verified")
		return
	}

	for _, orisha := range valueobjects.AllOrishas() {
		rec, err := correspondence.GetOrisha(orisha)
		if err != nil {
			exitErr("lookup", err)
		}
		line := fmt.Sprintf("%s %-12s energy %+0.1f (%s)", rec.Glyph, orisha, rec.Energy, rec.Class)
		if sephira, ok := correspondence.SephiraForOrisha(orisha); ok {
			srec, err := correspondence.GetSephira(sephira)
			if err != nil {
				exitErr("lookup", err)
			}
			line += fmt.Sprintf("  ↔  %s (%s, pillar of %s)", sephira, srec.Title, srec.Pillar)
		} else {
			line += "  ↔  (no sephira)"
		}
		fmt.Println(line)
	}

	fmt.Println()
	for _, sephira := range valueobjects.AllSephirot() {
		if _, ok := correspondence.OrishaForSephira(sephira); !ok {
			fmt.Printf("%s has no orisha counterpart\n", sephira)
		}
	}
}
