package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bomac1193/ophelian-os-sub001/application/queries"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a stored genome",
		Run:   runExport,
	}

	cmd.Flags().String("id", "", "Genome ID (required)")
	cmd.Flags().StringP("format", "f", "json", "Export format: json, markdown or system-prompt")
	cmd.Flags().String("style", "", "Prompt style for system-prompt exports: plain, oracular or ornate")

	cmd.MarkFlagRequired("id")

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	c, err := container(cmd)
	if err != nil {
		exitErr("init", err)
	}

	id, _ := cmd.Flags().GetString("id")
	format, _ := cmd.Flags().GetString("format")
	style, _ := cmd.Flags().GetString("style")

	result, err := c.QueryBus.Ask(cmd.Context(), queries.ExportGenomeQuery{
		GenomeID:    id,
		Format:      format,
		PromptStyle: style,
	})
	if err != nil {
		exitErr("export", err)
	}
	fmt.Println(result)
}
