// Package cli implements the genomectl CLI commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bomac1193/ophelian-os-sub001/infrastructure/config"
	"github.com/bomac1193/ophelian-os-sub001/infrastructure/di"
)

var (
	storePath  string
	policyPath string
	ownerFlag  string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "genomectl",
	Short: "Deterministic character genomes from orisha and kabbalistic correspondences",
	Long: "genomectl generates, stores and projects character genomes. The same seed\n" +
		"always yields the same character; lore and prompts are synthesized from the\n" +
		"stored record.",
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&storePath, "store", "", "Genome store directory (default: $GENOME_STORE_PATH, or in-memory)")
	RootCmd.PersistentFlags().StringVar(&policyPath, "policy", "", "Policy YAML with weights and gate thresholds (default: $GENOME_POLICY_PATH)")
	RootCmd.PersistentFlags().StringVarP(&ownerFlag, "owner", "o", "", "Owner account for store operations (default: $GENOME_OWNER or \"local\")")
}

// container builds the dependency container honoring flag overrides.
func container(cmd *cobra.Command) (*di.Container, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if storePath != "" {
		cfg.StorePath = storePath
	}
	if policyPath != "" {
		cfg.PolicyPath = policyPath
	}
	if ownerFlag != "" {
		cfg.DefaultOwner = ownerFlag
	}
	return di.InitializeContainer(cmd.Context(), cfg)
}

func owner(c *di.Container) string {
	if ownerFlag != "" {
		return ownerFlag
	}
	return c.Config.DefaultOwner
}

// policyWeights returns the head-orisha weighting table from the policy
// file, or nil when no policy is configured.
func policyWeights(c *di.Container) map[string]float64 {
	policy, err := config.LoadPolicy(c.Config.PolicyPath)
	if err != nil || policy == nil {
		return nil
	}
	return policy.Weights
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
