// Package mini implements the flux-mini command: job submission to the
// resource manager in two modes, fire-and-return (submit) and
// fire-and-attach (run).
package mini

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/garrettbslone/flux-core/pkg/config"
	"github.com/garrettbslone/flux-core/pkg/version"
)

var (
	nodeConfig *config.ClientConfig
	configPath string
	nodeName   string
)

var rootCmd = &cobra.Command{
	Use:           "flux-mini",
	Short:         "Minimal job submission client for the resource manager",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}

		var err error
		nodeConfig, err = config.LoadClientConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load client config: %w", err)
		}
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to client configuration file (searches common locations if not specified)")
	rootCmd.PersistentFlags().StringVar(&nodeName, "node", "default",
		"Node name from configuration file")

	rootCmd.AddCommand(newSubmitCmd())
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newVersionCmd())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show build information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetBuildInfo().String())
		},
	}
}
