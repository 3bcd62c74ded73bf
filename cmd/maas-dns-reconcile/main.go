package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/JennyJYLiu/maas/pkg/config"
	"github.com/JennyJYLiu/maas/pkg/observability/logging"
	"github.com/JennyJYLiu/maas/pkg/reconcile"
)

const defaultConfigPath = "/etc/maas/dns-reconcile.yaml"

func main() {
	rootCmd := &cobra.Command{
		Use:           "maas-dns-reconcile",
		Short:         "Reconcile MAAS DNS configuration and permissions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("config", defaultConfigPath, "Deployment overrides (YAML)")
	rootCmd.PersistentFlags().Bool("debug", false, "Verbose logging")

	rootCmd.AddCommand(newHookCmd(), newPlanCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newHookCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hook <action> [previous-version]",
		Short: "Run the post-install reconciliation for a maintainer-script event",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runHook,
	}
}

func runHook(cmd *cobra.Command, args []string) error {
	debug, _ := cmd.Flags().GetBool("debug")
	logging.Init(debug)
	defer zap.S().Sync() //nolint:errcheck

	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	action, previous := splitEvent(args)
	runner := reconcile.NewRunner(cfg, reconcile.ExecCommander{})
	return runner.Run(cmd.Context(), action, previous)
}

func splitEvent(args []string) (action, previous string) {
	action = args[0]
	if len(args) == 2 {
		previous = args[1]
	}
	return action, previous
}
