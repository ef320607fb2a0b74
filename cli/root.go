package cli

import (
	"drinkshop/services"
	"os"

	"github.com/spf13/cobra"
)

func Execute(sm *services.ServiceManager) {
	cmd := newRootCmd(sm)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(sm *services.ServiceManager) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "drinkshop",
		Short:        "Build drink orders and print their receipts",
		SilenceUsage: true,
	}

	cmd.AddCommand(receiptCmd(sm))
	cmd.AddCommand(menuCmd(sm))
	return cmd
}
