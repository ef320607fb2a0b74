package cli

import (
	"drinkshop/services"
	"drinkshop/structs"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func menuCmd(sm *services.ServiceManager) *cobra.Command {
	var asJSON bool

	c := &cobra.Command{
		Use:   "menu",
		Short: "List bases, sizes and flavors with their prices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			menu := sm.OrderService.Menu()
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), menu)
			}
			printMenu(cmd.OutOrStdout(), menu)
			return nil
		},
	}

	c.Flags().BoolVar(&asJSON, "json", false, "Print the menu as JSON")
	return c
}

func printMenu(w io.Writer, menu *structs.Menu) {
	fmt.Fprintln(w, "Bases:")
	for _, b := range menu.Bases {
		fmt.Fprintf(w, "  - %s\n", b)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Sizes:")
	for _, s := range menu.Sizes {
		fmt.Fprintf(w, "  - %-6s $%s\n", s.Size, s.Price)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Flavors ($%s each):\n", menu.FlavorPrice)
	for _, f := range menu.Flavors {
		fmt.Fprintf(w, "  - %s\n", f)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Tax rate: %s\n", menu.TaxRate)
}
