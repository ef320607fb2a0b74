package cli

import (
	"drinkshop/handling"
	"drinkshop/lib"
	"drinkshop/services"
	"drinkshop/structs"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func receiptCmd(sm *services.ServiceManager) *cobra.Command {
	var drinks []string
	var file string
	var asJSON bool

	c := &cobra.Command{
		Use:   "receipt",
		Short: "Price an order and print its receipt",
		Example: `  drinkshop receipt --drink "hill fog:medium:lemon" --drink "Mr. Salt:large:cherry"
  drinkshop receipt --file order.json --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := buildOrderRequest(cmd.InOrStdin(), file, drinks)
			if err != nil {
				return err
			}

			order, err := sm.OrderService.CreateOrderFromRequest(req)
			if err != nil {
				return handling.HandleError(err, "create order", sm.Logger)
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), sm.OrderService.Summarize(order))
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), order.Receipt())
			return err
		},
	}

	c.Flags().StringArrayVarP(&drinks, "drink", "d", nil, `Drink as base:size[:flavor,flavor] (repeatable)`)
	c.Flags().StringVarP(&file, "file", "f", "", `JSON order file, or "-" for stdin`)
	c.Flags().BoolVar(&asJSON, "json", false, "Print the order summary as JSON")
	return c
}

// buildOrderRequest merges drinks from the order file with drinks given on the command line.
// File drinks come first.
func buildOrderRequest(stdin io.Reader, file string, specs []string) (*structs.OrderRequest, error) {
	req := &structs.OrderRequest{}

	if file != "" {
		fromFile, err := readOrderFile(stdin, file)
		if err != nil {
			return nil, err
		}
		req.Drinks = append(req.Drinks, fromFile.Drinks...)
	}

	fromFlags, err := handling.ParseDrinkSpecs(specs)
	if err != nil {
		return nil, err
	}
	req.Drinks = append(req.Drinks, fromFlags.Drinks...)

	return req, nil
}

func readOrderFile(stdin io.Reader, file string) (*structs.OrderRequest, error) {
	r := stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("open order file: %w", err)
		}
		defer f.Close()
		r = f
	}

	req, err := lib.DecodeAndValidate[structs.OrderRequest](r)
	if err != nil {
		return nil, fmt.Errorf("read order file %s: %w", file, err)
	}
	return req, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
