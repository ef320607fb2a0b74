package handling

import (
	"drinkshop/lib"
	"drinkshop/structs"
	"fmt"
	"strings"
)

// ParseDrinkSpec parses a "base:size[:flavor,flavor]" command line value into a drink request
func ParseDrinkSpec(spec string) (*structs.DrinkRequest, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, fmt.Errorf("%w: empty drink spec", lib.ErrInvalidArgument)
	}

	parts := strings.SplitN(spec, ":", 3)
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: drink spec %q must look like base:size[:flavor,flavor]", lib.ErrInvalidArgument, spec)
	}

	req := &structs.DrinkRequest{
		Base: strings.TrimSpace(parts[0]),
		Size: strings.TrimSpace(parts[1]),
	}

	if len(parts) == 3 {
		req.Flavors = splitAndTrim(parts[2])
	}

	if err := lib.ValidateStruct(req); err != nil {
		return nil, err
	}

	return req, nil
}

// ParseDrinkSpecs parses every value, reporting the position of the first bad one
func ParseDrinkSpecs(specs []string) (*structs.OrderRequest, error) {
	req := &structs.OrderRequest{Drinks: make([]structs.DrinkRequest, 0, len(specs))}
	for i, spec := range specs {
		drink, err := ParseDrinkSpec(spec)
		if err != nil {
			return nil, fmt.Errorf("drink %d: %w", i+1, err)
		}
		req.Drinks = append(req.Drinks, *drink)
	}
	return req, nil
}

// splitAndTrim splits a comma-separated string, trims whitespace and drops empty parts
func splitAndTrim(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
