package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var unitsCmd = &cobra.Command{
	Use:   "units [category]",
	Short: "List the units of a category",
	Long: `Lists the units of a category in display order with their symbols.
Linear categories also show each unit's factor relative to the base unit.`,
	Args: cobra.ExactArgs(1),
	RunE: runUnits,
}

func init() {
	rootCmd.AddCommand(unitsCmd)
}

func runUnits(cmd *cobra.Command, args []string) error {
	c, err := conversionService.Category(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to list units: %w", err)
	}

	for _, u := range c.Units {
		if u.Factor == 0 {
			cmd.Printf("%-14s %s\n", u.Name, u.Symbol)
			continue
		}
		cmd.Printf("%-14s %-4s %g\n", u.Name, u.Symbol, u.Factor)
	}
	return nil
}
