package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/phrazzld/unitconv/internal/domain"
)

var (
	convertCategory string
	convertJSON     bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [value] [from] [to]",
	Short: "Convert a value between two units",
	Long: `Converts a value from one unit to another within a category.
When --category is omitted it is inferred from the units.
Put negative values after "--" so they are not read as flags.`,
	Args: cobra.ExactArgs(3),
	RunE: runConvert,
}

// conversionOutput is the --json form of a conversion.
type conversionOutput struct {
	Category  string  `json:"category"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Value     float64 `json:"value"`
	Result    float64 `json:"result"`
	Formatted string  `json:"formatted"`
}

func init() {
	convertCmd.Flags().StringVarP(&convertCategory, "category", "c", "", "category of the units (inferred when omitted)")
	convertCmd.Flags().BoolVar(&convertJSON, "json", false, "output the conversion as JSON")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	value, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid value %q: not a number", args[0])
	}
	from, to := args[1], args[2]

	ctx := context.Background()

	category := convertCategory
	if category == "" {
		category, err = conversionService.InferCategory(ctx, from, to)
		if err != nil {
			return fmt.Errorf("cannot infer category: %w", err)
		}
	}

	conv, err := conversionService.Convert(ctx, domain.ConversionRequest{
		Category: category,
		From:     from,
		To:       to,
		Value:    value,
	})
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	if convertJSON {
		data, err := json.MarshalIndent(conversionOutput{
			Category:  conv.Category,
			From:      conv.From.Name,
			To:        conv.To.Name,
			Value:     conv.Value,
			Result:    conv.Result,
			Formatted: conv.Formatted(),
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal conversion: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("%g %s = %s\n", conv.Value, conv.From.Name, conv.Formatted())
	return nil
}
