package main

import (
	"fmt"
	"strconv"

	"github.com/nutriplan/backend/internal/units"
	"github.com/spf13/cobra"
)

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "convert VALUE FROM TO",
		Short:   "Convert between kg/lb, cm/in and ml/us_cup/jp_cup",
		Example: "  nutriplan convert 176 lb kg\n  nutriplan convert 2 us_cup ml",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[0], err)
			}
			from, err := units.ParseUnit(args[1])
			if err != nil {
				return err
			}
			to, err := units.ParseUnit(args[2])
			if err != nil {
				return err
			}
			result, err := units.Convert(value, from, to)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s %s\n",
				strconv.FormatFloat(value, 'f', -1, 64), from,
				strconv.FormatFloat(result, 'f', -1, 64), to)
			return nil
		},
	}
}
