package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/noah-isme/kmq-gateway/pkg/drdp"
)

func newDecodeCommand() *cobra.Command {
	var listMeasures bool
	cmd := &cobra.Command{
		Use:   "decode [score...]",
		Short: "Decode DRDP scores into level descriptions",
		Example: `  kmq-gateway decode 5.5 99 3.25
  kmq-gateway decode --measures`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listMeasures {
				for _, m := range drdp.Measures {
					d, _ := drdp.DomainOf(m)
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", m, d.Name)
				}
				return nil
			}
			if len(args) == 0 {
				return fmt.Errorf("at least one score is required")
			}
			for _, arg := range args {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("invalid score %q: %w", arg, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", arg, drdp.Level(v))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&listMeasures, "measures", false, "list the measure columns with their domain")
	return cmd
}
