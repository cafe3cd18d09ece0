package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_oll_solver"
)

var casesCmd = &cobra.Command{
	Use:   "cases [pattern]",
	Short: "List known OLL cases, or classify a pattern",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		solver, closeStore := openSolver()
		defer closeStore()

		if len(args) == 1 {
			p, err := ollsolve.ParsePattern(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s (canonical %s): %s\n", p, p.Canonical(), solver.Classify(p))
			return nil
		}

		fmt.Printf("%-5s %-12s %-10s %-10s %s\n", "ID", "NAME", "PATTERN", "CLASS", "ALGORITHM")
		for _, c := range solver.Registry().Cases() {
			if c.Disabled {
				continue
			}
			fmt.Printf("%-5d %-12s %-10s %-10s %s\n",
				c.ID, c.Name, c.Pattern, c.Classification, c.Algorithm)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(casesCmd)
}
