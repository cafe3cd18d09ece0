package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_oll_solver"
	"github.com/SeamusWaldron/gocube_oll_solver/internal/storage"
)

var learnDepth int

var learnCmd = &cobra.Command{
	Use:   "learn",
	Short: "Search logged unknown patterns and register validated solutions",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := storage.Open(dbPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()

		solver := ollsolve.New(ollsolve.WithStore(db))

		unknowns, err := db.ListUnknownPatterns()
		if err != nil {
			return fmt.Errorf("failed to list unknown patterns: %w", err)
		}
		if len(unknowns) == 0 {
			fmt.Println("No unknown patterns logged.")
			return nil
		}

		learned := 0
		for i, up := range unknowns {
			p, perr := ollsolve.ParsePattern(up.Pattern)
			if perr != nil {
				fmt.Printf("  %s: skipped (%v)\n", up.Pattern, perr)
				continue
			}
			if solver.Classify(p) != ollsolve.ClassUnknown {
				continue
			}

			_, inverse, ok := ollsolve.ProducerBFS(p, learnDepth)
			if !ok {
				fmt.Printf("  %s: no producer within depth %d\n", p, learnDepth)
				continue
			}

			verified := false
			if sample, serr := ollsolve.ParseCubeState(up.SampleState); serr == nil {
				if _, aerr := sample.ApplyMoves(inverse); aerr == nil && sample.IsOLLComplete() {
					verified = true
				}
			}
			if !verified {
				fmt.Printf("  %s: candidate %q failed sample validation\n",
					p, ollsolve.FormatMoves(inverse))
				continue
			}

			solver.RegisterCase(ollsolve.OLLCase{
				ID:             2000 + i,
				Name:           "learned",
				Pattern:        p,
				Algorithm:      ollsolve.FormatMoves(inverse),
				Classification: ollsolve.ClassFinisher,
				Verified:       true,
			})
			learned++
			fmt.Printf("  %s: learned %q (seen %dx)\n",
				p, ollsolve.FormatMoves(inverse), up.Occurrences)
		}

		fmt.Printf("Registered %d of %d logged patterns.\n", learned, len(unknowns))
		return nil
	},
}

func init() {
	learnCmd.Flags().IntVar(&learnDepth, "depth", 6, "producer search depth")
	rootCmd.AddCommand(learnCmd)
}
