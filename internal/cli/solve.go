package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_oll_solver"
)

var (
	solveScramble string
	solveState    string
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve the OLL of a scrambled cube",
	RunE: func(cmd *cobra.Command, args []string) error {
		cube, scramble, err := buildCube(solveState, solveScramble)
		if err != nil {
			return fmt.Errorf("failed to build cube: %w", err)
		}

		solver, closeStore := openSolver()
		defer closeStore()

		if len(scramble) > 0 {
			fmt.Println("Scramble:", ollsolve.FormatMoves(scramble))
		}
		fmt.Println("Start pattern:", cube.OLLPattern())

		res := solver.SolveOLL(cube)

		for _, step := range res.Trace {
			status := ""
			if step.Reverted {
				status = "  (reverted)"
			}
			fmt.Printf("  attempt %d [%s] %s -> %s: %s%s\n",
				step.Attempt, step.Source, step.PrePattern, step.PostPattern,
				step.Algorithm, status)
		}

		if res.IsOLLComplete {
			fmt.Printf("Oriented in %d moves over %d attempts.\n", res.TotalMoves, res.Attempts)
		} else {
			fmt.Printf("Failed (%s): best score %d/8, final pattern %s.\n",
				res.Reason, res.BestScore, res.FinalPattern)
		}
		fmt.Println()
		fmt.Print(res.Final)
		return nil
	},
}

func init() {
	solveCmd.Flags().StringVar(&solveScramble, "scramble", "", "scramble moves, or \"random\"")
	solveCmd.Flags().StringVar(&solveState, "state", "", "54-character cube state (U D F B R L)")
	rootCmd.AddCommand(solveCmd)
}
