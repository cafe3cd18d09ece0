// Package cli implements the ollsolve command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_oll_solver"
	"github.com/SeamusWaldron/gocube_oll_solver/internal/storage"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "ollsolve",
	Short: "Orient the last layer of a 3x3 cube",
	Long: `ollsolve computes move sequences that orient the last layer of a
3x3x3 cube, learning new algorithms across runs via a local database.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "ollsolve.db", "path to the learning database")
}

// openSolver builds a solver backed by the database. If the database
// cannot be opened the solver runs without persistence.
func openSolver() (*ollsolve.Solver, func()) {
	db, err := storage.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: running without persistence: %v\n", err)
		return ollsolve.New(), func() {}
	}
	return ollsolve.New(ollsolve.WithStore(db)), func() { db.Close() }
}

// buildCube constructs the starting cube from the command flags:
// an explicit 54-character state, a scramble sequence, or "random".
func buildCube(state, scramble string) (*ollsolve.Cube, []ollsolve.Move, error) {
	if state != "" {
		c, err := ollsolve.ParseCubeState(state)
		return c, nil, err
	}
	c := ollsolve.NewCube()
	if scramble == "" {
		return c, nil, nil
	}
	var moves []ollsolve.Move
	if scramble == "random" {
		moves = ollsolve.RandomScramble(20)
	} else {
		var warnings []string
		var err error
		moves, warnings, err = ollsolve.ParseMoves(scramble)
		for _, w := range warnings {
			fmt.Fprintln(os.Stderr, "warning:", w)
		}
		if err != nil {
			return nil, nil, err
		}
	}
	if _, err := c.ApplyMoves(moves); err != nil {
		return nil, nil, err
	}
	return c, moves, nil
}
