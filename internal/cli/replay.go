package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_oll_solver"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	moveStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

var stickerStyles = map[ollsolve.Color]lipgloss.Style{
	ollsolve.White:  lipgloss.NewStyle().Background(lipgloss.Color("255")),
	ollsolve.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("226")),
	ollsolve.Green:  lipgloss.NewStyle().Background(lipgloss.Color("40")),
	ollsolve.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("21")),
	ollsolve.Red:    lipgloss.NewStyle().Background(lipgloss.Color("196")),
	ollsolve.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")),
}

var replayScramble string

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Step through a solve move by move",
	RunE: func(cmd *cobra.Command, args []string) error {
		cube, scramble, err := buildCube("", replayScramble)
		if err != nil {
			return fmt.Errorf("failed to build cube: %w", err)
		}

		solver, closeStore := openSolver()
		res := solver.SolveOLL(cube)
		closeStore()

		m, err := newReplayModel(cube, scramble, res)
		if err != nil {
			return err
		}
		_, err = tea.NewProgram(m).Run()
		return err
	},
}

func init() {
	replayCmd.Flags().StringVar(&replayScramble, "scramble", "random", "scramble moves, or \"random\"")
	rootCmd.AddCommand(replayCmd)
}

// replayStep is one rendered frame: the state after a move, with the
// move's notation and the attempt source that produced it.
type replayStep struct {
	state  *ollsolve.Cube
	move   string
	source string
}

type replayModel struct {
	scramble string
	result   ollsolve.Result
	steps    []replayStep
	idx      int
}

// newReplayModel precomputes every intermediate state from the trace,
// skipping reverted attempts.
func newReplayModel(start *ollsolve.Cube, scramble []ollsolve.Move, res ollsolve.Result) (replayModel, error) {
	steps := []replayStep{{state: start.Clone(), move: "start", source: "scramble"}}
	cur := start.Clone()
	for _, entry := range res.Trace {
		if entry.Reverted {
			continue
		}
		moves, _, err := ollsolve.ParseMoves(entry.Algorithm)
		if err != nil {
			return replayModel{}, fmt.Errorf("failed to parse trace algorithm: %w", err)
		}
		for _, mv := range moves {
			if err := cur.ApplyMove(mv); err != nil {
				return replayModel{}, err
			}
			steps = append(steps, replayStep{
				state:  cur.Clone(),
				move:   mv.Notation(),
				source: entry.Source,
			})
		}
	}
	return replayModel{
		scramble: ollsolve.FormatMoves(scramble),
		result:   res,
		steps:    steps,
	}, nil
}

func (m replayModel) Init() tea.Cmd {
	return nil
}

func (m replayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "right", "l", " ":
		if m.idx < len(m.steps)-1 {
			m.idx++
		}
	case "left", "h":
		if m.idx > 0 {
			m.idx--
		}
	case "r":
		m.idx = 0
	}
	return m, nil
}

func (m replayModel) View() string {
	step := m.steps[m.idx]

	var b strings.Builder
	b.WriteString(titleStyle.Render("OLL Replay"))
	b.WriteString("\n")
	if m.scramble != "" {
		b.WriteString(statusStyle.Render("scramble: " + m.scramble))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(renderCube(step.state))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s %s %s\n",
		statusStyle.Render(fmt.Sprintf("move %d/%d", m.idx, len(m.steps)-1)),
		moveStyle.Render(step.move),
		statusStyle.Render("("+step.source+")")))

	if m.idx == len(m.steps)-1 {
		if m.result.IsOLLComplete {
			b.WriteString(moveStyle.Render("last layer oriented"))
		} else {
			b.WriteString(errorStyle.Render("unsolved: " + m.result.Reason))
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("←/→ step · r reset · q quit"))
	b.WriteString("\n")
	return b.String()
}

// renderCube draws the cube net with colored sticker blocks.
func renderCube(c *ollsolve.Cube) string {
	var b strings.Builder
	sticker := func(face ollsolve.CubeFace, i int) string {
		return stickerStyles[c.Facelets[face][i]].Render("  ")
	}

	for row := 0; row < 3; row++ {
		b.WriteString("       ")
		for col := 0; col < 3; col++ {
			b.WriteString(sticker(ollsolve.CubeFaceU, row*3+col))
		}
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		for _, face := range []ollsolve.CubeFace{
			ollsolve.CubeFaceL, ollsolve.CubeFaceF, ollsolve.CubeFaceR, ollsolve.CubeFaceB,
		} {
			for col := 0; col < 3; col++ {
				b.WriteString(sticker(face, row*3+col))
			}
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		b.WriteString("       ")
		for col := 0; col < 3; col++ {
			b.WriteString(sticker(ollsolve.CubeFaceD, row*3+col))
		}
		b.WriteString("\n")
	}
	return b.String()
}
