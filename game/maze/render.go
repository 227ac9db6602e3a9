package maze

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// Render draws the board followed by a status line. Colours are only
// emitted when w is a terminal that supports them.
func Render(w io.Writer, s *State) error {
	out := termenv.NewOutput(w)
	wall := out.Color("4")
	food := out.Color("3")
	ghost := out.Color("1")
	agent := out.Color("11")

	var b strings.Builder
	l := s.layout
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			p := Position{x, y}
			switch {
			case p == s.pos:
				b.WriteString(out.String(string(agentCell)).Foreground(agent).Bold().String())
			case l.IsWall(p):
				b.WriteString(out.String(string(wallCell)).Foreground(wall).String())
			case l.IsGhost(p):
				b.WriteString(out.String(string(ghostCell)).Foreground(ghost).String())
			case s.HasFood(p):
				b.WriteString(out.String(string(foodCell)).Foreground(food).String())
			default:
				b.WriteByte(emptyCell)
			}
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "score=%d moves=%d food=%d%s\n", s.score, s.moves, s.foodLeft, status(s))

	_, err := io.WriteString(w, b.String())
	return err
}

func status(s *State) string {
	switch {
	case s.won:
		return " WIN"
	case s.lost:
		return " LOSE"
	default:
		return ""
	}
}
