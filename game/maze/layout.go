package maze

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	wallCell  = '%'
	foodCell  = '.'
	agentCell = 'P'
	ghostCell = 'G'
	emptyCell = ' '
)

type Position struct {
	X, Y int
}

func (p Position) manhattan(o Position) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Layout is the static part of a maze: walls, ghosts, initial food and the
// agent's start. It is shared by every state of a game and never mutated.
type Layout struct {
	Name   string
	Width  int
	Height int
	Start  Position
	walls  []bool
	ghosts []bool
	food   []bool
}

func (l *Layout) index(p Position) int {
	return p.Y*l.Width + p.X
}

func (l *Layout) inBounds(p Position) bool {
	return p.X >= 0 && p.X < l.Width && p.Y >= 0 && p.Y < l.Height
}

func (l *Layout) IsWall(p Position) bool {
	return !l.inBounds(p) || l.walls[l.index(p)]
}

func (l *Layout) IsGhost(p Position) bool {
	return l.inBounds(p) && l.ghosts[l.index(p)]
}

func (l *Layout) FoodCount() int {
	count := 0
	for _, f := range l.food {
		if f {
			count++
		}
	}
	return count
}

// ParseLayout reads a rectangular text grid: '%' wall, '.' food, 'P' agent,
// 'G' ghost, ' ' empty. Trailing blank lines are ignored.
func ParseLayout(name, text string) (*Layout, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("layout %s: empty", name)
	}

	width := len(lines[0])
	l := &Layout{
		Name:   name,
		Width:  width,
		Height: len(lines),
		walls:  make([]bool, width*len(lines)),
		ghosts: make([]bool, width*len(lines)),
		food:   make([]bool, width*len(lines)),
	}

	agents := 0
	for y, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("layout %s: row %d has width %d, expected %d", name, y, len(line), width)
		}
		for x, cell := range line {
			i := l.index(Position{x, y})
			switch cell {
			case wallCell:
				l.walls[i] = true
			case foodCell:
				l.food[i] = true
			case ghostCell:
				l.ghosts[i] = true
			case agentCell:
				l.Start = Position{x, y}
				agents++
			case emptyCell:
			default:
				return nil, fmt.Errorf("layout %s: unknown cell %q at (%d, %d)", name, cell, x, y)
			}
		}
	}

	if agents != 1 {
		return nil, fmt.Errorf("layout %s: expected exactly one agent, found %d", name, agents)
	}
	if l.FoodCount() == 0 {
		return nil, fmt.Errorf("layout %s: no food", name)
	}
	return l, nil
}

// LoadLayout parses a layout file, named after its base name without extension.
func LoadLayout(path string) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open layout: %w", err)
	}
	defer f.Close()

	var builder strings.Builder
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		builder.WriteString(scanner.Text())
		builder.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return ParseLayout(name, builder.String())
}

var builtinLayouts = map[string]string{
	"tiny": `
%%%%%%%
%P . .%
%%%%%%%`,
	"small": `
%%%%%%%%%%
%P.  .  G%
% %%.%%  %
%.    . .%
%%%%%%%%%%`,
	"trap": `
%%%%%%%
%.G  P%
% %%% %
%.    %
%%%%%%%`,
	"medium": `
%%%%%%%%%%%%%%%%%%%%
%P   .   %    .   .%
% %%%% % % %%%% %% %
% %  . %   %  . %  %
% % %%%%%%%%% %%% %%
%.    G        .  .%
%%%% %%% %%%% %%% %%
%.   %     .   %  G%
% %% % %%%%% % %%% %
%.       .      .  %
%%%%%%%%%%%%%%%%%%%%`,
}

// BuiltinLayout returns a fresh copy of a named built-in layout.
func BuiltinLayout(name string) (*Layout, error) {
	text, ok := builtinLayouts[name]
	if !ok {
		return nil, fmt.Errorf("unknown layout %q", name)
	}
	l, err := ParseLayout(name, text)
	if err != nil {
		panic(fmt.Sprintf("invalid built-in layout: %v", err))
	}
	return l, nil
}

func LayoutNames() []string {
	names := make([]string, 0, len(builtinLayouts))
	for name := range builtinLayouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveLayout accepts either a built-in layout name or a path to a layout file.
func ResolveLayout(nameOrPath string) (*Layout, error) {
	if _, ok := builtinLayouts[nameOrPath]; ok {
		return BuiltinLayout(nameOrPath)
	}
	if _, err := os.Stat(nameOrPath); err == nil {
		return LoadLayout(nameOrPath)
	}
	return nil, fmt.Errorf("unknown layout %q: not a built-in layout or a readable file", nameOrPath)
}
