// Package mathsnake implements Math Snake: a snake that eats arithmetic
// tiles to drive a running value onto the level's target.
package mathsnake

import (
	"strconv"

	"github.com/vovakirdan/math-snake/internal/config"
	"github.com/vovakirdan/math-snake/internal/core"
)

// Rand is the random source used by the spawner and effects.
// *rand.Rand satisfies it; tests script draws with a fake.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Cell is a grid position, 0-indexed.
type Cell struct {
	X, Y int
}

// Add returns the neighbouring cell in direction d.
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}

// Direction is a unit step on the grid.
type Direction struct {
	DX, DY int
}

var (
	DirUp    = Direction{DX: 0, DY: -1}
	DirDown  = Direction{DX: 0, DY: 1}
	DirLeft  = Direction{DX: -1, DY: 0}
	DirRight = Direction{DX: 1, DY: 0}
)

// Opposite reports whether d and o cancel each other out.
func (d Direction) Opposite(o Direction) bool {
	return d.DX+o.DX == 0 && d.DY+o.DY == 0
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// DirectionFor maps a movement action to a direction.
func DirectionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return Direction{}, false
}

// Op is an arithmetic operator carried by a food tile.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

// Symbol returns the operator as shown on a tile.
func (o Op) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "×"
	case OpDiv:
		return "÷"
	default:
		return "?"
	}
}

// Apply returns value after the operation, clamped at zero.
// Division floors; its operand is always the fixed divisor 2.
func (o Op) Apply(value, operand int) int {
	switch o {
	case OpAdd:
		value += operand
	case OpSub:
		value -= operand
	case OpMul:
		value *= operand
	case OpDiv:
		if operand != 0 {
			value /= operand
		}
	}
	if value < 0 {
		return 0
	}
	return value
}

// Color returns the tile colour: green for growth, red for shrink.
func (o Op) Color() core.Color {
	if o == OpSub || o == OpDiv {
		return colorShrink
	}
	return colorGrow
}

var (
	colorGrow   = core.Hex("#10b981")
	colorShrink = core.Hex("#ef4444")
)

// OperatorsFor lists the operators unlocked at grade g.
func OperatorsFor(g config.Grade) []Op {
	ops := []Op{OpAdd, OpSub}
	if g.AllowsMultiply() {
		ops = append(ops, OpMul)
	}
	if g.AllowsDivide() {
		ops = append(ops, OpDiv)
	}
	return ops
}

// FoodItem is an operator tile on the board.
type FoodItem struct {
	Cell    Cell
	Op      Op
	Operand int
	Label   string
	Color   core.Color
}

// NewFood builds a tile with its derived label and colour.
func NewFood(c Cell, op Op, operand int) FoodItem {
	return FoodItem{
		Cell:    c,
		Op:      op,
		Operand: operand,
		Label:   op.Symbol() + strconv.Itoa(operand),
		Color:   op.Color(),
	}
}

// Phase is the lifecycle stage of a run.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseLevelComplete
	PhaseGameOver
	PhaseAllComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseLevelComplete:
		return "level_complete"
	case PhaseGameOver:
		return "game_over"
	case PhaseAllComplete:
		return "all_complete"
	default:
		return "unknown"
	}
}

// RunState is the scoreboard of a run. Value and LevelSteps reset per level.
type RunState struct {
	Grade      config.Grade
	Level      int
	MaxLevel   int
	Value      int
	Target     int
	Lives      int
	Score      int
	LevelSteps int
	Running    bool
	Phase      Phase
}

// EventKind identifies a domain event raised by the simulation.
type EventKind int

const (
	EventLevelStarted EventKind = iota
	EventAte
	EventDied
	EventGameOver
	EventLevelComplete
	EventAllComplete
)

func (k EventKind) String() string {
	switch k {
	case EventLevelStarted:
		return "level_started"
	case EventAte:
		return "ate"
	case EventDied:
		return "died"
	case EventGameOver:
		return "game_over"
	case EventLevelComplete:
		return "level_complete"
	case EventAllComplete:
		return "all_complete"
	default:
		return "unknown"
	}
}

// Event is a notification for the presentation layer.
type Event struct {
	Kind  EventKind
	Level int
	Food  FoodItem // set for EventAte
	Bonus int      // set for EventLevelComplete
}
