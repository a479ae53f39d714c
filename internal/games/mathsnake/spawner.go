package mathsnake

// Bias probabilities of the solvability heuristic.
const (
	biasChance = 0.6 // chance to steer the operator toward the target
	helpChance = 0.7 // within a steer, chance of + (below) or - (above)
)

// Operand ranges.
const (
	operandMax   = 9 // default operand is 1..operandMax
	multiplyMin  = 2
	multiplySpan = 3 // × operand is 2..4
	divisor      = 2
)

// Spawner places food tiles on free cells and picks operators that tend to
// keep the target reachable. It is a heuristic, not a solver.
type Spawner struct {
	rng      Rand
	attempts int
}

// NewSpawner returns a spawner making at most attempts placement tries per tile.
func NewSpawner(rng Rand, attempts int) *Spawner {
	if attempts <= 0 {
		attempts = 1
	}
	return &Spawner{rng: rng, attempts: attempts}
}

// Spawn adds one tile to b and reports whether it did. When no free cell is
// found within the attempt budget nothing is added.
func (sp *Spawner) Spawn(b *Board, st RunState) bool {
	cell, ok := sp.place(b)
	if !ok {
		return false
	}
	op, operand := sp.pick(st)
	b.Food = append(b.Food, NewFood(cell, op, operand))
	return true
}

// Replenish spawns tiles until b holds at least n of them, stopping early
// when a spawn is skipped. It returns the number of tiles added.
func (sp *Spawner) Replenish(b *Board, st RunState, n int) int {
	added := 0
	for len(b.Food) < n {
		if !sp.Spawn(b, st) {
			break
		}
		added++
	}
	return added
}

func (sp *Spawner) place(b *Board) (Cell, bool) {
	if b.Geo.Cols <= 0 || b.Geo.Rows <= 0 {
		return Cell{}, false
	}
	for range sp.attempts {
		c := Cell{X: sp.rng.Intn(b.Geo.Cols), Y: sp.rng.Intn(b.Geo.Rows)}
		if !b.Occupied(c) {
			return c, true
		}
	}
	return Cell{}, false
}

// pick draws the operator and operand. Draw order: uniform operator,
// default operand, bias draws, then the × operand.
func (sp *Spawner) pick(st RunState) (Op, int) {
	ops := OperatorsFor(st.Grade)
	op := ops[sp.rng.Intn(len(ops))]
	operand := sp.rng.Intn(operandMax) + 1

	switch {
	case st.Value == 0:
		// × and ÷ would leave zero stuck at zero.
		op = OpAdd
	case st.Value < st.Target && sp.rng.Float64() < biasChance:
		op = OpAdd
		if sp.rng.Float64() >= helpChance && st.Grade.AllowsMultiply() {
			op = OpMul
		}
	case st.Value > st.Target && sp.rng.Float64() < biasChance:
		op = OpSub
		if sp.rng.Float64() >= helpChance && st.Grade.AllowsDivide() {
			op = OpDiv
		}
	}

	switch op {
	case OpMul:
		operand = sp.rng.Intn(multiplySpan) + multiplyMin
	case OpDiv:
		operand = divisor
	}
	return op, operand
}
