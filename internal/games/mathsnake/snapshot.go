package mathsnake

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick       uint64
	Phase      Phase
	Level      int
	Value      int
	Target     int
	Lives      int
	Score      int
	LevelSteps int
	SnakeLen   int
	Head       Cell
	Dir        Direction
	Food       []FoodItem
	Particles  int
	Paused     bool
	TooSmall   bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.sim == nil {
		return Snapshot{}
	}
	st := g.sim.State()
	snap := Snapshot{
		Tick:       g.tick,
		Phase:      st.Phase,
		Level:      st.Level,
		Value:      st.Value,
		Target:     st.Target,
		Lives:      st.Lives,
		Score:      st.Score,
		LevelSteps: st.LevelSteps,
		SnakeLen:   len(g.sim.Snake()),
		Dir:        g.sim.Direction(),
		Food:       append([]FoodItem(nil), g.sim.Food()...),
		Particles:  len(g.sim.Effects().Particles()),
		Paused:     g.paused,
		TooSmall:   g.tooSmall,
	}
	if len(g.sim.Snake()) > 0 {
		snap.Head = g.sim.Snake()[0]
	}
	return snap
}
