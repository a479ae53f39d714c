package mathsnake

// Board holds the entities on the grid: the snake (head first) and the
// food tiles.
type Board struct {
	Geo   Geometry
	Snake []Cell
	Food  []FoodItem
}

// SnakeAt reports whether any snake segment occupies c.
func (b *Board) SnakeAt(c Cell) bool {
	for _, s := range b.Snake {
		if s == c {
			return true
		}
	}
	return false
}

// FoodIndex returns the index of the tile at c, or -1.
func (b *Board) FoodIndex(c Cell) int {
	for i, f := range b.Food {
		if f.Cell == c {
			return i
		}
	}
	return -1
}

// Occupied reports whether c holds a snake segment or a tile.
func (b *Board) Occupied(c Cell) bool {
	return b.SnakeAt(c) || b.FoodIndex(c) >= 0
}

// ResetSnake places a three-cell snake at the board centre, body to the left.
func (b *Board) ResetSnake() {
	head := b.Geo.Center()
	b.Snake = []Cell{
		head,
		{X: head.X - 1, Y: head.Y},
		{X: head.X - 2, Y: head.Y},
	}
}

// DropFoodUnderSnake removes every tile that a snake segment covers.
func (b *Board) DropFoodUnderSnake() {
	kept := b.Food[:0]
	for _, f := range b.Food {
		if !b.SnakeAt(f.Cell) {
			kept = append(kept, f)
		}
	}
	b.Food = kept
}
