package snake

import "github.com/vovakirdan/termsnake/internal/core"

// respawnFood places food on a uniformly chosen interior cell not occupied
// by the snake. The candidate list is rebuilt on every call, which costs
// O(grid area) per food eaten.
func (g *Game) respawnFood() error {
	occupied := make(map[core.Position]bool, len(g.snake))
	for _, seg := range g.snake {
		occupied[seg] = true
	}

	var free []core.Position
	for _, p := range g.grid.InteriorCells() {
		if !occupied[p] {
			free = append(free, p)
		}
	}

	if len(free) == 0 {
		g.hasFood = false
		g.food = core.Position{X: -1, Y: -1}
		return ErrBoardFull
	}

	g.food = free[g.rng.Intn(len(free))]
	g.hasFood = true
	return nil
}
