package manager

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/types"

	"golang.org/x/exp/rand"
)

// maxSamples bounds rejection sampling before falling back to a full scan.
const maxSamples = 64

type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// GenerateFood picks a uniformly random free interior cell. It samples
// interior cells until one is free; once maxSamples draws have been rejected
// it scans the board instead. ok is false when no free cell exists.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (food types.Point, ok bool) {
	if fm.grid.InteriorCells() == 0 {
		return types.Point{}, false
	}

	for i := 0; i < maxSamples; i++ {
		food = types.Point{
			X: 1 + fm.rng.Intn(fm.grid.Width-2),
			Y: 1 + fm.rng.Intn(fm.grid.Height-2),
		}
		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food, true
		}
	}

	free := fm.freeCells(snake)
	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}

func (fm *FoodManager) freeCells(snake *entity.Snake) []types.Point {
	var free []types.Point
	for y := 1; y < fm.grid.Height-1; y++ {
		for x := 1; x < fm.grid.Width-1; x++ {
			p := types.Point{X: x, Y: y}
			if fm.collisionMgr.ValidateSpawnPosition(p, snake) {
				free = append(free, p)
			}
		}
	}
	return free
}
