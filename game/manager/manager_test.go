package manager

import (
	"testing"

	"snake-arcade/game/entity"
	"snake-arcade/game/types"

	"golang.org/x/exp/rand"
)

func TestCollisionCheck(t *testing.T) {
	grid := types.Grid{Width: 60, Height: 32}
	cm := NewCollisionManager(grid)
	snake := entity.NewSnake([]types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}})

	tests := []struct {
		name string
		pos  types.Point
		want CollisionType
	}{
		{"left wall", types.Point{X: 0, Y: 5}, WallCollision},
		{"right wall", types.Point{X: 59, Y: 5}, WallCollision},
		{"top wall", types.Point{X: 5, Y: 0}, WallCollision},
		{"bottom wall", types.Point{X: 5, Y: 31}, WallCollision},
		{"body", types.Point{X: 4, Y: 5}, SelfCollision},
		{"tail", types.Point{X: 3, Y: 5}, SelfCollision},
		{"free", types.Point{X: 6, Y: 5}, NoCollision},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cm.Check(tt.pos, snake); got != tt.want {
				t.Errorf("Check(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestGenerateFoodAvoidsWallsAndSnake(t *testing.T) {
	grid := types.Grid{Width: 60, Height: 32}
	cm := NewCollisionManager(grid)
	fm := NewFoodManager(grid, cm, rand.New(rand.NewSource(1)))
	snake := entity.NewSnake([]types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}})

	for i := 0; i < 2000; i++ {
		food, ok := fm.GenerateFood(snake)
		if !ok {
			t.Fatal("expected food on an almost empty board")
		}
		if !grid.IsInterior(food) {
			t.Fatalf("food %v outside the interior", food)
		}
		if snake.Occupies(food) {
			t.Fatalf("food %v placed on the snake", food)
		}
	}
}

// fillBoard returns a snake covering every interior cell except the given ones.
func fillBoard(grid types.Grid, except ...types.Point) *entity.Snake {
	skip := make(map[types.Point]bool)
	for _, p := range except {
		skip[p] = true
	}
	var body []types.Point
	for y := 1; y < grid.Height-1; y++ {
		for x := 1; x < grid.Width-1; x++ {
			p := types.Point{X: x, Y: y}
			if !skip[p] {
				body = append(body, p)
			}
		}
	}
	return entity.NewSnake(body)
}

func TestGenerateFoodFallsBackToScan(t *testing.T) {
	grid := types.Grid{Width: 12, Height: 10}
	cm := NewCollisionManager(grid)
	fm := NewFoodManager(grid, cm, rand.New(rand.NewSource(7)))
	last := types.Point{X: 7, Y: 4}
	snake := fillBoard(grid, last)

	for i := 0; i < 10; i++ {
		food, ok := fm.GenerateFood(snake)
		if !ok {
			t.Fatal("expected the single free cell to be found")
		}
		if food != last {
			t.Fatalf("expected %v, got %v", last, food)
		}
	}
}

func TestGenerateFoodBoardFull(t *testing.T) {
	grid := types.Grid{Width: 8, Height: 6}
	cm := NewCollisionManager(grid)
	fm := NewFoodManager(grid, cm, rand.New(rand.NewSource(3)))

	if _, ok := fm.GenerateFood(fillBoard(grid)); ok {
		t.Error("expected no food on a full board")
	}
}
