package entity

import (
	"testing"

	"snake-arcade/game/types"
)

func TestSnakeMoveAndRemoveTail(t *testing.T) {
	s := NewSnake([]types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}})

	s.Move(types.Point{X: 6, Y: 5})
	if s.Len() != 4 {
		t.Fatalf("expected length 4 after move, got %d", s.Len())
	}
	if s.Head() != (types.Point{X: 6, Y: 5}) {
		t.Errorf("expected head (6,5), got %v", s.Head())
	}

	s.RemoveTail()
	want := []types.Point{{X: 6, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5}}
	for i, p := range want {
		if s.Body[i] != p {
			t.Errorf("body[%d] = %v, want %v", i, s.Body[i], p)
		}
	}
	if s.Tail() != (types.Point{X: 4, Y: 5}) {
		t.Errorf("expected tail (4,5), got %v", s.Tail())
	}
}

func TestSnakeOccupiesIncludesTail(t *testing.T) {
	s := NewSnake([]types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}})
	if !s.Occupies(types.Point{X: 3, Y: 5}) {
		t.Error("tail cell must count as occupied")
	}
	if s.Occupies(types.Point{X: 6, Y: 5}) {
		t.Error("free cell reported as occupied")
	}
}

func TestSnakeCellsIsCopy(t *testing.T) {
	initial := []types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}}
	s := NewSnake(initial)
	initial[0] = types.Point{X: 9, Y: 9}
	if s.Head() != (types.Point{X: 5, Y: 5}) {
		t.Error("NewSnake must copy the initial body")
	}

	cells := s.Cells()
	cells[0] = types.Point{X: 1, Y: 1}
	if s.Head() != (types.Point{X: 5, Y: 5}) {
		t.Error("Cells must return a copy")
	}
}
