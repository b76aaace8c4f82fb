package entity

import (
	"snake-arcade/game/types"
)

// Snake is an ordered body with the head at index 0 and the tail last.
type Snake struct {
	Body []types.Point
}

func NewSnake(body []types.Point) *Snake {
	s := &Snake{Body: make([]types.Point, len(body))}
	copy(s.Body, body)
	return s
}

// Move prepends newHead.
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) Head() types.Point {
	return s.Body[0]
}

func (s *Snake) Tail() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Occupies reports whether p is any body cell, tail included.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Cells returns a copy of the body safe to hand to the renderer.
func (s *Snake) Cells() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}
