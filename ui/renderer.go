package ui

import (
	"fmt"
	"math"

	"snake-arcade/game/manager"
	"snake-arcade/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	backgroundColor = rl.NewColor(44, 62, 80, 255)
	fieldColor      = rl.NewColor(52, 73, 94, 255)
	wallColor       = rl.NewColor(149, 165, 166, 255)
	snakeColor      = rl.NewColor(46, 204, 113, 255)
	foodColor       = rl.NewColor(231, 76, 60, 255)
	textColor       = rl.NewColor(236, 240, 241, 255)
)

var rulesText = []string{
	"Score as many points as you can by growing the snake.",
	"Eating the apple on the field makes the snake one block longer.",
	"The snake moves left, right, up or down and cannot leave the field:",
	"hitting the wall ends the game.",
	"The game also ends when the snake runs into itself,",
	"or when you close the window.",
	"Good luck!",
}

type Renderer struct {
	cellSize int32
	padding  int32
}

func NewRenderer(cellSize, padding int) *Renderer {
	return &Renderer{
		cellSize: int32(cellSize),
		padding:  int32(padding),
	}
}

func (r *Renderer) Draw(a *App) {
	rl.BeginDrawing()
	rl.ClearBackground(backgroundColor)

	switch a.screen {
	case MainMenu:
		r.drawMenu(a)
	case Rules:
		r.drawRules(a)
	case Playing:
		r.drawGame(a)
	case GameOver:
		r.drawGame(a)
		r.drawGameOverDialog(a)
	}

	rl.EndDrawing()
}

func drawCenteredText(text string, y, fontSize int32, color rl.Color) {
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, (int32(rl.GetScreenWidth())-w)/2, y, fontSize, color)
}

func (r *Renderer) drawMenu(a *App) {
	drawCenteredText("Snake", int32(rl.GetScreenHeight())/4, 64, textColor)
	a.playButton.Draw()
	a.rulesButton.Draw()
}

func (r *Renderer) drawRules(a *App) {
	drawCenteredText("Rules", 80, 48, textColor)
	y := int32(180)
	for _, line := range rulesText {
		drawCenteredText(line, y, 24, textColor)
		y += 36
	}
	a.backButton.Draw()
}

func (r *Renderer) cellRect(p types.Point) rl.Rectangle {
	return rl.NewRectangle(
		float32(r.padding+int32(p.X)*r.cellSize),
		float32(r.padding+int32(p.Y)*r.cellSize),
		float32(r.cellSize-1),
		float32(r.cellSize-1))
}

func (r *Renderer) cellCenter(p types.Point) rl.Vector2 {
	half := float32(r.cellSize) / 2
	return rl.NewVector2(
		float32(r.padding+int32(p.X)*r.cellSize)+half,
		float32(r.padding+int32(p.Y)*r.cellSize)+half)
}

func (r *Renderer) drawGame(a *App) {
	g := a.game
	grid := g.Grid()

	rl.DrawRectangle(r.padding, r.padding,
		int32(grid.Width)*r.cellSize, int32(grid.Height)*r.cellSize, fieldColor)

	for _, w := range g.Walls() {
		rl.DrawRectangleRec(r.cellRect(w), wallColor)
	}

	r.drawSnake(g.Snake())
	if g.Collision() != manager.BoardFull {
		r.drawFood(g.Food())
	}

	rl.DrawText(fmt.Sprintf("Score: %d", g.Score()), r.padding, 8, 24, textColor)
	a.musicButton.Draw()
}

func (r *Renderer) drawSnake(body []types.Point) {
	for i := len(body) - 1; i >= 0; i-- {
		p := body[i]
		if i == 0 {
			heading := types.RIGHT
			if len(body) > 1 {
				heading = types.DirectionBetween(body[1], p)
			}
			r.drawHead(p, heading)
			continue
		}

		alpha := 255 - i*5
		if alpha < 0 {
			alpha = 0
		}
		color := rl.NewColor(snakeColor.R, snakeColor.G, snakeColor.B, uint8(alpha))

		// Corners and the tail are fully rounded, straight runs only slightly.
		roundness := float32(0.66)
		if i == len(body)-1 || isTurn(body[i-1], body[i+1]) {
			roundness = 1
		}
		rl.DrawRectangleRounded(r.cellRect(p), roundness, 6, color)
	}
}

// isTurn reports whether the body bends at the segment between prev and next.
func isTurn(prev, next types.Point) bool {
	return prev.X != next.X && prev.Y != next.Y
}

func (r *Renderer) drawHead(p types.Point, heading types.Direction) {
	c := float32(r.cellSize)
	center := r.cellCenter(p)
	rl.DrawCircleV(center, c/2, snakeColor)

	fwd := heading.ToPoint()
	fx, fy := float32(fwd.X), float32(fwd.Y)
	// side is fwd rotated by 90 degrees.
	sx, sy := -fy, fx
	for _, side := range []float32{-1, 1} {
		eye := rl.NewVector2(center.X+fx*c*0.2+sx*side*c*0.2, center.Y+fy*c*0.2+sy*side*c*0.2)
		rl.DrawCircleV(eye, c/8, rl.White)
		pupil := rl.NewVector2(eye.X+fx*c/16, eye.Y+fy*c/16)
		rl.DrawCircleV(pupil, c/16, rl.Black)
	}
}

func (r *Renderer) drawFood(p types.Point) {
	c := float32(r.cellSize)
	pulse := float32(math.Abs(math.Sin(rl.GetTime()*5)))*0.3 + 0.7

	center := r.cellCenter(p)
	rl.DrawCircleV(center, (c-1)/2, rl.Fade(foodColor, pulse))

	leaf := rl.NewVector2(center.X+c/4, center.Y-c/2)
	rl.DrawCircleV(leaf, c/4, snakeColor)
}

func (r *Renderer) drawGameOverDialog(a *App) {
	sw := int32(rl.GetScreenWidth())
	sh := int32(rl.GetScreenHeight())
	rl.DrawRectangle(0, 0, sw, sh, rl.Fade(rl.Black, 0.5))

	w, h := int32(360), int32(200)
	box := rl.NewRectangle(float32((sw-w)/2), float32(sh/2-110), float32(w), float32(h))
	rl.DrawRectangleRec(box, backgroundColor)
	rl.DrawRectangleLinesEx(box, 2, wallColor)

	drawCenteredText("Game over!", sh/2-95, 32, textColor)
	drawCenteredText(fmt.Sprintf("Score: %d   Best: %d", a.game.Score(), a.stats.BestScore()), sh/2-45, 20, textColor)
	a.restartButton.Draw()
	a.exitButton.Draw()
}
