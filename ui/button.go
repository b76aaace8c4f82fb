package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	buttonColor      = rl.NewColor(52, 152, 219, 255)
	buttonHoverColor = rl.NewColor(41, 128, 185, 255)
	buttonPressColor = rl.NewColor(31, 106, 165, 255)
)

// Button is a clickable label.
type Button struct {
	Rect     rl.Rectangle
	Label    string
	FontSize int32
	Disabled bool
}

func NewButton(label string, x, y, w, h float32, fontSize int32) *Button {
	return &Button{
		Rect:     rl.NewRectangle(x, y, w, h),
		Label:    label,
		FontSize: fontSize,
	}
}

// centered places a w×h button horizontally centered on a screen of width sw.
func centered(label string, sw int, y, w, h float32, fontSize int32) *Button {
	return NewButton(label, (float32(sw)-w)/2, y, w, h, fontSize)
}

func (b *Button) Hovered() bool {
	return rl.CheckCollisionPointRec(rl.GetMousePosition(), b.Rect)
}

func (b *Button) Clicked() bool {
	return !b.Disabled && b.Hovered() && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}

func (b *Button) Draw() {
	color := buttonColor
	switch {
	case b.Disabled:
		color = rl.Gray
	case b.Hovered() && rl.IsMouseButtonDown(rl.MouseLeftButton):
		color = buttonPressColor
	case b.Hovered():
		color = buttonHoverColor
	}
	rl.DrawRectangleRounded(b.Rect, 0.2, 6, color)

	textWidth := rl.MeasureText(b.Label, b.FontSize)
	rl.DrawText(b.Label,
		int32(b.Rect.X)+(int32(b.Rect.Width)-textWidth)/2,
		int32(b.Rect.Y)+(int32(b.Rect.Height)-b.FontSize)/2,
		b.FontSize, rl.RayWhite)
}
