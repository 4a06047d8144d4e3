// Package core provides fundamental types shared by the snake engine, the
// renderer and the input layer. It contains no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package core

import (
	"errors"
	"fmt"
)

// MinGridSize is the smallest width and height the engine accepts: a border
// ring around a 2x2 interior, so food always has somewhere to go after the
// first segment is placed.
const MinGridSize = 4

// ErrGridTooSmall is returned when a grid cannot hold a border and a playable
// interior.
var ErrGridTooSmall = errors.New("grid too small")

// Position is a single grid cell. Positions compare by value.
type Position struct {
	X, Y int
}

// Pos creates a new position.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns the position offset by dx, dy.
// The result may lie outside any grid.
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid is the playable bounding box, border ring included.
type Grid struct {
	Width  int
	Height int
}

// NewGrid creates a grid, rejecting sizes below MinGridSize.
func NewGrid(width, height int) (Grid, error) {
	g := Grid{Width: width, Height: height}
	if err := g.Validate(); err != nil {
		return Grid{}, err
	}
	return g, nil
}

// Validate checks that the grid has room for a border and an interior.
func (g Grid) Validate() error {
	if g.Width < MinGridSize || g.Height < MinGridSize {
		return fmt.Errorf("%w: %dx%d (need at least %dx%d)",
			ErrGridTooSmall, g.Width, g.Height, MinGridSize, MinGridSize)
	}
	return nil
}

// Contains returns true if p is anywhere on the grid, border included.
func (g Grid) Contains(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// OnBorder returns true if p lies on the outer ring.
// Positions off the grid are not on the border.
func (g Grid) OnBorder(p Position) bool {
	if !g.Contains(p) {
		return false
	}
	return p.X == 0 || p.X == g.Width-1 || p.Y == 0 || p.Y == g.Height-1
}

// InInterior returns true if p is strictly inside the border ring.
func (g Grid) InInterior(p Position) bool {
	return p.X >= 1 && p.X <= g.Width-2 && p.Y >= 1 && p.Y <= g.Height-2
}

// Center returns the middle cell, rounding down.
func (g Grid) Center() Position {
	return Position{X: g.Width / 2, Y: g.Height / 2}
}

// InteriorArea returns the number of cells inside the border ring.
func (g Grid) InteriorArea() int {
	if g.Width < 2 || g.Height < 2 {
		return 0
	}
	return (g.Width - 2) * (g.Height - 2)
}

// InteriorCells returns every interior cell in row-major order.
func (g Grid) InteriorCells() []Position {
	cells := make([]Position, 0, g.InteriorArea())
	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			cells = append(cells, Position{X: x, Y: y})
		}
	}
	return cells
}
