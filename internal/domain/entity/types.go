package entity

// Point is a grid cell position (column, row)
type Point struct {
	X, Y int
}

// Add returns the point moved by one step in direction d
func (p Point) Add(d Direction) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid is the playfield, spanning [0, Width) x [0, Height)
type Grid struct {
	Width  int
	Height int
}

// NewGrid creates a grid of the given size
func NewGrid(width, height int) Grid {
	return Grid{Width: width, Height: height}
}

// Contains reports whether p lies inside the grid bounds
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the number of cells in the grid
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Center returns the cell the snake starts on
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}
