// Package grid lays out a flat sequence of cells in rows of fixed width.
package grid

// GetGridCoords returns the column and row of cell index in a grid cols wide,
// filling rows left to right.
func GetGridCoords(index, cols int) (x, y int) {
	return index % cols, index / cols
}

// Rows returns how many rows n cells occupy in a grid cols wide.
func Rows(n, cols int) int {
	return (n + cols - 1) / cols
}
