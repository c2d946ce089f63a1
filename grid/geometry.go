// validoku - a Sudoku puzzle validation service.
// Licensed under the MIT license.  See the LICENSE file for details.

// Package grid implements the constraint-checking core for
// standard 9x9 Sudoku boards: consistency checking, solving via
// deterministic backtracking, uniqueness counting, and the
// validation verdicts built on top of them.
//
// Boards are flat []int slices of length 81, in English reading
// order (index = row*9 + col).  A value of 0 means an empty cell;
// values 1 through 9 are placed digits.  Every function in this
// package treats its input board as read-only: internal work is
// always done on a copy, so callers can hold onto their slices.
//
// All functions here are pure and carry no cross-call state; the
// unit tables below are computed once and never written again, so
// everything is safe for concurrent use.
package grid

/*

Board geometry

In this package there is exactly one geometry: the classic 9x9
square with 3x3 boxes.  Rather than carrying a geometry mapping
around (the general machinery a multi-geometry solver needs), we
precompute the 27 units once and share them read-only.

*/

// Geometry constants for the 9x9 board.
const (
	SideLength = 9  // cells per row, column, and box
	BoxSide    = 3  // side of the 3x3 box super-grid
	CellCount  = 81 // cells on the board
	UnitCount  = 27 // rows + columns + boxes
)

// A UnitType tags a unit as a row, column, or box.  The values
// are human-readable and appear verbatim in JSON-encoded
// conflicts, so clients can translate them into highlighting.
type UnitType string

// The three unit types of the standard geometry.
const (
	UnitRow    UnitType = "row"
	UnitColumn UnitType = "column"
	UnitBox    UnitType = "box"
)

// A Unit is one of the 27 groups of 9 cells that must hold
// distinct digits in a valid solution.  Index is the unit's
// position (0-8) within its type; Cells are the unit's cell
// indices in ascending order.
type Unit struct {
	Type  UnitType
	Index int
	Cells [SideLength]int
}

// units holds all 27 units in canonical order: the 9 rows, then
// the 9 columns, then the 9 boxes.  Built once at startup and
// never mutated afterwards.
var units = buildUnits()

func buildUnits() [UnitCount]Unit {
	var us [UnitCount]Unit
	for i := 0; i < SideLength; i++ {
		r := Unit{Type: UnitRow, Index: i}
		for j := 0; j < SideLength; j++ {
			r.Cells[j] = i*SideLength + j
		}
		us[i] = r

		c := Unit{Type: UnitColumn, Index: i}
		for j := 0; j < SideLength; j++ {
			c.Cells[j] = j*SideLength + i
		}
		us[SideLength+i] = c

		b := Unit{Type: UnitBox, Index: i}
		baserow, basecol := BoxSide*(i/BoxSide), BoxSide*(i%BoxSide)
		for br := 0; br < BoxSide; br++ {
			for bc := 0; bc < BoxSide; bc++ {
				b.Cells[br*BoxSide+bc] = (baserow+br)*SideLength + (basecol + bc)
			}
		}
		us[2*SideLength+i] = b
	}
	return us
}

// RowCells returns the cell indices of row r (0-8), left to right.
func RowCells(r int) [SideLength]int {
	return units[r].Cells
}

// ColumnCells returns the cell indices of column c (0-8), top to
// bottom.
func ColumnCells(c int) [SideLength]int {
	return units[SideLength+c].Cells
}

// BoxCells returns the cell indices of box b (0-8, numbered in
// reading order of the 3x3 super-grid), enumerated in reading
// order within the box.
func BoxCells(b int) [SideLength]int {
	return units[2*SideLength+b].Cells
}

// boxOf returns the box number containing cell index i.
func boxOf(i int) int {
	return (i / SideLength / BoxSide * BoxSide) + (i % SideLength / BoxSide)
}

// EachUnit visits all 27 units in canonical order: rows 0-8, then
// columns 0-8, then boxes 0-8.  The visitor returns whether the
// iteration should continue, so scans that only need the first
// violation can stop early.
func EachUnit(visit func(u Unit) bool) {
	for i := range units {
		if !visit(units[i]) {
			return
		}
	}
}
