// Package equilibrium computes pure and mixed Nash equilibria of 2x2
// bimatrix games.
package equilibrium

import (
	"fmt"
)

// Size is the number of strategies available to each player.
const Size = 2

// Player identifies one of the two players of a bimatrix game.
type Player string

const (
	// PlayerA chooses the row.
	PlayerA Player = "A"
	// PlayerB chooses the column.
	PlayerB Player = "B"
)

// PayoffMatrix holds one player's payoffs indexed by (row, column), i.e.
// (player A's strategy, player B's strategy).
type PayoffMatrix [Size][Size]float64

// InvalidShapeError is returned when a payoff matrix is not exactly 2x2.
type InvalidShapeError struct {
	Player Player
	Rows   int
	// Cols holds the length of every row as received.
	Cols []int
}

func (e *InvalidShapeError) Error() string {
	return fmt.Sprintf("payoff matrix for player %s must be 2x2, got %d rows with lengths %v",
		e.Player, e.Rows, e.Cols)
}

func checkShape(player Player, m [][]float64) error {
	valid := len(m) == Size
	cols := make([]int, len(m))
	for i, row := range m {
		cols[i] = len(row)
		if len(row) != Size {
			valid = false
		}
	}
	if !valid {
		return &InvalidShapeError{Player: player, Rows: len(m), Cols: cols}
	}
	return nil
}

// NewPayoffMatrix copies a 2x2 slice representation into a PayoffMatrix.
func NewPayoffMatrix(player Player, m [][]float64) (PayoffMatrix, error) {
	var pm PayoffMatrix
	if err := checkShape(player, m); err != nil {
		return pm, err
	}
	for i := range pm {
		copy(pm[i][:], m[i])
	}
	return pm, nil
}

// Rows returns the matrix as a slice of rows.
func (m PayoffMatrix) Rows() [][]float64 {
	rows := make([][]float64, Size)
	for i := range m {
		rows[i] = []float64{m[i][0], m[i][1]}
	}
	return rows
}
