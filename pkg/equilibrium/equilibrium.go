package equilibrium

// PureEquilibrium is a strategy profile at which both players are best
// responding, together with the payoffs realized there.
type PureEquilibrium struct {
	Row     int
	Col     int
	PayoffA float64
	PayoffB float64
}

// MixedEquilibrium holds each player's probability distribution over their
// two strategies.
type MixedEquilibrium struct {
	PlayerA [Size]float64
	PlayerB [Size]float64
}

// Validate returns an *InvalidShapeError unless both matrices are 2x2.
func Validate(a, b [][]float64) error {
	if err := checkShape(PlayerA, a); err != nil {
		return err
	}
	return checkShape(PlayerB, b)
}

// FindPureEquilibria scans every profile in row-major order and returns those
// where neither player can strictly improve by deviating. Ties are not broken,
// so degenerate games may report several profiles. A game without any pure
// equilibrium yields nil.
func FindPureEquilibria(a, b PayoffMatrix) []PureEquilibrium {
	var found []PureEquilibrium
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if rowBestResponse(a, i, j) && colBestResponse(b, i, j) {
				found = append(found, PureEquilibrium{
					Row:     i,
					Col:     j,
					PayoffA: a[i][j],
					PayoffB: b[i][j],
				})
			}
		}
	}
	return found
}

func rowBestResponse(a PayoffMatrix, i, j int) bool {
	for k := 0; k < Size; k++ {
		if a[i][j] < a[k][j] {
			return false
		}
	}
	return true
}

func colBestResponse(b PayoffMatrix, i, j int) bool {
	for k := 0; k < Size; k++ {
		if b[i][j] < b[i][k] {
			return false
		}
	}
	return true
}

// FindMixedEquilibrium solves the indifference conditions in closed form.
// With A = [[a, b], [c, d]] and B = [[w, x], [y, z]]:
//
//	p = (z - x) / ((a - c) + (d - b))
//	q = (d - b) / ((w - y) + (z - x))
//
// where p and q are the probabilities that A and B play their first
// strategy. It returns nil when either denominator is zero or when p or q
// falls outside [0, 1].
func FindMixedEquilibrium(a, b PayoffMatrix) *MixedEquilibrium {
	// TODO: q's denominator is not the mirror image of p's; confirm against
	// the textbook indifference equations before changing it.
	pDen := (a[0][0] - a[1][0]) + (a[1][1] - a[0][1])
	qDen := (b[0][0] - b[1][0]) + (b[1][1] - b[0][1])
	if pDen == 0 || qDen == 0 {
		return nil
	}

	p := (b[1][1] - b[0][1]) / pDen
	q := (a[1][1] - a[0][1]) / qDen
	if !isProbability(p) || !isProbability(q) {
		return nil
	}

	return &MixedEquilibrium{
		PlayerA: [Size]float64{p, 1 - p},
		PlayerB: [Size]float64{q, 1 - q},
	}
}

// isProbability reports whether v lies in [0, 1]. NaN is rejected.
func isProbability(v float64) bool {
	return v >= 0 && v <= 1
}

// Solve validates both matrices and computes every equilibrium of the game.
// The only error it returns is *InvalidShapeError.
func Solve(a, b [][]float64) (Result, error) {
	if err := Validate(a, b); err != nil {
		return Result{}, err
	}

	pa, err := NewPayoffMatrix(PlayerA, a)
	if err != nil {
		return Result{}, err
	}
	pb, err := NewPayoffMatrix(PlayerB, b)
	if err != nil {
		return Result{}, err
	}

	return SolveMatrices(pa, pb), nil
}

// SolveMatrices computes every equilibrium of an already shaped game.
func SolveMatrices(a, b PayoffMatrix) Result {
	return Result{
		Pure:  FindPureEquilibria(a, b),
		Mixed: FindMixedEquilibrium(a, b),
	}
}
