package solver_test

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/iwvelando/bimatrix-solver/internal/config"
	"github.com/iwvelando/bimatrix-solver/internal/solver"
	"github.com/iwvelando/bimatrix-solver/pkg/constants"
	"github.com/iwvelando/bimatrix-solver/pkg/equilibrium"
	"github.com/iwvelando/bimatrix-solver/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetSolutionsExampleConfig(t *testing.T) {
	conf, err := config.LoadConfiguration(filepath.Join("..", "..", constants.ExampleConfigFile))
	require.NoError(t, err)

	results, err := solver.GetSolutions(zap.NewNop(), *conf)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, []string{"prisoners dilemma", "matching pennies", "battle of the sexes"},
		[]string{results[0].Name, results[1].Name, results[2].Name})

	pd := testutil.FindSolution(results, "prisoners dilemma")
	require.NotNil(t, pd)
	assert.Equal(t, "[(1, 1)]", pd.Result.PureString())
	assert.Equal(t, constants.None, pd.Result.MixedString())
	assert.Equal(t, equilibrium.PayoffMatrix{{3, 0}, {5, 1}}, pd.PlayerA)

	mp := testutil.FindSolution(results, "matching pennies")
	require.NotNil(t, mp)
	assert.False(t, mp.Result.HasPureEquilibria())
	assert.False(t, mp.Result.HasMixedEquilibrium())

	bos := testutil.FindSolution(results, "battle of the sexes")
	require.NotNil(t, bos)
	require.True(t, bos.Result.HasMixedEquilibrium())
	assert.True(t, testutil.WithinTolerance(2.0/3.0, bos.Result.Mixed.PlayerA[0]))
	assert.True(t, testutil.WithinTolerance(1.0/3.0, bos.Result.Mixed.PlayerB[0]))

	assert.Nil(t, testutil.FindSolution(results, "indifferent players"))
}

func TestGetSolutionsShapeError(t *testing.T) {
	conf := config.Configuration{
		Games: []config.Game{
			{Name: "fine", Active: true, PlayerA: [][]float64{{1, 0}, {0, 1}}, PlayerB: [][]float64{{1, 0}, {0, 1}}},
			{Name: "broken", Active: true, PlayerA: [][]float64{{1, 0, 2}, {0, 1, 2}}, PlayerB: [][]float64{{1, 0}, {0, 1}}},
		},
	}

	results, err := solver.GetSolutions(nil, conf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
	assert.Len(t, results, 1)

	var shapeErr *equilibrium.InvalidShapeError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, equilibrium.PlayerA, shapeErr.Player)
}

func TestGetSolutionsSkipsInactiveInvalidGames(t *testing.T) {
	conf := config.Configuration{
		Games: []config.Game{
			{Name: "draft", Active: false, PlayerA: [][]float64{{1}}},
		},
	}

	results, err := solver.GetSolutions(zap.NewNop(), conf)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSolveGameRejectsNonFinitePayoffs(t *testing.T) {
	game := config.Game{
		Name:    "infinite",
		Active:  true,
		PlayerA: [][]float64{{math.Inf(1), 0}, {0, 1}},
		PlayerB: [][]float64{{1, 0}, {0, 1}},
	}

	_, err := solver.SolveGame(zap.NewNop(), game)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be finite")
}
