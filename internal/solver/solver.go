// Package solver defines the result of solving a configured game and
// includes functions for solving every game in a configuration.
package solver

import (
	"fmt"
	"time"

	"github.com/iwvelando/bimatrix-solver/internal/config"
	"github.com/iwvelando/bimatrix-solver/pkg/equilibrium"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Solution holds the equilibria computed for one named game.
type Solution struct {
	Name    string
	PlayerA equilibrium.PayoffMatrix
	PlayerB equilibrium.PayoffMatrix
	Result  equilibrium.Result
}

// GetSolutions solves every active game in file order.
func GetSolutions(logger *zap.Logger, conf config.Configuration) ([]Solution, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var results []Solution
	for _, game := range conf.Games {
		if !game.Active {
			logger.Debug(fmt.Sprintf("skipping game %s because it is inactive", game.Name),
				zap.String("op", "solver.GetSolutions"),
			)
			continue
		}

		solution, err := SolveGame(logger, game)
		if err != nil {
			return results, err
		}
		results = append(results, solution)
	}

	return results, nil
}

// SolveGame validates and solves a single game.
func SolveGame(logger *zap.Logger, game config.Game) (Solution, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := game.Validate(); err != nil {
		return Solution{}, err
	}

	start := time.Now()
	result, err := equilibrium.Solve(game.PlayerA, game.PlayerB)
	if err != nil {
		return Solution{}, errors.Wrapf(err, "failed to solve game '%s'", game.Name)
	}

	// Shapes were validated above, so these cannot fail.
	a, _ := equilibrium.NewPayoffMatrix(equilibrium.PlayerA, game.PlayerA)
	b, _ := equilibrium.NewPayoffMatrix(equilibrium.PlayerB, game.PlayerB)

	logger.Debug("game solved",
		zap.String("op", "solver.SolveGame"),
		zap.String("game", game.Name),
		zap.Int("pureEquilibria", len(result.Pure)),
		zap.Bool("mixedEquilibrium", result.HasMixedEquilibrium()),
		zap.Duration("duration", time.Since(start)),
	)

	return Solution{
		Name:    game.Name,
		PlayerA: a,
		PlayerB: b,
		Result:  result,
	}, nil
}
