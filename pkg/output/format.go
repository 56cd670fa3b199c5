// Package output provides utilities for formatting and displaying solver results.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/bimatrix-solver/internal/solver"
	"github.com/iwvelando/bimatrix-solver/pkg/constants"
	"github.com/iwvelando/bimatrix-solver/pkg/equilibrium"
	"github.com/iwvelando/bimatrix-solver/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(w io.Writer, results []solver.Solution) {
	p := message.NewPrinter(language.English)
	for i, result := range results {
		_, _ = fmt.Fprintf(w, "--- Results for game %s ---\n", result.Name)
		_, _ = fmt.Fprintf(w, "Payoffs | Column 1 | Column 2\n")
		_, _ = fmt.Fprintf(w, "_______ | ________ | ________\n")
		for row := 0; row < equilibrium.Size; row++ {
			_, _ = p.Fprintf(w, "Row %d   | (%v, %v) | (%v, %v)\n", row+1,
				result.PlayerA[row][0], result.PlayerB[row][0],
				result.PlayerA[row][1], result.PlayerB[row][1])
		}
		_, _ = fmt.Fprintf(w, "Pure Strategies: %s\n", result.Result.PureString())
		_, _ = fmt.Fprintf(w, "Mixed Strategies: %s\n", mixedProbabilities(result.Result))
		if i < len(results)-1 {
			_, _ = fmt.Fprintf(w, "\n")
		}
	}
}

// CsvFormat outputs one row per game in comma-separated value format.
func CsvFormat(w io.Writer, results []solver.Solution) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"game", "pure strategies", "mixed strategies"}); err != nil {
		return err
	}
	for _, result := range results {
		record := []string{result.Name, result.Result.PureString(), mixedProbabilities(result.Result)}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// CsvString returns the CSV representation of the results.
func CsvString(results []solver.Solution) (string, error) {
	var buf strings.Builder
	if err := CsvFormat(&buf, results); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type solutionJSON struct {
	Name    string             `json:"name"`
	PlayerA [][]float64        `json:"playerA"`
	PlayerB [][]float64        `json:"playerB"`
	Result  equilibrium.Result `json:"result"`
}

// JSONFormat outputs the results as an indented JSON array.
func JSONFormat(w io.Writer, results []solver.Solution) error {
	out := make([]solutionJSON, 0, len(results))
	for _, result := range results {
		out = append(out, solutionJSON{
			Name:    result.Name,
			PlayerA: result.PlayerA.Rows(),
			PlayerB: result.PlayerB.Rows(),
			Result:  result.Result,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// Write dispatches to the formatter named by outputFormat.
func Write(w io.Writer, outputFormat string, results []solver.Solution) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		PrettyFormat(w, results)
		return nil
	case constants.OutputFormatCSV:
		return CsvFormat(w, results)
	case constants.OutputFormatJSON:
		return JSONFormat(w, results)
	}
	return fmt.Errorf("unsupported output format %s", outputFormat)
}

func mixedProbabilities(r equilibrium.Result) string {
	if !r.HasMixedEquilibrium() {
		return constants.None
	}
	return "[" + format.ProbabilityPair(r.Mixed.PlayerA[0], r.Mixed.PlayerA[1]) + ", " +
		format.ProbabilityPair(r.Mixed.PlayerB[0], r.Mixed.PlayerB[1]) + "]"
}
