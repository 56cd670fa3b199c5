package equilibrium

import (
	"encoding/json"
	"strings"

	"github.com/iwvelando/bimatrix-solver/pkg/constants"
	"github.com/iwvelando/bimatrix-solver/pkg/format"
)

// Result aggregates the equilibria of one game. A nil Pure slice means no
// pure equilibrium exists and a nil Mixed means no admissible mixed
// equilibrium exists.
type Result struct {
	Pure  []PureEquilibrium
	Mixed *MixedEquilibrium
}

// HasPureEquilibria reports whether at least one pure equilibrium was found.
func (r Result) HasPureEquilibria() bool {
	return len(r.Pure) > 0
}

// HasMixedEquilibrium reports whether a mixed equilibrium was found.
func (r Result) HasMixedEquilibrium() bool {
	return r.Mixed != nil
}

// PureString renders the pure equilibria as payoff pairs, e.g. "[(1, 1)]",
// or constants.None.
func (r Result) PureString() string {
	if !r.HasPureEquilibria() {
		return constants.None
	}
	pairs := make([]string, 0, len(r.Pure))
	for _, eq := range r.Pure {
		pairs = append(pairs, format.Pair(eq.PayoffA, eq.PayoffB))
	}
	return "[" + strings.Join(pairs, ", ") + "]"
}

// MixedString renders the mixed equilibrium as "[(p, 1-p), (q, 1-q)]" or
// constants.None.
func (r Result) MixedString() string {
	if !r.HasMixedEquilibrium() {
		return constants.None
	}
	return "[" + format.Pair(r.Mixed.PlayerA[0], r.Mixed.PlayerA[1]) + ", " +
		format.Pair(r.Mixed.PlayerB[0], r.Mixed.PlayerB[1]) + "]"
}

func (r Result) String() string {
	return "pure: " + r.PureString() + "; mixed: " + r.MixedString()
}

type pureJSON struct {
	Row     int     `json:"row"`
	Col     int     `json:"col"`
	PayoffA float64 `json:"payoff_a"`
	PayoffB float64 `json:"payoff_b"`
}

type mixedJSON struct {
	PlayerA [Size]float64 `json:"player_a"`
	PlayerB [Size]float64 `json:"player_b"`
}

type resultJSON struct {
	Pure  interface{} `json:"pure_strategies"`
	Mixed interface{} `json:"mixed_strategies"`
}

// MarshalJSON writes absent parts as the string "NONE" so callers can tell
// "no equilibrium" apart from an empty list.
func (r Result) MarshalJSON() ([]byte, error) {
	out := resultJSON{Pure: constants.None, Mixed: constants.None}
	if r.HasPureEquilibria() {
		pure := make([]pureJSON, 0, len(r.Pure))
		for _, eq := range r.Pure {
			pure = append(pure, pureJSON(eq))
		}
		out.Pure = pure
	}
	if r.HasMixedEquilibrium() {
		out.Mixed = mixedJSON(*r.Mixed)
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts the representation produced by MarshalJSON.
func (r *Result) UnmarshalJSON(data []byte) error {
	var raw struct {
		Pure  json.RawMessage `json:"pure_strategies"`
		Mixed json.RawMessage `json:"mixed_strategies"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = Result{}
	if len(raw.Pure) > 0 && !isNone(raw.Pure) {
		var pure []pureJSON
		if err := json.Unmarshal(raw.Pure, &pure); err != nil {
			return err
		}
		for _, eq := range pure {
			r.Pure = append(r.Pure, PureEquilibrium(eq))
		}
	}
	if len(raw.Mixed) > 0 && !isNone(raw.Mixed) {
		var mixed mixedJSON
		if err := json.Unmarshal(raw.Mixed, &mixed); err != nil {
			return err
		}
		m := MixedEquilibrium(mixed)
		r.Mixed = &m
	}
	return nil
}

func isNone(raw json.RawMessage) bool {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return false
	}
	return s == constants.None
}
