package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"
)

// decimalPlaces is the precision of the approximate column in reports.
const decimalPlaces = 12

// Sample is one point of a Table.
type Sample struct {
	X     *big.Rat
	Value *big.Rat // nil when Err is set
	Err   error
}

// Table holds the values of one entry at a list of points.
type Table struct {
	Name    string   `json:"name"`
	Formula string   `json:"formula"`
	LaTeX   string   `json:"latex,omitempty"`
	Samples []Sample `json:"samples"`
}

type sampleJSON struct {
	X       string `json:"x"`
	Value   string `json:"value,omitempty"`
	Decimal string `json:"decimal,omitempty"`
	Error   string `json:"error,omitempty"`
}

// MarshalJSON writes exact values as fractions alongside a decimal
// approximation.
func (s Sample) MarshalJSON() ([]byte, error) {
	var out sampleJSON
	if s.X != nil {
		out.X = s.X.RatString()
	}
	if s.Err != nil {
		out.Error = s.Err.Error()
	} else if s.Value != nil {
		out.Value = s.Value.RatString()
		out.Decimal = s.Value.FloatString(decimalPlaces)
	}
	return json.Marshal(out)
}

// OK reports whether the sample evaluated cleanly.
func (s Sample) OK() bool { return s.Err == nil && s.Value != nil }

// WriteTextTable writes a table in human-readable format.
func WriteTextTable(w io.Writer, t Table) {
	fmt.Fprintf(w, "%s = %s\n", t.Name, t.Formula)
	for _, s := range t.Samples {
		if !s.OK() {
			fmt.Fprintf(w, "  x = %-12s | error: %v\n", ratString(s.X), s.Err)
			continue
		}
		fmt.Fprintf(w, "  x = %-12s | %s (%s)\n",
			s.X.RatString(), s.Value.RatString(), s.Value.FloatString(decimalPlaces))
	}
}

// WriteJSONTable writes a table as JSON.
func WriteJSONTable(w io.Writer, t Table) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(t)
}
