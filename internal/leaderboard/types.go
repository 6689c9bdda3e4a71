// internal/leaderboard/types.go
// Package leaderboard holds the leaderboard document model and the loaders
// that produce it from JSON files, HTTP locations and stats directories.
package leaderboard

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
)

// Document is the parsed leaderboard payload. It is treated as an immutable
// snapshot once loaded.
type Document struct {
	AllRuns []Run `json:"all_runs"`
}

// Run is one execution of the benchmarked optimizer, scored against a set of
// graph instances.
type Run struct {
	ID           string        `json:"id,omitempty"`
	Name         string        `json:"name"`
	Optimizer    string        `json:"optimizer,omitempty"`
	Timestamp    Number        `json:"timestamp"`
	Score        Number        `json:"score"`
	Measurements []Measurement `json:"measurements"`
}

// Measurement is the max edge crossings one run reached on one instance.
type Measurement struct {
	Instance   string `json:"instance"`
	Value      Number `json:"value"`
	DurationMs Number `json:"duration_ms"`
}

// Number is a JSON number that may be absent. Nulls, strings, booleans and
// non-finite values decode as "no data" rather than failing the document or
// being coerced to zero.
type Number struct {
	Value float64
	Valid bool
}

// Num returns a valid Number holding v.
func Num(v float64) Number {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Number{}
	}
	return Number{Value: v, Valid: true}
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	num, ok := v.(json.Number)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(num.String(), 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return nil
		}
		return err
	}
	*n = Num(f)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(n.Value, 'f', -1, 64)), nil
}

func (n Number) String() string {
	if !n.Valid {
		return "-"
	}
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}
