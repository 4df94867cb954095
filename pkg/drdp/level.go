// Package drdp decodes DRDP developmental assessment scores into level labels.
package drdp

import (
	"fmt"
	"math"
	"strconv"
)

const (
	unableToRate       = 11
	conditionalMeasure = 99
	notYet             = 0

	emergingFraction = 0.5
	tolerance        = 0.01
)

var baseLevels = map[int64]string{
	1: "Responding Earlier",
	2: "Responding Later",
	3: "Exploring Earlier",
	4: "Exploring Middle",
	5: "Exploring Later",
	6: "Building Earlier",
	7: "Building Middle",
	8: "Building Later",
	9: "Integrating Earlier",
}

// DecodeLevel maps a numeric score to its level description. A nil score
// decodes to nil; unknown bases yield an "Unknown (n)" label.
func DecodeLevel(value *float64) *string {
	if value == nil {
		return nil
	}
	label := Level(*value)
	return &label
}

// Level is DecodeLevel for a present score.
func Level(v float64) string {
	switch v {
	case unableToRate:
		return "Unable to rate"
	case conditionalMeasure:
		return "Conditional measure"
	case notYet:
		return "Not Yet"
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprintf("Unknown (%v)", v)
	}

	floor := math.Floor(v)
	base := baseLabel(floor)
	remainder := v - floor

	switch {
	case math.Abs(remainder-emergingFraction) < tolerance:
		return base + " + Emerging"
	case remainder > tolerance:
		return base + " + " + strconv.FormatFloat(remainder, 'f', -1, 64)
	default:
		return base
	}
}

func baseLabel(floor float64) string {
	if floor < math.MinInt64 || floor >= math.MaxInt64 {
		return fmt.Sprintf("Unknown (%v)", floor)
	}
	n := int64(floor)
	if label, ok := baseLevels[n]; ok {
		return label
	}
	return fmt.Sprintf("Unknown (%d)", n)
}
