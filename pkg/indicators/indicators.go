// Package indicators is the fixed catalog of food-security indicators.
//
// Each indicator has a short code (X1 through X14) used by the clustering
// workbook, a descriptive Indonesian name used in every rendered view, a unit,
// a definition, a polarity and exactly one thematic dimension. The catalog is
// immutable; lookups return copies.
package indicators

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/errors"
)

// Code is the short column code of an indicator, such as "X1".
type Code string

// Indicator codes.
const (
	X1  Code = "X1"
	X2  Code = "X2"
	X3  Code = "X3"
	X4  Code = "X4"
	X5  Code = "X5"
	X6  Code = "X6"
	X7  Code = "X7"
	X8  Code = "X8"
	X9  Code = "X9"
	X10 Code = "X10"
	X11 Code = "X11"
	X12 Code = "X12"
	X13 Code = "X13"
	X14 Code = "X14"
)

// Index returns the numeric part of the code, or 0 for a malformed code.
func (c Code) Index() int {
	n, err := strconv.Atoi(strings.TrimPrefix(string(c), "X"))
	if err != nil || !strings.HasPrefix(string(c), "X") {
		return 0
	}
	return n
}

// String returns the code text.
func (c Code) String() string { return string(c) }

// Polarity tells whether a higher value is better or worse.
type Polarity int

// Polarity values.
const (
	Positive Polarity = iota // higher is better
	Negative                 // higher is worse
)

// String returns "positive" or "negative".
func (p Polarity) String() string {
	if p == Negative {
		return "negative"
	}
	return "positive"
}

// MarshalText implements encoding.TextMarshaler.
func (p Polarity) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Polarity) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "positive", "+":
		*p = Positive
	case "negative", "-":
		*p = Negative
	default:
		return errors.NewValidationError("polarity", string(text), "must be positive or negative")
	}
	return nil
}

// Dimension is a thematic group of indicators.
type Dimension string

// Dimensions in catalog order.
const (
	General       Dimension = "Indikator Umum"
	Availability  Dimension = "Ketersediaan (Availability)"
	Accessibility Dimension = "Aksesibilitas (Accessibility)"
	Utilization   Dimension = "Pemanfaatan (Utilization)"
	Stability     Dimension = "Stabilitas (Stability)"
)

var dimensions = []Dimension{General, Availability, Accessibility, Utilization, Stability}

// String returns the dimension name.
func (d Dimension) String() string { return string(d) }

// Short returns the lower-case English name of the dimension.
func (d Dimension) Short() string {
	switch d {
	case General:
		return "general"
	case Availability:
		return "availability"
	case Accessibility:
		return "accessibility"
	case Utilization:
		return "utilization"
	case Stability:
		return "stability"
	}
	return strings.ToLower(string(d))
}

// Dimensions returns every dimension in catalog order.
func Dimensions() []Dimension {
	out := make([]Dimension, len(dimensions))
	copy(out, dimensions)
	return out
}

// ParseDimension resolves a dimension from its full name or its short
// English name, case-insensitively.
func ParseDimension(s string) (Dimension, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for _, d := range dimensions {
		if want == strings.ToLower(string(d)) || want == d.Short() {
			return d, nil
		}
	}
	names := make([]string, 0, len(dimensions))
	for _, d := range dimensions {
		names = append(names, d.Short())
	}
	return "", errors.NewValidationError("dimension", s, "must be one of: "+strings.Join(names, ", "))
}

// Indicator is a catalog entry.
type Indicator struct {
	Code       Code      `json:"code" yaml:"code"`
	Name       string    `json:"name" yaml:"name"`
	Unit       string    `json:"unit" yaml:"unit"`
	Definition string    `json:"definition" yaml:"definition"`
	Polarity   Polarity  `json:"polarity" yaml:"polarity"`
	Dimension  Dimension `json:"dimension" yaml:"dimension"`
}

// Label returns "Name (Code)".
func (i Indicator) Label() string {
	return fmt.Sprintf("%s (%s)", i.Name, i.Code)
}
