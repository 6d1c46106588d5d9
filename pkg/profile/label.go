package profile

import (
	"math"
	"strings"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/constants"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/errors"
	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/indicators"
)

// Label is the qualitative reading of a standardized score.
type Label int

// Labels. The zero value is Neutral.
const (
	Neutral Label = iota
	Favorable
	Unfavorable
)

// String returns the label name.
func (l Label) String() string {
	switch l {
	case Favorable:
		return "Favorable"
	case Unfavorable:
		return "Unfavorable"
	default:
		return "Neutral"
	}
}

// Symbol returns the compact glyph used in tables.
func (l Label) Symbol() string {
	switch l {
	case Favorable:
		return "✅"
	case Unfavorable:
		return "❌"
	default:
		return "⚠️"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l Label) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(l.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Names and symbols are
// both accepted.
func (l *Label) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "favorable", "✅":
		*l = Favorable
	case "neutral", "⚠️", "⚠":
		*l = Neutral
	case "unfavorable", "❌":
		*l = Unfavorable
	default:
		return errors.NewValidationError("label", string(text), "unknown label")
	}
	return nil
}

// Classify reads a standardized score z with the default neutral band.
func Classify(z float64, polarity indicators.Polarity) Label {
	return ClassifyBand(z, polarity, constants.NeutralBand)
}

// ClassifyBand labels z: at or above +band is Favorable and at or below -band
// is Unfavorable for positive indicators, mirrored for negative ones.
// Anything else, including NaN, is Neutral.
func ClassifyBand(z float64, polarity indicators.Polarity, band float64) Label {
	if math.IsNaN(z) {
		return Neutral
	}
	high, low := Favorable, Unfavorable
	if polarity == indicators.Negative {
		high, low = Unfavorable, Favorable
	}
	switch {
	case z >= band:
		return high
	case z <= -band:
		return low
	default:
		return Neutral
	}
}

// Vote aggregates labels by majority of Favorable against Unfavorable. Ties,
// including an empty input, are Neutral.
func Vote(labels []Label) Label {
	var fav, unfav int
	for _, l := range labels {
		switch l {
		case Favorable:
			fav++
		case Unfavorable:
			unfav++
		}
	}
	switch {
	case fav > unfav:
		return Favorable
	case unfav > fav:
		return Unfavorable
	default:
		return Neutral
	}
}
