package model

import (
	"encoding/json"
	"strconv"
)

// AuditResult is the outcome of a single audit.
type AuditResult struct {
	// DisplayValue is an optional human-readable measurement shown next to
	// the description (e.g. "1,204ms"). Empty means no value to show.
	DisplayValue string `json:"displayValue"`

	// DebugString is an optional diagnostic hint shown below the audit
	// line. Empty means no hint.
	DebugString string `json:"debugString"`

	// Score is the audit result value: pass/fail, a number, or a textual
	// placeholder.
	Score Score `json:"score"`

	// Description is the audit title.
	Description string `json:"description"`

	// ExtendedInfo carries an optional structured payload rendered by a
	// named formatter.
	ExtendedInfo *ExtendedInfo `json:"extendedInfo,omitempty"`
}

// ExtendedInfo is an opaque payload attached to an audit, rendered by the
// formatter named in Formatter. The output layer never interprets Value
// itself.
type ExtendedInfo struct {
	Value     string `json:"value"`
	Formatter string `json:"formatter"`
}

// ScoreKind discriminates the dynamic type of a Score.
type ScoreKind int

// Score kinds, in the order renderers branch on them.
const (
	// ScoreBool is a pass/fail score.
	ScoreBool ScoreKind = iota

	// ScoreNumber is a numeric score, typically in [0, 100].
	ScoreNumber

	// ScoreText is a non-numeric placeholder such as "N/A".
	ScoreText
)

// Score is an audit score value: a boolean, a number, or a string on the
// wire. The zero value is a failing boolean score.
type Score struct {
	kind ScoreKind
	b    bool
	n    float64
	s    string
}

// BoolScore creates a pass/fail score.
func BoolScore(v bool) Score {
	return Score{kind: ScoreBool, b: v}
}

// NumberScore creates a numeric score.
func NumberScore(v float64) Score {
	return Score{kind: ScoreNumber, n: v}
}

// TextScore creates a textual placeholder score.
func TextScore(v string) Score {
	return Score{kind: ScoreText, s: v}
}

// Kind returns the score's discriminant.
func (s Score) Kind() ScoreKind {
	return s.kind
}

// Bool returns the pass/fail value. Only meaningful when Kind is ScoreBool.
func (s Score) Bool() bool {
	return s.b
}

// Number returns the numeric value. Only meaningful when Kind is ScoreNumber.
func (s Score) Number() float64 {
	return s.n
}

// Text returns the score's textual form regardless of kind. Numbers are
// formatted without a decimal point when they are integral.
func (s Score) Text() string {
	switch s.kind {
	case ScoreBool:
		return strconv.FormatBool(s.b)
	case ScoreNumber:
		return strconv.FormatFloat(s.n, 'f', -1, 64)
	default:
		return s.s
	}
}

// MarshalJSON writes the score in its wire form: a JSON boolean, number,
// or string depending on kind.
func (s Score) MarshalJSON() ([]byte, error) {
	switch s.kind {
	case ScoreBool:
		return json.Marshal(s.b)
	case ScoreNumber:
		return json.Marshal(s.n)
	default:
		return json.Marshal(s.s)
	}
}

// UnmarshalJSON accepts a JSON boolean, number, or string and records which
// one it saw.
func (s *Score) UnmarshalJSON(data []byte) error {
	if len(data) > 0 {
		switch data[0] {
		case 't', 'f':
			s.kind = ScoreBool
			return json.Unmarshal(data, &s.b)
		case '"':
			s.kind = ScoreText
			return json.Unmarshal(data, &s.s)
		}
	}
	s.kind = ScoreNumber
	return json.Unmarshal(data, &s.n)
}
