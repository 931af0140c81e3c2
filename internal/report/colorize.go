package report

import (
	"github.com/fatih/color"

	"github.com/nao1215/pagescan/internal/model"
)

// Score tier boundaries for numeric scores. A score at the boundary
// belongs to the lower tier. Exported so other renderings (the HTML
// document) classify scores with the same cut points.
const (
	LowScoreCeiling    = 45
	MediumScoreCeiling = 75
)

// Glyphs for boolean scores.
const (
	passGlyph = "✓"
	failGlyph = "✘"
)

// palette is the fixed table of colors used by the pretty renderer. It is
// owned by the Printer instead of living in package-level mutable state,
// so two Printers with different color settings never interfere.
type palette struct {
	pass   *color.Color
	fail   *color.Color
	info   *color.Color
	low    *color.Color
	medium *color.Color
	high   *color.Color
	bold   *color.Color
}

// newPalette builds the color table. Color output is forced on or off
// explicitly rather than left to terminal detection, so composed output is
// byte-identical for the same input regardless of where it ends up.
func newPalette(enabled bool) *palette {
	p := &palette{
		pass:   color.New(color.FgGreen),
		fail:   color.New(color.FgRed),
		info:   color.New(color.FgCyan),
		low:    color.New(color.FgRed),
		medium: color.New(color.FgYellow),
		high:   color.New(color.FgGreen),
		bold:   color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.pass, p.fail, p.info, p.low, p.medium, p.high, p.bold} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// scoreToken formats a score value as a color-tagged token. It is total
// over the score domain: booleans become a pass or fail glyph (the suffix
// is ignored), text scores are echoed in the informational color, and
// numeric scores pick one of three tiers by the 45/75 thresholds and carry
// the suffix.
func (p *palette) scoreToken(score model.Score, suffix string) string {
	switch score.Kind() {
	case model.ScoreBool:
		if score.Bool() {
			return p.pass.Sprint(passGlyph)
		}
		return p.fail.Sprint(failGlyph)
	case model.ScoreNumber:
		return p.tier(score.Number()).Sprint(score.Text() + suffix)
	default:
		return p.info.Sprint(score.Text())
	}
}

// tier selects the color for a numeric score.
func (p *palette) tier(n float64) *color.Color {
	switch {
	case n <= LowScoreCeiling:
		return p.low
	case n <= MediumScoreCeiling:
		return p.medium
	default:
		return p.high
	}
}
