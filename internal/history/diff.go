package history

import (
	"sort"

	"github.com/nao1215/pagescan/internal/model"
)

// AggregateScores computes the per-aggregation summary of a run: the mean
// Overall of its scored items. Aggregations with no scored items are
// omitted rather than recorded as zero.
func AggregateScores(results *model.Results) map[string]float64 {
	scores := make(map[string]float64)
	for _, agg := range results.Aggregations {
		var sum float64
		var count int
		for _, item := range agg.Items {
			if item.Scored {
				sum += item.Overall
				count++
			}
		}
		if count > 0 {
			scores[agg.Name] = sum / float64(count)
		}
	}
	return scores
}

// ScoreDelta is the change of one aggregation's summary score between two
// runs.
type ScoreDelta struct {
	// Aggregation is the category name.
	Aggregation string

	// Before and After are the summary scores in [0, 1]. An aggregation
	// missing from one run reports 0 on that side.
	Before float64
	After  float64
}

// Delta returns After minus Before.
func (d ScoreDelta) Delta() float64 {
	return d.After - d.Before
}

// Diff compares two run summaries aggregation by aggregation, sorted by
// name. Aggregations present in either run appear in the result.
func Diff(before, after RunSummary) []ScoreDelta {
	names := make(map[string]bool)
	for name := range before.Scores {
		names[name] = true
	}
	for name := range after.Scores {
		names[name] = true
	}

	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)

	deltas := make([]ScoreDelta, 0, len(sorted))
	for _, name := range sorted {
		deltas = append(deltas, ScoreDelta{
			Aggregation: name,
			Before:      before.Scores[name],
			After:       after.Scores[name],
		})
	}
	return deltas
}
