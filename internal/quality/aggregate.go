// Package quality merges automated and manual translation scores into
// per-execution reports and a global summary.
//
// Everything in this package is a pure function of its arguments: callers
// read records from the store and pass them in, and nothing here performs
// I/O, logs, or keeps state between calls.
package quality

import "github.com/Taichi-iskw/transqa/internal/model"

// Aggregate is the unrounded aggregation of one group of translations
type Aggregate struct {
	// TotalCount is the number of translations in the group
	TotalCount int
	// ManualCount is the number of distinct translations with at least one manual score
	ManualCount int
	// Automated holds the mean of each automated metric over translations where it is set
	Automated model.Metrics
	// Manual holds the mean of each metric over every manual score record where it is set
	Manual model.Metrics
}

// mean accumulates a running arithmetic mean
type mean struct {
	sum float64
	n   int
}

func (m *mean) add(v *float64) {
	if v == nil {
		return
	}
	m.sum += *v
	m.n++
}

func (m mean) value() *float64 {
	if m.n == 0 {
		return nil
	}
	v := m.sum / float64(m.n)
	return &v
}

// AggregateGroup aggregates the translations of one (execution, prompt) group.
//
// Scores whose translation is not part of the group are ignored. Each manual
// score record contributes separately to the manual averages, while a
// translation reviewed several times counts once toward ManualCount.
// An empty group yields zero counts and nil averages.
func AggregateGroup(translations []model.Translation, scores []model.ManualScore) Aggregate {
	agg := Aggregate{TotalCount: len(translations)}

	inGroup := make(map[int]struct{}, len(translations))
	automated := make([]mean, len(model.AllMetrics))
	for _, t := range translations {
		inGroup[t.ID] = struct{}{}
		for i, metric := range model.AllMetrics {
			automated[i].add(t.Automated.Get(metric))
		}
	}

	reviewed := make(map[int]struct{})
	manual := make([]mean, len(model.AllMetrics))
	for _, s := range scores {
		if _, ok := inGroup[s.TranslationID]; !ok {
			continue
		}
		reviewed[s.TranslationID] = struct{}{}
		for i, metric := range model.AllMetrics {
			manual[i].add(s.Metrics.Get(metric))
		}
	}
	agg.ManualCount = len(reviewed)

	for i, metric := range model.AllMetrics {
		agg.Automated.Set(metric, automated[i].value())
		agg.Manual.Set(metric, manual[i].value())
	}

	return agg
}

// Combined reconciles the automated and manual averages of every metric
func (a Aggregate) Combined() model.Metrics {
	var combined model.Metrics
	for _, metric := range model.AllMetrics {
		combined.Set(metric, Combine(a.Manual.Get(metric), a.Automated.Get(metric), a.ManualCount, a.TotalCount))
	}
	return combined
}
