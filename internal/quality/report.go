package quality

import (
	"sort"
	"strconv"

	"github.com/Taichi-iskw/transqa/internal/model"
)

const (
	// ReportPrecision is the number of decimals shown in execution reports
	ReportPrecision = 2
	// SummaryPrecision is the number of decimals shown for global summary averages
	SummaryPrecision = 3
)

// ReportFilter narrows the translations that take part in execution reports
type ReportFilter struct {
	ExecutionID string
	PromptID    int
	// ManualOnly keeps only translations with at least one manual score
	ManualOnly bool
}

// GroupKey identifies one (execution, prompt) group
type GroupKey struct {
	ExecutionID string
	PromptID    int
}

// ExecutionReport is the presentation shape of one group's aggregate
type ExecutionReport struct {
	ExecutionID                  string        `json:"execution_id"`
	PromptID                     int           `json:"prompt_id"`
	PromptName                   string        `json:"prompt_name"`
	TotalTranslations            int           `json:"total_translations"`
	TranslationsWithManualScores int           `json:"translations_with_manual_scores"`
	ManualScorePercentage        float64       `json:"manual_score_percentage"`
	Automated                    model.Metrics `json:"avg_automated"`
	Manual                       model.Metrics `json:"avg_manual"`
	Combined                     model.Metrics `json:"avg_combined"`
}

// Contributor is a reviewer with the number of manual scores submitted
type Contributor struct {
	ReviewerID    int    `json:"reviewer_id"`
	Username      string `json:"username"`
	Contributions int    `json:"contributions"`
}

// GlobalSummary aggregates manual review activity across every translation
type GlobalSummary struct {
	TotalTranslations    int           `json:"total_translations"`
	TranslationsReviewed int           `json:"translations_reviewed"`
	ReviewPercentage     float64       `json:"review_percentage"`
	Manual               model.Metrics `json:"avg_manual"`
	Contributors         []Contributor `json:"contributors"`
}

// NewExecutionReport rounds a group's aggregate for presentation
func NewExecutionReport(key GroupKey, promptName string, agg Aggregate) ExecutionReport {
	return ExecutionReport{
		ExecutionID:                  key.ExecutionID,
		PromptID:                     key.PromptID,
		PromptName:                   promptName,
		TotalTranslations:            agg.TotalCount,
		TranslationsWithManualScores: agg.ManualCount,
		ManualScorePercentage:        Percentage(agg.ManualCount, agg.TotalCount),
		Automated:                    RoundMetrics(agg.Automated, ReportPrecision),
		Manual:                       RoundMetrics(agg.Manual, ReportPrecision),
		Combined:                     RoundMetrics(agg.Combined(), ReportPrecision),
	}
}

// BuildExecutionReports groups translations by (execution, prompt) in order of
// first appearance and produces one report per group.
// promptNames maps prompt IDs to display names; unknown IDs get an empty name.
func BuildExecutionReports(
	translations []model.Translation,
	scores []model.ManualScore,
	promptNames map[int]string,
	filter ReportFilter,
) []ExecutionReport {
	byTranslation := scoresByTranslation(scores)

	var keys []GroupKey
	groups := make(map[GroupKey][]model.Translation)
	for _, t := range translations {
		if filter.ExecutionID != "" && t.ExecutionID != filter.ExecutionID {
			continue
		}
		if filter.PromptID != 0 && t.PromptID != filter.PromptID {
			continue
		}
		if filter.ManualOnly && len(byTranslation[t.ID]) == 0 {
			continue
		}

		key := GroupKey{ExecutionID: t.ExecutionID, PromptID: t.PromptID}
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], t)
	}

	reports := make([]ExecutionReport, 0, len(keys))
	for _, key := range keys {
		members := groups[key]
		var groupScores []model.ManualScore
		for _, t := range members {
			groupScores = append(groupScores, byTranslation[t.ID]...)
		}
		reports = append(reports, NewExecutionReport(key, promptNames[key.PromptID], AggregateGroup(members, groupScores)))
	}

	return reports
}

// Summarize builds the global summary over every translation and manual score.
// Contributors are ordered by contribution count, descending; reviewers with
// equal counts keep the order in which their first score appears in scores.
func Summarize(translations []model.Translation, scores []model.ManualScore, reviewerNames map[int]string) GlobalSummary {
	reviewed := make(map[int]struct{})
	manual := make([]mean, len(model.AllMetrics))

	var contributors []Contributor
	position := make(map[int]int)
	for _, s := range scores {
		reviewed[s.TranslationID] = struct{}{}
		for i, metric := range model.AllMetrics {
			manual[i].add(s.Metrics.Get(metric))
		}

		idx, ok := position[s.ReviewerID]
		if !ok {
			idx = len(contributors)
			position[s.ReviewerID] = idx
			contributors = append(contributors, Contributor{
				ReviewerID: s.ReviewerID,
				Username:   reviewerNames[s.ReviewerID],
			})
		}
		contributors[idx].Contributions++
	}

	sort.SliceStable(contributors, func(i, j int) bool {
		return contributors[i].Contributions > contributors[j].Contributions
	})

	var averages model.Metrics
	for i, metric := range model.AllMetrics {
		averages.Set(metric, manual[i].value())
	}

	if contributors == nil {
		contributors = []Contributor{}
	}

	return GlobalSummary{
		TotalTranslations:    len(translations),
		TranslationsReviewed: len(reviewed),
		ReviewPercentage:     Percentage(len(reviewed), len(translations)),
		Manual:               RoundMetrics(averages, SummaryPrecision),
		Contributors:         contributors,
	}
}

// Percentage returns part/total*100 rounded to two decimals, or 0 when total is 0
func Percentage(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return Round(float64(part)/float64(total)*100, 2)
}

// Round rounds v to the nearest value with the given number of decimals.
// The exact binary value of v decides, and exact ties go to the even digit.
func Round(v float64, places int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// RoundMetrics rounds every present metric, leaving absent ones nil
func RoundMetrics(m model.Metrics, places int) model.Metrics {
	var out model.Metrics
	for _, metric := range model.AllMetrics {
		if v := m.Get(metric); v != nil {
			out.Set(metric, model.Float(Round(*v, places)))
		}
	}
	return out
}

func scoresByTranslation(scores []model.ManualScore) map[int][]model.ManualScore {
	out := make(map[int][]model.ManualScore)
	for _, s := range scores {
		out[s.TranslationID] = append(out[s.TranslationID], s)
	}
	return out
}
