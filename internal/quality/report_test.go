package quality

import (
	"testing"

	"github.com/Taichi-iskw/transqa/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportFixture() ([]model.Translation, []model.ManualScore) {
	translations := []model.Translation{
		{ID: 1, ExecutionID: "exec-b", PromptID: 2, Automated: model.Metrics{Overall: model.Float(0.75)}},
		{ID: 2, ExecutionID: "exec-a", PromptID: 1, Automated: model.Metrics{Overall: model.Float(0.6)}},
		{ID: 3, ExecutionID: "exec-b", PromptID: 2, Automated: model.Metrics{Overall: model.Float(0.25)}},
		{ID: 4, ExecutionID: "exec-b", PromptID: 1, Automated: model.Metrics{Overall: model.Float(0.2)}},
	}
	scores := []model.ManualScore{
		{ID: 1, TranslationID: 3, ReviewerID: 1, Metrics: model.Metrics{Overall: model.Float(1.0)}},
		{ID: 2, TranslationID: 3, ReviewerID: 2, Metrics: model.Metrics{Overall: model.Float(0.5)}},
		{ID: 3, TranslationID: 2, ReviewerID: 2, Metrics: model.Metrics{Overall: model.Float(0.9)}},
	}
	return translations, scores
}

func TestBuildExecutionReports_GroupsInFirstAppearanceOrder(t *testing.T) {
	translations, scores := reportFixture()
	names := map[int]string{1: "Insights", 2: "Summaries"}

	reports := BuildExecutionReports(translations, scores, names, ReportFilter{})

	require.Len(t, reports, 3)
	assert.Equal(t, "exec-b", reports[0].ExecutionID)
	assert.Equal(t, 2, reports[0].PromptID)
	assert.Equal(t, "Summaries", reports[0].PromptName)
	assert.Equal(t, "exec-a", reports[1].ExecutionID)
	assert.Equal(t, "exec-b", reports[2].ExecutionID)
	assert.Equal(t, 1, reports[2].PromptID)

	first := reports[0]
	assert.Equal(t, 2, first.TotalTranslations)
	assert.Equal(t, 1, first.TranslationsWithManualScores)
	assert.Equal(t, 50.0, first.ManualScorePercentage)
	require.NotNil(t, first.Automated.Overall)
	assert.InDelta(t, 0.5, *first.Automated.Overall, 1e-12)
	require.NotNil(t, first.Manual.Overall)
	assert.InDelta(t, 0.75, *first.Manual.Overall, 1e-12)
	require.NotNil(t, first.Combined.Overall)
	assert.InDelta(t, 0.62, *first.Combined.Overall, 1e-12) // 0.75*0.5 + 0.5*0.5 = 0.625, tie to even

	unreviewed := reports[2]
	assert.Equal(t, 0.0, unreviewed.ManualScorePercentage)
	assert.Nil(t, unreviewed.Manual.Overall)
	require.NotNil(t, unreviewed.Combined.Overall)
	assert.InDelta(t, 0.2, *unreviewed.Combined.Overall, 1e-12)
}

func TestBuildExecutionReports_Filters(t *testing.T) {
	translations, scores := reportFixture()

	t.Run("by execution", func(t *testing.T) {
		reports := BuildExecutionReports(translations, scores, nil, ReportFilter{ExecutionID: "exec-a"})
		require.Len(t, reports, 1)
		assert.Equal(t, "exec-a", reports[0].ExecutionID)
	})

	t.Run("by prompt", func(t *testing.T) {
		reports := BuildExecutionReports(translations, scores, nil, ReportFilter{PromptID: 1})
		require.Len(t, reports, 2)
		for _, r := range reports {
			assert.Equal(t, 1, r.PromptID)
		}
	})

	t.Run("manual only", func(t *testing.T) {
		reports := BuildExecutionReports(translations, scores, nil, ReportFilter{ManualOnly: true})
		require.Len(t, reports, 2)
		for _, r := range reports {
			assert.Equal(t, r.TotalTranslations, r.TranslationsWithManualScores)
			assert.Equal(t, 100.0, r.ManualScorePercentage)
		}
	})

	t.Run("no match", func(t *testing.T) {
		reports := BuildExecutionReports(translations, scores, nil, ReportFilter{ExecutionID: "missing"})
		assert.Empty(t, reports)
	})
}

func TestBuildExecutionReports_Idempotent(t *testing.T) {
	translations, scores := reportFixture()

	first := BuildExecutionReports(translations, scores, nil, ReportFilter{})
	second := BuildExecutionReports(translations, scores, nil, ReportFilter{})

	assert.Equal(t, first, second)
}

func TestSummarize(t *testing.T) {
	translations, scores := reportFixture()
	scores = append(scores,
		model.ManualScore{ID: 4, TranslationID: 1, ReviewerID: 3, Metrics: model.Metrics{Overall: model.Float(0.7), Coherence: model.Float(0.1234)}},
	)
	names := map[int]string{1: "alice", 2: "bob", 3: "carol"}

	summary := Summarize(translations, scores, names)

	assert.Equal(t, 4, summary.TotalTranslations)
	assert.Equal(t, 3, summary.TranslationsReviewed)
	assert.Equal(t, 75.0, summary.ReviewPercentage)
	require.NotNil(t, summary.Manual.Overall)
	assert.InDelta(t, 0.775, *summary.Manual.Overall, 1e-12)
	require.NotNil(t, summary.Manual.Coherence)
	assert.InDelta(t, 0.123, *summary.Manual.Coherence, 1e-12)
	assert.Nil(t, summary.Manual.Fidelity)

	require.Len(t, summary.Contributors, 3)
	assert.Equal(t, Contributor{ReviewerID: 2, Username: "bob", Contributions: 2}, summary.Contributors[0])
	// alice and carol tie; alice scored first
	assert.Equal(t, "alice", summary.Contributors[1].Username)
	assert.Equal(t, "carol", summary.Contributors[2].Username)
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil, nil, nil)

	assert.Equal(t, 0, summary.TotalTranslations)
	assert.Equal(t, 0.0, summary.ReviewPercentage)
	assert.Equal(t, model.Metrics{}, summary.Manual)
	assert.NotNil(t, summary.Contributors)
	assert.Empty(t, summary.Contributors)
}

func TestRound(t *testing.T) {
	assert.Equal(t, 0.84, Round(0.8375, 2))
	assert.Equal(t, 0.125, Round(0.1249999, 3))
	assert.Equal(t, 0.0, Round(0.0, 2))
	assert.Equal(t, 0.12, Round(0.125, 2))
	assert.Equal(t, 0.38, Round(0.375, 2))
	// 1.0005 is stored slightly below the tie
	assert.Equal(t, 1.0, Round(1.0005, 3))
	assert.Equal(t, 0.67, Round(2.0/3.0, 2))
	assert.Equal(t, 33.33, Percentage(1, 3))
	assert.Equal(t, 0.0, Percentage(5, 0))
}

func TestBuildExecutionReports_RoundsTiesToEven(t *testing.T) {
	translations := []model.Translation{
		{ID: 1, ExecutionID: "exec", PromptID: 1, Automated: model.Metrics{Overall: model.Float(0.125)}},
	}

	reports := BuildExecutionReports(translations, nil, nil, ReportFilter{})

	require.Len(t, reports, 1)
	require.NotNil(t, reports[0].Automated.Overall)
	assert.Equal(t, 0.12, *reports[0].Automated.Overall)
	assert.Equal(t, 0.12, *reports[0].Combined.Overall)
}

func TestRoundMetrics_KeepsZeroAndNil(t *testing.T) {
	rounded := RoundMetrics(model.Metrics{Coherence: model.Float(0), Overall: model.Float(0.6666)}, 2)

	require.NotNil(t, rounded.Coherence)
	assert.Equal(t, 0.0, *rounded.Coherence)
	assert.Nil(t, rounded.Fidelity)
	assert.Equal(t, 0.67, *rounded.Overall)
}
