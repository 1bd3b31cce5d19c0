package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GDG-Vishnu/community-platform/models"
)

func analyticsForm() *models.Form {
	return &models.Form{
		ID: formID,
		Sections: []models.Section{
			{
				ID:    sectionID,
				Title: ptrString("Basics"),
				Fields: []models.Field{
					{ID: fieldID, Label: "Name"},
					{ID: fieldID2, Label: "Motivation"},
				},
			},
			{
				ID:     sectionID2,
				Title:  ptrString("Extras"),
				Fields: []models.Field{{ID: strayID, Label: "Portfolio"}},
			},
		},
	}
}

func submissionAnswering(fieldIDs ...string) models.FormSubmission {
	sub := models.FormSubmission{FormID: formID}
	for _, id := range fieldIDs {
		sub.Responses = append(sub.Responses, models.FieldResponse{FieldID: id})
	}
	return sub
}

func TestComputeFormAnalytics_NoSubmissions(t *testing.T) {
	result := ComputeFormAnalytics(analyticsForm(), nil)

	assert.Equal(t, 0, result.TotalSubmissions)
	assert.Len(t, result.Fields, 3)
	for _, f := range result.Fields {
		assert.Zero(t, f.Answered)
		assert.Zero(t, f.CompletionRate)
	}
	for _, s := range result.Sections {
		assert.Zero(t, s.EngagementRate)
	}
	assert.Contains(t, result.Insights, "no submissions yet")
}

func TestComputeFormAnalytics_Rates(t *testing.T) {
	subs := []models.FormSubmission{
		submissionAnswering(fieldID, fieldID2),
		submissionAnswering(fieldID),
		submissionAnswering(fieldID, strayID),
		submissionAnswering(fieldID),
	}

	result := ComputeFormAnalytics(analyticsForm(), subs)
	assert.Equal(t, 4, result.TotalSubmissions)

	byField := make(map[string]FieldStat)
	for _, f := range result.Fields {
		byField[f.FieldID] = f
	}
	assert.Equal(t, 4, byField[fieldID].Answered)
	assert.InDelta(t, 1.0, byField[fieldID].CompletionRate, 1e-9)
	assert.Equal(t, 1, byField[fieldID2].Answered)
	assert.InDelta(t, 0.25, byField[fieldID2].CompletionRate, 1e-9)
	assert.Equal(t, 1, byField[strayID].Answered)

	bySection := make(map[string]SectionStat)
	for _, s := range result.Sections {
		bySection[s.SectionID] = s
	}
	assert.Equal(t, 4, bySection[sectionID].Engaged)
	assert.InDelta(t, 1.0, bySection[sectionID].EngagementRate, 1e-9)
	assert.Equal(t, 1, bySection[sectionID2].Engaged)
	assert.InDelta(t, 0.25, bySection[sectionID2].EngagementRate, 1e-9)
}

func TestComputeFormAnalytics_DuplicateResponsesCountOnce(t *testing.T) {
	subs := []models.FormSubmission{submissionAnswering(fieldID, fieldID)}

	result := ComputeFormAnalytics(analyticsForm(), subs)
	byField := make(map[string]FieldStat)
	for _, f := range result.Fields {
		byField[f.FieldID] = f
	}
	assert.Equal(t, 1, byField[fieldID].Answered)
}

func TestComputeFormAnalytics_Insights(t *testing.T) {
	var subs []models.FormSubmission
	for i := 0; i < 20; i++ {
		subs = append(subs, submissionAnswering(fieldID))
	}

	result := ComputeFormAnalytics(analyticsForm(), subs)
	assert.Contains(t, result.Insights, `"Name" is answered by over 90% of submissions`)
	assert.Contains(t, result.Insights, "2 field(s) complete below 50%; consider shortening or reordering")
}
