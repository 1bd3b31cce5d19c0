package services

import (
	"fmt"

	"github.com/GDG-Vishnu/community-platform/models"
	"github.com/GDG-Vishnu/community-platform/repositories"
	"github.com/GDG-Vishnu/community-platform/types"
)

type FieldStat struct {
	FieldID        string  `json:"field_id"`
	SectionID      string  `json:"section_id"`
	Label          string  `json:"label"`
	Answered       int     `json:"answered"`
	CompletionRate float64 `json:"completion_rate"`
}

type SectionStat struct {
	SectionID      string  `json:"section_id"`
	Title          string  `json:"title"`
	Engaged        int     `json:"engaged"`
	EngagementRate float64 `json:"engagement_rate"`
}

type FormAnalytics struct {
	FormID           string        `json:"form_id"`
	TotalSubmissions int           `json:"total_submissions"`
	Fields           []FieldStat   `json:"fields"`
	Sections         []SectionStat `json:"sections"`
	Insights         []string      `json:"insights"`
}

type AnalyticsService struct {
	repos *repositories.Repos
	authz *AuthzService
}

func NewAnalyticsService(repos *repositories.Repos, authz *AuthzService) *AnalyticsService {
	return &AnalyticsService{repos: repos, authz: authz}
}

func (s *AnalyticsService) GetFormAnalytics(claims *types.Claims, formID string) (*FormAnalytics, error) {
	if _, err := s.authz.AuthorizeForm(claims, formID); err != nil {
		return nil, err
	}
	form, err := s.repos.Form.FindTree(formID)
	if err != nil {
		return nil, err
	}
	submissions, err := s.repos.Submission.ListByForm(formID)
	if err != nil {
		return nil, err
	}
	return ComputeFormAnalytics(form, submissions), nil
}

// ComputeFormAnalytics derives completion and engagement statistics from
// already-loaded data. Nothing is persisted; the result is recomputed on
// every request.
//
// A field counts as completed by a submission when the submission carries at
// least one response for it. A section counts as engaged when any of its
// fields was answered, so the section rate measures reach, not completeness.
func ComputeFormAnalytics(form *models.Form, submissions []models.FormSubmission) *FormAnalytics {
	total := len(submissions)

	// submissions answering each field
	answered := make(map[string]int)
	for _, sub := range submissions {
		seen := make(map[string]struct{})
		for _, resp := range sub.Responses {
			if _, done := seen[resp.FieldID]; done {
				continue
			}
			seen[resp.FieldID] = struct{}{}
			answered[resp.FieldID]++
		}
	}

	analytics := &FormAnalytics{FormID: form.ID, TotalSubmissions: total}

	lowFields := 0
	for _, section := range form.Sections {
		engagedPerSub := 0
		if total > 0 {
			for _, sub := range submissions {
				if submissionTouchesSection(sub, section) {
					engagedPerSub++
				}
			}
		}

		stat := SectionStat{SectionID: section.ID, Engaged: engagedPerSub}
		if section.Title != nil {
			stat.Title = *section.Title
		}
		if total > 0 {
			stat.EngagementRate = float64(engagedPerSub) / float64(total)
		}
		analytics.Sections = append(analytics.Sections, stat)

		for _, field := range section.Fields {
			fieldStat := FieldStat{
				FieldID:   field.ID,
				SectionID: section.ID,
				Label:     field.Label,
				Answered:  answered[field.ID],
			}
			if total > 0 {
				fieldStat.CompletionRate = float64(answered[field.ID]) / float64(total)
			}
			analytics.Fields = append(analytics.Fields, fieldStat)

			if total > 0 && fieldStat.CompletionRate < 0.5 {
				lowFields++
			}
			if total > 0 && fieldStat.CompletionRate > 0.9 {
				analytics.Insights = append(analytics.Insights,
					fmt.Sprintf("%q is answered by over 90%% of submissions", field.Label))
			}
		}
	}

	switch {
	case total == 0:
		analytics.Insights = append(analytics.Insights, "no submissions yet")
	case total < 10:
		analytics.Insights = append(analytics.Insights,
			fmt.Sprintf("only %d submissions so far; rates are not yet meaningful", total))
	case total >= 100:
		analytics.Insights = append(analytics.Insights,
			fmt.Sprintf("%d submissions collected; rates are statistically solid", total))
	}
	if lowFields > 0 {
		analytics.Insights = append(analytics.Insights,
			fmt.Sprintf("%d field(s) complete below 50%%; consider shortening or reordering", lowFields))
	}

	return analytics
}

func submissionTouchesSection(sub models.FormSubmission, section models.Section) bool {
	fields := make(map[string]struct{}, len(section.Fields))
	for _, f := range section.Fields {
		fields[f.ID] = struct{}{}
	}
	for _, resp := range sub.Responses {
		if _, ok := fields[resp.FieldID]; ok {
			return true
		}
	}
	return false
}
