package services

import (
	"fmt"

	"github.com/GDG-Vishnu/community-platform/dto"
	"github.com/GDG-Vishnu/community-platform/feed"
	"github.com/GDG-Vishnu/community-platform/models"
	"github.com/GDG-Vishnu/community-platform/repositories"
	"github.com/GDG-Vishnu/community-platform/types"
)

type SubmissionService struct {
	repos  *repositories.Repos
	authz  *AuthzService
	broker *feed.Broker
}

func NewSubmissionService(repos *repositories.Repos, authz *AuthzService, broker *feed.Broker) *SubmissionService {
	return &SubmissionService{repos: repos, authz: authz, broker: broker}
}

// SubmitForm records one fill-out of an active form. Every response must
// reference a field of that form; a single stray field ID rejects the whole
// submission before any row is written. Claims may be nil for anonymous
// submitters.
func (s *SubmissionService) SubmitForm(claims *types.Claims, input dto.SubmitFormDTO) (*models.FormSubmission, error) {
	form, err := s.repos.Form.FindTree(input.FormID)
	if err != nil {
		return nil, err
	}
	if !form.IsActive {
		return nil, ErrFormInactive
	}

	formFields := make(map[string]struct{})
	for _, section := range form.Sections {
		for _, field := range section.Fields {
			formFields[field.ID] = struct{}{}
		}
	}

	submission := &models.FormSubmission{FormID: input.FormID}
	if claims != nil {
		submission.SubmittedBy = &claims.UserID
	}
	for _, resp := range input.Responses {
		if _, ok := formFields[resp.FieldID]; !ok {
			return nil, fmt.Errorf("%w: field %s", ErrFieldNotInForm, resp.FieldID)
		}
		submission.Responses = append(submission.Responses, models.FieldResponse{
			FieldID: resp.FieldID,
			Value:   resp.Value,
		})
	}

	if err := s.repos.Submission.Create(submission); err != nil {
		return nil, err
	}
	s.broker.Publish(feed.SubmissionEvent{
		FormID:       submission.FormID,
		SubmissionID: submission.ID,
		SubmittedAt:  submission.SubmittedAt,
	})
	return submission, nil
}

func (s *SubmissionService) ListSubmissions(claims *types.Claims, formID string) ([]models.FormSubmission, error) {
	if _, err := s.authz.AuthorizeForm(claims, formID); err != nil {
		return nil, err
	}
	return s.repos.Submission.ListByForm(formID)
}

func (s *SubmissionService) GetSubmission(claims *types.Claims, submissionID string) (*models.FormSubmission, error) {
	submission, err := s.repos.Submission.FindByID(submissionID)
	if err != nil {
		return nil, err
	}
	if _, err := s.authz.AuthorizeForm(claims, submission.FormID); err != nil {
		return nil, err
	}
	return submission, nil
}

func (s *SubmissionService) DeleteSubmission(claims *types.Claims, submissionID string) error {
	submission, err := s.repos.Submission.FindByID(submissionID)
	if err != nil {
		return err
	}
	if _, err := s.authz.AuthorizeForm(claims, submission.FormID); err != nil {
		return err
	}
	return s.repos.Submission.Delete(submissionID)
}

// ResetFormSubmissions drops every submission and response of one form.
func (s *SubmissionService) ResetFormSubmissions(claims *types.Claims, formID string) error {
	if _, err := s.authz.AuthorizeForm(claims, formID); err != nil {
		return err
	}
	return s.repos.Submission.DeleteByForm(formID)
}
