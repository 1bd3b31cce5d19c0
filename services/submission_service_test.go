package services

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	"github.com/GDG-Vishnu/community-platform/dto"
	"github.com/GDG-Vishnu/community-platform/feed"
	"github.com/GDG-Vishnu/community-platform/models"
	"github.com/GDG-Vishnu/community-platform/repositories"
	"github.com/GDG-Vishnu/community-platform/repositories/mock_repositories"
)

// --------------------- Setup ---------------------
func setupSubmissionServiceMocks(t *testing.T) (*SubmissionService,
	*mock_repositories.MockFormRepo,
	*mock_repositories.MockSubmissionRepo,
	*feed.Broker) {

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockForm := mock_repositories.NewMockFormRepo(ctrl)
	mockSubmission := mock_repositories.NewMockSubmissionRepo(ctrl)
	repos := &repositories.Repos{
		Form:       mockForm,
		Submission: mockSubmission,
	}
	broker := feed.NewBroker()
	svc := NewSubmissionService(repos, NewAuthzService(repos), broker)
	return svc, mockForm, mockSubmission, broker
}

func activeFormTree() *models.Form {
	form := publishableForm()
	form.IsActive = true
	return form
}

// --------------------- SubmitForm ---------------------
func TestSubmitForm_InactiveFormRejected(t *testing.T) {
	svc, mockForm, _, _ := setupSubmissionServiceMocks(t)

	mockForm.EXPECT().FindTree(formID).Return(publishableForm(), nil)

	_, err := svc.SubmitForm(nil, dto.SubmitFormDTO{FormID: formID})
	assert.ErrorIs(t, err, ErrFormInactive)
}

func TestSubmitForm_StrayFieldRejectsWholeSubmission(t *testing.T) {
	svc, mockForm, _, _ := setupSubmissionServiceMocks(t)

	mockForm.EXPECT().FindTree(formID).Return(activeFormTree(), nil)

	_, err := svc.SubmitForm(nil, dto.SubmitFormDTO{
		FormID: formID,
		Responses: []dto.FieldResponseInputDTO{
			{FieldID: fieldID, Value: datatypes.JSON(`"Ada"`)},
			{FieldID: strayID, Value: datatypes.JSON(`"oops"`)},
		},
	})
	assert.ErrorIs(t, err, ErrFieldNotInForm)
}

func TestSubmitForm_AnonymousAccepted(t *testing.T) {
	svc, mockForm, mockSubmission, _ := setupSubmissionServiceMocks(t)

	mockForm.EXPECT().FindTree(formID).Return(activeFormTree(), nil)
	mockSubmission.EXPECT().Create(gomock.Any()).Return(nil)

	sub, err := svc.SubmitForm(nil, dto.SubmitFormDTO{
		FormID: formID,
		Responses: []dto.FieldResponseInputDTO{
			{FieldID: fieldID, Value: datatypes.JSON(`"Ada"`)},
		},
	})
	assert.NoError(t, err)
	assert.Nil(t, sub.SubmittedBy)
	assert.Len(t, sub.Responses, 1)
}

func TestSubmitForm_PublishesToFeed(t *testing.T) {
	svc, mockForm, mockSubmission, broker := setupSubmissionServiceMocks(t)

	events, cancel := broker.Subscribe(formID)
	defer cancel()

	mockForm.EXPECT().FindTree(formID).Return(activeFormTree(), nil)
	mockSubmission.EXPECT().Create(gomock.Any()).DoAndReturn(func(s *models.FormSubmission) error {
		s.ID = "sub-1"
		return nil
	})

	_, err := svc.SubmitForm(adminClaims(), dto.SubmitFormDTO{
		FormID: formID,
		Responses: []dto.FieldResponseInputDTO{
			{FieldID: fieldID, Value: datatypes.JSON(`"Ada"`)},
		},
	})
	assert.NoError(t, err)

	select {
	case evt := <-events:
		assert.Equal(t, formID, evt.FormID)
		assert.Equal(t, "sub-1", evt.SubmissionID)
	case <-time.After(time.Second):
		t.Fatal("no submission event delivered")
	}
}

// --------------------- Reading back ---------------------
func TestListSubmissions_MemberRejected(t *testing.T) {
	svc, _, _, _ := setupSubmissionServiceMocks(t)

	_, err := svc.ListSubmissions(memberClaims(), formID)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGetSubmission_AuthorizedThroughOwningForm(t *testing.T) {
	svc, mockForm, mockSubmission, _ := setupSubmissionServiceMocks(t)

	mockSubmission.EXPECT().FindByID("sub-1").Return(&models.FormSubmission{ID: "sub-1", FormID: formID}, nil)
	mockForm.EXPECT().FindByID(formID).Return(&models.Form{ID: formID, CreatedBy: "coord-1"}, nil)

	_, err := svc.GetSubmission(coordinatorClaims("coord-2"), "sub-1")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestResetFormSubmissions(t *testing.T) {
	svc, mockForm, mockSubmission, _ := setupSubmissionServiceMocks(t)

	mockForm.EXPECT().FindByID(formID).Return(&models.Form{ID: formID, CreatedBy: adminID}, nil)
	mockSubmission.EXPECT().DeleteByForm(formID).Return(nil)

	assert.NoError(t, svc.ResetFormSubmissions(adminClaims(), formID))
}
