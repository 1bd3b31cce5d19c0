package services

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	"github.com/GDG-Vishnu/community-platform/dto"
	"github.com/GDG-Vishnu/community-platform/models"
	"github.com/GDG-Vishnu/community-platform/repositories"
	"github.com/GDG-Vishnu/community-platform/repositories/mock_repositories"
	"github.com/GDG-Vishnu/community-platform/revalidate"
	"github.com/GDG-Vishnu/community-platform/types"
)

func coordinatorClaims(userID string) *types.Claims {
	return &types.Claims{UserID: userID, Username: "coord", Role: string(models.UserRoleCoordinator)}
}

// --------------------- Setup ---------------------
func setupFormServiceMocks(t *testing.T) (*FormService,
	*mock_repositories.MockFormRepo,
	*mock_repositories.MockSubmissionRepo) {

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockForm := mock_repositories.NewMockFormRepo(ctrl)
	mockSubmission := mock_repositories.NewMockSubmissionRepo(ctrl)
	repos := &repositories.Repos{
		Form:       mockForm,
		Submission: mockSubmission,
	}
	svc := NewFormService(repos, NewAuthzService(repos), revalidate.Noop{})
	return svc, mockForm, mockSubmission
}

func publishableForm() *models.Form {
	return &models.Form{
		ID:        formID,
		Name:      "Recruitment 2026",
		CreatedBy: adminID,
		Sections: []models.Section{
			{
				ID:     sectionID,
				FormID: formID,
				Title:  ptrString("Basics"),
				Fields: []models.Field{
					{ID: fieldID, SectionID: sectionID, Label: "Name", Type: models.FieldTypeText},
				},
			},
		},
	}
}

// --------------------- CreateForm ---------------------
func TestCreateForm_SeedsInitialSection(t *testing.T) {
	svc, mockForm, _ := setupFormServiceMocks(t)

	mockForm.EXPECT().Create(gomock.Any()).DoAndReturn(func(f *models.Form) error {
		f.ID = formID
		return nil
	})

	form, err := svc.CreateForm(adminClaims(), dto.CreateFormDTO{Name: "Recruitment 2026"})
	assert.NoError(t, err)
	assert.Equal(t, adminID, form.CreatedBy)
	assert.Len(t, form.Sections, 1)
	assert.Equal(t, "Section 1", *form.Sections[0].Title)
	assert.Equal(t, 0, form.Sections[0].Order)
	assert.False(t, form.IsActive)
}

func TestCreateForm_MemberRejected(t *testing.T) {
	svc, _, _ := setupFormServiceMocks(t)

	_, err := svc.CreateForm(memberClaims(), dto.CreateFormDTO{Name: "nope"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// --------------------- Ownership ---------------------
func TestAuthorizeForm_CoordinatorOwnFormOnly(t *testing.T) {
	svc, mockForm, _ := setupFormServiceMocks(t)

	owner := coordinatorClaims("coord-1")
	mockForm.EXPECT().FindByID(formID).Return(&models.Form{ID: formID, CreatedBy: "coord-1"}, nil)
	mockForm.EXPECT().Delete(formID).Return(nil)
	assert.NoError(t, svc.DeleteForm(owner, formID))

	intruder := coordinatorClaims("coord-2")
	mockForm.EXPECT().FindByID(formID).Return(&models.Form{ID: formID, CreatedBy: "coord-1"}, nil)
	assert.ErrorIs(t, svc.DeleteForm(intruder, formID), ErrUnauthorized)
}

// --------------------- PublishForm ---------------------
func TestPublishForm_StructureIssuesBlockActivation(t *testing.T) {
	svc, mockForm, _ := setupFormServiceMocks(t)

	broken := publishableForm()
	broken.Sections[0].Fields[0].Type = models.FieldTypeSelect
	broken.Sections[0].Fields[0].Options = nil

	mockForm.EXPECT().FindByID(formID).Return(&models.Form{ID: formID, CreatedBy: adminID}, nil)
	mockForm.EXPECT().FindTree(formID).Return(broken, nil)

	issues, err := svc.PublishForm(adminClaims(), formID, true)
	assert.NoError(t, err)
	assert.NotEmpty(t, issues)
}

func TestPublishForm_ActivatesValidForm(t *testing.T) {
	svc, mockForm, _ := setupFormServiceMocks(t)

	mockForm.EXPECT().FindByID(formID).Return(&models.Form{ID: formID, CreatedBy: adminID}, nil)
	mockForm.EXPECT().FindTree(formID).Return(publishableForm(), nil)
	mockForm.EXPECT().SetActive(formID, true).Return(nil)

	issues, err := svc.PublishForm(adminClaims(), formID, true)
	assert.NoError(t, err)
	assert.Empty(t, issues)
}

func TestPublishForm_DeactivateSkipsValidation(t *testing.T) {
	svc, mockForm, _ := setupFormServiceMocks(t)

	mockForm.EXPECT().FindByID(formID).Return(&models.Form{ID: formID, CreatedBy: adminID}, nil)
	mockForm.EXPECT().SetActive(formID, false).Return(nil)

	issues, err := svc.PublishForm(adminClaims(), formID, false)
	assert.NoError(t, err)
	assert.Empty(t, issues)
}

// --------------------- GetPublicForm ---------------------
func TestGetPublicForm_InactiveHidden(t *testing.T) {
	svc, mockForm, _ := setupFormServiceMocks(t)

	mockForm.EXPECT().FindTree(formID).Return(&models.Form{ID: formID, IsActive: false}, nil)

	_, err := svc.GetPublicForm(formID)
	assert.ErrorIs(t, err, ErrFormInactive)
}

// --------------------- CloneForm ---------------------
func TestCloneForm_RemapsResponsesToNewFieldIDs(t *testing.T) {
	svc, mockForm, mockSubmission := setupFormServiceMocks(t)

	source := publishableForm()
	mockForm.EXPECT().FindByID(formID).Return(&models.Form{ID: formID, CreatedBy: adminID}, nil)
	mockForm.EXPECT().FindTree(formID).Return(source, nil)

	var created *models.Form
	mockForm.EXPECT().Create(gomock.Any()).DoAndReturn(func(f *models.Form) error {
		created = f
		return nil
	})

	mockSubmission.EXPECT().ListByForm(formID).Return([]models.FormSubmission{
		{
			ID:     "sub-1",
			FormID: formID,
			Responses: []models.FieldResponse{
				{FieldID: fieldID, Value: datatypes.JSON(`"Ada"`)},
				{FieldID: strayID, Value: datatypes.JSON(`"orphaned"`)},
			},
		},
	}, nil)

	var copied []models.FormSubmission
	mockSubmission.EXPECT().CreateBatch(gomock.Any()).DoAndReturn(func(subs []models.FormSubmission) error {
		copied = subs
		return nil
	})

	clone, err := svc.CloneForm(adminClaims(), formID, dto.CloneFormDTO{IncludeSubmissions: true})
	assert.NoError(t, err)
	assert.Equal(t, "Recruitment 2026 (copy)", clone.Name)
	assert.NotEqual(t, formID, clone.ID)
	assert.NotEqual(t, fieldID, created.Sections[0].Fields[0].ID)

	// the matched response follows the new field ID, the orphan is dropped
	assert.Len(t, copied, 1)
	assert.Len(t, copied[0].Responses, 1)
	assert.Equal(t, created.Sections[0].Fields[0].ID, copied[0].Responses[0].FieldID)
	assert.Equal(t, clone.ID, copied[0].FormID)
}

func TestCloneForm_CustomTitleWithoutSubmissions(t *testing.T) {
	svc, mockForm, _ := setupFormServiceMocks(t)

	mockForm.EXPECT().FindByID(formID).Return(&models.Form{ID: formID, CreatedBy: adminID}, nil)
	mockForm.EXPECT().FindTree(formID).Return(publishableForm(), nil)
	mockForm.EXPECT().Create(gomock.Any()).Return(nil)

	clone, err := svc.CloneForm(adminClaims(), formID, dto.CloneFormDTO{Title: ptrString("Recruitment 2027")})
	assert.NoError(t, err)
	assert.Equal(t, "Recruitment 2027", clone.Name)
}
