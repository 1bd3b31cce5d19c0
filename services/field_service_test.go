package services

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/GDG-Vishnu/community-platform/dto"
	"github.com/GDG-Vishnu/community-platform/models"
	"github.com/GDG-Vishnu/community-platform/repositories"
	"github.com/GDG-Vishnu/community-platform/repositories/mock_repositories"
	"github.com/GDG-Vishnu/community-platform/revalidate"
)

const (
	fieldID     = "55555555-5555-5555-5555-555555555555"
	fieldID2    = "66666666-6666-6666-6666-666666666666"
	otherFormID = "77777777-7777-7777-7777-777777777777"
)

// --------------------- Setup ---------------------
func setupFieldServiceMocks(t *testing.T) (*FieldService,
	*mock_repositories.MockFormRepo,
	*mock_repositories.MockSectionRepo,
	*mock_repositories.MockFieldRepo) {

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockForm := mock_repositories.NewMockFormRepo(ctrl)
	mockSection := mock_repositories.NewMockSectionRepo(ctrl)
	mockField := mock_repositories.NewMockFieldRepo(ctrl)
	repos := &repositories.Repos{
		Form:    mockForm,
		Section: mockSection,
		Field:   mockField,
	}
	svc := NewFieldService(repos, NewAuthzService(repos), revalidate.Noop{})
	return svc, mockForm, mockSection, mockField
}

func expectSectionAuthorized(mockForm *mock_repositories.MockFormRepo, mockSection *mock_repositories.MockSectionRepo) {
	mockSection.EXPECT().FindByID(sectionID).Return(&models.Section{ID: sectionID, FormID: formID}, nil)
	mockForm.EXPECT().FindByID(formID).Return(&models.Form{ID: formID, CreatedBy: adminID}, nil)
}

// --------------------- CreateField ---------------------
func TestCreateField_AppendsAfterHighestOrder(t *testing.T) {
	svc, mockForm, mockSection, mockField := setupFieldServiceMocks(t)

	expectSectionAuthorized(mockForm, mockSection)
	mockField.EXPECT().MaxOrder(sectionID).Return(4, nil)
	mockField.EXPECT().Create(gomock.Any()).Return(nil)

	field, err := svc.CreateField(adminClaims(), dto.CreateFieldDTO{
		SectionID: sectionID,
		Label:     "Email",
		Type:      "email",
	})
	assert.NoError(t, err)
	assert.Equal(t, 5, field.Order)
	assert.Equal(t, models.FieldTypeEmail, field.Type)
}

func TestCreateField_UnknownType(t *testing.T) {
	svc, mockForm, mockSection, _ := setupFieldServiceMocks(t)

	expectSectionAuthorized(mockForm, mockSection)

	_, err := svc.CreateField(adminClaims(), dto.CreateFieldDTO{
		SectionID: sectionID,
		Label:     "Broken",
		Type:      "hologram",
	})
	assert.ErrorIs(t, err, ErrInvalidFieldType)
}

// --------------------- ReorderFields ---------------------
func TestReorderFields_RejectsForeignField(t *testing.T) {
	svc, mockForm, mockSection, mockField := setupFieldServiceMocks(t)

	expectSectionAuthorized(mockForm, mockSection)
	mockField.EXPECT().ListBySection(sectionID).Return([]models.Field{
		{ID: fieldID, SectionID: sectionID},
	}, nil)

	err := svc.ReorderFields(adminClaims(), dto.ReorderFieldsDTO{
		SectionID: sectionID,
		Fields: []dto.OrderPairDTO{
			{ID: fieldID, Order: 0},
			{ID: strayID, Order: 1},
		},
	})
	assert.ErrorIs(t, err, ErrScopeMismatch)
}

func TestReorderFields_Success(t *testing.T) {
	svc, mockForm, mockSection, mockField := setupFieldServiceMocks(t)

	expectSectionAuthorized(mockForm, mockSection)
	mockField.EXPECT().ListBySection(sectionID).Return([]models.Field{
		{ID: fieldID, SectionID: sectionID, Order: 0},
		{ID: fieldID2, SectionID: sectionID, Order: 1},
	}, nil)
	mockField.EXPECT().Reorder([]repositories.OrderUpdate{
		{ID: fieldID2, Order: 0},
		{ID: fieldID, Order: 1},
	}).Return(nil)

	err := svc.ReorderFields(adminClaims(), dto.ReorderFieldsDTO{
		SectionID: sectionID,
		Fields: []dto.OrderPairDTO{
			{ID: fieldID2, Order: 0},
			{ID: fieldID, Order: 1},
		},
	})
	assert.NoError(t, err)
}

// --------------------- MoveField ---------------------
func TestMoveField_AcrossFormsRejected(t *testing.T) {
	svc, mockForm, mockSection, mockField := setupFieldServiceMocks(t)

	mockField.EXPECT().FindByID(fieldID).Return(&models.Field{ID: fieldID, SectionID: sectionID}, nil)
	expectSectionAuthorized(mockForm, mockSection)
	mockSection.EXPECT().FindByID(sectionID2).Return(&models.Section{ID: sectionID2, FormID: otherFormID}, nil)

	_, err := svc.MoveField(adminClaims(), fieldID, dto.MoveFieldDTO{NewSectionID: sectionID2})
	assert.ErrorIs(t, err, ErrFormMismatch)
}

func TestMoveField_AppendsInDestination(t *testing.T) {
	svc, mockForm, mockSection, mockField := setupFieldServiceMocks(t)

	mockField.EXPECT().FindByID(fieldID).Return(&models.Field{ID: fieldID, SectionID: sectionID, Order: 0}, nil)
	expectSectionAuthorized(mockForm, mockSection)
	mockSection.EXPECT().FindByID(sectionID2).Return(&models.Section{ID: sectionID2, FormID: formID}, nil)
	mockField.EXPECT().MaxOrder(sectionID2).Return(1, nil)
	mockField.EXPECT().Move(fieldID, sectionID2, 2).Return(nil)

	moved, err := svc.MoveField(adminClaims(), fieldID, dto.MoveFieldDTO{NewSectionID: sectionID2})
	assert.NoError(t, err)
	assert.Equal(t, sectionID2, moved.SectionID)
	assert.Equal(t, 2, moved.Order)
}

// --------------------- DuplicateField ---------------------
func TestDuplicateField_AppendsCopy(t *testing.T) {
	svc, mockForm, mockSection, mockField := setupFieldServiceMocks(t)

	mockField.EXPECT().FindByID(fieldID).Return(&models.Field{
		ID:        fieldID,
		SectionID: sectionID,
		Label:     "Phone",
		Type:      models.FieldTypePhone,
		Order:     1,
	}, nil)
	expectSectionAuthorized(mockForm, mockSection)
	mockField.EXPECT().MaxOrder(sectionID).Return(3, nil)
	mockField.EXPECT().Create(gomock.Any()).Return(nil)

	copy, err := svc.DuplicateField(adminClaims(), fieldID)
	assert.NoError(t, err)
	assert.Equal(t, "Phone (copy)", copy.Label)
	assert.Equal(t, 4, copy.Order)
	assert.Empty(t, copy.ID)
}
