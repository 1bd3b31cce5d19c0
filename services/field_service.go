package services

import (
	"fmt"

	"github.com/GDG-Vishnu/community-platform/dto"
	"github.com/GDG-Vishnu/community-platform/models"
	"github.com/GDG-Vishnu/community-platform/repositories"
	"github.com/GDG-Vishnu/community-platform/revalidate"
	"github.com/GDG-Vishnu/community-platform/types"
)

type FieldService struct {
	repos    *repositories.Repos
	authz    *AuthzService
	notifier revalidate.Notifier
}

func NewFieldService(repos *repositories.Repos, authz *AuthzService, notifier revalidate.Notifier) *FieldService {
	return &FieldService{repos: repos, authz: authz, notifier: notifier}
}

var fieldTypes = map[models.FieldType]struct{}{
	models.FieldTypeText:        {},
	models.FieldTypeTextarea:    {},
	models.FieldTypeEmail:       {},
	models.FieldTypePhone:       {},
	models.FieldTypeNumber:      {},
	models.FieldTypeSelect:      {},
	models.FieldTypeMultiSelect: {},
	models.FieldTypeRadio:       {},
	models.FieldTypeCheckbox:    {},
	models.FieldTypeDate:        {},
	models.FieldTypeTime:        {},
	models.FieldTypeFile:        {},
	models.FieldTypeSignature:   {},
	models.FieldTypeSlider:      {},
	models.FieldTypeRating:      {},
}

func parseFieldType(raw string) (models.FieldType, error) {
	t := models.FieldType(raw)
	if _, ok := fieldTypes[t]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidFieldType, raw)
	}
	return t, nil
}

func (s *FieldService) CreateField(claims *types.Claims, input dto.CreateFieldDTO) (*models.Field, error) {
	section, _, err := s.authz.AuthorizeSection(claims, input.SectionID)
	if err != nil {
		return nil, err
	}
	fieldType, err := parseFieldType(input.Type)
	if err != nil {
		return nil, err
	}

	order := 0
	if input.Order != nil {
		order = *input.Order
	} else {
		max, err := s.repos.Field.MaxOrder(input.SectionID)
		if err != nil {
			return nil, err
		}
		order = max + 1
	}

	field := &models.Field{
		SectionID:    input.SectionID,
		Label:        input.Label,
		Placeholder:  input.Placeholder,
		Type:         fieldType,
		Required:     input.Required,
		Order:        order,
		Options:      input.Options,
		DefaultValue: input.DefaultValue,
		Validation:   input.Validation,
		Styling:      input.Styling,
		Logic:        input.Logic,
	}
	if err := s.repos.Field.Create(field); err != nil {
		return nil, err
	}
	s.notifier.Notify(formPages(section.FormID)...)
	return field, nil
}

func (s *FieldService) GetSectionFields(claims *types.Claims, sectionID string) ([]models.Field, error) {
	if _, _, err := s.authz.AuthorizeSection(claims, sectionID); err != nil {
		return nil, err
	}
	return s.repos.Field.ListBySection(sectionID)
}

func (s *FieldService) UpdateField(claims *types.Claims, fieldID string, input dto.UpdateFieldDTO) (*models.Field, error) {
	field, section, _, err := s.authz.AuthorizeField(claims, fieldID)
	if err != nil {
		return nil, err
	}
	if input.Label != nil {
		field.Label = *input.Label
	}
	if input.Placeholder != nil {
		field.Placeholder = input.Placeholder
	}
	if input.Type != nil {
		fieldType, err := parseFieldType(*input.Type)
		if err != nil {
			return nil, err
		}
		field.Type = fieldType
	}
	if input.Required != nil {
		field.Required = *input.Required
	}
	if input.Order != nil {
		field.Order = *input.Order
	}
	if input.Options != nil {
		field.Options = input.Options
	}
	if input.DefaultValue != nil {
		field.DefaultValue = input.DefaultValue
	}
	if input.Validation != nil {
		field.Validation = input.Validation
	}
	if input.Styling != nil {
		field.Styling = input.Styling
	}
	if input.Logic != nil {
		field.Logic = input.Logic
	}
	if err := s.repos.Field.Update(field); err != nil {
		return nil, err
	}
	s.notifier.Notify(formPages(section.FormID)...)
	return field, nil
}

func (s *FieldService) DeleteField(claims *types.Claims, fieldID string) error {
	_, section, _, err := s.authz.AuthorizeField(claims, fieldID)
	if err != nil {
		return err
	}
	if err := s.repos.Field.Delete(fieldID); err != nil {
		return err
	}
	s.notifier.Notify(formPages(section.FormID)...)
	return nil
}

// DuplicateField appends a copy of the field to its own section.
func (s *FieldService) DuplicateField(claims *types.Claims, fieldID string) (*models.Field, error) {
	field, section, _, err := s.authz.AuthorizeField(claims, fieldID)
	if err != nil {
		return nil, err
	}
	max, err := s.repos.Field.MaxOrder(field.SectionID)
	if err != nil {
		return nil, err
	}
	copy := &models.Field{
		SectionID:    field.SectionID,
		Label:        field.Label + " (copy)",
		Placeholder:  field.Placeholder,
		Type:         field.Type,
		Required:     field.Required,
		Order:        max + 1,
		Options:      field.Options,
		DefaultValue: field.DefaultValue,
		Validation:   field.Validation,
		Styling:      field.Styling,
		Logic:        field.Logic,
	}
	if err := s.repos.Field.Create(copy); err != nil {
		return nil, err
	}
	s.notifier.Notify(formPages(section.FormID)...)
	return copy, nil
}

// ReorderFields rejects the whole request if any listed field escapes the
// claimed section; no partial reorder is ever observable.
func (s *FieldService) ReorderFields(claims *types.Claims, input dto.ReorderFieldsDTO) error {
	section, _, err := s.authz.AuthorizeSection(claims, input.SectionID)
	if err != nil {
		return err
	}

	fields, err := s.repos.Field.ListBySection(input.SectionID)
	if err != nil {
		return err
	}
	owned := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		owned[f.ID] = struct{}{}
	}

	updates := make([]repositories.OrderUpdate, 0, len(input.Fields))
	for _, pair := range input.Fields {
		if _, ok := owned[pair.ID]; !ok {
			return fmt.Errorf("%w: field %s is not part of section %s", ErrScopeMismatch, pair.ID, input.SectionID)
		}
		updates = append(updates, repositories.OrderUpdate{ID: pair.ID, Order: pair.Order})
	}

	if err := s.repos.Field.Reorder(updates); err != nil {
		return err
	}
	s.notifier.Notify(formPages(section.FormID)...)
	return nil
}

// MoveField relocates a field to a sibling section. Destination must belong
// to the same form; order is caller-supplied or appended.
func (s *FieldService) MoveField(claims *types.Claims, fieldID string, input dto.MoveFieldDTO) (*models.Field, error) {
	field, sourceSection, _, err := s.authz.AuthorizeField(claims, fieldID)
	if err != nil {
		return nil, err
	}
	destSection, err := s.repos.Section.FindByID(input.NewSectionID)
	if err != nil {
		return nil, err
	}
	if destSection.FormID != sourceSection.FormID {
		return nil, ErrFormMismatch
	}

	order := 0
	if input.NewOrder != nil {
		order = *input.NewOrder
	} else {
		max, err := s.repos.Field.MaxOrder(destSection.ID)
		if err != nil {
			return nil, err
		}
		order = max + 1
	}

	if err := s.repos.Field.Move(fieldID, destSection.ID, order); err != nil {
		return nil, err
	}
	field.SectionID = destSection.ID
	field.Order = order
	s.notifier.Notify(formPages(sourceSection.FormID)...)
	return field, nil
}
