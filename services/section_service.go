package services

import (
	"fmt"

	"github.com/GDG-Vishnu/community-platform/dto"
	"github.com/GDG-Vishnu/community-platform/models"
	"github.com/GDG-Vishnu/community-platform/repositories"
	"github.com/GDG-Vishnu/community-platform/revalidate"
	"github.com/GDG-Vishnu/community-platform/types"
)

type SectionService struct {
	repos    *repositories.Repos
	authz    *AuthzService
	notifier revalidate.Notifier
}

func NewSectionService(repos *repositories.Repos, authz *AuthzService, notifier revalidate.Notifier) *SectionService {
	return &SectionService{repos: repos, authz: authz, notifier: notifier}
}

// CreateSection appends at max(order)+1 unless the caller supplied an order.
// A missing title defaults to "Section N" by live count.
func (s *SectionService) CreateSection(claims *types.Claims, input dto.CreateSectionDTO) (*models.Section, error) {
	if _, err := s.authz.AuthorizeForm(claims, input.FormID); err != nil {
		return nil, err
	}

	order := 0
	if input.Order != nil {
		order = *input.Order
	} else {
		max, err := s.repos.Section.MaxOrder(input.FormID)
		if err != nil {
			return nil, err
		}
		order = max + 1
	}

	title := input.Title
	if title == nil {
		count, err := s.repos.Section.CountByForm(input.FormID)
		if err != nil {
			return nil, err
		}
		generated := fmt.Sprintf("Section %d", count+1)
		title = &generated
	}

	section := &models.Section{
		FormID: input.FormID,
		Title:  title,
		Order:  order,
	}
	if err := s.repos.Section.Create(section); err != nil {
		return nil, err
	}
	s.notifier.Notify(formPages(input.FormID)...)
	return section, nil
}

func (s *SectionService) GetSection(claims *types.Claims, sectionID string) (*models.Section, error) {
	if _, _, err := s.authz.AuthorizeSection(claims, sectionID); err != nil {
		return nil, err
	}
	return s.repos.Section.FindWithFields(sectionID)
}

func (s *SectionService) UpdateSection(claims *types.Claims, sectionID string, input dto.UpdateSectionDTO) (*models.Section, error) {
	section, _, err := s.authz.AuthorizeSection(claims, sectionID)
	if err != nil {
		return nil, err
	}
	if input.Title != nil {
		section.Title = input.Title
	}
	if input.Order != nil {
		section.Order = *input.Order
	}
	if err := s.repos.Section.Update(section); err != nil {
		return nil, err
	}
	s.notifier.Notify(formPages(section.FormID)...)
	return section, nil
}

// DeleteSection refuses to remove a form's only section. The count is taken
// from live rows at call time.
func (s *SectionService) DeleteSection(claims *types.Claims, sectionID string) error {
	section, _, err := s.authz.AuthorizeSection(claims, sectionID)
	if err != nil {
		return err
	}
	count, err := s.repos.Section.CountByForm(section.FormID)
	if err != nil {
		return err
	}
	if count <= 1 {
		return ErrLastSection
	}
	if err := s.repos.Section.Delete(sectionID); err != nil {
		return err
	}
	s.notifier.Notify(formPages(section.FormID)...)
	return nil
}

// ReorderSections verifies every listed section belongs to the claimed form
// before anything is written, then applies the whole list atomically.
func (s *SectionService) ReorderSections(claims *types.Claims, input dto.ReorderSectionsDTO) error {
	if _, err := s.authz.AuthorizeForm(claims, input.FormID); err != nil {
		return err
	}

	sections, err := s.repos.Section.ListByForm(input.FormID)
	if err != nil {
		return err
	}
	owned := make(map[string]struct{}, len(sections))
	for _, sec := range sections {
		owned[sec.ID] = struct{}{}
	}

	updates := make([]repositories.OrderUpdate, 0, len(input.Sections))
	for _, pair := range input.Sections {
		if _, ok := owned[pair.ID]; !ok {
			return fmt.Errorf("%w: section %s is not part of form %s", ErrScopeMismatch, pair.ID, input.FormID)
		}
		updates = append(updates, repositories.OrderUpdate{ID: pair.ID, Order: pair.Order})
	}

	if err := s.repos.Section.Reorder(updates); err != nil {
		return err
	}
	s.notifier.Notify(formPages(input.FormID)...)
	return nil
}

// DuplicateSection copies the section and its fields into the same form at
// the appended order.
func (s *SectionService) DuplicateSection(claims *types.Claims, sectionID string) (*models.Section, error) {
	section, _, err := s.authz.AuthorizeSection(claims, sectionID)
	if err != nil {
		return nil, err
	}
	source, err := s.repos.Section.FindWithFields(sectionID)
	if err != nil {
		return nil, err
	}
	max, err := s.repos.Section.MaxOrder(section.FormID)
	if err != nil {
		return nil, err
	}

	copy := &models.Section{
		FormID: section.FormID,
		Title:  copiedTitle(source.Title),
		Order:  max + 1,
	}
	for _, field := range source.Fields {
		copy.Fields = append(copy.Fields, models.Field{
			Label:        field.Label,
			Placeholder:  field.Placeholder,
			Type:         field.Type,
			Required:     field.Required,
			Order:        field.Order,
			Options:      field.Options,
			DefaultValue: field.DefaultValue,
			Validation:   field.Validation,
			Styling:      field.Styling,
			Logic:        field.Logic,
		})
	}
	if err := s.repos.Section.Create(copy); err != nil {
		return nil, err
	}
	s.notifier.Notify(formPages(section.FormID)...)
	return copy, nil
}

func copiedTitle(title *string) *string {
	if title == nil {
		return nil
	}
	copied := *title + " (copy)"
	return &copied
}
