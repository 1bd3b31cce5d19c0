package services

import (
	"fmt"

	"github.com/GDG-Vishnu/community-platform/dto"
	"github.com/GDG-Vishnu/community-platform/models"
	"github.com/GDG-Vishnu/community-platform/repositories"
	"github.com/GDG-Vishnu/community-platform/revalidate"
	"github.com/GDG-Vishnu/community-platform/types"
)

var teamPages = []string{"/", "/about", "/team"}

type TeamService struct {
	repos    *repositories.Repos
	authz    *AuthzService
	notifier revalidate.Notifier
}

func NewTeamService(repos *repositories.Repos, authz *AuthzService, notifier revalidate.Notifier) *TeamService {
	return &TeamService{repos: repos, authz: authz, notifier: notifier}
}

func (s *TeamService) CreateMember(claims *types.Claims, input dto.CreateTeamMemberDTO) (*models.TeamMember, error) {
	if err := s.authz.RequireElevated(claims); err != nil {
		return nil, err
	}

	order := 0
	if input.Order != nil {
		order = *input.Order
	} else {
		max, err := s.repos.Team.MaxOrder()
		if err != nil {
			return nil, err
		}
		order = max + 1
	}

	member := &models.TeamMember{
		Name:      input.Name,
		RoleTitle: input.RoleTitle,
		PhotoURL:  input.PhotoURL,
		Socials:   input.Socials,
		Order:     order,
		Active:    true,
	}
	if input.Active != nil {
		member.Active = *input.Active
	}
	if err := s.repos.Team.Create(member); err != nil {
		return nil, err
	}
	s.notifier.Notify(teamPages...)
	return member, nil
}

// ListMembers returns the public roster (active only) unless the caller is
// elevated.
func (s *TeamService) ListMembers(claims *types.Claims) ([]models.TeamMember, error) {
	activeOnly := s.authz.RequireElevated(claims) != nil
	return s.repos.Team.List(activeOnly)
}

func (s *TeamService) UpdateMember(claims *types.Claims, memberID string, input dto.UpdateTeamMemberDTO) (*models.TeamMember, error) {
	if err := s.authz.RequireElevated(claims); err != nil {
		return nil, err
	}
	member, err := s.repos.Team.FindByID(memberID)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		member.Name = *input.Name
	}
	if input.RoleTitle != nil {
		member.RoleTitle = *input.RoleTitle
	}
	if input.PhotoURL != nil {
		member.PhotoURL = input.PhotoURL
	}
	if input.Socials != nil {
		member.Socials = input.Socials
	}
	if input.Order != nil {
		member.Order = *input.Order
	}
	if input.Active != nil {
		member.Active = *input.Active
	}
	if err := s.repos.Team.Update(member); err != nil {
		return nil, err
	}
	s.notifier.Notify(teamPages...)
	return member, nil
}

func (s *TeamService) DeleteMember(claims *types.Claims, memberID string) error {
	if err := s.authz.RequireElevated(claims); err != nil {
		return err
	}
	if _, err := s.repos.Team.FindByID(memberID); err != nil {
		return err
	}
	if err := s.repos.Team.Delete(memberID); err != nil {
		return err
	}
	s.notifier.Notify(teamPages...)
	return nil
}

// ReorderMembers applies roster ordering with the same all-or-nothing rule as
// the form builder.
func (s *TeamService) ReorderMembers(claims *types.Claims, input dto.ReorderTeamDTO) error {
	if err := s.authz.RequireElevated(claims); err != nil {
		return err
	}
	members, err := s.repos.Team.List(false)
	if err != nil {
		return err
	}
	known := make(map[string]struct{}, len(members))
	for _, m := range members {
		known[m.ID] = struct{}{}
	}
	updates := make([]repositories.OrderUpdate, 0, len(input.Members))
	for _, pair := range input.Members {
		if _, ok := known[pair.ID]; !ok {
			return fmt.Errorf("%w: team member %s", ErrScopeMismatch, pair.ID)
		}
		updates = append(updates, repositories.OrderUpdate{ID: pair.ID, Order: pair.Order})
	}
	if err := s.repos.Team.Reorder(updates); err != nil {
		return err
	}
	s.notifier.Notify(teamPages...)
	return nil
}
