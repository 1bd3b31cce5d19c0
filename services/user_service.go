package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/GDG-Vishnu/community-platform/dto"
	"github.com/GDG-Vishnu/community-platform/models"
	"github.com/GDG-Vishnu/community-platform/repositories"
	"github.com/GDG-Vishnu/community-platform/types"
)

type UserService struct {
	repos *repositories.Repos
	authz *AuthzService
}

func NewUserService(repos *repositories.Repos, authz *AuthzService) *UserService {
	return &UserService{repos: repos, authz: authz}
}

// Register creates a plain member. Roles are only raised afterwards by an
// admin.
func (s *UserService) Register(input dto.RegisterDTO) (*models.User, error) {
	if _, err := s.repos.User.FindByUsername(input.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: input.Username,
		Password: string(hashed),
		Email:    input.Email,
		FullName: input.FullName,
		Role:     models.UserRoleMember,
	}
	if err := s.repos.User.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Authenticate(input dto.LoginDTO) (*models.User, error) {
	user, err := s.repos.User.FindByUsername(input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) ListUsers(claims *types.Claims) ([]models.User, error) {
	if err := s.authz.RequireElevated(claims); err != nil {
		return nil, err
	}
	return s.repos.User.FindAll()
}

// UpdateRole is admin-only.
func (s *UserService) UpdateRole(claims *types.Claims, userID string, role string) (*models.User, error) {
	if claims == nil || models.UserRole(claims.Role) != models.UserRoleAdmin {
		return nil, ErrUnauthorized
	}
	user, err := s.repos.User.FindByID(userID)
	if err != nil {
		return nil, err
	}
	user.Role = models.UserRole(role)
	if err := s.repos.User.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
