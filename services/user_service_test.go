package services

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/GDG-Vishnu/community-platform/dto"
	"github.com/GDG-Vishnu/community-platform/models"
	"github.com/GDG-Vishnu/community-platform/repositories"
	"github.com/GDG-Vishnu/community-platform/repositories/mock_repositories"
)

// --------------------- Setup ---------------------
func setupUserServiceMocks(t *testing.T) (*UserService, *mock_repositories.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock_repositories.NewMockUserRepo(ctrl)
	repos := &repositories.Repos{User: mockUser}
	svc := NewUserService(repos, NewAuthzService(repos))
	return svc, mockUser
}

// --------------------- Register ---------------------
func TestRegister_CreatesPlainMember(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().FindByUsername("alice").Return(nil, gorm.ErrRecordNotFound)
	mockUser.EXPECT().Create(gomock.Any()).Return(nil)

	user, err := svc.Register(dto.RegisterDTO{Username: "alice", Password: "supersafe1"})
	assert.NoError(t, err)
	assert.Equal(t, models.UserRoleMember, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("supersafe1")))
}

func TestRegister_UsernameTaken(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().FindByUsername("alice").Return(&models.User{ID: "u1", Username: "alice"}, nil)

	_, err := svc.Register(dto.RegisterDTO{Username: "alice", Password: "supersafe1"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

// --------------------- Authenticate ---------------------
func TestAuthenticate_WrongPassword(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	mockUser.EXPECT().FindByUsername("alice").Return(&models.User{Username: "alice", Password: string(hashed)}, nil)

	_, err := svc.Authenticate(dto.LoginDTO{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().FindByUsername("ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Authenticate(dto.LoginDTO{Username: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	mockUser.EXPECT().FindByUsername("alice").Return(&models.User{ID: "u1", Username: "alice", Password: string(hashed)}, nil)

	user, err := svc.Authenticate(dto.LoginDTO{Username: "alice", Password: "correct-horse"})
	assert.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

// --------------------- UpdateRole ---------------------
func TestUpdateRole_AdminOnly(t *testing.T) {
	svc, _ := setupUserServiceMocks(t)

	organizer := adminClaims()
	organizer.Role = string(models.UserRoleOrganizer)

	_, err := svc.UpdateRole(organizer, "u1", "coordinator")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUpdateRole_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().FindByID("u1").Return(&models.User{ID: "u1", Role: models.UserRoleMember}, nil)
	mockUser.EXPECT().Update(gomock.Any()).Return(nil)

	user, err := svc.UpdateRole(adminClaims(), "u1", "coordinator")
	assert.NoError(t, err)
	assert.Equal(t, models.UserRoleCoordinator, user.Role)
}

// --------------------- ListUsers ---------------------
func TestListUsers_MemberRejected(t *testing.T) {
	svc, _ := setupUserServiceMocks(t)

	_, err := svc.ListUsers(memberClaims())
	assert.ErrorIs(t, err, ErrUnauthorized)
}
