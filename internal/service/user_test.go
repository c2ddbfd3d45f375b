package service_test

import (
	"testing"

	"community-scheduler-backend/internal/database/models"
	apperrors "community-scheduler-backend/internal/errors"
	"community-scheduler-backend/internal/mocks"
	"community-scheduler-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	mockRoleRepo *mocks.MockRoleRepositoryInterface
	userService  *service.UserService
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockRoleRepo = mocks.NewMockRoleRepositoryInterface(suite.ctrl)
	suite.userService = service.NewUserService(suite.mockUserRepo, suite.mockRoleRepo)
}

func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserServiceTestSuite) TestCreateUser_WithPasswordBecomesLocal() {
	req := &service.CreateUserRequest{
		Email:    "ben@example.com",
		Password: "correct-horse",
		Name:     "Ben",
		Surname:  "Reader",
	}

	suite.mockUserRepo.EXPECT().ExistsByEmail("ben@example.com").Return(false, nil)
	suite.mockUserRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(user *models.User) error {
		assert.Equal(suite.T(), models.AuthProviderLocal, user.Provider)
		assert.True(suite.T(), user.Enabled)
		assert.NoError(suite.T(), bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("correct-horse")))
		user.ID = uuid.New()
		return nil
	})

	resp, err := suite.userService.CreateUser(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.AuthProviderLocal, resp.Provider)
}

func (suite *UserServiceTestSuite) TestCreateUser_WithoutPasswordStaysExternal() {
	req := &service.CreateUserRequest{
		Email:   "ben@example.com",
		Name:    "Ben",
		Surname: "Reader",
	}

	suite.mockUserRepo.EXPECT().ExistsByEmail("ben@example.com").Return(false, nil)
	suite.mockUserRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(user *models.User) error {
		assert.Equal(suite.T(), models.AuthProviderGoogle, user.Provider)
		assert.Empty(suite.T(), user.Password)
		return nil
	})

	_, err := suite.userService.CreateUser(req)

	assert.NoError(suite.T(), err)
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateEmail() {
	req := &service.CreateUserRequest{
		Email:   "ben@example.com",
		Name:    "Ben",
		Surname: "Reader",
	}
	suite.mockUserRepo.EXPECT().ExistsByEmail("ben@example.com").Return(true, nil)

	resp, err := suite.userService.CreateUser(req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserExists)
}

func (suite *UserServiceTestSuite) TestCreateUser_UnknownRoleName() {
	req := &service.CreateUserRequest{
		Email:     "ben@example.com",
		Name:      "Ben",
		Surname:   "Reader",
		RoleNames: []string{"reader", "ghost"},
	}
	reader := models.Role{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "reader"}
	suite.mockUserRepo.EXPECT().ExistsByEmail("ben@example.com").Return(false, nil)
	suite.mockRoleRepo.EXPECT().GetByNames([]string{"reader", "ghost"}).Return([]models.Role{reader}, nil)

	resp, err := suite.userService.CreateUser(req)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *UserServiceTestSuite) TestUpdateUser_EmailChangeToTakenAddress() {
	id := uuid.New()
	user := &models.User{BaseModel: models.BaseModel{ID: id}, Email: "old@example.com"}
	taken := "taken@example.com"
	suite.mockUserRepo.EXPECT().GetByID(id).Return(user, nil)
	suite.mockUserRepo.EXPECT().ExistsByEmail(taken).Return(true, nil)

	resp, err := suite.userService.UpdateUser(id, &service.UpdateUserRequest{Email: &taken})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserExists)
}

func (suite *UserServiceTestSuite) TestUpdateUser_DisableAccount() {
	id := uuid.New()
	user := &models.User{BaseModel: models.BaseModel{ID: id}, Email: "ben@example.com", Enabled: true}
	disabled := false
	suite.mockUserRepo.EXPECT().GetByID(id).Return(user, nil)
	suite.mockUserRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(updated *models.User) error {
		assert.False(suite.T(), updated.Enabled)
		return nil
	})

	resp, err := suite.userService.UpdateUser(id, &service.UpdateUserRequest{Enabled: &disabled})

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), resp.Enabled)
}

func (suite *UserServiceTestSuite) TestDeleteUser_NotFound() {
	id := uuid.New()
	suite.mockUserRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	err := suite.userService.DeleteUser(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
