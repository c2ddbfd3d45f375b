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
	"gorm.io/gorm"
)

type RoleServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRoleRepo *mocks.MockRoleRepositoryInterface
	roleService  *service.RoleService
}

func (suite *RoleServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRoleRepo = mocks.NewMockRoleRepositoryInterface(suite.ctrl)
	suite.roleService = service.NewRoleService(suite.mockRoleRepo)
}

func (suite *RoleServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RoleServiceTestSuite) TestCreateRole_AssignsNextSortOrder() {
	req := &service.CreateRoleRequest{
		Name: "cantor",
		Type: models.RoleTypeTaskPerformer,
	}
	suite.mockRoleRepo.EXPECT().ExistsByName("cantor").Return(false, nil)
	suite.mockRoleRepo.EXPECT().MaxSortOrderForType(models.RoleTypeTaskPerformer).Return(int64(4), nil)
	suite.mockRoleRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(role *models.Role) error {
		assert.Equal(suite.T(), int64(5), role.SortOrder)
		assert.Equal(suite.T(), "cantor", role.Name)
		return nil
	})

	resp, err := suite.roleService.CreateRole(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	assert.Equal(suite.T(), int64(5), resp.SortOrder)
}

func (suite *RoleServiceTestSuite) TestCreateRole_DuplicateName() {
	req := &service.CreateRoleRequest{
		Name: "cantor",
		Type: models.RoleTypeTaskPerformer,
	}
	suite.mockRoleRepo.EXPECT().ExistsByName("cantor").Return(true, nil)

	resp, err := suite.roleService.CreateRole(req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRoleExists)
}

func (suite *RoleServiceTestSuite) TestCreateRole_UnknownType() {
	req := &service.CreateRoleRequest{
		Name: "cantor",
		Type: models.RoleType("KITCHEN"),
	}

	resp, err := suite.roleService.CreateRole(req)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *RoleServiceTestSuite) TestUpdateRole_SystemRoleDisplayMetadataOnly() {
	id := uuid.New()
	system := &models.Role{
		BaseModel: models.BaseModel{ID: id},
		Name:      "administrators",
		Type:      models.RoleTypeSystem,
	}
	newName := "renamed"
	suite.mockRoleRepo.EXPECT().GetByID(id).Return(system, nil)

	resp, err := suite.roleService.UpdateRole(id, &service.UpdateRoleRequest{Name: &newName})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSystemRoleImmutable)
}

func (suite *RoleServiceTestSuite) TestUpdateRole_SystemRoleVisibilityAllowed() {
	id := uuid.New()
	system := &models.Role{
		BaseModel:               models.BaseModel{ID: id},
		Name:                    "administrators",
		Type:                    models.RoleTypeSystem,
		AreTasksVisibleInPrints: true,
	}
	hidden := false
	suite.mockRoleRepo.EXPECT().GetByID(id).Return(system, nil)
	suite.mockRoleRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(role *models.Role) error {
		assert.False(suite.T(), role.AreTasksVisibleInPrints)
		return nil
	})

	resp, err := suite.roleService.UpdateRole(id, &service.UpdateRoleRequest{AreTasksVisibleInPrints: &hidden})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	assert.False(suite.T(), resp.AreTasksVisibleInPrints)
}

func (suite *RoleServiceTestSuite) TestDeleteRole_ReferencedByTasks() {
	id := uuid.New()
	role := &models.Role{BaseModel: models.BaseModel{ID: id}, Name: "reader", Type: models.RoleTypeTaskPerformer}
	suite.mockRoleRepo.EXPECT().GetByID(id).Return(role, nil)
	suite.mockRoleRepo.EXPECT().CountTaskReferences(id).Return(int64(2), nil)

	err := suite.roleService.DeleteRole(id)

	assert.True(suite.T(), apperrors.IsReferenced(err))
	assert.Contains(suite.T(), err.Error(), "tasks")
}

func (suite *RoleServiceTestSuite) TestDeleteRole_ReferencedByUsers() {
	id := uuid.New()
	role := &models.Role{BaseModel: models.BaseModel{ID: id}, Name: "reader", Type: models.RoleTypeTaskPerformer}
	suite.mockRoleRepo.EXPECT().GetByID(id).Return(role, nil)
	suite.mockRoleRepo.EXPECT().CountTaskReferences(id).Return(int64(0), nil)
	suite.mockRoleRepo.EXPECT().CountUserReferences(id).Return(int64(1), nil)

	err := suite.roleService.DeleteRole(id)

	assert.True(suite.T(), apperrors.IsReferenced(err))
	assert.Contains(suite.T(), err.Error(), "users")
}

func (suite *RoleServiceTestSuite) TestDeleteRole_Unreferenced() {
	id := uuid.New()
	role := &models.Role{BaseModel: models.BaseModel{ID: id}, Name: "reader", Type: models.RoleTypeTaskPerformer}
	suite.mockRoleRepo.EXPECT().GetByID(id).Return(role, nil)
	suite.mockRoleRepo.EXPECT().CountTaskReferences(id).Return(int64(0), nil)
	suite.mockRoleRepo.EXPECT().CountUserReferences(id).Return(int64(0), nil)
	suite.mockRoleRepo.EXPECT().Delete(id).Return(nil)

	err := suite.roleService.DeleteRole(id)

	assert.NoError(suite.T(), err)
}

func (suite *RoleServiceTestSuite) TestDeleteRole_SystemRoleRefused() {
	id := uuid.New()
	system := &models.Role{
		BaseModel: models.BaseModel{ID: id},
		Name:      "administrators",
		Type:      models.RoleTypeSystem,
	}
	// No reference counting and no delete: the type alone refuses it.
	suite.mockRoleRepo.EXPECT().GetByID(id).Return(system, nil)

	err := suite.roleService.DeleteRole(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrSystemRoleImmutable)
}

func (suite *RoleServiceTestSuite) TestDeleteRole_NotFound() {
	id := uuid.New()
	suite.mockRoleRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	err := suite.roleService.DeleteRole(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrRoleNotFound)
}

func (suite *RoleServiceTestSuite) TestListRoles_FilterByType() {
	roleType := models.RoleTypeSupervisor
	roles := []models.Role{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "prior", Type: roleType, SortOrder: 1},
	}
	suite.mockRoleRepo.EXPECT().GetByType(roleType).Return(roles, nil)

	resp, err := suite.roleService.ListRoles(&roleType)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 1)
	assert.Equal(suite.T(), "prior", resp[0].Name)
}

func (suite *RoleServiceTestSuite) TestUpdateSortOrders_Bulk() {
	id1, id2 := uuid.New(), uuid.New()
	role1 := &models.Role{BaseModel: models.BaseModel{ID: id1}, Name: "a", Type: models.RoleTypeTaskPerformer, SortOrder: 1}
	role2 := &models.Role{BaseModel: models.BaseModel{ID: id2}, Name: "b", Type: models.RoleTypeTaskPerformer, SortOrder: 2}
	suite.mockRoleRepo.EXPECT().GetByID(id1).Return(role1, nil)
	suite.mockRoleRepo.EXPECT().Update(role1).Return(nil)
	suite.mockRoleRepo.EXPECT().GetByID(id2).Return(role2, nil)
	suite.mockRoleRepo.EXPECT().Update(role2).Return(nil)

	err := suite.roleService.UpdateSortOrders([]service.RoleSortOrderUpdate{
		{ID: id1, SortOrder: 2},
		{ID: id2, SortOrder: 1},
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(2), role1.SortOrder)
	assert.Equal(suite.T(), int64(1), role2.SortOrder)
}

func TestRoleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RoleServiceTestSuite))
}
