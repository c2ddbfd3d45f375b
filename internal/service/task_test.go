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

type TaskServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockTaskRepo *mocks.MockTaskRepositoryInterface
	mockRoleRepo *mocks.MockRoleRepositoryInterface
	taskService  *service.TaskService
}

func (suite *TaskServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTaskRepo = mocks.NewMockTaskRepositoryInterface(suite.ctrl)
	suite.mockRoleRepo = mocks.NewMockRoleRepositoryInterface(suite.ctrl)
	suite.taskService = service.NewTaskService(suite.mockTaskRepo, suite.mockRoleRepo)
}

func (suite *TaskServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TaskServiceTestSuite) supervisorRole() *models.Role {
	return &models.Role{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "kitchen supervisor",
		Type:      models.RoleTypeSupervisor,
	}
}

func (suite *TaskServiceTestSuite) TestCreateTask_IncludesSupervisorInAllowedRoles() {
	supervisor := suite.supervisorRole()
	reader := models.Role{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "reader", Type: models.RoleTypeTaskPerformer}

	req := &service.CreateTaskRequest{
		Name:               "Refectory reading",
		NameAbbrev:         "RR",
		ParticipantsLimit:  1,
		AllowedRoleNames:   []string{"reader"},
		SupervisorRoleName: "kitchen supervisor",
		DaysOfWeek:         []models.DayOfWeek{models.Friday, models.Monday},
	}

	suite.mockRoleRepo.EXPECT().GetByNameAndType("kitchen supervisor", models.RoleTypeSupervisor).Return(supervisor, nil)
	suite.mockRoleRepo.EXPECT().GetByNames([]string{"reader"}).Return([]models.Role{reader}, nil)
	suite.mockTaskRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(task *models.Task) error {
		assert.Len(suite.T(), task.AllowedRoles, 2)
		assert.Equal(suite.T(), supervisor.ID, task.AllowedRoles[1].ID)
		// Days come back in canonical Monday-first order
		assert.Equal(suite.T(), []models.DayOfWeek{models.Monday, models.Friday}, task.DaysOfWeek)
		return nil
	})

	resp, err := suite.taskService.CreateTask(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	assert.Len(suite.T(), resp.AllowedRoles, 2)
}

func (suite *TaskServiceTestSuite) TestCreateTask_SupervisorAlreadyAllowed() {
	supervisor := suite.supervisorRole()

	req := &service.CreateTaskRequest{
		Name:               "Refectory reading",
		ParticipantsLimit:  1,
		AllowedRoleNames:   []string{"kitchen supervisor"},
		SupervisorRoleName: "kitchen supervisor",
		DaysOfWeek:         []models.DayOfWeek{models.Monday},
	}

	suite.mockRoleRepo.EXPECT().GetByNameAndType("kitchen supervisor", models.RoleTypeSupervisor).Return(supervisor, nil)
	suite.mockRoleRepo.EXPECT().GetByNames([]string{"kitchen supervisor"}).Return([]models.Role{*supervisor}, nil)
	suite.mockTaskRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(task *models.Task) error {
		assert.Len(suite.T(), task.AllowedRoles, 1)
		return nil
	})

	_, err := suite.taskService.CreateTask(req)

	assert.NoError(suite.T(), err)
}

func (suite *TaskServiceTestSuite) TestCreateTask_UnknownSupervisorRole() {
	req := &service.CreateTaskRequest{
		Name:               "Refectory reading",
		ParticipantsLimit:  1,
		AllowedRoleNames:   []string{"reader"},
		SupervisorRoleName: "nobody",
		DaysOfWeek:         []models.DayOfWeek{models.Monday},
	}
	suite.mockRoleRepo.EXPECT().GetByNameAndType("nobody", models.RoleTypeSupervisor).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.taskService.CreateTask(req)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func (suite *TaskServiceTestSuite) TestCreateTask_UnknownDayOfWeek() {
	req := &service.CreateTaskRequest{
		Name:               "Refectory reading",
		ParticipantsLimit:  1,
		AllowedRoleNames:   []string{"reader"},
		SupervisorRoleName: "kitchen supervisor",
		DaysOfWeek:         []models.DayOfWeek{"FUNDAY"},
	}

	resp, err := suite.taskService.CreateTask(req)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "FUNDAY")
}

func (suite *TaskServiceTestSuite) TestCreateTask_DuplicateDayOfWeek() {
	req := &service.CreateTaskRequest{
		Name:               "Refectory reading",
		ParticipantsLimit:  1,
		AllowedRoleNames:   []string{"reader"},
		SupervisorRoleName: "kitchen supervisor",
		DaysOfWeek:         []models.DayOfWeek{models.Monday, models.Monday},
	}

	resp, err := suite.taskService.CreateTask(req)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "duplicate")
}

func (suite *TaskServiceTestSuite) TestCreateTask_UnknownAllowedRole() {
	supervisor := suite.supervisorRole()
	req := &service.CreateTaskRequest{
		Name:               "Refectory reading",
		ParticipantsLimit:  1,
		AllowedRoleNames:   []string{"reader", "ghost"},
		SupervisorRoleName: "kitchen supervisor",
		DaysOfWeek:         []models.DayOfWeek{models.Monday},
	}
	reader := models.Role{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "reader", Type: models.RoleTypeTaskPerformer}
	suite.mockRoleRepo.EXPECT().GetByNameAndType("kitchen supervisor", models.RoleTypeSupervisor).Return(supervisor, nil)
	suite.mockRoleRepo.EXPECT().GetByNames([]string{"reader", "ghost"}).Return([]models.Role{reader}, nil)

	resp, err := suite.taskService.CreateTask(req)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *TaskServiceTestSuite) TestDeleteTask_ReferencedBySchedules() {
	id := uuid.New()
	task := &models.Task{BaseModel: models.BaseModel{ID: id}, Name: "Refectory reading"}
	suite.mockTaskRepo.EXPECT().GetByID(id).Return(task, nil)
	suite.mockTaskRepo.EXPECT().CountScheduleReferences(id).Return(int64(3), nil)

	err := suite.taskService.DeleteTask(id)

	assert.True(suite.T(), apperrors.IsReferenced(err))
	assert.Contains(suite.T(), err.Error(), "schedules")
}

func (suite *TaskServiceTestSuite) TestDeleteTask_ReferencedByObstacles() {
	id := uuid.New()
	task := &models.Task{BaseModel: models.BaseModel{ID: id}, Name: "Refectory reading"}
	suite.mockTaskRepo.EXPECT().GetByID(id).Return(task, nil)
	suite.mockTaskRepo.EXPECT().CountScheduleReferences(id).Return(int64(0), nil)
	suite.mockTaskRepo.EXPECT().CountObstacleReferences(id).Return(int64(1), nil)

	err := suite.taskService.DeleteTask(id)

	assert.True(suite.T(), apperrors.IsReferenced(err))
	assert.Contains(suite.T(), err.Error(), "obstacles")
}

func (suite *TaskServiceTestSuite) TestDeleteTask_Unreferenced() {
	id := uuid.New()
	task := &models.Task{BaseModel: models.BaseModel{ID: id}, Name: "Refectory reading"}
	suite.mockTaskRepo.EXPECT().GetByID(id).Return(task, nil)
	suite.mockTaskRepo.EXPECT().CountScheduleReferences(id).Return(int64(0), nil)
	suite.mockTaskRepo.EXPECT().CountObstacleReferences(id).Return(int64(0), nil)
	suite.mockTaskRepo.EXPECT().CountConflictReferences(id).Return(int64(0), nil)
	suite.mockTaskRepo.EXPECT().Delete(id).Return(nil)

	err := suite.taskService.DeleteTask(id)

	assert.NoError(suite.T(), err)
}

func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}
