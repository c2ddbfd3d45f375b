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

type ConflictServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockConflictRepo *mocks.MockConflictRepositoryInterface
	mockTaskRepo     *mocks.MockTaskRepositoryInterface
	conflictService  *service.ConflictService
}

func (suite *ConflictServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockConflictRepo = mocks.NewMockConflictRepositoryInterface(suite.ctrl)
	suite.mockTaskRepo = mocks.NewMockTaskRepositoryInterface(suite.ctrl)
	suite.conflictService = service.NewConflictService(suite.mockConflictRepo, suite.mockTaskRepo)
}

func (suite *ConflictServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ConflictServiceTestSuite) TestCreateConflict_Success() {
	task1 := &models.Task{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Refectory reading"}
	task2 := &models.Task{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Kitchen duty"}
	req := &service.CreateConflictRequest{
		Task1ID:    task1.ID,
		Task2ID:    task2.ID,
		DaysOfWeek: []models.DayOfWeek{models.Saturday, models.Monday},
	}

	suite.mockTaskRepo.EXPECT().GetByID(task1.ID).Return(task1, nil)
	suite.mockTaskRepo.EXPECT().GetByID(task2.ID).Return(task2, nil)
	suite.mockConflictRepo.EXPECT().ExistsForPair(task1.ID, task2.ID).Return(false, nil)
	suite.mockConflictRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(conflict *models.Conflict) error {
		assert.Equal(suite.T(), []models.DayOfWeek{models.Monday, models.Saturday}, conflict.DaysOfWeek)
		conflict.ID = uuid.New()
		return nil
	})
	suite.mockConflictRepo.EXPECT().GetByID(gomock.Any()).DoAndReturn(func(id uuid.UUID) (*models.Conflict, error) {
		return &models.Conflict{
			BaseModel:  models.BaseModel{ID: id},
			Task1ID:    task1.ID,
			Task2ID:    task2.ID,
			Task1:      *task1,
			Task2:      *task2,
			DaysOfWeek: []models.DayOfWeek{models.Monday, models.Saturday},
		}, nil
	})

	resp, err := suite.conflictService.CreateConflict(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	assert.Equal(suite.T(), task1.ID, resp.Task1.ID)
	assert.Equal(suite.T(), task2.ID, resp.Task2.ID)
}

func (suite *ConflictServiceTestSuite) TestCreateConflict_SameTask() {
	id := uuid.New()
	req := &service.CreateConflictRequest{
		Task1ID:    id,
		Task2ID:    id,
		DaysOfWeek: []models.DayOfWeek{models.Monday},
	}

	resp, err := suite.conflictService.CreateConflict(req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSameTasksForConflict)
}

func (suite *ConflictServiceTestSuite) TestCreateConflict_DuplicatePair() {
	task1 := &models.Task{BaseModel: models.BaseModel{ID: uuid.New()}}
	task2 := &models.Task{BaseModel: models.BaseModel{ID: uuid.New()}}
	req := &service.CreateConflictRequest{
		Task1ID:    task1.ID,
		Task2ID:    task2.ID,
		DaysOfWeek: []models.DayOfWeek{models.Monday},
	}

	suite.mockTaskRepo.EXPECT().GetByID(task1.ID).Return(task1, nil)
	suite.mockTaskRepo.EXPECT().GetByID(task2.ID).Return(task2, nil)
	suite.mockConflictRepo.EXPECT().ExistsForPair(task1.ID, task2.ID).Return(true, nil)

	resp, err := suite.conflictService.CreateConflict(req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrConflictExists)
}

func (suite *ConflictServiceTestSuite) TestCreateConflict_UnknownTask() {
	task1ID, task2ID := uuid.New(), uuid.New()
	req := &service.CreateConflictRequest{
		Task1ID:    task1ID,
		Task2ID:    task2ID,
		DaysOfWeek: []models.DayOfWeek{models.Monday},
	}

	suite.mockTaskRepo.EXPECT().GetByID(task1ID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.conflictService.CreateConflict(req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTaskNotFound)
}

func (suite *ConflictServiceTestSuite) TestUpdateConflict_PairChangeToExistingPair() {
	conflictID := uuid.New()
	task1 := &models.Task{BaseModel: models.BaseModel{ID: uuid.New()}}
	task2 := &models.Task{BaseModel: models.BaseModel{ID: uuid.New()}}
	task3 := &models.Task{BaseModel: models.BaseModel{ID: uuid.New()}}
	existing := &models.Conflict{
		BaseModel:  models.BaseModel{ID: conflictID},
		Task1ID:    task1.ID,
		Task2ID:    task2.ID,
		DaysOfWeek: []models.DayOfWeek{models.Monday},
	}
	other := models.Conflict{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Task1ID:   task1.ID,
		Task2ID:   task3.ID,
	}

	suite.mockConflictRepo.EXPECT().GetByID(conflictID).Return(existing, nil)
	suite.mockTaskRepo.EXPECT().GetByID(task1.ID).Return(task1, nil)
	suite.mockTaskRepo.EXPECT().GetByID(task3.ID).Return(task3, nil)
	suite.mockConflictRepo.EXPECT().GetForPair(task1.ID, task3.ID).Return([]models.Conflict{other}, nil)

	resp, err := suite.conflictService.UpdateConflict(conflictID, &service.UpdateConflictRequest{Task2ID: &task3.ID})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrConflictExists)
}

func (suite *ConflictServiceTestSuite) TestUpdateConflict_DaysOnly() {
	conflictID := uuid.New()
	task1 := models.Task{BaseModel: models.BaseModel{ID: uuid.New()}}
	task2 := models.Task{BaseModel: models.BaseModel{ID: uuid.New()}}
	existing := &models.Conflict{
		BaseModel:  models.BaseModel{ID: conflictID},
		Task1ID:    task1.ID,
		Task2ID:    task2.ID,
		Task1:      task1,
		Task2:      task2,
		DaysOfWeek: []models.DayOfWeek{models.Monday},
	}

	suite.mockConflictRepo.EXPECT().GetByID(conflictID).Return(existing, nil)
	suite.mockConflictRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(conflict *models.Conflict) error {
		assert.Equal(suite.T(), []models.DayOfWeek{models.Tuesday, models.Sunday}, conflict.DaysOfWeek)
		return nil
	})
	suite.mockConflictRepo.EXPECT().GetByID(conflictID).Return(existing, nil)

	resp, err := suite.conflictService.UpdateConflict(conflictID, &service.UpdateConflictRequest{
		DaysOfWeek: []models.DayOfWeek{models.Sunday, models.Tuesday},
	})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
}

func (suite *ConflictServiceTestSuite) TestDeleteConflict_NotFound() {
	id := uuid.New()
	suite.mockConflictRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	err := suite.conflictService.DeleteConflict(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrConflictNotFound)
}

func TestConflictServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConflictServiceTestSuite))
}
