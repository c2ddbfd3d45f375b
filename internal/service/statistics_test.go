package service_test

import (
	"testing"
	"time"

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

type StatisticsServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockScheduleRepo  *mocks.MockScheduleRepositoryInterface
	mockUserRepo      *mocks.MockUserRepositoryInterface
	mockTaskRepo      *mocks.MockTaskRepositoryInterface
	statsDate         time.Time
	statisticsService *service.StatisticsService
}

func (suite *StatisticsServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockScheduleRepo = mocks.NewMockScheduleRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockTaskRepo = mocks.NewMockTaskRepositoryInterface(suite.ctrl)
	suite.statsDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.statisticsService = service.NewStatisticsService(
		suite.mockScheduleRepo, suite.mockUserRepo, suite.mockTaskRepo, suite.statsDate)
}

func (suite *StatisticsServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *StatisticsServiceTestSuite) TestGetUserStatistics_NormalizedRates() {
	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Ben", Surname: "Reader"}
	task := models.Task{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Refectory reading", NameAbbrev: "RR"}
	lastDate := time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC)

	suite.mockUserRepo.EXPECT().GetByID(user.ID).Return(user, nil)
	suite.mockTaskRepo.EXPECT().GetAll().Return([]models.Task{task}, nil)
	suite.mockScheduleRepo.EXPECT().LastCompletionDate(user.ID, task.ID, gomock.Any()).Return(&lastDate, nil)
	// Current period: the task ran 10 weeks, the user carried 4 of them.
	suite.mockScheduleRepo.EXPECT().CountDistinctWeeksForTask(task.ID, suite.statsDate).Return(int64(10), nil)
	suite.mockScheduleRepo.EXPECT().CountDistinctWeeksForUserTask(user.ID, task.ID, suite.statsDate).Return(int64(4), nil)
	// All time: 20 task weeks, 5 user weeks.
	suite.mockScheduleRepo.EXPECT().CountDistinctWeeksForTask(task.ID, gomock.Any()).Return(int64(20), nil)
	suite.mockScheduleRepo.EXPECT().CountDistinctWeeksForUserTask(user.ID, task.ID, gomock.Any()).Return(int64(5), nil)

	resp, err := suite.statisticsService.GetUserStatistics(user.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Ben Reader", resp.UserName)
	assert.Len(suite.T(), resp.Tasks, 1)
	row := resp.Tasks[0]
	assert.Equal(suite.T(), "Refectory reading", row.TaskName)
	assert.Equal(suite.T(), "2026-02-16", row.LastAssignment)
	assert.InDelta(suite.T(), 0.4, row.NormalizedOccurrencesFromStatsDate, 1e-9)
	assert.InDelta(suite.T(), 0.25, row.NormalizedOccurrencesAllTime, 1e-9)
}

func (suite *StatisticsServiceTestSuite) TestGetUserStatistics_NeverScheduledTaskYieldsZero() {
	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Ben", Surname: "Reader"}
	task := models.Task{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Kitchen duty"}

	suite.mockUserRepo.EXPECT().GetByID(user.ID).Return(user, nil)
	suite.mockTaskRepo.EXPECT().GetAll().Return([]models.Task{task}, nil)
	suite.mockScheduleRepo.EXPECT().LastCompletionDate(user.ID, task.ID, gomock.Any()).Return(nil, nil)
	suite.mockScheduleRepo.EXPECT().CountDistinctWeeksForTask(task.ID, gomock.Any()).Return(int64(0), nil).Times(2)

	resp, err := suite.statisticsService.GetUserStatistics(user.ID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp.Tasks, 1)
	assert.Empty(suite.T(), resp.Tasks[0].LastAssignment)
	assert.Zero(suite.T(), resp.Tasks[0].NormalizedOccurrencesFromStatsDate)
	assert.Zero(suite.T(), resp.Tasks[0].NormalizedOccurrencesAllTime)
}

func (suite *StatisticsServiceTestSuite) TestGetUserStatistics_UnknownUser() {
	id := uuid.New()
	suite.mockUserRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.statisticsService.GetUserStatistics(id)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

func TestStatisticsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatisticsServiceTestSuite))
}
