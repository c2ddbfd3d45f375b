package repository

import (
	"testing"
	"time"

	"community-scheduler-backend/internal/database/models"
	"community-scheduler-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ObstacleRepositoryTestSuite tests the ObstacleRepository
type ObstacleRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ObstacleRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ObstacleRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewObstacleRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ObstacleRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ObstacleRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ObstacleRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to insert a task with its supervisor role directly via gorm
func (suite *ObstacleRepositoryTestSuite) createTask() *models.Task {
	supervisor := suite.factories.Role.Supervisor()
	suite.NoError(suite.baseTestSuite.DB.Create(supervisor).Error)
	task := suite.factories.Task.WithSupervisorRole(supervisor.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(task).Error)
	return task
}

func (suite *ObstacleRepositoryTestSuite) createUser() *models.User {
	user := suite.factories.User.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(user).Error)
	return user
}

func (suite *ObstacleRepositoryTestSuite) createObstacle(obstacle *models.Obstacle) *models.Obstacle {
	err := suite.baseTestSuite.DB.Create(obstacle).Error
	suite.NoError(err)
	return obstacle
}

func (suite *ObstacleRepositoryTestSuite) TestGetByIDPreloadsAssociations() {
	user := suite.createUser()
	task := suite.createTask()
	obstacle := suite.factories.Obstacle.WithUser(user.ID)
	obstacle.Tasks = []models.Task{*task}
	suite.createObstacle(obstacle)

	retrieved, err := suite.repo.GetByID(obstacle.ID)

	suite.NoError(err)
	suite.Equal(obstacle.ID, retrieved.ID)
	suite.Equal(user.Email, retrieved.User.Email)
	suite.Len(retrieved.Tasks, 1)
	suite.Equal(task.ID, retrieved.Tasks[0].ID)
}

func (suite *ObstacleRepositoryTestSuite) TestGetByIDNotFound() {
	obstacle, err := suite.repo.GetByID(suite.factories.Obstacle.Create().ID)

	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(obstacle)
}

func (suite *ObstacleRepositoryTestSuite) TestGetAllOrdersFutureFirst() {
	user := suite.createUser()
	today := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	past := suite.factories.Obstacle.WithUser(user.ID)
	past.FromDate = time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	past.ToDate = time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC)
	suite.createObstacle(past)

	running := suite.factories.Obstacle.WithUser(user.ID)
	running.FromDate = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	running.ToDate = time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	suite.createObstacle(running)

	upcoming := suite.factories.Obstacle.WithUser(user.ID)
	upcoming.FromDate = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	upcoming.ToDate = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	suite.createObstacle(upcoming)

	obstacles, err := suite.repo.GetAll(today)

	suite.NoError(err)
	suite.Len(obstacles, 3)
	// Future obstacles first, then the started ones latest-first
	suite.Equal(upcoming.ID, obstacles[0].ID)
	suite.Equal(running.ID, obstacles[1].ID)
	suite.Equal(past.ID, obstacles[2].ID)
}

func (suite *ObstacleRepositoryTestSuite) TestGetByUserIDFiltersOtherUsers() {
	user := suite.createUser()
	other := suite.createUser()
	today := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	mine := suite.createObstacle(suite.factories.Obstacle.WithUser(user.ID))
	suite.createObstacle(suite.factories.Obstacle.WithUser(other.ID))

	obstacles, err := suite.repo.GetByUserID(user.ID, today)

	suite.NoError(err)
	suite.Len(obstacles, 1)
	suite.Equal(mine.ID, obstacles[0].ID)
}

func (suite *ObstacleRepositoryTestSuite) TestGetByUserIDIncludesPastObstacles() {
	user := suite.createUser()
	today := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	past := suite.factories.Obstacle.WithUser(user.ID)
	past.FromDate = time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	past.ToDate = time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC)
	suite.createObstacle(past)

	upcoming := suite.factories.Obstacle.WithUser(user.ID)
	upcoming.FromDate = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	upcoming.ToDate = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	suite.createObstacle(upcoming)

	obstacles, err := suite.repo.GetByUserID(user.ID, today)

	suite.NoError(err)
	suite.Len(obstacles, 2)
	suite.Equal(upcoming.ID, obstacles[0].ID)
	suite.Equal(past.ID, obstacles[1].ID)
}

func (suite *ObstacleRepositoryTestSuite) TestGetApprovedForUserTaskDate() {
	user := suite.createUser()
	recipient := suite.createUser()
	task := suite.createTask()

	approved := suite.factories.Obstacle.Approved(recipient.ID)
	approved.UserID = user.ID
	approved.Tasks = []models.Task{*task}
	suite.createObstacle(approved)

	// Same span and task but still awaiting review
	awaiting := suite.factories.Obstacle.WithUser(user.ID)
	awaiting.Tasks = []models.Task{*task}
	suite.createObstacle(awaiting)

	obstacles, err := suite.repo.GetApprovedForUserTaskDate(user.ID, task.ID, time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC))

	suite.NoError(err)
	suite.Len(obstacles, 1)
	suite.Equal(approved.ID, obstacles[0].ID)
}

func (suite *ObstacleRepositoryTestSuite) TestGetApprovedForUserTaskDateOutsideSpan() {
	user := suite.createUser()
	recipient := suite.createUser()
	task := suite.createTask()

	approved := suite.factories.Obstacle.Approved(recipient.ID)
	approved.UserID = user.ID
	approved.Tasks = []models.Task{*task}
	suite.createObstacle(approved)

	obstacles, err := suite.repo.GetApprovedForUserTaskDate(user.ID, task.ID, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC))

	suite.NoError(err)
	suite.Empty(obstacles)
}

func (suite *ObstacleRepositoryTestSuite) TestGetApprovedInRangeUsesOverlap() {
	user := suite.createUser()
	recipient := suite.createUser()

	// Spans March 2nd through 8th
	approved := suite.factories.Obstacle.Approved(recipient.ID)
	approved.UserID = user.ID
	suite.createObstacle(approved)

	obstacles, err := suite.repo.GetApprovedInRange(
		time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
	)
	suite.NoError(err)
	suite.Len(obstacles, 1)

	obstacles, err = suite.repo.GetApprovedInRange(
		time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
	)
	suite.NoError(err)
	suite.Empty(obstacles)
}

func (suite *ObstacleRepositoryTestSuite) TestCountByStatus() {
	user := suite.createUser()
	recipient := suite.createUser()
	suite.createObstacle(suite.factories.Obstacle.WithUser(user.ID))
	suite.createObstacle(suite.factories.Obstacle.WithUser(user.ID))
	approved := suite.factories.Obstacle.Approved(recipient.ID)
	approved.UserID = user.ID
	suite.createObstacle(approved)

	count, err := suite.repo.CountByStatus(models.ObstacleStatusAwaiting)
	suite.NoError(err)
	suite.Equal(int64(2), count)

	count, err = suite.repo.CountByStatus(models.ObstacleStatusRejected)
	suite.NoError(err)
	suite.Equal(int64(0), count)
}

func (suite *ObstacleRepositoryTestSuite) TestUpdateKeepsTaskAssociation() {
	user := suite.createUser()
	recipient := suite.createUser()
	task := suite.createTask()
	obstacle := suite.factories.Obstacle.WithUser(user.ID)
	obstacle.Tasks = []models.Task{*task}
	suite.createObstacle(obstacle)

	obstacle.Status = models.ObstacleStatusApproved
	obstacle.RecipientUserID = &recipient.ID
	obstacle.RecipientAnswer = "rest well"
	err := suite.repo.Update(obstacle)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(obstacle.ID)
	suite.NoError(err)
	suite.Equal(models.ObstacleStatusApproved, retrieved.Status)
	suite.Equal("rest well", retrieved.RecipientAnswer)
	suite.Len(retrieved.Tasks, 1)
}

func (suite *ObstacleRepositoryTestSuite) TestDelete() {
	user := suite.createUser()
	obstacle := suite.createObstacle(suite.factories.Obstacle.WithUser(user.ID))

	err := suite.repo.Delete(obstacle.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(obstacle.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// Run the test suite
func TestObstacleRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ObstacleRepositoryTestSuite))
}
