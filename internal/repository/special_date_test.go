package repository

import (
	"testing"
	"time"

	"community-scheduler-backend/internal/database/models"
	"community-scheduler-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// SpecialDateRepositoryTestSuite tests the SpecialDateRepository
type SpecialDateRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *SpecialDateRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *SpecialDateRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewSpecialDateRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *SpecialDateRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *SpecialDateRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *SpecialDateRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *SpecialDateRepositoryTestSuite) createFeast(date time.Time) *models.SpecialDate {
	feast := suite.factories.SpecialDate.Feast(date)
	suite.NoError(suite.baseTestSuite.DB.Create(feast).Error)
	return feast
}

func (suite *SpecialDateRepositoryTestSuite) TestGetAllOrdersByDate() {
	later := suite.createFeast(day(2026, 4, 5))
	earlier := suite.createFeast(day(2026, 3, 25))

	dates, err := suite.repo.GetAll()

	suite.NoError(err)
	suite.Len(dates, 2)
	suite.Equal(earlier.ID, dates[0].ID)
	suite.Equal(later.ID, dates[1].ID)
}

func (suite *SpecialDateRepositoryTestSuite) TestGetInRange() {
	inside := suite.createFeast(day(2026, 3, 4))
	suite.createFeast(day(2026, 3, 9))

	dates, err := suite.repo.GetInRange(day(2026, 3, 2), day(2026, 3, 8))

	suite.NoError(err)
	suite.Len(dates, 1)
	suite.Equal(inside.ID, dates[0].ID)
}

func (suite *SpecialDateRepositoryTestSuite) TestExistsForDateAndType() {
	suite.createFeast(day(2026, 4, 5))

	exists, err := suite.repo.ExistsForDateAndType(day(2026, 4, 5), models.SpecialDateTypeFeast)
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.repo.ExistsForDateAndType(day(2026, 4, 5), models.SpecialDateTypeStatsStart)
	suite.NoError(err)
	suite.False(exists)

	exists, err = suite.repo.ExistsForDateAndType(day(2026, 4, 6), models.SpecialDateTypeFeast)
	suite.NoError(err)
	suite.False(exists)
}

func (suite *SpecialDateRepositoryTestSuite) TestDelete() {
	feast := suite.createFeast(day(2026, 4, 5))

	err := suite.repo.Delete(feast.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(feast.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// Run the test suite
func TestSpecialDateRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SpecialDateRepositoryTestSuite))
}
