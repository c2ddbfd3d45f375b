package repository

import (
	"testing"
	"time"

	"community-scheduler-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// WeekRevisionRepositoryTestSuite tests the WeekRevisionRepository
type WeekRevisionRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *WeekRevisionRepository
}

// SetupSuite runs before all tests in the suite
func (suite *WeekRevisionRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewWeekRevisionRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *WeekRevisionRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *WeekRevisionRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *WeekRevisionRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *WeekRevisionRepositoryTestSuite) weekStart() time.Time {
	return time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
}

func (suite *WeekRevisionRepositoryTestSuite) TestGetCreatesRowOnFirstAccess() {
	rev, err := suite.repo.Get(suite.weekStart())

	suite.NoError(err)
	suite.Equal(int64(0), rev.Revision)
}

func (suite *WeekRevisionRepositoryTestSuite) TestGetIsIdempotent() {
	first, err := suite.repo.Get(suite.weekStart())
	suite.NoError(err)

	second, err := suite.repo.Get(suite.weekStart())
	suite.NoError(err)

	suite.Equal(first.ID, second.ID)
	suite.Equal(first.Revision, second.Revision)
}

func (suite *WeekRevisionRepositoryTestSuite) TestBumpIncrementsOnMatch() {
	_, err := suite.repo.Get(suite.weekStart())
	suite.NoError(err)

	next, ok, err := suite.repo.Bump(suite.weekStart(), 0)

	suite.NoError(err)
	suite.True(ok)
	suite.Equal(int64(1), next)

	rev, err := suite.repo.Get(suite.weekStart())
	suite.NoError(err)
	suite.Equal(int64(1), rev.Revision)
}

func (suite *WeekRevisionRepositoryTestSuite) TestBumpRejectsStaleExpectation() {
	_, err := suite.repo.Get(suite.weekStart())
	suite.NoError(err)

	_, ok, err := suite.repo.Bump(suite.weekStart(), 3)

	suite.NoError(err)
	suite.False(ok)

	// The stored revision is untouched
	rev, err := suite.repo.Get(suite.weekStart())
	suite.NoError(err)
	suite.Equal(int64(0), rev.Revision)
}

// Run the test suite
func TestWeekRevisionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(WeekRevisionRepositoryTestSuite))
}
