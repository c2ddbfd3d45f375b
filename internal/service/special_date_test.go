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

type SpecialDateServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockSpecialDateRepo *mocks.MockSpecialDateRepositoryInterface
	specialDateService  *service.SpecialDateService
}

func (suite *SpecialDateServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSpecialDateRepo = mocks.NewMockSpecialDateRepositoryInterface(suite.ctrl)
	suite.specialDateService = service.NewSpecialDateService(suite.mockSpecialDateRepo)
}

func (suite *SpecialDateServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SpecialDateServiceTestSuite) TestCreateSpecialDate_Success() {
	date := time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC)
	suite.mockSpecialDateRepo.EXPECT().ExistsForDateAndType(date, models.SpecialDateTypeFeast).Return(false, nil)
	suite.mockSpecialDateRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(specialDate *models.SpecialDate) error {
		assert.Equal(suite.T(), date, specialDate.Date)
		specialDate.ID = uuid.New()
		return nil
	})

	resp, err := suite.specialDateService.CreateSpecialDate(&service.CreateSpecialDateRequest{
		Date: "2026-04-05",
		Type: models.SpecialDateTypeFeast,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "2026-04-05", resp.Date)
	assert.Equal(suite.T(), models.SpecialDateTypeFeast, resp.Type)
}

func (suite *SpecialDateServiceTestSuite) TestCreateSpecialDate_Duplicate() {
	date := time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC)
	suite.mockSpecialDateRepo.EXPECT().ExistsForDateAndType(date, models.SpecialDateTypeFeast).Return(true, nil)

	resp, err := suite.specialDateService.CreateSpecialDate(&service.CreateSpecialDateRequest{
		Date: "2026-04-05",
		Type: models.SpecialDateTypeFeast,
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSpecialDateExists)
}

func (suite *SpecialDateServiceTestSuite) TestCreateSpecialDate_UnknownType() {
	resp, err := suite.specialDateService.CreateSpecialDate(&service.CreateSpecialDateRequest{
		Date: "2026-04-05",
		Type: models.SpecialDateType("BIRTHDAY"),
	})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *SpecialDateServiceTestSuite) TestDeleteSpecialDate_NotFound() {
	id := uuid.New()
	suite.mockSpecialDateRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	err := suite.specialDateService.DeleteSpecialDate(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrSpecialDateNotFound)
}

func TestSpecialDateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SpecialDateServiceTestSuite))
}
