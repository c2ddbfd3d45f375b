package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"community-scheduler-backend/internal/api/handlers"
	apperrors "community-scheduler-backend/internal/errors"
	"community-scheduler-backend/internal/mocks"
	"community-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ConflictHandlerTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockConflictService *mocks.MockConflictServiceInterface
	router              *gin.Engine
}

func (suite *ConflictHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockConflictService = mocks.NewMockConflictServiceInterface(suite.ctrl)
	handler := handlers.NewConflictHandler(suite.mockConflictService)

	suite.router = gin.New()
	suite.router.POST("/conflicts", handler.CreateConflict)
	suite.router.GET("/conflicts", handler.ListConflicts)
	suite.router.GET("/conflicts/:id", handler.GetConflict)
	suite.router.PUT("/conflicts/:id", handler.UpdateConflict)
	suite.router.DELETE("/conflicts/:id", handler.DeleteConflict)
}

func (suite *ConflictHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ConflictHandlerTestSuite) TestCreateConflict_Created() {
	task1ID, task2ID := uuid.New(), uuid.New()
	suite.mockConflictService.EXPECT().CreateConflict(gomock.Any()).DoAndReturn(
		func(req *service.CreateConflictRequest) (*service.ConflictResponse, error) {
			assert.Equal(suite.T(), task1ID, req.Task1ID)
			assert.Equal(suite.T(), task2ID, req.Task2ID)
			return &service.ConflictResponse{ID: uuid.New()}, nil
		})

	body, _ := json.Marshal(map[string]any{
		"task1Id":    task1ID.String(),
		"task2Id":    task2ID.String(),
		"daysOfWeek": []string{"MONDAY"},
	})
	req := httptest.NewRequest(http.MethodPost, "/conflicts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
}

func (suite *ConflictHandlerTestSuite) TestCreateConflict_SelfPairMapsTo400() {
	suite.mockConflictService.EXPECT().CreateConflict(gomock.Any()).Return(nil, apperrors.ErrSameTasksForConflict)

	id := uuid.New().String()
	body, _ := json.Marshal(map[string]any{
		"task1Id":    id,
		"task2Id":    id,
		"daysOfWeek": []string{"MONDAY"},
	})
	req := httptest.NewRequest(http.MethodPost, "/conflicts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ConflictHandlerTestSuite) TestCreateConflict_DuplicatePairMapsTo409() {
	suite.mockConflictService.EXPECT().CreateConflict(gomock.Any()).Return(nil, apperrors.ErrConflictExists)

	body, _ := json.Marshal(map[string]any{
		"task1Id":    uuid.New().String(),
		"task2Id":    uuid.New().String(),
		"daysOfWeek": []string{"MONDAY"},
	})
	req := httptest.NewRequest(http.MethodPost, "/conflicts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *ConflictHandlerTestSuite) TestDeleteConflict_NotFound() {
	id := uuid.New()
	suite.mockConflictService.EXPECT().DeleteConflict(id).Return(apperrors.ErrConflictNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/conflicts/"+id.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func TestConflictHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ConflictHandlerTestSuite))
}
