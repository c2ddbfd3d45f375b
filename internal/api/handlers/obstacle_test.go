package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"community-scheduler-backend/internal/api/handlers"
	"community-scheduler-backend/internal/auth"
	"community-scheduler-backend/internal/database/models"
	apperrors "community-scheduler-backend/internal/errors"
	"community-scheduler-backend/internal/mocks"
	"community-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ObstacleHandlerTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockObstacleService *mocks.MockObstacleServiceInterface
	callerID            uuid.UUID
	router              *gin.Engine
	// unauthenticated serves the same routes without a caller on the context
	unauthenticated *gin.Engine
}

func (suite *ObstacleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockObstacleService = mocks.NewMockObstacleServiceInterface(suite.ctrl)
	handler := handlers.NewObstacleHandler(suite.mockObstacleService)
	suite.callerID = uuid.New()

	register := func(router *gin.Engine) {
		router.POST("/obstacles", handler.CreateObstacle)
		router.GET("/obstacles/count", handler.CountObstaclesByStatus)
		router.GET("/obstacles/:id", handler.GetObstacle)
		router.PATCH("/obstacles/:id", handler.PatchObstacle)
		router.DELETE("/obstacles/:id", handler.DeleteObstacle)
	}

	suite.router = gin.New()
	suite.router.Use(func(c *gin.Context) {
		c.Set(auth.ContextUserIDKey, suite.callerID)
		c.Next()
	})
	register(suite.router)

	suite.unauthenticated = gin.New()
	register(suite.unauthenticated)
}

func (suite *ObstacleHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ObstacleHandlerTestSuite) TestCreateObstacle_Created() {
	userID := uuid.New()
	taskID := uuid.New()
	suite.mockObstacleService.EXPECT().CreateObstacle(suite.callerID, gomock.Any()).DoAndReturn(
		func(_ uuid.UUID, req *service.CreateObstacleRequest) (*service.ObstacleResponse, error) {
			assert.Equal(suite.T(), userID, req.UserID)
			assert.Equal(suite.T(), []uuid.UUID{taskID}, req.TaskIDs)
			return &service.ObstacleResponse{
				ID:     uuid.New(),
				Status: models.ObstacleStatusAwaiting,
			}, nil
		})

	body, _ := json.Marshal(map[string]any{
		"userId":   userID.String(),
		"taskIds":  []string{taskID.String()},
		"fromDate": "2026-03-02",
		"toDate":   "2026-03-08",
	})
	req := httptest.NewRequest(http.MethodPost, "/obstacles", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	var got service.ObstacleResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), models.ObstacleStatusAwaiting, got.Status)
}

func (suite *ObstacleHandlerTestSuite) TestCreateObstacle_MissingAuthentication() {
	body, _ := json.Marshal(map[string]any{
		"userId":   uuid.New().String(),
		"taskIds":  []string{uuid.New().String()},
		"fromDate": "2026-03-02",
		"toDate":   "2026-03-08",
	})
	req := httptest.NewRequest(http.MethodPost, "/obstacles", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.unauthenticated.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *ObstacleHandlerTestSuite) TestCreateObstacle_ForAnotherUserForbidden() {
	suite.mockObstacleService.EXPECT().
		CreateObstacle(suite.callerID, gomock.Any()).
		Return(nil, apperrors.ErrNotSupervisor)

	body, _ := json.Marshal(map[string]any{
		"userId":   uuid.New().String(),
		"taskIds":  []string{uuid.New().String()},
		"fromDate": "2026-03-02",
		"toDate":   "2026-03-08",
	})
	req := httptest.NewRequest(http.MethodPost, "/obstacles", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

func (suite *ObstacleHandlerTestSuite) TestCreateObstacle_InvalidDateRange() {
	suite.mockObstacleService.EXPECT().CreateObstacle(suite.callerID, gomock.Any()).Return(nil, apperrors.ErrInvalidDateRange)

	body, _ := json.Marshal(map[string]any{
		"userId":   uuid.New().String(),
		"taskIds":  []string{uuid.New().String()},
		"fromDate": "2026-03-08",
		"toDate":   "2026-03-02",
	})
	req := httptest.NewRequest(http.MethodPost, "/obstacles", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ObstacleHandlerTestSuite) TestPatchObstacle_PassesCallerAsRecipient() {
	obstacleID := uuid.New()
	suite.mockObstacleService.EXPECT().
		PatchObstacle(obstacleID, suite.callerID, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, _ uuid.UUID, req *service.PatchObstacleRequest) (*service.ObstacleResponse, error) {
			assert.Equal(suite.T(), models.ObstacleStatusApproved, req.Status)
			return &service.ObstacleResponse{ID: obstacleID, Status: models.ObstacleStatusApproved}, nil
		})

	body, _ := json.Marshal(map[string]any{"status": "APPROVED", "recipientAnswer": "rest well"})
	req := httptest.NewRequest(http.MethodPatch, "/obstacles/"+obstacleID.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *ObstacleHandlerTestSuite) TestPatchObstacle_MissingAuthentication() {
	body, _ := json.Marshal(map[string]any{"status": "APPROVED"})
	req := httptest.NewRequest(http.MethodPatch, "/obstacles/"+uuid.New().String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.unauthenticated.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *ObstacleHandlerTestSuite) TestPatchObstacle_NonSupervisorForbidden() {
	obstacleID := uuid.New()
	suite.mockObstacleService.EXPECT().
		PatchObstacle(obstacleID, suite.callerID, gomock.Any()).
		Return(nil, apperrors.ErrNotSupervisor)

	body, _ := json.Marshal(map[string]any{"status": "APPROVED"})
	req := httptest.NewRequest(http.MethodPatch, "/obstacles/"+obstacleID.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

func (suite *ObstacleHandlerTestSuite) TestPatchObstacle_AlreadyDecided() {
	obstacleID := uuid.New()
	suite.mockObstacleService.EXPECT().
		PatchObstacle(obstacleID, suite.callerID, gomock.Any()).
		Return(nil, apperrors.NewStateTransitionError("obstacle", "already decided as APPROVED"))

	body, _ := json.Marshal(map[string]any{"status": "REJECTED"})
	req := httptest.NewRequest(http.MethodPatch, "/obstacles/"+obstacleID.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *ObstacleHandlerTestSuite) TestDeleteObstacle_NotApplicantForbidden() {
	obstacleID := uuid.New()
	suite.mockObstacleService.EXPECT().
		DeleteObstacle(obstacleID, suite.callerID).
		Return(apperrors.ErrNotApplicant)

	req := httptest.NewRequest(http.MethodDelete, "/obstacles/"+obstacleID.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

func (suite *ObstacleHandlerTestSuite) TestDeleteObstacle_NoContent() {
	obstacleID := uuid.New()
	suite.mockObstacleService.EXPECT().DeleteObstacle(obstacleID, suite.callerID).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/obstacles/"+obstacleID.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *ObstacleHandlerTestSuite) TestCountObstacles_UnknownStatus() {
	suite.mockObstacleService.EXPECT().
		CountObstaclesByStatus(models.ObstacleStatus("MAYBE")).
		Return(nil, apperrors.NewValidationError("status", "unknown obstacle status"))

	req := httptest.NewRequest(http.MethodGet, "/obstacles/count?status=MAYBE", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func TestObstacleHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ObstacleHandlerTestSuite))
}
