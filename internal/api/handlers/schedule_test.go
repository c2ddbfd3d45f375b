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

type ScheduleHandlerTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockScheduleService *mocks.MockScheduleServiceInterface
	router              *gin.Engine
}

func (suite *ScheduleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockScheduleService = mocks.NewMockScheduleServiceInterface(suite.ctrl)
	handler := handlers.NewScheduleHandler(suite.mockScheduleService)

	suite.router = gin.New()
	suite.router.POST("/schedules", handler.CreateSchedule)
	suite.router.GET("/schedules", handler.ListSchedulesInWeek)
	suite.router.POST("/schedules/week", handler.AssignWeek)
	suite.router.DELETE("/schedules/week", handler.UnassignWeek)
	suite.router.GET("/schedules/week-revision", handler.GetWeekRevision)
	suite.router.POST("/schedules/generate", handler.GenerateWeek)
	suite.router.DELETE("/schedules/:id", handler.DeleteSchedule)
}

func (suite *ScheduleHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ScheduleHandlerTestSuite) TestCreateSchedule_Created() {
	userID, taskID := uuid.New(), uuid.New()
	suite.mockScheduleService.EXPECT().CreateSchedule(gomock.Any()).DoAndReturn(
		func(req *service.CreateScheduleRequest) (*service.ScheduleResponse, error) {
			assert.Equal(suite.T(), userID, req.UserID)
			assert.Equal(suite.T(), "2026-03-02", req.Date)
			return &service.ScheduleResponse{ID: uuid.New(), Date: req.Date}, nil
		})

	body, _ := json.Marshal(map[string]any{
		"userId": userID.String(),
		"taskId": taskID.String(),
		"date":   "2026-03-02",
	})
	req := httptest.NewRequest(http.MethodPost, "/schedules", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestCreateSchedule_ConflictMapsTo409() {
	suite.mockScheduleService.EXPECT().CreateSchedule(gomock.Any()).Return(nil, apperrors.ErrScheduleInConflict)

	body, _ := json.Marshal(map[string]any{
		"userId": uuid.New().String(),
		"taskId": uuid.New().String(),
		"date":   "2026-03-02",
	})
	req := httptest.NewRequest(http.MethodPost, "/schedules", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestCreateSchedule_TaskNotOnDayMapsTo400() {
	suite.mockScheduleService.EXPECT().CreateSchedule(gomock.Any()).Return(nil, apperrors.ErrTaskNotOnDay)

	body, _ := json.Marshal(map[string]any{
		"userId": uuid.New().String(),
		"taskId": uuid.New().String(),
		"date":   "2026-03-03",
	})
	req := httptest.NewRequest(http.MethodPost, "/schedules", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestCreateSchedule_DisabledUserMapsTo409() {
	suite.mockScheduleService.EXPECT().CreateSchedule(gomock.Any()).Return(nil, apperrors.ErrUserDisabled)

	body, _ := json.Marshal(map[string]any{
		"userId": uuid.New().String(),
		"taskId": uuid.New().String(),
		"date":   "2026-03-02",
	})
	req := httptest.NewRequest(http.MethodPost, "/schedules", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestAssignWeek_BadPeriodMapsTo400() {
	suite.mockScheduleService.EXPECT().AssignWeek(gomock.Any()).Return(nil, apperrors.ErrWeekNotMondayToSunday)

	body, _ := json.Marshal(map[string]any{
		"userId":   uuid.New().String(),
		"taskId":   uuid.New().String(),
		"fromDate": "2026-03-03",
		"toDate":   "2026-03-09",
	})
	req := httptest.NewRequest(http.MethodPost, "/schedules/week", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestUnassignWeek_NoContent() {
	suite.mockScheduleService.EXPECT().UnassignWeek(gomock.Any()).Return(nil)

	body, _ := json.Marshal(map[string]any{
		"userId":   uuid.New().String(),
		"taskId":   uuid.New().String(),
		"fromDate": "2026-03-02",
		"toDate":   "2026-03-08",
	})
	req := httptest.NewRequest(http.MethodDelete, "/schedules/week", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestGetWeekRevision() {
	suite.mockScheduleService.EXPECT().GetWeekRevision("2026-03-02").
		Return(&service.WeekRevisionResponse{WeekStart: "2026-03-02", Revision: 3}, nil)

	req := httptest.NewRequest(http.MethodGet, "/schedules/week-revision?weekStart=2026-03-02", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var got service.WeekRevisionResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), int64(3), got.Revision)
}

func (suite *ScheduleHandlerTestSuite) TestGenerateWeek_Success() {
	suite.mockScheduleService.EXPECT().GenerateWeek(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, req *service.GenerateWeekRequest) (*service.GenerationResponse, error) {
			assert.Equal(suite.T(), "2026-03-02", req.WeekStart)
			assert.Equal(suite.T(), int64(2), req.Revision)
			return &service.GenerationResponse{WeekStart: "2026-03-02", Revision: 3}, nil
		})

	body, _ := json.Marshal(map[string]any{"weekStart": "2026-03-02", "revision": 2})
	req := httptest.NewRequest(http.MethodPost, "/schedules/generate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var got service.GenerationResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), int64(3), got.Revision)
}

func (suite *ScheduleHandlerTestSuite) TestGenerateWeek_RevisionConflictMapsTo409() {
	suite.mockScheduleService.EXPECT().GenerateWeek(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewVersionConflictError("schedule week", 2, 3))

	body, _ := json.Marshal(map[string]any{"weekStart": "2026-03-02", "revision": 2})
	req := httptest.NewRequest(http.MethodPost, "/schedules/generate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestDeleteSchedule_NotFound() {
	id := uuid.New()
	suite.mockScheduleService.EXPECT().DeleteSchedule(id).Return(apperrors.ErrScheduleNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/schedules/"+id.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func TestScheduleHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleHandlerTestSuite))
}
