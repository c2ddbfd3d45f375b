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

type TaskHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockTaskService *mocks.MockTaskServiceInterface
	router          *gin.Engine
}

func (suite *TaskHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTaskService = mocks.NewMockTaskServiceInterface(suite.ctrl)
	handler := handlers.NewTaskHandler(suite.mockTaskService)

	suite.router = gin.New()
	suite.router.POST("/tasks", handler.CreateTask)
	suite.router.GET("/tasks", handler.ListTasks)
	suite.router.GET("/tasks/visible-in-obstacle-form", handler.ListTasksVisibleInObstacleForm)
	suite.router.GET("/tasks/:id", handler.GetTask)
	suite.router.PUT("/tasks/:id", handler.UpdateTask)
	suite.router.DELETE("/tasks/:id", handler.DeleteTask)
}

func (suite *TaskHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TaskHandlerTestSuite) TestCreateTask_Created() {
	suite.mockTaskService.EXPECT().CreateTask(gomock.Any()).DoAndReturn(
		func(req *service.CreateTaskRequest) (*service.TaskResponse, error) {
			assert.Equal(suite.T(), "Refectory reading", req.Name)
			assert.Equal(suite.T(), "kitchen supervisor", req.SupervisorRoleName)
			return &service.TaskResponse{ID: uuid.New(), Name: req.Name}, nil
		})

	body, _ := json.Marshal(map[string]any{
		"name":               "Refectory reading",
		"participantsLimit":  1,
		"allowedRoleNames":   []string{"reader"},
		"supervisorRoleName": "kitchen supervisor",
		"daysOfWeek":         []string{"MONDAY"},
	})
	req := httptest.NewRequest(http.MethodPost, "/tasks", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
}

func (suite *TaskHandlerTestSuite) TestCreateTask_UnknownDayMapsTo400() {
	suite.mockTaskService.EXPECT().CreateTask(gomock.Any()).
		Return(nil, apperrors.NewValidationError("daysOfWeek", "unknown day of week: FUNDAY"))

	body, _ := json.Marshal(map[string]any{
		"name":               "Refectory reading",
		"participantsLimit":  1,
		"allowedRoleNames":   []string{"reader"},
		"supervisorRoleName": "kitchen supervisor",
		"daysOfWeek":         []string{"FUNDAY"},
	})
	req := httptest.NewRequest(http.MethodPost, "/tasks", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *TaskHandlerTestSuite) TestListTasksVisibleInObstacleForm() {
	suite.mockTaskService.EXPECT().ListTasksVisibleInObstacleForm().
		Return([]service.TaskResponse{{ID: uuid.New(), Name: "Refectory reading"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/tasks/visible-in-obstacle-form", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var got []service.TaskResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(suite.T(), got, 1)
}

func (suite *TaskHandlerTestSuite) TestListTasks_SupervisorRoleFilter() {
	suite.mockTaskService.EXPECT().ListTasksBySupervisorRole("kitchen supervisor").
		Return([]service.TaskResponse{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/tasks?supervisorRole=kitchen%20supervisor", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *TaskHandlerTestSuite) TestDeleteTask_ReferencedMapsTo409() {
	id := uuid.New()
	suite.mockTaskService.EXPECT().DeleteTask(id).Return(apperrors.NewReferencedError("task", "schedules"))

	req := httptest.NewRequest(http.MethodDelete, "/tasks/"+id.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *TaskHandlerTestSuite) TestGetTask_NotFound() {
	id := uuid.New()
	suite.mockTaskService.EXPECT().GetTask(id).Return(nil, apperrors.ErrTaskNotFound)

	req := httptest.NewRequest(http.MethodGet, "/tasks/"+id.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}
