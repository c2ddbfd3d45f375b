package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"community-scheduler-backend/internal/api/handlers"
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

type RoleHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockRoleService *mocks.MockRoleServiceInterface
	router          *gin.Engine
}

func (suite *RoleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRoleService = mocks.NewMockRoleServiceInterface(suite.ctrl)
	handler := handlers.NewRoleHandler(suite.mockRoleService)

	suite.router = gin.New()
	suite.router.POST("/roles", handler.CreateRole)
	suite.router.GET("/roles", handler.ListRoles)
	suite.router.GET("/roles/:id", handler.GetRole)
	suite.router.PUT("/roles/:id", handler.UpdateRole)
	suite.router.DELETE("/roles/:id", handler.DeleteRole)
	suite.router.PUT("/roles/sort-orders", handler.UpdateSortOrders)
}

func (suite *RoleHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RoleHandlerTestSuite) TestCreateRole_Created() {
	resp := &service.RoleResponse{
		ID:        uuid.New(),
		Name:      "cantor",
		Type:      models.RoleTypeTaskPerformer,
		SortOrder: 5,
	}
	suite.mockRoleService.EXPECT().CreateRole(gomock.Any()).DoAndReturn(
		func(req *service.CreateRoleRequest) (*service.RoleResponse, error) {
			assert.Equal(suite.T(), "cantor", req.Name)
			return resp, nil
		})

	body, _ := json.Marshal(map[string]any{"name": "cantor", "type": "TASK_PERFORMER"})
	req := httptest.NewRequest(http.MethodPost, "/roles", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	var got service.RoleResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), resp.ID, got.ID)
	assert.Equal(suite.T(), int64(5), got.SortOrder)
}

func (suite *RoleHandlerTestSuite) TestCreateRole_DuplicateName() {
	suite.mockRoleService.EXPECT().CreateRole(gomock.Any()).Return(nil, apperrors.ErrRoleExists)

	body, _ := json.Marshal(map[string]any{"name": "cantor", "type": "TASK_PERFORMER"})
	req := httptest.NewRequest(http.MethodPost, "/roles", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *RoleHandlerTestSuite) TestCreateRole_MalformedBody() {
	req := httptest.NewRequest(http.MethodPost, "/roles", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *RoleHandlerTestSuite) TestGetRole_InvalidID() {
	req := httptest.NewRequest(http.MethodGet, "/roles/not-a-uuid", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *RoleHandlerTestSuite) TestGetRole_NotFound() {
	id := uuid.New()
	suite.mockRoleService.EXPECT().GetRole(id).Return(nil, apperrors.ErrRoleNotFound)

	req := httptest.NewRequest(http.MethodGet, "/roles/"+id.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *RoleHandlerTestSuite) TestListRoles_TypeFilterPassedThrough() {
	supervisor := models.RoleTypeSupervisor
	suite.mockRoleService.EXPECT().ListRoles(&supervisor).Return([]service.RoleResponse{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/roles?type=SUPERVISOR", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *RoleHandlerTestSuite) TestUpdateRole_SystemRoleConflict() {
	id := uuid.New()
	suite.mockRoleService.EXPECT().UpdateRole(id, gomock.Any()).Return(nil, apperrors.ErrSystemRoleImmutable)

	body, _ := json.Marshal(map[string]any{"name": "renamed"})
	req := httptest.NewRequest(http.MethodPut, "/roles/"+id.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *RoleHandlerTestSuite) TestDeleteRole_Referenced() {
	id := uuid.New()
	suite.mockRoleService.EXPECT().DeleteRole(id).Return(apperrors.NewReferencedError("role", "tasks"))

	req := httptest.NewRequest(http.MethodDelete, "/roles/"+id.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *RoleHandlerTestSuite) TestDeleteRole_NoContent() {
	id := uuid.New()
	suite.mockRoleService.EXPECT().DeleteRole(id).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/roles/"+id.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *RoleHandlerTestSuite) TestUpdateSortOrders_NoContent() {
	id := uuid.New()
	suite.mockRoleService.EXPECT().UpdateSortOrders(gomock.Any()).DoAndReturn(
		func(updates []service.RoleSortOrderUpdate) error {
			assert.Len(suite.T(), updates, 1)
			assert.Equal(suite.T(), id, updates[0].ID)
			return nil
		})

	body, _ := json.Marshal([]map[string]any{{"id": id.String(), "sortOrder": 3}})
	req := httptest.NewRequest(http.MethodPut, "/roles/sort-orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func TestRoleHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RoleHandlerTestSuite))
}
