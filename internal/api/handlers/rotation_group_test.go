package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"brokerage-rotation-backend/internal/database/models"
	apperrors "brokerage-rotation-backend/internal/errors"
	"brokerage-rotation-backend/internal/mocks"
	"brokerage-rotation-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// RotationGroupHandlerTestSuite tests the RotationGroupHandler
type RotationGroupHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	ctrl        *gomock.Controller
	mockService *mocks.MockRotationGroupServiceInterface
	handler     *RotationGroupHandler
}

// SetupSuite sets up the test suite
func (suite *RotationGroupHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

// SetupTest sets up each individual test
func (suite *RotationGroupHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockRotationGroupServiceInterface(suite.ctrl)
	suite.handler = NewRotationGroupHandler(suite.mockService)

	suite.router = gin.New()

	v1 := suite.router.Group("/api/v1")
	{
		groups := v1.Group("/rotation-groups")
		{
			groups.POST("", suite.handler.CreateRotationGroup)
			groups.GET("", suite.handler.ListRotationGroups)
			groups.GET("/:id", suite.handler.GetRotationGroup)
			groups.PUT("/:id", suite.handler.UpdateRotationGroup)
			groups.DELETE("/:id", suite.handler.DeactivateRotationGroup)
		}
	}
}

// TearDownTest cleans up after each test
func (suite *RotationGroupHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateRotationGroup tests creating a new rotation group
func (suite *RotationGroupHandlerTestSuite) TestCreateRotationGroup() {
	groupID := uuid.New()

	request := service.CreateRotationGroupRequest{
		Name:      "Tel Aviv North",
		GroupKind: models.GroupKindLocation,
	}

	expectedResponse := &service.RotationGroupResponse{
		ID:        groupID,
		Name:      "Tel Aviv North",
		GroupKind: models.GroupKindLocation,
		Active:    true,
	}

	suite.mockService.EXPECT().
		Create(gomock.Any()).
		Return(expectedResponse, nil)

	body, _ := json.Marshal(request)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/rotation-groups", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response service.RotationGroupResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), groupID, response.ID)
	assert.Equal(suite.T(), "Tel Aviv North", response.Name)
}

// TestCreateRotationGroupConflict tests creating a group whose name is taken
func (suite *RotationGroupHandlerTestSuite) TestCreateRotationGroupConflict() {
	request := service.CreateRotationGroupRequest{
		Name:      "Tel Aviv North",
		GroupKind: models.GroupKindLocation,
	}

	suite.mockService.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.ErrRotationGroupExists)

	body, _ := json.Marshal(request)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/rotation-groups", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

// TestGetRotationGroup tests retrieving a rotation group by ID
func (suite *RotationGroupHandlerTestSuite) TestGetRotationGroup() {
	groupID := uuid.New()

	expectedResponse := &service.RotationGroupResponse{
		ID:        groupID,
		Name:      "Commercial Sector",
		GroupKind: models.GroupKindSector,
		Active:    true,
	}

	suite.mockService.EXPECT().
		GetByID(groupID).
		Return(expectedResponse, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rotation-groups/"+groupID.String(), nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response service.RotationGroupResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), groupID, response.ID)
}

// TestGetRotationGroupInvalidID tests retrieving a group with a malformed ID
func (suite *RotationGroupHandlerTestSuite) TestGetRotationGroupInvalidID() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/rotation-groups/not-a-uuid", nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestGetRotationGroupNotFound tests retrieving a missing group
func (suite *RotationGroupHandlerTestSuite) TestGetRotationGroupNotFound() {
	groupID := uuid.New()

	suite.mockService.EXPECT().
		GetByID(groupID).
		Return(nil, apperrors.ErrRotationGroupNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rotation-groups/"+groupID.String(), nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestListRotationGroups tests listing rotation groups
func (suite *RotationGroupHandlerTestSuite) TestListRotationGroups() {
	expectedResponse := &service.RotationGroupListResponse{
		RotationGroups: []service.RotationGroupResponse{
			{ID: uuid.New(), Name: "Haifa", GroupKind: models.GroupKindLocation, Active: true},
			{ID: uuid.New(), Name: "Jerusalem", GroupKind: models.GroupKindLocation, Active: true},
		},
		Total:  2,
		Limit:  20,
		Offset: 0,
	}

	suite.mockService.EXPECT().
		List(20, 0).
		Return(expectedResponse, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rotation-groups", nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response service.RotationGroupListResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.RotationGroups, 2)
	assert.Equal(suite.T(), int64(2), response.Total)
}

// TestListRotationGroupsCustomPagination tests that query parameters reach the service
func (suite *RotationGroupHandlerTestSuite) TestListRotationGroupsCustomPagination() {
	expectedResponse := &service.RotationGroupListResponse{
		RotationGroups: []service.RotationGroupResponse{},
		Total:          0,
		Limit:          5,
		Offset:         10,
	}

	suite.mockService.EXPECT().
		List(5, 10).
		Return(expectedResponse, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rotation-groups?limit=5&offset=10", nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestUpdateRotationGroup tests renaming a rotation group
func (suite *RotationGroupHandlerTestSuite) TestUpdateRotationGroup() {
	groupID := uuid.New()
	newName := "Tel Aviv Central"

	expectedResponse := &service.RotationGroupResponse{
		ID:        groupID,
		Name:      newName,
		GroupKind: models.GroupKindLocation,
		Active:    true,
	}

	suite.mockService.EXPECT().
		Update(groupID, gomock.Any()).
		Return(expectedResponse, nil)

	body, _ := json.Marshal(service.UpdateRotationGroupRequest{Name: &newName})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/rotation-groups/"+groupID.String(), bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response service.RotationGroupResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), newName, response.Name)
}

// TestDeactivateRotationGroup tests deactivating a rotation group
func (suite *RotationGroupHandlerTestSuite) TestDeactivateRotationGroup() {
	groupID := uuid.New()

	suite.mockService.EXPECT().
		Deactivate(groupID).
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/rotation-groups/"+groupID.String(), nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

// TestRotationGroupHandlerTestSuite runs the test suite
func TestRotationGroupHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RotationGroupHandlerTestSuite))
}
