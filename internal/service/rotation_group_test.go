package service_test

import (
	"errors"
	"testing"

	"brokerage-rotation-backend/internal/database/models"
	apperrors "brokerage-rotation-backend/internal/errors"
	"brokerage-rotation-backend/internal/mocks"
	"brokerage-rotation-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// RotationGroupServiceTestSuite defines the test suite for RotationGroupService
type RotationGroupServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *mocks.MockRotationGroupRepositoryInterface
	groupService *service.RotationGroupService
	validator    *validator.Validate
}

// SetupTest sets up the test suite
func (suite *RotationGroupServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockRotationGroupRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.groupService = service.NewRotationGroupService(suite.mockRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *RotationGroupServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateRotationGroup tests creating a rotation group
func (suite *RotationGroupServiceTestSuite) TestCreateRotationGroup() {
	req := &service.CreateRotationGroupRequest{
		Name:      "Tel Aviv North",
		GroupKind: models.GroupKindLocation,
	}

	suite.mockRepo.EXPECT().
		GetByName(req.Name).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.groupService.Create(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), req.Name, response.Name)
	assert.Equal(suite.T(), models.GroupKindLocation, response.GroupKind)
	assert.True(suite.T(), response.Active)
}

// TestCreateRotationGroupValidationError tests creating a group with validation error
func (suite *RotationGroupServiceTestSuite) TestCreateRotationGroupValidationError() {
	req := &service.CreateRotationGroupRequest{
		Name:      "", // Empty name should fail validation
		GroupKind: models.GroupKindLocation,
	}

	response, err := suite.groupService.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestCreateRotationGroupInvalidKind tests creating a group with an unknown kind
func (suite *RotationGroupServiceTestSuite) TestCreateRotationGroupInvalidKind() {
	req := &service.CreateRotationGroupRequest{
		Name:      "Somewhere",
		GroupKind: models.GroupKind("region"),
	}

	response, err := suite.groupService.Create(req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidGroupKind)
}

// TestCreateRotationGroupDuplicateName tests creating a group whose name is taken
func (suite *RotationGroupServiceTestSuite) TestCreateRotationGroupDuplicateName() {
	req := &service.CreateRotationGroupRequest{
		Name:      "Tel Aviv North",
		GroupKind: models.GroupKindLocation,
	}

	existing := &models.RotationGroup{
		Name:      req.Name,
		GroupKind: models.GroupKindLocation,
		Active:    true,
	}

	suite.mockRepo.EXPECT().
		GetByName(req.Name).
		Return(existing, nil).
		Times(1)

	response, err := suite.groupService.Create(req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRotationGroupExists)
}

// TestGetRotationGroupByID tests retrieving a rotation group
func (suite *RotationGroupServiceTestSuite) TestGetRotationGroupByID() {
	groupID := uuid.New()
	group := &models.RotationGroup{
		BaseModel: models.BaseModel{ID: groupID},
		Name:      "Commercial Sector",
		GroupKind: models.GroupKindSector,
		Active:    true,
	}

	suite.mockRepo.EXPECT().
		GetByID(groupID).
		Return(group, nil).
		Times(1)

	response, err := suite.groupService.GetByID(groupID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), groupID, response.ID)
	assert.Equal(suite.T(), "Commercial Sector", response.Name)
}

// TestGetRotationGroupNotFound tests retrieving a missing rotation group
func (suite *RotationGroupServiceTestSuite) TestGetRotationGroupNotFound() {
	groupID := uuid.New()

	suite.mockRepo.EXPECT().
		GetByID(groupID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.groupService.GetByID(groupID)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRotationGroupNotFound)
}

// TestListRotationGroups tests listing rotation groups with pagination
func (suite *RotationGroupServiceTestSuite) TestListRotationGroups() {
	groups := []models.RotationGroup{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Haifa", GroupKind: models.GroupKindLocation, Active: true},
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Jerusalem", GroupKind: models.GroupKindLocation, Active: true},
	}

	suite.mockRepo.EXPECT().
		GetAll(20, 0).
		Return(groups, int64(2), nil).
		Times(1)

	response, err := suite.groupService.List(20, 0)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.RotationGroups, 2)
	assert.Equal(suite.T(), int64(2), response.Total)
}

// TestListRotationGroupsClampsPagination tests that invalid pagination falls back to defaults
func (suite *RotationGroupServiceTestSuite) TestListRotationGroupsClampsPagination() {
	suite.mockRepo.EXPECT().
		GetAll(20, 0).
		Return([]models.RotationGroup{}, int64(0), nil).
		Times(1)

	response, err := suite.groupService.List(500, -3)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 20, response.Limit)
	assert.Equal(suite.T(), 0, response.Offset)
}

// TestUpdateRotationGroup tests renaming a rotation group
func (suite *RotationGroupServiceTestSuite) TestUpdateRotationGroup() {
	groupID := uuid.New()
	group := &models.RotationGroup{
		BaseModel: models.BaseModel{ID: groupID},
		Name:      "Old Name",
		GroupKind: models.GroupKindLocation,
		Active:    true,
	}
	newName := "New Name"

	suite.mockRepo.EXPECT().
		GetByID(groupID).
		Return(group, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.groupService.Update(groupID, &service.UpdateRotationGroupRequest{Name: &newName})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), newName, response.Name)
}

// TestUpdateRotationGroupEmptyName tests that renaming to an empty name is rejected
func (suite *RotationGroupServiceTestSuite) TestUpdateRotationGroupEmptyName() {
	groupID := uuid.New()
	group := &models.RotationGroup{
		BaseModel: models.BaseModel{ID: groupID},
		Name:      "Old Name",
		GroupKind: models.GroupKindLocation,
	}
	empty := ""

	suite.mockRepo.EXPECT().
		GetByID(groupID).
		Return(group, nil).
		Times(1)

	response, err := suite.groupService.Update(groupID, &service.UpdateRotationGroupRequest{Name: &empty})

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestDeactivateRotationGroup tests deactivating a rotation group
func (suite *RotationGroupServiceTestSuite) TestDeactivateRotationGroup() {
	groupID := uuid.New()
	group := &models.RotationGroup{
		BaseModel: models.BaseModel{ID: groupID},
		Name:      "Closing Down",
		GroupKind: models.GroupKindLocation,
		Active:    true,
	}

	suite.mockRepo.EXPECT().
		GetByID(groupID).
		Return(group, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		Deactivate(groupID).
		Return(nil).
		Times(1)

	err := suite.groupService.Deactivate(groupID)

	assert.NoError(suite.T(), err)
}

// TestDeactivateRotationGroupRepoError tests that repository failures are surfaced
func (suite *RotationGroupServiceTestSuite) TestDeactivateRotationGroupRepoError() {
	groupID := uuid.New()

	suite.mockRepo.EXPECT().
		GetByID(groupID).
		Return(nil, errors.New("connection reset")).
		Times(1)

	err := suite.groupService.Deactivate(groupID)

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to get rotation group")
}

// TestRotationGroupServiceTestSuite runs the test suite
func TestRotationGroupServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RotationGroupServiceTestSuite))
}
