package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gudang/internal/apperrors"
	"gudang/internal/models"
	"gudang/internal/repositories"
)

// MockCategoryRepository is a mock implementation of CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetAll() ([]models.Category, error) {
	args := m.Called()
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetDeleted() ([]models.Category, error) {
	args := m.Called()
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(id string) (*models.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetDeletedByID(id string) (*models.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByName(name string) (*models.Category, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Update(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) SoftDelete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCategoryRepository) Restore(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCategoryRepository) HardDelete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestCreateCategoryRejectsDuplicateName(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	svc := NewCategoryService(mockRepo)

	existing := &models.Category{ID: "cat-1", Name: "Footwear"}
	mockRepo.On("GetByName", "Footwear").Return(existing, nil)

	err := svc.CreateCategory(&models.Category{Name: "Footwear"})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeConflict))
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateCategorySucceedsWhenNameFree(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	svc := NewCategoryService(mockRepo)

	mockRepo.On("GetByName", "Footwear").Return(nil, repositories.ErrNotFound)
	mockRepo.On("Create", mock.AnythingOfType("*models.Category")).Return(nil)

	err := svc.CreateCategory(&models.Category{Name: "Footwear"})
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestUpdateCategoryAllowsKeepingOwnName(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	svc := NewCategoryService(mockRepo)

	category := &models.Category{ID: "cat-1", Name: "Footwear"}
	mockRepo.On("GetByName", "Footwear").Return(category, nil)
	mockRepo.On("Update", category).Return(nil)

	require.NoError(t, svc.UpdateCategory(category))
	mockRepo.AssertExpectations(t)
}

func TestUpdateCategoryRejectsNameOfOtherCategory(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	svc := NewCategoryService(mockRepo)

	other := &models.Category{ID: "cat-2", Name: "Footwear"}
	mockRepo.On("GetByName", "Footwear").Return(other, nil)

	err := svc.UpdateCategory(&models.Category{ID: "cat-1", Name: "Footwear"})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeConflict))
	mockRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestRestoreCategoryConflictsWithActiveName(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	svc := NewCategoryService(mockRepo)

	deleted := &models.Category{ID: "cat-1", Name: "Footwear"}
	active := &models.Category{ID: "cat-2", Name: "Footwear"}
	mockRepo.On("GetDeletedByID", "cat-1").Return(deleted, nil)
	mockRepo.On("GetByName", "Footwear").Return(active, nil)

	_, err := svc.RestoreCategory("cat-1")
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeConflict))
	mockRepo.AssertNotCalled(t, "Restore", mock.Anything)
}

func TestRestoreCategorySucceedsWhenNameFree(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	svc := NewCategoryService(mockRepo)

	deleted := &models.Category{ID: "cat-1", Name: "Footwear"}
	mockRepo.On("GetDeletedByID", "cat-1").Return(deleted, nil)
	mockRepo.On("GetByName", "Footwear").Return(nil, repositories.ErrNotFound)
	mockRepo.On("Restore", "cat-1").Return(nil)
	mockRepo.On("GetByID", "cat-1").Return(deleted, nil)

	restored, err := svc.RestoreCategory("cat-1")
	require.NoError(t, err)
	assert.Equal(t, "cat-1", restored.ID)
	mockRepo.AssertExpectations(t)
}

func TestGetCategoryByIDNotFound(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	svc := NewCategoryService(mockRepo)

	mockRepo.On("GetByID", "missing").Return(nil, repositories.ErrNotFound)

	_, err := svc.GetCategoryByID("missing")
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
}
