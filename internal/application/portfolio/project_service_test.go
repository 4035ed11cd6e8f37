package portfolio

import (
	"context"
	"testing"
	"time"

	"github.com/agency/backend/internal/domain/portfolio"
	"github.com/agency/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockProjectRepository is a mock implementation of portfolio.ProjectRepository
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*portfolio.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portfolio.Project), args.Error(1)
}

func (m *MockProjectRepository) FindAll(ctx context.Context, filter shared.Filter) ([]portfolio.Project, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]portfolio.Project), args.Error(1)
}

func (m *MockProjectRepository) FindPublished(ctx context.Context) ([]portfolio.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]portfolio.Project), args.Error(1)
}

func (m *MockProjectRepository) Save(ctx context.Context, project *portfolio.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProjectRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockObjectStorage is a mock implementation of ObjectStorageService
type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error) {
	args := m.Called(ctx, storageKey, contentType, expiresIn)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockObjectStorage) PublicURL(storageKey string) string {
	args := m.Called(storageKey)
	return args.String(0)
}

func (m *MockObjectStorage) DeleteObject(ctx context.Context, storageKey string) error {
	args := m.Called(ctx, storageKey)
	return args.Error(0)
}

func (m *MockObjectStorage) ObjectExists(ctx context.Context, storageKey string) (bool, error) {
	args := m.Called(ctx, storageKey)
	return args.Bool(0), args.Error(1)
}

func boolptr(b bool) *bool    { return &b }
func strptr(s string) *string { return &s }
func intptr(i int) *int       { return &i }

func validProjectInput() CreateProjectInput {
	return CreateProjectInput{
		Title:       "Storefront redesign",
		Description: "A full rebuild",
		Category:    "web",
		Image: HostedImageInput{
			URL:        "https://cdn.agency.example/projects/cover.png",
			StorageKey: "projects/cover.png",
		},
		Technologies: []string{"go", "react"},
		LiveURL:      "https://client.example",
	}
}

func TestProjectService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an unpublished project", func(t *testing.T) {
		repo := new(MockProjectRepository)
		storage := new(MockObjectStorage)
		repo.On("Save", ctx, mock.AnythingOfType("*portfolio.Project")).Return(nil)

		svc := NewProjectService(repo, storage, zap.NewNop())
		project, err := svc.Create(ctx, validProjectInput())
		require.NoError(t, err)
		assert.False(t, project.Published)
		assert.Equal(t, "projects/cover.png", project.Image.StorageKey)
	})

	t.Run("rejects embedded image data", func(t *testing.T) {
		repo := new(MockProjectRepository)
		storage := new(MockObjectStorage)
		svc := NewProjectService(repo, storage, zap.NewNop())

		input := validProjectInput()
		input.Image.URL = "data:image/png;base64,AAAA"
		_, err := svc.Create(ctx, input)
		require.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestProjectService_Update(t *testing.T) {
	ctx := context.Background()

	newProject := func(t *testing.T) *portfolio.Project {
		t.Helper()
		project, err := portfolio.NewProject("Old title", "Old description", "web",
			portfolio.HostedImage{URL: "https://cdn.agency.example/projects/old.png", StorageKey: "projects/old.png"},
			nil, "")
		require.NoError(t, err)
		return project
	}

	t.Run("applies allow-listed fields", func(t *testing.T) {
		repo := new(MockProjectRepository)
		storage := new(MockObjectStorage)
		project := newProject(t)
		repo.On("FindByID", ctx, project.ID).Return(project, nil)
		repo.On("Save", ctx, project).Return(nil)

		svc := NewProjectService(repo, storage, zap.NewNop())
		updated, err := svc.Update(ctx, project.ID, UpdateProjectInput{
			Title:     strptr("New title"),
			Published: boolptr(true),
			SortOrder: intptr(5),
		})
		require.NoError(t, err)
		assert.Equal(t, "New title", updated.Title)
		assert.True(t, updated.Published)
		assert.Equal(t, 5, updated.SortOrder)
		storage.AssertNotCalled(t, "DeleteObject", mock.Anything, mock.Anything)
	})

	t.Run("replacing the image deletes the old object", func(t *testing.T) {
		repo := new(MockProjectRepository)
		storage := new(MockObjectStorage)
		project := newProject(t)
		repo.On("FindByID", ctx, project.ID).Return(project, nil)
		repo.On("Save", ctx, project).Return(nil)
		storage.On("DeleteObject", ctx, "projects/old.png").Return(nil)

		svc := NewProjectService(repo, storage, zap.NewNop())
		_, err := svc.Update(ctx, project.ID, UpdateProjectInput{
			Image: &HostedImageInput{
				URL:        "https://cdn.agency.example/projects/new.png",
				StorageKey: "projects/new.png",
			},
		})
		require.NoError(t, err)
		storage.AssertExpectations(t)
	})

	t.Run("propagates not found", func(t *testing.T) {
		repo := new(MockProjectRepository)
		storage := new(MockObjectStorage)
		id := uuid.New()
		repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		svc := NewProjectService(repo, storage, zap.NewNop())
		_, err := svc.Update(ctx, id, UpdateProjectInput{Title: strptr("x")})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestProjectService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProjectRepository)
	storage := new(MockObjectStorage)

	project, err := portfolio.NewProject("Title", "Description", "web",
		portfolio.HostedImage{URL: "https://cdn.agency.example/projects/cover.png", StorageKey: "projects/cover.png"},
		nil, "")
	require.NoError(t, err)

	repo.On("FindByID", ctx, project.ID).Return(project, nil)
	repo.On("Delete", ctx, project.ID).Return(nil)
	storage.On("DeleteObject", ctx, "projects/cover.png").Return(nil)

	svc := NewProjectService(repo, storage, zap.NewNop())
	require.NoError(t, svc.Delete(ctx, project.ID))
	storage.AssertExpectations(t)
}

func TestProjectService_ListPublished(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProjectRepository)
	storage := new(MockObjectStorage)
	repo.On("FindPublished", ctx).Return([]portfolio.Project{}, nil)

	svc := NewProjectService(repo, storage, zap.NewNop())
	projects, err := svc.ListPublished(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)
}
