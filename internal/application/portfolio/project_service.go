package portfolio

import (
	"context"

	"github.com/agency/backend/internal/domain/portfolio"
	"github.com/agency/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProjectService handles portfolio project operations
type ProjectService struct {
	repo    portfolio.ProjectRepository
	storage ObjectStorageService
	logger  *zap.Logger
}

// NewProjectService creates a new ProjectService
func NewProjectService(repo portfolio.ProjectRepository, storage ObjectStorageService, logger *zap.Logger) *ProjectService {
	return &ProjectService{repo: repo, storage: storage, logger: logger}
}

// Create adds an unpublished project to the portfolio
func (s *ProjectService) Create(ctx context.Context, input CreateProjectInput) (*portfolio.Project, error) {
	project, err := portfolio.NewProject(input.Title, input.Description, input.Category,
		portfolio.HostedImage{URL: input.Image.URL, StorageKey: input.Image.StorageKey},
		input.Technologies, input.LiveURL)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, project); err != nil {
		s.logger.Error("Failed to save project", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Project created",
		zap.String("project_id", project.ID.String()),
		zap.String("title", project.Title))
	return project, nil
}

// Get returns a single project
func (s *ProjectService) Get(ctx context.Context, id uuid.UUID) (*portfolio.Project, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns a page of projects matching the filter
func (s *ProjectService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[portfolio.Project], error) {
	projects, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(projects, total, filter.Page, filter.PageSize)
	return &page, nil
}

// ListPublished returns published projects for the public site
func (s *ProjectService) ListPublished(ctx context.Context) ([]portfolio.Project, error) {
	return s.repo.FindPublished(ctx)
}

// Update applies an admin update to a project
func (s *ProjectService) Update(ctx context.Context, id uuid.UUID, input UpdateProjectInput) (*portfolio.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldStorageKey := project.Image.StorageKey

	if input.Title != nil {
		project.Title = *input.Title
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.Category != nil {
		project.Category = *input.Category
	}
	if input.Image != nil {
		if err := project.SetImage(portfolio.HostedImage{
			URL:        input.Image.URL,
			StorageKey: input.Image.StorageKey,
		}); err != nil {
			return nil, err
		}
	}
	if input.Technologies != nil {
		project.Technologies = *input.Technologies
	}
	if input.LiveURL != nil {
		project.LiveURL = *input.LiveURL
	}
	if input.Featured != nil {
		project.SetFeatured(*input.Featured)
	}
	if input.Published != nil {
		if *input.Published {
			project.Publish()
		} else {
			project.Unpublish()
		}
	}
	if input.SortOrder != nil {
		project.SortOrder = *input.SortOrder
	}
	project.Touch()

	if err := s.repo.Save(ctx, project); err != nil {
		s.logger.Error("Failed to update project", zap.Error(err))
		return nil, err
	}

	// drop the replaced image after the new one is committed
	if input.Image != nil && oldStorageKey != "" && oldStorageKey != project.Image.StorageKey {
		if err := s.storage.DeleteObject(ctx, oldStorageKey); err != nil {
			s.logger.Warn("Failed to delete replaced project image",
				zap.String("storage_key", oldStorageKey), zap.Error(err))
		}
	}

	return project, nil
}

// Delete removes a project and its stored image
func (s *ProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if project.Image.StorageKey != "" {
		if err := s.storage.DeleteObject(ctx, project.Image.StorageKey); err != nil {
			s.logger.Warn("Failed to delete project image",
				zap.String("storage_key", project.Image.StorageKey), zap.Error(err))
		}
	}

	s.logger.Info("Project deleted", zap.String("project_id", id.String()))
	return nil
}
