package persistence

import (
	"context"
	"testing"

	"github.com/agency/backend/internal/domain/portfolio"
	"github.com/agency/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustProject(t *testing.T, title string) *portfolio.Project {
	t.Helper()
	project, err := portfolio.NewProject(title, "A case study", "web",
		portfolio.HostedImage{
			URL:        "https://cdn.agency.example/projects/" + title + ".png",
			StorageKey: "projects/" + title + ".png",
		},
		[]string{"go", "postgres"}, "https://client.example")
	require.NoError(t, err)
	return project
}

func TestGormProjectRepository_SaveAndFindByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormProjectRepository(db)
	ctx := context.Background()

	project := mustProject(t, "redesign")
	require.NoError(t, repo.Save(ctx, project))

	found, err := repo.FindByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, project.ID, found.ID)
	assert.Equal(t, project.Image.URL, found.Image.URL)
	assert.Equal(t, project.Image.StorageKey, found.Image.StorageKey)
	assert.Equal(t, []string{"go", "postgres"}, found.Technologies)
	assert.False(t, found.Published)
}

func TestGormProjectRepository_FindPublished(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormProjectRepository(db)
	ctx := context.Background()

	second := mustProject(t, "second")
	second.SortOrder = 2
	second.Publish()
	first := mustProject(t, "first")
	first.SortOrder = 1
	first.Publish()
	draft := mustProject(t, "draft")

	require.NoError(t, repo.Save(ctx, second))
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, draft))

	published, err := repo.FindPublished(ctx)
	require.NoError(t, err)
	require.Len(t, published, 2)
	assert.Equal(t, first.ID, published[0].ID)
	assert.Equal(t, second.ID, published[1].ID)
}

func TestGormProjectRepository_FindAllWithFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormProjectRepository(db)
	ctx := context.Background()

	featured := mustProject(t, "featured")
	featured.SetFeatured(true)
	plain := mustProject(t, "plain")
	require.NoError(t, repo.Save(ctx, featured))
	require.NoError(t, repo.Save(ctx, plain))

	t.Run("filters by featured", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Filters["featured"] = true
		projects, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		require.Len(t, projects, 1)
		assert.Equal(t, featured.ID, projects[0].ID)
	})

	t.Run("searches by title", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Search = "PLAIN"
		projects, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		require.Len(t, projects, 1)
		assert.Equal(t, plain.ID, projects[0].ID)
	})
}

func TestGormProjectRepository_DeleteTwiceReturnsNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormProjectRepository(db)
	ctx := context.Background()

	project := mustProject(t, "gone")
	require.NoError(t, repo.Save(ctx, project))

	require.NoError(t, repo.Delete(ctx, project.ID))
	assert.ErrorIs(t, repo.Delete(ctx, project.ID), shared.ErrNotFound)
}
