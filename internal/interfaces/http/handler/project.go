package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	portfolioapp "github.com/agency/backend/internal/application/portfolio"
	"github.com/agency/backend/internal/domain/portfolio"
)

// ProjectHandler handles portfolio project endpoints
type ProjectHandler struct {
	BaseHandler
	projectService *portfolioapp.ProjectService
	mediaService   *portfolioapp.MediaService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectService *portfolioapp.ProjectService, mediaService *portfolioapp.MediaService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		mediaService:   mediaService,
	}
}

// HostedImageRequest references an already-uploaded project image
type HostedImageRequest struct {
	URL        string `json:"url" binding:"required,url,max=500"`
	StorageKey string `json:"storage_key" binding:"required,min=1,max=500"`
}

// CreateProjectRequest represents a new portfolio project
type CreateProjectRequest struct {
	Title        string             `json:"title" binding:"required,min=1,max=200"`
	Description  string             `json:"description" binding:"required,min=1"`
	Category     string             `json:"category" binding:"required,min=1,max=100"`
	Image        HostedImageRequest `json:"image" binding:"required"`
	Technologies []string           `json:"technologies" binding:"dive,min=1,max=100"`
	LiveURL      string             `json:"live_url" binding:"omitempty,url,max=500"`
}

// UpdateProjectRequest represents an admin update to a project
type UpdateProjectRequest struct {
	Title        *string             `json:"title" binding:"omitempty,min=1,max=200"`
	Description  *string             `json:"description" binding:"omitempty,min=1"`
	Category     *string             `json:"category" binding:"omitempty,min=1,max=100"`
	Image        *HostedImageRequest `json:"image"`
	Technologies *[]string           `json:"technologies" binding:"omitempty,dive,min=1,max=100"`
	LiveURL      *string             `json:"live_url" binding:"omitempty,url,max=500"`
	Featured     *bool               `json:"featured"`
	Published    *bool               `json:"published"`
	SortOrder    *int                `json:"sort_order" binding:"omitempty,min=0"`
}

// RequestUploadRequest asks for a presigned project image upload
type RequestUploadRequest struct {
	FileName    string `json:"file_name" binding:"required,min=1,max=300"`
	ContentType string `json:"content_type" binding:"required,min=1,max=100"`
}

// ConfirmUploadRequest confirms that a presigned upload completed
type ConfirmUploadRequest struct {
	StorageKey string `json:"storage_key" binding:"required,min=1,max=500"`
}

// ProjectImageResponse is the API representation of a hosted project image
type ProjectImageResponse struct {
	URL        string `json:"url"`
	StorageKey string `json:"storage_key"`
}

// ProjectResponse is the API representation of a portfolio project
type ProjectResponse struct {
	ID           uuid.UUID            `json:"id"`
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	Category     string               `json:"category"`
	Image        ProjectImageResponse `json:"image"`
	Technologies []string             `json:"technologies"`
	LiveURL      string               `json:"live_url"`
	Featured     bool                 `json:"featured"`
	Published    bool                 `json:"published"`
	SortOrder    int                  `json:"sort_order"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

func projectResponse(p *portfolio.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		Image: ProjectImageResponse{
			URL:        p.Image.URL,
			StorageKey: p.Image.StorageKey,
		},
		Technologies: p.Technologies,
		LiveURL:      p.LiveURL,
		Featured:     p.Featured,
		Published:    p.Published,
		SortOrder:    p.SortOrder,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func projectResponses(projects []portfolio.Project) []ProjectResponse {
	out := make([]ProjectResponse, len(projects))
	for i := range projects {
		out[i] = projectResponse(&projects[i])
	}
	return out
}

// Create adds a new portfolio project
func (h *ProjectHandler) Create(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), portfolioapp.CreateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Image: portfolioapp.HostedImageInput{
			URL:        req.Image.URL,
			StorageKey: req.Image.StorageKey,
		},
		Technologies: req.Technologies,
		LiveURL:      req.LiveURL,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, projectResponse(project))
}

// List returns projects for the back office
func (h *ProjectHandler) List(c *gin.Context) {
	filter, err := parseListFilter(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}
	queryFilterValue(c, &filter, "category")
	if featured := c.Query("featured"); featured != "" {
		filter.Filters["featured"] = featured == "true"
	}
	if published := c.Query("published"); published != "" {
		filter.Filters["published"] = published == "true"
	}

	page, err := h.projectService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, projectResponses(page.Items), page.Total, page.Page, page.PageSize)
}

// ListPublished returns published projects for the public site
func (h *ProjectHandler) ListPublished(c *gin.Context) {
	projects, err := h.projectService.ListPublished(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, projectResponses(projects))
}

// GetByID returns a single project
func (h *ProjectHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid project ID format")
		return
	}

	project, err := h.projectService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, projectResponse(project))
}

// Update applies an admin update to a project
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid project ID format")
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	input := portfolioapp.UpdateProjectInput{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Technologies: req.Technologies,
		LiveURL:      req.LiveURL,
		Featured:     req.Featured,
		Published:    req.Published,
		SortOrder:    req.SortOrder,
	}
	if req.Image != nil {
		input.Image = &portfolioapp.HostedImageInput{
			URL:        req.Image.URL,
			StorageKey: req.Image.StorageKey,
		}
	}

	project, err := h.projectService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, projectResponse(project))
}

// Delete removes a project and its hosted image
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid project ID format")
		return
	}

	if err := h.projectService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Project deleted"})
}

// RequestUpload issues a presigned upload slot for a project image
func (h *ProjectHandler) RequestUpload(c *gin.Context) {
	var req RequestUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	ticket, err := h.mediaService.RequestUpload(c.Request.Context(), portfolioapp.RequestUploadInput{
		FileName:    req.FileName,
		ContentType: req.ContentType,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, ticket)
}

// ConfirmUpload verifies that a presigned upload landed in storage
func (h *ProjectHandler) ConfirmUpload(c *gin.Context) {
	var req ConfirmUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	if err := h.mediaService.ConfirmUpload(c.Request.Context(), req.StorageKey); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Upload confirmed"})
}
