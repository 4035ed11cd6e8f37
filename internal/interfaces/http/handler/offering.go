package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	portfolioapp "github.com/agency/backend/internal/application/portfolio"
	"github.com/agency/backend/internal/domain/portfolio"
)

// OfferingHandler handles service offering endpoints
type OfferingHandler struct {
	BaseHandler
	offeringService *portfolioapp.OfferingService
}

// NewOfferingHandler creates a new OfferingHandler
func NewOfferingHandler(offeringService *portfolioapp.OfferingService) *OfferingHandler {
	return &OfferingHandler{offeringService: offeringService}
}

// CreateOfferingRequest represents a new service offering
type CreateOfferingRequest struct {
	Title       string   `json:"title" binding:"required,min=1,max=200"`
	Description string   `json:"description" binding:"required,min=1"`
	Icon        string   `json:"icon" binding:"max=100"`
	Features    []string `json:"features" binding:"dive,min=1,max=200"`
}

// UpdateOfferingRequest represents an admin update to an offering
type UpdateOfferingRequest struct {
	Title       *string   `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string   `json:"description" binding:"omitempty,min=1"`
	Icon        *string   `json:"icon" binding:"omitempty,max=100"`
	Features    *[]string `json:"features" binding:"omitempty,dive,min=1,max=200"`
	Active      *bool     `json:"active"`
	SortOrder   *int      `json:"sort_order" binding:"omitempty,min=0"`
}

// OfferingResponse is the API representation of a service offering
type OfferingResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Features    []string  `json:"features"`
	Active      bool      `json:"active"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func offeringResponse(o *portfolio.Offering) OfferingResponse {
	return OfferingResponse{
		ID:          o.ID,
		Title:       o.Title,
		Description: o.Description,
		Icon:        o.Icon,
		Features:    o.Features,
		Active:      o.Active,
		SortOrder:   o.SortOrder,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func offeringResponses(offerings []portfolio.Offering) []OfferingResponse {
	out := make([]OfferingResponse, len(offerings))
	for i := range offerings {
		out[i] = offeringResponse(&offerings[i])
	}
	return out
}

// Create adds a new service offering
func (h *OfferingHandler) Create(c *gin.Context) {
	var req CreateOfferingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	offering, err := h.offeringService.Create(c.Request.Context(), portfolioapp.CreateOfferingInput{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Features:    req.Features,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, offeringResponse(offering))
}

// List returns offerings for the back office
func (h *OfferingHandler) List(c *gin.Context) {
	filter, err := parseListFilter(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}
	if active := c.Query("active"); active != "" {
		filter.Filters["active"] = active == "true"
	}

	page, err := h.offeringService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, offeringResponses(page.Items), page.Total, page.Page, page.PageSize)
}

// ListActive returns active offerings for the public site
func (h *OfferingHandler) ListActive(c *gin.Context) {
	offerings, err := h.offeringService.ListActive(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, offeringResponses(offerings))
}

// GetByID returns a single offering
func (h *OfferingHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid offering ID format")
		return
	}

	offering, err := h.offeringService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, offeringResponse(offering))
}

// Update applies an admin update to an offering
func (h *OfferingHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid offering ID format")
		return
	}

	var req UpdateOfferingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	offering, err := h.offeringService.Update(c.Request.Context(), id, portfolioapp.UpdateOfferingInput{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Features:    req.Features,
		Active:      req.Active,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, offeringResponse(offering))
}

// Delete removes an offering
func (h *OfferingHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid offering ID format")
		return
	}

	if err := h.offeringService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Offering deleted"})
}
