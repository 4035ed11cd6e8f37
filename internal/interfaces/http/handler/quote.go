package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	leadapp "github.com/agency/backend/internal/application/lead"
	"github.com/agency/backend/internal/domain/lead"
)

// QuoteHandler handles quote request endpoints
type QuoteHandler struct {
	BaseHandler
	quoteService *leadapp.QuoteService
}

// NewQuoteHandler creates a new QuoteHandler
func NewQuoteHandler(quoteService *leadapp.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

// CreateQuoteRequest represents a public quote request submission
type CreateQuoteRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=200"`
	Email       string   `json:"email" binding:"required,email,max=200"`
	Phone       string   `json:"phone" binding:"required,min=1,max=50"`
	Company     string   `json:"company" binding:"max=200"`
	Services    []string `json:"services" binding:"required,min=1,dive,min=1,max=100"`
	Budget      string   `json:"budget" binding:"required,max=100"`
	Timeline    string   `json:"timeline" binding:"required,max=100"`
	Description string   `json:"description" binding:"required,min=1"`
}

// UpdateQuoteRequest represents an admin update to a quote request
type UpdateQuoteRequest struct {
	Status   *string `json:"status" binding:"omitempty,oneof=pending reviewing quoted accepted rejected completed"`
	Priority *string `json:"priority" binding:"omitempty,oneof=low medium high"`
	Notes    *string `json:"notes"`
}

// QuoteResponse is the API representation of a quote request
type QuoteResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Company     string    `json:"company"`
	Services    []string  `json:"services"`
	Budget      string    `json:"budget"`
	Timeline    string    `json:"timeline"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func quoteResponse(q *lead.Quote) QuoteResponse {
	return QuoteResponse{
		ID:          q.ID,
		Name:        q.Name,
		Email:       q.Email,
		Phone:       q.Phone,
		Company:     q.Company,
		Services:    q.Services,
		Budget:      q.Budget,
		Timeline:    q.Timeline,
		Description: q.Description,
		Status:      string(q.Status),
		Priority:    string(q.Priority),
		Notes:       q.Notes,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

func quoteResponses(quotes []lead.Quote) []QuoteResponse {
	out := make([]QuoteResponse, len(quotes))
	for i := range quotes {
		out[i] = quoteResponse(&quotes[i])
	}
	return out
}

// Create accepts a quote request from the public site
func (h *QuoteHandler) Create(c *gin.Context) {
	var req CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	quote, err := h.quoteService.Create(c.Request.Context(), leadapp.CreateQuoteInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.Company,
		Services:    req.Services,
		Budget:      req.Budget,
		Timeline:    req.Timeline,
		Description: req.Description,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, quoteResponse(quote))
}

// List returns quote requests for the back office
func (h *QuoteHandler) List(c *gin.Context) {
	filter, err := parseListFilter(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}
	queryFilterValue(c, &filter, "status")
	queryFilterValue(c, &filter, "priority")
	queryFilterValue(c, &filter, "email")

	page, err := h.quoteService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, quoteResponses(page.Items), page.Total, page.Page, page.PageSize)
}

// GetByID returns a single quote request
func (h *QuoteHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid quote ID format")
		return
	}

	quote, err := h.quoteService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, quoteResponse(quote))
}

// Update applies an admin update to a quote request
func (h *QuoteHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid quote ID format")
		return
	}

	var req UpdateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	quote, err := h.quoteService.Update(c.Request.Context(), id, leadapp.UpdateQuoteInput{
		Status:   req.Status,
		Priority: req.Priority,
		Notes:    req.Notes,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, quoteResponse(quote))
}

// Delete removes a quote request
func (h *QuoteHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid quote ID format")
		return
	}

	if err := h.quoteService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Quote deleted"})
}
