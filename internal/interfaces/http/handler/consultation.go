package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	leadapp "github.com/agency/backend/internal/application/lead"
	"github.com/agency/backend/internal/domain/lead"
)

// ConsultationHandler handles consultation booking endpoints
type ConsultationHandler struct {
	BaseHandler
	consultationService *leadapp.ConsultationService
}

// NewConsultationHandler creates a new ConsultationHandler
func NewConsultationHandler(consultationService *leadapp.ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{consultationService: consultationService}
}

// CreateConsultationRequest represents a public consultation booking submission
type CreateConsultationRequest struct {
	Name          string `json:"name" binding:"required,min=1,max=200"`
	Email         string `json:"email" binding:"required,email,max=200"`
	Phone         string `json:"phone" binding:"required,min=1,max=50"`
	Company       string `json:"company" binding:"max=200"`
	Service       string `json:"service" binding:"max=200"`
	Message       string `json:"message" binding:"required,min=1"`
	PreferredDate string `json:"preferred_date" binding:"max=100"`
}

// UpdateConsultationRequest represents an admin update to a consultation booking
type UpdateConsultationRequest struct {
	Status      *string    `json:"status" binding:"omitempty,oneof=pending scheduled completed cancelled"`
	Priority    *string    `json:"priority" binding:"omitempty,oneof=low medium high"`
	Notes       *string    `json:"notes"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}

// ConsultationResponse is the API representation of a consultation booking
type ConsultationResponse struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Company       string     `json:"company"`
	Service       string     `json:"service"`
	Message       string     `json:"message"`
	PreferredDate string     `json:"preferred_date"`
	Status        string     `json:"status"`
	Priority      string     `json:"priority"`
	ScheduledAt   *time.Time `json:"scheduled_at"`
	Notes         string     `json:"notes"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func consultationResponse(b *lead.Consultation) ConsultationResponse {
	return ConsultationResponse{
		ID:            b.ID,
		Name:          b.Name,
		Email:         b.Email,
		Phone:         b.Phone,
		Company:       b.Company,
		Service:       b.Service,
		Message:       b.Message,
		PreferredDate: b.PreferredDate,
		Status:        string(b.Status),
		Priority:      string(b.Priority),
		ScheduledAt:   b.ScheduledAt,
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func consultationResponses(consultations []lead.Consultation) []ConsultationResponse {
	out := make([]ConsultationResponse, len(consultations))
	for i := range consultations {
		out[i] = consultationResponse(&consultations[i])
	}
	return out
}

// Create accepts a consultation booking from the public site
func (h *ConsultationHandler) Create(c *gin.Context) {
	var req CreateConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	consultation, err := h.consultationService.Create(c.Request.Context(), leadapp.CreateConsultationInput{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Company:       req.Company,
		Service:       req.Service,
		Message:       req.Message,
		PreferredDate: req.PreferredDate,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, consultationResponse(consultation))
}

// List returns consultation bookings for the back office
func (h *ConsultationHandler) List(c *gin.Context) {
	filter, err := parseListFilter(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}
	queryFilterValue(c, &filter, "status")
	queryFilterValue(c, &filter, "priority")
	queryFilterValue(c, &filter, "service")

	page, err := h.consultationService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, consultationResponses(page.Items), page.Total, page.Page, page.PageSize)
}

// GetByID returns a single consultation booking
func (h *ConsultationHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid consultation ID format")
		return
	}

	consultation, err := h.consultationService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, consultationResponse(consultation))
}

// Update applies an admin update to a consultation booking
func (h *ConsultationHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid consultation ID format")
		return
	}

	var req UpdateConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	consultation, err := h.consultationService.Update(c.Request.Context(), id, leadapp.UpdateConsultationInput{
		Status:      req.Status,
		Priority:    req.Priority,
		Notes:       req.Notes,
		ScheduledAt: req.ScheduledAt,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, consultationResponse(consultation))
}

// Delete removes a consultation booking
func (h *ConsultationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid consultation ID format")
		return
	}

	if err := h.consultationService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Consultation deleted"})
}
