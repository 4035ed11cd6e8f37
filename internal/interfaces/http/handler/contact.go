package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	leadapp "github.com/agency/backend/internal/application/lead"
	"github.com/agency/backend/internal/domain/lead"
)

// ContactHandler handles contact message endpoints
type ContactHandler struct {
	BaseHandler
	contactService *leadapp.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contactService *leadapp.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// CreateContactRequest represents a public contact form submission
type CreateContactRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=200"`
	Email   string `json:"email" binding:"required,email,max=200"`
	Phone   string `json:"phone" binding:"required,min=1,max=50"`
	Company string `json:"company" binding:"max=200"`
	Message string `json:"message" binding:"required,min=1"`
}

// UpdateContactRequest represents an admin update to a contact message
type UpdateContactRequest struct {
	Status *string `json:"status" binding:"omitempty,oneof=pending replied"`
	Notes  *string `json:"notes"`
}

// ContactResponse is the API representation of a contact message
type ContactResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func contactResponse(c *lead.Contact) ContactResponse {
	return ContactResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Company:   c.Company,
		Message:   c.Message,
		Status:    string(c.Status),
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func contactResponses(contacts []lead.Contact) []ContactResponse {
	out := make([]ContactResponse, len(contacts))
	for i := range contacts {
		out[i] = contactResponse(&contacts[i])
	}
	return out
}

// Create accepts a contact form submission from the public site
func (h *ContactHandler) Create(c *gin.Context) {
	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	contact, err := h.contactService.Create(c.Request.Context(), leadapp.CreateContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Message: req.Message,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, contactResponse(contact))
}

// List returns contact messages for the back office
func (h *ContactHandler) List(c *gin.Context) {
	filter, err := parseListFilter(c)
	if err != nil {
		h.BindingError(c, err)
		return
	}
	queryFilterValue(c, &filter, "status")
	queryFilterValue(c, &filter, "email")

	page, err := h.contactService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, contactResponses(page.Items), page.Total, page.Page, page.PageSize)
}

// GetByID returns a single contact message
func (h *ContactHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid contact ID format")
		return
	}

	contact, err := h.contactService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, contactResponse(contact))
}

// Update applies an admin update to a contact message
func (h *ContactHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid contact ID format")
		return
	}

	var req UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	contact, err := h.contactService.Update(c.Request.Context(), id, leadapp.UpdateContactInput{
		Status: req.Status,
		Notes:  req.Notes,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, contactResponse(contact))
}

// Delete removes a contact message
func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid contact ID format")
		return
	}

	if err := h.contactService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Contact deleted"})
}
