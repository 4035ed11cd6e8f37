package lead

import "time"

// CreateContactInput carries a public contact form submission
type CreateContactInput struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Message string
}

// UpdateContactInput carries an admin update to a contact message.
// Nil fields are left unchanged.
type UpdateContactInput struct {
	Status *string
	Notes  *string
}

// CreateQuoteInput carries a public quote request submission
type CreateQuoteInput struct {
	Name        string
	Email       string
	Phone       string
	Company     string
	Services    []string
	Budget      string
	Timeline    string
	Description string
}

// UpdateQuoteInput carries an admin update to a quote request.
// Nil fields are left unchanged.
type UpdateQuoteInput struct {
	Status   *string
	Priority *string
	Notes    *string
}

// CreateConsultationInput carries a public consultation booking submission
type CreateConsultationInput struct {
	Name          string
	Email         string
	Phone         string
	Company       string
	Service       string
	Message       string
	PreferredDate string
}

// UpdateConsultationInput carries an admin update to a consultation booking.
// Nil fields are left unchanged.
type UpdateConsultationInput struct {
	Status      *string
	Priority    *string
	Notes       *string
	ScheduledAt *time.Time
}
