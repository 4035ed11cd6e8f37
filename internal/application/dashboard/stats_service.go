package dashboard

import (
	"context"

	"github.com/agency/backend/internal/domain/lead"
	"github.com/agency/backend/internal/domain/portfolio"
	"github.com/agency/backend/internal/domain/shared"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// LeadStats summarizes one lead inbox
type LeadStats struct {
	Total   int64 `json:"total"`
	Pending int64 `json:"pending"`
}

// ConsultationStats additionally tracks how many bookings are scheduled
type ConsultationStats struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Scheduled int64 `json:"scheduled"`
}

// ContentStats summarizes one content collection
type ContentStats struct {
	Total   int64 `json:"total"`
	Visible int64 `json:"visible"`
}

// Stats is the aggregate snapshot shown on the admin dashboard
type Stats struct {
	Contacts      LeadStats         `json:"contacts"`
	Quotes        LeadStats         `json:"quotes"`
	Consultations ConsultationStats `json:"consultations"`
	Projects      ContentStats      `json:"projects"`
	Offerings     ContentStats      `json:"offerings"`
}

// StatsService aggregates counts across all collections
type StatsService struct {
	contacts      lead.ContactRepository
	quotes        lead.QuoteRepository
	consultations lead.ConsultationRepository
	projects      portfolio.ProjectRepository
	offerings     portfolio.OfferingRepository
	logger        *zap.Logger
}

// NewStatsService creates a new StatsService
func NewStatsService(
	contacts lead.ContactRepository,
	quotes lead.QuoteRepository,
	consultations lead.ConsultationRepository,
	projects portfolio.ProjectRepository,
	offerings portfolio.OfferingRepository,
	logger *zap.Logger,
) *StatsService {
	return &StatsService{
		contacts:      contacts,
		quotes:        quotes,
		consultations: consultations,
		projects:      projects,
		offerings:     offerings,
		logger:        logger,
	}
}

// Collect gathers all dashboard counts concurrently.
// A failure in any count fails the whole snapshot.
func (s *StatsService) Collect(ctx context.Context) (*Stats, error) {
	var stats Stats
	g, gctx := errgroup.WithContext(ctx)

	emptyFilter := shared.Filter{}

	g.Go(func() error {
		total, err := s.contacts.Count(gctx, emptyFilter)
		stats.Contacts.Total = total
		return err
	})
	g.Go(func() error {
		pending, err := s.contacts.CountByStatus(gctx, lead.ContactStatusPending)
		stats.Contacts.Pending = pending
		return err
	})
	g.Go(func() error {
		total, err := s.quotes.Count(gctx, emptyFilter)
		stats.Quotes.Total = total
		return err
	})
	g.Go(func() error {
		pending, err := s.quotes.CountByStatus(gctx, lead.QuoteStatusPending)
		stats.Quotes.Pending = pending
		return err
	})
	g.Go(func() error {
		total, err := s.consultations.Count(gctx, emptyFilter)
		stats.Consultations.Total = total
		return err
	})
	g.Go(func() error {
		pending, err := s.consultations.CountByStatus(gctx, lead.ConsultationStatusPending)
		stats.Consultations.Pending = pending
		return err
	})
	g.Go(func() error {
		scheduled, err := s.consultations.CountByStatus(gctx, lead.ConsultationStatusScheduled)
		stats.Consultations.Scheduled = scheduled
		return err
	})
	g.Go(func() error {
		total, err := s.projects.Count(gctx, emptyFilter)
		stats.Projects.Total = total
		return err
	})
	g.Go(func() error {
		published, err := s.projects.Count(gctx, shared.Filter{
			Filters: map[string]interface{}{"published": true},
		})
		stats.Projects.Visible = published
		return err
	})
	g.Go(func() error {
		total, err := s.offerings.Count(gctx, emptyFilter)
		stats.Offerings.Total = total
		return err
	})
	g.Go(func() error {
		active, err := s.offerings.Count(gctx, shared.Filter{
			Filters: map[string]interface{}{"active": true},
		})
		stats.Offerings.Visible = active
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("Failed to collect dashboard stats", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}
