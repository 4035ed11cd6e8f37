package lead

import (
	"context"
	"testing"

	"github.com/agency/backend/internal/domain/lead"
	"github.com/agency/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockQuoteRepository is a mock implementation of lead.QuoteRepository
type MockQuoteRepository struct {
	mock.Mock
}

func (m *MockQuoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*lead.Quote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lead.Quote), args.Error(1)
}

func (m *MockQuoteRepository) FindAll(ctx context.Context, filter shared.Filter) ([]lead.Quote, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]lead.Quote), args.Error(1)
}

func (m *MockQuoteRepository) Save(ctx context.Context, quote *lead.Quote) error {
	args := m.Called(ctx, quote)
	return args.Error(0)
}

func (m *MockQuoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuoteRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuoteRepository) CountByStatus(ctx context.Context, status lead.QuoteStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func validQuoteInput() CreateQuoteInput {
	return CreateQuoteInput{
		Name:        "Jamie",
		Email:       "jamie@example.com",
		Phone:       "+1-555-0100",
		Company:     "Acme Co",
		Services:    []string{"web-design"},
		Budget:      "$10k-$25k",
		Timeline:    "2-3 months",
		Description: "Full redesign",
	}
}

func TestQuoteService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("saves a valid submission with defaults", func(t *testing.T) {
		repo := new(MockQuoteRepository)
		repo.On("Save", ctx, mock.AnythingOfType("*lead.Quote")).Return(nil)

		svc := NewQuoteService(repo, zap.NewNop())
		quote, err := svc.Create(ctx, validQuoteInput())
		require.NoError(t, err)
		assert.Equal(t, lead.QuoteStatusPending, quote.Status)
		assert.Equal(t, lead.PriorityMedium, quote.Priority)
	})

	t.Run("rejects empty services list", func(t *testing.T) {
		repo := new(MockQuoteRepository)
		svc := NewQuoteService(repo, zap.NewNop())

		input := validQuoteInput()
		input.Services = nil
		_, err := svc.Create(ctx, input)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "services")
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestQuoteService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("applies status, priority and notes", func(t *testing.T) {
		repo := new(MockQuoteRepository)
		quote, err := lead.NewQuote("Jamie", "jamie@example.com", "+1-555-0100", "",
			[]string{"seo"}, "$5k", "1 month", "Tune up")
		require.NoError(t, err)
		repo.On("FindByID", ctx, quote.ID).Return(quote, nil)
		repo.On("Save", ctx, quote).Return(nil)

		svc := NewQuoteService(repo, zap.NewNop())
		updated, err := svc.Update(ctx, quote.ID, UpdateQuoteInput{
			Status:   strptr(string(lead.QuoteStatusQuoted)),
			Priority: strptr(string(lead.PriorityHigh)),
			Notes:    strptr("estimate sent"),
		})
		require.NoError(t, err)
		assert.Equal(t, lead.QuoteStatusQuoted, updated.Status)
		assert.Equal(t, lead.PriorityHigh, updated.Priority)
		assert.Equal(t, "estimate sent", updated.Notes)
	})

	t.Run("leaves omitted fields unchanged", func(t *testing.T) {
		repo := new(MockQuoteRepository)
		quote, err := lead.NewQuote("Jamie", "jamie@example.com", "+1-555-0100", "",
			[]string{"seo"}, "$5k", "1 month", "Tune up")
		require.NoError(t, err)
		repo.On("FindByID", ctx, quote.ID).Return(quote, nil)
		repo.On("Save", ctx, quote).Return(nil)

		svc := NewQuoteService(repo, zap.NewNop())
		updated, err := svc.Update(ctx, quote.ID, UpdateQuoteInput{
			Notes: strptr("just a note"),
		})
		require.NoError(t, err)
		assert.Equal(t, lead.QuoteStatusPending, updated.Status)
		assert.Equal(t, lead.PriorityMedium, updated.Priority)
	})

	t.Run("propagates not found", func(t *testing.T) {
		repo := new(MockQuoteRepository)
		id := uuid.New()
		repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		svc := NewQuoteService(repo, zap.NewNop())
		_, err := svc.Update(ctx, id, UpdateQuoteInput{Notes: strptr("x")})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestQuoteService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := new(MockQuoteRepository)
	id := uuid.New()
	repo.On("Delete", ctx, id).Return(nil)

	svc := NewQuoteService(repo, zap.NewNop())
	assert.NoError(t, svc.Delete(ctx, id))
	repo.AssertExpectations(t)
}
