package service

import (
	"context"
	"strings"
	"sync"

	"lawnmow/internal/pricing"
	"lawnmow/internal/quotes/repository"
	"lawnmow/internal/quotes/validator"
	"lawnmow/pkg/config"
	apperrors "lawnmow/pkg/errors"
	"lawnmow/pkg/events"
	"lawnmow/pkg/model"
	"lawnmow/pkg/sanitizer"
	"lawnmow/pkg/validation"
)

type QuoteService interface {
	Create(ctx context.Context, quote *model.Quote) error
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.Quote, int64, error)
}

type quoteService struct {
	repo      repository.QuoteRepository
	validator *validator.QuoteValidator
	publisher events.Publisher
	cfg       *config.Config
}

func NewQuoteService(
	repo repository.QuoteRepository,
	validator *validator.QuoteValidator,
	publisher events.Publisher,
	cfg *config.Config,
) QuoteService {
	return &quoteService{
		repo:      repo,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
	}
}

// Create validates the request, computes the price breakdown and
// persists the resulting quote. The stored document carries the
// breakdown rounded to cents; the calculator itself stays unrounded.
func (s *quoteService) Create(ctx context.Context, quote *model.Quote) error {
	s.sanitize(quote)

	if err := s.validator.Validate(quote); err != nil {
		s.cfg.Log.Warn("Quote validation failed", "error", err)
		if fieldErrs, ok := err.(validation.FieldErrors); ok {
			return apperrors.Validation("Invalid quote input", fieldErrs.Details())
		}
		return apperrors.InvalidInput(err.Error())
	}

	breakdown := pricing.Calculate(quote.LawnSizeSqft, quote.Frequency, quote.Extras)
	quote.BasePrice = pricing.Round2(breakdown.Base)
	quote.Discount = pricing.Round2(breakdown.Discount)
	quote.ExtrasTotal = pricing.Round2(breakdown.ExtrasTotal)
	quote.ServiceFee = pricing.ServiceFee
	quote.Total = pricing.Round2(breakdown.Total)

	if err := s.repo.Create(ctx, quote); err != nil {
		s.cfg.Log.Error("Failed to create quote", "error", err)
		return apperrors.Internal("Failed to create quote", err)
	}

	if err := s.publisher.Publish(ctx, events.New(events.TypeQuoteCreated, quote.ID, quote)); err != nil {
		s.cfg.Log.Warn("Failed to publish quote.created event", "id", quote.ID, "error", err)
	}

	s.cfg.Log.Info("Quote created successfully",
		"id", quote.ID,
		"lawn_size_sqft", quote.LawnSizeSqft,
		"frequency", quote.Frequency,
		"total", quote.Total,
	)
	return nil
}

func (s *quoteService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Quote, int64, error) {
	var count int64
	var quotes []*model.Quote
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count quotes", "error", errCount)
			errCount = apperrors.Internal("Failed to count quotes", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		quotes, errFind = s.repo.FindAll(ctx, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list quotes", "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve quotes", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	if quotes == nil {
		quotes = []*model.Quote{}
	}
	return quotes, count, nil
}

func (s *quoteService) sanitize(quote *model.Quote) {
	quote.Name = sanitizer.TrimAndNormalize(quote.Name)
	quote.Email = strings.ToLower(strings.TrimSpace(quote.Email))
	quote.Address = sanitizer.TrimAndNormalize(quote.Address)
	quote.ZipCode = strings.TrimSpace(quote.ZipCode)
	quote.Frequency = strings.ToLower(strings.TrimSpace(quote.Frequency))
	quote.Extras = sanitizer.NormalizeExtras(quote.Extras)
}
