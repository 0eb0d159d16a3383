package service

import (
	"context"
	"strings"
	"sync"

	"lawnmow/internal/bookings/repository"
	"lawnmow/internal/bookings/validator"
	"lawnmow/pkg/config"
	apperrors "lawnmow/pkg/errors"
	"lawnmow/pkg/events"
	"lawnmow/pkg/model"
	"lawnmow/pkg/sanitizer"
	"lawnmow/pkg/validation"
)

type BookingService interface {
	Create(ctx context.Context, booking *model.Booking) error
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	validator *validator.BookingValidator
	publisher events.Publisher
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	validator *validator.BookingValidator,
	publisher events.Publisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
	}
}

// Create validates and persists a booking. The caller-supplied
// price_total is stored as given; whether the server should recompute
// it is an open product question, so the trust gap stays.
func (s *bookingService) Create(ctx context.Context, booking *model.Booking) error {
	s.applyDefaults(booking)
	s.sanitize(booking)

	if err := s.validator.Validate(booking); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		if fieldErrs, ok := err.(validation.FieldErrors); ok {
			return apperrors.Validation("Invalid booking input", fieldErrs.Details())
		}
		return apperrors.InvalidInput(err.Error())
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		s.cfg.Log.Error("Failed to create booking", "error", err)
		return apperrors.Internal("Failed to create booking", err)
	}

	if err := s.publisher.Publish(ctx, events.New(events.TypeBookingCreated, booking.ID, booking)); err != nil {
		s.cfg.Log.Warn("Failed to publish booking.created event", "id", booking.ID, "error", err)
	}

	s.cfg.Log.Info("Booking created successfully",
		"id", booking.ID,
		"quote_id", booking.QuoteID,
		"status", booking.Status,
		"price_total", booking.PriceTotal,
	)
	return nil
}

func (s *bookingService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error) {
	var count int64
	var bookings []*model.Booking
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count bookings", "error", errCount)
			errCount = apperrors.Internal("Failed to count bookings", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		bookings, errFind = s.repo.FindAll(ctx, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list bookings", "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve bookings", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	if bookings == nil {
		bookings = []*model.Booking{}
	}
	return bookings, count, nil
}

func (s *bookingService) applyDefaults(booking *model.Booking) {
	if booking.Status == "" {
		booking.Status = model.BookingStatusConfirmed
	}
}

func (s *bookingService) sanitize(booking *model.Booking) {
	booking.Name = sanitizer.TrimAndNormalize(booking.Name)
	booking.Email = strings.ToLower(strings.TrimSpace(booking.Email))
	booking.Phone = strings.TrimSpace(booking.Phone)
	booking.Address = sanitizer.TrimAndNormalize(booking.Address)
	booking.ZipCode = strings.TrimSpace(booking.ZipCode)
	booking.Frequency = strings.ToLower(strings.TrimSpace(booking.Frequency))
	booking.Extras = sanitizer.NormalizeExtras(booking.Extras)
	booking.Notes = sanitizer.TrimAndNormalize(booking.Notes)
	// An all-whitespace preferred_date means no preference, same as absent.
	booking.PreferredDate = strings.TrimSpace(booking.PreferredDate)
}
