package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"lawnmow/internal/bookings/validator"
	"lawnmow/pkg/config"
	apperrors "lawnmow/pkg/errors"
	"lawnmow/pkg/events"
	"lawnmow/pkg/logger"
	"lawnmow/pkg/model"
)

type mockBookingRepository struct {
	createFunc  func(ctx context.Context, booking *model.Booking) error
	findAllFunc func(ctx context.Context, limit int, offset int64) ([]*model.Booking, error)
	countFunc   func(ctx context.Context) (int64, error)

	createCalls int
}

func (m *mockBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	m.createCalls++
	if m.createFunc != nil {
		return m.createFunc(ctx, booking)
	}
	booking.ID = fmt.Sprintf("%024x", m.createCalls)
	return nil
}

func (m *mockBookingRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.Booking, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx, limit, offset)
	}
	return []*model.Booking{}, nil
}

func (m *mockBookingRepository) Count(ctx context.Context) (int64, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}

type recordingPublisher struct {
	published []events.Event
}

func (p *recordingPublisher) Publish(ctx context.Context, event events.Event) error {
	p.published = append(p.published, event)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func newTestService(repo *mockBookingRepository, publisher events.Publisher) BookingService {
	cfg := &config.Config{
		Log: logger.New(logger.Config{
			Level:   "error",
			Format:  logger.JSON,
			Service: "test",
		}),
		DefaultListLimit: 50,
		MaxListLimit:     200,
	}
	return NewBookingService(repo, validator.NewBookingValidator(cfg.Log), publisher, cfg)
}

func validBooking() *model.Booking {
	return &model.Booking{
		Name:         "Jamie Rowe",
		Email:        "jamie@example.com",
		Phone:        "5551234567",
		Address:      "12 Garden Lane",
		ZipCode:      "94107",
		LawnSizeSqft: 5000,
		Frequency:    "weekly",
		Extras:       []string{"edging"},
		PriceTotal:   103.99,
	}
}

func TestCreate_DefaultsStatusToConfirmed(t *testing.T) {
	repo := &mockBookingRepository{}
	svc := newTestService(repo, &recordingPublisher{})

	booking := validBooking()
	if err := svc.Create(context.Background(), booking); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if booking.Status != model.BookingStatusConfirmed {
		t.Errorf("expected status %q, got %q", model.BookingStatusConfirmed, booking.Status)
	}
}

func TestCreate_PriceTotalStoredAsGiven(t *testing.T) {
	repo := &mockBookingRepository{}
	svc := newTestService(repo, &recordingPublisher{})

	// A total that disagrees with the calculator is kept as-is; the
	// server does not recompute it.
	booking := validBooking()
	booking.PriceTotal = 1.23

	if err := svc.Create(context.Background(), booking); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking.PriceTotal != 1.23 {
		t.Errorf("expected price_total 1.23, got %v", booking.PriceTotal)
	}
}

func TestCreate_PreferredDateWhitespaceMeansNoPreference(t *testing.T) {
	repo := &mockBookingRepository{}
	svc := newTestService(repo, &recordingPublisher{})

	booking := validBooking()
	booking.PreferredDate = "   "

	if err := svc.Create(context.Background(), booking); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking.PreferredDate != "" {
		t.Errorf("expected empty preferred_date, got %q", booking.PreferredDate)
	}
}

func TestCreate_PreferredDateRoundTrips(t *testing.T) {
	repo := &mockBookingRepository{}
	svc := newTestService(repo, &recordingPublisher{})

	booking := validBooking()
	booking.PreferredDate = "2026-09-15"

	if err := svc.Create(context.Background(), booking); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking.PreferredDate != "2026-09-15" {
		t.Errorf("expected preserved preferred_date, got %q", booking.PreferredDate)
	}
}

func TestCreate_ValidationFailureNeverReachesStore(t *testing.T) {
	repo := &mockBookingRepository{}
	svc := newTestService(repo, &recordingPublisher{})

	booking := validBooking()
	booking.Phone = "123"

	err := svc.Create(context.Background(), booking)
	if err == nil {
		t.Fatal("expected validation error")
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.CodeValidation {
		t.Errorf("expected %s, got %v", apperrors.CodeValidation, err)
	}
	if repo.createCalls != 0 {
		t.Errorf("repository must not be called on validation failure, got %d calls", repo.createCalls)
	}
}

func TestCreate_StoreFailure(t *testing.T) {
	repo := &mockBookingRepository{
		createFunc: func(ctx context.Context, booking *model.Booking) error {
			return errors.New("no reachable servers")
		},
	}
	svc := newTestService(repo, &recordingPublisher{})

	err := svc.Create(context.Background(), validBooking())
	if err == nil {
		t.Fatal("expected error on store failure")
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.CodeInternal {
		t.Errorf("expected %s, got %v", apperrors.CodeInternal, err)
	}
}

func TestCreate_PublishesEvent(t *testing.T) {
	repo := &mockBookingRepository{}
	publisher := &recordingPublisher{}
	svc := newTestService(repo, publisher)

	booking := validBooking()
	if err := svc.Create(context.Background(), booking); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(publisher.published) != 1 {
		t.Fatalf("expected 1 published event, got %d", len(publisher.published))
	}
	if publisher.published[0].Type != events.TypeBookingCreated {
		t.Errorf("expected event type %s, got %s", events.TypeBookingCreated, publisher.published[0].Type)
	}
}

func TestGetAll_ReturnsItemsAndCount(t *testing.T) {
	repo := &mockBookingRepository{
		countFunc: func(ctx context.Context) (int64, error) {
			return 3, nil
		},
		findAllFunc: func(ctx context.Context, limit int, offset int64) ([]*model.Booking, error) {
			return []*model.Booking{
				{ID: "64a2f8c9e4b0a1b2c3d4e5f6"},
			}, nil
		},
	}
	svc := newTestService(repo, &recordingPublisher{})

	bookings, count, err := svc.GetAll(context.Background(), 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Errorf("expected count 3, got %d", count)
	}
	if len(bookings) != 1 {
		t.Errorf("expected 1 booking, got %d", len(bookings))
	}
}
