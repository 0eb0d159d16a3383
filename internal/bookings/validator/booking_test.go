package validator

import (
	"strings"
	"testing"

	"lawnmow/pkg/logger"
	"lawnmow/pkg/model"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:   "error",
		Format:  logger.JSON,
		Service: "test",
	})
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
		PriceTotal:   103.99,
		Status:       model.BookingStatusConfirmed,
	}
}

func TestValidate_ValidBooking(t *testing.T) {
	v := NewBookingValidator(testLogger())
	if err := v.Validate(validBooking()); err != nil {
		t.Errorf("expected valid booking, got error: %v", err)
	}
}

func TestValidate_PhoneLength(t *testing.T) {
	v := NewBookingValidator(testLogger())

	tests := []struct {
		name      string
		phone     string
		wantError bool
	}{
		{"length 6 rejected", "123456", true},
		{"length 7 accepted", "1234567", false},
		{"length 20 accepted", strings.Repeat("5", 20), false},
		{"length 21 rejected", strings.Repeat("5", 21), true},
		{"empty rejected", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBooking()
			b.Phone = tt.phone
			err := v.Validate(b)
			if (err != nil) != tt.wantError {
				t.Errorf("Validate() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestValidate_PreferredDate(t *testing.T) {
	v := NewBookingValidator(testLogger())

	tests := []struct {
		name      string
		date      string
		wantError bool
	}{
		{"absent accepted", "", false},
		{"valid ISO date accepted", "2026-09-15", false},
		{"datetime rejected", "2026-09-15T10:00:00Z", true},
		{"wrong layout rejected", "15/09/2026", true},
		{"impossible date rejected", "2026-02-31", true},
		{"not a date rejected", "soonish", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBooking()
			b.PreferredDate = tt.date
			err := v.Validate(b)
			if (err != nil) != tt.wantError {
				t.Errorf("Validate() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestValidate_QuoteID(t *testing.T) {
	v := NewBookingValidator(testLogger())

	tests := []struct {
		name      string
		quoteID   string
		wantError bool
	}{
		{"absent accepted", "", false},
		{"valid ObjectID accepted", "64a2f8c9e4b0a1b2c3d4e5f6", false},
		{"malformed rejected", "not-an-object-id", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBooking()
			b.QuoteID = tt.quoteID
			err := v.Validate(b)
			if (err != nil) != tt.wantError {
				t.Errorf("Validate() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestValidate_NegativePriceTotal(t *testing.T) {
	v := NewBookingValidator(testLogger())

	b := validBooking()
	b.PriceTotal = -1.0
	if err := v.Validate(b); err == nil {
		t.Error("expected negative price_total to be rejected")
	}
}

func TestValidate_Status(t *testing.T) {
	v := NewBookingValidator(testLogger())

	b := validBooking()
	b.Status = "maybe"
	if err := v.Validate(b); err == nil {
		t.Error("expected unknown status to be rejected")
	}
}
