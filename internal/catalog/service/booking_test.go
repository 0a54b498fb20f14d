package service

import (
	"context"
	"testing"
	"time"

	catalogerrors "atlascars/internal/catalog/errors"
	"atlascars/internal/catalog/events"
	"atlascars/internal/catalog/notifier"
	"atlascars/internal/catalog/validator"
	"atlascars/pkg/config"
	apperrors "atlascars/pkg/errors"
	"atlascars/pkg/logger"
	"atlascars/pkg/model"
)

type mockCarRepository struct {
	findByIDFunc func(ctx context.Context, id string) (*model.Car, error)
}

func (m *mockCarRepository) FindAll(ctx context.Context) ([]model.Car, error) {
	return []model.Car{}, nil
}

func (m *mockCarRepository) FindByID(ctx context.Context, id string) (*model.Car, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, catalogerrors.ErrNotFound
}

func (m *mockCarRepository) Upsert(ctx context.Context, car *model.Car) error {
	return nil
}

func (m *mockCarRepository) Count(ctx context.Context) (int64, error) {
	return 0, nil
}

type mockBookingRepository struct {
	createFunc func(ctx context.Context, booking *model.Booking) error
	created    []*model.Booking
}

func (m *mockBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	m.created = append(m.created, booking)
	if m.createFunc != nil {
		return m.createFunc(ctx, booking)
	}
	return nil
}

func (m *mockBookingRepository) FindByID(ctx context.Context, id string) (*model.Booking, error) {
	return nil, catalogerrors.ErrNotFound
}

func (m *mockBookingRepository) FindAll(ctx context.Context) ([]*model.Booking, error) {
	return []*model.Booking{}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Log: logger.New(logger.Config{
			Level:  "error",
			Format: logger.JSON,
		}),
	}
}

func knownCarRepo() *mockCarRepository {
	return &mockCarRepository{
		findByIDFunc: func(_ context.Context, id string) (*model.Car, error) {
			if id != "clio-5-2025" {
				return nil, catalogerrors.ErrNotFound
			}
			return &model.Car{
				ID: "clio-5-2025", Brand: "Renault", Model: "Clio 5", Year: 2025,
				PricePerDay: 300, Seats: 5,
				Transmission: model.TransmissionManual, Fuel: model.FuelPetrol,
				Category: "compact",
			}, nil
		},
	}
}

func newTestService(carRepo *mockCarRepository, bookingRepo *mockBookingRepository) BookingService {
	cfg := testConfig()
	return NewBookingService(
		bookingRepo,
		carRepo,
		validator.NewBookingValidator(cfg.Log),
		notifier.NewNoopNotifier(),
		events.NewNoopLeadPublisher(),
		cfg,
	)
}

func validBooking() *model.Booking {
	return &model.Booking{
		FullName:   "Yassine Alami",
		Phone:      "+212612345678",
		CarID:      "clio-5-2025",
		PickupDate: time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
		ReturnDate: time.Date(2025, time.June, 13, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateAssignsDefaults(t *testing.T) {
	bookingRepo := &mockBookingRepository{}
	svc := newTestService(knownCarRepo(), bookingRepo)

	receipt, err := svc.Create(context.Background(), validBooking())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if receipt.ID == "" {
		t.Fatal("expected generated booking ID")
	}
	if receipt.Status != model.BookingStatusPending {
		t.Fatalf("expected pending status, got %s", receipt.Status)
	}
	if receipt.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be set")
	}
	if len(bookingRepo.created) != 1 {
		t.Fatalf("expected one persisted booking, got %d", len(bookingRepo.created))
	}
}

func TestCreateUnknownCar(t *testing.T) {
	svc := newTestService(knownCarRepo(), &mockBookingRepository{})

	booking := validBooking()
	booking.CarID = "no-such-car"

	_, err := svc.Create(context.Background(), booking)
	if err == nil {
		t.Fatal("expected error")
	}

	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeNotFound {
		t.Fatalf("expected not found, got %s", appErr.Code)
	}
	if appErr.Message != "Car not found" {
		t.Fatalf("unexpected message: %q", appErr.Message)
	}
}

func TestCreateRejectsMissingFields(t *testing.T) {
	svc := newTestService(knownCarRepo(), &mockBookingRepository{})

	booking := validBooking()
	booking.FullName = ""

	_, err := svc.Create(context.Background(), booking)
	if err == nil {
		t.Fatal("expected validation error")
	}

	if apperrors.AsAppError(err).Code != apperrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateRejectsReturnBeforePickup(t *testing.T) {
	svc := newTestService(knownCarRepo(), &mockBookingRepository{})

	booking := validBooking()
	booking.PickupDate = time.Date(2025, time.June, 13, 0, 0, 0, 0, time.UTC)
	booking.ReturnDate = time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

	_, err := svc.Create(context.Background(), booking)
	if err == nil {
		t.Fatal("expected validation error")
	}

	if apperrors.AsAppError(err).Code != apperrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateAllowsSameDayRental(t *testing.T) {
	svc := newTestService(knownCarRepo(), &mockBookingRepository{})

	booking := validBooking()
	day := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	booking.PickupDate = day
	booking.ReturnDate = day

	if _, err := svc.Create(context.Background(), booking); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateNormalizesPhone(t *testing.T) {
	bookingRepo := &mockBookingRepository{}
	svc := newTestService(knownCarRepo(), bookingRepo)

	booking := validBooking()
	booking.Phone = "06 12 34 56 78"

	if _, err := svc.Create(context.Background(), booking); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if bookingRepo.created[0].Phone != "+212612345678" {
		t.Fatalf("expected E.164 phone, got %q", bookingRepo.created[0].Phone)
	}
}
