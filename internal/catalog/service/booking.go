package service

import (
	"context"
	"errors"
	"time"

	catalogerrors "atlascars/internal/catalog/errors"
	"atlascars/internal/catalog/events"
	"atlascars/internal/catalog/notifier"
	"atlascars/internal/catalog/repository"
	"atlascars/internal/catalog/validator"
	"atlascars/pkg/config"
	apperrors "atlascars/pkg/errors"
	"atlascars/pkg/model"
	"atlascars/pkg/sanitizer"

	"github.com/google/uuid"
)

type BookingService interface {
	Create(ctx context.Context, booking *model.Booking) (*model.BookingReceipt, error)
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	GetAll(ctx context.Context) ([]*model.Booking, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	carRepo   repository.CarRepository
	validator *validator.BookingValidator
	notifier  notifier.BookingNotifier
	publisher events.LeadPublisher
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	carRepo repository.CarRepository,
	validator *validator.BookingValidator,
	notifier notifier.BookingNotifier,
	publisher events.LeadPublisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		carRepo:   carRepo,
		validator: validator,
		notifier:  notifier,
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *bookingService) Create(ctx context.Context, booking *model.Booking) (*model.BookingReceipt, error) {
	s.sanitize(booking)
	s.applyDefaults(booking)

	if err := s.validate(booking); err != nil {
		return nil, err
	}

	car, err := s.carRepo.FindByID(ctx, booking.CarID)
	if err != nil {
		if errors.Is(err, catalogerrors.ErrNotFound) {
			return nil, apperrors.NotFound("Car")
		}
		s.cfg.Log.Error("Failed to verify car for booking", "car_id", booking.CarID, "error", err)
		return nil, apperrors.Internal("Failed to verify car", err)
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		s.cfg.Log.Error("Failed to create booking", "error", err)
		return nil, apperrors.Internal("Failed to create booking", err)
	}

	s.cfg.Log.Info("Booking created successfully",
		"id", booking.ID,
		"car_id", booking.CarID,
		"pickup_date", booking.PickupDate,
	)

	s.notifier.BookingReceived(booking, car)
	s.publisher.BookingCreated(ctx, booking)

	return &model.BookingReceipt{
		ID:        booking.ID,
		Status:    booking.Status,
		CreatedAt: booking.CreatedAt,
		Message:   "Booking request received",
	}, nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogerrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		if errors.Is(err, catalogerrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid booking ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve booking", err)
	}

	return booking, nil
}

func (s *bookingService) GetAll(ctx context.Context) ([]*model.Booking, error) {
	bookings, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings", "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}

	return bookings, nil
}

// --- Helpers ---

func (s *bookingService) sanitize(b *model.Booking) {
	b.FullName = sanitizer.NormalizeName(b.FullName)
	b.Email = sanitizer.TrimAndNormalize(b.Email)
	b.PickupLocation = sanitizer.NormalizeLocation(b.PickupLocation)
	b.Message = sanitizer.TrimAndNormalize(b.Message)

	if normalized := sanitizer.NormalizePhone(b.Phone); normalized != "" {
		b.Phone = normalized
	} else {
		b.Phone = sanitizer.TrimAndNormalize(b.Phone)
	}
}

func (s *bookingService) applyDefaults(b *model.Booking) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	if b.Status == "" {
		b.Status = model.BookingStatusPending
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	}
}

func (s *bookingService) validate(booking *model.Booking) error {
	if err := s.validator.Validate(booking); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return apperrors.Validation("Booking validation failed", map[string]any{"error": err.Error()})
	}
	return nil
}
