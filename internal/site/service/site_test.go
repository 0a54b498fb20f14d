package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"atlascars/internal/site/filter"
	"atlascars/pkg/config"
	apperrors "atlascars/pkg/errors"
	"atlascars/pkg/logger"
	"atlascars/pkg/model"
)

type mockGateway struct {
	fleetFunc         func(ctx context.Context) ([]model.Car, error)
	carFunc           func(ctx context.Context, id string) (*model.Car, error)
	createBookingFunc func(ctx context.Context, draft *model.BookingDraft) (*model.BookingReceipt, error)
}

func (m *mockGateway) Fleet(ctx context.Context) ([]model.Car, error) {
	if m.fleetFunc != nil {
		return m.fleetFunc(ctx)
	}
	return []model.Car{}, nil
}

func (m *mockGateway) Car(ctx context.Context, id string) (*model.Car, error) {
	if m.carFunc != nil {
		return m.carFunc(ctx, id)
	}
	return nil, apperrors.NotFound("Car")
}

func (m *mockGateway) CreateBooking(ctx context.Context, draft *model.BookingDraft) (*model.BookingReceipt, error) {
	if m.createBookingFunc != nil {
		return m.createBookingFunc(ctx, draft)
	}
	return &model.BookingReceipt{ID: "receipt-id", Status: model.BookingStatusPending}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		SiteName:       "ATLAS CARS",
		WhatsAppNumber: "+212612345678",
		Log: logger.New(logger.Config{
			Level:  "error",
			Format: logger.JSON,
		}),
	}
}

func testFleet() []model.Car {
	return []model.Car{
		{ID: "clio-5-2025", Brand: "Renault", Model: "Clio 5", Year: 2025, PricePerDay: 300, Seats: 5, Transmission: model.TransmissionManual, Fuel: model.FuelPetrol, Category: "compact"},
		{ID: "q8-2024", Brand: "Audi", Model: "Q8", Year: 2024, PricePerDay: 1600, Seats: 5, Transmission: model.TransmissionAuto, Fuel: model.FuelDiesel, Category: "suv-premium"},
	}
}

func fleetGateway() *mockGateway {
	return &mockGateway{
		fleetFunc: func(context.Context) ([]model.Car, error) {
			return testFleet(), nil
		},
		carFunc: func(_ context.Context, id string) (*model.Car, error) {
			for _, car := range testFleet() {
				if car.ID == id {
					c := car
					return &c, nil
				}
			}
			return nil, apperrors.NotFound("Car")
		},
	}
}

func validDraft() *model.BookingDraft {
	pickup := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	ret := time.Date(2025, time.June, 13, 0, 0, 0, 0, time.UTC)
	return &model.BookingDraft{
		FullName:   "Yassine Alami",
		Phone:      "+212612345678",
		CarID:      "clio-5-2025",
		PickupDate: &pickup,
		ReturnDate: &ret,
	}
}

func TestFleetAppliesCriteria(t *testing.T) {
	cfg := testConfig()
	svc := NewSiteService(fleetGateway(), NewWhatsAppSubmitter(cfg.WhatsAppNumber, cfg.SiteName), cfg)

	cars, err := svc.Fleet(context.Background(), filter.Criteria{PriceRange: "1000+"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cars) != 1 || cars[0].ID != "q8-2024" {
		t.Fatalf("expected only q8-2024, got %v", cars)
	}
}

func TestFleetPropagatesGatewayError(t *testing.T) {
	cfg := testConfig()
	gateway := &mockGateway{
		fleetFunc: func(context.Context) ([]model.Car, error) {
			return nil, apperrors.Unavailable("Catalog service")
		},
	}
	svc := NewSiteService(gateway, NewWhatsAppSubmitter(cfg.WhatsAppNumber, cfg.SiteName), cfg)

	_, err := svc.Fleet(context.Background(), filter.Criteria{})
	if err == nil {
		t.Fatal("expected error")
	}

	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeUnavailable {
		t.Fatalf("expected unavailable error, got %s", appErr.Code)
	}
}

func TestQuoteUsesCarRate(t *testing.T) {
	cfg := testConfig()
	svc := NewSiteService(fleetGateway(), NewWhatsAppSubmitter(cfg.WhatsAppNumber, cfg.SiteName), cfg)

	pickup := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	ret := time.Date(2025, time.June, 13, 0, 0, 0, 0, time.UTC)

	quote, err := svc.Quote(context.Background(), "clio-5-2025", &pickup, &ret)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if quote.Days != 3 || quote.Total != 900 {
		t.Fatalf("expected {3 900}, got %+v", quote)
	}
}

func TestQuoteUnknownCar(t *testing.T) {
	cfg := testConfig()
	svc := NewSiteService(fleetGateway(), NewWhatsAppSubmitter(cfg.WhatsAppNumber, cfg.SiteName), cfg)

	_, err := svc.Quote(context.Background(), "no-such-car", nil, nil)
	if err == nil {
		t.Fatal("expected error")
	}

	if apperrors.AsAppError(err).Code != apperrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSubmitWhatsAppModeBuildsLink(t *testing.T) {
	cfg := testConfig()
	svc := NewSiteService(fleetGateway(), NewWhatsAppSubmitter(cfg.WhatsAppNumber, cfg.SiteName), cfg)

	result, err := svc.Submit(context.Background(), validDraft(), "fr")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Mode != config.BookingModeWhatsApp {
		t.Fatalf("expected whatsapp mode, got %s", result.Mode)
	}
	if !strings.HasPrefix(result.Link, "https://wa.me/212612345678?") {
		t.Fatalf("unexpected link: %s", result.Link)
	}
	if !strings.Contains(result.Message, "Renault Clio 5") {
		t.Fatalf("message missing vehicle name:\n%s", result.Message)
	}
	if result.Receipt != nil {
		t.Fatal("whatsapp mode should not carry a receipt")
	}
}

func TestSubmitAPIModeReturnsReceipt(t *testing.T) {
	cfg := testConfig()
	gateway := fleetGateway()
	gateway.createBookingFunc = func(_ context.Context, draft *model.BookingDraft) (*model.BookingReceipt, error) {
		return &model.BookingReceipt{ID: "b-1", Status: model.BookingStatusPending}, nil
	}
	svc := NewSiteService(gateway, NewAPISubmitter(gateway, cfg.SiteName), cfg)

	result, err := svc.Submit(context.Background(), validDraft(), "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Mode != config.BookingModeAPI {
		t.Fatalf("expected api mode, got %s", result.Mode)
	}
	if result.Receipt == nil || result.Receipt.ID != "b-1" {
		t.Fatalf("expected receipt b-1, got %+v", result.Receipt)
	}
	if result.Link != "" {
		t.Fatal("api mode should not carry a WhatsApp link")
	}
}

func TestSubmitRejectsIncompleteDraft(t *testing.T) {
	cfg := testConfig()
	svc := NewSiteService(fleetGateway(), NewWhatsAppSubmitter(cfg.WhatsAppNumber, cfg.SiteName), cfg)

	draft := validDraft()
	draft.FullName = ""

	_, err := svc.Submit(context.Background(), draft, "fr")
	if err == nil {
		t.Fatal("expected validation error")
	}

	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeValidation {
		t.Fatalf("expected validation error, got %s", appErr.Code)
	}
}

func TestSubmitRejectsReturnBeforePickup(t *testing.T) {
	cfg := testConfig()
	svc := NewSiteService(fleetGateway(), NewWhatsAppSubmitter(cfg.WhatsAppNumber, cfg.SiteName), cfg)

	draft := validDraft()
	pickup := time.Date(2025, time.June, 13, 0, 0, 0, 0, time.UTC)
	ret := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	draft.PickupDate = &pickup
	draft.ReturnDate = &ret

	_, err := svc.Submit(context.Background(), draft, "fr")
	if err == nil {
		t.Fatal("expected validation error")
	}

	if apperrors.AsAppError(err).Code != apperrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPreviewAllowsEmptyDates(t *testing.T) {
	cfg := testConfig()
	svc := NewSiteService(fleetGateway(), NewWhatsAppSubmitter(cfg.WhatsAppNumber, cfg.SiteName), cfg)

	result, err := svc.Preview(context.Background(), &model.BookingDraft{CarID: "clio-5-2025"}, "fr")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Message, "Non sélectionné") {
		t.Fatalf("expected placeholder dates in preview:\n%s", result.Message)
	}
}

func TestPreviewAllowsEmptyDraft(t *testing.T) {
	cfg := testConfig()
	gateway := fleetGateway()
	gateway.carFunc = func(context.Context, string) (*model.Car, error) {
		t.Fatal("empty draft must not trigger a car lookup")
		return nil, nil
	}
	svc := NewSiteService(gateway, NewWhatsAppSubmitter(cfg.WhatsAppNumber, cfg.SiteName), cfg)

	result, err := svc.Preview(context.Background(), &model.BookingDraft{}, "fr")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Message, "Modèle: Non sélectionné") {
		t.Fatalf("expected vehicle placeholder in preview:\n%s", result.Message)
	}
}

func TestFilterOptionsAreLocalized(t *testing.T) {
	cfg := testConfig()
	svc := NewSiteService(fleetGateway(), NewWhatsAppSubmitter(cfg.WhatsAppNumber, cfg.SiteName), cfg)

	options, err := svc.FilterOptions(context.Background(), "fr")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(options.PriceRanges) != 5 {
		t.Fatalf("expected wildcard plus four bands, got %v", options.PriceRanges)
	}
	if options.PriceRanges[0].Label != "Tous les prix" {
		t.Fatalf("expected localized wildcard label, got %q", options.PriceRanges[0].Label)
	}

	foundCompact := false
	for _, opt := range options.Categories {
		if opt.Value == "compact" && opt.Label == "Compacte" {
			foundCompact = true
		}
	}
	if !foundCompact {
		t.Fatalf("expected localized compact category, got %v", options.Categories)
	}
}
