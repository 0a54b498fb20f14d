package service

import (
	"context"
	"net/http"

	"atlascars/pkg/client"
	apperrors "atlascars/pkg/errors"
	"atlascars/pkg/logger"
	"atlascars/pkg/model"
)

// CatalogGateway is the site's view of the catalog service.
type CatalogGateway interface {
	Fleet(ctx context.Context) ([]model.Car, error)
	Car(ctx context.Context, id string) (*model.Car, error)
	CreateBooking(ctx context.Context, booking *model.BookingDraft) (*model.BookingReceipt, error)
}

type catalogGateway struct {
	cars     *client.CarClient
	bookings *client.BookingClient
	log      *logger.Logger
}

func NewCatalogGateway(baseURL string, log *logger.Logger) CatalogGateway {
	return &catalogGateway{
		cars:     client.NewCarClient(baseURL),
		bookings: client.NewBookingClient(baseURL),
		log:      log,
	}
}

func (g *catalogGateway) Fleet(ctx context.Context) ([]model.Car, error) {
	resp, err := g.cars.GetAll(ctx)
	if err != nil {
		g.log.Error("Catalog fleet request failed", "error", err)
		return nil, apperrors.Unavailable("Catalog service")
	}

	if resp.StatusCode != http.StatusOK {
		g.log.Error("Catalog fleet request rejected", "status", resp.StatusCode)
		return nil, apperrors.Internal(client.GetErrorMessage(resp), nil)
	}

	cars, err := g.cars.DecodeCars(resp)
	if err != nil {
		g.log.Error("Failed to decode fleet response", "error", err)
		return nil, apperrors.Internal("Failed to decode catalog response", err)
	}

	return cars, nil
}

func (g *catalogGateway) Car(ctx context.Context, id string) (*model.Car, error) {
	resp, err := g.cars.GetByID(ctx, id)
	if err != nil {
		g.log.Error("Catalog car request failed", "id", id, "error", err)
		return nil, apperrors.Unavailable("Catalog service")
	}

	switch resp.StatusCode {
	case http.StatusOK:
		car, err := g.cars.DecodeCar(resp)
		if err != nil {
			g.log.Error("Failed to decode car response", "id", id, "error", err)
			return nil, apperrors.Internal("Failed to decode catalog response", err)
		}
		return car, nil
	case http.StatusNotFound:
		return nil, apperrors.NotFound("Car")
	default:
		g.log.Error("Catalog car request rejected", "id", id, "status", resp.StatusCode)
		return nil, apperrors.Internal(client.GetErrorMessage(resp), nil)
	}
}

func (g *catalogGateway) CreateBooking(ctx context.Context, draft *model.BookingDraft) (*model.BookingReceipt, error) {
	resp, err := g.bookings.Create(ctx, draft)
	if err != nil {
		g.log.Error("Catalog booking request failed", "error", err)
		return nil, apperrors.Unavailable("Catalog service")
	}

	switch resp.StatusCode {
	case http.StatusCreated:
		receipt, err := g.bookings.DecodeReceipt(resp)
		if err != nil {
			g.log.Error("Failed to decode booking receipt", "error", err)
			return nil, apperrors.Internal("Failed to decode catalog response", err)
		}
		return receipt, nil
	case http.StatusNotFound:
		return nil, apperrors.NotFound("Car")
	case http.StatusUnprocessableEntity, http.StatusBadRequest:
		return nil, apperrors.Validation(client.GetErrorMessage(resp), nil)
	default:
		g.log.Error("Catalog booking request rejected", "status", resp.StatusCode)
		return nil, apperrors.Internal(client.GetErrorMessage(resp), nil)
	}
}
