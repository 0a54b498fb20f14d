package service

import (
	"context"

	"atlascars/internal/site/pricing"
	"atlascars/internal/site/whatsapp"
	"atlascars/pkg/config"
	"atlascars/pkg/model"
)

// SubmitResult is the outcome of a booking submission. Mode says which
// channel handled it: a WhatsApp handoff carries the deep link, an API
// submission carries the catalog receipt. Both carry the composed
// summary message.
type SubmitResult struct {
	Mode    string                `json:"mode"`
	Message string                `json:"message"`
	Link    string                `json:"link,omitempty"`
	Receipt *model.BookingReceipt `json:"receipt,omitempty"`
}

// BookingSubmitter turns a validated draft into a SubmitResult.
type BookingSubmitter interface {
	Submit(ctx context.Context, car *model.Car, draft *model.BookingDraft, quote pricing.Quote, lang string) (*SubmitResult, error)
}

type whatsappSubmitter struct {
	agencyPhone string
	siteName    string
}

// NewWhatsAppSubmitter hands bookings off to a WhatsApp conversation
// with the agency. Nothing is persisted on our side.
func NewWhatsAppSubmitter(agencyPhone, siteName string) BookingSubmitter {
	return &whatsappSubmitter{
		agencyPhone: agencyPhone,
		siteName:    siteName,
	}
}

func (s *whatsappSubmitter) Submit(_ context.Context, car *model.Car, draft *model.BookingDraft, quote pricing.Quote, lang string) (*SubmitResult, error) {
	message := whatsapp.Compose(car, draft, quote, lang, s.siteName)

	return &SubmitResult{
		Mode:    config.BookingModeWhatsApp,
		Message: message,
		Link:    whatsapp.Link(s.agencyPhone, message),
	}, nil
}

type apiSubmitter struct {
	gateway  CatalogGateway
	siteName string
}

// NewAPISubmitter records bookings in the catalog service.
func NewAPISubmitter(gateway CatalogGateway, siteName string) BookingSubmitter {
	return &apiSubmitter{
		gateway:  gateway,
		siteName: siteName,
	}
}

func (s *apiSubmitter) Submit(ctx context.Context, car *model.Car, draft *model.BookingDraft, quote pricing.Quote, lang string) (*SubmitResult, error) {
	receipt, err := s.gateway.CreateBooking(ctx, draft)
	if err != nil {
		return nil, err
	}

	return &SubmitResult{
		Mode:    config.BookingModeAPI,
		Message: whatsapp.Compose(car, draft, quote, lang, s.siteName),
		Receipt: receipt,
	}, nil
}
