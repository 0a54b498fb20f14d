package service

import (
	"context"
	"errors"
	"time"

	"atlascars/internal/site/filter"
	"atlascars/internal/site/pricing"
	"atlascars/pkg/config"
	apperrors "atlascars/pkg/errors"
	"atlascars/pkg/i18n"
	"atlascars/pkg/model"
	"atlascars/pkg/sanitizer"

	"github.com/go-playground/validator/v10"
)

// Option is one selectable filter value with its display label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FilterOptions is everything the fleet page needs to render its filter
// controls in the requested language.
type FilterOptions struct {
	PriceRanges   []Option `json:"price_ranges"`
	Transmissions []Option `json:"transmissions"`
	Categories    []Option `json:"categories"`
}

type SiteService interface {
	Fleet(ctx context.Context, criteria filter.Criteria) ([]model.Car, error)
	Car(ctx context.Context, id string) (*model.Car, error)
	FilterOptions(ctx context.Context, lang string) (*FilterOptions, error)
	Quote(ctx context.Context, carID string, pickup, ret *time.Time) (pricing.Quote, error)
	Preview(ctx context.Context, draft *model.BookingDraft, lang string) (*SubmitResult, error)
	Submit(ctx context.Context, draft *model.BookingDraft, lang string) (*SubmitResult, error)
}

type siteService struct {
	gateway   CatalogGateway
	submitter BookingSubmitter
	previewer BookingSubmitter
	validate  *validator.Validate
	cfg       *config.Config
}

func NewSiteService(gateway CatalogGateway, submitter BookingSubmitter, cfg *config.Config) SiteService {
	return &siteService{
		gateway: gateway,
		// Previews always render the WhatsApp summary, whatever the
		// configured submit channel.
		previewer: NewWhatsAppSubmitter(cfg.WhatsAppNumber, cfg.SiteName),
		submitter: submitter,
		validate:  validator.New(),
		cfg:       cfg,
	}
}

func (s *siteService) Fleet(ctx context.Context, criteria filter.Criteria) ([]model.Car, error) {
	cars, err := s.gateway.Fleet(ctx)
	if err != nil {
		return nil, err
	}

	return filter.Apply(cars, criteria), nil
}

func (s *siteService) Car(ctx context.Context, id string) (*model.Car, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Car ID cannot be empty")
	}

	return s.gateway.Car(ctx, id)
}

func (s *siteService) FilterOptions(ctx context.Context, lang string) (*FilterOptions, error) {
	cars, err := s.gateway.Fleet(ctx)
	if err != nil {
		return nil, err
	}

	b := i18n.BundleFor(lang)

	options := &FilterOptions{
		PriceRanges: []Option{{Value: filter.All, Label: b.AllPrices}},
		Transmissions: []Option{
			{Value: filter.All, Label: b.AllTransmissions},
			{Value: model.TransmissionAuto, Label: b.TransmissionLabel(model.TransmissionAuto)},
			{Value: model.TransmissionManual, Label: b.TransmissionLabel(model.TransmissionManual)},
		},
		Categories: []Option{{Value: filter.All, Label: b.AllCategories}},
	}

	for _, band := range filter.PriceRanges() {
		options.PriceRanges = append(options.PriceRanges, Option{Value: band, Label: band})
	}

	for _, category := range filter.Categories(cars) {
		options.Categories = append(options.Categories, Option{
			Value: category,
			Label: b.CategoryLabel(category),
		})
	}

	return options, nil
}

func (s *siteService) Quote(ctx context.Context, carID string, pickup, ret *time.Time) (pricing.Quote, error) {
	car, err := s.Car(ctx, carID)
	if err != nil {
		return pricing.Quote{}, err
	}

	return pricing.ForDates(pickup, ret, car.PricePerDay), nil
}

func (s *siteService) Preview(ctx context.Context, draft *model.BookingDraft, lang string) (*SubmitResult, error) {
	s.sanitize(draft)

	// A draft with no vehicle still previews; the composer renders
	// placeholders for the whole vehicle section.
	var car *model.Car
	var quote pricing.Quote
	if draft.CarID != "" {
		found, err := s.Car(ctx, draft.CarID)
		if err != nil {
			return nil, err
		}
		car = found
		quote = pricing.ForDates(draft.PickupDate, draft.ReturnDate, car.PricePerDay)
	}

	return s.previewer.Submit(ctx, car, draft, quote, lang)
}

func (s *siteService) Submit(ctx context.Context, draft *model.BookingDraft, lang string) (*SubmitResult, error) {
	s.sanitize(draft)

	if err := s.validateDraft(draft, lang); err != nil {
		return nil, err
	}

	car, err := s.Car(ctx, draft.CarID)
	if err != nil {
		return nil, err
	}

	quote := pricing.ForDates(draft.PickupDate, draft.ReturnDate, car.PricePerDay)

	result, err := s.submitter.Submit(ctx, car, draft, quote, lang)
	if err != nil {
		s.cfg.Log.Error("Booking submission failed", "car_id", draft.CarID, "error", err)
		return nil, err
	}

	s.cfg.Log.Info("Booking submitted",
		"mode", result.Mode,
		"car_id", draft.CarID,
	)
	return result, nil
}

func (s *siteService) sanitize(draft *model.BookingDraft) {
	draft.FullName = sanitizer.NormalizeName(draft.FullName)
	draft.Email = sanitizer.TrimAndNormalize(draft.Email)
	draft.PickupLocation = sanitizer.NormalizeLocation(draft.PickupLocation)
	draft.Message = sanitizer.TrimAndNormalize(draft.Message)

	if normalized := sanitizer.NormalizePhone(draft.Phone); normalized != "" {
		draft.Phone = normalized
	} else {
		draft.Phone = sanitizer.TrimAndNormalize(draft.Phone)
	}
}

func (s *siteService) validateDraft(draft *model.BookingDraft, lang string) error {
	err := s.validate.Struct(draft)
	if err == nil {
		if draft.ReturnDate.Before(*draft.PickupDate) {
			return apperrors.Validation(i18n.BundleFor(lang).ErrFillRequired, map[string]any{
				"error": "return_date cannot be before pickup_date",
			})
		}
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := map[string]any{}
		for _, fe := range validationErrs {
			fields[fe.Field()] = fe.Tag()
		}
		return apperrors.Validation(i18n.BundleFor(lang).ErrFillRequired, fields)
	}

	return apperrors.Internal("Draft validation failed", err)
}
