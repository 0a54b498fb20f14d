package whatsapp

import (
	"fmt"
	"strings"
	"time"

	"atlascars/internal/site/pricing"
	"atlascars/pkg/i18n"
	"atlascars/pkg/model"
)

const (
	divider    = "━━━━━━━━━━━━━━━━━━━━"
	dateFormat = "02/01/2006"

	defaultCurrency = "MAD"
)

// Compose renders the booking summary sent to the agency over WhatsApp.
// Every input is optional, including the vehicle itself; missing values
// render as the language's placeholder so a partially filled form (or a
// fully empty one) still previews.
func Compose(car *model.Car, draft *model.BookingDraft, quote pricing.Quote, lang, siteName string) string {
	b := i18n.BundleFor(lang)

	if draft == nil {
		draft = &model.BookingDraft{}
	}

	currency := defaultCurrency
	if car != nil && car.Currency != "" {
		currency = car.Currency
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(b.Greeting, siteName))
	sb.WriteString("\n\n")

	sb.WriteString(b.VehicleSection + "\n")
	sb.WriteString(divider + "\n")
	if car != nil {
		writeLine(&sb, b.LabelModel, car.DisplayName())
		writeLine(&sb, b.LabelYear, fmt.Sprintf("%d", car.Year))
		writeLine(&sb, b.LabelTransmission, b.TransmissionLabel(car.Transmission))
		writeLine(&sb, b.LabelFuel, b.FuelLabel(car.Fuel))
		writeLine(&sb, b.LabelSeats, fmt.Sprintf("%d %s", car.Seats, b.SeatsSuffix))
		writeLine(&sb, b.LabelPrice, fmt.Sprintf("%.0f %s/%s", car.PricePerDay, currency, b.PerDay))
	} else {
		writeLine(&sb, b.LabelModel, b.NotSelected)
		writeLine(&sb, b.LabelYear, b.Dash)
		writeLine(&sb, b.LabelTransmission, b.Dash)
		writeLine(&sb, b.LabelFuel, b.Dash)
		writeLine(&sb, b.LabelSeats, b.Dash)
		writeLine(&sb, b.LabelPrice, b.Dash)
	}
	sb.WriteString("\n")

	sb.WriteString(b.BookingSection + "\n")
	sb.WriteString(divider + "\n")
	writeLine(&sb, b.LabelFrom, formatDate(draft.PickupDate, b.NotSelected))
	writeLine(&sb, b.LabelTo, formatDate(draft.ReturnDate, b.NotSelected))
	if quote.Days > 0 {
		writeLine(&sb, b.LabelDuration, fmt.Sprintf("%d %s", quote.Days, b.Days(quote.Days)))
	} else {
		writeLine(&sb, b.LabelDuration, b.NotSelected)
	}
	writeLine(&sb, b.LabelPickupLocation, orPlaceholder(draft.PickupLocation, b.NotProvided))
	sb.WriteString("\n")

	sb.WriteString(b.TotalLabel + "\n")
	sb.WriteString(divider + "\n")
	if quote.Days > 0 {
		sb.WriteString(fmt.Sprintf("%.0f %s\n", quote.Total, currency))
	} else {
		sb.WriteString(b.NotSelected + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString(b.ContactSection + "\n")
	sb.WriteString(divider + "\n")
	writeLine(&sb, b.LabelName, orPlaceholder(draft.FullName, b.NotProvided))
	writeLine(&sb, b.LabelPhone, orPlaceholder(draft.Phone, b.NotProvided))
	writeLine(&sb, b.LabelEmail, orPlaceholder(draft.Email, b.NotProvided))
	sb.WriteString("\n")

	if draft.Message != "" {
		writeLine(&sb, b.LabelNotes, draft.Message)
		sb.WriteString("\n")
	}

	sb.WriteString(b.Closing)

	return sb.String()
}

func writeLine(sb *strings.Builder, label, value string) {
	sb.WriteString(label)
	sb.WriteString(": ")
	sb.WriteString(value)
	sb.WriteString("\n")
}

func formatDate(t *time.Time, placeholder string) string {
	if t == nil {
		return placeholder
	}
	return t.Format(dateFormat)
}

func orPlaceholder(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}
