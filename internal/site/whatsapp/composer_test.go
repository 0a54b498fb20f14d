package whatsapp

import (
	"strings"
	"testing"
	"time"

	"atlascars/internal/site/pricing"
	"atlascars/pkg/model"
)

func testCar() *model.Car {
	return &model.Car{
		ID:           "clio-5-2025",
		Brand:        "Renault",
		Model:        "Clio 5",
		Year:         2025,
		PricePerDay:  300,
		Currency:     "MAD",
		Seats:        5,
		Transmission: model.TransmissionManual,
		Fuel:         model.FuelDiesel,
		Category:     "citadine",
	}
}

func TestComposeFullDraftFrench(t *testing.T) {
	pickup := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	ret := time.Date(2025, time.June, 13, 0, 0, 0, 0, time.UTC)
	draft := &model.BookingDraft{
		FullName:       "Yassine Alami",
		Phone:          "+212612345678",
		Email:          "yassine@example.com",
		CarID:          "clio-5-2025",
		PickupDate:     &pickup,
		ReturnDate:     &ret,
		PickupLocation: "Aéroport Mohammed V",
	}
	quote := pricing.ForDates(&pickup, &ret, 300)

	msg := Compose(testCar(), draft, quote, "fr", "ATLAS CARS")

	for _, want := range []string{
		"Bonjour ATLAS CARS!",
		"Renault Clio 5",
		"Manuelle",
		"Diesel",
		"10/06/2025",
		"13/06/2025",
		"3 jours",
		"900 MAD",
		"Yassine Alami",
		"+212612345678",
		"Aéroport Mohammed V",
		"Merci! Veuillez confirmer la disponibilité.",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestComposeEmptyDraftUsesPlaceholders(t *testing.T) {
	msg := Compose(testCar(), &model.BookingDraft{}, pricing.Quote{}, "fr", "ATLAS CARS")

	if !strings.Contains(msg, "Non sélectionné") {
		t.Errorf("expected date placeholder in message:\n%s", msg)
	}
	if !strings.Contains(msg, "Non fourni") {
		t.Errorf("expected contact placeholder in message:\n%s", msg)
	}
}

func TestComposeNoVehicleUsesPlaceholders(t *testing.T) {
	msg := Compose(nil, &model.BookingDraft{}, pricing.Quote{}, "fr", "ATLAS CARS")

	if !strings.Contains(msg, "🚗 Détails du véhicule") {
		t.Fatalf("expected vehicle section even without a vehicle:\n%s", msg)
	}
	if !strings.Contains(msg, "Modèle: Non sélectionné") {
		t.Errorf("expected model placeholder:\n%s", msg)
	}
	if !strings.Contains(msg, "Année: -") {
		t.Errorf("expected dash for missing year:\n%s", msg)
	}
	if !strings.Contains(msg, "Merci! Veuillez confirmer la disponibilité.") {
		t.Errorf("expected closing line:\n%s", msg)
	}
}

func TestComposeNilDraftDoesNotPanic(t *testing.T) {
	msg := Compose(nil, nil, pricing.Quote{}, "en", "ATLAS CARS")

	if !strings.Contains(msg, "Not provided") {
		t.Errorf("expected contact placeholders:\n%s", msg)
	}
}

func TestComposeSectionOrderIsStable(t *testing.T) {
	pickup := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	ret := time.Date(2025, time.June, 13, 0, 0, 0, 0, time.UTC)
	quote := pricing.ForDates(&pickup, &ret, 300)

	msg := Compose(testCar(), &model.BookingDraft{PickupDate: &pickup, ReturnDate: &ret}, quote, "fr", "ATLAS CARS")

	sections := []string{
		"🚗 Détails du véhicule",
		"📅 Détails de la réservation",
		"💰 Coût Total",
		"👤 Informations de contact",
	}
	last := -1
	for _, section := range sections {
		idx := strings.Index(msg, section)
		if idx < 0 {
			t.Fatalf("message missing section %q:\n%s", section, msg)
		}
		if idx < last {
			t.Fatalf("section %q out of order:\n%s", section, msg)
		}
		last = idx
	}
}

func TestComposeNoQuoteRendersTotalPlaceholder(t *testing.T) {
	msg := Compose(testCar(), &model.BookingDraft{}, pricing.Quote{}, "fr", "ATLAS CARS")

	if !strings.Contains(msg, "💰 Coût Total") {
		t.Fatalf("expected total section without a quote:\n%s", msg)
	}
	after := msg[strings.Index(msg, "💰 Coût Total"):]
	if !strings.Contains(after, "Non sélectionné") {
		t.Errorf("expected total placeholder:\n%s", msg)
	}
}

func TestComposeArabicPlaceholders(t *testing.T) {
	msg := Compose(testCar(), &model.BookingDraft{}, pricing.Quote{}, "ar", "ATLAS CARS")

	if !strings.Contains(msg, "غير محدد") {
		t.Errorf("expected arabic date placeholder in message:\n%s", msg)
	}
}

func TestComposeUnknownEnumRendersDash(t *testing.T) {
	car := testCar()
	car.Transmission = "cvt"

	msg := Compose(car, &model.BookingDraft{}, pricing.Quote{}, "en", "ATLAS CARS")

	if !strings.Contains(msg, "Transmission: -") {
		t.Errorf("expected dash for unknown transmission:\n%s", msg)
	}
}

func TestComposeUnsupportedLanguageFallsBackToDefault(t *testing.T) {
	msg := Compose(testCar(), &model.BookingDraft{}, pricing.Quote{}, "de", "ATLAS CARS")

	if !strings.Contains(msg, "Bonjour ATLAS CARS!") {
		t.Errorf("expected default-language greeting:\n%s", msg)
	}
}

func TestComposeOmitsEmptyNotes(t *testing.T) {
	withNotes := Compose(testCar(), &model.BookingDraft{Message: "Besoin d'un siège bébé"}, pricing.Quote{}, "fr", "ATLAS CARS")
	withoutNotes := Compose(testCar(), &model.BookingDraft{}, pricing.Quote{}, "fr", "ATLAS CARS")

	if !strings.Contains(withNotes, "Besoin d'un siège bébé") {
		t.Errorf("expected notes in message:\n%s", withNotes)
	}
	if strings.Contains(withoutNotes, "📝") {
		t.Errorf("expected notes section omitted:\n%s", withoutNotes)
	}
}

func TestLinkEncodesMessage(t *testing.T) {
	link := Link("+212612345678", "Bonjour ATLAS CARS! 🚗")

	if !strings.HasPrefix(link, "https://wa.me/212612345678?") {
		t.Fatalf("unexpected link prefix: %s", link)
	}
	if strings.Contains(link, " ") {
		t.Fatalf("link contains unencoded space: %s", link)
	}
	if !strings.Contains(link, "text=") {
		t.Fatalf("link missing text parameter: %s", link)
	}
}
