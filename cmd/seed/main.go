package main

import (
	"context"

	"atlascars/internal/catalog/repository"
	"atlascars/pkg/config"
	"atlascars/pkg/model"
)

const ServiceName = "seed"

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Seeding car catalog", "database", cfg.MongoDatabaseName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	repo := repository.NewMongoCarRepository(cfg)

	ctx := context.Background()
	for i := range fleet {
		if err := repo.Upsert(ctx, &fleet[i]); err != nil {
			cfg.Log.Fatal("Failed to seed car", "id", fleet[i].ID, "error", err)
		}
		cfg.Log.Info("Seeded car", "id", fleet[i].ID, "brand", fleet[i].Brand, "model", fleet[i].Model)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		cfg.Log.Fatal("Failed to count cars", "error", err)
	}
	cfg.Log.Info("Seeding complete", "total_cars", count)
}

var fleet = []model.Car{
	{
		ID: "clio-5-2025", Brand: "Renault", Model: "Clio 5", Year: 2025,
		PricePerDay: 300, Currency: "DH", Seats: 5,
		Transmission: model.TransmissionManual, Fuel: model.FuelPetrol,
		Category: "compact", Quantity: 2,
		Image:    "/cars/clio-megane.jpg",
		Gallery:  []string{"/cars/clio-megane.jpg"},
		Features: []string{"Climatisation", "Bluetooth", "USB", "Direction assistée"},
		Description: map[string]string{
			"fr": "La Renault Clio 5 est la voiture citadine parfaite pour vos déplacements urbains. Économique et confortable.",
			"en": "The Renault Clio 5 is the perfect city car for your urban trips. Economical and comfortable.",
			"ar": "رينو كليو 5 هي السيارة المثالية للتنقل في المدينة. اقتصادية ومريحة.",
		},
	},
	{
		ID: "accent-2025", Brand: "Hyundai", Model: "Accent", Year: 2025,
		PricePerDay: 350, Currency: "DH", Seats: 5,
		Transmission: model.TransmissionAuto, Fuel: model.FuelPetrol,
		Category: "berline", Quantity: 4,
		Image:    "/cars/accent-new.jpg",
		Gallery:  []string{"/cars/accent-new.jpg", "/cars/accent.jpg"},
		Features: []string{"Climatisation", "Bluetooth", "Caméra de recul", "Régulateur de vitesse"},
		Description: map[string]string{
			"fr": "La Hyundai Accent allie élégance et praticité. Idéale pour les trajets quotidiens et les voyages.",
			"en": "The Hyundai Accent combines elegance and practicality. Ideal for daily commutes and travel.",
			"ar": "هيونداي أكسنت تجمع بين الأناقة والعملية. مثالية للتنقل اليومي والسفر.",
		},
	},
	{
		ID: "megane-2025", Brand: "Renault", Model: "Megane", Year: 2025,
		PricePerDay: 450, Currency: "DH", Seats: 5,
		Transmission: model.TransmissionAuto, Fuel: model.FuelDiesel,
		Category: "berline", Quantity: 1,
		Image:    "/cars/megane2.jpg",
		Gallery:  []string{"/cars/megane2.jpg", "/cars/megane.jpg"},
		Features: []string{"Climatisation bi-zone", "GPS intégré", "Sièges chauffants", "Bluetooth"},
		Description: map[string]string{
			"fr": "La Renault Megane offre confort et technologie avancée. Parfaite pour les longs trajets.",
			"en": "The Renault Megane offers comfort and advanced technology. Perfect for long journeys.",
			"ar": "رينو ميغان توفر الراحة والتكنولوجيا المتقدمة. مثالية للرحلات الطويلة.",
		},
	},
	{
		ID: "touareg-vw", Brand: "Volkswagen", Model: "Touareg", Year: 2024,
		PricePerDay: 800, Currency: "DH", Seats: 5,
		Transmission: model.TransmissionAuto, Fuel: model.FuelDiesel,
		Category: "suv", Quantity: 1,
		Image:    "/cars/touareg.jpg",
		Gallery:  []string{"/cars/touareg.jpg"},
		Features: []string{"4x4", "Toit panoramique", "Cuir", "GPS", "Caméra 360°"},
		Description: map[string]string{
			"fr": "Le Volkswagen Touareg est le SUV premium par excellence. Puissance et luxe réunis.",
			"en": "The Volkswagen Touareg is the ultimate premium SUV. Power and luxury combined.",
			"ar": "فولكس فاجن طوارق هي السيارة الرياضية الفاخرة بامتياز. القوة والفخامة معاً.",
		},
	},
	{
		ID: "golf-8", Brand: "Volkswagen", Model: "Golf 8", Year: 2024,
		PricePerDay: 600, Currency: "DH", Seats: 5,
		Transmission: model.TransmissionAuto, Fuel: model.FuelDiesel,
		Category: "compact", Quantity: 1,
		Image:    "/cars/golf8.png",
		Gallery:  []string{"/cars/golf8.png"},
		Features: []string{"Système multimédia", "LED Matrix", "Aide au stationnement", "ACC"},
		Description: map[string]string{
			"fr": "La Golf 8 représente l'excellence allemande. Sportive, élégante et technologique.",
			"en": "The Golf 8 represents German excellence. Sporty, elegant and technological.",
			"ar": "غولف 8 تمثل التميز الألماني. رياضية وأنيقة وتكنولوجية.",
		},
	},
	{
		ID: "q8-2024", Brand: "Audi", Model: "Q8", Year: 2024,
		PricePerDay: 1600, Currency: "DH", Seats: 5,
		Transmission: model.TransmissionAuto, Fuel: model.FuelDiesel,
		Category: "suv-premium", Quantity: 1,
		Image:    "https://images.unsplash.com/photo-1655284615415-b52cb3c2f8aa?w=800&auto=format&fit=crop",
		Gallery:  []string{"https://images.unsplash.com/photo-1655284615415-b52cb3c2f8aa?w=800&auto=format&fit=crop"},
		Features: []string{"Quattro", "Virtual Cockpit", "Bang & Olufsen", "Massage", "Night Vision"},
		Description: map[string]string{
			"fr": "L'Audi Q8 incarne le luxe absolu. Une expérience de conduite exceptionnelle.",
			"en": "The Audi Q8 embodies absolute luxury. An exceptional driving experience.",
			"ar": "أودي Q8 تجسد الفخامة المطلقة. تجربة قيادة استثنائية.",
		},
	},
	{
		ID: "peugeot-2008", Brand: "Peugeot", Model: "2008", Year: 2024,
		PricePerDay: 350, Currency: "DH", Seats: 5,
		Transmission: model.TransmissionAuto, Fuel: model.FuelDiesel,
		Category: "suv-compact", Quantity: 1,
		Image:    "https://images.unsplash.com/photo-1566421740474-8456c6840c71?w=800&auto=format&fit=crop",
		Gallery:  []string{"https://images.unsplash.com/photo-1566421740474-8456c6840c71?w=800&auto=format&fit=crop"},
		Features: []string{"i-Cockpit", "Caméra de recul", "CarPlay", "Android Auto"},
		Description: map[string]string{
			"fr": "Le Peugeot 2008 combine style et polyvalence. Un SUV compact idéal pour la ville.",
			"en": "The Peugeot 2008 combines style and versatility. An ideal compact SUV for the city.",
			"ar": "بيجو 2008 تجمع بين الأناقة والتنوع. سيارة SUV مثالية للمدينة.",
		},
	},
	{
		ID: "evoque", Brand: "Range Rover", Model: "Evoque", Year: 2024,
		PricePerDay: 1200, Currency: "DH", Seats: 5,
		Transmission: model.TransmissionAuto, Fuel: model.FuelDiesel,
		Category: "suv-premium", Quantity: 1,
		Image:    "/cars/evoque.jpg",
		Gallery:  []string{"/cars/evoque.jpg"},
		Features: []string{"Terrain Response", "Toit panoramique", "Meridian Sound", "Cuir Windsor"},
		Description: map[string]string{
			"fr": "Le Range Rover Evoque allie luxe britannique et capacités tout-terrain.",
			"en": "The Range Rover Evoque combines British luxury with off-road capabilities.",
			"ar": "رينج روفر إيفوك تجمع بين الفخامة البريطانية وقدرات الطرق الوعرة.",
		},
	},
}
