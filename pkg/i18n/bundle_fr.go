package i18n

var bundleFR = Bundle{
	Greeting: "Bonjour %s! 🚗",
	Closing:  "Merci! Veuillez confirmer la disponibilité.",

	VehicleSection: "🚗 Détails du véhicule",
	BookingSection: "📅 Détails de la réservation",
	TotalLabel:     "💰 Coût Total",
	ContactSection: "👤 Informations de contact",

	LabelModel:          "Modèle",
	LabelYear:           "Année",
	LabelTransmission:   "Transmission",
	LabelFuel:           "Carburant",
	LabelSeats:          "Places",
	LabelPrice:          "Prix",
	LabelFrom:           "Du",
	LabelTo:             "Au",
	LabelDuration:       "Durée",
	LabelPickupLocation: "Lieu de prise en charge",
	LabelName:           "Nom",
	LabelPhone:          "Tél",
	LabelEmail:          "Email",
	LabelNotes:          "📝 Message",

	NotSelected: "Non sélectionné",
	NotProvided: "Non fourni",
	Dash:        "-",

	DaySingular: "jour",
	DayPlural:   "jours",
	SeatsSuffix: "places",
	PerDay:      "jour",

	AllPrices:        "Tous les prix",
	AllTransmissions: "Toutes",
	AllCategories:    "Toutes les catégories",

	Transmissions: map[string]string{
		"auto":   "Automatique",
		"manual": "Manuelle",
	},
	Fuels: map[string]string{
		"essence": "Essence",
		"diesel":  "Diesel",
	},
	Categories: map[string]string{
		"compact":     "Compacte",
		"berline":     "Berline",
		"suv":         "SUV",
		"suv-compact": "SUV Compact",
		"suv-premium": "SUV Premium",
	},

	ErrFleetUnavailable: "Impossible de charger les véhicules. Veuillez réessayer.",
	ErrCarNotFound:      "Voiture introuvable",
	ErrBookingFailed:    "La réservation a échoué. Veuillez réessayer.",
	ErrFillRequired:     "Veuillez remplir tous les champs requis",

	Pages: map[string]Page{
		"about": {
			Title: "À propos",
			Body:  "Agence de location de voitures basée à Casablanca. Un parc récent, des tarifs transparents et une remise des clés partout au Maroc.",
		},
		"contact": {
			Title: "Contact",
			Body:  "Disponibles 24h/24 et 7j/7 par téléphone, WhatsApp ou email. Livraison disponible dans tout le Maroc.",
		},
		"terms": {
			Title: "Conditions de location",
			Body:  "Permis de conduire valide et pièce d'identité exigés. Le carburant est à la charge du locataire. Toute journée entamée est due (minimum une journée).",
		},
		"privacy": {
			Title: "Politique de confidentialité",
			Body:  "Les informations du formulaire de réservation ne servent qu'au traitement de votre demande et ne sont jamais revendues.",
		},
	},
}
