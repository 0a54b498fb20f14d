package i18n

var bundleAR = Bundle{
	Greeting: "مرحباً %s! 🚗",
	Closing:  "شكراً لك! أرجو تأكيد التوفر.",

	VehicleSection: "🚗 تفاصيل السيارة",
	BookingSection: "📅 تفاصيل الحجز",
	TotalLabel:     "💰 التكلفة الإجمالية",
	ContactSection: "👤 معلومات الاتصال",

	LabelModel:          "الموديل",
	LabelYear:           "السنة",
	LabelTransmission:   "ناقل الحركة",
	LabelFuel:           "الوقود",
	LabelSeats:          "عدد المقاعد",
	LabelPrice:          "السعر",
	LabelFrom:           "من",
	LabelTo:             "إلى",
	LabelDuration:       "المدة",
	LabelPickupLocation: "مكان الاستلام",
	LabelName:           "الاسم",
	LabelPhone:          "الهاتف",
	LabelEmail:          "البريد الإلكتروني",
	LabelNotes:          "📝 ملاحظات",

	NotSelected: "غير محدد",
	NotProvided: "غير محدد",
	Dash:        "-",

	DaySingular: "يوم",
	DayPlural:   "أيام",
	SeatsSuffix: "مقاعد",
	PerDay:      "يوم",

	AllPrices:        "جميع الأسعار",
	AllTransmissions: "الكل",
	AllCategories:    "جميع الفئات",

	Transmissions: map[string]string{
		"auto":   "أوتوماتيك",
		"manual": "يدوي",
	},
	Fuels: map[string]string{
		"essence": "بنزين",
		"diesel":  "ديزل",
	},
	Categories: map[string]string{
		"compact":     "مدمجة",
		"berline":     "سيدان",
		"suv":         "دفع رباعي",
		"suv-compact": "دفع رباعي مدمج",
		"suv-premium": "دفع رباعي فاخر",
	},

	ErrFleetUnavailable: "تعذر تحميل السيارات. يرجى المحاولة مرة أخرى.",
	ErrCarNotFound:      "السيارة غير موجودة",
	ErrBookingFailed:    "فشل الحجز. يرجى المحاولة مرة أخرى.",
	ErrFillRequired:     "يرجى ملء جميع الحقول المطلوبة",

	Pages: map[string]Page{
		"about": {
			Title: "من نحن",
			Body:  "وكالة تأجير سيارات مقرها الدار البيضاء. أسطول حديث وأسعار شفافة وتسليم المفاتيح في جميع أنحاء المغرب.",
		},
		"contact": {
			Title: "اتصل بنا",
			Body:  "متوفرون على مدار الساعة عبر الهاتف أو واتساب أو البريد الإلكتروني. التوصيل متاح في جميع أنحاء المغرب.",
		},
		"terms": {
			Title: "شروط التأجير",
			Body:  "رخصة قيادة سارية وبطاقة هوية مطلوبتان. الوقود على حساب المستأجر. كل يوم بدأ يُحتسب كاملاً (الحد الأدنى يوم واحد).",
		},
		"privacy": {
			Title: "سياسة الخصوصية",
			Body:  "تُستخدم بيانات نموذج الحجز لمعالجة طلبك فقط ولا يُعاد بيعها أبداً.",
		},
	},
}
