package i18n

// Language describes one supported UI language.
type Language struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	Name  string `json:"name"`
	RTL   bool   `json:"rtl"`
}

const (
	French  = "fr"
	English = "en"
	Arabic  = "ar"

	// DefaultCode is used on first visit and whenever a stored or
	// requested code is not in the supported set.
	DefaultCode = French
)

var languages = []Language{
	{Code: French, Label: "FR", Name: "Français", RTL: false},
	{Code: English, Label: "EN", Name: "English", RTL: false},
	{Code: Arabic, Label: "AR", Name: "العربية", RTL: true},
}

// Supported returns the closed set of UI languages in display order.
func Supported() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

func IsSupported(code string) bool {
	for _, l := range languages {
		if l.Code == code {
			return true
		}
	}
	return false
}

// Resolve maps a code to its Language, falling back to the default for
// anything outside the supported set.
func Resolve(code string) Language {
	for _, l := range languages {
		if l.Code == code {
			return l
		}
	}
	return Resolve(DefaultCode)
}
