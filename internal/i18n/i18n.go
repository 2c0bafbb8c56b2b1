// Package i18n holds the static UI string tables for the two supported
// locales. Lookup falls back from the selected locale to English and
// finally to the raw key, so a missing translation never blanks a view.
package i18n

// Supported locale codes. These double as the {lang} path segment of the
// menu endpoints.
const (
	LangFI = "fi"
	LangEN = "en"
)

// DefaultLang is the fallback locale.
const DefaultLang = LangEN

var tables = map[string]map[string]string{
	LangEN: {
		"app_title":        "Campus Eats",
		"restaurants":      "Restaurants",
		"search":           "Search",
		"city":             "City",
		"provider":         "Provider",
		"all_cities":       "All cities",
		"all_providers":    "All providers",
		"no_results":       "No restaurants match your filters",
		"no_meals":         "No meals available",
		"daily_menu":       "Today's menu",
		"weekly_menu":      "Weekly menu",
		"favorite":         "Favorite",
		"set_favorite":     "Set as favorite",
		"clear_favorite":   "Remove favorite",
		"distance":         "Distance",
		"login":            "Log in",
		"logout":           "Log out",
		"register":         "Create account",
		"username":         "Username",
		"password":         "Password",
		"email":            "Email",
		"profile":          "Profile",
		"avatar":           "Avatar",
		"your_location":    "Your location",
		"cannot_reach":     "Cannot reach the server, try again later",
		"loading":          "Loading",
		"theme_dark":       "Dark theme",
		"theme_light":      "Light theme",
		"language":         "Language",
		"price":            "Price",
		"diets":            "Diets",
		"monday":           "Monday",
		"tuesday":          "Tuesday",
		"wednesday":        "Wednesday",
		"thursday":         "Thursday",
		"friday":           "Friday",
		"saturday":         "Saturday",
		"sunday":           "Sunday",
	},
	LangFI: {
		"app_title":        "Campus Eats",
		"restaurants":      "Ravintolat",
		"search":           "Haku",
		"city":             "Kaupunki",
		"provider":         "Palveluntarjoaja",
		"all_cities":       "Kaikki kaupungit",
		"all_providers":    "Kaikki tarjoajat",
		"no_results":       "Yksikään ravintola ei vastaa suodattimia",
		"no_meals":         "Ei aterioita saatavilla",
		"daily_menu":       "Päivän ruokalista",
		"weekly_menu":      "Viikon ruokalista",
		"favorite":         "Suosikki",
		"set_favorite":     "Aseta suosikiksi",
		"clear_favorite":   "Poista suosikki",
		"distance":         "Etäisyys",
		"login":            "Kirjaudu sisään",
		"logout":           "Kirjaudu ulos",
		"register":         "Luo tili",
		"username":         "Käyttäjätunnus",
		"password":         "Salasana",
		"email":            "Sähköposti",
		"profile":          "Profiili",
		"avatar":           "Avatar",
		"your_location":    "Sijaintisi",
		"cannot_reach":     "Palvelimeen ei saada yhteyttä, yritä myöhemmin",
		"loading":          "Ladataan",
		"theme_dark":       "Tumma teema",
		"theme_light":      "Vaalea teema",
		"language":         "Kieli",
		"price":            "Hinta",
		"diets":            "Ruokavaliot",
		"monday":           "Maanantai",
		"tuesday":          "Tiistai",
		"wednesday":        "Keskiviikko",
		"thursday":         "Torstai",
		"friday":           "Perjantai",
		"saturday":         "Lauantai",
		"sunday":           "Sunnuntai",
	},
}

// weekdayKeys in rendering order for weekly menus.
var weekdayKeys = []string{"monday", "tuesday", "wednesday", "thursday", "friday"}

// Translator resolves UI strings for one selected locale.
type Translator struct {
	lang string
}

// New returns a translator for the given locale. Unknown locales behave as
// the default locale.
func New(lang string) *Translator {
	return &Translator{lang: lang}
}

// Lang returns the selected locale code, normalized to a supported one.
func (t *Translator) Lang() string {
	if _, ok := tables[t.lang]; ok {
		return t.lang
	}
	return DefaultLang
}

// T resolves a key: selected locale, then the default locale, then the raw
// key itself.
func (t *Translator) T(key string) string {
	if table, ok := tables[t.lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := tables[DefaultLang][key]; ok {
		return s
	}
	return key
}

// Weekdays returns the translated names of the five weekday buckets used
// by weekly menu rendering.
func (t *Translator) Weekdays() []string {
	out := make([]string, len(weekdayKeys))
	for i, k := range weekdayKeys {
		out[i] = t.T(k)
	}
	return out
}

// Supported reports whether lang is one of the shipped locales.
func Supported(lang string) bool {
	_, ok := tables[lang]
	return ok
}
