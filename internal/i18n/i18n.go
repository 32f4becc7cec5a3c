// Package i18n provides internationalization support for the maps cache service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "de-DE,de;q=0.9,en;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "en" from "en-US")
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		// Normalize to lowercase
		lang = strings.ToLower(lang)
		// Validate it's a supported locale
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Error messages
			"error.invalid_request":        "Invalid request",
			"error.invalid_request_body":   "Invalid request body",
			"error.internal_error":         "An unexpected error occurred",
			"error.unauthorized":           "Unauthorized",
			"error.api_key_required":       "API key is required",
			"error.invalid_api_key":        "Invalid API key",
			"error.not_found":              "Not found",
			"error.rate_limit_exceeded":    "Too many requests, please try again later",
			"error.timeout":                "The request timed out",
			"error.no_results":             "No results found",
			"error.provider_unavailable":   "The map provider is not available, please try again later",
			"error.provider_error":         "The map provider request failed",
			"error.validation.address":     "address: must not be empty",
			"error.validation.coordinates": "lat and lng: must be valid coordinates",
			"error.validation.location":    "origin and destination: must be text, coordinates, or a place with location or query",
			"error.validation.travel_mode": "travel_mode: must be DRIVING, WALKING, BICYCLING or TRANSIT",
			"error.validation.unit_system": "unit_system: must be METRIC or IMPERIAL",
			"error.validation.place_id":    "placeId: must not be empty",

			// Success messages
			"success.cache_cleared": "All caches cleared",
		},
		"de": {
			// Error messages
			"error.invalid_request":        "Ungültige Anfrage",
			"error.invalid_request_body":   "Ungültiger Anfrageinhalt",
			"error.internal_error":         "Ein unerwarteter Fehler ist aufgetreten",
			"error.unauthorized":           "Nicht autorisiert",
			"error.api_key_required":       "API-Schlüssel erforderlich",
			"error.invalid_api_key":        "Ungültiger API-Schlüssel",
			"error.not_found":              "Nicht gefunden",
			"error.rate_limit_exceeded":    "Zu viele Anfragen, bitte später erneut versuchen",
			"error.timeout":                "Zeitüberschreitung der Anfrage",
			"error.no_results":             "Keine Ergebnisse gefunden",
			"error.provider_unavailable":   "Der Kartendienst ist nicht verfügbar, bitte später erneut versuchen",
			"error.provider_error":         "Die Anfrage an den Kartendienst ist fehlgeschlagen",
			"error.validation.address":     "address: darf nicht leer sein",
			"error.validation.coordinates": "lat und lng: müssen gültige Koordinaten sein",
			"error.validation.location":    "origin und destination: müssen Text, Koordinaten oder ein Ort mit location oder query sein",
			"error.validation.travel_mode": "travel_mode: muss DRIVING, WALKING, BICYCLING oder TRANSIT sein",
			"error.validation.unit_system": "unit_system: muss METRIC oder IMPERIAL sein",
			"error.validation.place_id":    "placeId: darf nicht leer sein",

			// Success messages
			"success.cache_cleared": "Alle Caches wurden geleert",
		},
	}
}
