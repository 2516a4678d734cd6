// Package i18n provides internationalization support for the switchbox service.
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

	// Parse Accept-Language header (e.g., "en-US,en;q=0.9,he;q=0.8")
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
			"error.invalid_request":         "Invalid request",
			"error.invalid_request_body":    "Invalid request body",
			"error.internal_error":          "An unexpected error occurred",
			"error.not_found":               "Not found",
			"error.rate_limit_exceeded":     "Too many requests, please try again later",
			"error.capacity_exceeded":       "Not enough module space in the box, only %d modules available",
			"error.invalid_box_type":        "Unknown box type",
			"error.invalid_capacity":        "Capacity is not offered for this box type",
			"error.product_not_installable": "Product cannot be installed in a box",
			"error.catalog_unavailable":     "Product catalog is temporarily unavailable",
			"error.validation.quantity":     "quantity: must be a positive integer",
			"error.timeout":                 "Request timed out",

			// Success messages
			"success.summary_generated": "Project summary generated successfully",
		},
		"he": {
			// Error messages
			"error.invalid_request":         "בקשה לא תקינה",
			"error.invalid_request_body":    "גוף הבקשה אינו תקין",
			"error.internal_error":          "אירעה שגיאה בלתי צפויה",
			"error.not_found":               "לא נמצא",
			"error.rate_limit_exceeded":     "יותר מדי בקשות, נסה שוב מאוחר יותר",
			"error.capacity_exceeded":       "אין מספיק מקום בקופסה, נותרו רק %d מקומות",
			"error.invalid_box_type":        "סוג קופסה לא מוכר",
			"error.invalid_capacity":        "קיבולת זו אינה קיימת לסוג הקופסה",
			"error.product_not_installable": "לא ניתן להתקין מוצר זה בקופסה",
			"error.catalog_unavailable":     "קטלוג המוצרים אינו זמין כרגע",
			"error.validation.quantity":     "quantity: חייב להיות מספר שלם חיובי",
			"error.timeout":                 "תם הזמן המוקצב לבקשה",

			// Success messages
			"success.summary_generated": "סיכום הפרויקט נוצר בהצלחה",
		},
	}
}
