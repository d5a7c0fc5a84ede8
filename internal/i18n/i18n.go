// Package i18n resolves the two-value locale tag used across the site and
// picks localized values out of bilingual content.
package i18n

import (
	"strings"

	"github.com/logicton/siteapi/pkg/models"
)

type Locale string

const (
	Thai    Locale = "th"
	English Locale = "en"

	// DefaultLocale is Thai; the company and most visitors are Thailand based.
	DefaultLocale = Thai
)

// IsValid reports whether s is one of the two supported locale tags.
func IsValid(s string) bool {
	return s == string(Thai) || s == string(English)
}

// ResolveAcceptLanguage picks a locale from an Accept-Language header value.
// Any mention of Thai wins; an empty header falls back to the default.
func ResolveAcceptLanguage(acceptLanguage string) Locale {
	if acceptLanguage == "" {
		return DefaultLocale
	}
	if strings.Contains(acceptLanguage, "th") {
		return Thai
	}
	return English
}

// FromPath extracts the locale from a leading path segment ("/th/about" ->
// th, "/about"). The second return is the path with the locale stripped.
func FromPath(path string) (Locale, string) {
	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")
	if len(segments) > 0 && IsValid(segments[0]) {
		rest := "/" + strings.Join(segments[1:], "/")
		return Locale(segments[0]), rest
	}
	return DefaultLocale, path
}

// Opposite returns the other supported locale.
func Opposite(l Locale) Locale {
	if l == Thai {
		return English
	}
	return Thai
}

// Localized returns the value of t for the requested locale, falling back to
// English, then Thai, then the empty string.
func Localized(t models.LocalizedText, l Locale) string {
	if l == Thai && t.Th != "" {
		return t.Th
	}
	if t.En != "" {
		return t.En
	}
	return t.Th
}
