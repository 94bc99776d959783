package timeutil

import (
	"time"

	"golang.org/x/text/language"
)

// ISOLayout is the interchange format for loader timestamps: RFC 3339 in UTC
// with nanoseconds, so values round-trip without losing precision.
const ISOLayout = time.RFC3339Nano

// FormatISO formats t in UTC using ISOLayout.
func FormatISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

// ParseISO parses a timestamp produced by FormatISO.
func ParseISO(value string) (time.Time, error) {
	return time.Parse(ISOLayout, value)
}

// DefaultLocale is used when no Accept-Language preference matches.
var DefaultLocale = language.AmericanEnglish

// Locales lists the locales with a dedicated short-date layout; the first
// entry is the default.
var Locales = []language.Tag{
	language.AmericanEnglish,
	language.BritishEnglish,
	language.German,
	language.French,
	language.Spanish,
	language.Japanese,
}

var dateLayouts = map[language.Tag]string{
	language.AmericanEnglish: "1/2/2006",
	language.BritishEnglish:  "02/01/2006",
	language.German:          "2.1.2006",
	language.French:          "02/01/2006",
	language.Spanish:         "2/1/2006",
	language.Japanese:        "2006/1/2",
}

var matcher = language.NewMatcher(Locales)

// MatchLocale picks the best supported locale for an Accept-Language header.
func MatchLocale(acceptLanguage string) language.Tag {
	if acceptLanguage == "" {
		return DefaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return DefaultLocale
	}
	return Locales[idx]
}

// DisplayDate formats t as a short numeric date for the given locale, in UTC.
func DisplayDate(t time.Time, locale language.Tag) string {
	layout, ok := dateLayouts[locale]
	if !ok {
		layout = dateLayouts[DefaultLocale]
	}
	return t.UTC().Format(layout)
}
