package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFileSize(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{500, "500 B"},
		{999, "999 B"},
		{1000, "1.0 kB (1000 B)"},
		{1234, "1.2 kB (1234 B)"},
		{5_300_000, "5.3 MB (5300000 B)"},
		{-1, "0 B"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FileSize(tt.in), "size %d", tt.in)
	}
}

func TestDateTime_Masks(t *testing.T) {
	ts := time.Date(2024, time.March, 1, 15, 4, 5, 678_000_000, time.UTC)

	tests := []struct {
		mask string
		want string
	}{
		{"yyyy-mm-dd HH:MM:ss", "2024-03-01 15:04:05"},
		{"d/m/yy", "1/3/24"},
		{"dddd, mmmm dS", "Friday, March 1st"},
		{"ddd mmm", "Fri Mar"},
		{"h:MM TT", "3:04 PM"},
		{"hh:MM tt", "03:04 pm"},
		{"HH:MM:ss.l", "15:04:05.678"},
		{"ss.L", "05.67"},
		{"'Day' d 'of' mmmm", "Day 1 of March"},
		{`"at" HH`, "at 15"},
		{"yyy", "24y"},
		{"isoDate", "2024-03-01"},
		{"isoUtcDateTime", "2024-03-01T15:04:05Z"},
		{"isoDateTime", "2024-03-01T15:04:05+0000"},
		{"W N", "9 5"},
		{"'unterminated", "'unterminated"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DateTime(ts, tt.mask), "mask %q", tt.mask)
	}
}

func TestDateTime_UTCPrefix(t *testing.T) {
	loc := time.FixedZone("X", 2*60*60)
	ts := time.Date(2024, time.March, 1, 1, 30, 0, 0, loc)

	assert.Equal(t, "2024-02-29 23:30", DateTime(ts, "UTC:yyyy-mm-dd HH:MM"))
	assert.Equal(t, "2024-03-01 01:30 +02:00", DateTime(ts, "yyyy-mm-dd HH:MM p"))
}

func TestDateTime_EmptyMaskUsesLocale(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_TIME", "de_DE.UTF-8")

	ts := time.Date(2024, time.March, 1, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "1.3.2024, 15:04:05", DateTime(ts, ""))
}

func TestOrdinal(t *testing.T) {
	for day, want := range map[int]string{1: "st", 2: "nd", 3: "rd", 4: "th", 11: "th", 12: "th", 13: "th", 21: "st", 22: "nd", 31: "st"} {
		assert.Equal(t, want, ordinal(day), "day %d", day)
	}
}

func TestParseLocale(t *testing.T) {
	assert.Equal(t, language.AmericanEnglish, ParseLocale("C"))
	assert.Equal(t, language.AmericanEnglish, ParseLocale("POSIX.UTF-8"))
	assert.Equal(t, language.AmericanEnglish, ParseLocale("!!"))
	assert.Equal(t, language.MustParse("de-DE"), ParseLocale("de_DE.UTF-8@euro"))
	assert.Equal(t, language.MustParse("ja-JP"), ParseLocale("ja_JP"))
}

func TestLocaleLayout(t *testing.T) {
	ts := time.Date(2024, time.March, 1, 15, 4, 5, 0, time.UTC)

	assert.Equal(t, "3/1/2024, 3:04:05 PM", ts.Format(LocaleLayout(language.AmericanEnglish)))
	assert.Equal(t, "01/03/2024, 15:04:05", ts.Format(LocaleLayout(language.BritishEnglish)))
	assert.Equal(t, "1.3.2024, 15:04:05", ts.Format(LocaleLayout(language.German)))
	assert.Equal(t, "2024/3/1 15:04:05", ts.Format(LocaleLayout(language.Japanese)))
	assert.Equal(t, "2024-03-01 15:04:05", ts.Format(LocaleLayout(language.MustParse("sv-SE"))))
	assert.Equal(t, "2024-03-01 15:04:05", ts.Format(LocaleLayout(language.MustParse("en-ZA"))))
}

func TestDefaultLocale(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_TIME", "")
	t.Setenv("LANG", "")
	assert.Equal(t, language.AmericanEnglish, DefaultLocale())

	t.Setenv("LANG", "fr_FR.UTF-8")
	assert.Equal(t, language.MustParse("fr-FR"), DefaultLocale())

	t.Setenv("LC_ALL", "en_GB.UTF-8")
	assert.Equal(t, language.MustParse("en-GB"), DefaultLocale())
}
