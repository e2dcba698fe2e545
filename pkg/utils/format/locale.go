package format

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

const isoLayout = "2006-01-02 15:04:05"

// regionLayouts maps a region to the layout its default locale uses for a
// combined date and time.
var regionLayouts = map[string]string{
	"US": "1/2/2006, 3:04:05 PM",
	"PH": "1/2/2006, 3:04:05 PM",

	"GB": "02/01/2006, 15:04:05",
	"IE": "02/01/2006, 15:04:05",
	"AU": "02/01/2006, 15:04:05",
	"NZ": "02/01/2006, 15:04:05",
	"IN": "02/01/2006, 15:04:05",
	"FR": "02/01/2006 15:04:05",
	"IT": "02/01/2006, 15:04:05",
	"ES": "02/01/2006, 15:04:05",
	"PT": "02/01/2006, 15:04:05",
	"BR": "02/01/2006, 15:04:05",
	"BE": "02/01/2006 15:04:05",
	"GR": "02/01/2006, 15:04:05",

	"DE": "2.1.2006, 15:04:05",
	"AT": "2.1.2006, 15:04:05",
	"CH": "2.1.2006, 15:04:05",
	"RU": "02.01.2006, 15:04:05",
	"UA": "02.01.2006, 15:04:05",
	"PL": "2.01.2006, 15:04:05",
	"CZ": "2. 1. 2006 15:04:05",
	"FI": "2.1.2006 klo 15.04.05",
	"NO": "2.1.2006, 15:04:05",
	"DK": "2.1.2006 15.04.05",
	"TR": "02.01.2006 15:04:05",

	"NL": "2-1-2006, 15:04:05",

	"JP": "2006/1/2 15:04:05",
	"CN": "2006/1/2 15:04:05",
	"TW": "2006/1/2 15:04:05",
	"KR": "2006. 1. 2. 15:04:05",

	"SE": isoLayout,
	"LT": isoLayout,
	"CA": isoLayout,
}

// DefaultLocale reads the locale from LC_ALL, LC_TIME and LANG, in that
// order. "C", "POSIX" or an unparseable value mean American English.
func DefaultLocale() language.Tag {
	for _, env := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			return ParseLocale(v)
		}
	}
	return language.AmericanEnglish
}

// ParseLocale converts a POSIX locale name such as "de_DE.UTF-8@euro" into a
// language tag.
func ParseLocale(posix string) language.Tag {
	name := posix
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	if name == "" || name == "C" || name == "POSIX" {
		return language.AmericanEnglish
	}

	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}

// LocaleLayout returns the time layout used to show a timestamp when no
// explicit mask is configured.
func LocaleLayout(tag language.Tag) string {
	region, _ := tag.Region()
	if layout, ok := regionLayouts[region.String()]; ok {
		return layout
	}
	return isoLayout
}
