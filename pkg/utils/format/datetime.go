package format

import (
	"fmt"
	"strings"
	"time"
)

// namedMasks are shorthand masks accepted in place of a pattern.
var namedMasks = map[string]string{
	"default":             "ddd mmm dd yyyy HH:MM:ss",
	"shortDate":           "m/d/yy",
	"paddedShortDate":     "mm/dd/yyyy",
	"mediumDate":          "mmm d, yyyy",
	"longDate":            "mmmm d, yyyy",
	"fullDate":            "dddd, mmmm d, yyyy",
	"shortTime":           "h:MM TT",
	"mediumTime":          "h:MM:ss TT",
	"longTime":            "h:MM:ss TT Z",
	"isoDate":             "yyyy-mm-dd",
	"isoTime":             "HH:MM:ss",
	"isoDateTime":         "yyyy-mm-dd'T'HH:MM:sso",
	"isoUtcDateTime":      "UTC:yyyy-mm-dd'T'HH:MM:ss'Z'",
	"expiresHeaderFormat": "ddd, dd mmm yyyy HH:MM:ss Z",
}

// maxRun is the longest run of each token letter that forms one token.
// Letters not listed are copied through.
var maxRun = map[byte]int{
	'd': 4, 'm': 4, 'y': 4,
	'H': 2, 'h': 2, 'M': 2, 's': 2, 'T': 2, 't': 2, 'W': 1,
	'L': 1, 'l': 1, 'o': 1, 'p': 1, 'S': 1, 'Z': 1, 'N': 1,
}

// DateTime formats t using a dateformat-style mask such as
// "yyyy-mm-dd HH:MM:ss". Text in single or double quotes is copied
// literally. A mask may name one of the predefined masks ("isoDateTime")
// and may start with "UTC:" or "GMT:" to convert t to UTC first. An empty
// mask selects the layout of the current locale.
func DateTime(t time.Time, mask string) string {
	if strings.TrimSpace(mask) == "" {
		return t.Format(LocaleLayout(DefaultLocale()))
	}

	if named, ok := namedMasks[mask]; ok {
		mask = named
	}
	if rest, ok := strings.CutPrefix(mask, "UTC:"); ok {
		mask, t = rest, t.UTC()
	} else if rest, ok := strings.CutPrefix(mask, "GMT:"); ok {
		mask, t = rest, t.UTC()
	}

	var b strings.Builder
	for i := 0; i < len(mask); {
		c := mask[i]

		if c == '\'' || c == '"' {
			end := strings.IndexByte(mask[i+1:], c)
			if end < 0 {
				b.WriteString(mask[i:])
				break
			}
			b.WriteString(mask[i+1 : i+1+end])
			i += end + 2
			continue
		}

		limit, ok := maxRun[c]
		if !ok {
			b.WriteByte(c)
			i++
			continue
		}

		run := 1
		for i+run < len(mask) && mask[i+run] == c && run < limit {
			run++
		}
		if c == 'y' && run == 3 {
			run = 2
		}
		if c == 'y' && run == 1 {
			b.WriteByte(c)
			i++
			continue
		}

		b.WriteString(token(t, mask[i:i+run]))
		i += run
	}
	return b.String()
}

func token(t time.Time, tok string) string {
	hour12 := t.Hour() % 12
	if hour12 == 0 {
		hour12 = 12
	}

	switch tok {
	case "d":
		return fmt.Sprint(t.Day())
	case "dd":
		return fmt.Sprintf("%02d", t.Day())
	case "ddd":
		return t.Weekday().String()[:3]
	case "dddd":
		return t.Weekday().String()
	case "m":
		return fmt.Sprint(int(t.Month()))
	case "mm":
		return fmt.Sprintf("%02d", int(t.Month()))
	case "mmm":
		return t.Month().String()[:3]
	case "mmmm":
		return t.Month().String()
	case "yy":
		return fmt.Sprintf("%02d", t.Year()%100)
	case "yyyy":
		return fmt.Sprintf("%04d", t.Year())
	case "h":
		return fmt.Sprint(hour12)
	case "hh":
		return fmt.Sprintf("%02d", hour12)
	case "H":
		return fmt.Sprint(t.Hour())
	case "HH":
		return fmt.Sprintf("%02d", t.Hour())
	case "M":
		return fmt.Sprint(t.Minute())
	case "MM":
		return fmt.Sprintf("%02d", t.Minute())
	case "s":
		return fmt.Sprint(t.Second())
	case "ss":
		return fmt.Sprintf("%02d", t.Second())
	case "l":
		return fmt.Sprintf("%03d", t.Nanosecond()/int(time.Millisecond))
	case "L":
		return fmt.Sprintf("%02d", t.Nanosecond()/int(10*time.Millisecond))
	case "t":
		return meridiem(t, "a", "p")
	case "tt":
		return meridiem(t, "am", "pm")
	case "T":
		return meridiem(t, "A", "P")
	case "TT":
		return meridiem(t, "AM", "PM")
	case "Z":
		return t.Format("MST")
	case "o":
		return t.Format("-0700")
	case "p":
		return t.Format("-07:00")
	case "S":
		return ordinal(t.Day())
	case "W":
		_, week := t.ISOWeek()
		return fmt.Sprint(week)
	case "N":
		wd := int(t.Weekday())
		if wd == 0 {
			wd = 7
		}
		return fmt.Sprint(wd)
	}
	return tok
}

func meridiem(t time.Time, am, pm string) string {
	if t.Hour() < 12 {
		return am
	}
	return pm
}

func ordinal(day int) string {
	if day%100 >= 11 && day%100 <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}
