package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/danuarta/newswatch/internal/types"
)

// months maps Indonesian month names and their common abbreviations (plus
// English fallbacks, which some sources mix in) to calendar months.
var months = map[string]time.Month{
	"januari": time.January, "jan": time.January,
	"februari": time.February, "feb": time.February, "peb": time.February,
	"maret": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"mei": time.May, "may": time.May,
	"juni": time.June, "jun": time.June,
	"juli": time.July, "jul": time.July,
	"agustus": time.August, "agu": time.August, "ags": time.August, "agt": time.August, "aug": time.August,
	"september": time.September, "sep": time.September,
	"oktober": time.October, "okt": time.October, "oct": time.October,
	"november": time.November, "nov": time.November, "nop": time.November,
	"desember": time.December, "des": time.December, "dec": time.December,
}

var (
	// "Senin, 25 Agu 2025 10:31 WIB" / "25 Agustus 2025" — day-of-week
	// prefix, time-of-day suffix and zone are all optional.
	namedDateRe = regexp.MustCompile(`(\d{1,2})\s+([A-Za-z]+)\s+(\d{4})`)

	// "25/08/2025" or "25-08-2025".
	numericDateRe = regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})[/-](\d{4})`)
)

// ParseDate converts site-specific date text to a calendar date (day
// precision, UTC). It fails explicitly when the text matches no recognized
// pattern; callers log and drop the article rather than defaulting.
func ParseDate(text string) (time.Time, error) {
	text = strings.TrimSpace(text)

	if m := namedDateRe.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		year, _ := strconv.Atoi(m[3])
		month, ok := months[strings.ToLower(m[2])]
		if ok && validDay(day) {
			return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
		}
	}

	if m := numericDateRe.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if validDay(day) && month >= 1 && month <= 12 {
			return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
		}
	}

	return time.Time{}, &types.DateParseError{Text: text}
}

func validDay(day int) bool {
	return day >= 1 && day <= 31
}
