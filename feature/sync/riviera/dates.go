package riviera

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mangelajo/musicevents/feature/sync"
)

var monthNumbers = map[string]time.Month{
	"enero": time.January, "febrero": time.February, "marzo": time.March,
	"abril": time.April, "mayo": time.May, "junio": time.June,
	"julio": time.July, "agosto": time.August, "septiembre": time.September,
	"octubre": time.October, "noviembre": time.November, "diciembre": time.December,
}

// spanishToEnglish rewrites a Spanish month name into the form time.Parse
// expects. Ordered so replacement is deterministic when a text somehow names
// two months.
var spanishToEnglish = []struct{ es, en string }{
	{"enero", "January"}, {"febrero", "February"}, {"marzo", "March"},
	{"abril", "April"}, {"mayo", "May"}, {"junio", "June"},
	{"julio", "July"}, {"agosto", "August"}, {"septiembre", "September"},
	{"octubre", "October"}, {"noviembre", "November"}, {"diciembre", "December"},
}

var (
	dayOnlyPattern   = regexp.MustCompile(`^\d{1,2}$`)
	monthYearPattern = regexp.MustCompile(`(?i)(enero|febrero|marzo|abril|mayo|junio|julio|agosto|septiembre|octubre|noviembre|diciembre)[^\d]*(\d{4})`)
)

// Full-date layouts tried in order after the month name is anglicized, e.g.
// "April 20, 2025".
var dateLayouts = []string{"January 2, 2006", "2 January 2006", "2/1/2006", "2006-1-2"}

// monthYearContext infers which month the listing covers. The page title (or
// the URL itself) usually embeds "conciertos <month> <year>"; without a match
// the current month and year apply.
func monthYearContext(pageURL, pageTitle string, now time.Time) (int, time.Month) {
	year, month := now.Year(), now.Month()

	m := monthYearPattern.FindStringSubmatch(pageURL)
	if m == nil {
		m = monthYearPattern.FindStringSubmatch(pageTitle)
	}
	if m != nil {
		if num, ok := monthNumbers[strings.ToLower(m[1])]; ok {
			month = num
			if y, err := strconv.Atoi(m[2]); err == nil {
				year = y
			}
		}
	}
	return year, month
}

// parseDate resolves a card's date text against the page's month/year
// context. Day-only fragments ("25") combine with the context and a fixed
// 20:00 start; full dates run through the layout list. An unparseable text
// falls back to thirty days from now and the second return reports it, so the
// event is kept but flagged.
func parseDate(text string, year int, month time.Month, now time.Time) (time.Time, bool) {
	text = strings.TrimSpace(text)

	if dayOnlyPattern.MatchString(text) {
		day, err := strconv.Atoi(text)
		if err == nil && day >= 1 && day <= 31 {
			return time.Date(year, month, day, 20, 0, 0, 0, sync.Madrid()), false
		}
		return now.AddDate(0, 0, 30), true
	}

	lower := strings.ToLower(text)
	for _, r := range spanishToEnglish {
		if strings.Contains(lower, r.es) {
			lower = strings.Replace(lower, r.es, r.en, 1)
			break
		}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, lower); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 20, 0, 0, 0, sync.Madrid()), false
		}
	}
	return now.AddDate(0, 0, 30), true
}
