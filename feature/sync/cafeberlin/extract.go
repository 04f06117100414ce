package cafeberlin

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mangelajo/musicevents/feature/sync"

	"github.com/PuerkitoBio/goquery"
)

var monthAbbrevs = map[string]time.Month{
	"ene": time.January, "feb": time.February, "mar": time.March,
	"abr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "ago": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dic": time.December,
}

// Extract walks the listing document and produces one candidate per event
// card. Descriptions stay empty here; they need a detail-page fetch the
// syncer performs separately. Cards without a title are skipped.
func Extract(doc *goquery.Document, pageURL string, now time.Time) []sync.EventData {
	base, err := url.Parse(pageURL)
	if err != nil {
		base = nil
	}

	var out []sync.EventData
	doc.Find("a.event-card").Each(func(_ int, card *goquery.Selection) {
		if data, ok := extractCard(card, base, now); ok {
			out = append(out, data)
		}
	})
	return out
}

func extractCard(card *goquery.Selection, base *url.URL, now time.Time) (sync.EventData, bool) {
	title := strings.TrimSpace(card.Find("div.event-title").First().Text())
	if title == "" {
		return sync.EventData{}, false
	}

	date, fallback := parseDate(card.Find("div.date span.text-raro-700").First().Text(), now)

	var price *float64
	if p := card.Find("div.price span.text-raro-700").First(); p.Length() > 0 {
		price = parsePrice(p.Text())
	}

	return sync.EventData{
		Title:        title,
		Date:         date,
		TicketURL:    resolveURL(base, card.AttrOr("href", "")),
		TicketPrice:  price,
		ImageURL:     imageURL(card),
		ExternalID:   sync.ScrapedExternalID("cafeberlin", title, date),
		FallbackDate: fallback,
	}, true
}

// parseDate resolves an abbreviated fragment like "25 abr" against the
// current year, rolling one year forward when the date already passed. The
// literal "Varias fechas" is a recognized token mapping to thirty days out;
// anything else unparseable takes the same default but is flagged.
func parseDate(text string, now time.Time) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if strings.Contains(text, "Varias") {
		return now.AddDate(0, 0, 30), false
	}

	fields := strings.Fields(text)
	if len(fields) != 2 {
		return now.AddDate(0, 0, 30), true
	}
	day, err := strconv.Atoi(fields[0])
	month, ok := monthAbbrevs[strings.ToLower(fields[1])]
	if err != nil || !ok || day < 1 || day > 31 {
		return now.AddDate(0, 0, 30), true
	}

	date := time.Date(now.Year(), month, day, 20, 0, 0, 0, sync.Madrid())
	if date.Before(now) {
		date = time.Date(now.Year()+1, month, day, 20, 0, 0, 0, sync.Madrid())
	}
	return date, false
}

// parsePrice converts locale price text like "15,50€" into a decimal.
// Unparseable text yields no price, not zero.
func parsePrice(text string) *float64 {
	cleaned := strings.ReplaceAll(text, "€", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	v, err := strconv.ParseFloat(strings.TrimSpace(cleaned), 64)
	if err != nil {
		return nil
	}
	return &v
}

// imageURL picks the desktop variant of the card's responsive image set.
// Protocol-relative srcsets get an https prefix.
func imageURL(card *goquery.Selection) string {
	src := card.Find(`source[media='(min-width: 992px)']`).First()
	if src.Length() == 0 {
		return ""
	}
	u := src.AttrOr("srcset", "")
	if u != "" && !strings.HasPrefix(u, "http") {
		u = "https:" + u
	}
	return u
}

func resolveURL(base *url.URL, href string) string {
	if base == nil || href == "" {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
