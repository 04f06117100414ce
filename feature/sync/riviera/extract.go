package riviera

import (
	"strings"
	"time"

	"github.com/mangelajo/musicevents/feature/sync"

	"github.com/PuerkitoBio/goquery"
)

// Extract walks the listing document and produces one candidate per event
// card. The page has been through several redesigns, so every lookup runs a
// fallback chain of selectors; a card that yields no title is skipped, and a
// selector miss on the whole page yields zero candidates, never an error.
func Extract(doc *goquery.Document, pageURL string, now time.Time) []sync.EventData {
	year, month := monthYearContext(pageURL, doc.Find("title").First().Text(), now)

	cards := doc.Find("article")
	if cards.Length() == 0 {
		cards = doc.Find("div[class*=event]")
	}

	var out []sync.EventData
	cards.Each(func(_ int, card *goquery.Selection) {
		if data, ok := extractCard(card, year, month, now); ok {
			out = append(out, data)
		}
	})
	return out
}

func extractCard(card *goquery.Selection, year int, month time.Month, now time.Time) (sync.EventData, bool) {
	title, ticketURL := titleAndLink(card)
	if title == "" {
		return sync.EventData{}, false
	}

	date, fallback := parseDate(dateText(card), year, month, now)

	return sync.EventData{
		Title:        title,
		Date:         date,
		Description:  description(card),
		TicketURL:    ticketURL,
		ImageURL:     imageURL(card),
		ExternalID:   sync.ScrapedExternalID("riviera", title, date),
		FallbackDate: fallback,
	}, true
}

func titleAndLink(card *goquery.Selection) (string, string) {
	for _, sel := range []string{
		"h3.elementor-post__title a",
		"h2 a", "h3 a", "h4 a",
		"[class*=title] a",
	} {
		link := card.Find(sel).First()
		if link.Length() > 0 {
			if title := strings.TrimSpace(link.Text()); title != "" {
				return title, link.AttrOr("href", "")
			}
		}
	}

	// Last resort: any anchor with title-like text.
	var title, href string
	card.Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		text := strings.TrimSpace(a.Text())
		if len(text) > 5 {
			title, href = text, a.AttrOr("href", "")
			return false
		}
		return true
	})
	return title, href
}

func dateText(card *goquery.Selection) string {
	for _, sel := range []string{
		"span.elementor-post-date",
		"[class*=date]",
		"time",
	} {
		el := card.Find(sel).First()
		if el.Length() > 0 {
			return strings.TrimSpace(el.Text())
		}
	}
	return ""
}

func imageURL(card *goquery.Selection) string {
	img := card.Find("img").First()
	if img.Length() == 0 {
		return ""
	}
	for _, attr := range []string{"src", "data-src", "data-lazy-src"} {
		if v, ok := img.Attr(attr); ok && v != "" {
			return v
		}
	}
	return ""
}

func description(card *goquery.Selection) string {
	for _, sel := range []string{
		"div.elementor-post__excerpt",
		"[class*=excerpt]",
		"[class*=description]",
		"p",
	} {
		el := card.Find(sel).First()
		if el.Length() == 0 {
			continue
		}
		if p := el.Find("p").First(); p.Length() > 0 {
			return strings.TrimSpace(p.Text())
		}
		return strings.TrimSpace(el.Text())
	}
	return ""
}
