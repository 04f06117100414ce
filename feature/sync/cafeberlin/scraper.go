package cafeberlin

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// URL is the event listing page.
const URL = "https://cafeberlinentradas.com/es"

// FetchTimeout bounds each page download, listing and detail alike.
const FetchTimeout = 30 * time.Second

// The site rejects requests without a realistic browser User-Agent.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"

// Scraper downloads and parses the listing and per-event detail pages.
type Scraper struct {
	http    *http.Client
	baseURL string
}

// NewScraper creates a scraper against the live site.
func NewScraper() *Scraper {
	return &Scraper{
		http:    &http.Client{Timeout: FetchTimeout},
		baseURL: URL,
	}
}

// Fetch retrieves the listing page as a parsed document.
func (s *Scraper) Fetch(ctx context.Context) (*goquery.Document, error) {
	return s.get(ctx, s.baseURL)
}

// Description fetches an event's detail page and extracts its long-form
// description. A missing description container falls back to the whole main
// content text.
func (s *Scraper) Description(ctx context.Context, eventURL string) (string, error) {
	doc, err := s.get(ctx, eventURL)
	if err != nil {
		return "", err
	}

	var header *goquery.Selection
	doc.Find("div").Each(func(_ int, d *goquery.Selection) {
		if strings.Contains(d.Text(), "Descripción del evento") {
			header = d
		}
	})
	if header != nil {
		if next := header.NextAllFiltered("div").First(); next.Length() > 0 {
			return strings.TrimSpace(next.Text()), nil
		}
	}

	if main := doc.Find("main").First(); main.Length() > 0 {
		return strings.TrimSpace(main.Text()), nil
	}
	return "", nil
}

func (s *Scraper) get(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching page: unexpected status code %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}
	return doc, nil
}
