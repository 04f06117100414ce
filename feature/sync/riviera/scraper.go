package riviera

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// URL is the concert listing page.
const URL = "https://salariviera.com/conciertossalariviera/"

// FetchTimeout bounds the listing page download.
const FetchTimeout = 30 * time.Second

// Scraper downloads and parses the listing page.
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
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching listing page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching listing page: unexpected status code %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing listing page: %w", err)
	}
	return doc, nil
}
