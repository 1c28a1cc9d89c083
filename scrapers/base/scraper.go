package base

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/PuerkitoBio/goquery"

	"stampscraper/config"
)

// BaseScraper handles the fetching logic shared by all catalog families.
type BaseScraper struct {
	Client *http.Client
	// BrowserFallback enables the chromedp and selenium strategies when
	// the plain HTTP fetch fails or yields an invalid page.
	BrowserFallback bool
}

// NewBaseScraper creates a BaseScraper configured from the package config.
func NewBaseScraper() *BaseScraper {
	return &BaseScraper{
		Client: &http.Client{
			Timeout: config.HTTPTimeout,
		},
		BrowserFallback: config.BrowserFallback,
	}
}

// FetchDocument fetches the URL, trying plain HTTP first and falling back
// to the browser strategies when enabled. The validator decides whether a
// fetched page actually is a product page.
func (b *BaseScraper) FetchDocument(url string, validator func(*goquery.Document) bool) (*goquery.Document, error) {
	doc, err := b.FetchDocumentHTTP(url)
	if err == nil && validator(doc) {
		return doc, nil
	}
	if err != nil {
		slog.Warn("http fetch failed", "url", url, "err", err)
	} else {
		slog.Warn("http fetch yielded an invalid page", "url", url)
	}

	if !b.BrowserFallback {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("invalid page at %s", url)
	}

	slog.Info("trying chromedp", "url", url)
	doc, err = b.FetchDocumentChromeDP(url)
	if err == nil && validator(doc) {
		return doc, nil
	}
	if err != nil {
		slog.Warn("chromedp fetch failed", "url", url, "err", err)
	}

	slog.Info("trying selenium", "url", url)
	doc, err = b.FetchDocumentSelenium(url)
	if err == nil && validator(doc) {
		return doc, nil
	}
	if err != nil {
		slog.Warn("selenium fetch failed", "url", url, "err", err)
	}

	return nil, fmt.Errorf("all fetch strategies failed for %s", url)
}

// FetchDocumentHTTP fetches the URL with the plain HTTP client and parses
// the body into a goquery document.
func (b *BaseScraper) FetchDocumentHTTP(url string) (*goquery.Document, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "de-LI,de;q=0.9,en;q=0.8")

	res, err := b.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status code error: %d %s", res.StatusCode, res.Status)
	}

	return goquery.NewDocumentFromReader(res.Body)
}
