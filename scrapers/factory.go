package scrapers

import (
	"errors"
	"fmt"
	"strings"

	"stampscraper/scrapers/cryptostamp"
	"stampscraper/scrapers/postagestamp"
	"stampscraper/utils"
)

// ErrNoScraper is returned when no registered catalog family matches the URL.
var ErrNoScraper = errors.New("no scraper for url")

// GetScraper returns the catalog-family scraper and the resolved URL
func GetScraper(url string) (Scraper, string, error) {
	resolvedURL := url
	if !strings.Contains(url, "philatelie.li") {
		// Listing links get passed around shortened or moved; follow
		// redirects to the canonical page before matching.
		var err error
		resolvedURL, err = utils.ResolveListingURL(url)
		if err != nil {
			return nil, url, fmt.Errorf("error resolving url: %w", err)
		}
	}

	// Register catalog families here. Order matters: the crypto family
	// matches a subset of shop URLs, the postage family the rest.
	registered := []Scraper{
		cryptostamp.NewCryptoStampScraper(),
		postagestamp.NewPostageStampScraper(),
	}

	for _, s := range registered {
		if s.CanScrape(resolvedURL) {
			return s, resolvedURL, nil
		}
	}

	return nil, resolvedURL, fmt.Errorf("%w: %s", ErrNoScraper, resolvedURL)
}
