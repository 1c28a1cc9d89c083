package scrapers

import (
	"stampscraper/mapper"
	"stampscraper/models"
)

// Scraper defines the interface for all catalog-family scrapers
type Scraper interface {
	// CanScrape checks if the scraper can handle the given listing URL
	CanScrape(url string) bool
	// ScrapeStamp scrapes one listing from its two language pages
	ScrapeStamp(primaryURL, secondaryURL string) (*models.Stamp, error)
	// Family returns the catalog-family descriptor
	Family() mapper.Family
}
