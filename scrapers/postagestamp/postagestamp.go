package postagestamp

import (
	"strings"

	"stampscraper/mapper"
	"stampscraper/models"
	"stampscraper/scrapers/base"
)

// family for classic postage-stamp listings: no crypto block, records go
// to stdout.
var family = mapper.Family{
	Status:  "PUBLISHED",
	Type:    "BRIEFMARKE",
	Keyword: models.I18nField{"de": "Briefmarke", "en": "Stamp"},
	Labels:  mapper.DetailLabels(),
}

type PostageStampScraper struct {
	*base.BaseScraper
}

func NewPostageStampScraper() *PostageStampScraper {
	return &PostageStampScraper{
		BaseScraper: base.NewBaseScraper(),
	}
}

func (s *PostageStampScraper) CanScrape(url string) bool {
	return strings.Contains(url, "philatelie.li")
}

func (s *PostageStampScraper) ScrapeStamp(primaryURL, secondaryURL string) (*models.Stamp, error) {
	return s.ScrapeBilingual(family, primaryURL, secondaryURL)
}

func (s *PostageStampScraper) Family() mapper.Family {
	return family
}
