package cryptostamp

import (
	"strings"

	"stampscraper/mapper"
	"stampscraper/models"
	"stampscraper/scrapers/base"
)

// family for crypto-stamp listings: these carry the total-issue block and
// their records are written to <stampNo>.json.
var family = mapper.Family{
	Status:        "PUBLISHED",
	Type:          "KRYPTOMARKE",
	Keyword:       models.I18nField{"de": "Erdmännchen", "en": "Meerkat"},
	Labels:        labels(),
	HasCryptoInfo: true,
	WriteFile:     true,
}

func labels() map[string]mapper.Field {
	l := mapper.DetailLabels()
	l["Auflage insgesamt"] = mapper.FieldTotalIssue
	l["Total issue"] = mapper.FieldTotalIssue
	return l
}

type CryptoStampScraper struct {
	*base.BaseScraper
}

func NewCryptoStampScraper() *CryptoStampScraper {
	return &CryptoStampScraper{
		BaseScraper: base.NewBaseScraper(),
	}
}

func (s *CryptoStampScraper) CanScrape(url string) bool {
	return strings.Contains(url, "Kryptobriefmarken") || strings.Contains(url, "crypto-stamps")
}

func (s *CryptoStampScraper) ScrapeStamp(primaryURL, secondaryURL string) (*models.Stamp, error) {
	return s.ScrapeBilingual(family, primaryURL, secondaryURL)
}

func (s *CryptoStampScraper) Family() mapper.Family {
	return family
}
