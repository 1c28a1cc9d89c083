package base

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"stampscraper/config"
	"stampscraper/extract"
	"stampscraper/mapper"
	"stampscraper/models"
)

type fetchResult struct {
	doc *goquery.Document
	err error
}

// productPageValidator accepts any page carrying the listing heading or
// the property table.
func productPageValidator(doc *goquery.Document) bool {
	return doc.Find("h1.product-name").Length() > 0 ||
		doc.Find(".product-properties table").Length() > 0
}

// ScrapeBilingual fetches the German and English pages of one listing
// concurrently and assembles the record. Either fetch failing fails the
// whole call; there is no single-language fallback.
//
// Only the primary (German) document's image and attribute table are
// used. The secondary page carries the same values under translated
// headers, so its table is discarded rather than merged; it is fetched
// for its translated title only.
func (b *BaseScraper) ScrapeBilingual(fam mapper.Family, primaryURL, secondaryURL string) (*models.Stamp, error) {
	primaryCh := make(chan fetchResult, 1)
	secondaryCh := make(chan fetchResult, 1)

	go func() {
		doc, err := b.FetchDocument(primaryURL, productPageValidator)
		primaryCh <- fetchResult{doc, err}
	}()
	go func() {
		doc, err := b.FetchDocument(secondaryURL, productPageValidator)
		secondaryCh <- fetchResult{doc, err}
	}()

	primary := <-primaryCh
	secondary := <-secondaryCh
	if primary.err != nil {
		return nil, fmt.Errorf("fetching %s: %w", primaryURL, primary.err)
	}
	if secondary.err != nil {
		return nil, fmt.Errorf("fetching %s: %w", secondaryURL, secondary.err)
	}

	titles := models.I18nField{
		mapper.PrimaryLang:   extract.Title(primary.doc),
		mapper.SecondaryLang: extract.Title(secondary.doc),
	}
	imageURL := extract.ImageURL(primary.doc, config.SiteBaseURL)
	table := extract.Attributes(primary.doc)

	return mapper.MapToStamp(fam, titles, table, imageURL, primaryURL), nil
}
