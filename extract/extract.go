// Package extract holds the pure page extractors: goquery document in,
// plain values out. No network access and no normalization happens here.
package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	titleSelector = "h1.product-name"
	imageSelector = ".product-image img"
	rowSelector   = ".product-properties table tr"
)

// Title returns the trimmed listing heading, or "" if the page has none.
func Title(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find(titleSelector).First().Text())
}

// ImageURL returns the primary product image URL. The shop emits relative
// src attributes on most pages, so those are resolved against baseURL.
func ImageURL(doc *goquery.Document, baseURL string) string {
	src := doc.Find(imageSelector).First().AttrOr("src", "")
	if src == "" {
		return ""
	}
	if strings.HasPrefix(src, "http") {
		return src
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(src, "/")
}

// Attributes reads the property table into an AttributeTable. Rows missing
// either a label or a value are skipped; a repeated label overwrites the
// earlier row's value.
func Attributes(doc *goquery.Document) *AttributeTable {
	table := NewAttributeTable()
	doc.Find(rowSelector).Each(func(_ int, row *goquery.Selection) {
		label := strings.TrimSpace(row.Find("th").Text())
		value := strings.TrimSpace(row.Find("td").Text())
		if label == "" || value == "" {
			return
		}
		table.Set(label, value)
	})
	return table
}
