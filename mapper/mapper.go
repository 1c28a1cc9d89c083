// Package mapper normalizes the raw attribute table of one listing into
// the final Stamp record.
package mapper

import (
	"log/slog"

	"stampscraper/extract"
	"stampscraper/models"
)

// The attribute table is always read from the German page; translated
// values for the bilingual detail fields are not collected today.
const (
	PrimaryLang   = "de"
	SecondaryLang = "en"
)

// stampNoLabel is the raw header carrying the article number.
const stampNoLabel = "Artikelnummer"

// MapToStamp translates one raw attribute table into the final record for
// the given catalog family. It is deterministic and does no I/O apart
// from a warning log for headers missing from the label dictionary; those
// are dropped, never an error. When two recognized headers map to the
// same field, the one iterating last wins.
func MapToStamp(fam Family, titles models.I18nField, raw *extract.AttributeTable, imageURL, sourceURL string) *models.Stamp {
	detail := models.StampDetail{}
	var crypto *models.CryptoInfo
	if fam.HasCryptoInfo {
		crypto = &models.CryptoInfo{}
	}

	for _, label := range raw.Labels() {
		value, _ := raw.Get(label)
		field, ok := fam.Labels[label]
		if !ok {
			slog.Warn("unrecognized attribute label", "label", label, "value", value)
			continue
		}

		switch field {
		case FieldStampNo:
			// read below by its fixed label, not stored on the detail
		case FieldTotalIssue:
			if crypto != nil {
				crypto.TotalIssue = value
			}
		case FieldIssue:
			detail.Issue = value
		case FieldEdition:
			detail.Edition = value
		case FieldIssueAmount:
			detail.IssueAmount = value
		case FieldSheetFormat:
			detail.SheetFormat = value
		case FieldPrinter:
			detail.Printer = value
		case FieldDesign:
			detail.Design = value
		case FieldYear:
			detail.Year = value
		case FieldFormat:
			detail.Format = value
		case FieldMichelNumber:
			detail.MichelNumber = value
		case FieldFaceValue:
			detail.FaceValue = value
		case FieldPerforation:
			detail.Perforation = value
		case FieldArticleType:
			detail.ArticleType = models.I18nField{PrimaryLang: value}
		case FieldConservation:
			detail.Conservation = models.I18nField{PrimaryLang: value}
		case FieldMotive:
			detail.Motive = models.I18nField{PrimaryLang: value}
		case FieldPrint:
			detail.Print = models.I18nField{PrimaryLang: value}
		case FieldAdhesiveType:
			detail.AdhesiveType = models.I18nField{PrimaryLang: value}
		case FieldPaper:
			detail.Paper = models.I18nField{PrimaryLang: value}
		default:
			slog.Warn("label maps to unhandled field", "label", label, "field", field)
		}
	}

	// empty string when the row is missing, never null
	stampNo, _ := raw.Get(stampNoLabel)

	return &models.Stamp{
		Status:       fam.Status,
		Type:         fam.Type,
		URL:          sourceURL,
		Title:        titles,
		Summary:      titles,
		Descriptions: []models.I18nField{},
		StampNo:      stampNo,
		Keyword:      fam.Keyword,
		Image:        models.Image{URL: imageURL},
		Detail:       detail,
		CryptoInfo:   crypto,
	}
}
