package mapper

import (
	"testing"

	"github.com/stretchr/testify/require"

	"stampscraper/extract"
	"stampscraper/models"
)

func cryptoFamily() Family {
	labels := DetailLabels()
	labels["Auflage insgesamt"] = FieldTotalIssue
	return Family{
		Status:        "PUBLISHED",
		Type:          "KRYPTOMARKE",
		Keyword:       models.I18nField{"de": "Erdmännchen", "en": "Meerkat"},
		Labels:        labels,
		HasCryptoInfo: true,
	}
}

func table(pairs ...[2]string) *extract.AttributeTable {
	t := extract.NewAttributeTable()
	for _, p := range pairs {
		t.Set(p[0], p[1])
	}
	return t
}

var testTitles = models.I18nField{"de": "Titel", "en": "Title"}

func TestMapToStamp(t *testing.T) {
	raw := table(
		[2]string{"Jahr", "2022"},
		[2]string{"Michel-Nummer", "123"},
		[2]string{"Artikelnummer", "X-9"},
	)

	stamp := MapToStamp(cryptoFamily(), testTitles, raw, "https://example/img.png", "https://example/de")

	require.Equal(t, "PUBLISHED", stamp.Status)
	require.Equal(t, "KRYPTOMARKE", stamp.Type)
	require.Equal(t, "https://example/de", stamp.URL)
	require.Equal(t, testTitles, stamp.Title)
	require.Equal(t, testTitles, stamp.Summary)
	require.NotNil(t, stamp.Descriptions)
	require.Empty(t, stamp.Descriptions)
	require.Equal(t, "X-9", stamp.StampNo)
	require.Equal(t, models.I18nField{"de": "Erdmännchen", "en": "Meerkat"}, stamp.Keyword)
	require.Equal(t, "https://example/img.png", stamp.Image.URL)
	require.Equal(t, "2022", stamp.Detail.Year)
	require.Equal(t, "123", stamp.Detail.MichelNumber)
}

func TestMapToStampUnrecognizedLabel(t *testing.T) {
	raw := table([2]string{"Sonstiges", "foo"})

	stamp := MapToStamp(cryptoFamily(), testTitles, raw, "", "")

	require.Equal(t, models.StampDetail{}, stamp.Detail)
	require.Equal(t, "", stamp.StampNo)
}

func TestMapToStampEmptyTable(t *testing.T) {
	stamp := MapToStamp(cryptoFamily(), testTitles, table(), "", "")

	require.Equal(t, models.StampDetail{}, stamp.Detail)
	require.Equal(t, "", stamp.StampNo)
}

func TestMapToStampMissingStampNo(t *testing.T) {
	raw := table([2]string{"Jahr", "2022"})

	stamp := MapToStamp(cryptoFamily(), testTitles, raw, "", "")

	require.Equal(t, "", stamp.StampNo)
}

func TestMapToStampLastWriteWins(t *testing.T) {
	// "Auflage" and "Issue" are synonyms for the same field; the label
	// iterating last in table order decides.
	raw := table(
		[2]string{"Auflage", "1000"},
		[2]string{"Issue", "2000"},
	)
	stamp := MapToStamp(cryptoFamily(), testTitles, raw, "", "")
	require.Equal(t, "2000", stamp.Detail.Issue)

	raw = table(
		[2]string{"Issue", "2000"},
		[2]string{"Auflage", "1000"},
	)
	stamp = MapToStamp(cryptoFamily(), testTitles, raw, "", "")
	require.Equal(t, "1000", stamp.Detail.Issue)
}

func TestMapToStampBilingualFields(t *testing.T) {
	raw := table(
		[2]string{"Motiv", "Erdmännchen"},
		[2]string{"Klebeart", "selbstklebend"},
	)

	stamp := MapToStamp(cryptoFamily(), testTitles, raw, "", "")

	require.Equal(t, models.I18nField{"de": "Erdmännchen"}, stamp.Detail.Motive)
	require.Equal(t, models.I18nField{"de": "selbstklebend"}, stamp.Detail.AdhesiveType)
}

func TestMapToStampTotalIssue(t *testing.T) {
	raw := table([2]string{"Auflage insgesamt", "25000"})

	stamp := MapToStamp(cryptoFamily(), testTitles, raw, "", "")

	require.NotNil(t, stamp.CryptoInfo)
	require.Equal(t, "25000", stamp.CryptoInfo.TotalIssue)
	require.Equal(t, models.StampDetail{}, stamp.Detail)
}

func TestMapToStampNoCryptoInfo(t *testing.T) {
	// A family without the crypto block ignores the total-issue label
	// even when its dictionary recognizes it.
	fam := cryptoFamily()
	fam.HasCryptoInfo = false

	raw := table([2]string{"Auflage insgesamt", "25000"})
	stamp := MapToStamp(fam, testTitles, raw, "", "")

	require.Nil(t, stamp.CryptoInfo)
	require.Equal(t, models.StampDetail{}, stamp.Detail)
}

func TestMapToStampIdempotent(t *testing.T) {
	raw := table(
		[2]string{"Jahr", "2022"},
		[2]string{"Motiv", "Erdmännchen"},
		[2]string{"Artikelnummer", "X-9"},
	)

	first := MapToStamp(cryptoFamily(), testTitles, raw, "img", "url")
	second := MapToStamp(cryptoFamily(), testTitles, raw, "img", "url")

	require.Equal(t, first, second)
}
