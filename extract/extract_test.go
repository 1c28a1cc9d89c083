package extract

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func doc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	d, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return d
}

func TestTitle(t *testing.T) {
	d := doc(t, `<html><body><h1 class="product-name">  Kryptobriefmarke Nr. 2  </h1></body></html>`)
	require.Equal(t, "Kryptobriefmarke Nr. 2", Title(d))
}

func TestTitleMissing(t *testing.T) {
	d := doc(t, `<html><body><h1>other heading</h1></body></html>`)
	require.Equal(t, "", Title(d))
}

func TestImageURL(t *testing.T) {
	base := "https://www.philatelie.li/"

	t.Run("absolute", func(t *testing.T) {
		d := doc(t, `<div class="product-image"><img src="https://cdn.example/img.png"></div>`)
		require.Equal(t, "https://cdn.example/img.png", ImageURL(d, base))
	})

	t.Run("relative", func(t *testing.T) {
		d := doc(t, `<div class="product-image"><img src="pi/images/meerkat.png"></div>`)
		require.Equal(t, "https://www.philatelie.li/pi/images/meerkat.png", ImageURL(d, base))
	})

	t.Run("missing", func(t *testing.T) {
		d := doc(t, `<div class="product-image"></div>`)
		require.Equal(t, "", ImageURL(d, base))
	})
}

func TestAttributes(t *testing.T) {
	d := doc(t, `
		<div class="product-properties"><table>
			<tr><th>Jahr</th><td>2022</td></tr>
			<tr><th></th><td>no label</td></tr>
			<tr><th>no value</th><td>  </td></tr>
			<tr><th>Michel-Nummer</th><td> 123 </td></tr>
		</table></div>`)

	table := Attributes(d)
	require.Equal(t, 2, table.Len())
	require.Equal(t, []string{"Jahr", "Michel-Nummer"}, table.Labels())

	year, ok := table.Get("Jahr")
	require.True(t, ok)
	require.Equal(t, "2022", year)

	michel, ok := table.Get("Michel-Nummer")
	require.True(t, ok)
	require.Equal(t, "123", michel)
}

func TestAttributesEmpty(t *testing.T) {
	table := Attributes(doc(t, `<html><body></body></html>`))
	require.Equal(t, 0, table.Len())
}

func TestAttributesDuplicateLabel(t *testing.T) {
	d := doc(t, `
		<div class="product-properties"><table>
			<tr><th>Jahr</th><td>2021</td></tr>
			<tr><th>Motiv</th><td>Erdmännchen</td></tr>
			<tr><th>Jahr</th><td>2022</td></tr>
		</table></div>`)

	table := Attributes(d)
	require.Equal(t, []string{"Jahr", "Motiv"}, table.Labels())

	year, _ := table.Get("Jahr")
	require.Equal(t, "2022", year)
}
