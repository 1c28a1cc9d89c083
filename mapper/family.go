package mapper

import "stampscraper/models"

// Family describes one catalog family: the record constants plus the label
// dictionary used to translate raw table headers into fields. The whole
// pipeline is shared; families differ only in this descriptor.
type Family struct {
	Status  string
	Type    string
	Keyword models.I18nField
	// Labels maps every recognized table header (German and English
	// synonyms included) to its target field. Headers absent from the
	// map are ignored.
	Labels map[string]Field
	// HasCryptoInfo enables the cryptoInfo block on the output record.
	HasCryptoInfo bool
	// WriteFile selects <stampNo>.json file output over stdout.
	WriteFile bool
}
