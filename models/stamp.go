package models

// I18nField holds one value per language code ("de", "en"). Not every
// language has to be present at the same time.
type I18nField map[string]string

// Image wraps the primary product image URL
type Image struct {
	URL string `json:"url"`
}

// StampDetail holds the normalized attributes of one listing. Whether a
// field is a plain string or an I18nField is fixed here, not decided from
// the data.
type StampDetail struct {
	Issue        string    `json:"issue,omitempty"`
	Edition      string    `json:"edition,omitempty"`
	IssueAmount  string    `json:"issueAmount,omitempty"`
	SheetFormat  string    `json:"sheetFormat,omitempty"`
	Printer      string    `json:"printer,omitempty"`
	Design       string    `json:"design,omitempty"`
	Year         string    `json:"year,omitempty"`
	Format       string    `json:"format,omitempty"`
	MichelNumber string    `json:"michelNumber,omitempty"`
	FaceValue    string    `json:"faceValue,omitempty"`
	Perforation  string    `json:"perforation,omitempty"`
	ArticleType  I18nField `json:"articleType,omitempty"`
	Conservation I18nField `json:"conservation,omitempty"`
	Motive       I18nField `json:"motive,omitempty"`
	Print        I18nField `json:"print,omitempty"`
	AdhesiveType I18nField `json:"adhesiveType,omitempty"`
	Paper        I18nField `json:"paper,omitempty"`
}

// CryptoInfo is the extra block crypto-stamp listings carry on top of the
// regular detail table.
type CryptoInfo struct {
	TotalIssue string `json:"totalIssue,omitempty"`
}

// Stamp is the final record written out as JSON. Field order here is the
// key order in the output document.
type Stamp struct {
	Status       string      `json:"status"`
	Type         string      `json:"type"`
	URL          string      `json:"url"`
	Title        I18nField   `json:"title"`
	Summary      I18nField   `json:"summary"`
	Descriptions []I18nField `json:"descriptions"`
	StampNo      string      `json:"stampNo"`
	Keyword      I18nField   `json:"keyword"`
	Image        Image       `json:"image"`
	Detail       StampDetail `json:"detail"`
	CryptoInfo   *CryptoInfo `json:"cryptoInfo,omitempty"`
}
