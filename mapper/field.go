package mapper

// Field identifies one target slot on the assembled record. The mapper
// switches over this closed set, so adding a field here without handling
// it there is a compile-visible gap rather than a silent drop.
type Field int

const (
	FieldIssue Field = iota
	FieldEdition
	FieldIssueAmount
	FieldSheetFormat
	FieldPrinter
	FieldDesign
	FieldYear
	FieldFormat
	FieldMichelNumber
	FieldFaceValue
	FieldPerforation
	FieldArticleType
	FieldConservation
	FieldMotive
	FieldPrint
	FieldAdhesiveType
	FieldPaper
	// FieldStampNo is the top-level article number, not a detail field.
	FieldStampNo
	// FieldTotalIssue lives on the cryptoInfo block, not on the detail.
	FieldTotalIssue
)

// DetailLabels returns a fresh copy of the shared label dictionary: every
// recognized table header, in both shop languages, mapped to its target
// field. Families extend the copy with their own entries.
func DetailLabels() map[string]Field {
	return map[string]Field{
		"Issue":   FieldIssue,
		"Auflage": FieldIssue,

		"Issue 2": FieldEdition,
		"Ausgabe": FieldEdition,

		"Sheet format": FieldSheetFormat,
		"Blattformat":  FieldSheetFormat,

		"Printer":   FieldPrinter,
		"Druckerei": FieldPrinter,

		"Design":  FieldDesign,
		"Entwurf": FieldDesign,

		"Year": FieldYear,
		"Jahr": FieldYear,

		"Stamp format": FieldFormat,
		"Markenformat": FieldFormat,

		"Michel No.":    FieldMichelNumber,
		"Michel-Nummer": FieldMichelNumber,

		"Face value": FieldFaceValue,
		"Nominale":   FieldFaceValue,

		"Perforation": FieldPerforation,
		"Zähnung":     FieldPerforation,

		"Article type": FieldArticleType,
		"Artikeltyp":   FieldArticleType,

		// the English header really is misspelled on the shop pages
		"Convservation": FieldConservation,
		"Erhaltung":     FieldConservation,

		"Motive": FieldMotive,
		"Motiv":  FieldMotive,

		"Print": FieldPrint,
		"Druck": FieldPrint,

		"Adhesive type": FieldAdhesiveType,
		"Klebeart":      FieldAdhesiveType,

		"Paper":  FieldPaper,
		"Papier": FieldPaper,

		"Artikelnummer": FieldStampNo,
	}
}
