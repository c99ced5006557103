package models

// Parties holds the party names recognized in a document.
type Parties struct {
	Plaintiff string   `json:"plaintiff,omitempty"`
	Defendant string   `json:"defendant,omitempty"`
	Witnesses []string `json:"witnesses,omitempty"`
}

// ExtractedDocument is the structured result of analyzing one document's text.
// List fields never contain duplicate entries and preserve first-seen order.
type ExtractedDocument struct {
	ExtractedText   string   `json:"extracted_text"`
	DocumentType    string   `json:"document_type"`
	Parties         Parties  `json:"parties"`
	Dates           []string `json:"dates"`
	Amounts         []string `json:"amounts"`
	Locations       []string `json:"locations"`
	LegalReferences []string `json:"legal_references"`
	KeyTerms        []string `json:"key_terms"`
	Confidence      int      `json:"confidence"`
}
