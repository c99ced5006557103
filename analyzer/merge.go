package analyzer

import (
	"strings"

	"mizan-backend/models"
)

// MergeDocuments combines per-document extraction results and the free-text
// case description into one aggregate record. Plaintiff and defendant take
// the first non-empty value in input order; list fields are set-unions in
// first-occurrence order; confidence is the average over the documents.
func MergeDocuments(docs []models.ExtractedDocument, description string) *models.ExtractedDocument {
	texts := make([]string, 0, len(docs))
	for _, doc := range docs {
		texts = append(texts, doc.ExtractedText)
	}

	merged := &models.ExtractedDocument{
		ExtractedText:   strings.Join(texts, "\n\n") + "\n\n" + description,
		DocumentType:    DocTypeCollection,
		Parties:         models.Parties{Witnesses: []string{}},
		Dates:           []string{},
		Amounts:         []string{},
		Locations:       []string{},
		LegalReferences: []string{},
		KeyTerms:        []string{},
	}

	total := 0
	for _, doc := range docs {
		if merged.Parties.Plaintiff == "" && doc.Parties.Plaintiff != "" {
			merged.Parties.Plaintiff = doc.Parties.Plaintiff
		}
		if merged.Parties.Defendant == "" && doc.Parties.Defendant != "" {
			merged.Parties.Defendant = doc.Parties.Defendant
		}
		for _, w := range doc.Parties.Witnesses {
			merged.Parties.Witnesses = appendUnique(merged.Parties.Witnesses, w)
		}
		for _, v := range doc.Dates {
			merged.Dates = appendUnique(merged.Dates, v)
		}
		for _, v := range doc.Amounts {
			merged.Amounts = appendUnique(merged.Amounts, v)
		}
		for _, v := range doc.Locations {
			merged.Locations = appendUnique(merged.Locations, v)
		}
		for _, v := range doc.LegalReferences {
			merged.LegalReferences = appendUnique(merged.LegalReferences, v)
		}
		for _, v := range doc.KeyTerms {
			merged.KeyTerms = appendUnique(merged.KeyTerms, v)
		}
		total += doc.Confidence
	}

	if len(docs) > 0 {
		merged.Confidence = total / len(docs)
	}

	return merged
}
