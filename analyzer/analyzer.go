// Package analyzer recognizes legal entities in Arabic document text using
// ordered rule tables: document type, parties, dates, amounts, locations,
// legal references and key terms. Analysis is a pure function of the input
// text, so the same text always yields the same structured result.
package analyzer

import (
	"strings"
	"unicode/utf8"

	"mizan-backend/models"
)

// Analyze runs the full rule battery over text and returns the structured
// extraction result. Empty or whitespace-only input short-circuits to an
// empty-document result with zero confidence.
func Analyze(text string) *models.ExtractedDocument {
	if strings.TrimSpace(text) == "" {
		return &models.ExtractedDocument{
			DocumentType:    DocTypeEmpty,
			Dates:           []string{},
			Amounts:         []string{},
			Locations:       []string{},
			LegalReferences: []string{},
			KeyTerms:        []string{},
		}
	}

	doc := &models.ExtractedDocument{
		ExtractedText:   text,
		DocumentType:    detectDocumentType(text),
		Parties:         extractParties(text),
		Dates:           extractDates(text),
		Amounts:         extractAmounts(text),
		Locations:       extractLocations(text),
		LegalReferences: extractLegalReferences(text),
		KeyTerms:        extractKeyTerms(text),
	}
	doc.Confidence = Confidence(doc)

	return doc
}

func detectDocumentType(text string) string {
	for _, rule := range documentTypeRules {
		if rule.pattern.MatchString(text) {
			return rule.label
		}
	}
	return DocTypeGeneral
}

func extractParties(text string) models.Parties {
	return models.Parties{
		Plaintiff: firstPartyMatch(text, plaintiffRules),
		Defendant: firstPartyMatch(text, defendantRules),
		Witnesses: allPartyMatches(text, witnessRules),
	}
}

// firstPartyMatch walks the rules in order; the first rule that produces any
// accepted capture wins and only its first capture is kept.
func firstPartyMatch(text string, rules []partyRule) string {
	for _, rule := range rules {
		for _, name := range partyCaptures(text, rule) {
			return name
		}
	}
	return ""
}

// allPartyMatches collects every accepted capture across all rules into a
// deduplicated, first-seen-ordered list.
func allPartyMatches(text string, rules []partyRule) []string {
	var names []string
	for _, rule := range rules {
		for _, name := range partyCaptures(text, rule) {
			names = appendUnique(names, name)
		}
	}
	return names
}

// partyCaptures applies one rule and returns its accepted captures. The
// greedy same-line capture is cut at the rule's first boundary token; a
// capture is accepted when it was cut, or when the match ends at a line
// break or end of text, so a name is only taken when its line ends
// cleanly after it.
func partyCaptures(text string, rule partyRule) []string {
	var captures []string
	for _, m := range rule.pattern.FindAllStringSubmatchIndex(text, -1) {
		if len(m) < 4 || m[2] < 0 {
			continue
		}
		raw := text[m[2]:m[3]]
		cut := raw
		wasCut := false
		for _, boundary := range rule.boundaries {
			if idx := strings.Index(cut, boundary); idx >= 0 {
				cut = cut[:idx]
				wasCut = true
			}
		}
		if !wasCut && m[3] < len(text) && text[m[3]] != '\n' {
			continue
		}
		name := strings.TrimSpace(cut)
		if name != "" {
			captures = append(captures, name)
		}
	}
	return captures
}

func extractDates(text string) []string {
	dates := []string{}
	for _, rule := range dateRules {
		for _, m := range rule.FindAllStringSubmatch(text, -1) {
			raw := m[0]
			if len(m) > 1 && m[1] != "" {
				raw = m[1]
			}
			if clean := cleanDatePattern.FindString(raw); clean != "" {
				dates = appendUnique(dates, clean)
			}
		}
	}
	return dates
}

func extractAmounts(text string) []string {
	amounts := []string{}
	for _, rule := range amountRules {
		for _, m := range rule.FindAllString(text, -1) {
			amounts = appendUnique(amounts, m)
		}
	}
	return amounts
}

func extractLocations(text string) []string {
	locations := []string{}
	for _, city := range yemeniCities {
		if strings.Contains(text, city) {
			locations = appendUnique(locations, city)
		}
	}
	for _, rule := range areaRules {
		for _, m := range rule.FindAllStringSubmatch(text, -1) {
			loc := strings.TrimSpace(m[1])
			n := utf8.RuneCountInString(loc)
			if n > 2 && n < 50 {
				locations = appendUnique(locations, loc)
			}
		}
	}
	return locations
}

func extractLegalReferences(text string) []string {
	references := []string{}
	for _, rule := range legalReferenceRules {
		for _, m := range rule.FindAllString(text, -1) {
			references = appendUnique(references, m)
		}
	}
	return references
}

func extractKeyTerms(text string) []string {
	found := []string{}
	for _, term := range legalTerms {
		if strings.Contains(text, term) {
			found = appendUnique(found, term)
		}
	}
	return found
}

func appendUnique(list []string, v string) []string {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}
