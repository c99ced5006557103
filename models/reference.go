package models

// ConstitutionArticle is one article of the Yemeni constitution.
type ConstitutionArticle struct {
	Number        int      `json:"number"`
	Title         string   `json:"title"`
	Text          string   `json:"text"`
	Chapter       string   `json:"chapter"`
	RelevantCases []string `json:"relevant_cases"`
}

// LegalArticle is one article of a codified Yemeni law.
type LegalArticle struct {
	ID       string   `json:"id"`
	Law      string   `json:"law"`
	Article  string   `json:"article"`
	Text     string   `json:"text"`
	Category string   `json:"category"`
	Keywords []string `json:"keywords"`
}

// LegalPrecedent is a published ruling from a Yemeni court.
type LegalPrecedent struct {
	ID         string   `json:"id"`
	CaseNumber string   `json:"case_number"`
	Year       string   `json:"year"`
	Court      string   `json:"court"`
	Summary    string   `json:"summary"`
	Ruling     string   `json:"ruling"`
	Keywords   []string `json:"keywords"`
	Category   string   `json:"category"`
}
