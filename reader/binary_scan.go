package reader

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Arabic Unicode blocks (base, supplement, extended-A, presentation forms)
// plus the digits, punctuation and whitespace that legal documents embed
// between Arabic words.
var arabicRunPattern = regexp.MustCompile(`[\x{0600}-\x{06FF}\x{0750}-\x{077F}\x{08A0}-\x{08FF}\x{FB50}-\x{FDFF}\x{FE70}-\x{FEFF}\s\d.,:\-/()]+`)

// Looser fallback that also admits Latin letters, for PDFs whose text layer
// carries no Arabic at all.
var looseRunPattern = regexp.MustCompile(`[a-zA-Z\x{0600}-\x{06FF}\s\d.,:\-/()]+`)

var whitespaceRun = regexp.MustCompile(`\s+`)

// scanRuns collects the maximal runs of pattern in raw whose trimmed length
// exceeds minLen runes, joined by single spaces with whitespace collapsed.
func scanRuns(raw string, pattern *regexp.Regexp, minLen int) string {
	var kept []string
	for _, run := range pattern.FindAllString(raw, -1) {
		if utf8.RuneCountInString(strings.TrimSpace(run)) > minLen {
			kept = append(kept, run)
		}
	}
	if len(kept) == 0 {
		return ""
	}
	joined := whitespaceRun.ReplaceAllString(strings.Join(kept, " "), " ")
	return strings.TrimSpace(joined)
}

// PDFReader scans the raw bytes of a PDF for readable text runs. It is a
// best-effort stand-in for a real PDF text layer parser: the bytes are
// decoded permissively and mined for Arabic runs, falling back to a looser
// Latin+Arabic scan when nothing survives.
type PDFReader struct{}

// ExtractText implements DocumentReader.
func (r *PDFReader) ExtractText(data []byte) (text string) {
	defer func() {
		if rec := recover(); rec != nil {
			text = SentinelPDFError
		}
	}()

	raw := string(data)

	if extracted := scanRuns(raw, arabicRunPattern, 3); extracted != "" {
		return extracted
	}
	if extracted := scanRuns(raw, looseRunPattern, 2); extracted != "" {
		return extracted
	}
	return SentinelPDFNoText
}

// WordReader scans the raw bytes of a .doc/.docx for Arabic text runs.
// Unlike the PDF reader it has no Latin fallback.
type WordReader struct{}

// ExtractText implements DocumentReader.
func (r *WordReader) ExtractText(data []byte) (text string) {
	defer func() {
		if rec := recover(); rec != nil {
			text = SentinelWordError
		}
	}()

	if extracted := scanRuns(string(data), arabicRunPattern, 3); extracted != "" {
		return extracted
	}
	return SentinelWordNoText
}
