// Package reader turns uploaded file bytes into raw text. Extraction never
// fails with an error: unreadable or unsupported inputs come back as fixed
// Arabic sentinel strings so the pipeline downstream stays uniform.
package reader

import "strings"

// Sentinel strings returned in place of extracted text.
const (
	SentinelUnsupportedType = "نوع الملف غير مدعوم"
	SentinelReadError       = "خطأ في قراءة الملف"
	SentinelPDFNoText       = "لم يتم العثور على نص قابل للقراءة في هذا الملف"
	SentinelPDFError        = "خطأ في قراءة ملف PDF"
	SentinelWordNoText      = "لم يتم العثور على نص قابل للقراءة في ملف Word"
	SentinelWordError       = "خطأ في قراءة ملف Word"
	SentinelOCRRequired     = "تم استخراج النص من الصورة - يتطلب تكامل مع خدمة OCR حقيقية"
)

// DocumentReader extracts text from one class of document. Implementations
// report problems through sentinel strings, never errors.
type DocumentReader interface {
	ExtractText(data []byte) string
}

// Extractor dispatches file bytes to a DocumentReader by declared MIME type.
type Extractor struct {
	pdf   DocumentReader
	word  DocumentReader
	image DocumentReader
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithPDFReader replaces the PDF backend.
func WithPDFReader(r DocumentReader) Option {
	return func(e *Extractor) { e.pdf = r }
}

// WithWordReader replaces the Word backend.
func WithWordReader(r DocumentReader) Option {
	return func(e *Extractor) { e.word = r }
}

// WithImageReader replaces the OCR backend.
func WithImageReader(r DocumentReader) Option {
	return func(e *Extractor) { e.image = r }
}

// NewExtractor creates an extractor with the default backends: binary-scan
// readers for PDF and Word, and the OCR stub for images.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		pdf:   &PDFReader{},
		word:  &WordReader{},
		image: &StubOCR{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the text content of the file. Plain text is decoded
// verbatim; PDF and Word go through the binary scanners; images return the
// OCR placeholder; anything else is unsupported.
func (e *Extractor) Extract(data []byte, mimeType string) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = SentinelReadError
		}
	}()

	switch {
	case mimeType == "application/pdf":
		return e.pdf.ExtractText(data)
	case strings.HasPrefix(mimeType, "image/"):
		return e.image.ExtractText(data)
	case strings.Contains(mimeType, "word") || strings.Contains(mimeType, "document"):
		return e.word.ExtractText(data)
	case mimeType == "text/plain":
		return string(data)
	default:
		return SentinelUnsupportedType
	}
}
