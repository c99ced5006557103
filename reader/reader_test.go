package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPlainTextVerbatim(t *testing.T) {
	e := NewExtractor()
	text := "المدعي: أحمد علي\nبتاريخ 12/05/2021"
	assert.Equal(t, text, e.Extract([]byte(text), "text/plain"))
}

func TestExtractUnsupportedType(t *testing.T) {
	e := NewExtractor()
	assert.Equal(t, SentinelUnsupportedType, e.Extract([]byte("data"), "application/zip"))
}

func TestExtractImageReturnsOCRPlaceholder(t *testing.T) {
	e := NewExtractor()
	assert.Equal(t, SentinelOCRRequired, e.Extract([]byte{0x89, 0x50, 0x4E, 0x47}, "image/png"))
}

func TestExtractDispatchesWordMimeTypes(t *testing.T) {
	e := NewExtractor()
	for _, mimeType := range []string{
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	} {
		assert.Equal(t, SentinelWordNoText, e.Extract([]byte{0x00, 0x01}, mimeType))
	}
}

func TestExtractUsesCustomReader(t *testing.T) {
	e := NewExtractor(WithPDFReader(fixedReader("نص ثابت")))
	assert.Equal(t, "نص ثابت", e.Extract(nil, "application/pdf"))
}

type fixedReader string

func (r fixedReader) ExtractText([]byte) string { return string(r) }

func TestPDFReaderMinesArabicRuns(t *testing.T) {
	var r PDFReader
	data := append([]byte{0x25, 0x50, 0x44, 0x46, 0x00, 0xFF}, []byte("العقد شريعة المتعاقدين")...)
	data = append(data, 0x00, 0xFE)

	text := r.ExtractText(data)
	assert.Contains(t, text, "العقد شريعة المتعاقدين")
}

func TestPDFReaderLatinFallback(t *testing.T) {
	var r PDFReader
	assert.Equal(t, "Contract Agreement", r.ExtractText([]byte("Contract Agreement")))
}

func TestPDFReaderNoReadableText(t *testing.T) {
	var r PDFReader
	assert.Equal(t, SentinelPDFNoText, r.ExtractText([]byte{0x00, 0x01, 0xFF, 0xFE}))
}

func TestWordReaderMinesArabicRuns(t *testing.T) {
	var r WordReader
	data := append([]byte{0xD0, 0xCF, 0x11, 0xE0}, []byte("عقد إيجار بين المؤجر والمستأجر")...)

	text := r.ExtractText(data)
	assert.Contains(t, text, "عقد إيجار بين المؤجر والمستأجر")
}

func TestWordReaderHasNoLatinFallback(t *testing.T) {
	var r WordReader
	assert.Equal(t, SentinelWordNoText, r.ExtractText([]byte("plain latin text only")))
}

func TestStubOCRAlwaysReturnsPlaceholder(t *testing.T) {
	var r StubOCR
	assert.Equal(t, SentinelOCRRequired, r.ExtractText([]byte("anything")))
}
