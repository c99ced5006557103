package reader

// StubOCR is the placeholder image backend. No optical character
// recognition is performed; every image yields the same placeholder so a
// real OCR service can be substituted behind DocumentReader later.
type StubOCR struct{}

// ExtractText implements DocumentReader.
func (o *StubOCR) ExtractText(data []byte) string {
	return SentinelOCRRequired
}
