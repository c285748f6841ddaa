// Package extraction provides text extraction from uploaded resume documents.
// The scoring core treats the extractor as an external collaborator with a
// tolerant contract: unreadable input yields an empty string, never a
// failure that reaches the caller.
package extraction

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Text extracts plain text from a PDF document.
func Text(data []byte) (text string, err error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty document")
	}

	// The pdf library panics on some malformed documents; keep that
	// contained to this package.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read PDF: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(pageText)
	}

	return sb.String(), nil
}

// TextOrEmpty extracts plain text from a PDF document, returning an empty
// string for any corrupt or unreadable input. This is the contract the
// scoring pipeline relies on: upstream extraction problems surface as empty
// documents, not errors.
func TextOrEmpty(data []byte) string {
	text, err := Text(data)
	if err != nil {
		return ""
	}
	return text
}
