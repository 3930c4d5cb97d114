// Package converter reads metadata out of report documents.
package converter

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// MaxTitleBytes bounds how much of a report is read when looking for its title
const MaxTitleBytes = 1 << 20

// ExtractTitle returns the whitespace-collapsed text of the first <title>
// element, or "" when the document has none
func ExtractTitle(r io.Reader) (string, error) {
	content, err := io.ReadAll(io.LimitReader(r, MaxTitleBytes))
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}

	content, err = ToUTF8(content)
	if err != nil {
		return "", fmt.Errorf("decode document: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("parse document: %w", err)
	}

	title := doc.Find("title").First().Text()
	return strings.Join(strings.Fields(title), " "), nil
}
