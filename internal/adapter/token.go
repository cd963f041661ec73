package adapter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const verificationTokenField = "__RequestVerificationToken"

var verificationTokenSelector = fmt.Sprintf(`input[name=%q]`, verificationTokenField)

// extractVerificationToken returns the value of the first verification token
// input in the landing page markup.
func extractVerificationToken(body []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("parse landing markup: %w", err)
	}

	value, ok := doc.Find(verificationTokenSelector).First().Attr("value")
	if !ok || strings.TrimSpace(value) == "" {
		return "", ErrTokenFieldMissing
	}

	return value, nil
}
