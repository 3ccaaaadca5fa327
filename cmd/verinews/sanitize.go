// cmd/verinews/sanitize.go
package main

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// stripHTML flattens HTML markup in provider descriptions (Guardian
// bodyText and NewsData snippets arrive with tags) into plain text with
// collapsed whitespace. Input without markup passes through unchanged.
func stripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.TrimSpace(s)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}

	return strings.Join(strings.Fields(doc.Text()), " ")
}
