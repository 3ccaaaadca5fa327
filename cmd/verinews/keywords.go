// cmd/verinews/keywords.go
package main

import "strings"

// stopWords are dropped during keyword extraction
var stopWords = map[string]bool{
	"the": true, "is": true, "are": true, "was": true, "were": true,
	"will": true, "be": true, "been": true, "has": true, "have": true,
	"had": true, "do": true, "does": true, "did": true, "a": true,
	"an": true, "and": true, "or": true, "but": true, "in": true,
	"on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true,
}

// Phrase lists for article-context classification. Matching is
// case-insensitive substring containment against title+description.
var (
	refutingPhrases = []string{
		"false", "fake", "debunk", "myth", "hoax", "untrue", "incorrect",
		"wrong", "misinformation", "disinformation", "not true", "denies",
		"refutes", "disputes",
	}
	supportingPhrases = []string{
		"confirms", "verified", "true", "accurate", "correct", "validates",
		"proves", "evidence shows", "study finds", "research shows",
	}
)

// extractKeywords lowercases the text, splits on whitespace and keeps
// tokens longer than 3 characters that are not stop words. Duplicates
// survive; the result is only used for containment checks.
func extractKeywords(text string) []string {
	words := strings.Fields(strings.ToLower(text))
	keywords := make([]string, 0, len(words))
	for _, word := range words {
		if len(word) > 3 && !stopWords[word] {
			keywords = append(keywords, word)
		}
	}
	return keywords
}

// analyzeArticleContext classifies each article as supporting, refuting
// or neutral relative to the claim. Refuting language wins outright;
// supporting language only counts when a claim keyword is also present;
// keyword presence alone is neutral; everything else is uncounted.
func analyzeArticleContext(articles []Article, keywords []string) ContextTally {
	var tally ContextTally

	for _, article := range articles {
		combined := strings.ToLower(article.Title) + " " + strings.ToLower(article.Description)

		hasRefuting := containsAny(combined, refutingPhrases)
		hasSupporting := containsAny(combined, supportingPhrases)
		hasKeyword := containsAny(combined, keywords)

		switch {
		case hasRefuting:
			tally.Refuting++
		case hasSupporting && hasKeyword:
			tally.Supporting++
		case hasKeyword:
			tally.Neutral++
		}
	}
	return tally
}

// containsAny reports whether s contains any of the given substrings
func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
