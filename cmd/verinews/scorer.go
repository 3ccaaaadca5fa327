// cmd/verinews/scorer.go
package main

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Outlets whose presence among article sources raises credibility.
// Matching is case-insensitive substring against the source name.
var reliableOutlets = []string{
	"BBC", "Reuters", "Associated Press", "AP News", "CNN", "The Guardian",
	"NPR", "The New York Times", "Washington Post", "Bloomberg",
}

// Claim-language red flags
var (
	sensationalWords = []string{
		"shocking", "unbelievable", "miracle cure", "secret",
		"they don't want you to know", "breaking", "urgent", "incredible",
		"amazing discovery",
	}
	misinfoIndicators = []string{
		"fake", "hoax", "conspiracy", "cover-up", "lizard people",
		"flat earth", "chemtrails",
	}
)

var repeatedPunctuation = regexp.MustCompile(`[!?]{2,}`)

// scoreClaim combines claim-language red flags, article-context
// analysis, source count, source reliability and recency into a bounded
// credibility score. A factual short-circuit (checkFactualClaims)
// bypasses the whole table. Deterministic: identical inputs and clock
// always produce the identical result.
func scoreClaim(claim string, articles []Article, now time.Time) CredibilityResult {
	textLower := strings.ToLower(claim)

	if check := checkFactualClaims(textLower, now); check.IsFactual {
		return factualResult(check)
	}

	score := 50 // neutral prior
	var details []string
	var warnings []string

	// Sensational and misinformation language in the claim itself
	sensationalCount := 0
	for _, word := range sensationalWords {
		if strings.Contains(textLower, word) {
			sensationalCount++
		}
	}
	misinfoCount := 0
	for _, indicator := range misinfoIndicators {
		if strings.Contains(textLower, indicator) {
			misinfoCount++
		}
	}

	if sensationalCount >= 2 {
		score -= 20
		warnings = append(warnings, "Contains sensational language")
	} else if sensationalCount == 1 {
		score -= 10
		warnings = append(warnings, "Contains potentially sensational language")
	}

	if misinfoCount >= 1 {
		score -= 30
		warnings = append(warnings, "Contains common misinformation indicators")
	}

	// Do the articles support or refute the claim
	keywords := extractKeywords(textLower)
	tally := analyzeArticleContext(articles, keywords)

	if len(articles) > 0 {
		if tally.Refuting > tally.Supporting {
			score -= 30
			warnings = append(warnings, fmt.Sprintf("Found %d articles that contradict this claim", tally.Refuting))
		} else if tally.Supporting == 0 && tally.Neutral > 0 {
			score -= 10
			warnings = append(warnings, "No articles found that support this specific claim")
		}
	}

	// Source count
	switch {
	case len(articles) == 0:
		score -= 30
		details = append(details, "No sources found - highly suspicious")
	case len(articles) <= 2:
		score -= 15
		details = append(details, "Very limited sources - questionable credibility")
	case len(articles) < 5:
		score += 5
		details = append(details, "Few sources found - verify carefully")
	default:
		score += 15
		details = append(details, "Multiple sources found")
	}

	// Source reliability
	reliableCount := 0
	for _, article := range articles {
		sourceLower := strings.ToLower(article.Source)
		for _, outlet := range reliableOutlets {
			if strings.Contains(sourceLower, strings.ToLower(outlet)) {
				reliableCount++
				break
			}
		}
	}

	if reliableCount == 0 && len(articles) > 0 {
		score -= 20
		warnings = append(warnings, "No reliable mainstream sources found")
	} else if reliableCount >= 3 {
		score += 25
		details = append(details, "Multiple reliable sources confirm this")
	} else if reliableCount >= 1 {
		score += 10
		details = append(details, "Some reliable sources available")
	}

	// Recency within the last 7 days
	recentCount := 0
	for _, article := range articles {
		if article.PublishedAt.IsZero() {
			continue
		}
		if now.Sub(article.PublishedAt) <= 7*24*time.Hour {
			recentCount++
		}
	}

	if recentCount >= 3 {
		score += 10
		details = append(details, "Recent coverage available")
	} else if recentCount == 0 && len(articles) > 0 {
		score -= 10
		warnings = append(warnings, "No recent coverage found")
	}

	// Typographic red flags: shouty words and stacked punctuation
	hasAllCaps := false
	for _, word := range strings.Fields(claim) {
		if len(word) > 3 && word == strings.ToUpper(word) && word != strings.ToLower(word) {
			hasAllCaps = true
			break
		}
	}
	if hasAllCaps {
		score -= 10
		warnings = append(warnings, "Uses ALL CAPS (common in misinformation)")
	}
	if repeatedPunctuation.MatchString(claim) {
		score -= 10
		warnings = append(warnings, "Excessive punctuation (questionable source)")
	}

	score = clampScore(score)

	verdict := VerdictFalse
	if score >= 50 {
		verdict = VerdictTrue
	}

	// Warnings come before positive details in the evidence list
	return CredibilityResult{
		Score:   score,
		Verdict: verdict,
		Details: append(warnings, details...),
	}
}
