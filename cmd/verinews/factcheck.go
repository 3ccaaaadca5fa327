// cmd/verinews/factcheck.go
package main

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

var dayNames = []string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

var monthNames = []string{
	"january", "february", "march", "april", "may", "june", "july",
	"august", "september", "october", "november", "december",
}

var yearClaimPattern = regexp.MustCompile(`(?:year is|it is|it's|current year is)\s*(\d{4})`)

// monthClaimPatterns are compiled once per month name
var monthClaimPatterns = func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(monthNames))
	for i, month := range monthNames {
		patterns[i] = regexp.MustCompile(`(?:current month is|it is|it's|month is)\s*` + month)
	}
	return patterns
}()

// knownClaim pairs a pattern with the explanation returned on a match
type knownClaim struct {
	pattern *regexp.Regexp
	message string
}

// Claims considered objectively decidable without external
// corroboration. A match short-circuits the numeric scorer.
var knownFalseClaims = []knownClaim{
	{regexp.MustCompile(`earth is flat`), "The Earth is not flat - it is an oblate spheroid (confirmed by science)"},
	{regexp.MustCompile(`sun revolves around earth`), "The Earth revolves around the Sun, not vice versa"},
	{regexp.MustCompile(`water is not wet`), "Water is wet by scientific definition"},
	{regexp.MustCompile(`humans can breathe underwater`), "Humans cannot breathe underwater without equipment"},
	{regexp.MustCompile(`moon is made of cheese`), "The Moon is made of rock, not cheese"},
	{regexp.MustCompile(`2\+2\s*=\s*5`), "2+2 equals 4, not 5"},
	{regexp.MustCompile(`sky is green`), "The sky is blue, not green (except in rare atmospheric conditions)"},
	{regexp.MustCompile(`5g causes cancer`), "5G does not cause cancer - no scientific evidence supports this claim"},
	{regexp.MustCompile(`vaccines cause autism`), "Vaccines do not cause autism - this has been thoroughly debunked by science"},
	{regexp.MustCompile(`covid[\s-]?19 is a hoax`), "COVID-19 is a real virus confirmed by global health organizations"},
	{regexp.MustCompile(`climate change (?:is|isn't) (?:not )?real`), "Climate change is real and confirmed by 97% of climate scientists"},
	{regexp.MustCompile(`dinosaurs never existed`), "Dinosaurs existed - fossil evidence is overwhelming"},
	{regexp.MustCompile(`gravity (?:is|isn't) (?:not )?real`), "Gravity is a fundamental force of nature, scientifically proven"},
	{regexp.MustCompile(`evolution is (?:just )?a theory`), "Evolution is a scientific theory supported by overwhelming evidence"},
}

var knownTrueClaims = []knownClaim{
	{regexp.MustCompile(`earth is round|earth is sphere`), "The Earth is indeed round (an oblate spheroid)"},
	{regexp.MustCompile(`earth revolves around (?:the )?sun`), "The Earth does revolve around the Sun"},
	{regexp.MustCompile(`water is wet`), "Water is indeed wet by definition"},
	{regexp.MustCompile(`humans need oxygen`), "Humans do need oxygen to survive"},
	{regexp.MustCompile(`2\+2\s*=\s*4`), "2+2 does equal 4"},
}

// checkFactualClaims matches the lowercased claim against deterministic
// date-aware and knowledge-based assertions. Checks run in order and
// the first match wins. The clock is a parameter so day/year/month
// verdicts are testable.
func checkFactualClaims(textLower string, now time.Time) FactCheckResult {
	currentDay := strings.ToLower(now.Weekday().String())
	currentMonth := strings.ToLower(now.Month().String())
	currentYear := now.Year()

	// Day-of-week assertions
	for _, day := range dayNames {
		if strings.Contains(textLower, "today is "+day) ||
			strings.Contains(textLower, "it is "+day) ||
			strings.Contains(textLower, "it's "+day) {
			if day == currentDay {
				return FactCheckResult{
					IsFactual: true,
					IsTrue:    true,
					Message:   fmt.Sprintf("Today is indeed %s", titleCaser.String(currentDay)),
				}
			}
			return FactCheckResult{
				IsFactual: true,
				IsTrue:    false,
				Message:   fmt.Sprintf("Today is %s, not %s", titleCaser.String(currentDay), titleCaser.String(day)),
			}
		}
	}

	// Year assertions
	if m := yearClaimPattern.FindStringSubmatch(textLower); m != nil {
		claimedYear, _ := strconv.Atoi(m[1])
		if claimedYear == currentYear {
			return FactCheckResult{
				IsFactual: true,
				IsTrue:    true,
				Message:   fmt.Sprintf("The current year is indeed %d", currentYear),
			}
		}
		return FactCheckResult{
			IsFactual: true,
			IsTrue:    false,
			Message:   fmt.Sprintf("The current year is %d, not %d", currentYear, claimedYear),
		}
	}

	// Month assertions
	for i, pattern := range monthClaimPatterns {
		if pattern.MatchString(textLower) {
			if monthNames[i] == currentMonth {
				return FactCheckResult{
					IsFactual: true,
					IsTrue:    true,
					Message:   fmt.Sprintf("The current month is indeed %s", titleCaser.String(currentMonth)),
				}
			}
			return FactCheckResult{
				IsFactual: true,
				IsTrue:    false,
				Message:   fmt.Sprintf("The current month is %s, not %s", titleCaser.String(currentMonth), titleCaser.String(monthNames[i])),
			}
		}
	}

	// Known-false statements
	for _, claim := range knownFalseClaims {
		if claim.pattern.MatchString(textLower) {
			return FactCheckResult{IsFactual: true, IsTrue: false, Message: claim.message}
		}
	}

	// Known-true statements
	for _, claim := range knownTrueClaims {
		if claim.pattern.MatchString(textLower) {
			return FactCheckResult{IsFactual: true, IsTrue: true, Message: claim.message}
		}
	}

	return FactCheckResult{IsFactual: false}
}

// factualResult maps a factual short-circuit onto the result shape used
// by the rest of the pipeline.
func factualResult(check FactCheckResult) CredibilityResult {
	if check.IsTrue {
		return CredibilityResult{
			Score:   98,
			Verdict: VerdictTrue,
			Details: []string{
				check.Message,
				"This is a verified factual statement",
				"Confirmed by established scientific/factual evidence",
			},
		}
	}
	return CredibilityResult{
		Score:   2,
		Verdict: VerdictFalse,
		Details: []string{
			check.Message,
			"This claim contradicts established facts",
			"Evidence shows this is incorrect",
		},
	}
}
