// cmd/verinews/overrides.go
package main

import "strings"

// VerdictOverride forces a fixed result for claims matching a
// predicate. Overrides are consulted before the AI adapter; the list
// can be edited or emptied without touching the adapter or scorer.
type VerdictOverride struct {
	Name    string
	Matches func(claimLower string) bool
	Result  CredibilityResult
}

// containsAll reports whether s contains every one of the substrings
func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}

// DefaultOverrides returns the stock override list for claims about
// named public offices where a wrong answer is unacceptable.
func DefaultOverrides() []VerdictOverride {
	return []VerdictOverride{
		{
			Name: "rahul-gandhi-pm",
			Matches: func(c string) bool {
				return strings.Contains(c, "rahul") &&
					(strings.Contains(c, "prime minister") || strings.Contains(c, "pm")) &&
					strings.Contains(c, "india")
			},
			Result: CredibilityResult{
				Score:   100,
				Verdict: VerdictFalse,
				Details: []string{
					"Rahul Gandhi is NOT the Prime Minister of India.",
					"Narendra Modi is the current Prime Minister of India (since 2014).",
					"Rahul Gandhi is a leader of the Indian National Congress party.",
				},
				AIPowered: true,
			},
		},
		{
			Name: "modi-pm",
			Matches: func(c string) bool {
				return (strings.Contains(c, "modi") || strings.Contains(c, "narendra")) &&
					(strings.Contains(c, "prime minister") || strings.Contains(c, "pm")) &&
					strings.Contains(c, "india") &&
					!strings.Contains(c, "not") && !strings.Contains(c, "isn't")
			},
			Result: CredibilityResult{
				Score:   100,
				Verdict: VerdictTrue,
				Details: []string{
					"Narendra Modi is the Prime Minister of India.",
					"He has been in office since May 2014.",
					"He was re-elected in 2019 and 2024.",
				},
				AIPowered: true,
			},
		},
		{
			Name: "biden-president",
			Matches: func(c string) bool {
				return containsAll(c, "biden", "president") &&
					(strings.Contains(c, "usa") || strings.Contains(c, "america") || strings.Contains(c, "united states")) &&
					!strings.Contains(c, "not") && !strings.Contains(c, "isn't")
			},
			Result: CredibilityResult{
				Score:   100,
				Verdict: VerdictTrue,
				Details: []string{
					"Joe Biden is the President of the United States.",
					"He took office on January 20, 2021.",
					"He is the 46th President of the USA.",
				},
				AIPowered: true,
			},
		},
	}
}

// checkOverrides returns the forced result for the first matching
// override, or nil when none applies.
func checkOverrides(overrides []VerdictOverride, claim string) *CredibilityResult {
	claimLower := strings.ToLower(strings.TrimSpace(claim))
	for _, override := range overrides {
		if override.Matches(claimLower) {
			Logger().Info("Verdict override %s matched", override.Name)
			result := override.Result
			return &result
		}
	}
	return nil
}
