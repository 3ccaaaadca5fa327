// cmd/verinews/ai.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

const (
	groqBaseURL = "https://api.groq.com/openai/v1"
	groqModel   = "llama-3.3-70b-versatile"
)

// AIVerifier verifies claims through the Groq chat-completions API
// (OpenAI-compatible). It is optional: a missing key or any runtime
// failure degrades silently to the rule-based path.
type AIVerifier struct {
	client *openai.Client
}

// NewAIVerifier creates a verifier, or nil when no API key is set
func NewAIVerifier(apiKey string) *AIVerifier {
	if apiKey == "" || apiKey == "YOUR_GROQ_API_KEY" {
		return nil
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = groqBaseURL
	return &AIVerifier{client: openai.NewClientWithConfig(config)}
}

const aiSystemPrompt = "You are an AI fact-checking system. Always verify claims against " +
	"provided news sources and known facts. Never assume truth without evidence. If articles " +
	"don't support a claim, mark it FALSE. Respond only in valid JSON format with verdict, " +
	"confidence, reasoning, and sources."

// VerifyClaim asks the model for a verdict over the claim and article
// context. Returns nil on any failure so callers fall back to the
// rule-based scorer.
func (v *AIVerifier) VerifyClaim(ctx context.Context, claim string, articles []Article, now time.Time) *CredibilityResult {
	if v == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultAITimeout)
	defer cancel()

	prompt := buildVerifyPrompt(claim, articles, now)

	resp, err := v.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: groqModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: aiSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.2,
		MaxTokens:   500,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		Logger().Warning("AI verification failed: %v", err)
		return nil
	}
	if len(resp.Choices) == 0 {
		Logger().Warning("AI verification returned no choices")
		return nil
	}

	var parsed struct {
		Verdict    string   `json:"verdict"`
		Confidence int      `json:"confidence"`
		Reasoning  string   `json:"reasoning"`
		Sources    []string `json:"sources"`
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		Logger().Warning("Failed to parse AI response: %v", err)
		return nil
	}

	return normalizeAIResult(parsed.Verdict, parsed.Confidence, parsed.Reasoning, parsed.Sources)
}

// buildVerifyPrompt assembles the claim, the gathered article context
// and the current date into the verification prompt.
func buildVerifyPrompt(claim string, articles []Article, now time.Time) string {
	var ctxLines []string
	for i, a := range articles {
		if i >= MaxArticles {
			break
		}
		desc := a.Description
		if desc == "" {
			desc = "N/A"
		}
		ctxLines = append(ctxLines, fmt.Sprintf("[%d] %s - %q\nSummary: %s\nURL: %s\n", i+1, a.Source, a.Title, desc, a.URL))
	}
	articlesContext := strings.Join(ctxLines, "\n")
	if articlesContext == "" {
		articlesContext = "No recent news articles found on this topic."
	}

	return fmt.Sprintf(`You are an AI-powered fact-checking system that verifies real-world news claims.

Task:
Determine if the given claim is TRUE, FALSE, or UNCERTAIN based on up-to-date news sources.

Claim:
%q

Here are recent articles and headlines from news outlets:
%s

CURRENT DATE: %s

Instructions:
1. Carefully compare the claim with the news data above.
2. If none of the articles confirm the claim -> verdict = FALSE.
3. If some clearly support the claim -> verdict = TRUE.
4. If coverage is ambiguous or outdated -> verdict = UNCERTAIN.
5. Never assume truth without evidence.
6. Include 2-3 relevant headlines as supporting or contradicting references.

SCORING:
- TRUE: confidence 90-100 (articles support the claim)
- FALSE: confidence 90-100 (articles contradict or don't support the claim)
- UNCERTAIN: confidence 30-60 (ambiguous or insufficient coverage)

Respond only in JSON:
{
  "verdict": "TRUE | FALSE | UNCERTAIN",
  "confidence": number (0-100),
  "reasoning": "Explain concisely why this verdict was reached.",
  "sources": ["headline 1", "headline 2", "headline 3"]
}`, claim, articlesContext, now.Format("Monday, January 2, 2006"))
}

// normalizeAIResult validates the model output and forces extreme
// scores for clear verdicts, matching the adapter contract: TRUE/FALSE
// below 90 become 95, UNCERTAIN above 60 becomes 50.
func normalizeAIResult(verdict string, confidence int, reasoning string, sources []string) *CredibilityResult {
	verdict = strings.ToUpper(strings.TrimSpace(verdict))
	if verdict != VerdictTrue && verdict != VerdictFalse && verdict != VerdictUncertain {
		switch {
		case confidence >= 70:
			verdict = VerdictTrue
		case confidence <= 40:
			verdict = VerdictFalse
		default:
			verdict = VerdictUncertain
		}
	}

	switch verdict {
	case VerdictTrue, VerdictFalse:
		if confidence < 90 {
			confidence = 95
		}
	case VerdictUncertain:
		if confidence > 60 {
			confidence = 50
		}
	}

	var details []string
	if reasoning != "" {
		details = append(details, reasoning)
	}
	if len(sources) > 0 {
		if len(sources) > 3 {
			sources = sources[:3]
		}
		details = append(details, "Sources: "+strings.Join(sources, ", "))
	}

	return &CredibilityResult{
		Score:     clampScore(confidence),
		Verdict:   verdict,
		Details:   details,
		AIPowered: true,
	}
}
