// cmd/verinews/translate.go
package main

import (
	"context"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Display names sent to the model so it translates into the intended
// language rather than guessing from a bare ISO code.
var translationLanguages = map[string]string{
	"EN-GB": "English (UK)",
	"EN-US": "English (US)",
	"HI":    "Hindi",
	"TA":    "Tamil",
	"TE":    "Telugu",
	"BN":    "Bengali",
	"MR":    "Marathi",
	"GU":    "Gujarati",
	"KN":    "Kannada",
	"ML":    "Malayalam",
	"PA":    "Punjabi",
	"UR":    "Urdu",
	"FR":    "French",
	"ES":    "Spanish",
	"DE":    "German",
	"IT":    "Italian",
	"PT-PT": "Portuguese",
	"PT-BR": "Portuguese (Brazil)",
	"RU":    "Russian",
	"TR":    "Turkish",
	"JA":    "Japanese",
	"KO":    "Korean",
	"ZH":    "Chinese",
	"AR":    "Arabic",
	"NL":    "Dutch",
	"PL":    "Polish",
	"SV":    "Swedish",
}

// Translate renders text into the target language via the Groq API.
// Returns an empty string and error when the verifier is unavailable.
func (v *AIVerifier) Translate(ctx context.Context, text, targetLang string) (string, error) {
	if v == nil {
		return "", NewAIError(ErrAIUnavailable, "translation requires GROQ_API_KEY", nil)
	}

	target := translationLanguages[strings.ToUpper(targetLang)]
	if target == "" {
		target = targetLang
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultAITimeout)
	defer cancel()

	resp, err := v.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: groqModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a professional translator. Translate the text accurately to " + target + ". Maintain the meaning and tone.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: "Translate this to " + target + ":\n\n" + text,
			},
		},
		Temperature: 0.3,
		MaxTokens:   2000,
	})
	if err != nil {
		return "", NewAIError(ErrAIResponse, "translation request failed", err)
	}
	if len(resp.Choices) == 0 {
		return "", NewAIError(ErrAIResponse, "translation returned no choices", nil)
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
