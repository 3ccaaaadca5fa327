// cmd/verinews/keywords_test.go
package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords(t *testing.T) {
	keywords := extractKeywords("The Mayor WILL open a new bridge for cyclists")

	// Stop words and tokens of length <= 3 are dropped; case is folded
	assert.Equal(t, []string{"mayor", "open", "bridge", "cyclists"}, keywords)
}

func TestExtractKeywordsKeepsDuplicates(t *testing.T) {
	keywords := extractKeywords("bridge bridge bridge")
	assert.Equal(t, []string{"bridge", "bridge", "bridge"}, keywords)
}

func TestAnalyzeArticleContext(t *testing.T) {
	keywords := []string{"bridge", "mayor"}

	tests := []struct {
		name    string
		article Article
		want    ContextTally
	}{
		{
			name:    "refuting phrase wins even with supporting language",
			article: Article{Title: "Bridge story debunked", Description: "The verified report was false"},
			want:    ContextTally{Refuting: 1},
		},
		{
			name:    "supporting requires a keyword",
			article: Article{Title: "Study finds benefits", Description: "research shows improvements"},
			want:    ContextTally{}, // supporting language, no claim keyword
		},
		{
			name:    "supporting with keyword",
			article: Article{Title: "Study finds bridge is safe", Description: "research shows the mayor approved"},
			want:    ContextTally{Supporting: 1},
		},
		{
			name:    "keyword alone is neutral",
			article: Article{Title: "Bridge reopens after maintenance", Description: "traffic resumed"},
			want:    ContextTally{Neutral: 1},
		},
		{
			name:    "unrelated article is uncounted",
			article: Article{Title: "Weather outlook", Description: "sunny all week"},
			want:    ContextTally{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tally := analyzeArticleContext([]Article{tt.article}, keywords)
			assert.Equal(t, tt.want, tally)
		})
	}
}

func TestAnalyzeArticleContextAggregates(t *testing.T) {
	articles := []Article{
		{Title: "Bridge claim debunked"},
		{Title: "Mayor confirms bridge opening", Description: "verified by officials"},
		{Title: "Bridge traffic report"},
		{Title: "Unrelated piece"},
	}

	tally := analyzeArticleContext(articles, []string{"bridge"})
	assert.Equal(t, ContextTally{Supporting: 1, Refuting: 1, Neutral: 1}, tally)
}
