// cmd/verinews/provider_rss.go
package main

import (
	"context"
	"net/url"
	"strings"

	"github.com/mmcdole/gofeed"
)

// GoogleRSSProvider queries the Google News RSS search feed. It needs
// no API key, which makes it the last live resort of the chain before
// the synthetic generator kicks in.
type GoogleRSSProvider struct {
	parser  *gofeed.Parser
	baseURL string
}

func NewGoogleRSSProvider() *GoogleRSSProvider {
	parser := gofeed.NewParser()
	parser.UserAgent = AppName + "/" + AppVersion
	return &GoogleRSSProvider{
		parser:  parser,
		baseURL: "https://news.google.com/rss/search",
	}
}

func (p *GoogleRSSProvider) Name() string { return "googlerss" }

func (p *GoogleRSSProvider) Fetch(ctx context.Context, query string) ([]Article, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultProviderTimeout)
	defer cancel()

	feedURL := p.baseURL + "?q=" + url.QueryEscape(query) + "&hl=en-US&gl=US&ceid=US:en"
	feed, err := p.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, NewProviderError(ErrProviderFetch, "failed to parse feed", err)
	}

	articles := make([]Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item.Title == "" || item.Link == "" {
			continue
		}

		// Google News titles carry the outlet after the last " - "
		source := "Google News"
		title := item.Title
		if idx := strings.LastIndex(title, " - "); idx > 0 {
			source = strings.TrimSpace(title[idx+3:])
			title = strings.TrimSpace(title[:idx])
		}

		published := parseArticleTime(item.Published)
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		}

		articles = append(articles, Article{
			Title:       title,
			Description: stripHTML(item.Description),
			URL:         item.Link,
			Source:      source,
			PublishedAt: published,
		})
		if len(articles) >= DefaultProviderLimit {
			break
		}
	}
	return articles, nil
}
