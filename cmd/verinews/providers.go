// cmd/verinews/providers.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// newProviderClient builds the HTTP client shared by the JSON providers
func newProviderClient() *http.Client {
	return &http.Client{Timeout: DefaultProviderTimeout}
}

// fetchJSON performs a GET request and decodes the JSON body into out
func fetchJSON(ctx context.Context, client *http.Client, reqURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return NewProviderError(ErrProviderFetch, "failed to build request", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return NewProviderError(ErrProviderFetch, "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return NewProviderError(ErrProviderFetch, fmt.Sprintf("unexpected status %s", resp.Status), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return NewProviderError(ErrProviderParse, "failed to parse response", err)
	}
	return nil
}

// parseArticleTime parses the timestamp formats the providers emit.
// An unparseable or empty value yields the zero time, which the scorer
// treats as "not recent".
func parseArticleTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02 15:04:05", // NewsData pubDate
		"2006-01-02T15:04:05Z",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// ---------------------------------------------------------------------------
// NewsAPI (newsapi.org)

type NewsAPIProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewNewsAPIProvider(apiKey string) *NewsAPIProvider {
	return &NewsAPIProvider{
		apiKey:  apiKey,
		baseURL: "https://newsapi.org/v2/everything",
		client:  newProviderClient(),
	}
}

func (p *NewsAPIProvider) Name() string { return "newsapi" }

func (p *NewsAPIProvider) Fetch(ctx context.Context, query string) ([]Article, error) {
	if p.apiKey == "" || p.apiKey == "demo_mode" {
		return nil, NewProviderError(ErrProviderFetch, "newsapi key not configured", nil)
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("apiKey", p.apiKey)
	params.Set("pageSize", fmt.Sprint(DefaultProviderLimit))
	params.Set("language", "en")
	params.Set("sortBy", "relevancy")

	var payload struct {
		Articles []struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			URL         string `json:"url"`
			PublishedAt string `json:"publishedAt"`
			URLToImage  string `json:"urlToImage"`
			Source      struct {
				Name string `json:"name"`
			} `json:"source"`
		} `json:"articles"`
	}
	if err := fetchJSON(ctx, p.client, p.baseURL+"?"+params.Encode(), &payload); err != nil {
		return nil, err
	}

	articles := make([]Article, 0, len(payload.Articles))
	for _, a := range payload.Articles {
		articles = append(articles, Article{
			Title:       a.Title,
			Description: stripHTML(a.Description),
			URL:         a.URL,
			Source:      a.Source.Name,
			PublishedAt: parseArticleTime(a.PublishedAt),
			ImageURL:    a.URLToImage,
		})
	}
	return articles, nil
}

// ---------------------------------------------------------------------------
// GNews (gnews.io)

type GNewsProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewGNewsProvider(apiKey string) *GNewsProvider {
	return &GNewsProvider{
		apiKey:  apiKey,
		baseURL: "https://gnews.io/api/v4/search",
		client:  newProviderClient(),
	}
}

func (p *GNewsProvider) Name() string { return "gnews" }

func (p *GNewsProvider) Fetch(ctx context.Context, query string) ([]Article, error) {
	if p.apiKey == "" {
		return nil, NewProviderError(ErrProviderFetch, "gnews key not configured", nil)
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("token", p.apiKey)
	params.Set("lang", "en")
	params.Set("max", fmt.Sprint(DefaultProviderLimit))

	var payload struct {
		Articles []struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			URL         string `json:"url"`
			Image       string `json:"image"`
			PublishedAt string `json:"publishedAt"`
			Source      struct {
				Name string `json:"name"`
			} `json:"source"`
		} `json:"articles"`
	}
	if err := fetchJSON(ctx, p.client, p.baseURL+"?"+params.Encode(), &payload); err != nil {
		return nil, err
	}

	articles := make([]Article, 0, len(payload.Articles))
	for _, a := range payload.Articles {
		articles = append(articles, Article{
			Title:       a.Title,
			Description: stripHTML(a.Description),
			URL:         a.URL,
			Source:      a.Source.Name,
			PublishedAt: parseArticleTime(a.PublishedAt),
			ImageURL:    a.Image,
		})
	}
	return articles, nil
}

// ---------------------------------------------------------------------------
// NewsData.io

type NewsDataProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewNewsDataProvider(apiKey string) *NewsDataProvider {
	return &NewsDataProvider{
		apiKey:  apiKey,
		baseURL: "https://newsdata.io/api/1/news",
		client:  newProviderClient(),
	}
}

func (p *NewsDataProvider) Name() string { return "newsdata" }

func (p *NewsDataProvider) Fetch(ctx context.Context, query string) ([]Article, error) {
	if p.apiKey == "" {
		return nil, NewProviderError(ErrProviderFetch, "newsdata key not configured", nil)
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("apikey", p.apiKey)
	params.Set("language", "en")

	var payload struct {
		Results []struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Link        string `json:"link"`
			SourceID    string `json:"source_id"`
			PubDate     string `json:"pubDate"`
			ImageURL    string `json:"image_url"`
		} `json:"results"`
	}
	if err := fetchJSON(ctx, p.client, p.baseURL+"?"+params.Encode(), &payload); err != nil {
		return nil, err
	}

	articles := make([]Article, 0, len(payload.Results))
	for _, a := range payload.Results {
		articles = append(articles, Article{
			Title:       a.Title,
			Description: stripHTML(a.Description),
			URL:         a.Link,
			Source:      a.SourceID,
			PublishedAt: parseArticleTime(a.PubDate),
			ImageURL:    a.ImageURL,
		})
	}
	return articles, nil
}

// ---------------------------------------------------------------------------
// The Guardian (content.guardianapis.com, works with the free "test" key)

type GuardianProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewGuardianProvider(apiKey string) *GuardianProvider {
	if apiKey == "" {
		apiKey = "test"
	}
	return &GuardianProvider{
		apiKey:  apiKey,
		baseURL: "https://content.guardianapis.com/search",
		client:  newProviderClient(),
	}
}

func (p *GuardianProvider) Name() string { return "guardian" }

func (p *GuardianProvider) Fetch(ctx context.Context, query string) ([]Article, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("api-key", p.apiKey)
	params.Set("show-fields", "headline,thumbnail,bodyText")
	params.Set("page-size", fmt.Sprint(DefaultProviderLimit))

	var payload struct {
		Response struct {
			Results []struct {
				WebTitle           string `json:"webTitle"`
				WebURL             string `json:"webUrl"`
				WebPublicationDate string `json:"webPublicationDate"`
				Fields             struct {
					BodyText  string `json:"bodyText"`
					Thumbnail string `json:"thumbnail"`
				} `json:"fields"`
			} `json:"results"`
		} `json:"response"`
	}
	if err := fetchJSON(ctx, p.client, p.baseURL+"?"+params.Encode(), &payload); err != nil {
		return nil, err
	}

	articles := make([]Article, 0, len(payload.Response.Results))
	for _, a := range payload.Response.Results {
		desc := stripHTML(a.Fields.BodyText)
		if desc == "" {
			desc = "No description available"
		} else {
			desc = truncateString(desc, 200)
		}
		articles = append(articles, Article{
			Title:       a.WebTitle,
			Description: desc,
			URL:         a.WebURL,
			Source:      "The Guardian",
			PublishedAt: parseArticleTime(a.WebPublicationDate),
			ImageURL:    a.Fields.Thumbnail,
		})
	}
	return articles, nil
}
